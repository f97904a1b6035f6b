package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"go-product-api/internal/apperr"
	"go-product-api/internal/schema"
)

// KeyPayload holds the normalized payload after the validation gate passed.
const KeyPayload = "validated.payload"

// Validate gates a route on a declarative schema. The candidate payload is the
// body's fields plus, when a file rides under fileField, that file's metadata
// injected under the same name. On success the normalized value replaces the
// raw body for downstream handlers; on failure a Validation error enters the
// chain carrying every surviving violation.
func Validate(s schema.Schema, fileField string) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload := map[string]any{}

		if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
			if form, err := c.MultipartForm(); err == nil {
				for k, vals := range form.Value {
					if len(vals) > 0 {
						payload[k] = vals[0]
					}
				}
			}
			if fileField != "" {
				if fh, err := c.FormFile(fileField); err == nil {
					payload[fileField] = schema.FileMeta{
						OriginalName: fh.Filename,
						MimeType:     fh.Header.Get("Content-Type"),
						Size:         fh.Size,
						Header:       fh,
					}
				}
			}
		} else {
			var body map[string]any
			_ = c.ShouldBindJSON(&body)
			for k, v := range body {
				payload[k] = v
			}
		}

		value, violations := s.Validate(payload)
		if violations != nil {
			Abort(c, apperr.Validation(violations.First(), violations.Messages()))
			return
		}
		c.Set(KeyPayload, value)
		c.Next()
	}
}

// Payload returns the normalized payload the gate stored.
func Payload(c *gin.Context) map[string]any {
	if v, ok := c.Get(KeyPayload); ok {
		if m, ok := v.(map[string]any); ok {
			return m
		}
	}
	return map[string]any{}
}
