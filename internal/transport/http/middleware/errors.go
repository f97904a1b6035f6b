package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"go-product-api/internal/apperr"
	"go-product-api/internal/repo"
	"go-product-api/internal/transport/http/response"
)

// errHandler inspects one error category. It returns ok=false to pass the
// error, untouched, to the next handler in the chain.
type errHandler func(err error) (response.Body, int, bool)

// chain order matters: the catch-all must stay last because it matches
// everything, and the kind handlers overlap with its generic apperr branch.
var chain = []errHandler{
	badRequestHandler,
	forbiddenHandler,
	notFoundHandler,
	httpHandler,
	allHandler,
}

// Errors normalizes every error pushed via c.Error into the failure envelope.
// It is the single place the error response shape is decided.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		for _, h := range chain {
			if body, status, ok := h(err); ok {
				c.JSON(status, body)
				return
			}
		}
	}
}

// Abort records err for the chain and stops the handler pipeline.
func Abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func kindOf(err error) (*apperr.Error, bool) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func badRequestHandler(err error) (response.Body, int, bool) {
	ae, ok := kindOf(err)
	if !ok || ae.Kind != apperr.KindBadRequest {
		return response.Body{}, 0, false
	}
	return response.ErrorBody(400, string(ae.Kind), ae.GetResponse().Message), 400, true
}

func forbiddenHandler(err error) (response.Body, int, bool) {
	ae, ok := kindOf(err)
	if !ok || ae.Kind != apperr.KindForbidden {
		return response.Body{}, 0, false
	}
	return response.ErrorBody(ae.Status, string(ae.Kind), ae.GetResponse().Message), 403, true
}

func notFoundHandler(err error) (response.Body, int, bool) {
	ae, ok := kindOf(err)
	if !ok || ae.Kind != apperr.KindNotFound {
		return response.Body{}, 0, false
	}
	return response.ErrorBody(ae.Status, string(ae.Kind), ae.GetResponse().Message), ae.Status, true
}

func httpHandler(err error) (response.Body, int, bool) {
	ae, ok := kindOf(err)
	if !ok || ae.Kind != apperr.KindHTTP {
		return response.Body{}, 0, false
	}
	status := ae.Status
	if status == 0 {
		status = 500
	}
	return response.ErrorBody(status, string(ae.Kind), ae.GetResponse().Message), status, true
}

// allHandler terminates the chain. Beyond leftover apperr values it
// recognizes two store-level failures: a malformed entity identifier and a
// uniqueness-constraint violation.
func allHandler(err error) (response.Body, int, bool) {
	if errors.Is(err, repo.ErrInvalidID) {
		return response.Body{
			StatusCode: 400,
			Success:    false,
			Error:      "Invalid ID",
			Message:    "The provided ID is invalid.",
		}, 400, true
	}
	if isDupKey(err) {
		return response.Body{
			StatusCode: 409,
			Success:    false,
			Error:      "Duplicate key",
			Message:    err.Error(),
		}, 409, true
	}
	if ae, ok := kindOf(err); ok {
		status := ae.Status
		if status == 0 {
			status = 500
		}
		return response.ErrorBody(status, string(ae.Kind), ae.GetResponse().Message), status, true
	}
	return response.ErrorBody(500, "Error", err.Error()), 500, true
}

func isDupKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation")
}
