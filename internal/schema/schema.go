package schema

import (
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"
)

// Type of value a rule validates.
type Type int

const (
	String Type = iota
	Number
	File
)

// FileMeta is the metadata slice of an uploaded file that rules can see.
// The raw header rides along so handlers can open the file after validation.
type FileMeta struct {
	OriginalName string
	MimeType     string
	Size         int64
	Header       *multipart.FileHeader
}

// Rule validates a single declared field. Zero values mean "no constraint".
type Rule struct {
	Field    string
	Type     Type
	Required bool
	Trim     bool
	Min      *float64
	Max      *float64
	Default  any // applied when the field is absent and not required

	// File-only constraints.
	MimeTypes   []string
	MaxSize     int64
	SizeMessage string // overrides the default max-size message
}

// Schema is an ordered rule set for one payload shape.
// RequireOne demands at least one declared field be present.
type Schema struct {
	Rules      []Rule
	RequireOne bool
}

// Violations collects one message per field key. A field violating several
// rules keeps only the message recorded last; the key keeps its first
// insertion position. This collapse is a documented limitation, not an
// "all errors reported" guarantee.
type Violations struct {
	order   []string
	byField map[string]string
}

func (v *Violations) add(field, msg string) {
	if v.byField == nil {
		v.byField = make(map[string]string)
	}
	if _, seen := v.byField[field]; !seen {
		v.order = append(v.order, field)
	}
	v.byField[field] = msg
}

// Messages returns the surviving messages in field insertion order.
func (v *Violations) Messages() []string {
	out := make([]string, 0, len(v.order))
	for _, f := range v.order {
		out = append(out, v.byField[f])
	}
	return out
}

// First returns the primary message, the first violation recorded.
func (v *Violations) First() string {
	if len(v.order) == 0 {
		return ""
	}
	return v.byField[v.order[0]]
}

func (v *Violations) Empty() bool { return len(v.order) == 0 }

func Float(f float64) *float64 { return &f }

// Validate runs every rule against payload, collecting all violations rather
// than stopping at the first. On success the returned map holds the
// normalized payload: strings trimmed, numbers coerced, defaults applied,
// undeclared fields stripped.
func (s Schema) Validate(payload map[string]any) (map[string]any, *Violations) {
	out := make(map[string]any, len(s.Rules))
	v := &Violations{}

	if s.RequireOne && !s.anyPresent(payload) {
		fields := make([]string, len(s.Rules))
		for i, r := range s.Rules {
			fields[i] = r.Field
		}
		v.add("value", "value must contain at least one of "+strings.Join(fields, ", "))
		return nil, v
	}

	for _, r := range s.Rules {
		raw, present := payload[r.Field]
		if !present || raw == nil {
			if r.Required {
				v.add(r.Field, r.Field+" is required")
			} else if r.Default != nil {
				out[r.Field] = r.Default
			}
			continue
		}
		switch r.Type {
		case String:
			r.validateString(raw, out, v)
		case Number:
			r.validateNumber(raw, out, v)
		case File:
			r.validateFile(raw, out, v)
		}
	}

	if !v.Empty() {
		return nil, v
	}
	return out, nil
}

func (s Schema) anyPresent(payload map[string]any) bool {
	for _, r := range s.Rules {
		if val, ok := payload[r.Field]; ok && val != nil {
			return true
		}
	}
	return false
}

func (r Rule) validateString(raw any, out map[string]any, v *Violations) {
	str, ok := raw.(string)
	if !ok {
		v.add(r.Field, r.Field+" must be a string")
		return
	}
	if r.Trim {
		str = strings.TrimSpace(str)
	}
	if str == "" {
		v.add(r.Field, r.Field+" is not allowed to be empty")
		return
	}
	out[r.Field] = str
}

func (r Rule) validateNumber(raw any, out map[string]any, v *Violations) {
	var n float64
	switch x := raw.(type) {
	case float64:
		n = x
	case int:
		n = float64(x)
	case int64:
		n = float64(x)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			v.add(r.Field, r.Field+" must be a number")
			return
		}
		n = parsed
	default:
		v.add(r.Field, r.Field+" must be a number")
		return
	}
	if r.Min != nil && n < *r.Min {
		v.add(r.Field, fmt.Sprintf("%s must be greater than or equal to %s", r.Field, trimFloat(*r.Min)))
	}
	if r.Max != nil && n > *r.Max {
		v.add(r.Field, fmt.Sprintf("%s must be less than or equal to %s", r.Field, trimFloat(*r.Max)))
	}
	out[r.Field] = n
}

func (r Rule) validateFile(raw any, out map[string]any, v *Violations) {
	meta, ok := raw.(FileMeta)
	if !ok {
		v.add(r.Field, r.Field+" must be a file")
		return
	}
	if meta.OriginalName == "" {
		v.add(r.Field+".originalname", r.Field+" originalname is required")
	}
	if len(r.MimeTypes) > 0 && !contains(r.MimeTypes, meta.MimeType) {
		v.add(r.Field+".mimetype",
			fmt.Sprintf("%s mimetype must be one of %s", r.Field, strings.Join(r.MimeTypes, ", ")))
	}
	if r.MaxSize > 0 && meta.Size > r.MaxSize {
		msg := r.SizeMessage
		if msg == "" {
			msg = fmt.Sprintf("%s size must be less than or equal to %d", r.Field, r.MaxSize)
		}
		v.add(r.Field+".size", msg)
	}
	out[r.Field] = meta
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
