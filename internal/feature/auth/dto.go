package auth

import "go-product-api/internal/schema"

// LoginSchema validates the credential payload.
var LoginSchema = schema.Schema{
	Rules: []schema.Rule{
		{Field: "email", Type: schema.String, Required: true, Trim: true},
		{Field: "password", Type: schema.String, Required: true, Trim: true},
	},
}
