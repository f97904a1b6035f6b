package product

import "go-product-api/internal/schema"

// MaxImageBytes caps uploaded product images at 2 MB.
const MaxImageBytes = 2_000_000

var imageMimeTypes = []string{"image/jpeg", "image/png"}

const imageSizeMessage = "image size must be less than or equal to 2 MB"

// CreateSchema validates the multipart create payload.
var CreateSchema = schema.Schema{
	Rules: []schema.Rule{
		{Field: "name", Type: schema.String, Required: true, Trim: true},
		{Field: "price", Type: schema.Number, Required: true, Min: schema.Float(0)},
		{Field: "category", Type: schema.String, Required: true, Trim: true},
		{Field: "description", Type: schema.String, Trim: true},
		{Field: "stock", Type: schema.Number, Required: true, Min: schema.Float(0)},
		{
			Field: "image", Type: schema.File, Required: true,
			MimeTypes: imageMimeTypes, MaxSize: MaxImageBytes, SizeMessage: imageSizeMessage,
		},
	},
}

// UpdateSchema accepts any subset of the fields but demands at least one.
var UpdateSchema = schema.Schema{
	RequireOne: true,
	Rules: []schema.Rule{
		{Field: "name", Type: schema.String, Trim: true},
		{Field: "price", Type: schema.Number, Min: schema.Float(0)},
		{Field: "category", Type: schema.String, Trim: true},
		{Field: "description", Type: schema.String, Trim: true},
		{Field: "stock", Type: schema.Number, Min: schema.Float(0)},
		{
			Field: "image", Type: schema.File,
			MimeTypes: imageMimeTypes, MaxSize: MaxImageBytes, SizeMessage: imageSizeMessage,
		},
	},
}
