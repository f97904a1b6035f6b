package repo

import (
	"errors"

	"gorm.io/gorm"
)

// ErrInvalidID marks a malformed entity identifier before it ever reaches the
// store. The error chain normalizes it to a 400.
var ErrInvalidID = errors.New("the provided id is invalid")

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// PageParams are the requested page coordinates. Zero values take defaults.
type PageParams struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// Page is the uniform page-result shape attached to any persisted collection.
// Count reflects the actual returned page size, never the requested limit.
type Page[T any] struct {
	Data        []T   `json:"data"`
	Count       int   `json:"count"`
	Total       int64 `json:"total"`
	TotalPages  int64 `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
}

// Paginate runs the page-fetch contract over an already-filtered query:
// clamp the params, count matches, fetch newest-first with offset/limit.
// Soft-deleted rows stay excluded by gorm's default scope.
func Paginate[T any](q *gorm.DB, p PageParams) (Page[T], error) {
	limit := p.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	page := p.Page
	if page < 1 {
		page = DefaultPage
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return Page[T]{}, err
	}
	totalPages := (total + int64(limit) - 1) / int64(limit)
	if totalPages < 1 {
		totalPages = 1
	}

	data := make([]T, 0, limit)
	err := q.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&data).Error
	if err != nil {
		return Page[T]{}, err
	}

	return Page[T]{
		Data:        data,
		Count:       len(data),
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}
