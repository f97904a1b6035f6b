package product

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"go-product-api/internal/repo"
	"go-product-api/pkg/utils"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

// List pages through live products, newest first. A non-empty search string
// filters by name.
func (r *Repo) List(ctx context.Context, search string, p repo.PageParams) (repo.Page[Product], error) {
	q := r.db.WithContext(ctx).Model(&Product{})
	if search != "" {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}
	return repo.Paginate[Product](q, p)
}

func (r *Repo) FindByID(ctx context.Context, id string) (*Product, error) {
	if !utils.ValidID(id) {
		return nil, repo.ErrInvalidID
	}
	var p Product
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindDeletedByID retrieves only soft-deleted records.
func (r *Repo) FindDeletedByID(ctx context.Context, id string) (*Product, error) {
	if !utils.ValidID(id) {
		return nil, repo.ErrInvalidID
	}
	var p Product
	err := r.db.WithContext(ctx).Unscoped().
		First(&p, "id = ? AND deleted_at IS NOT NULL", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repo) Create(ctx context.Context, p *Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// Update applies the given column updates and returns the fresh record, or
// nil when no live product carries the id.
func (r *Repo) Update(ctx context.Context, id string, updates map[string]any) (*Product, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&Product{}).Where("id = ?", id).
			Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.FindByID(ctx, id)
}

// SoftDelete hides the product from ordinary lookups and returns the record
// as it was at deletion time.
func (r *Repo) SoftDelete(ctx context.Context, id string) (*Product, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}
	now := time.Now()
	if err := r.db.WithContext(ctx).Model(&Product{}).Where("id = ?", id).
		Updates(map[string]any{"deleted": true, "deleted_at": now}).Error; err != nil {
		return nil, err
	}
	existing.Deleted = true
	existing.DeletedAt = gorm.DeletedAt{Time: now, Valid: true}
	return existing, nil
}
