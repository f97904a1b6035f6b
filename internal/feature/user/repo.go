package user

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

// FindByEmail looks up a live user. Soft-deleted users are invisible here.
func (r *Repo) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repo) FindByID(ctx context.Context, id string) (*User, error) {
	if !utils.ValidID(id) {
		return nil, repo.ErrInvalidID
	}
	var u User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindDeletedByID is the deleted-only lookup path: it sees exactly the
// records SoftDelete hid from ordinary queries.
func (r *Repo) FindDeletedByID(ctx context.Context, id string) (*User, error) {
	if !utils.ValidID(id) {
		return nil, repo.ErrInvalidID
	}
	var u User
	err := r.db.WithContext(ctx).Unscoped().
		First(&u, "id = ? AND deleted_at IS NOT NULL", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repo) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

// SoftDelete marks the record logically deleted without physical removal.
func (r *Repo) SoftDelete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).
		Updates(map[string]any{"deleted": true, "deleted_at": time.Now()}).Error
}

// Seed wipes the table and inserts the given users. Used by cmd/seed only.
func (r *Repo) Seed(ctx context.Context, users []User) error {
	if err := r.db.WithContext(ctx).Unscoped().Where("1 = 1").Delete(&User{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&users).Error
}
