package user

import (
	"time"

	"gorm.io/gorm"

	"go-product-api/pkg/utils"
)

// User is the persisted identity. The password hash and the soft-delete
// bookkeeping never appear in serialized output.
type User struct {
	ID        string `gorm:"primaryKey;type:varchar(32)" json:"id"`
	FirstName string `gorm:"size:64;not null" json:"firstName"`
	LastName  string `gorm:"size:64;not null" json:"lastName"`
	Email     string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password  string `gorm:"size:100;not null" json:"-"`

	Deleted   bool           `gorm:"not null;default:false" json:"-"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = utils.NewID()
	}
	return nil
}
