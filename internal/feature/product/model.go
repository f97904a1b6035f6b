package product

import (
	"time"

	"gorm.io/gorm"

	"go-product-api/pkg/utils"
)

// Product is a catalog item. Soft-delete bookkeeping stays out of JSON.
type Product struct {
	ID          string  `gorm:"primaryKey;type:varchar(32)" json:"id"`
	Name        string  `gorm:"size:255;not null;index" json:"name"`
	Price       float64 `gorm:"not null" json:"price"`
	Category    string  `gorm:"size:128;not null" json:"category"`
	Description string  `gorm:"size:1024" json:"description,omitempty"`
	Stock       int     `gorm:"not null;default:0" json:"stock"`
	ImageURL    string  `gorm:"size:512;not null" json:"imageUrl"`
	OwnerID     string  `gorm:"type:varchar(32);index" json:"ownerId,omitempty"`

	Deleted   bool           `gorm:"not null;default:false" json:"-"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Product) TableName() string { return "products" }

func (p *Product) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = utils.NewID()
	}
	return nil
}
