package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ProductModel mirrors the 'products' table. Tags is a native Postgres array
// for the recommendation overlap predicate.
type ProductModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name        string         `gorm:"type:varchar(150);not null"`
	Description string         `gorm:"type:text"`
	Category    string         `gorm:"type:varchar(100);index"`
	Tags        pq.StringArray `gorm:"type:text[]"`
	PriceTZS    int64          `gorm:"column:price_tzs;not null"`
	IsActive    bool           `gorm:"default:true;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Owner *UserModel `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
