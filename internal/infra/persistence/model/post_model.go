package model

import (
	"time"

	"github.com/google/uuid"
)

// PostModel mirrors the 'posts' table.
type PostModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AuthorID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Body      string     `gorm:"type:text;not null"`
	ProductID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time

	Author  *UserModel    `gorm:"foreignKey:AuthorID"`
	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
