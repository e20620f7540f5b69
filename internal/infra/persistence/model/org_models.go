package model

import (
	"time"

	"glbiashara/internal/domain/entity"

	"gorm.io/datatypes"
)

// ProviderModel mirrors the 'providers' table. Content is a typed JSONB blob.
type ProviderModel struct {
	ID        int64                                        `gorm:"primaryKey;autoIncrement"`
	Name      string                                       `gorm:"type:varchar(100);not null"`
	Slug      string                                       `gorm:"type:varchar(100);unique;not null"`
	IsActive  bool                                         `gorm:"default:true"`
	Content   datatypes.JSONType[entity.ProviderContent]   `gorm:"type:jsonb"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProviderModel) TableName() string {
	return "providers"
}

// ClubModel mirrors the 'clubs' table.
type ClubModel struct {
	ID        int64                                  `gorm:"primaryKey;autoIncrement"`
	Name      string                                 `gorm:"type:varchar(100);not null"`
	Slug      string                                 `gorm:"type:varchar(100);unique;not null"`
	Sport     string                                 `gorm:"type:varchar(50);index"`
	Content   datatypes.JSONType[entity.ClubContent] `gorm:"type:jsonb"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ClubModel) TableName() string {
	return "clubs"
}

// InstitutionModel mirrors the 'institutions' table.
type InstitutionModel struct {
	ID        int64                                         `gorm:"primaryKey;autoIncrement"`
	Name      string                                        `gorm:"type:varchar(150);not null"`
	Slug      string                                        `gorm:"type:varchar(150);unique;not null"`
	Region    string                                        `gorm:"type:varchar(50);index"`
	IsActive  bool                                          `gorm:"default:true"`
	Content   datatypes.JSONType[entity.InstitutionContent] `gorm:"type:jsonb"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (InstitutionModel) TableName() string {
	return "institutions"
}
