// Package model contains the GORM persistence models mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// Skills and ClubIDs are native Postgres arrays so the matcher's overlap
// predicates run as `&&` in SQL instead of fetching rows into the application.
type UserModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email         string         `gorm:"type:varchar(255);unique;not null"`
	Name          string         `gorm:"type:varchar(100)"`
	Phone         string         `gorm:"type:varchar(20)"`
	PasswordHash  string         `gorm:"type:varchar(255);not null"`
	Profession    string         `gorm:"type:varchar(100);index"`
	Skills        pq.StringArray `gorm:"type:text[]"`
	ClubIDs       pq.Int64Array  `gorm:"column:club_ids;type:bigint[]"`
	ProviderID    *int64         `gorm:"index"`
	InstitutionID *int64         `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time `gorm:"index"`

	Products []*ProductModel `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
