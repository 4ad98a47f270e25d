package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoreModel is the GORM-specific struct for the 'stores' table.
// The slug is the stable provisioning key; domain_name is display only.
type StoreModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Name             string    `gorm:"type:varchar(255);not null"`
	Slug             string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	DomainName       string    `gorm:"type:varchar(255)"`
	DNSState         string    `gorm:"type:varchar(20);not null;default:'created'"`
	DNSRecordCreated bool      `gorm:"not null;default:false"`
	HasMadePayment   bool      `gorm:"not null;default:false"`
	Completed        bool      `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}
