package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PaymentIntentModel is the GORM-specific struct for the 'payment_intents'
// table. The unique reference index is the sole mechanism that makes
// duplicate webhook deliveries safe.
type PaymentIntentModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Reference   string         `gorm:"type:varchar(100);not null;uniqueIndex"`
	Purpose     string         `gorm:"type:varchar(30);not null"`
	UserID      *uuid.UUID     `gorm:"type:uuid;index"`
	AmountMinor int64          `gorm:"not null"`
	Status      string         `gorm:"type:varchar(10);not null;default:'pending'"`
	Raw         datatypes.JSON `gorm:"type:jsonb"`
	OrderID     *uuid.UUID     `gorm:"type:uuid"`
	StoreID     *uuid.UUID     `gorm:"type:uuid"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentIntentModel) TableName() string {
	return "payment_intents"
}
