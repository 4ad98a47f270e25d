// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account, either a shopper or a dropshipper.
type User struct {
	ID            uuid.UUID `json:"id"`             // The Global Unique Identifier (GUID) for the user.
	Email         string    `json:"email"`          // Unique email address, also used to resolve store activation payments.
	FirstName     string    `json:"first_name"`     // The user's first name.
	LastName      string    `json:"last_name"`      // The user's last name.
	IsDropshipper bool      `json:"is_dropshipper"` // Indicates whether the user owns a store.
	CreatedAt     time.Time `json:"created_at"`     // Timestamp of account creation.
	UpdatedAt     time.Time `json:"updated_at"`     // Timestamp of the last modification.
}
