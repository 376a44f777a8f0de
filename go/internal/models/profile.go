package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents a player identity. Identity is owned by the external
// user-management system; the core only reads it.
type Profile struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	IsAdmin     bool      `json:"is_admin"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
