package models

import (
	"github.com/google/uuid"
)

// Driver represents a draftable driver. A driver can be picked at most once
// per race draft.
type Driver struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	TeamName  string    `json:"team_name"`
	IsActive  bool      `json:"is_active"`
}

// FullName returns the driver's display name.
func (d Driver) FullName() string {
	return d.FirstName + " " + d.LastName
}
