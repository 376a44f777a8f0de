package models

import (
	"github.com/google/uuid"
)

// RaceResult is a driver's official classification for a race. Position is
// nil when the driver was not classified (DNF, DSQ or otherwise). At most
// one result per driver per race.
type RaceResult struct {
	ID       uuid.UUID `json:"id"`
	RaceID   uuid.UUID `json:"race_id"`
	DriverID uuid.UUID `json:"driver_id"`
	Position *int      `json:"position,omitempty"`
	DNF      bool      `json:"dnf"`
	DSQ      bool      `json:"dsq"`
}
