package models

import (
	"time"

	"github.com/google/uuid"
)

// Pick records that a player has selected a driver in a given round of a
// race's draft. The pick log is append-only: at most one pick per
// (race, user, draft round), and a driver appears at most once per race.
type Pick struct {
	ID         uuid.UUID `json:"id"`
	RaceID     uuid.UUID `json:"race_id"`
	UserID     uuid.UUID `json:"user_id"`
	DriverID   uuid.UUID `json:"driver_id"`
	PickOrder  int       `json:"pick_order"`
	DraftRound int       `json:"draft_round"`
	PickedAt   time.Time `json:"picked_at"`
}
