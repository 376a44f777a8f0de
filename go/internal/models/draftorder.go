package models

import (
	"github.com/google/uuid"
)

// Draft round constants. Every draft has exactly two rounds, snake-reversed.
const (
	RoundOne = 1
	RoundTwo = 2
)

// DraftOrderEntry is an immutable scheduling slot in a race's draft order.
// A full order holds 2N entries for N players: pick orders 1..N in round one
// and N+1..2N in round two. PreviousRacePoints is set only by the
// performance seeding strategy, for display.
type DraftOrderEntry struct {
	UserID             uuid.UUID `json:"user_id"`
	DisplayName        string    `json:"display_name"`
	PickOrder          int       `json:"pick_order"`
	DraftRound         int       `json:"draft_round"`
	PreviousRacePoints *int      `json:"previous_race_points,omitempty"`
}
