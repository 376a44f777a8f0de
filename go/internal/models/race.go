package models

import (
	"time"

	"github.com/google/uuid"
)

// Race represents a single race event within a season. The draft order is
// stored alongside the race and replaced wholesale on regeneration.
type Race struct {
	ID               uuid.UUID  `json:"id"`
	SeasonID         uuid.UUID  `json:"season_id"`
	Name             string     `json:"name"`
	RoundNumber      int        `json:"round_number"`
	RaceDate         time.Time  `json:"race_date"`
	PicksOpen        bool       `json:"picks_open"`
	ResultsFinalized bool       `json:"results_finalized"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}
