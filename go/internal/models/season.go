package models

import (
	"github.com/google/uuid"
)

// Season represents a racing season. DNFPoints and DSQPoints are the
// season-level penalty values applied by the scoring engine.
type Season struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Year      int       `json:"year"`
	DNFPoints int       `json:"dnf_points"`
	DSQPoints int       `json:"dsq_points"`
	IsActive  bool      `json:"is_active"`
}

// PointMapping maps a finishing position to points for a season. Positions
// are unique within a season.
type PointMapping struct {
	SeasonID uuid.UUID `json:"season_id"`
	Position int       `json:"position"`
	Points   int       `json:"points"`
}
