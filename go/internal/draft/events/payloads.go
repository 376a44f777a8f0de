package events

import (
	"time"
)

// Event payload types shared between the draft controller, the notify
// publisher and the gateway consumer.

// Event type names carried in the envelope.
const (
	TypeOrderGenerated = "OrderGenerated"
	TypeOrderCleared   = "OrderCleared"
	TypePickMade       = "PickMade"
	TypePickUpdated    = "PickUpdated"
	TypeTurnStarted    = "TurnStarted"
	TypeDraftCompleted = "DraftCompleted"
)

// OrderGeneratedPayload is the payload for an OrderGenerated event
type OrderGeneratedPayload struct {
	RaceID      string    `json:"race_id"`
	Strategy    string    `json:"strategy"`
	SlotCount   int       `json:"slot_count"`
	GeneratedAt time.Time `json:"generated_at"`
}

// OrderClearedPayload is the payload for an OrderCleared event
type OrderClearedPayload struct {
	RaceID    string    `json:"race_id"`
	ClearedAt time.Time `json:"cleared_at"`
}

// PickMadePayload is the payload for a PickMade event
type PickMadePayload struct {
	PickID     string    `json:"pick_id"`
	RaceID     string    `json:"race_id"`
	UserID     string    `json:"user_id"`
	DriverID   string    `json:"driver_id"`
	PickOrder  int       `json:"pick_order"`
	DraftRound int       `json:"draft_round"`
	AutoPick   bool      `json:"auto_pick"`
	PickedAt   time.Time `json:"picked_at"`
}

// PickUpdatedPayload is the payload for a PickUpdated event
type PickUpdatedPayload struct {
	PickID     string    `json:"pick_id"`
	RaceID     string    `json:"race_id"`
	UserID     string    `json:"user_id"`
	DriverID   string    `json:"driver_id"`
	DraftRound int       `json:"draft_round"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TurnStartedPayload is the payload for a TurnStarted event
type TurnStartedPayload struct {
	RaceID     string    `json:"race_id"`
	UserID     string    `json:"user_id"`
	PickOrder  int       `json:"pick_order"`
	DraftRound int       `json:"draft_round"`
	StartedAt  time.Time `json:"started_at"`
}

// DraftCompletedPayload is the payload for a DraftCompleted event
type DraftCompletedPayload struct {
	RaceID      string    `json:"race_id"`
	TotalPicks  int       `json:"total_picks"`
	CompletedAt time.Time `json:"completed_at"`
}
