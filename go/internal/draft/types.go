package draft

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gridrival/sweepstakes/go/internal/models"
	"github.com/gridrival/sweepstakes/go/internal/scoring"
)

// Repository defines what the app layer needs from storage
type Repository interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	ListActiveProfiles(ctx context.Context) ([]models.Profile, error)

	GetRace(ctx context.Context, id uuid.UUID) (*models.Race, error)
	GetRaceBySeasonRound(ctx context.Context, seasonID uuid.UUID, roundNumber int) (*models.Race, error)
	ListFinalizedRaces(ctx context.Context, seasonID uuid.UUID) ([]models.Race, error)
	SetPicksOpen(ctx context.Context, raceID uuid.UUID, open bool) error

	GetSeason(ctx context.Context, id uuid.UUID) (*models.Season, error)
	ListPointMappings(ctx context.Context, seasonID uuid.UUID) ([]models.PointMapping, error)

	GetDraftOrder(ctx context.Context, raceID uuid.UUID) ([]models.DraftOrderEntry, error)
	ReplaceDraftOrder(ctx context.Context, raceID uuid.UUID, entries []models.DraftOrderEntry) error
	DeleteDraftOrder(ctx context.Context, raceID uuid.UUID) error

	ListPicks(ctx context.Context, raceID uuid.UUID) ([]models.Pick, error)
	ListPicksWithOwners(ctx context.Context, raceID uuid.UUID) ([]scoring.PickWithOwner, error)
	CreatePick(ctx context.Context, req CreatePickRequest) (*models.Pick, error)
	UpdatePickDriver(ctx context.Context, raceID, userID uuid.UUID, draftRound int, driverID uuid.UUID) (*models.Pick, error)

	ListActiveDrivers(ctx context.Context) ([]models.Driver, error)
	ListRaceResults(ctx context.Context, raceID uuid.UUID) ([]models.RaceResult, error)
}

// Notifier delivers turn notifications to players. Best-effort,
// at-least-once; the draft state never depends on delivery.
type Notifier interface {
	NotifyTurn(ctx context.Context, n TurnNotification) error
}

// EventPublisher pushes change events toward connected draft-room clients.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, raceID uuid.UUID, payload any) error
}

// CreatePickRequest carries a fully resolved pick write. PickOrder and
// DraftRound always come from the current slot, never from the caller.
type CreatePickRequest struct {
	RaceID     uuid.UUID
	UserID     uuid.UUID
	DriverID   uuid.UUID
	PickOrder  int
	DraftRound int
	PickedAt   time.Time
}

// SubmitPickRequest is a player's (or an admin's on-behalf-of) pick.
type SubmitPickRequest struct {
	RaceID       uuid.UUID
	DriverID     uuid.UUID
	ActingUserID uuid.UUID
	OnBehalfOf   *uuid.UUID
}

// UpdatePickRequest replaces the driver of a still-editable pick.
type UpdatePickRequest struct {
	RaceID       uuid.UUID
	DraftRound   int
	NewDriverID  uuid.UUID
	ActingUserID uuid.UUID
}

// GenerateOrderRequest configures a race's draft order. Seed is only
// honored for the random strategy; nil means a nondeterministic shuffle.
type GenerateOrderRequest struct {
	RaceID   uuid.UUID
	Strategy Strategy
	Seed     *int64
}

// TurnNotification tells a player their pick slot is up.
type TurnNotification struct {
	TargetUserID uuid.UUID      `json:"target_user_id"`
	RaceID       uuid.UUID      `json:"race_id"`
	EventType    string         `json:"event_type"`
	Title        string         `json:"title"`
	Message      string         `json:"message"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}
