package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/gridrival/sweepstakes/go/internal/draft"
	"github.com/gridrival/sweepstakes/go/internal/models"
	"github.com/gridrival/sweepstakes/go/internal/scoring"
)

// DraftApp defines what the HTTP layer needs from the draft app
type DraftApp interface {
	GenerateOrder(ctx context.Context, req draft.GenerateOrderRequest) ([]models.DraftOrderEntry, error)
	ClearOrder(ctx context.Context, raceID uuid.UUID) error
	Order(ctx context.Context, raceID uuid.UUID) ([]models.DraftOrderEntry, error)
	OrderText(ctx context.Context, raceID uuid.UUID) (string, error)
	CurrentSlot(ctx context.Context, raceID uuid.UUID) (*models.DraftOrderEntry, error)
	SubmitPick(ctx context.Context, req draft.SubmitPickRequest) (*models.Pick, error)
	UpdatePick(ctx context.Context, req draft.UpdatePickRequest) (*models.Pick, error)
	RaceLeaderboard(ctx context.Context, raceID uuid.UUID) ([]scoring.PlayerScore, error)
	SeasonStandings(ctx context.Context, seasonID uuid.UUID) ([]scoring.Standing, error)
}

// Handler is the JSON surface an embedding app mounts for the draft core.
type Handler struct {
	app DraftApp
}

func NewHandler(app DraftApp) *Handler {
	return &Handler{app: app}
}

// RegisterRoutes registers all draft endpoints on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/races/{race_id}/order", h.handleGenerateOrder)
	mux.HandleFunc("DELETE /api/races/{race_id}/order", h.handleClearOrder)
	mux.HandleFunc("GET /api/races/{race_id}/order", h.handleGetOrder)
	mux.HandleFunc("GET /api/races/{race_id}/order/text", h.handleOrderText)
	mux.HandleFunc("GET /api/races/{race_id}/current-slot", h.handleCurrentSlot)
	mux.HandleFunc("POST /api/races/{race_id}/picks", h.handleSubmitPick)
	mux.HandleFunc("PATCH /api/races/{race_id}/picks", h.handleUpdatePick)
	mux.HandleFunc("GET /api/races/{race_id}/leaderboard", h.handleLeaderboard)
	mux.HandleFunc("GET /api/seasons/{season_id}/standings", h.handleStandings)
}

type generateOrderRequest struct {
	Strategy string `json:"strategy"`
	Seed     *int64 `json:"seed,omitempty"`
}

func (h *Handler) handleGenerateOrder(w http.ResponseWriter, r *http.Request) {
	raceID, ok := pathUUID(w, r, "race_id")
	if !ok {
		return
	}

	var body generateOrderRequest
	if !decodeBody(w, r, &body) {
		return
	}

	entries, err := h.app.GenerateOrder(r.Context(), draft.GenerateOrderRequest{
		RaceID:   raceID,
		Strategy: draft.Strategy(body.Strategy),
		Seed:     body.Seed,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"order": entries})
}

func (h *Handler) handleClearOrder(w http.ResponseWriter, r *http.Request) {
	raceID, ok := pathUUID(w, r, "race_id")
	if !ok {
		return
	}

	if err := h.app.ClearOrder(r.Context(), raceID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	raceID, ok := pathUUID(w, r, "race_id")
	if !ok {
		return
	}

	entries, err := h.app.Order(r.Context(), raceID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"order": entries})
}

func (h *Handler) handleOrderText(w http.ResponseWriter, r *http.Request) {
	raceID, ok := pathUUID(w, r, "race_id")
	if !ok {
		return
	}

	text, err := h.app.OrderText(r.Context(), raceID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"text": text})
}

func (h *Handler) handleCurrentSlot(w http.ResponseWriter, r *http.Request) {
	raceID, ok := pathUUID(w, r, "race_id")
	if !ok {
		return
	}

	slot, err := h.app.CurrentSlot(r.Context(), raceID)
	if err != nil {
		writeError(w, err)
		return
	}
	// A nil slot means the draft is complete.
	writeJSON(w, http.StatusOK, map[string]any{"slot": slot, "complete": slot == nil})
}

type submitPickRequest struct {
	DriverID     uuid.UUID  `json:"driver_id"`
	ActingUserID uuid.UUID  `json:"acting_user_id"`
	OnBehalfOf   *uuid.UUID `json:"on_behalf_of,omitempty"`
}

func (h *Handler) handleSubmitPick(w http.ResponseWriter, r *http.Request) {
	raceID, ok := pathUUID(w, r, "race_id")
	if !ok {
		return
	}

	var body submitPickRequest
	if !decodeBody(w, r, &body) {
		return
	}

	pick, err := h.app.SubmitPick(r.Context(), draft.SubmitPickRequest{
		RaceID:       raceID,
		DriverID:     body.DriverID,
		ActingUserID: body.ActingUserID,
		OnBehalfOf:   body.OnBehalfOf,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"pick": pick})
}

type updatePickRequest struct {
	DraftRound   int       `json:"draft_round"`
	NewDriverID  uuid.UUID `json:"new_driver_id"`
	ActingUserID uuid.UUID `json:"acting_user_id"`
}

func (h *Handler) handleUpdatePick(w http.ResponseWriter, r *http.Request) {
	raceID, ok := pathUUID(w, r, "race_id")
	if !ok {
		return
	}

	var body updatePickRequest
	if !decodeBody(w, r, &body) {
		return
	}

	pick, err := h.app.UpdatePick(r.Context(), draft.UpdatePickRequest{
		RaceID:       raceID,
		DraftRound:   body.DraftRound,
		NewDriverID:  body.NewDriverID,
		ActingUserID: body.ActingUserID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"pick": pick})
}

func (h *Handler) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	raceID, ok := pathUUID(w, r, "race_id")
	if !ok {
		return
	}

	leaderboard, err := h.app.RaceLeaderboard(r.Context(), raceID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"leaderboard": leaderboard})
}

func (h *Handler) handleStandings(w http.ResponseWriter, r *http.Request) {
	seasonID, ok := pathUUID(w, r, "season_id")
	if !ok {
		return
	}

	standings, err := h.app.SeasonStandings(r.Context(), seasonID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"standings": standings})
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// writeError maps domain errors onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, draft.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, draft.ErrPermissionDenied):
		status = http.StatusForbidden
	case errors.Is(err, draft.ErrNotYourTurn),
		errors.Is(err, draft.ErrDraftComplete),
		errors.Is(err, draft.ErrDriverTaken),
		errors.Is(err, draft.ErrEditWindowClosed),
		errors.Is(err, draft.ErrPicksExist),
		errors.Is(err, draft.ErrPicksClosed):
		status = http.StatusConflict
	case errors.Is(err, draft.ErrInvalidRound),
		errors.Is(err, draft.ErrUnknownStrategy):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
	}
	writeJSON(w, status, map[string]any{"error": err.Error()})
}
