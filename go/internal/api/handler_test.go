package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridrival/sweepstakes/go/internal/draft"
	"github.com/gridrival/sweepstakes/go/internal/models"
	"github.com/gridrival/sweepstakes/go/internal/scoring"
)

type stubApp struct {
	order       []models.DraftOrderEntry
	slot        *models.DraftOrderEntry
	text        string
	pick        *models.Pick
	leaderboard []scoring.PlayerScore
	standings   []scoring.Standing
	err         error

	lastSubmit   draft.SubmitPickRequest
	lastGenerate draft.GenerateOrderRequest
}

func (s *stubApp) GenerateOrder(_ context.Context, req draft.GenerateOrderRequest) ([]models.DraftOrderEntry, error) {
	s.lastGenerate = req
	return s.order, s.err
}

func (s *stubApp) ClearOrder(context.Context, uuid.UUID) error { return s.err }

func (s *stubApp) Order(context.Context, uuid.UUID) ([]models.DraftOrderEntry, error) {
	return s.order, s.err
}

func (s *stubApp) OrderText(context.Context, uuid.UUID) (string, error) { return s.text, s.err }

func (s *stubApp) CurrentSlot(context.Context, uuid.UUID) (*models.DraftOrderEntry, error) {
	return s.slot, s.err
}

func (s *stubApp) SubmitPick(_ context.Context, req draft.SubmitPickRequest) (*models.Pick, error) {
	s.lastSubmit = req
	return s.pick, s.err
}

func (s *stubApp) UpdatePick(context.Context, draft.UpdatePickRequest) (*models.Pick, error) {
	return s.pick, s.err
}

func (s *stubApp) RaceLeaderboard(context.Context, uuid.UUID) ([]scoring.PlayerScore, error) {
	return s.leaderboard, s.err
}

func (s *stubApp) SeasonStandings(context.Context, uuid.UUID) ([]scoring.Standing, error) {
	return s.standings, s.err
}

func serve(app *stubApp, method, path string, body any) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	NewHandler(app).RegisterRoutes(mux)

	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestSubmitPick(t *testing.T) {
	raceID := uuid.New()
	userID := uuid.New()
	driverID := uuid.New()
	app := &stubApp{pick: &models.Pick{ID: uuid.New(), RaceID: raceID, UserID: userID, DriverID: driverID}}

	rec := serve(app, http.MethodPost, "/api/races/"+raceID.String()+"/picks", map[string]any{
		"driver_id":      driverID,
		"acting_user_id": userID,
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, raceID, app.lastSubmit.RaceID)
	assert.Equal(t, driverID, app.lastSubmit.DriverID)
	assert.Nil(t, app.lastSubmit.OnBehalfOf)
}

func TestSubmitPickOnBehalfOf(t *testing.T) {
	raceID := uuid.New()
	target := uuid.New()
	app := &stubApp{pick: &models.Pick{}}

	rec := serve(app, http.MethodPost, "/api/races/"+raceID.String()+"/picks", map[string]any{
		"driver_id":      uuid.New(),
		"acting_user_id": uuid.New(),
		"on_behalf_of":   target,
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, app.lastSubmit.OnBehalfOf)
	assert.Equal(t, target, *app.lastSubmit.OnBehalfOf)
}

func TestSubmitPickInvalidRaceID(t *testing.T) {
	rec := serve(&stubApp{}, http.MethodPost, "/api/races/not-a-uuid/picks", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateOrderPassesSeed(t *testing.T) {
	raceID := uuid.New()
	app := &stubApp{}

	rec := serve(app, http.MethodPost, "/api/races/"+raceID.String()+"/order", map[string]any{
		"strategy": "random",
		"seed":     12345,
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, draft.StrategyRandom, app.lastGenerate.Strategy)
	require.NotNil(t, app.lastGenerate.Seed)
	assert.Equal(t, int64(12345), *app.lastGenerate.Seed)
}

func TestCurrentSlotComplete(t *testing.T) {
	raceID := uuid.New()

	rec := serve(&stubApp{slot: nil}, http.MethodGet, "/api/races/"+raceID.String()+"/current-slot", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Complete bool `json:"complete"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Complete)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{draft.ErrNotFound, http.StatusNotFound},
		{draft.ErrPermissionDenied, http.StatusForbidden},
		{draft.ErrNotYourTurn, http.StatusConflict},
		{draft.ErrDraftComplete, http.StatusConflict},
		{draft.ErrDriverTaken, http.StatusConflict},
		{draft.ErrEditWindowClosed, http.StatusConflict},
		{draft.ErrPicksExist, http.StatusConflict},
		{draft.ErrPicksClosed, http.StatusConflict},
		{draft.ErrInvalidRound, http.StatusBadRequest},
		{draft.ErrUnknownStrategy, http.StatusBadRequest},
	}

	raceID := uuid.New()
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("context: %w", tt.err)
			rec := serve(&stubApp{err: wrapped}, http.MethodPost, "/api/races/"+raceID.String()+"/picks", map[string]any{
				"driver_id":      uuid.New(),
				"acting_user_id": uuid.New(),
			})
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestStandings(t *testing.T) {
	seasonID := uuid.New()
	app := &stubApp{standings: []scoring.Standing{{DisplayName: "Alice", TotalPoints: 43}}}

	rec := serve(app, http.MethodGet, "/api/seasons/"+seasonID.String()+"/standings", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Standings []scoring.Standing `json:"standings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Standings, 1)
	assert.Equal(t, 43, body.Standings[0].TotalPoints)
}
