package draft

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/gridrival/sweepstakes/go/internal/draft/events"
	"github.com/gridrival/sweepstakes/go/internal/draftorder"
	"github.com/gridrival/sweepstakes/go/internal/models"
	"github.com/gridrival/sweepstakes/go/internal/scoring"
)

// App coordinates a race's draft session: order seeding, pick submission
// and edits against persisted state, plus read projections for the draft
// room. Turn state is never stored; it is recomputed from the draft order
// and the pick log on every call.
type App struct {
	repo     Repository
	notifier Notifier
	events   EventPublisher
	clock    clockwork.Clock
}

// NewApp creates a new draft App
func NewApp(repo Repository, notifier Notifier, publisher EventPublisher, clock clockwork.Clock) *App {
	return &App{
		repo:     repo,
		notifier: notifier,
		events:   publisher,
		clock:    clock,
	}
}

// GenerateOrder computes and persists a race's draft order using the
// requested seeding strategy. Refuses to replace an order once any pick
// exists, since that would orphan the completed picks.
func (a *App) GenerateOrder(ctx context.Context, req GenerateOrderRequest) ([]models.DraftOrderEntry, error) {
	if _, err := ParseStrategy(string(req.Strategy)); err != nil {
		return nil, err
	}

	race, err := a.repo.GetRace(ctx, req.RaceID)
	if err != nil {
		return nil, fmt.Errorf("race not found: %w", err)
	}

	picks, err := a.repo.ListPicks(ctx, req.RaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list picks: %w", err)
	}
	if len(picks) > 0 {
		return nil, fmt.Errorf("%w: %d picks recorded for race %s", ErrPicksExist, len(picks), req.RaceID)
	}

	var entries []models.DraftOrderEntry
	switch req.Strategy {
	case StrategyRandom:
		entries, err = a.randomOrder(ctx, req.Seed)
	case StrategyPerformance:
		entries, err = a.performanceOrder(ctx, race)
	}
	if err != nil {
		return nil, err
	}

	if err := a.repo.ReplaceDraftOrder(ctx, req.RaceID, entries); err != nil {
		return nil, fmt.Errorf("failed to persist draft order: %w", err)
	}

	a.publish(ctx, events.TypeOrderGenerated, req.RaceID, events.OrderGeneratedPayload{
		RaceID:      req.RaceID.String(),
		Strategy:    string(req.Strategy),
		SlotCount:   len(entries),
		GeneratedAt: a.clock.Now().UTC(),
	})

	log.Info().
		Str("race_id", req.RaceID.String()).
		Str("strategy", string(req.Strategy)).
		Int("slots", len(entries)).
		Msg("generated draft order")
	return entries, nil
}

func (a *App) randomOrder(ctx context.Context, seed *int64) ([]models.DraftOrderEntry, error) {
	profiles, err := a.repo.ListActiveProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active profiles: %w", err)
	}

	src := draftorder.NewRandomSource()
	if seed != nil {
		src = draftorder.NewSeededSource(*seed)
	}
	return draftorder.GenerateRandomOrder(profiles, src), nil
}

func (a *App) performanceOrder(ctx context.Context, race *models.Race) ([]models.DraftOrderEntry, error) {
	if race.RoundNumber <= 1 {
		return nil, fmt.Errorf("%w: no previous race before round %d", ErrInvalidRound, race.RoundNumber)
	}

	previous, err := a.repo.GetRaceBySeasonRound(ctx, race.SeasonID, race.RoundNumber-1)
	if err != nil {
		return nil, fmt.Errorf("previous race not found: %w", err)
	}

	table, err := a.tableForSeason(ctx, race.SeasonID)
	if err != nil {
		return nil, err
	}

	results, err := a.repo.ListRaceResults(ctx, previous.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list results for race %s: %w", previous.ID, err)
	}
	previousPicks, err := a.repo.ListPicks(ctx, previous.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list picks for race %s: %w", previous.ID, err)
	}
	profiles, err := a.repo.ListActiveProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active profiles: %w", err)
	}

	picksByUser := make(map[uuid.UUID][]models.Pick)
	for _, p := range previousPicks {
		picksByUser[p.UserID] = append(picksByUser[p.UserID], p)
	}

	players := make([]draftorder.PlayerPoints, 0, len(profiles))
	for _, profile := range profiles {
		players = append(players, draftorder.PlayerPoints{
			Profile:            profile,
			PreviousRacePoints: table.TotalPoints(picksByUser[profile.ID], results),
		})
	}
	return draftorder.GeneratePerformanceOrder(players), nil
}

// ClearOrder deletes a race's draft order wholesale and closes picks.
func (a *App) ClearOrder(ctx context.Context, raceID uuid.UUID) error {
	if _, err := a.repo.GetRace(ctx, raceID); err != nil {
		return fmt.Errorf("race not found: %w", err)
	}

	if err := a.repo.DeleteDraftOrder(ctx, raceID); err != nil {
		return fmt.Errorf("failed to delete draft order: %w", err)
	}
	if err := a.repo.SetPicksOpen(ctx, raceID, false); err != nil {
		return fmt.Errorf("failed to close picks: %w", err)
	}

	a.publish(ctx, events.TypeOrderCleared, raceID, events.OrderClearedPayload{
		RaceID:    raceID.String(),
		ClearedAt: a.clock.Now().UTC(),
	})

	log.Info().Str("race_id", raceID.String()).Msg("cleared draft order")
	return nil
}

// SubmitPick records a pick for whoever's turn it is. The slot's pick
// order and round are taken from the derived current slot, never from the
// caller. When only one undrafted driver remains afterwards it is assigned
// to the next slot automatically, and a completed draft closes picks.
func (a *App) SubmitPick(ctx context.Context, req SubmitPickRequest) (*models.Pick, error) {
	target, err := a.resolveTarget(ctx, req.ActingUserID, req.OnBehalfOf)
	if err != nil {
		return nil, err
	}

	race, err := a.repo.GetRace(ctx, req.RaceID)
	if err != nil {
		return nil, fmt.Errorf("race not found: %w", err)
	}
	if !race.PicksOpen {
		return nil, fmt.Errorf("%w: race %s", ErrPicksClosed, race.ID)
	}

	order, picks, err := a.loadSession(ctx, req.RaceID)
	if err != nil {
		return nil, err
	}

	slot := draftorder.CurrentPickSlot(order, picks)
	if slot == nil {
		return nil, fmt.Errorf("%w: race %s", ErrDraftComplete, race.ID)
	}
	if slot.UserID != target {
		return nil, fmt.Errorf("%w: current slot belongs to %s", ErrNotYourTurn, slot.DisplayName)
	}

	if err := a.checkDriverFree(picks, req.DriverID); err != nil {
		return nil, err
	}

	pick, err := a.repo.CreatePick(ctx, CreatePickRequest{
		RaceID:     req.RaceID,
		UserID:     slot.UserID,
		DriverID:   req.DriverID,
		PickOrder:  slot.PickOrder,
		DraftRound: slot.DraftRound,
		PickedAt:   a.clock.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pick: %w", err)
	}
	picks = append(picks, *pick)
	a.publishPickMade(ctx, pick, false)

	next := draftorder.CurrentPickSlot(order, picks)

	// Only one choice left is no choice at all.
	if next != nil {
		if remaining, err := a.remainingDrivers(ctx, picks); err != nil {
			log.Error().Err(err).Str("race_id", req.RaceID.String()).Msg("auto-assign check failed")
		} else if len(remaining) == 1 {
			auto, err := a.repo.CreatePick(ctx, CreatePickRequest{
				RaceID:     req.RaceID,
				UserID:     next.UserID,
				DriverID:   remaining[0].ID,
				PickOrder:  next.PickOrder,
				DraftRound: next.DraftRound,
				PickedAt:   a.clock.Now().UTC(),
			})
			if err != nil {
				// The submitted pick is already committed; the next call
				// recomputes the slot and retries the assignment.
				log.Error().Err(err).Str("race_id", req.RaceID.String()).Msg("auto-assign failed")
			} else {
				picks = append(picks, *auto)
				a.publishPickMade(ctx, auto, true)
				next = draftorder.CurrentPickSlot(order, picks)
			}
		}
	}

	if next == nil {
		if err := a.repo.SetPicksOpen(ctx, req.RaceID, false); err != nil {
			return nil, fmt.Errorf("failed to close completed draft: %w", err)
		}
		a.publish(ctx, events.TypeDraftCompleted, req.RaceID, events.DraftCompletedPayload{
			RaceID:      req.RaceID.String(),
			TotalPicks:  len(picks),
			CompletedAt: a.clock.Now().UTC(),
		})
		log.Info().Str("race_id", req.RaceID.String()).Int("picks", len(picks)).Msg("draft complete")
		return pick, nil
	}

	if next.UserID != pick.UserID {
		a.notifyTurn(ctx, req.RaceID, next)
	}
	return pick, nil
}

// UpdatePick swaps the driver of the acting user's still-editable pick.
// The pick keeps its slot; only the driver changes.
func (a *App) UpdatePick(ctx context.Context, req UpdatePickRequest) (*models.Pick, error) {
	race, err := a.repo.GetRace(ctx, req.RaceID)
	if err != nil {
		return nil, fmt.Errorf("race not found: %w", err)
	}
	if !race.PicksOpen {
		return nil, fmt.Errorf("%w: race %s", ErrPicksClosed, race.ID)
	}

	order, picks, err := a.loadSession(ctx, req.RaceID)
	if err != nil {
		return nil, err
	}

	if !draftorder.CanEditPick(order, picks, req.ActingUserID, req.DraftRound) {
		return nil, fmt.Errorf("%w: round %d pick for user %s", ErrEditWindowClosed, req.DraftRound, req.ActingUserID)
	}

	for _, p := range picks {
		if p.DriverID != req.NewDriverID {
			continue
		}
		if p.UserID == req.ActingUserID && p.DraftRound == req.DraftRound {
			// Re-picking the same driver is a no-op update.
			continue
		}
		return nil, fmt.Errorf("%w: driver %s", ErrDriverTaken, req.NewDriverID)
	}

	pick, err := a.repo.UpdatePickDriver(ctx, req.RaceID, req.ActingUserID, req.DraftRound, req.NewDriverID)
	if err != nil {
		return nil, fmt.Errorf("failed to update pick: %w", err)
	}

	a.publish(ctx, events.TypePickUpdated, req.RaceID, events.PickUpdatedPayload{
		PickID:     pick.ID.String(),
		RaceID:     pick.RaceID.String(),
		UserID:     pick.UserID.String(),
		DriverID:   pick.DriverID.String(),
		DraftRound: pick.DraftRound,
		UpdatedAt:  a.clock.Now().UTC(),
	})

	log.Info().
		Str("race_id", req.RaceID.String()).
		Str("user_id", req.ActingUserID.String()).
		Int("draft_round", req.DraftRound).
		Msg("updated pick")
	return pick, nil
}

// Order returns a race's persisted draft order.
func (a *App) Order(ctx context.Context, raceID uuid.UUID) ([]models.DraftOrderEntry, error) {
	order, err := a.repo.GetDraftOrder(ctx, raceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get draft order: %w", err)
	}
	return order, nil
}

// CurrentSlot returns the slot whose owner picks next, or nil when the
// draft is complete.
func (a *App) CurrentSlot(ctx context.Context, raceID uuid.UUID) (*models.DraftOrderEntry, error) {
	order, picks, err := a.loadSession(ctx, raceID)
	if err != nil {
		return nil, err
	}
	return draftorder.CurrentPickSlot(order, picks), nil
}

// OrderText renders the draft order checklist for posting into a chat.
func (a *App) OrderText(ctx context.Context, raceID uuid.UUID) (string, error) {
	order, picks, err := a.loadSession(ctx, raceID)
	if err != nil {
		return "", err
	}
	return draftorder.FormatOrderForTeams(order, picks), nil
}

// RaceLeaderboard scores a race's picks against its results.
func (a *App) RaceLeaderboard(ctx context.Context, raceID uuid.UUID) ([]scoring.PlayerScore, error) {
	race, err := a.repo.GetRace(ctx, raceID)
	if err != nil {
		return nil, fmt.Errorf("race not found: %w", err)
	}

	table, err := a.tableForSeason(ctx, race.SeasonID)
	if err != nil {
		return nil, err
	}
	picks, err := a.repo.ListPicksWithOwners(ctx, raceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list picks: %w", err)
	}
	results, err := a.repo.ListRaceResults(ctx, raceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	return scoring.RaceLeaderboard(picks, results, table), nil
}

// SeasonStandings folds every finalized race of a season into cumulative
// standings with a per-race breakdown.
func (a *App) SeasonStandings(ctx context.Context, seasonID uuid.UUID) ([]scoring.Standing, error) {
	table, err := a.tableForSeason(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	races, err := a.repo.ListFinalizedRaces(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list finalized races: %w", err)
	}

	scored := make([]scoring.RaceScores, 0, len(races))
	for _, race := range races {
		picks, err := a.repo.ListPicksWithOwners(ctx, race.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list picks for race %s: %w", race.ID, err)
		}
		results, err := a.repo.ListRaceResults(ctx, race.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list results for race %s: %w", race.ID, err)
		}
		scored = append(scored, scoring.RaceScores{
			RaceID:      race.ID,
			RaceName:    race.Name,
			Leaderboard: scoring.RaceLeaderboard(picks, results, table),
		})
	}
	return scoring.SeasonStandings(scored), nil
}

func (a *App) tableForSeason(ctx context.Context, seasonID uuid.UUID) (scoring.Table, error) {
	season, err := a.repo.GetSeason(ctx, seasonID)
	if err != nil {
		return scoring.Table{}, fmt.Errorf("season not found: %w", err)
	}
	mappings, err := a.repo.ListPointMappings(ctx, seasonID)
	if err != nil {
		return scoring.Table{}, fmt.Errorf("failed to list point mappings: %w", err)
	}
	return scoring.TableForSeason(*season, mappings), nil
}

// resolveTarget returns the player the pick is for. Picking on behalf of
// someone else requires an admin profile.
func (a *App) resolveTarget(ctx context.Context, actingUserID uuid.UUID, onBehalfOf *uuid.UUID) (uuid.UUID, error) {
	if onBehalfOf == nil {
		return actingUserID, nil
	}

	actor, err := a.repo.GetProfile(ctx, actingUserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("acting profile not found: %w", err)
	}
	if !actor.IsAdmin {
		return uuid.Nil, fmt.Errorf("%w: %s cannot pick on behalf of %s", ErrPermissionDenied, actingUserID, *onBehalfOf)
	}
	return *onBehalfOf, nil
}

func (a *App) loadSession(ctx context.Context, raceID uuid.UUID) ([]models.DraftOrderEntry, []models.Pick, error) {
	order, err := a.repo.GetDraftOrder(ctx, raceID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get draft order: %w", err)
	}
	if len(order) == 0 {
		return nil, nil, fmt.Errorf("%w: no draft order for race %s", ErrNotFound, raceID)
	}

	picks, err := a.repo.ListPicks(ctx, raceID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list picks: %w", err)
	}
	return order, picks, nil
}

func (a *App) checkDriverFree(picks []models.Pick, driverID uuid.UUID) error {
	for _, p := range picks {
		if p.DriverID == driverID {
			return fmt.Errorf("%w: driver %s", ErrDriverTaken, driverID)
		}
	}
	return nil
}

func (a *App) remainingDrivers(ctx context.Context, picks []models.Pick) ([]models.Driver, error) {
	drivers, err := a.repo.ListActiveDrivers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}

	taken := make(map[uuid.UUID]bool, len(picks))
	for _, p := range picks {
		taken[p.DriverID] = true
	}

	var remaining []models.Driver
	for _, d := range drivers {
		if !taken[d.ID] {
			remaining = append(remaining, d)
		}
	}
	return remaining, nil
}

func (a *App) publishPickMade(ctx context.Context, pick *models.Pick, auto bool) {
	a.publish(ctx, events.TypePickMade, pick.RaceID, events.PickMadePayload{
		PickID:     pick.ID.String(),
		RaceID:     pick.RaceID.String(),
		UserID:     pick.UserID.String(),
		DriverID:   pick.DriverID.String(),
		PickOrder:  pick.PickOrder,
		DraftRound: pick.DraftRound,
		AutoPick:   auto,
		PickedAt:   pick.PickedAt,
	})
}

// publish is fire-and-forget. Clients re-fetch authoritative state, so a
// lost event is a delay, not corruption.
func (a *App) publish(ctx context.Context, eventType string, raceID uuid.UUID, payload any) {
	if a.events == nil {
		return
	}
	if err := a.events.Publish(ctx, eventType, raceID, payload); err != nil {
		log.Error().Err(err).
			Str("event_type", eventType).
			Str("race_id", raceID.String()).
			Msg("failed to publish draft event")
	}
}

func (a *App) notifyTurn(ctx context.Context, raceID uuid.UUID, slot *models.DraftOrderEntry) {
	if a.notifier == nil {
		return
	}

	n := TurnNotification{
		TargetUserID: slot.UserID,
		RaceID:       raceID,
		EventType:    events.TypeTurnStarted,
		Title:        "Your turn to pick",
		Message:      fmt.Sprintf("%s, you are up for round %d (pick %d).", slot.DisplayName, slot.DraftRound, slot.PickOrder),
		Metadata: map[string]any{
			"pick_order":  slot.PickOrder,
			"draft_round": slot.DraftRound,
		},
	}
	if err := a.notifier.NotifyTurn(ctx, n); err != nil {
		log.Error().Err(err).
			Str("race_id", raceID.String()).
			Str("user_id", slot.UserID.String()).
			Msg("failed to send turn notification")
	}

	a.publish(ctx, events.TypeTurnStarted, raceID, events.TurnStartedPayload{
		RaceID:     raceID.String(),
		UserID:     slot.UserID.String(),
		PickOrder:  slot.PickOrder,
		DraftRound: slot.DraftRound,
		StartedAt:  a.clock.Now().UTC(),
	})
}
