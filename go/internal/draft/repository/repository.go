package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gridrival/sweepstakes/go/internal/draft"
	"github.com/gridrival/sweepstakes/go/internal/models"
	"github.com/gridrival/sweepstakes/go/internal/scoring"
	"github.com/gridrival/sweepstakes/go/internal/sqlutil"
)

// Postgres unique_violation. The unique indexes on
// (race_id, user_id, draft_round) and (race_id, driver_id) are the
// authoritative guard against concurrent picks; the in-memory turn check
// is only a UX optimization.
const uniqueViolation = "23505"

type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{
		pool: pool,
	}
}

func (r *Repository) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	var p models.Profile
	err := r.pool.QueryRow(ctx, `
		SELECT id, display_name, is_admin, is_active, created_at
		FROM profiles
		WHERE id = $1`, id,
	).Scan(&p.ID, &p.DisplayName, &p.IsAdmin, &p.IsActive, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("profile %s: %w", id, draft.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}

func (r *Repository) ListActiveProfiles(ctx context.Context) ([]models.Profile, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, display_name, is_admin, is_active, created_at
		FROM profiles
		WHERE is_active
		ORDER BY display_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list active profiles: %w", err)
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		var p models.Profile
		if err := rows.Scan(&p.ID, &p.DisplayName, &p.IsAdmin, &p.IsActive, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *Repository) GetRace(ctx context.Context, id uuid.UUID) (*models.Race, error) {
	race, err := r.scanRace(r.pool.QueryRow(ctx, `
		SELECT id, season_id, name, round_number, race_date, picks_open, results_finalized, created_at, updated_at
		FROM races
		WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("race %s: %w", id, draft.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get race: %w", err)
	}
	return race, nil
}

func (r *Repository) GetRaceBySeasonRound(ctx context.Context, seasonID uuid.UUID, roundNumber int) (*models.Race, error) {
	race, err := r.scanRace(r.pool.QueryRow(ctx, `
		SELECT id, season_id, name, round_number, race_date, picks_open, results_finalized, created_at, updated_at
		FROM races
		WHERE season_id = $1 AND round_number = $2`, seasonID, roundNumber))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("season %s round %d: %w", seasonID, roundNumber, draft.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get race by season round: %w", err)
	}
	return race, nil
}

func (r *Repository) ListFinalizedRaces(ctx context.Context, seasonID uuid.UUID) ([]models.Race, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, season_id, name, round_number, race_date, picks_open, results_finalized, created_at, updated_at
		FROM races
		WHERE season_id = $1 AND results_finalized
		ORDER BY round_number`, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list finalized races: %w", err)
	}
	defer rows.Close()

	var races []models.Race
	for rows.Next() {
		race, err := r.scanRace(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan race: %w", err)
		}
		races = append(races, *race)
	}
	return races, rows.Err()
}

func (r *Repository) SetPicksOpen(ctx context.Context, raceID uuid.UUID, open bool) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE races
		SET picks_open = $2, updated_at = now()
		WHERE id = $1`, raceID, open)
	if err != nil {
		return fmt.Errorf("failed to set picks_open: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("race %s: %w", raceID, draft.ErrNotFound)
	}
	return nil
}

func (r *Repository) GetSeason(ctx context.Context, id uuid.UUID) (*models.Season, error) {
	var s models.Season
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, year, dnf_points, dsq_points, is_active
		FROM seasons
		WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Year, &s.DNFPoints, &s.DSQPoints, &s.IsActive)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("season %s: %w", id, draft.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get season: %w", err)
	}
	return &s, nil
}

func (r *Repository) ListPointMappings(ctx context.Context, seasonID uuid.UUID) ([]models.PointMapping, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT season_id, position, points
		FROM point_mappings
		WHERE season_id = $1
		ORDER BY position`, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list point mappings: %w", err)
	}
	defer rows.Close()

	var mappings []models.PointMapping
	for rows.Next() {
		var m models.PointMapping
		if err := rows.Scan(&m.SeasonID, &m.Position, &m.Points); err != nil {
			return nil, fmt.Errorf("failed to scan point mapping: %w", err)
		}
		mappings = append(mappings, m)
	}
	return mappings, rows.Err()
}

func (r *Repository) GetDraftOrder(ctx context.Context, raceID uuid.UUID) ([]models.DraftOrderEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT e.user_id, p.display_name, e.pick_order, e.draft_round, e.previous_race_points
		FROM draft_order_entries e
		JOIN profiles p ON p.id = e.user_id
		WHERE e.race_id = $1
		ORDER BY e.pick_order`, raceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get draft order: %w", err)
	}
	defer rows.Close()

	var entries []models.DraftOrderEntry
	for rows.Next() {
		var e models.DraftOrderEntry
		if err := rows.Scan(&e.UserID, &e.DisplayName, &e.PickOrder, &e.DraftRound, &e.PreviousRacePoints); err != nil {
			return nil, fmt.Errorf("failed to scan draft order entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ReplaceDraftOrder swaps a race's entire order in one transaction so a
// failed insert never leaves a half-written order behind.
func (r *Repository) ReplaceDraftOrder(ctx context.Context, raceID uuid.UUID, entries []models.DraftOrderEntry) error {
	return sqlutil.Run(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM draft_order_entries WHERE race_id = $1`, raceID); err != nil {
			return fmt.Errorf("failed to delete old draft order: %w", err)
		}
		for _, e := range entries {
			_, err := tx.Exec(ctx, `
				INSERT INTO draft_order_entries (race_id, user_id, pick_order, draft_round, previous_race_points)
				VALUES ($1, $2, $3, $4, $5)`,
				raceID, e.UserID, e.PickOrder, e.DraftRound, e.PreviousRacePoints)
			if err != nil {
				return fmt.Errorf("failed to insert draft order entry: %w", err)
			}
		}
		return nil
	})
}

func (r *Repository) DeleteDraftOrder(ctx context.Context, raceID uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM draft_order_entries WHERE race_id = $1`, raceID); err != nil {
		return fmt.Errorf("failed to delete draft order: %w", err)
	}
	return nil
}

func (r *Repository) ListPicks(ctx context.Context, raceID uuid.UUID) ([]models.Pick, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, race_id, user_id, driver_id, pick_order, draft_round, picked_at
		FROM picks
		WHERE race_id = $1
		ORDER BY pick_order`, raceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list picks: %w", err)
	}
	defer rows.Close()

	var picks []models.Pick
	for rows.Next() {
		var p models.Pick
		if err := rows.Scan(&p.ID, &p.RaceID, &p.UserID, &p.DriverID, &p.PickOrder, &p.DraftRound, &p.PickedAt); err != nil {
			return nil, fmt.Errorf("failed to scan pick: %w", err)
		}
		picks = append(picks, p)
	}
	return picks, rows.Err()
}

func (r *Repository) ListPicksWithOwners(ctx context.Context, raceID uuid.UUID) ([]scoring.PickWithOwner, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT k.id, k.race_id, k.user_id, k.driver_id, k.pick_order, k.draft_round, k.picked_at, p.display_name
		FROM picks k
		JOIN profiles p ON p.id = k.user_id
		WHERE k.race_id = $1
		ORDER BY k.pick_order`, raceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list picks with owners: %w", err)
	}
	defer rows.Close()

	var picks []scoring.PickWithOwner
	for rows.Next() {
		var p scoring.PickWithOwner
		err := rows.Scan(&p.Pick.ID, &p.Pick.RaceID, &p.Pick.UserID, &p.Pick.DriverID,
			&p.Pick.PickOrder, &p.Pick.DraftRound, &p.Pick.PickedAt, &p.DisplayName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pick with owner: %w", err)
		}
		picks = append(picks, p)
	}
	return picks, rows.Err()
}

func (r *Repository) CreatePick(ctx context.Context, req draft.CreatePickRequest) (*models.Pick, error) {
	pick := models.Pick{
		ID:         uuid.New(),
		RaceID:     req.RaceID,
		UserID:     req.UserID,
		DriverID:   req.DriverID,
		PickOrder:  req.PickOrder,
		DraftRound: req.DraftRound,
		PickedAt:   req.PickedAt,
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO picks (id, race_id, user_id, driver_id, pick_order, draft_round, picked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		pick.ID, pick.RaceID, pick.UserID, pick.DriverID, pick.PickOrder, pick.DraftRound, pick.PickedAt)
	if err != nil {
		return nil, mapPickConstraint(err)
	}
	return &pick, nil
}

func (r *Repository) UpdatePickDriver(ctx context.Context, raceID, userID uuid.UUID, draftRound int, driverID uuid.UUID) (*models.Pick, error) {
	var p models.Pick
	err := r.pool.QueryRow(ctx, `
		UPDATE picks
		SET driver_id = $4
		WHERE race_id = $1 AND user_id = $2 AND draft_round = $3
		RETURNING id, race_id, user_id, driver_id, pick_order, draft_round, picked_at`,
		raceID, userID, draftRound, driverID,
	).Scan(&p.ID, &p.RaceID, &p.UserID, &p.DriverID, &p.PickOrder, &p.DraftRound, &p.PickedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("pick for user %s round %d: %w", userID, draftRound, draft.ErrNotFound)
	}
	if err != nil {
		return nil, mapPickConstraint(err)
	}
	return &p, nil
}

func (r *Repository) ListActiveDrivers(ctx context.Context) ([]models.Driver, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, first_name, last_name, team_name, is_active
		FROM drivers
		WHERE is_active
		ORDER BY last_name, first_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list active drivers: %w", err)
	}
	defer rows.Close()

	var drivers []models.Driver
	for rows.Next() {
		var d models.Driver
		if err := rows.Scan(&d.ID, &d.FirstName, &d.LastName, &d.TeamName, &d.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan driver: %w", err)
		}
		drivers = append(drivers, d)
	}
	return drivers, rows.Err()
}

func (r *Repository) ListRaceResults(ctx context.Context, raceID uuid.UUID) ([]models.RaceResult, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, race_id, driver_id, position, dnf, dsq
		FROM race_results
		WHERE race_id = $1
		ORDER BY position NULLS LAST`, raceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list race results: %w", err)
	}
	defer rows.Close()

	var results []models.RaceResult
	for rows.Next() {
		var res models.RaceResult
		if err := rows.Scan(&res.ID, &res.RaceID, &res.DriverID, &res.Position, &res.DNF, &res.DSQ); err != nil {
			return nil, fmt.Errorf("failed to scan race result: %w", err)
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

type raceRow interface {
	Scan(dest ...any) error
}

func (r *Repository) scanRace(row raceRow) (*models.Race, error) {
	var race models.Race
	err := row.Scan(&race.ID, &race.SeasonID, &race.Name, &race.RoundNumber, &race.RaceDate,
		&race.PicksOpen, &race.ResultsFinalized, &race.CreatedAt, &race.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &race, nil
}

// mapPickConstraint turns a unique violation on the picks table into the
// matching domain error. Which index fired tells us which invariant the
// concurrent write lost.
func mapPickConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		switch pgErr.ConstraintName {
		case "picks_race_id_driver_id_key":
			return fmt.Errorf("%w: %s", draft.ErrDriverTaken, pgErr.Detail)
		case "picks_race_id_user_id_draft_round_key":
			return fmt.Errorf("%w: slot already filled", draft.ErrNotYourTurn)
		}
		return fmt.Errorf("%w: %s", draft.ErrDriverTaken, pgErr.Detail)
	}
	return fmt.Errorf("failed to write pick: %w", err)
}
