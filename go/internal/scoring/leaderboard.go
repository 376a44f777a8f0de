package scoring

import (
	"sort"

	"github.com/google/uuid"
	"github.com/gridrival/sweepstakes/go/internal/models"
)

// PickWithOwner is a completed pick joined with its owner's display name.
type PickWithOwner struct {
	Pick        models.Pick `json:"pick"`
	DisplayName string      `json:"display_name"`
}

// PlayerScore is one row of a race leaderboard.
type PlayerScore struct {
	UserID      uuid.UUID     `json:"user_id"`
	DisplayName string        `json:"display_name"`
	Points      int           `json:"points"`
	Picks       []models.Pick `json:"picks"`
}

// RaceScores is a scored race, input to SeasonStandings.
type RaceScores struct {
	RaceID      uuid.UUID     `json:"race_id"`
	RaceName    string        `json:"race_name"`
	Leaderboard []PlayerScore `json:"leaderboard"`
}

// RacePoints is one race's contribution to a player's season total.
type RacePoints struct {
	RaceID   uuid.UUID `json:"race_id"`
	RaceName string    `json:"race_name"`
	Points   int       `json:"points"`
}

// Standing is one row of the season standings.
type Standing struct {
	UserID      uuid.UUID    `json:"user_id"`
	DisplayName string       `json:"display_name"`
	TotalPoints int          `json:"total_points"`
	RacePoints  []RacePoints `json:"race_points"`
}

// RaceLeaderboard groups picks by owner, totals each group's points and
// sorts descending. Ties keep first-seen order (stable sort).
func RaceLeaderboard(picks []PickWithOwner, results []models.RaceResult, table Table) []PlayerScore {
	var userOrder []uuid.UUID
	grouped := make(map[uuid.UUID]*PlayerScore)

	for _, p := range picks {
		score, ok := grouped[p.Pick.UserID]
		if !ok {
			score = &PlayerScore{UserID: p.Pick.UserID, DisplayName: p.DisplayName}
			grouped[p.Pick.UserID] = score
			userOrder = append(userOrder, p.Pick.UserID)
		}
		score.Picks = append(score.Picks, p.Pick)
	}

	leaderboard := make([]PlayerScore, 0, len(userOrder))
	for _, id := range userOrder {
		score := grouped[id]
		score.Points = table.TotalPoints(score.Picks, results)
		leaderboard = append(leaderboard, *score)
	}

	sort.SliceStable(leaderboard, func(i, j int) bool {
		return leaderboard[i].Points > leaderboard[j].Points
	})
	return leaderboard
}

// SeasonStandings folds per-race leaderboards into cumulative totals per
// player, sorted descending by total. A player absent from a race simply
// contributes nothing for it.
func SeasonStandings(races []RaceScores) []Standing {
	var userOrder []uuid.UUID
	totals := make(map[uuid.UUID]*Standing)

	for _, race := range races {
		for _, entry := range race.Leaderboard {
			standing, ok := totals[entry.UserID]
			if !ok {
				standing = &Standing{UserID: entry.UserID, DisplayName: entry.DisplayName}
				totals[entry.UserID] = standing
				userOrder = append(userOrder, entry.UserID)
			}
			standing.TotalPoints += entry.Points
			standing.RacePoints = append(standing.RacePoints, RacePoints{
				RaceID:   race.RaceID,
				RaceName: race.RaceName,
				Points:   entry.Points,
			})
		}
	}

	standings := make([]Standing, 0, len(userOrder))
	for _, id := range userOrder {
		standings = append(standings, *totals[id])
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].TotalPoints > standings[j].TotalPoints
	})
	return standings
}
