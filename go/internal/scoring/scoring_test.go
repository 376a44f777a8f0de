package scoring

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridrival/sweepstakes/go/internal/models"
)

func testTable() Table {
	season := models.Season{DNFPoints: -5, DSQPoints: -5}
	mappings := []models.PointMapping{
		{Position: 1, Points: 25},
		{Position: 2, Points: 18},
		{Position: 3, Points: 15},
	}
	return TableForSeason(season, mappings)
}

func driverID(name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("driver-"+name))
}

func intPtr(v int) *int { return &v }

func TestPointsForResult(t *testing.T) {
	table := testTable()

	tests := []struct {
		name   string
		result models.RaceResult
		want   int
	}{
		{"winner", models.RaceResult{Position: intPtr(1)}, 25},
		{"second", models.RaceResult{Position: intPtr(2)}, 18},
		{"unmapped position", models.RaceResult{Position: intPtr(9)}, 0},
		{"no position", models.RaceResult{}, 0},
		{"dnf", models.RaceResult{Position: intPtr(4), DNF: true}, -5},
		{"dsq", models.RaceResult{Position: intPtr(1), DSQ: true}, -5},
		{"dsq wins over dnf", models.RaceResult{DNF: true, DSQ: true}, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.PointsForResult(tt.result))
		})
	}
}

func TestTotalPoints(t *testing.T) {
	table := testTable()
	userID := uuid.New()

	picks := []models.Pick{
		{UserID: userID, DriverID: driverID("ver")},
		{UserID: userID, DriverID: driverID("ham")},
	}
	results := []models.RaceResult{
		{DriverID: driverID("ver"), Position: intPtr(1)},
		{DriverID: driverID("ham"), Position: intPtr(4), DNF: true},
	}

	assert.Equal(t, 20, table.TotalPoints(picks, results))
}

func TestTotalPointsMissingResult(t *testing.T) {
	table := testTable()

	picks := []models.Pick{{DriverID: driverID("ver")}}
	assert.Equal(t, 0, table.TotalPoints(picks, nil))
}

func TestRaceLeaderboard(t *testing.T) {
	table := testTable()
	alice := uuid.NewSHA1(uuid.NameSpaceOID, []byte("alice"))
	bob := uuid.NewSHA1(uuid.NameSpaceOID, []byte("bob"))

	picks := []PickWithOwner{
		{Pick: models.Pick{UserID: alice, DriverID: driverID("ver")}, DisplayName: "Alice"},
		{Pick: models.Pick{UserID: bob, DriverID: driverID("ham")}, DisplayName: "Bob"},
		{Pick: models.Pick{UserID: alice, DriverID: driverID("nor")}, DisplayName: "Alice"},
		{Pick: models.Pick{UserID: bob, DriverID: driverID("lec")}, DisplayName: "Bob"},
	}
	results := []models.RaceResult{
		{DriverID: driverID("ver"), Position: intPtr(1)},
		{DriverID: driverID("ham"), Position: intPtr(2)},
		{DriverID: driverID("nor"), DNF: true},
		{DriverID: driverID("lec"), Position: intPtr(3)},
	}

	leaderboard := RaceLeaderboard(picks, results, table)
	require.Len(t, leaderboard, 2)

	assert.Equal(t, "Bob", leaderboard[0].DisplayName)
	assert.Equal(t, 33, leaderboard[0].Points)
	assert.Equal(t, "Alice", leaderboard[1].DisplayName)
	assert.Equal(t, 20, leaderboard[1].Points)
	assert.Len(t, leaderboard[1].Picks, 2)
}

func TestRaceLeaderboardIdempotent(t *testing.T) {
	table := testTable()
	alice := uuid.New()

	picks := []PickWithOwner{
		{Pick: models.Pick{UserID: alice, DriverID: driverID("ver")}, DisplayName: "Alice"},
	}
	results := []models.RaceResult{{DriverID: driverID("ver"), Position: intPtr(1)}}

	first := RaceLeaderboard(picks, results, table)
	second := RaceLeaderboard(picks, results, table)
	assert.Equal(t, first, second)
}

func TestSeasonStandings(t *testing.T) {
	alice := uuid.NewSHA1(uuid.NameSpaceOID, []byte("alice"))
	bob := uuid.NewSHA1(uuid.NameSpaceOID, []byte("bob"))
	raceOne := uuid.NewSHA1(uuid.NameSpaceOID, []byte("race-1"))
	raceTwo := uuid.NewSHA1(uuid.NameSpaceOID, []byte("race-2"))

	races := []RaceScores{
		{
			RaceID:   raceOne,
			RaceName: "Bahrain",
			Leaderboard: []PlayerScore{
				{UserID: alice, DisplayName: "Alice", Points: 25},
				{UserID: bob, DisplayName: "Bob", Points: 18},
			},
		},
		{
			RaceID:   raceTwo,
			RaceName: "Jeddah",
			Leaderboard: []PlayerScore{
				{UserID: bob, DisplayName: "Bob", Points: 40},
			},
		},
	}

	standings := SeasonStandings(races)
	require.Len(t, standings, 2)

	assert.Equal(t, "Bob", standings[0].DisplayName)
	assert.Equal(t, 58, standings[0].TotalPoints)
	require.Len(t, standings[0].RacePoints, 2)
	assert.Equal(t, "Jeddah", standings[0].RacePoints[1].RaceName)
	assert.Equal(t, 40, standings[0].RacePoints[1].Points)

	assert.Equal(t, "Alice", standings[1].DisplayName)
	assert.Equal(t, 25, standings[1].TotalPoints)
	require.Len(t, standings[1].RacePoints, 1)
}
