// Package scoring implements the pure scoring calculator: position-to-points
// lookup with season-level DNF/DSQ penalties, per-player race totals, race
// leaderboards and season standings. Missing data (an unmapped position, a
// driver without a result) scores zero rather than erroring; a race that is
// only partially scored is an expected steady state.
package scoring

import (
	"github.com/gridrival/sweepstakes/go/internal/models"
)

// Table is a season's scoring configuration: the position-to-points mapping
// plus the fixed DNF and DSQ penalty values.
type Table struct {
	points    map[int]int
	dnfPoints int
	dsqPoints int
}

// NewTable builds a Table from a season's point mappings and its configured
// penalty values.
func NewTable(mappings []models.PointMapping, dnfPoints, dsqPoints int) Table {
	points := make(map[int]int, len(mappings))
	for _, m := range mappings {
		points[m.Position] = m.Points
	}
	return Table{points: points, dnfPoints: dnfPoints, dsqPoints: dsqPoints}
}

// TableForSeason is a convenience constructor from the season record itself.
func TableForSeason(season models.Season, mappings []models.PointMapping) Table {
	return NewTable(mappings, season.DNFPoints, season.DSQPoints)
}

// PointsForResult returns the points a single result is worth. DSQ takes
// precedence over DNF; both pay the season's configured penalty. An
// unclassified or unmapped position is worth zero.
func (t Table) PointsForResult(result models.RaceResult) int {
	if result.DSQ {
		return t.dsqPoints
	}
	if result.DNF {
		return t.dnfPoints
	}
	if result.Position == nil {
		return 0
	}
	return t.points[*result.Position]
}

// TotalPoints sums the points of every pick that has a matching result. A
// pick whose driver has no result contributes zero.
func (t Table) TotalPoints(picks []models.Pick, results []models.RaceResult) int {
	byDriver := make(map[string]models.RaceResult, len(results))
	for _, r := range results {
		byDriver[r.DriverID.String()] = r
	}

	total := 0
	for _, pick := range picks {
		if result, ok := byDriver[pick.DriverID.String()]; ok {
			total += t.PointsForResult(result)
		}
	}
	return total
}
