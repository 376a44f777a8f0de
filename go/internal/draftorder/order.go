// Package draftorder implements the draft turn-order engine: snake-order
// generation, turn derivation and pick edit windows. Every function is pure;
// the order plus the append-only pick log are the only inputs, and "whose
// turn is it" is always recomputed rather than stored.
package draftorder

import (
	"sort"

	"github.com/gridrival/sweepstakes/go/internal/models"
)

// PlayerPoints pairs a profile with the points it scored in the previous
// race, for performance seeding.
type PlayerPoints struct {
	Profile            models.Profile
	PreviousRacePoints int
}

// Shuffle returns a Fisher-Yates permutation of items drawn from src. The
// input slice is not modified.
func Shuffle[T any](items []T, src Source) []T {
	result := make([]T, len(items))
	copy(result, items)

	for i := len(result) - 1; i > 0; i-- {
		j := int(src() * float64(i+1))
		result[i], result[j] = result[j], result[i]
	}

	return result
}

// BuildSnakeOrder shapes players already ordered for round one into the full
// two-round order: round one in the given order with pick orders 1..N, round
// two reversed with pick orders N+1..2N. points carries the optional
// previous-race points per entry (nil for random seeding).
func BuildSnakeOrder(players []models.Profile, points map[string]int) []models.DraftOrderEntry {
	n := len(players)
	order := make([]models.DraftOrderEntry, 0, 2*n)

	for i, p := range players {
		order = append(order, newEntry(p, i+1, models.RoundOne, points))
	}
	for i := range players {
		p := players[n-1-i]
		order = append(order, newEntry(p, n+i+1, models.RoundTwo, points))
	}

	return order
}

func newEntry(p models.Profile, pickOrder, round int, points map[string]int) models.DraftOrderEntry {
	entry := models.DraftOrderEntry{
		UserID:      p.ID,
		DisplayName: p.DisplayName,
		PickOrder:   pickOrder,
		DraftRound:  round,
	}
	if points != nil {
		if pts, ok := points[p.ID.String()]; ok {
			entry.PreviousRacePoints = &pts
		}
	}
	return entry
}

// GenerateRandomOrder shuffles the roster with src and builds the snake
// order. Used for the season's first race, where no performance history
// exists.
func GenerateRandomOrder(players []models.Profile, src Source) []models.DraftOrderEntry {
	return BuildSnakeOrder(Shuffle(players, src), nil)
}

// GeneratePerformanceOrder sorts players ascending by previous-race points
// (worst performer picks first) and builds the snake order. The sort is
// stable, so equal scores keep their incoming order.
func GeneratePerformanceOrder(players []PlayerPoints) []models.DraftOrderEntry {
	sorted := make([]PlayerPoints, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PreviousRacePoints < sorted[j].PreviousRacePoints
	})

	profiles := make([]models.Profile, len(sorted))
	points := make(map[string]int, len(sorted))
	for i, p := range sorted {
		profiles[i] = p.Profile
		points[p.Profile.ID.String()] = p.PreviousRacePoints
	}

	return BuildSnakeOrder(profiles, points)
}
