package draftorder

import (
	"strings"
	"testing"

	"github.com/gridrival/sweepstakes/go/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestFormatOrderForTeams(t *testing.T) {
	order := threePlayerOrder()
	picks := []models.Pick{pickFor(order, "Alice", models.RoundOne)}

	text := FormatOrderForTeams(order, picks)

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	assert.Equal(t, "🏎️ **Sweepstakes Draft Order**", lines[0])
	assert.Contains(t, lines, "**Round 1:**")
	assert.Contains(t, lines, "**Round 2:**")
	assert.Contains(t, lines, "1. ✅ Alice")
	assert.Contains(t, lines, "2. ⬜ Bob")
	assert.Contains(t, lines, "4. ⬜ Charlie")
	assert.Contains(t, lines, "6. ⬜ Alice")
}

func TestFormatOrderForTeamsSortsWithinRounds(t *testing.T) {
	order := threePlayerOrder()
	// Shuffle the slice; output must still be sorted by pick order.
	order[0], order[5] = order[5], order[0]
	order[1], order[3] = order[3], order[1]

	text := FormatOrderForTeams(order, nil)

	idx1 := strings.Index(text, "1. ⬜ Alice")
	idx2 := strings.Index(text, "2. ⬜ Bob")
	idx3 := strings.Index(text, "3. ⬜ Charlie")
	assert.True(t, idx1 >= 0 && idx2 > idx1 && idx3 > idx2, "round one out of order:\n%s", text)
}
