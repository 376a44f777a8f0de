package draftorder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gridrival/sweepstakes/go/internal/models"
)

// FormatOrderForTeams renders the draft order as a two-round checklist
// suitable for pasting into a Teams channel. Completion glyphs use the same
// matching rule as CurrentPickSlot.
func FormatOrderForTeams(order []models.DraftOrderEntry, picks []models.Pick) string {
	var b strings.Builder
	b.WriteString("🏎️ **Sweepstakes Draft Order**\n\n")

	writeRound(&b, order, picks, models.RoundOne)
	b.WriteString("\n")
	writeRound(&b, order, picks, models.RoundTwo)

	return b.String()
}

func writeRound(b *strings.Builder, order []models.DraftOrderEntry, picks []models.Pick, round int) {
	fmt.Fprintf(b, "**Round %d:**\n", round)

	slots := make([]models.DraftOrderEntry, 0, len(order)/2)
	for _, s := range order {
		if s.DraftRound == round {
			slots = append(slots, s)
		}
	}
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].PickOrder < slots[j].PickOrder
	})

	for _, s := range slots {
		glyph := "⬜"
		if hasPicked(picks, s.UserID, s.DraftRound) {
			glyph = "✅"
		}
		fmt.Fprintf(b, "%d. %s %s\n", s.PickOrder, glyph, s.DisplayName)
	}
}
