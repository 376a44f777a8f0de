package draftorder

import (
	"sort"

	"github.com/google/uuid"
	"github.com/gridrival/sweepstakes/go/internal/models"
)

// hasPicked reports whether a completed pick exists for (userID, round).
func hasPicked(picks []models.Pick, userID uuid.UUID, round int) bool {
	for _, p := range picks {
		if p.UserID == userID && p.DraftRound == round {
			return true
		}
	}
	return false
}

// CurrentPickSlot returns the first slot, in ascending pick order, whose
// owner has not yet completed a pick for that round, or nil when every slot
// is filled (draft complete). The linear scan is fine at draft scale.
func CurrentPickSlot(order []models.DraftOrderEntry, picks []models.Pick) *models.DraftOrderEntry {
	sorted := make([]models.DraftOrderEntry, len(order))
	copy(sorted, order)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].PickOrder < sorted[j].PickOrder
	})

	for i := range sorted {
		if !hasPicked(picks, sorted[i].UserID, sorted[i].DraftRound) {
			return &sorted[i]
		}
	}
	return nil
}

// CanEditPick reports whether the pick of (userID, round) may still be
// replaced. The window closes once the owner of the immediately following
// slot has picked; the very last slot in the order can always be edited.
func CanEditPick(order []models.DraftOrderEntry, picks []models.Pick, userID uuid.UUID, round int) bool {
	var userSlot *models.DraftOrderEntry
	for i := range order {
		if order[i].UserID == userID && order[i].DraftRound == round {
			userSlot = &order[i]
			break
		}
	}
	if userSlot == nil {
		return false
	}

	var nextSlot *models.DraftOrderEntry
	for i := range order {
		if order[i].PickOrder == userSlot.PickOrder+1 {
			nextSlot = &order[i]
			break
		}
	}
	if nextSlot == nil {
		// Last pick of the whole draft.
		return true
	}

	return !hasPicked(picks, nextSlot.UserID, nextSlot.DraftRound)
}
