package draftorder

import (
	"testing"

	"github.com/gridrival/sweepstakes/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threePlayerOrder builds the fixed snake order Alice(1), Bob(2), Charlie(3),
// Charlie(4), Bob(5), Alice(6).
func threePlayerOrder() []models.DraftOrderEntry {
	return BuildSnakeOrder(roster("Alice", "Bob", "Charlie"), nil)
}

func pickFor(order []models.DraftOrderEntry, displayName string, round int) models.Pick {
	for _, e := range order {
		if e.DisplayName == displayName && e.DraftRound == round {
			return models.Pick{
				UserID:     e.UserID,
				PickOrder:  e.PickOrder,
				DraftRound: e.DraftRound,
			}
		}
	}
	panic("no such slot: " + displayName)
}

func TestCurrentPickSlotNoPicks(t *testing.T) {
	order := threePlayerOrder()

	slot := CurrentPickSlot(order, nil)

	require.NotNil(t, slot)
	assert.Equal(t, 1, slot.PickOrder)
	assert.Equal(t, "Alice", slot.DisplayName)
}

func TestCurrentPickSlotAdvances(t *testing.T) {
	order := threePlayerOrder()
	picks := []models.Pick{
		pickFor(order, "Alice", models.RoundOne),
		pickFor(order, "Bob", models.RoundOne),
	}

	slot := CurrentPickSlot(order, picks)

	require.NotNil(t, slot)
	assert.Equal(t, 3, slot.PickOrder)
	assert.Equal(t, "Charlie", slot.DisplayName)
}

func TestCurrentPickSlotSnakeTurnaround(t *testing.T) {
	order := threePlayerOrder()
	picks := []models.Pick{
		pickFor(order, "Alice", models.RoundOne),
		pickFor(order, "Bob", models.RoundOne),
		pickFor(order, "Charlie", models.RoundOne),
	}

	slot := CurrentPickSlot(order, picks)

	// Charlie picks back-to-back at the snake turnaround.
	require.NotNil(t, slot)
	assert.Equal(t, 4, slot.PickOrder)
	assert.Equal(t, "Charlie", slot.DisplayName)
	assert.Equal(t, models.RoundTwo, slot.DraftRound)
}

func TestCurrentPickSlotComplete(t *testing.T) {
	order := threePlayerOrder()
	var picks []models.Pick
	for _, e := range order {
		picks = append(picks, models.Pick{UserID: e.UserID, PickOrder: e.PickOrder, DraftRound: e.DraftRound})
	}

	assert.Nil(t, CurrentPickSlot(order, picks))
}

func TestCurrentPickSlotIgnoresInputOrdering(t *testing.T) {
	order := threePlayerOrder()
	// Reverse the slice; the scan must still follow pick order.
	reversed := make([]models.DraftOrderEntry, len(order))
	for i, e := range order {
		reversed[len(order)-1-i] = e
	}

	slot := CurrentPickSlot(reversed, nil)

	require.NotNil(t, slot)
	assert.Equal(t, 1, slot.PickOrder)
}

func TestCanEditPickOpenWindow(t *testing.T) {
	order := threePlayerOrder()
	alice := order[0].UserID
	picks := []models.Pick{pickFor(order, "Alice", models.RoundOne)}

	// Bob (the following slot) has not picked yet.
	assert.True(t, CanEditPick(order, picks, alice, models.RoundOne))
}

func TestCanEditPickWindowClosed(t *testing.T) {
	order := threePlayerOrder()
	alice := order[0].UserID
	picks := []models.Pick{
		pickFor(order, "Alice", models.RoundOne),
		pickFor(order, "Bob", models.RoundOne),
	}

	assert.False(t, CanEditPick(order, picks, alice, models.RoundOne))
}

func TestCanEditPickCrossesRoundBoundary(t *testing.T) {
	order := threePlayerOrder()
	charlie := pickFor(order, "Charlie", models.RoundOne).UserID
	picks := []models.Pick{
		pickFor(order, "Alice", models.RoundOne),
		pickFor(order, "Bob", models.RoundOne),
		pickFor(order, "Charlie", models.RoundOne),
		pickFor(order, "Charlie", models.RoundTwo),
	}

	// The slot after Charlie's round-one pick is Charlie's own round-two
	// slot; once it is filled the round-one pick is locked.
	assert.False(t, CanEditPick(order, picks, charlie, models.RoundOne))
}

func TestCanEditPickLastSlotAlwaysEditable(t *testing.T) {
	order := threePlayerOrder()
	alice := order[0].UserID
	var picks []models.Pick
	for _, e := range order {
		picks = append(picks, models.Pick{UserID: e.UserID, PickOrder: e.PickOrder, DraftRound: e.DraftRound})
	}

	// Alice owns pick order 6, the globally last slot.
	assert.True(t, CanEditPick(order, picks, alice, models.RoundTwo))
}

func TestCanEditPickUnknownUser(t *testing.T) {
	order := threePlayerOrder()

	assert.False(t, CanEditPick(order, nil, profile("Mallory").ID, models.RoundOne))
}
