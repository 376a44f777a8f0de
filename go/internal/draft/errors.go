package draft

import "errors"

var (
	// ErrNotFound is returned when the race, season or draft order does not exist
	ErrNotFound = errors.New("not found")
	// ErrPermissionDenied is returned for an on-behalf-of pick without admin rights
	ErrPermissionDenied = errors.New("permission denied")
	// ErrNotYourTurn is returned when the current slot belongs to another player
	ErrNotYourTurn = errors.New("not your turn")
	// ErrDraftComplete is returned when every slot already has a pick
	ErrDraftComplete = errors.New("draft complete")
	// ErrDriverTaken is returned when the driver is already picked in this race
	ErrDriverTaken = errors.New("driver already taken")
	// ErrEditWindowClosed is returned when the following slot has already picked
	ErrEditWindowClosed = errors.New("edit window closed")
	// ErrInvalidRound is returned for performance seeding on the season's first round
	ErrInvalidRound = errors.New("invalid round for seeding strategy")
	// ErrUnknownStrategy is returned for an unrecognized seeding strategy
	ErrUnknownStrategy = errors.New("unknown seeding strategy")
	// ErrPicksExist is returned when regenerating an order over existing picks
	ErrPicksExist = errors.New("picks already exist")
	// ErrPicksClosed is returned when the race is not accepting picks
	ErrPicksClosed = errors.New("picks closed")
)
