package game

import "errors"

var (
	// ErrInvalidAction is returned when an agent dispatches an action kind
	// the scheduler does not recognize.
	ErrInvalidAction = errors.New("invalid action")

	// ErrInsufficientMana is returned when a special ability costs more mana
	// than the player has. The ability leaves all state unchanged.
	ErrInsufficientMana = errors.New("insufficient mana")

	// ErrOutOfBounds is returned when a move would leave the world grid.
	ErrOutOfBounds = errors.New("out of bounds")

	ErrPlayerExists = errors.New("player already exists")
	ErrItemNotFound = errors.New("item not in inventory")
)
