// Package gamestate persists each player's game state as one JSON record
// per component behind a key-value style repository.
package gamestate

//go:generate mockgen -destination=mock/mock_repository.go -package=gamestatemock github.com/KirkDiggler/rpg-idle/internal/repositories/gamestate Repository

import (
	"context"
	"time"
)

const (
	errStateNil      = "state cannot be nil"
	errPlayerIDEmpty = "player ID cannot be empty"
)

// Repository defines the interface for game state persistence
type Repository interface {
	// Get loads a player's state
	// Returns errors.InvalidArgument for an empty player ID
	// Returns errors.NotFound if the player has no stored state
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save writes every component of a player's state atomically
	// Returns errors.InvalidArgument for a missing player ID or component
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes a player's state
	// Returns errors.NotFound if the player has no stored state
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for loading a state
type GetInput struct {
	PlayerID string
}

// GetOutput defines the output for loading a state
type GetOutput struct {
	State *State
}

// SaveInput defines the input for saving a state
type SaveInput struct {
	State *State
}

// SaveOutput defines the output for saving a state
type SaveOutput struct {
	UpdatedAt time.Time
}

// DeleteInput defines the input for deleting a state
type DeleteInput struct {
	PlayerID string
}

// DeleteOutput defines the output for deleting a state
type DeleteOutput struct{}
