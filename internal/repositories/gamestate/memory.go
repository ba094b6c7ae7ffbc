package gamestate

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/clock"
)

type storedState struct {
	records   map[string][]byte
	updatedAt time.Time
}

// InMemoryRepository implements Repository using in-memory storage. States
// are kept encoded so callers never share memory with the store.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]storedState
	clock clock.Clock
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates a new in-memory repository; a nil clock uses the
// system clock
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		store: make(map[string]storedState),
		clock: c,
	}
}

// Get retrieves a player's state
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.RLock()
	stored, exists := r.store[input.PlayerID]
	r.mu.RUnlock()
	if !exists {
		return nil, errors.NotFoundf("state for player %s not found", input.PlayerID)
	}

	state, err := decode(input.PlayerID, stored.records)
	if err != nil {
		return nil, err
	}
	state.UpdatedAt = stored.updatedAt
	return &GetOutput{State: state}, nil
}

// Save replaces a player's state
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if err := input.State.Validate(); err != nil {
		return nil, err
	}

	records, err := input.State.encode()
	if err != nil {
		return nil, err
	}

	now := r.clock.Now().UTC()

	r.mu.Lock()
	r.store[input.State.PlayerID] = storedState{records: records, updatedAt: now}
	r.mu.Unlock()

	input.State.UpdatedAt = now
	return &SaveOutput{UpdatedAt: now}, nil
}

// Delete removes a player's state
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.PlayerID]; !exists {
		return nil, errors.NotFoundf("state for player %s not found", input.PlayerID)
	}
	delete(r.store, input.PlayerID)
	return &DeleteOutput{}, nil
}
