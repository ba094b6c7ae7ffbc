package gameevents

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

const defaultJournalSize = 50

// JournalConfig configures a Journal
type JournalConfig struct {
	Bus    *Bus
	Logger *slog.Logger
	// Size is how many recent events are kept per player
	Size int
}

// Journal logs every published event and keeps the most recent ones per
// player for read models
type Journal struct {
	bus    *Bus
	logger *slog.Logger
	size   int

	mu     sync.Mutex
	recent map[string][]Envelope
	subs   []string
}

// NewJournal creates a journal; call Start to subscribe it
func NewJournal(cfg *JournalConfig) (*Journal, error) {
	if cfg == nil || cfg.Bus == nil {
		return nil, errors.InvalidArgument("bus is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	size := cfg.Size
	if size <= 0 {
		size = defaultJournalSize
	}

	return &Journal{
		bus:    cfg.Bus,
		logger: logger,
		size:   size,
		recent: make(map[string][]Envelope),
	}, nil
}

// Start subscribes the journal to every event type
func (j *Journal) Start() {
	j.mu.Lock()
	defer j.mu.Unlock()
	if len(j.subs) > 0 {
		return
	}
	j.subs = j.bus.SubscribeAll(j.record)
}

// Stop removes the journal's subscriptions
func (j *Journal) Stop() error {
	j.mu.Lock()
	subs := j.subs
	j.subs = nil
	j.mu.Unlock()

	return j.bus.Unsubscribe(subs...)
}

// Recent returns the latest events for a player, oldest first
func (j *Journal) Recent(playerID string) []Envelope {
	j.mu.Lock()
	defer j.mu.Unlock()

	out := make([]Envelope, len(j.recent[playerID]))
	copy(out, j.recent[playerID])
	return out
}

func (j *Journal) record(ctx context.Context, playerID string, ev Event) error {
	env := Wrap(ev)

	j.logger.InfoContext(ctx, "Game event",
		"player_id", playerID,
		"type", env.Type,
		"event", env,
	)

	j.mu.Lock()
	defer j.mu.Unlock()

	list := append(j.recent[playerID], env)
	if len(list) > j.size {
		list = list[len(list)-j.size:]
	}
	j.recent[playerID] = list
	return nil
}
