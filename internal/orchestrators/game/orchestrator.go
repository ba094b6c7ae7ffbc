// Package game orchestrates player transactions over the progression
// engine: every call loads the player's state, applies one change in
// memory, saves it and then publishes the events it produced.
package game

//go:generate mockgen -destination=mock/mock_service.go -package=gamemock github.com/KirkDiggler/rpg-idle/internal/orchestrators/game Service

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-idle/internal/content"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/gameevents"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-idle/internal/repositories/gamestate"
)

// Service defines the interface for game operations
type Service interface {
	// Session lifecycle. StartSession creates the player on first use.
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)

	// Gameplay
	Click(ctx context.Context, input *ClickInput) (*ClickOutput, error)
	RecordEvent(ctx context.Context, input *RecordEventInput) (*RecordEventOutput, error)
	UpgradeBuilding(ctx context.Context, input *UpgradeBuildingInput) (*UpgradeBuildingOutput, error)
	SelectZone(ctx context.Context, input *SelectZoneInput) (*SelectZoneOutput, error)
	Prestige(ctx context.Context, input *PrestigeInput) (*PrestigeOutput, error)
	ClaimReward(ctx context.Context, input *ClaimRewardInput) (*ClaimRewardOutput, error)
	Craft(ctx context.Context, input *CraftInput) (*CraftOutput, error)
	Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error)

	// Queries
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)

	// Close ends every active session
	Close(ctx context.Context) error
}

// EventLog exposes recently published events
type EventLog interface {
	Recent(playerID string) []gameevents.Envelope
}

// Config holds the dependencies for the game orchestrator
type Config struct {
	Repository  gamestate.Repository
	Rules       *content.Rules
	Publisher   gameevents.Publisher
	EventLog    EventLog
	Clock       clock.Clock
	IDGenerator idgen.Generator
	Roller      dice.Roller

	// TickInterval is the auto-combat period of an active session; zero
	// disables auto-combat
	TickInterval time.Duration
	// SampleInterval is the metrics sampling period of an active session;
	// zero disables sampling
	SampleInterval time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Rules == nil {
		vb.RequiredField("Rules")
	}
	if c.Publisher == nil {
		vb.RequiredField("Publisher")
	}
	errors.ValidateNonNegative("TickInterval", int64(c.TickInterval), vb)
	errors.ValidateNonNegative("SampleInterval", int64(c.SampleInterval), vb)

	return vb.Build()
}

type orchestrator struct {
	repo      gamestate.Repository
	rules     *content.Rules
	publisher gameevents.Publisher
	eventLog  EventLog
	clock     clock.Clock
	idGen     idgen.Generator
	roller    dice.Roller

	tickInterval   time.Duration
	sampleInterval time.Duration

	mu           sync.Mutex
	locks        map[string]*sync.Mutex
	sessionLocks map[string]*sync.Mutex
	sessions     map[string]*session
	closed       bool
}

// NewOrchestrator creates a new game orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		repo:           cfg.Repository,
		rules:          cfg.Rules,
		publisher:      cfg.Publisher,
		eventLog:       cfg.EventLog,
		clock:          cfg.Clock,
		idGen:          cfg.IDGenerator,
		roller:         cfg.Roller,
		tickInterval:   cfg.TickInterval,
		sampleInterval: cfg.SampleInterval,
		locks:          make(map[string]*sync.Mutex),
		sessionLocks:   make(map[string]*sync.Mutex),
		sessions:       make(map[string]*session),
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.idGen == nil {
		o.idGen = idgen.NewUUID("")
	}
	if o.roller == nil {
		o.roller = dice.DefaultRoller
	}
	return o, nil
}

// playerLock returns the mutex serializing one player's transactions
func (o *orchestrator) playerLock(playerID string) *sync.Mutex {
	return o.lockFrom(o.locks, playerID)
}

// sessionLock returns the mutex serializing one player's session starts
// and ends. Samplers never take it, so it may be held while they stop.
func (o *orchestrator) sessionLock(playerID string) *sync.Mutex {
	return o.lockFrom(o.sessionLocks, playerID)
}

func (o *orchestrator) lockFrom(locks map[string]*sync.Mutex, playerID string) *sync.Mutex {
	o.mu.Lock()
	defer o.mu.Unlock()

	l, ok := locks[playerID]
	if !ok {
		l = &sync.Mutex{}
		locks[playerID] = l
	}
	return l
}

func validatePlayerID(playerID string) error {
	if playerID == "" {
		return errors.InvalidArgument("player ID is required")
	}
	return nil
}
