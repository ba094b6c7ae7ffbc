package gameevents

//go:generate mockgen -destination=mock/mock_publisher.go -package=gameeventsmock github.com/KirkDiggler/rpg-idle/internal/gameevents Publisher

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

const (
	topicPrefix = "idle."
	payloadKey  = "idle.payload"
)

// Topic returns the bus topic of an event type
func Topic(eventType string) string {
	return topicPrefix + eventType
}

// Handler receives events published for a player
type Handler func(ctx context.Context, playerID string, ev Event) error

// Publisher publishes committed events
type Publisher interface {
	Publish(ctx context.Context, playerID string, evs ...Event) error
}

// BusConfig holds the dependencies for Bus
type BusConfig struct {
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *BusConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	return vb.Build()
}

// Bus carries typed events over an rpg-toolkit event bus. The typed event
// rides in the toolkit event context and the player is the event source.
type Bus struct {
	bus events.EventBus
}

// NewBus creates a Bus
func NewBus(cfg *BusConfig) (*Bus, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Bus{bus: cfg.EventBus}, nil
}

var _ Publisher = (*Bus)(nil)

// Publish sends every event in order. A failing handler does not stop the
// remaining events; all failures are returned together.
func (b *Bus) Publish(ctx context.Context, playerID string, evs ...Event) error {
	var errs []error
	for _, ev := range evs {
		ge := events.NewGameEvent(Topic(ev.Type()), &PlayerEntity{ID: playerID}, nil)
		ge.Context().Set(payloadKey, ev)

		if err := b.bus.Publish(ctx, ge); err != nil {
			errs = append(errs, errors.Wrapf(err, "failed to publish %s", ev.Type()))
		}
	}
	return errors.Join(errs...)
}

// Subscribe registers h for one event type and returns the subscription id
func (b *Bus) Subscribe(eventType string, h Handler) string {
	return b.bus.SubscribeFunc(Topic(eventType), 0, func(ctx context.Context, e events.Event) error {
		payload, ok := e.Context().Get(payloadKey)
		if !ok {
			return nil
		}
		ev, ok := payload.(Event)
		if !ok {
			return nil
		}

		var playerID string
		if src := e.Source(); src != nil {
			playerID = src.GetID()
		}
		return h(ctx, playerID, ev)
	})
}

// SubscribeAll registers h for every event type
func (b *Bus) SubscribeAll(h Handler) []string {
	ids := make([]string, 0, len(Types))
	for _, t := range Types {
		ids = append(ids, b.Subscribe(t, h))
	}
	return ids
}

// Unsubscribe removes subscriptions
func (b *Bus) Unsubscribe(ids ...string) error {
	var errs []error
	for _, id := range ids {
		if err := b.bus.Unsubscribe(id); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
