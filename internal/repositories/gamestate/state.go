package gamestate

import (
	"encoding/json"
	"time"

	"github.com/KirkDiggler/rpg-idle/internal/analytics"
	"github.com/KirkDiggler/rpg-idle/internal/economy"
	"github.com/KirkDiggler/rpg-idle/internal/entities"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/progression"
	"github.com/KirkDiggler/rpg-idle/internal/quests"
	"github.com/KirkDiggler/rpg-idle/internal/town"
)

// Component record names
const (
	ComponentCharacter   = "character"
	ComponentLedger      = "ledger"
	ComponentTown        = "town"
	ComponentProgression = "progression"
	ComponentQuests      = "quests"
	ComponentMetrics     = "metrics"
)

// Components lists every record a player's state is stored as
var Components = []string{
	ComponentCharacter,
	ComponentLedger,
	ComponentTown,
	ComponentProgression,
	ComponentQuests,
	ComponentMetrics,
}

// State is everything owned by one player. A component missing from
// storage loads as nil; callers fill it from content.
type State struct {
	PlayerID    string
	UpdatedAt   time.Time
	Character   *entities.Character
	Ledger      *economy.Ledger
	Town        *town.State
	Progression *progression.State
	Quests      *quests.Book
	Metrics     *analytics.Metrics
}

// Validate requires every component to be present
func (s *State) Validate() error {
	if s == nil {
		return errors.InvalidArgument(errStateNil)
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", s.PlayerID, vb)
	present := []struct {
		name string
		ok   bool
	}{
		{ComponentCharacter, s.Character != nil},
		{ComponentLedger, s.Ledger != nil},
		{ComponentTown, s.Town != nil},
		{ComponentProgression, s.Progression != nil},
		{ComponentQuests, s.Quests != nil},
		{ComponentMetrics, s.Metrics != nil},
	}
	for _, p := range present {
		if !p.ok {
			vb.RequiredField(p.name)
		}
	}
	return vb.Build()
}

func (s *State) component(name string) any {
	switch name {
	case ComponentCharacter:
		return s.Character
	case ComponentLedger:
		return s.Ledger
	case ComponentTown:
		return s.Town
	case ComponentProgression:
		return s.Progression
	case ComponentQuests:
		return s.Quests
	case ComponentMetrics:
		return s.Metrics
	}
	return nil
}

// encode returns one JSON record per component
func (s *State) encode() (map[string][]byte, error) {
	records := make(map[string][]byte, len(Components))
	for _, name := range Components {
		data, err := json.Marshal(s.component(name))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal %s", name)
		}
		records[name] = data
	}
	return records, nil
}

// decode rebuilds a state from stored records, ignoring unknown names
func decode(playerID string, records map[string][]byte) (*State, error) {
	s := &State{PlayerID: playerID}
	for name, data := range records {
		var target any
		switch name {
		case ComponentCharacter:
			s.Character = &entities.Character{}
			target = s.Character
		case ComponentLedger:
			s.Ledger = economy.NewLedger()
			target = s.Ledger
		case ComponentTown:
			s.Town = &town.State{}
			target = s.Town
		case ComponentProgression:
			s.Progression = &progression.State{}
			target = s.Progression
		case ComponentQuests:
			s.Quests = &quests.Book{}
			target = s.Quests
		case ComponentMetrics:
			s.Metrics = &analytics.Metrics{}
			target = s.Metrics
		default:
			continue
		}
		if err := json.Unmarshal(data, target); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal %s", name)
		}
	}
	return s, nil
}
