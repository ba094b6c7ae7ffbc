package town

import (
	"sort"

	"github.com/KirkDiggler/rpg-idle/internal/economy"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

// State is the durable per-building level record
type State struct {
	Levels map[string]int `json:"levels"`
}

// Level returns the level of a building, 0 when never upgraded
func (s *State) Level(buildingID string) int {
	return s.Levels[buildingID]
}

// Registry applies building content rules to a State
type Registry struct {
	defs  map[string]Building
	order []string
}

// NewRegistry validates the building definitions and indexes them
func NewRegistry(buildings []Building) (*Registry, error) {
	r := &Registry{defs: make(map[string]Building, len(buildings))}
	for i := range buildings {
		b := buildings[i]
		if err := b.Validate(); err != nil {
			return nil, errors.Wrapf(err, "invalid building %q", b.ID)
		}
		if _, dup := r.defs[b.ID]; dup {
			return nil, errors.InvalidArgumentf("duplicate building id %q", b.ID)
		}
		r.defs[b.ID] = b
		r.order = append(r.order, b.ID)
	}
	return r, nil
}

// NewState creates a state with every known building at level 0
func (r *Registry) NewState() *State {
	s := &State{Levels: make(map[string]int, len(r.order))}
	for _, id := range r.order {
		s.Levels[id] = 0
	}
	return s
}

// Reconcile adds missing buildings at level 0 and clamps levels to the
// content's max level, for states saved against older content
func (r *Registry) Reconcile(s *State) {
	if s.Levels == nil {
		s.Levels = make(map[string]int, len(r.order))
	}
	for _, id := range r.order {
		level, ok := s.Levels[id]
		if !ok {
			s.Levels[id] = 0
			continue
		}
		if maxLevel := r.defs[id].MaxLevel; level > maxLevel {
			s.Levels[id] = maxLevel
		}
	}
}

// Building returns the definition of a building
func (r *Registry) Building(buildingID string) (Building, bool) {
	b, ok := r.defs[buildingID]
	return b, ok
}

// Buildings returns every definition in content order
func (r *Registry) Buildings() []Building {
	out := make([]Building, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.defs[id])
	}
	return out
}

// Cost returns the price of upgrading a building from level
func (r *Registry) Cost(buildingID string, level int) (economy.Cost, error) {
	def, ok := r.defs[buildingID]
	if !ok {
		return economy.Cost{}, errors.NotFoundf("building %s not found", buildingID)
	}
	if level < 0 {
		return economy.Cost{}, errors.InvalidArgumentf("level must not be negative, got %d", level)
	}
	return def.CostAt(level), nil
}

// Upgrade raises a building by one level, paying its cost from ledger.
// Any failure leaves both state and ledger untouched.
func (r *Registry) Upgrade(s *State, ledger *economy.Ledger, buildingID string) (int, error) {
	def, ok := r.defs[buildingID]
	if !ok {
		return 0, errors.NotFoundf("building %s not found", buildingID)
	}

	level := s.Level(buildingID)
	if level >= def.MaxLevel {
		return level, errors.MaxLevelReachedf("building %s is already at max level %d", buildingID, def.MaxLevel).
			WithMeta("building_id", buildingID)
	}

	cost := def.CostAt(level)
	if !ledger.CanAfford(cost) {
		return level, errors.InsufficientFundsf("cannot afford upgrade of %s to level %d", buildingID, level+1).
			WithMeta("building_id", buildingID).
			WithMeta("cost_gold", cost.Gold)
	}
	if err := ledger.Spend(cost); err != nil {
		return level, err
	}

	if s.Levels == nil {
		s.Levels = make(map[string]int)
	}
	s.Levels[buildingID] = level + 1
	return level + 1, nil
}

// Effects aggregates every building's effect lines at its current level
func (r *Registry) Effects(s *State) Effects {
	var out Effects
	for _, id := range r.order {
		level := s.Level(id)
		if level == 0 {
			continue
		}
		for _, line := range r.defs[id].Effects {
			out.add(line.Stat, line.PerLevel*float64(level))
		}
	}
	return out
}

// ResetForPrestige zeroes buildings flagged reset_on_prestige and returns
// the ids that changed, sorted
func (r *Registry) ResetForPrestige(s *State) []string {
	var reset []string
	for id, def := range r.defs {
		if def.ResetOnPrestige && s.Level(id) > 0 {
			s.Levels[id] = 0
			reset = append(reset, id)
		}
	}
	sort.Strings(reset)
	return reset
}

// Clone returns a deep copy
func (s *State) Clone() *State {
	out := &State{Levels: make(map[string]int, len(s.Levels))}
	for id, level := range s.Levels {
		out.Levels[id] = level
	}
	return out
}
