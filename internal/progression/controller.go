package progression

import (
	"sort"

	"github.com/KirkDiggler/rpg-idle/internal/economy"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

// ZoneState is where a zone sits in Locked -> Unlocked -> Active -> Cleared
type ZoneState string

const (
	ZoneLocked   ZoneState = "locked"
	ZoneUnlocked ZoneState = "unlocked"
	ZoneActive   ZoneState = "active"
	ZoneCleared  ZoneState = "cleared"
)

// Player is the live player data unlock requirements read
type Player struct {
	Level int
}

// State is the durable zone and prestige record
type State struct {
	CurrentZone        string         `json:"current_zone"`
	Clears             map[string]int `json:"clears"`
	PrestigeLevel      int            `json:"prestige_level"`
	HighestZoneCleared string         `json:"highest_zone_cleared,omitempty"`
	Encounter          Encounter      `json:"encounter"`
}

// ClearCount returns how many times a zone has been cleared
func (s *State) ClearCount(zoneID string) int {
	return s.Clears[zoneID]
}

// Clone returns a deep copy
func (s *State) Clone() *State {
	out := *s
	out.Clears = make(map[string]int, len(s.Clears))
	for id, n := range s.Clears {
		out.Clears[id] = n
	}
	return &out
}

// ZoneStatus is the read model of one zone
type ZoneStatus struct {
	ZoneID     string    `json:"zone_id"`
	Name       string    `json:"name"`
	State      ZoneState `json:"state"`
	ClearCount int       `json:"clear_count"`
	Difficulty float64   `json:"difficulty"`
	Reward     float64   `json:"reward"`
}

// Clear is the outcome of clearing a zone once
type Clear struct {
	ZoneID           string         `json:"zone_id"`
	ClearCount       int            `json:"clear_count"`
	RewardMultiplier float64        `json:"reward_multiplier"`
	Rewards          economy.Reward `json:"rewards"`
}

// Prestige is the outcome of a prestige reset
type Prestige struct {
	Level      int      `json:"level"`
	Multiplier float64  `json:"multiplier"`
	ResetZones []string `json:"reset_zones"`
}

// Controller applies zone content and tuning to a State
type Controller struct {
	zones  []Zone
	index  map[string]int
	tuning Tuning
}

// NewController validates zones and tuning. Zone order in the slice is the
// progression order used for HighestZoneCleared and the prestige restart.
func NewController(zones []Zone, tuning Tuning) (*Controller, error) {
	if len(zones) == 0 {
		return nil, errors.InvalidArgument("at least one zone is required")
	}
	if err := tuning.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid progression tuning")
	}

	c := &Controller{
		zones:  make([]Zone, len(zones)),
		index:  make(map[string]int, len(zones)),
		tuning: tuning,
	}
	copy(c.zones, zones)

	for i := range c.zones {
		z := &c.zones[i]
		if z.BossHPMultiplier == 0 {
			z.BossHPMultiplier = 1
		}
		if err := z.Validate(); err != nil {
			return nil, errors.Wrapf(err, "invalid zone %q", z.ID)
		}
		if _, dup := c.index[z.ID]; dup {
			return nil, errors.InvalidArgumentf("duplicate zone id %q", z.ID)
		}
		c.index[z.ID] = i
	}
	for _, z := range c.zones {
		if z.Unlock.Type == RequirementZoneCleared {
			if _, ok := c.index[z.Unlock.ZoneID]; !ok {
				return nil, errors.InvalidArgumentf("zone %q requires unknown zone %q", z.ID, z.Unlock.ZoneID)
			}
		}
	}

	return c, nil
}

// Tuning returns the scaling coefficients in use
func (c *Controller) Tuning() Tuning {
	return c.tuning
}

// Zone returns a zone definition
func (c *Controller) Zone(zoneID string) (Zone, bool) {
	i, ok := c.index[zoneID]
	if !ok {
		return Zone{}, false
	}
	return c.zones[i], true
}

// NewState starts at the first zone with nothing cleared
func (c *Controller) NewState() *State {
	s := &State{
		CurrentZone: c.zones[0].ID,
		Clears:      make(map[string]int),
	}
	c.resetEncounter(s)
	return s
}

// Reconcile repairs a loaded state whose current zone no longer exists
func (c *Controller) Reconcile(s *State) {
	if s.Clears == nil {
		s.Clears = make(map[string]int)
	}
	if _, ok := c.index[s.CurrentZone]; !ok {
		s.CurrentZone = c.zones[0].ID
		c.resetEncounter(s)
	}
	if s.Encounter.ZoneID != s.CurrentZone {
		c.resetEncounter(s)
	}
}

// Unlocked evaluates a zone's requirement against live state
func (c *Controller) Unlocked(s *State, zoneID string, player Player) bool {
	z, ok := c.Zone(zoneID)
	if !ok {
		return false
	}

	req := z.Unlock
	switch req.Type {
	case RequirementNone, "":
		return true
	case RequirementPlayerLevel:
		return player.Level >= req.Value
	case RequirementZoneCleared:
		return s.ClearCount(req.ZoneID) >= max(req.Value, 1)
	case RequirementPrestigeLevel:
		return s.PrestigeLevel >= req.Value
	default:
		return false
	}
}

// Status reports the state of one zone
func (c *Controller) Status(s *State, zoneID string, player Player) (ZoneStatus, error) {
	z, ok := c.Zone(zoneID)
	if !ok {
		return ZoneStatus{}, errors.NotFoundf("zone %s not found", zoneID)
	}

	clears := s.ClearCount(zoneID)
	status := ZoneStatus{
		ZoneID:     zoneID,
		Name:       z.Name,
		ClearCount: clears,
		Difficulty: c.tuning.Difficulty(clears, s.PrestigeLevel),
		Reward:     c.tuning.Reward(clears, s.PrestigeLevel),
	}

	switch {
	case zoneID == s.CurrentZone:
		status.State = ZoneActive
	case !c.Unlocked(s, zoneID, player):
		status.State = ZoneLocked
	case clears > 0:
		status.State = ZoneCleared
	default:
		status.State = ZoneUnlocked
	}
	return status, nil
}

// Zones reports every zone in progression order
func (c *Controller) Zones(s *State, player Player) []ZoneStatus {
	out := make([]ZoneStatus, 0, len(c.zones))
	for _, z := range c.zones {
		status, _ := c.Status(s, z.ID, player)
		out = append(out, status)
	}
	return out
}

// SelectZone makes an unlocked zone current and starts a fresh encounter
func (c *Controller) SelectZone(s *State, zoneID string, player Player) error {
	if _, ok := c.index[zoneID]; !ok {
		return errors.NotFoundf("zone %s not found", zoneID)
	}
	if !c.Unlocked(s, zoneID, player) {
		return errors.ZoneLockedf("zone %s is locked", zoneID).WithMeta("zone_id", zoneID)
	}

	s.CurrentZone = zoneID
	c.resetEncounter(s)
	return nil
}

// DifficultyMultiplier is the monster HP multiplier of a zone
func (c *Controller) DifficultyMultiplier(s *State, zoneID string) float64 {
	return c.tuning.Difficulty(s.ClearCount(zoneID), s.PrestigeLevel)
}

// RewardMultiplier is the reward multiplier of a zone
func (c *Controller) RewardMultiplier(s *State, zoneID string) float64 {
	return c.tuning.Reward(s.ClearCount(zoneID), s.PrestigeLevel)
}

// PrestigeMultiplier is the permanent combat multiplier
func (c *Controller) PrestigeMultiplier(s *State) float64 {
	return c.tuning.Prestige(s.PrestigeLevel)
}

// ClearZone records one clear. Rewards use the multiplier in effect before
// the clear.
func (c *Controller) ClearZone(s *State, zoneID string) (Clear, error) {
	i, ok := c.index[zoneID]
	if !ok {
		return Clear{}, errors.NotFoundf("zone %s not found", zoneID)
	}

	mult := c.RewardMultiplier(s, zoneID)
	if s.Clears == nil {
		s.Clears = make(map[string]int)
	}
	s.Clears[zoneID]++

	if s.HighestZoneCleared == "" || c.index[s.HighestZoneCleared] < i {
		s.HighestZoneCleared = zoneID
	}

	return Clear{
		ZoneID:           zoneID,
		ClearCount:       s.Clears[zoneID],
		RewardMultiplier: mult,
		Rewards:          c.zones[i].Rewards.Scale(mult),
	}, nil
}

// CanPrestige is true once a prestige zone has been cleared
func (c *Controller) CanPrestige(s *State) bool {
	for _, z := range c.zones {
		if z.Prestige && s.ClearCount(z.ID) >= 1 {
			return true
		}
	}
	return false
}

// PerformPrestige builds the post-prestige state and swaps it in. When
// prestige is not available s is left untouched.
func (c *Controller) PerformPrestige(s *State) (Prestige, error) {
	if !c.CanPrestige(s) {
		return Prestige{}, errors.PrestigeNotAvailable("no prestige zone has been cleared").
			WithMeta("prestige_level", s.PrestigeLevel)
	}

	next := &State{
		CurrentZone:        c.zones[0].ID,
		Clears:             make(map[string]int),
		PrestigeLevel:      s.PrestigeLevel + 1,
		HighestZoneCleared: s.HighestZoneCleared,
	}

	var reset []string
	for id, n := range s.Clears {
		z, ok := c.Zone(id)
		if ok && z.KeepOnPrestige {
			next.Clears[id] = n
			continue
		}
		if n > 0 {
			reset = append(reset, id)
		}
	}
	sort.Strings(reset)
	c.resetEncounter(next)

	*s = *next
	return Prestige{
		Level:      s.PrestigeLevel,
		Multiplier: c.PrestigeMultiplier(s),
		ResetZones: reset,
	}, nil
}
