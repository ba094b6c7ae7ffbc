package progression

import (
	"github.com/KirkDiggler/rpg-idle/internal/economy"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

// Encounter is the monster currently being fought in the active zone
type Encounter struct {
	ZoneID    string  `json:"zone_id"`
	MonsterID string  `json:"monster_id"`
	Boss      bool    `json:"boss"`
	MaxHP     float64 `json:"max_hp"`
	HP        float64 `json:"hp"`
	// Kills counts kills toward the next boss
	Kills int `json:"kills"`
}

// HitResult describes what one hit did
type HitResult struct {
	Damage    float64 `json:"damage"`
	MonsterID string  `json:"monster_id"`
	Killed    bool    `json:"killed"`
	Boss      bool    `json:"boss"`
	Gold      int64   `json:"gold"`
	XP        int64   `json:"xp"`
	Clear     *Clear  `json:"clear,omitempty"`
}

// Hit applies damage to the current monster. A kill pays the zone's kill
// rewards and spawns the next monster; the last kill before a clear is the
// boss, whose defeat clears the zone. Overkill damage is discarded.
func (c *Controller) Hit(s *State, damage float64) (HitResult, error) {
	if damage < 0 {
		return HitResult{}, errors.InvalidArgumentf("damage must not be negative, got %v", damage)
	}
	if s.Encounter.ZoneID != s.CurrentZone || s.Encounter.HP <= 0 {
		c.resetEncounter(s)
	}

	z, ok := c.Zone(s.CurrentZone)
	if !ok {
		return HitResult{}, errors.NotFoundf("zone %s not found", s.CurrentZone)
	}

	enc := &s.Encounter
	result := HitResult{Damage: damage, MonsterID: enc.MonsterID, Boss: enc.Boss}

	enc.HP -= damage
	if enc.HP > 0 {
		return result, nil
	}

	result.Killed = true
	mult := c.RewardMultiplier(s, z.ID)
	kill := economy.Reward{Gold: z.KillGold, XP: z.KillXP}.Scale(mult)
	result.Gold = kill.Gold
	result.XP = kill.XP

	if enc.Boss {
		cleared, err := c.ClearZone(s, z.ID)
		if err != nil {
			return HitResult{}, err
		}
		result.Clear = &cleared
		enc.Kills = 0
	} else {
		enc.Kills++
	}

	c.spawn(s, z)
	return result, nil
}

// MonsterHP is the scaled HP of a regular monster in a zone
func (c *Controller) MonsterHP(s *State, zoneID string) float64 {
	z, ok := c.Zone(zoneID)
	if !ok {
		return 0
	}
	return z.MonsterHP * c.DifficultyMultiplier(s, zoneID)
}

func (c *Controller) resetEncounter(s *State) {
	z, ok := c.Zone(s.CurrentZone)
	if !ok {
		s.Encounter = Encounter{}
		return
	}
	s.Encounter = Encounter{ZoneID: z.ID}
	c.spawn(s, z)
}

// spawn puts the next monster into the encounter, keeping the kill count
func (c *Controller) spawn(s *State, z Zone) {
	enc := &s.Encounter
	enc.ZoneID = z.ID
	hp := c.MonsterHP(s, z.ID)

	if enc.Kills >= z.KillsPerClear-1 {
		enc.MonsterID = z.BossID
		enc.Boss = true
		hp *= z.BossHPMultiplier
	} else {
		enc.MonsterID = z.Monsters[enc.Kills%len(z.Monsters)]
		enc.Boss = false
	}
	enc.MaxHP = hp
	enc.HP = hp
}
