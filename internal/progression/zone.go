// Package progression owns zone unlocks, clear counters, difficulty and
// reward scaling, the prestige reset and the per-zone encounter loop.
package progression

import (
	"math"

	"github.com/KirkDiggler/rpg-idle/internal/economy"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

// RequirementType is the closed set of unlock requirement kinds
type RequirementType string

const (
	RequirementNone          RequirementType = "none"
	RequirementPlayerLevel   RequirementType = "player_level"
	RequirementZoneCleared   RequirementType = "zone_cleared"
	RequirementPrestigeLevel RequirementType = "prestige_level"
)

var requirementTypes = []string{
	string(RequirementNone),
	string(RequirementPlayerLevel),
	string(RequirementZoneCleared),
	string(RequirementPrestigeLevel),
}

// Requirement gates a zone. An empty Type means none.
type Requirement struct {
	Type   RequirementType `yaml:"type" json:"type"`
	Value  int             `yaml:"value" json:"value,omitempty"`
	ZoneID string          `yaml:"zone_id" json:"zone_id,omitempty"`
}

// Zone is the immutable content descriptor of a zone
type Zone struct {
	ID       string         `yaml:"id" json:"id"`
	Name     string         `yaml:"name" json:"name"`
	Unlock   Requirement    `yaml:"unlock" json:"unlock"`
	Rewards  economy.Reward `yaml:"rewards" json:"rewards"`
	Monsters []string       `yaml:"monsters" json:"monsters"`
	BossID   string         `yaml:"boss_id" json:"boss_id"`

	MonsterHP        float64 `yaml:"monster_hp" json:"monster_hp"`
	BossHPMultiplier float64 `yaml:"boss_hp_multiplier" json:"boss_hp_multiplier"`
	KillGold         int64   `yaml:"kill_gold" json:"kill_gold"`
	KillXP           int64   `yaml:"kill_xp" json:"kill_xp"`
	KillsPerClear    int     `yaml:"kills_per_clear" json:"kills_per_clear"`

	// Prestige marks the zone whose clear enables prestige
	Prestige bool `yaml:"prestige" json:"prestige"`
	// KeepOnPrestige zones keep their clear count through a prestige
	KeepOnPrestige bool `yaml:"keep_on_prestige" json:"keep_on_prestige"`
}

// Validate checks a zone definition on its own
func (z *Zone) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("id", z.ID, vb)
	if len(z.Monsters) == 0 {
		vb.Field("monsters", "at least one monster is required")
	}
	errors.ValidateRequired("boss_id", z.BossID, vb)
	if z.MonsterHP <= 0 {
		vb.Fieldf("monster_hp", "must be positive, got %v", z.MonsterHP)
	}
	if z.BossHPMultiplier < 1 {
		vb.Fieldf("boss_hp_multiplier", "must be at least 1, got %v", z.BossHPMultiplier)
	}
	if z.KillsPerClear < 1 {
		vb.Fieldf("kills_per_clear", "must be at least 1, got %d", z.KillsPerClear)
	}
	errors.ValidateNonNegative("kill_gold", z.KillGold, vb)
	errors.ValidateNonNegative("kill_xp", z.KillXP, vb)
	errors.ValidateNonNegative("rewards.gold", z.Rewards.Gold, vb)
	errors.ValidateNonNegative("rewards.xp", z.Rewards.XP, vb)

	if z.Unlock.Type != "" {
		errors.ValidateEnum("unlock.type", string(z.Unlock.Type), requirementTypes, vb)
	}
	if z.Unlock.Type == RequirementZoneCleared && z.Unlock.ZoneID == "" {
		vb.RequiredField("unlock.zone_id")
	}
	errors.ValidateNonNegative("unlock.value", z.Unlock.Value, vb)
	if z.Prestige && z.KeepOnPrestige {
		vb.Field("keep_on_prestige", "a prestige zone must reset on prestige")
	}

	return vb.Build()
}

// Tuning holds the scaling coefficients of the multiplier curves
type Tuning struct {
	DifficultyPerClear    float64 `yaml:"difficulty_per_clear" json:"difficulty_per_clear"`
	RewardPerClear        float64 `yaml:"reward_per_clear" json:"reward_per_clear"`
	DifficultyPerPrestige float64 `yaml:"difficulty_per_prestige" json:"difficulty_per_prestige"`
	RewardPerPrestige     float64 `yaml:"reward_per_prestige" json:"reward_per_prestige"`
	PrestigeBonus         float64 `yaml:"prestige_bonus" json:"prestige_bonus"`
}

// DefaultTuning returns the coefficients used when content sets none
func DefaultTuning() Tuning {
	return Tuning{
		DifficultyPerClear:    0.25,
		RewardPerClear:        0.5,
		DifficultyPerPrestige: 0.5,
		RewardPerPrestige:     0.25,
		PrestigeBonus:         0.1,
	}
}

// Validate rejects negative coefficients, which would break monotonicity
func (t *Tuning) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateNonNegative("difficulty_per_clear", t.DifficultyPerClear, vb)
	errors.ValidateNonNegative("reward_per_clear", t.RewardPerClear, vb)
	errors.ValidateNonNegative("difficulty_per_prestige", t.DifficultyPerPrestige, vb)
	errors.ValidateNonNegative("reward_per_prestige", t.RewardPerPrestige, vb)
	errors.ValidateNonNegative("prestige_bonus", t.PrestigeBonus, vb)
	return vb.Build()
}

// Difficulty is 1 + k*sqrt(clears), scaled by the prestige level
func (t Tuning) Difficulty(clears, prestigeLevel int) float64 {
	n := float64(max(clears, 0))
	return (1 + t.DifficultyPerClear*math.Sqrt(n)) * prestigeScale(t.DifficultyPerPrestige, prestigeLevel)
}

// Reward is 1 + k*ln(1+clears), scaled by the prestige level
func (t Tuning) Reward(clears, prestigeLevel int) float64 {
	n := float64(max(clears, 0))
	return (1 + t.RewardPerClear*math.Log1p(n)) * prestigeScale(t.RewardPerPrestige, prestigeLevel)
}

// Prestige is the permanent combat multiplier granted by prestige levels
func (t Tuning) Prestige(prestigeLevel int) float64 {
	return 1 + t.PrestigeBonus*float64(max(prestigeLevel, 0))
}

func prestigeScale(per float64, prestigeLevel int) float64 {
	return 1 + per*float64(max(prestigeLevel, 0))
}
