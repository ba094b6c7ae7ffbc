// Package town holds the building registry: upgrade costs, the upgrade
// transaction and the aggregate effects buildings grant to combat.
package town

import (
	"math"

	"github.com/KirkDiggler/rpg-idle/internal/economy"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

// EffectStat names the combat bonus an effect line contributes to
type EffectStat string

const (
	EffectClickDamageMult EffectStat = "click_damage_mult"
	EffectClickDamageFlat EffectStat = "click_damage_flat"
	EffectAutoDamageMult  EffectStat = "auto_damage_mult"
	EffectAutoSpeed       EffectStat = "auto_speed"
	EffectCritChance      EffectStat = "crit_chance"
	EffectGoldBonus       EffectStat = "gold_bonus"
	EffectXPBonus         EffectStat = "xp_bonus"
)

var effectStats = []string{
	string(EffectClickDamageMult),
	string(EffectClickDamageFlat),
	string(EffectAutoDamageMult),
	string(EffectAutoSpeed),
	string(EffectCritChance),
	string(EffectGoldBonus),
	string(EffectXPBonus),
}

// EffectLine grants PerLevel of Stat for every level of the building
type EffectLine struct {
	Stat     EffectStat `yaml:"stat" json:"stat"`
	PerLevel float64    `yaml:"per_level" json:"per_level"`
}

// Building is the immutable content definition of a town building
type Building struct {
	ID              string       `yaml:"id" json:"id"`
	Name            string       `yaml:"name" json:"name"`
	MaxLevel        int          `yaml:"max_level" json:"max_level"`
	BaseCost        economy.Cost `yaml:"base_cost" json:"base_cost"`
	Growth          float64      `yaml:"growth" json:"growth"`
	Effects         []EffectLine `yaml:"effects" json:"effects"`
	ResetOnPrestige bool         `yaml:"reset_on_prestige" json:"reset_on_prestige"`
}

// Validate checks a building definition. Growth below 1 would make the cost
// curve decrease with level.
func (b *Building) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("id", b.ID, vb)
	if b.MaxLevel < 1 {
		vb.Fieldf("max_level", "must be at least 1, got %d", b.MaxLevel)
	}
	if b.Growth < 1 {
		vb.Fieldf("growth", "must be at least 1, got %v", b.Growth)
	}
	errors.ValidateNonNegative("base_cost.gold", b.BaseCost.Gold, vb)
	for id, qty := range b.BaseCost.Materials {
		errors.ValidateNonNegative("base_cost.materials."+id, qty, vb)
	}
	for _, line := range b.Effects {
		errors.ValidateEnum("effects.stat", string(line.Stat), effectStats, vb)
	}

	return vb.Build()
}

// CostAt returns the cost of upgrading from level to level+1
func (b *Building) CostAt(level int) economy.Cost {
	return b.BaseCost.Scale(math.Pow(b.Growth, float64(level)))
}

// Effects is the flat bonus structure buildings contribute to combat
type Effects struct {
	ClickDamageMult float64 `json:"click_damage_mult"`
	ClickDamageFlat float64 `json:"click_damage_flat"`
	AutoDamageMult  float64 `json:"auto_damage_mult"`
	AutoSpeedBonus  float64 `json:"auto_speed_bonus"`
	CritChance      float64 `json:"crit_chance"`
	GoldBonus       float64 `json:"gold_bonus"`
	XPBonus         float64 `json:"xp_bonus"`
}

func (e *Effects) add(stat EffectStat, value float64) {
	switch stat {
	case EffectClickDamageMult:
		e.ClickDamageMult += value
	case EffectClickDamageFlat:
		e.ClickDamageFlat += value
	case EffectAutoDamageMult:
		e.AutoDamageMult += value
	case EffectAutoSpeed:
		e.AutoSpeedBonus += value
	case EffectCritChance:
		e.CritChance += value
	case EffectGoldBonus:
		e.GoldBonus += value
	case EffectXPBonus:
		e.XPBonus += value
	}
}
