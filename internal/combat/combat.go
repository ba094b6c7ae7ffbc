package combat

import (
	"math"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-idle/internal/entities"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/town"
)

// Input is everything the derived stats depend on
type Input struct {
	Attributes         entities.Attributes
	Equipped           []entities.Item
	Effects            town.Effects
	Level              int
	PrestigeMultiplier float64
}

// Derived is the read-only result of Compute
type Derived struct {
	ClickDamage float64 `json:"click_damage"`
	AutoDamage  float64 `json:"auto_damage"`
	AutoAPS     float64 `json:"auto_aps"`
	CritChance  float64 `json:"crit_chance"`
	GoldBonus   float64 `json:"gold_bonus"`
	XPBonus     float64 `json:"xp_bonus"`
}

// DPS is auto damage per second
func (d Derived) DPS() float64 {
	return d.AutoDamage * d.AutoAPS
}

// Calculator evaluates a Formula
type Calculator struct {
	formula Formula
}

// NewCalculator validates the formula and returns a calculator for it
func NewCalculator(f Formula) (*Calculator, error) {
	if err := f.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid combat formula")
	}
	return &Calculator{formula: f}, nil
}

// Formula returns the coefficients in use
func (c *Calculator) Formula() Formula {
	return c.formula
}

// Compute derives every combat stat from in
func (c *Calculator) Compute(in Input) Derived {
	items := sumItems(in.Equipped)
	return Derived{
		ClickDamage: c.clickDamage(in, items),
		AutoDamage:  c.autoDamage(in, items),
		AutoAPS:     c.autoAPS(in, items),
		CritChance:  c.critChance(in, items),
		GoldBonus:   items.GoldBonus + in.Effects.GoldBonus,
		XPBonus:     items.XPBonus + in.Effects.XPBonus,
	}
}

// ClickDamage is damage per click; strictly increasing in Str
func (c *Calculator) ClickDamage(in Input) float64 {
	return c.clickDamage(in, sumItems(in.Equipped))
}

// AutoDamage is damage per automatic attack
func (c *Calculator) AutoDamage(in Input) float64 {
	return c.autoDamage(in, sumItems(in.Equipped))
}

// AutoAPS is automatic attacks per second, never below the formula floor
func (c *Calculator) AutoAPS(in Input) float64 {
	return c.autoAPS(in, sumItems(in.Equipped))
}

func (c *Calculator) clickDamage(in Input, items entities.ItemBonuses) float64 {
	f := c.formula
	base := f.ClickBase +
		float64(in.Attributes.Str)*f.ClickPerStr +
		float64(in.Level)*f.ClickPerLevel +
		items.ClickDamage
	return base*(1+in.Effects.ClickDamageMult)*prestige(in) + in.Effects.ClickDamageFlat
}

func (c *Calculator) autoDamage(in Input, items entities.ItemBonuses) float64 {
	f := c.formula
	base := float64(in.Attributes.Wis)*f.AutoPerWis +
		float64(in.Attributes.Int)*f.AutoPerInt +
		float64(in.Level)*f.AutoPerLevel +
		items.AutoDamage
	return base * (1 + in.Effects.AutoDamageMult) * prestige(in)
}

func (c *Calculator) autoAPS(in Input, items entities.ItemBonuses) float64 {
	f := c.formula
	aps := f.BaseAPS + float64(in.Attributes.Dex)*f.APSPerDex + items.AutoSpeed + in.Effects.AutoSpeedBonus
	return math.Max(f.MinAPS, aps)
}

func (c *Calculator) critChance(in Input, items entities.ItemBonuses) float64 {
	f := c.formula
	chance := f.BaseCrit + float64(in.Attributes.Dex)*f.CritPerDex + items.CritChance + in.Effects.CritChance
	return math.Min(1, math.Max(0, chance))
}

// prestige treats an unset multiplier as 1
func prestige(in Input) float64 {
	if in.PrestigeMultiplier <= 0 {
		return 1
	}
	return in.PrestigeMultiplier
}

func sumItems(items []entities.Item) entities.ItemBonuses {
	var total entities.ItemBonuses
	for _, item := range items {
		total = total.Add(item.Bonuses)
	}
	return total
}

// Hit is one resolved click
type Hit struct {
	Damage float64 `json:"damage"`
	Crit   bool    `json:"crit"`
	Roll   int     `json:"roll"`
}

// RollClick rolls a d100 against the crit chance and applies the crit
// multiplier on success
func (c *Calculator) RollClick(roller dice.Roller, d Derived) (Hit, error) {
	if roller == nil {
		return Hit{}, errors.InvalidArgument("dice roller is required")
	}

	roll, err := roller.Roll(100)
	if err != nil {
		return Hit{}, errors.Wrap(err, "failed to roll for critical hit")
	}

	hit := Hit{Damage: d.ClickDamage, Roll: roll}
	if float64(roll) <= d.CritChance*100 {
		hit.Crit = true
		hit.Damage *= c.formula.CritMultiplier
	}
	return hit, nil
}

var defaultCalculator = &Calculator{formula: DefaultFormula()}

// Compute derives combat stats with DefaultFormula
func Compute(in Input) Derived {
	return defaultCalculator.Compute(in)
}
