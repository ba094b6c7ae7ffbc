// Package combat derives click damage, auto damage and attack speed from a
// character, its equipment and town effects. Nothing here is cached; every
// call recomputes from its inputs.
package combat

import (
	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

// Formula holds the tunable coefficients of the derived stat formulas
type Formula struct {
	ClickBase     float64 `yaml:"click_base" json:"click_base"`
	ClickPerStr   float64 `yaml:"click_per_str" json:"click_per_str"`
	ClickPerLevel float64 `yaml:"click_per_level" json:"click_per_level"`

	AutoPerWis   float64 `yaml:"auto_per_wis" json:"auto_per_wis"`
	AutoPerInt   float64 `yaml:"auto_per_int" json:"auto_per_int"`
	AutoPerLevel float64 `yaml:"auto_per_level" json:"auto_per_level"`

	BaseAPS   float64 `yaml:"base_aps" json:"base_aps"`
	APSPerDex float64 `yaml:"aps_per_dex" json:"aps_per_dex"`
	MinAPS    float64 `yaml:"min_aps" json:"min_aps"`

	BaseCrit       float64 `yaml:"base_crit" json:"base_crit"`
	CritPerDex     float64 `yaml:"crit_per_dex" json:"crit_per_dex"`
	CritMultiplier float64 `yaml:"crit_multiplier" json:"crit_multiplier"`
}

// DefaultFormula returns the coefficients used when content sets none
func DefaultFormula() Formula {
	return Formula{
		ClickBase:      1,
		ClickPerStr:    1,
		ClickPerLevel:  0.5,
		AutoPerWis:     0.5,
		AutoPerInt:     0.25,
		AutoPerLevel:   0.2,
		BaseAPS:        1,
		APSPerDex:      0.02,
		MinAPS:         0.1,
		BaseCrit:       0.05,
		CritPerDex:     0.002,
		CritMultiplier: 2,
	}
}

// Validate checks the coefficients. Negative per-attribute coefficients are
// rejected so damage stays non-decreasing in every attribute.
func (f *Formula) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateNonNegative("click_base", f.ClickBase, vb)
	if f.ClickPerStr <= 0 {
		vb.Fieldf("click_per_str", "must be positive, got %v", f.ClickPerStr)
	}
	errors.ValidateNonNegative("click_per_level", f.ClickPerLevel, vb)
	errors.ValidateNonNegative("auto_per_wis", f.AutoPerWis, vb)
	errors.ValidateNonNegative("auto_per_int", f.AutoPerInt, vb)
	errors.ValidateNonNegative("auto_per_level", f.AutoPerLevel, vb)
	errors.ValidateNonNegative("aps_per_dex", f.APSPerDex, vb)
	if f.MinAPS <= 0 {
		vb.Fieldf("min_aps", "must be positive, got %v", f.MinAPS)
	}
	errors.ValidateNonNegative("base_crit", f.BaseCrit, vb)
	errors.ValidateNonNegative("crit_per_dex", f.CritPerDex, vb)
	if f.CritMultiplier < 1 {
		vb.Fieldf("crit_multiplier", "must be at least 1, got %v", f.CritMultiplier)
	}

	return vb.Build()
}
