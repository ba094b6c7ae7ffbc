package economy

import "math"

// ScaleAmount multiplies a non-negative quantity by factor, rounding down.
// Results beyond the int64 range saturate at math.MaxInt64, so a larger
// factor never yields a smaller amount.
func ScaleAmount(base int64, factor float64) int64 {
	v := math.Floor(float64(base) * factor)
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= math.MaxInt64:
		return math.MaxInt64
	}
	return int64(v)
}

// AddAmount adds two quantities, saturating at the int64 bounds
func AddAmount(a, b int64) int64 {
	sum := a + b
	switch {
	case b > 0 && sum < a:
		return math.MaxInt64
	case b < 0 && sum > a:
		return math.MinInt64
	}
	return sum
}

// Scale multiplies every line of c by factor
func (c Cost) Scale(factor float64) Cost {
	out := Cost{Gold: ScaleAmount(c.Gold, factor)}
	if len(c.Materials) > 0 {
		out.Materials = make(map[string]int64, len(c.Materials))
		for id, qty := range c.Materials {
			out.Materials[id] = ScaleAmount(qty, factor)
		}
	}
	return out
}

// Reward is what a zone clear or a quest claim pays out
type Reward struct {
	Gold      int64            `yaml:"gold" json:"gold,omitempty"`
	XP        int64            `yaml:"xp" json:"xp,omitempty"`
	Materials map[string]int64 `yaml:"materials" json:"materials,omitempty"`
}

// Scale multiplies every line by mult, rounding down
func (r Reward) Scale(mult float64) Reward {
	bundle := r.Bundle().Scale(mult)
	return Reward{Gold: bundle.Gold, XP: ScaleAmount(r.XP, mult), Materials: bundle.Materials}
}

// Bundle returns the ledger part of the reward
func (r Reward) Bundle() Cost {
	return Cost{Gold: r.Gold, Materials: r.Materials}
}
