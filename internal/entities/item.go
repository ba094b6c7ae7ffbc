package entities

// Slot is an equipment slot
type Slot string

// Equipment slots
const (
	SlotWeapon    Slot = "weapon"
	SlotHelmet    Slot = "helmet"
	SlotChest     Slot = "chest"
	SlotLegs      Slot = "legs"
	SlotBoots     Slot = "boots"
	SlotGloves    Slot = "gloves"
	SlotRingLeft  Slot = "ring_left"
	SlotRingRight Slot = "ring_right"
)

// Slots lists every slot in display order
var Slots = []Slot{
	SlotWeapon, SlotHelmet, SlotChest, SlotLegs,
	SlotBoots, SlotGloves, SlotRingLeft, SlotRingRight,
}

// Valid reports whether s is one of the known slots
func (s Slot) Valid() bool {
	for _, known := range Slots {
		if s == known {
			return true
		}
	}
	return false
}

// ItemBonuses are the combat bonuses an equipped item contributes
type ItemBonuses struct {
	ClickDamage float64 `yaml:"click_damage" json:"click_damage,omitempty"`
	AutoDamage  float64 `yaml:"auto_damage" json:"auto_damage,omitempty"`
	AutoSpeed   float64 `yaml:"auto_speed" json:"auto_speed,omitempty"`
	CritChance  float64 `yaml:"crit_chance" json:"crit_chance,omitempty"`
	GoldBonus   float64 `yaml:"gold_bonus" json:"gold_bonus,omitempty"`
	XPBonus     float64 `yaml:"xp_bonus" json:"xp_bonus,omitempty"`
}

// Add returns the field-wise sum of b and o
func (b ItemBonuses) Add(o ItemBonuses) ItemBonuses {
	return ItemBonuses{
		ClickDamage: b.ClickDamage + o.ClickDamage,
		AutoDamage:  b.AutoDamage + o.AutoDamage,
		AutoSpeed:   b.AutoSpeed + o.AutoSpeed,
		CritChance:  b.CritChance + o.CritChance,
		GoldBonus:   b.GoldBonus + o.GoldBonus,
		XPBonus:     b.XPBonus + o.XPBonus,
	}
}

// Item is an owned piece of equipment
type Item struct {
	ID      string      `json:"id"`
	BaseID  string      `json:"base_id"`
	Slot    Slot        `json:"slot"`
	Bonuses ItemBonuses `json:"bonuses"`
}
