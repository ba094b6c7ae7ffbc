// Package entities holds the data types shared by the progression engine.
//
// Derived combat numbers are never stored here; combat.Compute recomputes
// them from these records on every read.
package entities

import (
	"math"
	"sort"

	"github.com/KirkDiggler/rpg-idle/internal/economy"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

// Attributes are the five base attributes of a character
type Attributes struct {
	Str int `json:"str"`
	Dex int `json:"dex"`
	Con int `json:"con"`
	Int int `json:"int"`
	Wis int `json:"wis"`
}

// Character is the durable player character record
type Character struct {
	Attributes Attributes    `json:"attributes"`
	Level      int           `json:"level"`
	XP         int64         `json:"xp"`
	Equipment  map[Slot]Item `json:"equipment,omitempty"`
	Inventory  []Item        `json:"inventory,omitempty"`
}

// NewCharacter creates a level 1 character with the given attributes
func NewCharacter(attrs Attributes) *Character {
	return &Character{
		Attributes: attrs,
		Level:      1,
		Equipment:  make(map[Slot]Item),
	}
}

// Equipped returns equipped items in slot order
func (c *Character) Equipped() []Item {
	items := make([]Item, 0, len(c.Equipment))
	for _, slot := range Slots {
		if item, ok := c.Equipment[slot]; ok {
			items = append(items, item)
		}
	}
	return items
}

// Bonuses sums the bonuses of every equipped item
func (c *Character) Bonuses() ItemBonuses {
	var total ItemBonuses
	for _, item := range c.Equipment {
		total = total.Add(item.Bonuses)
	}
	return total
}

// Equip moves an inventory item into its slot. An item already in that slot
// goes back to the inventory.
func (c *Character) Equip(itemID string) error {
	idx := c.inventoryIndex(itemID)
	if idx < 0 {
		return errors.NotFoundf("item %s is not in the inventory", itemID)
	}

	item := c.Inventory[idx]
	if !item.Slot.Valid() {
		return errors.InvalidArgumentf("item %s cannot be equipped in slot %q", itemID, item.Slot)
	}

	if c.Equipment == nil {
		c.Equipment = make(map[Slot]Item)
	}

	c.Inventory = append(c.Inventory[:idx:idx], c.Inventory[idx+1:]...)
	if displaced, ok := c.Equipment[item.Slot]; ok {
		c.Inventory = append(c.Inventory, displaced)
	}
	c.Equipment[item.Slot] = item
	return nil
}

// Unequip moves the item in slot back to the inventory
func (c *Character) Unequip(slot Slot) error {
	item, ok := c.Equipment[slot]
	if !ok {
		return errors.NotFoundf("nothing equipped in slot %s", slot)
	}
	delete(c.Equipment, slot)
	c.Inventory = append(c.Inventory, item)
	return nil
}

// AddItem puts a new item into the inventory
func (c *Character) AddItem(item Item) {
	c.Inventory = append(c.Inventory, item)
}

// AddXP adds experience and levels up while the curve allows. It returns
// every level reached, in order.
func (c *Character) AddXP(amount int64, curve XPCurve) []int {
	if amount <= 0 {
		return nil
	}

	c.XP = economy.AddAmount(c.XP, amount)
	var reached []int
	for {
		need := curve.Required(c.Level)
		if need <= 0 || c.XP < need {
			break
		}
		c.XP -= need
		c.Level++
		reached = append(reached, c.Level)
	}
	return reached
}

func (c *Character) inventoryIndex(itemID string) int {
	for i, item := range c.Inventory {
		if item.ID == itemID {
			return i
		}
	}
	return -1
}

// XPCurve is the experience needed to advance from a level to the next:
// Base * Growth^(level-1)
type XPCurve struct {
	Base   int64   `yaml:"base" json:"base"`
	Growth float64 `yaml:"growth" json:"growth"`
}

// Required returns the XP needed to leave level
func (x XPCurve) Required(level int) int64 {
	if level < 1 {
		level = 1
	}
	growth := x.Growth
	if growth < 1 {
		growth = 1
	}
	return economy.ScaleAmount(x.Base, math.Pow(growth, float64(level-1)))
}

// SortItems orders items by id, for stable output
func SortItems(items []Item) {
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
}
