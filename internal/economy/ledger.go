// Package economy owns gold and material balances.
package economy

import (
	"sort"

	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

// ResourceGold is the resource id for gold; every other id is a material
const ResourceGold = "gold"

// Cost is a bundle of gold and materials
type Cost struct {
	Gold      int64            `json:"gold,omitempty" yaml:"gold"`
	Materials map[string]int64 `json:"materials,omitempty" yaml:"materials"`
}

// IsZero reports whether the cost is free
func (c Cost) IsZero() bool {
	if c.Gold != 0 {
		return false
	}
	for _, qty := range c.Materials {
		if qty != 0 {
			return false
		}
	}
	return true
}

// Ledger holds balances. Quantities never go negative: debits that cannot
// be covered are rejected whole.
type Ledger struct {
	Gold      int64            `json:"gold"`
	Materials map[string]int64 `json:"materials"`
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{Materials: make(map[string]int64)}
}

// Balance returns the current quantity of a resource
func (l *Ledger) Balance(resourceID string) int64 {
	if resourceID == ResourceGold {
		return l.Gold
	}
	return l.Materials[resourceID]
}

// MaterialIDs returns held material ids, sorted
func (l *Ledger) MaterialIDs() []string {
	ids := make([]string, 0, len(l.Materials))
	for id := range l.Materials {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Credit increases a balance
func (l *Ledger) Credit(resourceID string, amount int64) error {
	if err := validateMovement(resourceID, amount); err != nil {
		return err
	}
	l.add(resourceID, amount)
	return nil
}

// Debit decreases a balance, failing with InsufficientFunds when the
// balance cannot cover amount
func (l *Ledger) Debit(resourceID string, amount int64) error {
	if err := validateMovement(resourceID, amount); err != nil {
		return err
	}
	if have := l.Balance(resourceID); have < amount {
		return errors.InsufficientFundsf("%s balance %d is less than %d", resourceID, have, amount).
			WithMeta("resource_id", resourceID).
			WithMeta("balance", have).
			WithMeta("required", amount)
	}
	l.add(resourceID, -amount)
	return nil
}

// CanAfford reports whether every line of cost is covered
func (l *Ledger) CanAfford(cost Cost) bool {
	return l.shortfall(cost) == ""
}

// Spend re-validates cost against current balances and debits every line,
// or nothing at all
func (l *Ledger) Spend(cost Cost) error {
	if err := validateCost(cost); err != nil {
		return err
	}
	if short := l.shortfall(cost); short != "" {
		return errors.InsufficientFundsf("cannot afford cost: short on %s", short).
			WithMeta("resource_id", short).
			WithMeta("balance", l.Balance(short))
	}

	l.Gold -= cost.Gold
	for id, qty := range cost.Materials {
		l.add(id, -qty)
	}
	return nil
}

// Grant credits every line of a bundle
func (l *Ledger) Grant(bundle Cost) error {
	if err := validateCost(bundle); err != nil {
		return err
	}
	l.Gold = AddAmount(l.Gold, bundle.Gold)
	for id, qty := range bundle.Materials {
		l.add(id, qty)
	}
	return nil
}

// Clone returns a deep copy
func (l *Ledger) Clone() *Ledger {
	out := &Ledger{Gold: l.Gold, Materials: make(map[string]int64, len(l.Materials))}
	for id, qty := range l.Materials {
		out.Materials[id] = qty
	}
	return out
}

func (l *Ledger) add(resourceID string, delta int64) {
	if resourceID == ResourceGold {
		l.Gold = AddAmount(l.Gold, delta)
		return
	}
	if l.Materials == nil {
		l.Materials = make(map[string]int64)
	}
	l.Materials[resourceID] = AddAmount(l.Materials[resourceID], delta)
}

// shortfall returns the first resource (gold first, then materials by id)
// that cost exceeds, or "" when affordable
func (l *Ledger) shortfall(cost Cost) string {
	if l.Gold < cost.Gold {
		return ResourceGold
	}
	ids := make([]string, 0, len(cost.Materials))
	for id := range cost.Materials {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if l.Materials[id] < cost.Materials[id] {
			return id
		}
	}
	return ""
}

func validateMovement(resourceID string, amount int64) error {
	if resourceID == "" {
		return errors.InvalidArgument("resource id is required")
	}
	if amount < 0 {
		return errors.InvalidArgumentf("amount must not be negative, got %d", amount).
			WithMeta("resource_id", resourceID)
	}
	return nil
}

func validateCost(cost Cost) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateNonNegative("gold", cost.Gold, vb)
	for id, qty := range cost.Materials {
		if id == "" || id == ResourceGold {
			vb.Fieldf("materials", "invalid material id %q", id)
		}
		errors.ValidateNonNegative("materials."+id, qty, vb)
	}
	return vb.Build()
}
