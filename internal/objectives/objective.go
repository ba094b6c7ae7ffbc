// Package objectives tracks progress of quest and achievement objectives
// from gameplay events. Each objective kind has its own update policy:
// some increment by the event count, others snapshot an absolute value.
package objectives

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

// Kind is the wire name of an objective kind
type Kind string

const (
	KindKillMonster     Kind = "kill_monster"
	KindDefeatBoss      Kind = "defeat_boss"
	KindCollectItem     Kind = "collect_item"
	KindGatherMaterial  Kind = "gather_material"
	KindUpgradeBuilding Kind = "upgrade_building"
	KindReachLevel      Kind = "reach_level"
)

// Criterion is the closed set of objective kinds with their filters. An
// empty filter matches every instance of its event.
type Criterion interface {
	Kind() Kind
	criterion()
}

// KillMonster counts kills, optionally of one monster
type KillMonster struct{ MonsterID string }

// DefeatBoss is met once the boss of BossZone (or any zone) is defeated
type DefeatBoss struct{ BossZone string }

// CollectItem counts collected items
type CollectItem struct{ ItemID string }

// GatherMaterial mirrors the live ledger balance of a material
type GatherMaterial struct{ MaterialID string }

// UpgradeBuilding mirrors the level of a building
type UpgradeBuilding struct{ BuildingID string }

// ReachLevel mirrors the character level
type ReachLevel struct{}

// Unknown holds a kind the engine does not implement. Objectives with it
// never progress and never complete.
type Unknown struct{ Type string }

func (KillMonster) Kind() Kind     { return KindKillMonster }
func (DefeatBoss) Kind() Kind      { return KindDefeatBoss }
func (CollectItem) Kind() Kind     { return KindCollectItem }
func (GatherMaterial) Kind() Kind  { return KindGatherMaterial }
func (UpgradeBuilding) Kind() Kind { return KindUpgradeBuilding }
func (ReachLevel) Kind() Kind      { return KindReachLevel }
func (u Unknown) Kind() Kind       { return Kind(u.Type) }

func (KillMonster) criterion()     {}
func (DefeatBoss) criterion()      {}
func (CollectItem) criterion()     {}
func (GatherMaterial) criterion()  {}
func (UpgradeBuilding) criterion() {}
func (ReachLevel) criterion()      {}
func (Unknown) criterion()         {}

// Objective is one measurable condition. Current is never clamped to
// Target; completion is Current >= Target.
type Objective struct {
	ID        string
	Target    int64
	Current   int64
	Criterion Criterion
}

// Complete reports whether the objective is satisfied
func (o *Objective) Complete() bool {
	if !Known(o.Criterion) {
		return false
	}
	return o.Current >= o.Target
}

// Reset puts progress back to zero
func (o *Objective) Reset() {
	o.Current = 0
}

// Clone returns a copy; criteria are values so a shallow copy is enough
func (o *Objective) Clone() *Objective {
	out := *o
	return &out
}

// Validate checks an objective coming from content. Unknown kinds are not
// a validation failure; they degrade at tracking time.
func (o *Objective) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", o.ID, vb)
	if o.Target < 1 {
		vb.Fieldf("target", "must be at least 1, got %d", o.Target)
	}
	if o.Criterion == nil {
		vb.RequiredField("type")
	}
	return vb.Build()
}

// Known reports whether c is one of the implemented kinds
func Known(c Criterion) bool {
	switch c.(type) {
	case KillMonster, DefeatBoss, CollectItem, GatherMaterial, UpgradeBuilding, ReachLevel:
		return true
	default:
		return false
	}
}

// flat is the persisted and content shape of an objective
type flat struct {
	ID         string `json:"id" yaml:"id"`
	Type       string `json:"type" yaml:"type"`
	Current    int64  `json:"current" yaml:"current"`
	Target     int64  `json:"target" yaml:"target"`
	MonsterID  string `json:"monster_id,omitempty" yaml:"monster_id"`
	BossZone   string `json:"boss_zone,omitempty" yaml:"boss_zone"`
	ItemID     string `json:"item_id,omitempty" yaml:"item_id"`
	MaterialID string `json:"material_id,omitempty" yaml:"material_id"`
	BuildingID string `json:"building_id,omitempty" yaml:"building_id"`
}

func (o *Objective) toFlat() flat {
	f := flat{ID: o.ID, Current: o.Current, Target: o.Target}
	switch c := o.Criterion.(type) {
	case KillMonster:
		f.Type, f.MonsterID = string(KindKillMonster), c.MonsterID
	case DefeatBoss:
		f.Type, f.BossZone = string(KindDefeatBoss), c.BossZone
	case CollectItem:
		f.Type, f.ItemID = string(KindCollectItem), c.ItemID
	case GatherMaterial:
		f.Type, f.MaterialID = string(KindGatherMaterial), c.MaterialID
	case UpgradeBuilding:
		f.Type, f.BuildingID = string(KindUpgradeBuilding), c.BuildingID
	case ReachLevel:
		f.Type = string(KindReachLevel)
	case Unknown:
		f.Type = c.Type
	}
	return f
}

func (f flat) toObjective() Objective {
	o := Objective{ID: f.ID, Current: f.Current, Target: f.Target}
	switch Kind(f.Type) {
	case KindKillMonster:
		o.Criterion = KillMonster{MonsterID: f.MonsterID}
	case KindDefeatBoss:
		o.Criterion = DefeatBoss{BossZone: f.BossZone}
	case KindCollectItem:
		o.Criterion = CollectItem{ItemID: f.ItemID}
	case KindGatherMaterial:
		o.Criterion = GatherMaterial{MaterialID: f.MaterialID}
	case KindUpgradeBuilding:
		o.Criterion = UpgradeBuilding{BuildingID: f.BuildingID}
	case KindReachLevel:
		o.Criterion = ReachLevel{}
	default:
		o.Criterion = Unknown{Type: f.Type}
	}
	return o
}

// MarshalJSON writes the flat form
func (o Objective) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.toFlat())
}

// UnmarshalJSON reads the flat form; unknown types become Unknown
func (o *Objective) UnmarshalJSON(data []byte) error {
	var f flat
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*o = f.toObjective()
	return nil
}

// UnmarshalYAML reads the flat form from content
func (o *Objective) UnmarshalYAML(node *yaml.Node) error {
	var f flat
	if err := node.Decode(&f); err != nil {
		return err
	}
	*o = f.toObjective()
	return nil
}
