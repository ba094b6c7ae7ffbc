// Package gameevents defines the typed gameplay events the engine consumes
// and emits, and publishes them on an rpg-toolkit event bus once a
// transaction has been committed.
package gameevents

// Event type names, also used as bus topics
const (
	TypeMonsterKilled     = "monster_killed"
	TypeBossDefeated      = "boss_defeated"
	TypeItemCollected     = "item_collected"
	TypeMaterialGathered  = "material_gathered"
	TypeBuildingUpgraded  = "building_upgraded"
	TypePlayerLeveledUp   = "player_leveled_up"
	TypeZoneCleared       = "zone_cleared"
	TypePrestigePerformed = "prestige_performed"
	TypeItemCrafted       = "item_crafted"
	TypeQuestClaimed      = "quest_claimed"
)

// Types lists every event type
var Types = []string{
	TypeMonsterKilled,
	TypeBossDefeated,
	TypeItemCollected,
	TypeMaterialGathered,
	TypeBuildingUpgraded,
	TypePlayerLeveledUp,
	TypeZoneCleared,
	TypePrestigePerformed,
	TypeItemCrafted,
	TypeQuestClaimed,
}

// Event is the closed set of gameplay events
type Event interface {
	Type() string
	sealed()
}

// MonsterKilled reports Count kills of MonsterID. Count 0 means 1.
type MonsterKilled struct {
	MonsterID string
	Count     int
}

// BossDefeated reports the boss of ZoneID going down
type BossDefeated struct {
	ZoneID string
}

// ItemCollected reports Qty of ItemID entering the inventory. Qty 0 means 1.
type ItemCollected struct {
	ItemID string
	Qty    int
}

// MaterialGathered reports a material balance change. Amount is the delta;
// objectives read the live ledger instead.
type MaterialGathered struct {
	MaterialID string
	Amount     int64
}

// BuildingUpgraded reports a building reaching NewLevel
type BuildingUpgraded struct {
	BuildingID string
	NewLevel   int
}

// PlayerLeveledUp reports the character reaching NewLevel
type PlayerLeveledUp struct {
	NewLevel int
}

// ZoneCleared reports a zone clear
type ZoneCleared struct {
	ZoneID     string
	ClearCount int
}

// PrestigePerformed reports a prestige reset to Level
type PrestigePerformed struct {
	Level int
}

// ItemCrafted reports a recipe producing ItemID
type ItemCrafted struct {
	RecipeID string
	ItemID   string
}

// QuestClaimed reports a quest or achievement reward being claimed
type QuestClaimed struct {
	QuestID string
}

func (MonsterKilled) Type() string     { return TypeMonsterKilled }
func (BossDefeated) Type() string      { return TypeBossDefeated }
func (ItemCollected) Type() string     { return TypeItemCollected }
func (MaterialGathered) Type() string  { return TypeMaterialGathered }
func (BuildingUpgraded) Type() string  { return TypeBuildingUpgraded }
func (PlayerLeveledUp) Type() string   { return TypePlayerLeveledUp }
func (ZoneCleared) Type() string       { return TypeZoneCleared }
func (PrestigePerformed) Type() string { return TypePrestigePerformed }
func (ItemCrafted) Type() string       { return TypeItemCrafted }
func (QuestClaimed) Type() string      { return TypeQuestClaimed }

func (MonsterKilled) sealed()     {}
func (BossDefeated) sealed()      {}
func (ItemCollected) sealed()     {}
func (MaterialGathered) sealed()  {}
func (BuildingUpgraded) sealed()  {}
func (PlayerLeveledUp) sealed()   {}
func (ZoneCleared) sealed()       {}
func (PrestigePerformed) sealed() {}
func (ItemCrafted) sealed()       {}
func (QuestClaimed) sealed()      {}

// EffectiveCount returns Count, treating 0 as 1
func (e MonsterKilled) EffectiveCount() int {
	if e.Count <= 0 {
		return 1
	}
	return e.Count
}

// EffectiveQty returns Qty, treating 0 as 1
func (e ItemCollected) EffectiveQty() int {
	if e.Qty <= 0 {
		return 1
	}
	return e.Qty
}
