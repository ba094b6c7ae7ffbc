package gameevents

import (
	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

// Envelope is the flat wire form of an Event
type Envelope struct {
	Type       string `json:"type"`
	MonsterID  string `json:"monster_id,omitempty"`
	ZoneID     string `json:"zone_id,omitempty"`
	ItemID     string `json:"item_id,omitempty"`
	MaterialID string `json:"material_id,omitempty"`
	BuildingID string `json:"building_id,omitempty"`
	RecipeID   string `json:"recipe_id,omitempty"`
	QuestID    string `json:"quest_id,omitempty"`
	Count      int    `json:"count,omitempty"`
	Level      int    `json:"level,omitempty"`
	Amount     int64  `json:"amount,omitempty"`
}

// Wrap flattens an event
func Wrap(ev Event) Envelope {
	switch e := ev.(type) {
	case MonsterKilled:
		return Envelope{Type: e.Type(), MonsterID: e.MonsterID, Count: e.Count}
	case BossDefeated:
		return Envelope{Type: e.Type(), ZoneID: e.ZoneID}
	case ItemCollected:
		return Envelope{Type: e.Type(), ItemID: e.ItemID, Count: e.Qty}
	case MaterialGathered:
		return Envelope{Type: e.Type(), MaterialID: e.MaterialID, Amount: e.Amount}
	case BuildingUpgraded:
		return Envelope{Type: e.Type(), BuildingID: e.BuildingID, Level: e.NewLevel}
	case PlayerLeveledUp:
		return Envelope{Type: e.Type(), Level: e.NewLevel}
	case ZoneCleared:
		return Envelope{Type: e.Type(), ZoneID: e.ZoneID, Count: e.ClearCount}
	case PrestigePerformed:
		return Envelope{Type: e.Type(), Level: e.Level}
	case ItemCrafted:
		return Envelope{Type: e.Type(), RecipeID: e.RecipeID, ItemID: e.ItemID}
	case QuestClaimed:
		return Envelope{Type: e.Type(), QuestID: e.QuestID}
	default:
		return Envelope{}
	}
}

// Unwrap turns an envelope back into its event
func (e Envelope) Unwrap() (Event, error) {
	vb := errors.NewValidationBuilder()

	var ev Event
	switch e.Type {
	case TypeMonsterKilled:
		ev = MonsterKilled{MonsterID: e.MonsterID, Count: e.Count}
	case TypeBossDefeated:
		errors.ValidateRequired("zone_id", e.ZoneID, vb)
		ev = BossDefeated{ZoneID: e.ZoneID}
	case TypeItemCollected:
		errors.ValidateRequired("item_id", e.ItemID, vb)
		ev = ItemCollected{ItemID: e.ItemID, Qty: e.Count}
	case TypeMaterialGathered:
		errors.ValidateRequired("material_id", e.MaterialID, vb)
		ev = MaterialGathered{MaterialID: e.MaterialID, Amount: e.Amount}
	case TypeBuildingUpgraded:
		errors.ValidateRequired("building_id", e.BuildingID, vb)
		ev = BuildingUpgraded{BuildingID: e.BuildingID, NewLevel: e.Level}
	case TypePlayerLeveledUp:
		ev = PlayerLeveledUp{NewLevel: e.Level}
	case TypeZoneCleared:
		errors.ValidateRequired("zone_id", e.ZoneID, vb)
		ev = ZoneCleared{ZoneID: e.ZoneID, ClearCount: e.Count}
	case TypePrestigePerformed:
		ev = PrestigePerformed{Level: e.Level}
	case TypeItemCrafted:
		errors.ValidateRequired("item_id", e.ItemID, vb)
		ev = ItemCrafted{RecipeID: e.RecipeID, ItemID: e.ItemID}
	case TypeQuestClaimed:
		errors.ValidateRequired("quest_id", e.QuestID, vb)
		ev = QuestClaimed{QuestID: e.QuestID}
	default:
		return nil, errors.InvalidArgumentf("unknown event type %q", e.Type)
	}

	errors.ValidateNonNegative("count", e.Count, vb)
	errors.ValidateNonNegative("level", e.Level, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}
	return ev, nil
}
