package objectives

import (
	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/gameevents"
)

// LedgerReader is the read-only ledger view gather objectives snapshot
type LedgerReader interface {
	Balance(resourceID string) int64
}

// StateReader is the read-only view Sync uses to seed absolute objectives
type StateReader interface {
	LedgerReader
	Level() int
	BuildingLevel(buildingID string) int
}

// Update records one objective whose progress changed
type Update struct {
	ObjectiveID string `json:"objective_id"`
	Before      int64  `json:"before"`
	After       int64  `json:"after"`
}

// ApplyResult is what one event did to a set of objectives
type ApplyResult struct {
	Updated []Update
	// Skipped holds one UnknownObjectiveKind error per objective the
	// engine could not evaluate
	Skipped []error
}

// Merge appends other into r
func (r *ApplyResult) Merge(other ApplyResult) {
	r.Updated = append(r.Updated, other.Updated...)
	r.Skipped = append(r.Skipped, other.Skipped...)
}

// Apply updates every objective the event matches. Only Current is
// touched; completion is derived by the caller.
func Apply(ev gameevents.Event, objs []*Objective, ledger LedgerReader) ApplyResult {
	var result ApplyResult
	for _, obj := range objs {
		if obj == nil {
			continue
		}

		next, matched, err := evaluate(ev, obj, ledger)
		if err != nil {
			result.Skipped = append(result.Skipped, err)
			continue
		}
		if !matched || next == obj.Current {
			continue
		}

		result.Updated = append(result.Updated, Update{
			ObjectiveID: obj.ID,
			Before:      obj.Current,
			After:       next,
		})
		obj.Current = next
	}
	return result
}

// evaluate returns the new progress of obj for ev and whether ev matched
func evaluate(ev gameevents.Event, obj *Objective, ledger LedgerReader) (int64, bool, error) {
	switch c := obj.Criterion.(type) {
	case KillMonster:
		e, ok := ev.(gameevents.MonsterKilled)
		if !ok || !matches(c.MonsterID, e.MonsterID) {
			return 0, false, nil
		}
		return obj.Current + int64(e.EffectiveCount()), true, nil

	case CollectItem:
		e, ok := ev.(gameevents.ItemCollected)
		if !ok || !matches(c.ItemID, e.ItemID) {
			return 0, false, nil
		}
		return obj.Current + int64(e.EffectiveQty()), true, nil

	case GatherMaterial:
		e, ok := ev.(gameevents.MaterialGathered)
		if !ok || !matches(c.MaterialID, e.MaterialID) {
			return 0, false, nil
		}
		if ledger == nil {
			return 0, false, errors.FailedPrecondition("gather objective needs a ledger").
				WithMeta("objective_id", obj.ID)
		}
		return ledger.Balance(e.MaterialID), true, nil

	case UpgradeBuilding:
		e, ok := ev.(gameevents.BuildingUpgraded)
		if !ok || !matches(c.BuildingID, e.BuildingID) {
			return 0, false, nil
		}
		return int64(e.NewLevel), true, nil

	case ReachLevel:
		e, ok := ev.(gameevents.PlayerLeveledUp)
		if !ok {
			return 0, false, nil
		}
		return int64(e.NewLevel), true, nil

	case DefeatBoss:
		e, ok := ev.(gameevents.BossDefeated)
		if !ok || !matches(c.BossZone, e.ZoneID) {
			return 0, false, nil
		}
		return 1, true, nil

	case Unknown:
		return 0, false, unknownKind(obj, c.Type)

	default:
		return 0, false, unknownKind(obj, "")
	}
}

func unknownKind(obj *Objective, kind string) error {
	return errors.UnknownObjectiveKindf("objective %s has unknown kind %q", obj.ID, kind).
		WithMeta("objective_id", obj.ID).
		WithMeta("kind", kind)
}

// matches treats an empty filter as a wildcard
func matches(filter, value string) bool {
	return filter == "" || filter == value
}

// Sync seeds absolute objectives from current state, for objectives created
// after the state they measure already changed. Incrementing kinds and
// defeat_boss are left alone.
func Sync(objs []*Objective, state StateReader) []Update {
	var updates []Update
	for _, obj := range objs {
		if obj == nil {
			continue
		}

		var next int64
		switch c := obj.Criterion.(type) {
		case GatherMaterial:
			if c.MaterialID == "" {
				continue
			}
			next = state.Balance(c.MaterialID)
		case UpgradeBuilding:
			if c.BuildingID == "" {
				continue
			}
			next = int64(state.BuildingLevel(c.BuildingID))
		case ReachLevel:
			next = int64(state.Level())
		default:
			continue
		}

		if next != obj.Current {
			updates = append(updates, Update{ObjectiveID: obj.ID, Before: obj.Current, After: next})
			obj.Current = next
		}
	}
	return updates
}
