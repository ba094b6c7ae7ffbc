package game

import (
	"github.com/KirkDiggler/rpg-idle/internal/objectives"
	"github.com/KirkDiggler/rpg-idle/internal/progression"
)

// snapshot builds the read model of a transaction's state
func (o *orchestrator) snapshot(tx *txn) *Snapshot {
	state := tx.state
	prog := state.Progression
	player := progression.Player{Level: state.Character.Level}

	snap := &Snapshot{
		PlayerID:      state.PlayerID,
		Character:     state.Character,
		Derived:       o.derived(state),
		Ledger:        state.Ledger,
		CurrentZone:   prog.CurrentZone,
		PrestigeLevel: prog.PrestigeLevel,
		CanPrestige:   o.rules.Zones.CanPrestige(prog),
		Multipliers: Multipliers{
			Difficulty: o.rules.Zones.DifficultyMultiplier(prog, prog.CurrentZone),
			Reward:     o.rules.Zones.RewardMultiplier(prog, prog.CurrentZone),
			Prestige:   o.rules.Zones.PrestigeMultiplier(prog),
		},
		Encounter:     prog.Encounter,
		Zones:         o.rules.Zones.Zones(prog, player),
		Metrics:       *state.Metrics,
		Rates:         state.Metrics.Rates(tx.now),
		SessionActive: state.Metrics.Active(),
		UpdatedAt:     state.UpdatedAt,
	}

	for _, b := range o.rules.Town.Buildings() {
		level := state.Town.Level(b.ID)
		status := BuildingStatus{ID: b.ID, Name: b.Name, Level: level, MaxLevel: b.MaxLevel}
		if level < b.MaxLevel {
			cost := b.CostAt(level)
			status.NextCost = &cost
		}
		snap.Buildings = append(snap.Buildings, status)
	}

	for _, e := range state.Quests.Entries {
		qs := QuestStatus{ID: e.ID, Kind: e.Kind, State: e.State(), Reward: e.Reward}
		qs.Objectives = make([]objectives.Objective, 0, len(e.Objectives))
		for _, obj := range e.Objectives {
			if obj != nil {
				qs.Objectives = append(qs.Objectives, *obj)
			}
		}
		snap.Quests = append(snap.Quests, qs)
	}

	if o.eventLog != nil {
		snap.RecentEvents = o.eventLog.Recent(state.PlayerID)
	}
	return snap
}
