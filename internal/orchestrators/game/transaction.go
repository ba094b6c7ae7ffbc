package game

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-idle/internal/analytics"
	"github.com/KirkDiggler/rpg-idle/internal/combat"
	"github.com/KirkDiggler/rpg-idle/internal/economy"
	"github.com/KirkDiggler/rpg-idle/internal/entities"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/gameevents"
	"github.com/KirkDiggler/rpg-idle/internal/objectives"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-idle/internal/progression"
	"github.com/KirkDiggler/rpg-idle/internal/quests"
	"github.com/KirkDiggler/rpg-idle/internal/repositories/gamestate"
)

// txn is one player transaction. Events are queued while the change is
// applied and only tracked into quests once it succeeded.
type txn struct {
	state   *gamestate.State
	now     time.Time
	created bool
	events  []gameevents.Event
	levels  []int

	// filled by track
	updates   []objectives.Update
	skipped   []error
	completed []string

	completedBefore map[string]bool
}

func (tx *txn) emit(evs ...gameevents.Event) {
	tx.events = append(tx.events, evs...)
}

// stateReader is the read-only view objectives seed from
type stateReader struct {
	state *gamestate.State
}

func (r stateReader) Balance(resourceID string) int64 { return r.state.Ledger.Balance(resourceID) }
func (r stateReader) Level() int                      { return r.state.Character.Level }
func (r stateReader) BuildingLevel(id string) int     { return r.state.Town.Level(id) }

type txnOptions struct {
	create   bool
	readOnly bool
}

// transact runs fn as one serialized transaction for a player. Nothing is
// saved when fn fails.
func (o *orchestrator) transact(ctx context.Context, playerID string, opts txnOptions, fn func(tx *txn) error) (*txn, error) {
	if err := validatePlayerID(playerID); err != nil {
		return nil, err
	}

	lock := o.playerLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	tx, err := o.load(ctx, playerID, opts.create)
	if err != nil {
		return nil, err
	}

	if err := fn(tx); err != nil {
		return nil, err
	}
	o.track(tx)

	if opts.readOnly {
		return tx, nil
	}

	if _, err := o.repo.Save(ctx, gamestate.SaveInput{State: tx.state}); err != nil {
		slog.ErrorContext(ctx, "Failed to save game state", "player_id", playerID, "error", err)
		return nil, errors.Wrap(err, "failed to save game state")
	}

	o.publish(ctx, playerID, tx)
	return tx, nil
}

// load reads a player's state and brings it in line with current content
// and the current day
func (o *orchestrator) load(ctx context.Context, playerID string, create bool) (*txn, error) {
	now := o.clock.Now()
	tx := &txn{now: now}

	out, err := o.repo.Get(ctx, gamestate.GetInput{PlayerID: playerID})
	switch {
	case err == nil:
		tx.state = out.State
	case errors.IsNotFound(err) && create:
		tx.state = o.newState(playerID, now)
		tx.created = true
	case errors.IsNotFound(err):
		return nil, errors.NotFoundf("player %s has no game; start a session first", playerID)
	default:
		return nil, errors.Wrap(err, "failed to load game state")
	}

	o.reconcile(tx.state)

	if sess := o.session(playerID); sess != nil {
		tx.state.Metrics.Attach(sess.metrics)
	}
	if tx.state.Quests.ResetDailies(now) {
		reader := stateReader{state: tx.state}
		for _, e := range tx.state.Quests.Dailies() {
			objectives.Sync(e.Objectives, reader)
		}
		slog.InfoContext(ctx, "Daily quests reset", "player_id", playerID, "date", tx.state.Quests.LastDailyReset)
	}
	tx.state.Metrics.Roll(now)

	tx.completedBefore = make(map[string]bool)
	for _, e := range tx.state.Quests.Claimable() {
		tx.completedBefore[e.ID] = true
	}
	return tx, nil
}

// newState builds a first-time player whose dailies already count as
// reset for today
func (o *orchestrator) newState(playerID string, now time.Time) *gamestate.State {
	ledger := economy.NewLedger()
	ledger.Gold = o.rules.StartingGold

	state := &gamestate.State{
		PlayerID:    playerID,
		Character:   entities.NewCharacter(o.rules.StartingAttributes),
		Ledger:      ledger,
		Town:        o.rules.Town.NewState(),
		Progression: o.rules.Zones.NewState(),
		Quests:      quests.NewBook(o.rules.Quests),
		Metrics:     &analytics.Metrics{},
	}
	state.Quests.LastDailyReset = clock.Date(now)
	state.Quests.Sync(stateReader{state: state})
	return state
}

// reconcile fills components missing from storage and adapts the rest to
// the loaded content. New quest entries are seeded from live state.
func (o *orchestrator) reconcile(state *gamestate.State) {
	if state.Character == nil {
		state.Character = entities.NewCharacter(o.rules.StartingAttributes)
	}
	if state.Ledger == nil {
		state.Ledger = economy.NewLedger()
	}
	if state.Town == nil {
		state.Town = o.rules.Town.NewState()
	}
	if state.Progression == nil {
		state.Progression = o.rules.Zones.NewState()
	}
	if state.Quests == nil {
		state.Quests = &quests.Book{}
	}
	if state.Metrics == nil {
		state.Metrics = &analytics.Metrics{}
	}

	o.rules.Town.Reconcile(state.Town)
	o.rules.Zones.Reconcile(state.Progression)

	reader := stateReader{state: state}
	for _, e := range state.Quests.Reconcile(o.rules.Quests) {
		objectives.Sync(e.Objectives, reader)
	}
}

// track applies the queued events to the quest book in order, against
// the ledger as the transaction left it
func (o *orchestrator) track(tx *txn) {
	for _, ev := range tx.events {
		result := tx.state.Quests.Track(ev, tx.state.Ledger)
		tx.updates = append(tx.updates, result.Updated...)
		tx.skipped = append(tx.skipped, result.Skipped...)
	}
	for _, e := range tx.state.Quests.Claimable() {
		if !tx.completedBefore[e.ID] {
			tx.completed = append(tx.completed, e.ID)
		}
	}
}

func (o *orchestrator) publish(ctx context.Context, playerID string, tx *txn) {
	for _, id := range tx.completed {
		slog.InfoContext(ctx, "Quest completed", "player_id", playerID, "quest_id", id)
	}
	if len(tx.events) == 0 {
		return
	}
	if err := o.publisher.Publish(ctx, playerID, tx.events...); err != nil {
		slog.WarnContext(ctx, "Failed to publish game events",
			"player_id", playerID,
			"count", len(tx.events),
			"error", err)
	}
}

func (o *orchestrator) derived(state *gamestate.State) combat.Derived {
	return o.rules.Calculator.Compute(combat.Input{
		Attributes:         state.Character.Attributes,
		Equipped:           state.Character.Equipped(),
		Effects:            o.rules.Town.Effects(state.Town),
		Level:              state.Character.Level,
		PrestigeMultiplier: o.rules.Zones.PrestigeMultiplier(state.Progression),
	})
}

func boost(amount int64, bonus float64) int64 {
	if bonus <= 0 {
		return amount
	}
	return economy.ScaleAmount(amount, 1+bonus)
}

// grantXP adds experience to the character, emitting one PlayerLeveledUp
// per level reached
func (o *orchestrator) grantXP(tx *txn, amount int64) {
	if amount <= 0 {
		return
	}
	tx.state.Metrics.RecordXP(amount)
	for _, lvl := range tx.state.Character.AddXP(amount, o.rules.XPCurve) {
		tx.levels = append(tx.levels, lvl)
		tx.emit(gameevents.PlayerLeveledUp{NewLevel: lvl})
	}
}

// grantBundle credits gold and materials, emitting MaterialGathered per
// material in id order
func (o *orchestrator) grantBundle(tx *txn, bundle economy.Cost) error {
	if bundle.IsZero() {
		return nil
	}
	if err := tx.state.Ledger.Grant(bundle); err != nil {
		return err
	}
	tx.state.Metrics.RecordGold(bundle.Gold)

	granted := &economy.Ledger{Materials: bundle.Materials}
	for _, id := range granted.MaterialIDs() {
		if qty := bundle.Materials[id]; qty > 0 {
			tx.emit(gameevents.MaterialGathered{MaterialID: id, Amount: qty})
		}
	}
	return nil
}

// grantReward is the quests.Grantee a claim pays into
type grantReward struct {
	o  *orchestrator
	tx *txn
}

func (g grantReward) GrantReward(r economy.Reward) error {
	if err := g.o.grantBundle(g.tx, r.Bundle()); err != nil {
		return err
	}
	g.o.grantXP(g.tx, r.XP)
	return nil
}

// hit damages the current monster and pays out kills and clears. Gold is
// boosted by the gold bonus and XP by the XP bonus; clear materials are not.
func (o *orchestrator) hit(tx *txn, damage float64) (progression.HitResult, error) {
	d := o.derived(tx.state)
	result, err := o.rules.Zones.Hit(tx.state.Progression, damage)
	if err != nil {
		return progression.HitResult{}, err
	}
	if !result.Killed {
		return result, nil
	}

	tx.state.Metrics.RecordKills(1)
	tx.emit(gameevents.MonsterKilled{MonsterID: result.MonsterID, Count: 1})

	gold := boost(result.Gold, d.GoldBonus)
	xp := boost(result.XP, d.XPBonus)

	if c := result.Clear; c != nil {
		tx.state.Metrics.RecordZoneCleared()
		tx.emit(
			gameevents.BossDefeated{ZoneID: c.ZoneID},
			gameevents.ZoneCleared{ZoneID: c.ZoneID, ClearCount: c.ClearCount},
		)
		gold += boost(c.Rewards.Gold, d.GoldBonus)
		xp += boost(c.Rewards.XP, d.XPBonus)
		if err := o.grantBundle(tx, economy.Cost{Materials: c.Rewards.Materials}); err != nil {
			return progression.HitResult{}, err
		}
	}

	if err := o.grantBundle(tx, economy.Cost{Gold: gold}); err != nil {
		return progression.HitResult{}, err
	}
	o.grantXP(tx, xp)

	result.Gold = gold
	result.XP = xp
	return result, nil
}

func skippedMessages(errs []error) []string {
	if len(errs) == 0 {
		return nil
	}
	out := make([]string, len(errs))
	for i, err := range errs {
		out[i] = errors.GetMessage(err)
	}
	return out
}
