package quests

import (
	"time"

	"github.com/KirkDiggler/rpg-idle/internal/economy"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/gameevents"
	"github.com/KirkDiggler/rpg-idle/internal/objectives"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/clock"
)

// Grantee applies a reward. It must apply all of it or nothing.
type Grantee interface {
	GrantReward(reward economy.Reward) error
}

// Book holds every quest and achievement entry of a player
type Book struct {
	Entries        []*Entry `json:"entries"`
	LastDailyReset string   `json:"last_daily_reset"`
}

// NewBook creates entries for every definition
func NewBook(defs []Definition) *Book {
	b := &Book{Entries: make([]*Entry, 0, len(defs))}
	for i := range defs {
		b.Entries = append(b.Entries, defs[i].NewEntry())
	}
	return b
}

// Reconcile adds entries for definitions the book does not have yet
// and returns them
func (b *Book) Reconcile(defs []Definition) []*Entry {
	var added []*Entry
	for i := range defs {
		if b.Entry(defs[i].ID) != nil {
			continue
		}
		e := defs[i].NewEntry()
		b.Entries = append(b.Entries, e)
		added = append(added, e)
	}
	return added
}

// Entry returns an entry by id, or nil
func (b *Book) Entry(id string) *Entry {
	for _, e := range b.Entries {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// Track applies an event to every unclaimed entry. Completed entries keep
// tracking until claimed, so gather snapshots can still regress.
func (b *Book) Track(ev gameevents.Event, ledger objectives.LedgerReader) objectives.ApplyResult {
	var result objectives.ApplyResult
	for _, e := range b.Entries {
		if e.Claimed {
			continue
		}
		result.Merge(objectives.Apply(ev, e.Objectives, ledger))
	}
	return result
}

// Sync seeds absolute objectives of unclaimed entries from current state
func (b *Book) Sync(state objectives.StateReader) []objectives.Update {
	var updates []objectives.Update
	for _, e := range b.Entries {
		if e.Claimed {
			continue
		}
		updates = append(updates, objectives.Sync(e.Objectives, state)...)
	}
	return updates
}

// Claim pays out a completed entry exactly once. The reward is granted
// before the claimed flag is set; if the grant fails nothing changes.
func (b *Book) Claim(id string, grantee Grantee) (economy.Reward, error) {
	e := b.Entry(id)
	if e == nil {
		return economy.Reward{}, errors.NotFoundf("quest %s not found", id)
	}
	if e.Claimed {
		return economy.Reward{}, errors.AlreadyClaimedf("quest %s was already claimed", id).WithMeta("quest_id", id)
	}
	if !e.Completed() {
		return economy.Reward{}, errors.NotCompletedf("quest %s is not completed", id).WithMeta("quest_id", id)
	}

	if err := grantee.GrantReward(e.Reward); err != nil {
		return economy.Reward{}, errors.Wrapf(err, "failed to grant reward for quest %s", id)
	}
	e.Claimed = true
	return e.Reward, nil
}

// ResetDailies resets every daily entry when now falls on a different
// calendar day than the last reset. Days are compared as date strings.
func (b *Book) ResetDailies(now time.Time) bool {
	today := clock.Date(now)
	if b.LastDailyReset == today {
		return false
	}
	for _, e := range b.Entries {
		if e.Kind == KindDaily {
			e.Reset()
		}
	}
	b.LastDailyReset = today
	return true
}

// Dailies returns the daily entries
func (b *Book) Dailies() []*Entry {
	return b.filter(func(e *Entry) bool { return e.Kind == KindDaily })
}

// Claimable returns completed, unclaimed entries
func (b *Book) Claimable() []*Entry {
	return b.filter(func(e *Entry) bool { return e.State() == StateCompleted })
}

// Active returns entries still in progress
func (b *Book) Active() []*Entry {
	return b.filter(func(e *Entry) bool { return e.State() == StateInProgress })
}

func (b *Book) filter(keep func(*Entry) bool) []*Entry {
	var out []*Entry
	for _, e := range b.Entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// Clone returns a deep copy
func (b *Book) Clone() *Book {
	out := &Book{LastDailyReset: b.LastDailyReset, Entries: make([]*Entry, len(b.Entries))}
	for i, e := range b.Entries {
		out.Entries[i] = e.Clone()
	}
	return out
}
