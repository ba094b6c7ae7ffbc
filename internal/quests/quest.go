// Package quests wraps objective tracking with completion, one-time reward
// claims and the daily reset.
package quests

import (
	"github.com/KirkDiggler/rpg-idle/internal/economy"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/objectives"
)

// Kind separates one-off quests, daily quests and achievements
type Kind string

const (
	KindQuest       Kind = "quest"
	KindDaily       Kind = "daily"
	KindAchievement Kind = "achievement"
)

// State is derived: InProgress -> Completed -> Claimed
type State string

const (
	StateInProgress State = "in_progress"
	StateCompleted  State = "completed"
	StateClaimed    State = "claimed"
)

// Definition is quest content
type Definition struct {
	ID          string                 `yaml:"id"`
	Name        string                 `yaml:"name"`
	Description string                 `yaml:"description"`
	Kind        Kind                   `yaml:"kind"`
	Objectives  []objectives.Objective `yaml:"objectives"`
	Reward      economy.Reward         `yaml:"reward"`
}

// Validate checks a definition. Objectives of unknown kinds pass; they
// simply never complete.
func (d *Definition) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("id", d.ID, vb)
	errors.ValidateEnum("kind", string(d.Kind), []string{
		string(KindQuest), string(KindDaily), string(KindAchievement),
	}, vb)
	if len(d.Objectives) == 0 {
		vb.Field("objectives", "at least one objective is required")
	}
	seen := make(map[string]bool, len(d.Objectives))
	for i := range d.Objectives {
		obj := &d.Objectives[i]
		if err := obj.Validate(); err != nil {
			vb.Fieldf("objectives", "%s: %s", obj.ID, errors.GetMessage(err))
		}
		if seen[obj.ID] {
			vb.Fieldf("objectives", "duplicate objective id %q", obj.ID)
		}
		seen[obj.ID] = true
	}
	errors.ValidateNonNegative("reward.gold", d.Reward.Gold, vb)
	errors.ValidateNonNegative("reward.xp", d.Reward.XP, vb)
	for id, qty := range d.Reward.Materials {
		errors.ValidateNonNegative("reward.materials."+id, qty, vb)
	}

	return vb.Build()
}

// NewEntry creates fresh tracking state for a definition
func (d *Definition) NewEntry() *Entry {
	e := &Entry{
		ID:         d.ID,
		Kind:       d.Kind,
		Reward:     d.Reward,
		Objectives: make([]*objectives.Objective, 0, len(d.Objectives)),
	}
	for i := range d.Objectives {
		obj := d.Objectives[i].Clone()
		obj.Reset()
		e.Objectives = append(e.Objectives, obj)
	}
	return e
}

// Entry is the persisted progress of one quest or achievement
type Entry struct {
	ID         string                  `json:"id"`
	Kind       Kind                    `json:"kind"`
	Objectives []*objectives.Objective `json:"objectives"`
	Claimed    bool                    `json:"claimed"`
	Reward     economy.Reward          `json:"reward"`
}

// Completed is true when every objective is complete. It is never stored.
func (e *Entry) Completed() bool {
	if len(e.Objectives) == 0 {
		return false
	}
	for _, obj := range e.Objectives {
		if !obj.Complete() {
			return false
		}
	}
	return true
}

// State derives the claim state
func (e *Entry) State() State {
	switch {
	case e.Claimed:
		return StateClaimed
	case e.Completed():
		return StateCompleted
	default:
		return StateInProgress
	}
}

// Reset clears progress and the claimed flag
func (e *Entry) Reset() {
	for _, obj := range e.Objectives {
		obj.Reset()
	}
	e.Claimed = false
}

// Clone returns a deep copy
func (e *Entry) Clone() *Entry {
	out := *e
	out.Objectives = make([]*objectives.Objective, len(e.Objectives))
	for i, obj := range e.Objectives {
		out.Objectives[i] = obj.Clone()
	}
	return &out
}
