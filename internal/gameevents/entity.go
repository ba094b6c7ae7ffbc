package gameevents

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Entity types used as event sources
const (
	EntityTypePlayer = "player"
)

// PlayerEntity identifies the player an event belongs to
type PlayerEntity struct {
	ID string
}

// GetID returns the player id
func (p *PlayerEntity) GetID() string {
	return p.ID
}

// GetType returns the entity type
func (p *PlayerEntity) GetType() string {
	return EntityTypePlayer
}

var _ core.Entity = (*PlayerEntity)(nil)
