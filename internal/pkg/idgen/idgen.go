// Package idgen names play sessions and crafted item instances
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/mock.go -package=idgenmock github.com/KirkDiggler/rpg-idle/internal/pkg/idgen Generator

// Generator returns a new unique id on every call
type Generator interface {
	Generate() string
}

func withPrefix(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}

// SequentialGenerator counts from 1. Safe for concurrent use; meant for
// tests and local play where readable ids help.
type SequentialGenerator struct {
	prefix string
	next   atomic.Uint64
}

func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

func (g *SequentialGenerator) Generate() string {
	return withPrefix(g.prefix, strconv.FormatUint(g.next.Add(1), 10))
}

// UUIDGenerator issues random v4 UUIDs, the server default
type UUIDGenerator struct {
	prefix string
}

func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

func (g *UUIDGenerator) Generate() string {
	return withPrefix(g.prefix, uuid.NewString())
}
