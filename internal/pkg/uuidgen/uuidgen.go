// Package uuidgen makes identifier generation an injected capability so that
// tests can supply a fixed sequence of IDs.
package uuidgen

import "github.com/google/uuid"

type Generator interface {
	NewID() uuid.UUID
}

type RandomGenerator struct{}

func NewRandomGenerator() Generator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewID() uuid.UUID {
	return uuid.New()
}

// SequenceGenerator hands out a predetermined list of IDs in order and
// panics when exhausted. Test double.
type SequenceGenerator struct {
	ids  []uuid.UUID
	next int
}

func NewSequenceGenerator(ids ...uuid.UUID) *SequenceGenerator {
	return &SequenceGenerator{ids: ids}
}

func (g *SequenceGenerator) NewID() uuid.UUID {
	if g.next >= len(g.ids) {
		panic("uuidgen: sequence exhausted")
	}
	id := g.ids[g.next]
	g.next++
	return id
}
