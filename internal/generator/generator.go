// Package generator picks exercise targets.
package generator

import (
	"math/rand"
	"time"
)

// Generator selects random exercise targets.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Pick selects one candidate uniformly. It reports false for an empty list.
func (g *Generator) Pick(candidates []string) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}
	return candidates[g.rnd.Intn(len(candidates))], true
}
