// Package idgen issues short, human-shareable codes such as CAFE123456042.
//
// A code is the prefix, the last six digits of the Unix time in milliseconds
// and a zero-padded three-digit random suffix. Codes issued within the same
// millisecond may collide; nothing checks or retries that.
package idgen

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

const (
	PrefixCafe     = "CAFE"
	PrefixBubble   = "BUBBLE"
	PrefixOrder    = "ORD"
	PrefixFeedback = "FB"
)

type Generator struct {
	mu  sync.Mutex
	now func() time.Time
	rnd *rand.Rand
}

func New() *Generator {
	return NewWith(time.Now, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWith lets tests pin the clock and the random source.
func NewWith(now func() time.Time, rnd *rand.Rand) *Generator {
	return &Generator{now: now, rnd: rnd}
}

func (g *Generator) Next(prefix string) string {
	g.mu.Lock()
	suffix := g.rnd.Intn(1000)
	g.mu.Unlock()

	ms := g.now().UnixMilli() % 1_000_000
	return fmt.Sprintf("%s%06d%03d", prefix, ms, suffix)
}
