package game

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Dice is a seedable random source. Rolls are serialized by a mutex so a
// single source can be shared by every agent goroutine, which keeps seeded
// runs reproducible in tests.
type Dice struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewDice creates a dice pool from the given seed.
func NewDice(seed uint64) *Dice {
	return &Dice{rng: rand.New(rand.NewPCG(seed, seed<<32|0x9e37))}
}

// Range returns a uniform roll in [min, max].
func (d *Dice) Range(min, max int) int {
	if max <= min {
		return min
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return min + d.rng.IntN(max-min+1)
}

// IntN returns a uniform roll in [0, n).
func (d *Dice) IntN(n int) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rng.IntN(n)
}

// Delta returns a uniform movement delta in {-1, 0, 1}.
func (d *Dice) Delta() int {
	return d.Range(-1, 1)
}

// Duration returns a uniform duration in [min, max].
func (d *Dice) Duration(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return min + time.Duration(d.rng.Int64N(int64(max-min)+1))
}
