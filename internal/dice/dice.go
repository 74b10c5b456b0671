// Package dice provides the seedable random source used for dungeon
// generation, enemy placement and attack rolls.
package dice

import (
	"math/rand"
	"strconv"
)

// Roller is a deterministic pseudo-random source.
// Two Rollers seeded with the same value produce identical sequences.
type Roller struct {
	rng *rand.Rand
}

// NewRoller creates a Roller seeded with the given value.
func NewRoller(seed int64) *Roller {
	return &Roller{rng: rand.New(rand.NewSource(seed))}
}

// Seed resets the roller to the start of the sequence for seed.
func (r *Roller) Seed(seed int64) {
	r.rng.Seed(seed)
}

// Uint64 returns the next raw 64-bit value from the sequence.
func (r *Roller) Uint64() uint64 {
	return r.rng.Uint64()
}

// Roll returns a uniform integer in [1, n]. It returns 0 when n <= 0.
func (r *Roller) Roll(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.Intn(n) + 1
}

// RollRange returns a uniform integer in [lo, hi].
func (r *Roller) RollRange(lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo + r.rng.Intn(hi-lo+1)
}

// Intn returns a uniform integer in [0, n). It satisfies the small
// interface used by weighted registries.
func (r *Roller) Intn(n int) int {
	return r.rng.Intn(n)
}

// Die is a single die with a fixed number of sides.
type Die struct {
	Sides int
}

// D20 is the die used for attack rolls.
var D20 = Die{Sides: 20}

// Roll rolls the die once.
func (d Die) Roll(r *Roller) int {
	return r.Roll(d.Sides)
}

// String returns the die name, e.g. "D20".
func (d Die) String() string {
	return "D" + strconv.Itoa(d.Sides)
}
