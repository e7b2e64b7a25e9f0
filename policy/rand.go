package policy

import (
	"math/rand"
	"sync"
)

// Rand is the source of randomness consumed by a Policy.
// *math/rand.Rand satisfies it.
type Rand interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

// LockedRand is a Rand that is safe to use from multiple goroutines.
type LockedRand struct {
	mx  sync.Mutex
	rng *rand.Rand
}

// NewLockedRand returns a LockedRand seeded with the given value.
func NewLockedRand(seed int64) *LockedRand {
	return &LockedRand{
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (lr *LockedRand) Float64() float64 {
	lr.mx.Lock()
	result := lr.rng.Float64()
	lr.mx.Unlock()
	return result
}

func (lr *LockedRand) Intn(n int) int {
	lr.mx.Lock()
	result := lr.rng.Intn(n)
	lr.mx.Unlock()
	return result
}

// Shared by every policy constructed without an explicit source.
var defaultRand = NewLockedRand(rand.Int63())

func orDefault(rng Rand) Rand {
	if rng == nil {
		return defaultRand
	}

	return rng
}
