package reply

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source picks reply indices. Implementations must be safe for concurrent use.
type Source interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSource returns a PCG-backed Source. A zero seed seeds from the clock.
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &lockedSource{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}
