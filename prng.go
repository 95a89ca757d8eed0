package main

// The candidate generator is the classic MSVC-style linear congruential
// generator. It is fast, statistically poor, and entirely sufficient for
// spraying candidate passwords across the search space.

const (
	qrandMul = 214013
	qrandInc = 2531011
)

// qrand advances seed in place and returns bits 16-30 of the new state,
// a value in [0, 1<<15). Pure function of the caller-owned seed, so
// worker streams never interfere.
func qrand(seed *uint32) uint32 {
	*seed = qrandMul**seed + qrandInc
	return (*seed >> 16) & 0x7FFF
}

// seeder is the non-reentrant distribution generator used once at startup
// to hand each worker its own stream.
type seeder struct {
	state uint32
}

func newSeeder(state uint32) *seeder {
	return &seeder{state: state}
}

func (s *seeder) next() uint32 {
	return qrand(&s.state)
}

// seeds derives n worker seeds. Each emission first skips the generator
// forward by a fresh nonzero random amount, so neighbouring workers don't
// start from adjacent generator states.
func (s *seeder) seeds(n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		var skip uint32
		for skip == 0 {
			skip = s.next()
		}
		for j := uint32(0); j < skip; j++ {
			s.next()
		}
		out[i] = s.next()
	}
	return out
}
