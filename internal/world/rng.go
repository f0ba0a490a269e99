package world

// zeroSeed replaces a zero seed, which is a fixed point of xorshift.
const zeroSeed = 0x9E3779B97F4A7C15

// RNG is a xorshift64 generator. It is a plain value: generators take a
// *RNG or a seed and never touch shared random state.
type RNG struct {
	state uint64
}

// NewRNG seeds a generator.
func NewRNG(seed uint64) RNG {
	if seed == 0 {
		seed = zeroSeed
	}
	return RNG{state: seed}
}

// xorshift64 performs one generator step.
func xorshift64(x uint64) uint64 {
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	return x
}

// Next advances the generator and returns the new state.
func (r *RNG) Next() uint64 {
	r.state = xorshift64(r.state)
	return r.state
}

// Intn returns a value in [0, n). It returns 0 when n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		r.Next()
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Percent returns a value in [0, 100).
func (r *RNG) Percent() int {
	return r.Intn(100)
}
