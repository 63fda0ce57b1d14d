// Package shuffle provides the deterministic pseudo-random source
// used by the lab driver and tests: a Blum Blum Shub generator and a
// Knuth shuffle built on it. The same seed always reproduces the same
// permutation, which keeps every scenario replayable.
package shuffle

// blumBlumShubM is a prime below 2^32 chosen so squaring stays within
// 64 bits.
const blumBlumShubM = 4294967291

// BlumBlumShub advances the generator state by sixteen squarings
// modulo a fixed prime.
func BlumBlumShub(n uint32) uint32 {
	res := uint64(n)
	for i := 0; i < 16; i++ {
		res = res * res % blumBlumShubM
	}
	return uint32(res)
}

// Source is a stateful wrapper around BlumBlumShub.
type Source struct {
	state uint32
}

// NewSource creates a source with the given seed.
func NewSource(seed uint32) *Source {
	return &Source{state: seed}
}

// Next returns the next value in the sequence.
func (s *Source) Next() uint32 {
	s.state = BlumBlumShub(s.state)
	return s.state
}

// Shuffle permutes vals in place with a Knuth shuffle driven by the
// source.
func (s *Source) Shuffle(vals []int64) {
	if len(vals) < 2 {
		return
	}
	for i := 0; i < len(vals)-1; i++ {
		swap := int(s.Next())%(len(vals)-i-1) + i
		if swap == i {
			continue
		}
		vals[i], vals[swap] = vals[swap], vals[i]
	}
}

// Permutation returns a shuffled permutation of [0..n).
func (s *Source) Permutation(n int) []int64 {
	vals := make([]int64, n)
	for i := range vals {
		vals[i] = int64(i)
	}
	s.Shuffle(vals)
	return vals
}
