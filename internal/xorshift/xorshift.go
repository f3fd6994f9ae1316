// Package xorshift implements the xorshift128 recurrence used as the
// software fallback of the entropy source.
//
// The sequence is fully determined by the four state words. It is suitable
// for identifiers and seeds, not for key material.
package xorshift

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// DefaultSeed is the fixed initial state used when no seed is supplied.
var DefaultSeed = State{0x193a6754, 0xa8a7d469, 0x97830e05, 0x113ba7bb}

// State holds the four 32-bit words s0..s3 of the generator.
type State [4]uint32

// Next advances the state by one step and returns (s0<<32)|s1 of the
// updated state.
func (s *State) Next() uint64 {
	t := s[3]
	x := s[0]

	s[3] = s[2]
	s[2] = s[1]
	s[1] = x

	t ^= t << 11
	t ^= t >> 8
	s[0] = t ^ x ^ (x >> 19)

	return uint64(s[0])<<32 | uint64(s[1])
}

// IsZero reports whether every word is zero. The all-zero state is a
// fixed point of the recurrence and only ever produces zeros.
func (s State) IsZero() bool {
	return s[0]|s[1]|s[2]|s[3] == 0
}

// FromSeed derives a state from arbitrary seed bytes.
//
// The seed is hashed with Blake2b-256 and the first 16 bytes of the digest
// are read as four little-endian words. A zero result falls back to
// DefaultSeed.
func FromSeed(seed []byte) State {
	sum := blake2b.Sum256(seed)

	var s State
	for i := range s {
		s[i] = binary.LittleEndian.Uint32(sum[i*4:])
	}

	if s.IsZero() {
		return DefaultSeed
	}
	return s
}
