// Package randutil builds the random number generators used for dice rolls.
//
// Every game owns exactly one *rand.Rand. Seeding goes through New so that a
// seed printed in a log or stored in a history file replays the same game.
package randutil

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	rand "math/rand/v2"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// rand/v2's PCG needs two 64-bit words; both are derived from the seed.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewSeed draws a fresh seed from crypto/rand for runs without a fixed seed.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Resolve returns the seed to use and its generator. A nil seed draws a new
// one.
func Resolve(seed *int64) (int64, *rand.Rand, error) {
	if seed != nil {
		return *seed, New(*seed), nil
	}
	s, err := NewSeed()
	if err != nil {
		return 0, nil, err
	}
	return s, New(s), nil
}

// Derive returns the seed of the n-th independent game of a run seeded with
// base. Neighbouring games get well separated streams.
func Derive(base int64, n int) int64 {
	return int64(mix(uint64(base) + uint64(n)*goldenRatio64))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
