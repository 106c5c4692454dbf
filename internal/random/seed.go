// Package random provides seeding helpers for the simulations.
//
// Seeds come from crypto/rand so that concurrent sessions never share a
// stream, while the generators themselves stay cheap and reproducible when a
// test supplies a fixed seed.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return binary.LittleEndian.Uint64(b[:]), nil
}

// New returns a PCG generator for seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewSeeded returns a generator seeded from crypto/rand, falling back to a
// fixed seed if the system source fails.
func NewSeeded() *rand.Rand {
	seed, err := NewSeed()
	if err != nil {
		seed = 0x5eed
	}
	return New(seed)
}
