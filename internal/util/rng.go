package util

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/rand"
)

var seedSource io.Reader = crand.Reader

// New returns a generator for seed. A zero seed draws a fresh one from
// crypto/rand so unseeded sessions differ between runs; a failed draw
// is returned as an error.
func New(seed int64) (*rand.Rand, error) {
	if seed == 0 {
		s, err := NewSeed()
		if err != nil {
			return nil, err
		}
		seed = s
	}
	src := rand.NewSource(seed)
	return rand.New(src), nil
}

func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := io.ReadFull(seedSource, b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	s := int64(binary.LittleEndian.Uint64(b[:]))
	if s == 0 {
		s = 1
	}
	return s, nil
}
