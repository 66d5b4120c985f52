// File: internal/zobrist/zobrist.go
package zobrist

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

const (
	Sides     = 2  // Black / White
	Positions = 64 // 8x8
)

var (
	Keys     [Sides][Positions]uint64
	SideKeys [Sides]uint64
)

func init() {
	for s := 0; s < Sides; s++ {
		for i := 0; i < Positions; i++ {
			Keys[s][i] = nonZero()
		}
		SideKeys[s] = nonZero()
	}
}

// a zero key would vanish under XOR
func nonZero() uint64 {
	for {
		if v := binary.LittleEndian.Uint64(frand.Bytes(8)); v != 0 {
			return v
		}
	}
}

// Toggle xors the key of (side, pos) into hash. side is 1 or 2.
func Toggle(hash uint64, side int8, pos int) uint64 {
	return hash ^ Keys[side-1][pos]
}

// Self returns the key mixed into a hash to tell the two evaluation perspectives apart.
func Self(side int8) uint64 { return SideKeys[side-1] }

// Hash computes the hash of a flat row-major grid. Cells holding 1 or 2 are
// hashed, everything else is ignored.
func Hash(cells *[Positions]int8) uint64 {
	var h uint64
	for pos, v := range cells {
		if v == 1 || v == 2 {
			h ^= Keys[v-1][pos]
		}
	}
	return h
}
