// Package pointer defines the D8 flow-direction coding shared by the routing
// tools: the 8 neighbour offsets in clockwise order starting from the
// north-east diagonal, and the two incompatible power-of-two bit conventions
// (Whitebox and ESRI) used to store directions in a raster.
package pointer

import (
	"errors"
	"fmt"
	"math"
)

// Neighbour offsets, clockwise from north-east. Dx is the column offset, Dy
// the row offset (row 0 is the northernmost row).
var (
	Dx = [8]int{1, 1, 1, 0, -1, -1, -1, 0}
	Dy = [8]int{-1, 0, 1, 1, 1, 0, -1, -1}
)

// None marks a cell with no downslope neighbour (pit or outlet).
const None int8 = -1

// Back returns the offset index of the reverse direction (from the neighbour
// at offset k back to the origin cell).
func Back(k int8) int8 { return (k + 4) % 8 }

// Diagonal reports whether offset k is one of the four diagonals.
func Diagonal(k int8) bool { return k%2 == 0 }

// Convention identifies a D8 pointer bit-encoding.
type Convention int

const (
	// Whitebox codes run 1,2,4..128 clockwise starting north-east.
	Whitebox Convention = iota
	// Esri codes run 1,2,4..128 clockwise starting due-east.
	Esri
)

func (p Convention) String() string {
	if p == Esri {
		return "esri"
	}
	return "whitebox"
}

// ErrInvalidPointer flags a pointer-raster value outside the expected set of
// 8 powers of two (or zero).
var ErrInvalidPointer = errors.New("invalid D8 pointer value")

// dense decode tables indexed by raw code byte; -2 marks invalid entries
var wbLut, esriLut [129]int8

func init() {
	for i := range wbLut {
		wbLut[i] = -2
		esriLut[i] = -2
	}
	wbLut[0], esriLut[0] = None, None
	for k := int8(0); k < 8; k++ {
		wbLut[1<<k] = k
		esriLut[1<<((k+7)%8)] = k
	}
}

// Encode converts an offset index (or None) to the raster code of the convention.
func (p Convention) Encode(k int8) float64 {
	if k == None {
		return 0.
	}
	if k < 0 || k > 7 {
		panic("pointer.Encode: offset index out of range")
	}
	if p == Esri {
		return float64(int(1) << ((k + 7) % 8))
	}
	return float64(int(1) << k)
}

// Decode converts a raster code back to an offset index. Codes must be zero
// or one of the 8 powers of two; anything else returns ErrInvalidPointer
// rather than being silently treated as "no direction".
func (p Convention) Decode(code float64) (int8, error) {
	c := int(code)
	if float64(c) != code || c < 0 || c > 128 || math.Signbit(code) {
		return None, fmt.Errorf("%w: %g (%s convention)", ErrInvalidPointer, code, p)
	}
	k := wbLut[c]
	if p == Esri {
		k = esriLut[c]
	}
	if k == -2 {
		return None, fmt.Errorf("%w: %g (%s convention)", ErrInvalidPointer, code, p)
	}
	return k, nil
}
