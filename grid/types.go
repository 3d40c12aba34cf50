// SPDX-License-Identifier: MIT

// Package grid defines core coordinate and box types for the lattice
// packages of github.com/katalvlaran/tightbind.
package grid

import (
	"fmt"
)

// Coord is a point of the integer lattice space.
// Every shape uses all three components; unused axes stay at zero.
type Coord struct {
	X, Y, Z int
}

// C is shorthand for Coord{X: x, Y: y, Z: z}.
func C(x, y, z int) Coord { return Coord{X: x, Y: y, Z: z} }

// Add returns the component-wise sum c + d.
// Complexity: O(1).
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y, Z: c.Z + d.Z}
}

// Sub returns the component-wise difference c - d.
// Complexity: O(1).
func (c Coord) Sub(d Coord) Coord {
	return Coord{X: c.X - d.X, Y: c.Y - d.Y, Z: c.Z - d.Z}
}

// Neg returns -c.
func (c Coord) Neg() Coord {
	return Coord{X: -c.X, Y: -c.Y, Z: -c.Z}
}

// Equal reports whether c and d name the same point.
func (c Coord) Equal(d Coord) bool { return c == d }

// String renders the coordinate as "(x,y,z)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Box is the candidate superset scanned by the lattice builder:
// all coordinates in [0,Lx)×[0,Ly)×[0,Lz).
// A box with any zero extent is empty but valid.
type Box struct {
	Lx, Ly, Lz int
}

// NewBox validates the extents and returns the Box.
// Returns ErrNegativeExtent if any extent is < 0.
// Complexity: O(1).
func NewBox(lx, ly, lz int) (Box, error) {
	if lx < 0 || ly < 0 || lz < 0 {
		return Box{}, fmt.Errorf("NewBox(%d,%d,%d): %w", lx, ly, lz, ErrNegativeExtent)
	}

	return Box{Lx: lx, Ly: ly, Lz: lz}, nil
}

// Volume returns the number of candidate coordinates in the box.
// Complexity: O(1).
func (b Box) Volume() int {
	if b.Lx <= 0 || b.Ly <= 0 || b.Lz <= 0 {
		return 0
	}

	return b.Lx * b.Ly * b.Lz
}

// Contains reports whether c lies inside the box (before any origin shift).
// Complexity: O(1).
func (b Box) Contains(c Coord) bool {
	return c.X >= 0 && c.X < b.Lx &&
		c.Y >= 0 && c.Y < b.Ly &&
		c.Z >= 0 && c.Z < b.Lz
}

// Dimension counts the extents larger than one, clamped to [1,3].
// It is metadata only; the builder never branches on it.
func (b Box) Dimension() int {
	d := 0
	for _, l := range [3]int{b.Lx, b.Ly, b.Lz} {
		if l > 1 {
			d++
		}
	}
	if d == 0 {
		return 1
	}

	return d
}

// Each calls fn for every coordinate of the box in ascending (X, Y, Z)
// order and stops early when fn returns false.
// Complexity: O(Lx·Ly·Lz).
func (b Box) Each(fn func(c Coord) bool) {
	var x, y, z int
	for x = 0; x < b.Lx; x++ {
		for y = 0; y < b.Ly; y++ {
			for z = 0; z < b.Lz; z++ {
				if !fn(Coord{X: x, Y: y, Z: z}) {
					return
				}
			}
		}
	}
}

// String renders the box as "Lx×Ly×Lz".
func (b Box) String() string {
	return fmt.Sprintf("%d×%d×%d", b.Lx, b.Ly, b.Lz)
}
