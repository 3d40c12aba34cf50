package grid

// Neighbor offset tables. Each call returns a fresh slice so callers may
// keep or modify the result without touching the shared tables.

var (
	axialOffsets = []Coord{
		{X: 1}, {X: -1},
		{Y: 1}, {Y: -1},
		{Z: 1}, {Z: -1},
	}

	// Order: the four (±1,±1) pairs at Z+1, then the same four at Z-1.
	bodyDiagonalOffsets = []Coord{
		{X: 1, Y: 1, Z: 1}, {X: -1, Y: -1, Z: 1},
		{X: 1, Y: -1, Z: 1}, {X: -1, Y: 1, Z: 1},
		{X: 1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: -1},
		{X: 1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1},
	}
)

// Axial returns the nearest-neighbor offsets along the first dim axes in
// the order +X, -X, +Y, -Y, +Z, -Z. dim is clamped to [1,3].
// Complexity: O(dim).
func Axial(dim int) []Coord {
	if dim < 1 {
		dim = 1
	}
	if dim > 3 {
		dim = 3
	}
	out := make([]Coord, 2*dim)
	copy(out, axialOffsets[:2*dim])

	return out
}

// BodyDiagonals returns the eight (±1,±1,±1) offsets joining the two
// interpenetrating cubic sublattices of a BCC crystal.
func BodyDiagonals() []Coord {
	out := make([]Coord, len(bodyDiagonalOffsets))
	copy(out, bodyDiagonalOffsets)

	return out
}
