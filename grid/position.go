package grid

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
)

// Position maps a lattice coordinate onto a point with unit spacing.
// Complexity: O(1).
func Position(c Coord) model3d.Coord3D {
	return model3d.XYZ(float64(c.X), float64(c.Y), float64(c.Z))
}

// Nearest rounds a point to the closest lattice coordinate
// (half-way values round away from zero).
// Complexity: O(1).
func Nearest(p model3d.Coord3D) Coord {
	return Coord{
		X: int(math.Round(p.X)),
		Y: int(math.Round(p.Y)),
		Z: int(math.Round(p.Z)),
	}
}
