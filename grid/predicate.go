package grid

// Predicate reports whether a coordinate is a lattice site.
// Predicates must be pure: the builder may evaluate them in any order.
type Predicate func(c Coord) bool

// All accepts every coordinate (a full rectangular box).
func All(Coord) bool { return true }

// SameParity accepts coordinates whose three components share parity,
// i.e. the even and odd cubic sublattices that make up a BCC crystal.
// Negative components are handled with a non-negative modulo.
func SameParity(c Coord) bool {
	px := mod2(c.X)
	return px == mod2(c.Y) && px == mod2(c.Z)
}

// Rhombus accepts coordinates with |dx-dy| ≤ l and |dx+dy| ≤ l, where
// (dx, dy) is the offset from center. Z is ignored.
func Rhombus(center Coord, l int) Predicate {
	return func(c Coord) bool {
		dx, dy := c.X-center.X, c.Y-center.Y
		return abs(dx-dy) <= l && abs(dx+dy) <= l
	}
}

// And combines predicates with logical conjunction. Nil entries are skipped;
// an empty conjunction accepts everything.
func And(ps ...Predicate) Predicate {
	kept := make([]Predicate, 0, len(ps))
	for _, p := range ps {
		if p != nil {
			kept = append(kept, p)
		}
	}
	if len(kept) == 1 {
		return kept[0]
	}

	return func(c Coord) bool {
		for _, p := range kept {
			if !p(c) {
				return false
			}
		}
		return true
	}
}

func mod2(v int) int {
	return ((v % 2) + 2) % 2
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
