// Package builder defines shared constants used by the shape presets,
// ensuring consistent defaults and validation across all of them.
package builder

//-----------------------------------------------------------------------------
// Preset Method Name Constants
//   used to prefix errors with the preset name for context.
//-----------------------------------------------------------------------------

const (
	// MethodChain is the canonical name for the Chain preset.
	MethodChain = "Chain"
	// MethodSquare is the canonical name for the Square preset.
	MethodSquare = "Square"
	// MethodRhombus is the canonical name for the Rhombus preset.
	MethodRhombus = "Rhombus"
	// MethodCubic is the canonical name for the Cubic preset.
	MethodCubic = "Cubic"
	// MethodBCC is the canonical name for the BCC preset.
	MethodBCC = "BCC"
	// MethodNew is the canonical name for the by-name entry point.
	MethodNew = "New"
)

//-----------------------------------------------------------------------------
// Parameter names, as they appear in error messages.
//-----------------------------------------------------------------------------

const (
	paramL  = "L"
	paramLx = "Lx"
	paramLy = "Ly"
	paramLz = "Lz"
)

//-----------------------------------------------------------------------------
// Defaults
//-----------------------------------------------------------------------------

const (
	// DefaultHopping is the primary hopping amplitude J (Jx) when unset.
	DefaultHopping = 1.0
	// DefaultOnSite is the on-site energy ω when unset.
	DefaultOnSite = 1.0
	// MinLength is the smallest accepted lattice length.
	MinLength = 1
)
