// Package builder provides validation helpers to enforce parameter
// contracts in the shape presets.
//
// Each function returns an error wrapping ErrInvalidDimension with the
// preset and parameter name when its precondition is violated.
package builder

// validateLength ensures that length 'got' of parameter 'param' is ≥ MinLength.
// Returns "<Method>: <param>=<got>: builder: invalid dimension" otherwise.
//
// Parameters:
//   - method: preset name constant, e.g. MethodSquare.
//   - param:  parameter name, e.g. "Ly".
//   - got:    resolved value.
//
// Complexity: O(1) time and space.
func validateLength(method, param string, got int) error {
	if got < MinLength {
		return dimensionErrorf(method, param, got)
	}

	return nil
}

// validateLengths checks (name, value) pairs in order and reports the first
// violation, so error messages are deterministic.
// Complexity: O(len(pairs)).
func validateLengths(method string, pairs ...lengthParam) error {
	for _, p := range pairs {
		if err := validateLength(method, p.name, p.value); err != nil {
			return err
		}
	}

	return nil
}

// lengthParam pairs a parameter name with its resolved value.
type lengthParam struct {
	name  string
	value int
}
