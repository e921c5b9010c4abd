package kzg

import "errors"

// Error kinds returned by the operations in this package. Callers that need
// to branch on the kind should compare with errors.Is against these
// sentinels; wrapped context is added with github.com/pkg/errors at each
// call site, so the sentinel survives unwrapping.
var (
	// ErrInvalidLength is returned when an input or output buffer's
	// dimension does not match the preset.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidIndex is returned when a cell index is out of range, or a
	// derived roots-of-unity index is out of range.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrDuplicateIndex is returned when two provided cells target the
	// same output slot.
	ErrDuplicateIndex = errors.New("duplicate cell index")

	// ErrInsufficientCells is returned when recovery is attempted with
	// fewer than CellsPerExtBlob/2 cells.
	ErrInsufficientCells = errors.New("insufficient cells for recovery")

	// ErrInvalidPoint is returned when a commitment or proof fails
	// subgroup validation.
	ErrInvalidPoint = errors.New("invalid group element")

	// ErrArithmeticFailure signals a division by zero or similarly
	// impossible computation; well-formed inputs never trigger it.
	ErrArithmeticFailure = errors.New("arithmetic failure")

	// ErrEmptyInput is returned when an operation that needs at least one
	// element (FFT, vanishing polynomial) is given zero-length input.
	ErrEmptyInput = errors.New("empty input")
)
