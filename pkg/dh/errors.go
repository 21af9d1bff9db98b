package dh

import "errors"

// Errors surfaced by the arithmetic stack and the exchange layer. All of
// them are deterministic, recoverable failures: retrying never helps, the
// caller supplied an input the operation is not defined for.
var (
	// ErrInvalidOperand is returned when inverting the zero element of Fq.
	ErrInvalidOperand = errors.New("operand has no inverse in the field")

	// ErrNotAUnit is returned when inverting a ring element whose real part
	// is zero. Such elements are zero divisors of Fq[ε].
	ErrNotAUnit = errors.New("ring element is not a unit")

	// ErrInvalidPoint is returned for degenerate projective triples, such as
	// [0:0:0] or any triple without a unit coordinate.
	ErrInvalidPoint = errors.New("invalid projective point")

	// ErrCurveMismatch is returned when an operation mixes points that
	// belong to differently parameterized curves.
	ErrCurveMismatch = errors.New("points belong to different curves")

	// ErrInvalidScalar is returned for negative scalar multipliers.
	ErrInvalidScalar = errors.New("scalar out of range")

	// ErrInvalidPrivateKey is returned when a private key is zero (or
	// reduces to zero mod the generator order).
	ErrInvalidPrivateKey = errors.New("private key out of range")
)
