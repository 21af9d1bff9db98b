package dh

import "math/big"

// Point represents an element of a cyclic group written additively.
// Implementations are immutable: every operation returns a fresh point.
type Point interface {
	// Bytes returns a canonical serialization of the point. Equivalent
	// points serialize identically.
	Bytes() []byte

	// Add returns the group sum of this point and p.
	Add(p Point) (Point, error)

	// ScalarMult returns the point added to itself k times. k must be
	// non-negative.
	ScalarMult(k *big.Int) (Point, error)

	// Equal reports whether two points represent the same group element.
	Equal(p Point) bool
}

// Group abstracts the cyclic group a key exchange runs over. The twisted
// Hessian curve group over Fq[ε] is the primary implementation; the curve
// wrappers in internal/crypto/curves provide secp256k1 and Ed25519 behind
// the same interface.
type Group interface {
	// Name identifies the group.
	Name() string

	// Generator returns the distinguished base point.
	Generator() Point

	// Order returns the order of the generator's subgroup.
	Order() *big.Int
}
