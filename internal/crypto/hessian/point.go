// Package hessian implements the group law on twisted Hessian curves
// aX³ + Y³ + Z³ = dXYZ whose coordinates live in the local ring Fq[ε].
// Points are projective triples; because the ring has zero divisors, two
// triples represent the same point only when one is a *unit* multiple of the
// other, so the equivalence predicate here is stricter than the usual
// cross-multiplication over a field.
package hessian

import (
	"encoding/binary"
	"fmt"

	"github.com/smallyu/go-hessian-dh/internal/crypto/field"
	"github.com/smallyu/go-hessian-dh/internal/crypto/ring"
	"github.com/smallyu/go-hessian-dh/pkg/dh"
)

// Point is a projective point [X:Y:Z] with coordinates in Fq[ε].
type Point struct {
	x ring.Element
	y ring.Element
	z ring.Element
}

// NewPoint creates the projective point [x:y:z].
func NewPoint(x, y, z ring.Element) Point {
	if x.Modulus() != y.Modulus() || y.Modulus() != z.Modulus() {
		panic("hessian: modulus mismatch")
	}
	return Point{x: x, y: y, z: z}
}

// Identity returns the neutral element [0:-1:1] of the group.
func Identity(q uint64) Point {
	return Point{
		x: ring.Zero(q),
		y: ring.FromField(field.New(q-1, q)),
		z: ring.One(q),
	}
}

// X returns the X coordinate.
func (p Point) X() ring.Element { return p.x }

// Y returns the Y coordinate.
func (p Point) Y() ring.Element { return p.y }

// Z returns the Z coordinate.
func (p Point) Z() ring.Element { return p.z }

// Modulus returns the modulus of the underlying field.
func (p Point) Modulus() uint64 {
	return p.x.Modulus()
}

// IsDegenerate reports whether no coordinate is a unit of the ring. Such
// triples (the all-zero triple, or triples of pure ε-multiples) do not
// represent any projective point.
func (p Point) IsDegenerate() bool {
	return !p.x.IsUnit() && !p.y.IsUnit() && !p.z.IsUnit()
}

// Neg returns -P. On a Hessian curve negation swaps the Y and Z coordinates.
func (p Point) Neg() Point {
	return Point{x: p.x, y: p.z, z: p.y}
}

// Equal reports whether two triples represent the same projective point,
// i.e. whether some unit λ of the ring scales one onto the other. Degenerate
// triples are equal to nothing, including themselves.
func (p Point) Equal(q Point) bool {
	if p.Modulus() != q.Modulus() {
		return false
	}

	pc := [3]ring.Element{p.x, p.y, p.z}
	qc := [3]ring.Element{q.x, q.y, q.z}

	// any unit coordinate of p pins down the only possible λ
	pivot := -1
	for i, c := range pc {
		if c.IsUnit() {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return false
	}
	// a unit scaling preserves unitness coordinate-wise
	if !qc[pivot].IsUnit() {
		return false
	}

	inv, err := pc[pivot].Inverse()
	if err != nil {
		return false
	}
	lambda := qc[pivot].Mul(inv)
	for i := range pc {
		if !qc[i].Equal(lambda.Mul(pc[i])) {
			return false
		}
	}
	return true
}

// IsIdentity reports whether the point is equivalent to the neutral element.
func (p Point) IsIdentity() bool {
	return p.Equal(Identity(p.Modulus()))
}

// Normalize returns the canonical unit-scaled representative in which the
// first unit coordinate is 1.
func (p Point) Normalize() (Point, error) {
	for _, c := range [3]ring.Element{p.x, p.y, p.z} {
		if c.IsUnit() {
			inv, err := c.Inverse()
			if err != nil {
				return Point{}, err
			}
			return Point{
				x: p.x.Mul(inv),
				y: p.y.Mul(inv),
				z: p.z.Mul(inv),
			}, nil
		}
	}
	return Point{}, fmt.Errorf("hessian: degenerate triple: %w", dh.ErrInvalidPoint)
}

// Bytes returns a canonical serialization: the modulus followed by the six
// field coefficients of the normalized coordinates, all big-endian uint64.
// Equivalent points serialize identically.
func (p Point) Bytes() ([]byte, error) {
	n, err := p.Normalize()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 0, 7*8)
	buf = binary.BigEndian.AppendUint64(buf, n.Modulus())
	for _, c := range [3]ring.Element{n.x, n.y, n.z} {
		buf = binary.BigEndian.AppendUint64(buf, c.Constant().Value())
		buf = binary.BigEndian.AppendUint64(buf, c.EpsilonCoeff().Value())
	}
	return buf, nil
}

// sameReduction reports whether the two triples become the same projective
// point once the ε parts are dropped. The real parts live in the field Fq,
// so plain cross-multiplication is a valid equality test there.
func (p Point) sameReduction(q Point) bool {
	x1, y1, z1 := p.x.Constant(), p.y.Constant(), p.z.Constant()
	x2, y2, z2 := q.x.Constant(), q.y.Constant(), q.z.Constant()
	return x1.Mul(z2).Equal(x2.Mul(z1)) &&
		y1.Mul(z2).Equal(y2.Mul(z1)) &&
		x1.Mul(y2).Equal(x2.Mul(y1))
}

// add dispatches between the chord and rotated addition laws. The chord
// law vanishes exactly when the operands coincide modulo ε, that is, when
// they differ by an element of the ε-kernel, not only when they are equal
// over the ring, so the rotated law is selected on reduced equality.
// Callers are responsible for operand validation.
func (p Point) add(q Point, a ring.Element) (Point, error) {
	if p.sameReduction(q) {
		return p.rotatedAdd(q, a)
	}

	x1Sq := p.x.Square()
	x2Sq := q.x.Square()
	y1Sq := p.y.Square()
	y2Sq := q.y.Square()
	z1Sq := p.z.Square()
	z2Sq := q.z.Square()

	// X₃ = X₁²Y₂Z₂ − X₂²Y₁Z₁
	x3 := x1Sq.Mul(q.y).Mul(q.z).Sub(x2Sq.Mul(p.y).Mul(p.z))
	// Y₃ = Z₁²X₂Y₂ − Z₂²X₁Y₁
	y3 := z1Sq.Mul(q.x).Mul(q.y).Sub(z2Sq.Mul(p.x).Mul(p.y))
	// Z₃ = Y₁²X₂Z₂ − Y₂²X₁Z₁
	z3 := y1Sq.Mul(q.x).Mul(q.z).Sub(y2Sq.Mul(p.x).Mul(p.z))

	r := Point{x: x3, y: y3, z: z3}
	if r.IsDegenerate() {
		return Point{}, fmt.Errorf("hessian: addition produced a degenerate triple: %w", dh.ErrInvalidPoint)
	}
	return r, nil
}

// rotatedAdd applies the rotated addition law, which covers the pairs the
// chord law cannot: operands that agree modulo ε, including P = Q.
func (p Point) rotatedAdd(q Point, a ring.Element) (Point, error) {
	x1Sq := p.x.Square()
	y1Sq := p.y.Square()
	z1Sq := p.z.Square()
	x2Sq := q.x.Square()
	y2Sq := q.y.Square()
	z2Sq := q.z.Square()

	// X₃ = Z₂²X₁Z₁ − Y₁²X₂Y₂
	x3 := z2Sq.Mul(p.x).Mul(p.z).Sub(y1Sq.Mul(q.x).Mul(q.y))
	// Y₃ = Y₂²Y₁Z₁ − aX₁²X₂Z₂
	y3 := y2Sq.Mul(p.y).Mul(p.z).Sub(a.Mul(x1Sq).Mul(q.x).Mul(q.z))
	// Z₃ = aX₂²X₁Y₁ − Z₁²Y₂Z₂
	z3 := a.Mul(x2Sq).Mul(p.x).Mul(p.y).Sub(z1Sq.Mul(q.y).Mul(q.z))

	r := Point{x: x3, y: y3, z: z3}
	if r.IsDegenerate() {
		return Point{}, fmt.Errorf("hessian: addition produced a degenerate triple: %w", dh.ErrInvalidPoint)
	}
	return r, nil
}

// double applies the rotated law at P = Q, the tangent case.
func (p Point) double(a ring.Element) (Point, error) {
	return p.rotatedAdd(p, a)
}

// String renders the point as [X:Y:Z].
func (p Point) String() string {
	return fmt.Sprintf("[%v:%v:%v]", p.x, p.y, p.z)
}
