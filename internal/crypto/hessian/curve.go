package hessian

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"

	"github.com/smallyu/go-hessian-dh/internal/crypto/field"
	"github.com/smallyu/go-hessian-dh/internal/crypto/ring"
	"github.com/smallyu/go-hessian-dh/pkg/dh"
)

// Curve is a twisted Hessian curve aX³ + Y³ + Z³ = dXYZ over Fq[ε]. The
// parameters are fixed at construction and the value is safe to share across
// goroutines.
type Curve struct {
	a ring.Element
	d ring.Element
}

// NewCurve creates a twisted Hessian curve with parameters a and d. The
// curve is nonsingular only when a·(27a − d³) is a unit of the ring.
func NewCurve(a, d ring.Element) (Curve, error) {
	if a.Modulus() != d.Modulus() {
		return Curve{}, fmt.Errorf("hessian: curve parameters from different fields: %w", dh.ErrCurveMismatch)
	}
	if !discriminantTerm(a, d).IsUnit() {
		return Curve{}, fmt.Errorf("hessian: a(27a-d³) must be a unit: %w", dh.ErrNotAUnit)
	}
	return Curve{a: a, d: d}, nil
}

// discriminantTerm computes a·(27a − d³).
func discriminantTerm(a, d ring.Element) ring.Element {
	q := a.Modulus()
	twentySeven := ring.FromField(field.New(27, q))
	dCubed := d.Square().Mul(d)
	return a.Mul(twentySeven.Mul(a).Sub(dCubed))
}

// ValidParameters reports whether a and d define a nonsingular curve.
func ValidParameters(a, d ring.Element) bool {
	return a.Modulus() == d.Modulus() && discriminantTerm(a, d).IsUnit()
}

// A returns the curve parameter a.
func (c Curve) A() ring.Element { return c.a }

// D returns the curve parameter d.
func (c Curve) D() ring.Element { return c.d }

// Modulus returns the modulus of the underlying field.
func (c Curve) Modulus() uint64 {
	return c.a.Modulus()
}

// Identity returns the neutral element of the curve group.
func (c Curve) Identity() Point {
	return Identity(c.Modulus())
}

// Equal reports whether two curves carry the same parameters over the same
// field.
func (c Curve) Equal(o Curve) bool {
	return c.a.Equal(o.a) && c.d.Equal(o.d)
}

// Contains reports whether the triple satisfies aX³ + Y³ + Z³ = dXYZ with
// exact ring equality. Degenerate triples are rejected even though they
// satisfy the equation trivially.
func (c Curve) Contains(p Point) bool {
	if p.Modulus() != c.Modulus() || p.IsDegenerate() {
		return false
	}

	xCubed := p.x.Square().Mul(p.x)
	yCubed := p.y.Square().Mul(p.y)
	zCubed := p.z.Square().Mul(p.z)

	lhs := c.a.Mul(xCubed).Add(yCubed).Add(zCubed)
	rhs := c.d.Mul(p.x).Mul(p.y).Mul(p.z)
	return lhs.Equal(rhs)
}

// checkOperand rejects points that cannot take part in a group operation on
// this curve: wrong field, degenerate triple, or a triple that fails the
// curve equation.
func (c Curve) checkOperand(p Point) error {
	if p.Modulus() != c.Modulus() {
		return fmt.Errorf("hessian: point over F%d on curve over F%d: %w",
			p.Modulus(), c.Modulus(), dh.ErrCurveMismatch)
	}
	if p.IsDegenerate() {
		return fmt.Errorf("hessian: degenerate triple %v: %w", p, dh.ErrInvalidPoint)
	}
	if !c.Contains(p) {
		return fmt.Errorf("hessian: %v does not satisfy the curve equation: %w", p, dh.ErrInvalidPoint)
	}
	return nil
}

// Add returns P + Q under the curve group law.
func (c Curve) Add(p, q Point) (Point, error) {
	if err := c.checkOperand(p); err != nil {
		return Point{}, err
	}
	if err := c.checkOperand(q); err != nil {
		return Point{}, err
	}
	return p.add(q, c.a)
}

// Double returns 2P. It agrees with Add(P, P) on every input.
func (c Curve) Double(p Point) (Point, error) {
	if err := c.checkOperand(p); err != nil {
		return Point{}, err
	}
	return p.double(c.a)
}

// Neg returns -P.
func (c Curve) Neg(p Point) (Point, error) {
	if err := c.checkOperand(p); err != nil {
		return Point{}, err
	}
	return p.Neg(), nil
}

// ScalarMul returns k·P by MSB-first double-and-add. k must be
// non-negative; k = 0 yields the identity. Operands are validated once, not
// per group operation.
func (c Curve) ScalarMul(p Point, k *big.Int) (Point, error) {
	if k == nil || k.Sign() < 0 {
		return Point{}, fmt.Errorf("hessian: scalar must be non-negative: %w", dh.ErrInvalidScalar)
	}
	if err := c.checkOperand(p); err != nil {
		return Point{}, err
	}

	acc := c.Identity()
	for i := k.BitLen() - 1; i >= 0; i-- {
		var err error
		acc, err = acc.double(c.a)
		if err != nil {
			return Point{}, err
		}
		if k.Bit(i) == 1 {
			if acc.IsIdentity() {
				// adding P to the identity through the chord formula would
				// scale the result by X_P, which need not be a unit
				acc = p
			} else {
				acc, err = acc.add(p, c.a)
				if err != nil {
					return Point{}, err
				}
			}
		}
	}
	return acc, nil
}

// PointOrder returns the smallest k >= 1 with k·P equal to the identity, by
// incremental addition. The curve group over Fq[ε] is the ε-kernel extension
// of the reduced curve over Fq, so its order is q times a Hasse-bounded
// count; q³ safely bounds the search (the F5 worked example already has a
// generator of order 45 > 5²).
func (c Curve) PointOrder(p Point) (uint64, error) {
	if err := c.checkOperand(p); err != nil {
		return 0, err
	}

	identity := c.Identity()
	if p.Equal(identity) {
		return 1, nil
	}

	q := c.Modulus()
	bound := uint64(math.MaxUint64)
	if hi, sq := bits.Mul64(q, q); hi == 0 {
		if hi, cube := bits.Mul64(sq, q); hi == 0 {
			bound = cube
		}
	}

	multiple := p
	for k := uint64(2); k <= bound; k++ {
		var err error
		multiple, err = multiple.add(p, c.a)
		if err != nil {
			return 0, err
		}
		if multiple.Equal(identity) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("hessian: no multiple of %v reached the identity within %d steps: %w",
		p, bound, dh.ErrInvalidPoint)
}
