// Package ring implements the local ring Fq[ε] of dual numbers over a prime
// field, with the defining relation ε² = 0. Elements a + bε with a ≠ 0 are
// units; elements with a = 0 are zero divisors and cannot be inverted.
package ring

import (
	"fmt"

	"github.com/smallyu/go-hessian-dh/internal/crypto/field"
	"github.com/smallyu/go-hessian-dh/pkg/dh"
)

// Element is a dual number a + bε over Fq.
type Element struct {
	a field.Element
	b field.Element
}

// New creates the element a + bε.
func New(a, b field.Element) Element {
	if a.Modulus() != b.Modulus() {
		panic("ring: modulus mismatch")
	}
	return Element{a: a, b: b}
}

// FromField embeds a field element into the ring as a + 0ε.
func FromField(a field.Element) Element {
	return Element{a: a, b: field.Zero(a.Modulus())}
}

// Zero returns the additive identity of Fq[ε].
func Zero(q uint64) Element {
	return FromField(field.Zero(q))
}

// One returns the multiplicative identity of Fq[ε].
func One(q uint64) Element {
	return FromField(field.One(q))
}

// Constant returns the real part a of a + bε.
func (e Element) Constant() field.Element {
	return e.a
}

// EpsilonCoeff returns the coefficient b of ε in a + bε.
func (e Element) EpsilonCoeff() field.Element {
	return e.b
}

// Modulus returns the modulus of the underlying field.
func (e Element) Modulus() uint64 {
	return e.a.Modulus()
}

// IsZero reports whether the element is 0 + 0ε.
func (e Element) IsZero() bool {
	return e.a.IsZero() && e.b.IsZero()
}

// IsUnit reports whether the element has a multiplicative inverse, which
// holds exactly when the real part is nonzero.
func (e Element) IsUnit() bool {
	return !e.a.IsZero()
}

// Equal reports component-wise equality. Projective equivalence up to unit
// scaling belongs to the curve layer, not here.
func (e Element) Equal(o Element) bool {
	return e.a.Equal(o.a) && e.b.Equal(o.b)
}

// Add returns the component-wise sum.
func (e Element) Add(o Element) Element {
	return Element{a: e.a.Add(o.a), b: e.b.Add(o.b)}
}

// Sub returns the component-wise difference.
func (e Element) Sub(o Element) Element {
	return Element{a: e.a.Sub(o.a), b: e.b.Sub(o.b)}
}

// Neg returns the component-wise negation.
func (e Element) Neg() Element {
	return Element{a: e.a.Neg(), b: e.b.Neg()}
}

// Mul returns the product under ε² = 0:
// (a + bε)(c + dε) = ac + (ad + bc)ε.
func (e Element) Mul(o Element) Element {
	ac := e.a.Mul(o.a)
	ad := e.a.Mul(o.b)
	bc := e.b.Mul(o.a)
	return Element{a: ac, b: ad.Add(bc)}
}

// Square returns e * e.
func (e Element) Square() Element {
	return e.Mul(e)
}

// Pow returns e^exp by square-and-multiply.
func (e Element) Pow(exp uint64) Element {
	result := One(e.Modulus())
	base := e
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exp >>= 1
	}
	return result
}

// Inverse returns the multiplicative inverse (a⁻¹, -b·a⁻²) of a + bε.
// Elements with zero real part are zero divisors and fail with ErrNotAUnit.
func (e Element) Inverse() (Element, error) {
	if !e.IsUnit() {
		return Element{}, fmt.Errorf("ring: %v: %w", e, dh.ErrNotAUnit)
	}

	aInv, err := e.a.Inverse()
	if err != nil {
		return Element{}, err
	}
	// solving (a+bε)(c+dε) = 1 gives c = a⁻¹ and d = -b·a⁻²
	d := e.b.Mul(aInv).Mul(aInv).Neg()
	return Element{a: aInv, b: d}, nil
}

// String renders the element as "a+bε".
func (e Element) String() string {
	return fmt.Sprintf("%d+%dε", e.a.Value(), e.b.Value())
}
