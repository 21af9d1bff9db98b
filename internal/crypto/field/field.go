package field

import (
	"fmt"
	"math/bits"

	"github.com/smallyu/go-hessian-dh/pkg/dh"
)

// Element is a residue class modulo a prime q, always held in canonical
// reduced form. The modulus travels with the value so that elements of
// different fields can never be combined silently.
type Element struct {
	value   uint64
	modulus uint64
}

// New creates a field element from an arbitrary integer, reducing it mod q.
// q must be greater than 1; primality is the caller's responsibility (the
// worked parameters all use small primes).
func New(value, q uint64) Element {
	if q < 2 {
		panic("field: modulus must be greater than 1")
	}
	if q >= 1<<63 {
		// keeps the signed arithmetic in Inverse exact
		panic("field: modulus must fit in 63 bits")
	}
	return Element{value: value % q, modulus: q}
}

// Zero returns the additive identity of Fq.
func Zero(q uint64) Element {
	return New(0, q)
}

// One returns the multiplicative identity of Fq.
func One(q uint64) Element {
	return New(1, q)
}

// Value returns the canonical representative in [0, q).
func (e Element) Value() uint64 {
	return e.value
}

// Modulus returns the field modulus q.
func (e Element) Modulus() uint64 {
	return e.modulus
}

// IsZero reports whether the element is the zero residue.
func (e Element) IsZero() bool {
	return e.value == 0
}

// Equal reports value equality. Elements of different moduli are never equal.
func (e Element) Equal(o Element) bool {
	return e == o
}

func (e Element) check(o Element) {
	if e.modulus != o.modulus {
		panic("field: modulus mismatch")
	}
}

// Add returns e + o mod q.
func (e Element) Add(o Element) Element {
	e.check(o)
	// both operands are reduced, so the sum fits in uint64 iff q < 2^63;
	// go through the double-width path to stay total for any q.
	sum, carry := bits.Add64(e.value, o.value, 0)
	_, rem := bits.Div64(carry, sum, e.modulus)
	return Element{value: rem, modulus: e.modulus}
}

// Sub returns e - o mod q.
func (e Element) Sub(o Element) Element {
	e.check(o)
	diff := e.value - o.value
	if e.value < o.value {
		diff += e.modulus
	}
	return Element{value: diff, modulus: e.modulus}
}

// Neg returns -e mod q.
func (e Element) Neg() Element {
	return Zero(e.modulus).Sub(e)
}

// Mul returns e * o mod q, using a 128-bit intermediate so the product never
// overflows regardless of q.
func (e Element) Mul(o Element) Element {
	e.check(o)
	hi, lo := bits.Mul64(e.value, o.value)
	_, rem := bits.Div64(hi, lo, e.modulus)
	return Element{value: rem, modulus: e.modulus}
}

// Pow returns e^exp mod q by square-and-multiply.
func (e Element) Pow(exp uint64) Element {
	result := One(e.modulus)
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

// Inverse returns the multiplicative inverse of e, computed with the
// extended Euclidean algorithm. Inverting zero, or any residue that shares a
// factor with a non-prime modulus, fails.
func (e Element) Inverse() (Element, error) {
	if e.value == 0 {
		return Element{}, fmt.Errorf("field: inverse of zero: %w", dh.ErrInvalidOperand)
	}

	var oldS, s int64 = 1, 0
	oldR, r := int64(e.value), int64(e.modulus)

	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}

	// gcd != 1 means no inverse exists; only possible for composite moduli.
	if oldR != 1 {
		return Element{}, fmt.Errorf("field: %d has no inverse mod %d: %w",
			e.value, e.modulus, dh.ErrInvalidOperand)
	}

	if oldS < 0 {
		oldS += int64(e.modulus)
	}
	return Element{value: uint64(oldS), modulus: e.modulus}, nil
}

// IsMinusThreeSquare reports whether -3 is a quadratic residue mod q, via
// Euler's criterion. Twisted Hessian curves over Fq exist subject to this
// condition on the base field.
func IsMinusThreeSquare(q uint64) bool {
	if q%2 == 0 || q < 5 {
		return false
	}
	minusThree := New(q-3, q)
	return minusThree.Pow((q-1)/2).Value() == 1
}

// String renders the element as "v mod q".
func (e Element) String() string {
	return fmt.Sprintf("%d mod %d", e.value, e.modulus)
}
