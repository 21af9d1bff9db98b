// Package curves provides classic elliptic-curve groups behind the dh.Group
// interface, so the exchange layer is demonstrably independent of the
// Hessian-ring construction.
package curves

import (
	"fmt"
	"math/big"

	"filippo.io/edwards25519"

	"github.com/smallyu/go-hessian-dh/pkg/dh"
)

// Ed25519 is the prime-order subgroup of edwards25519.
type Ed25519 struct{}

// NewEd25519 returns the Ed25519 group.
func NewEd25519() dh.Group {
	return &Ed25519{}
}

func (c *Ed25519) Name() string {
	return "ed25519"
}

// Order returns l = 2^252 + 27742317777372353535851937790883648493.
func (c *Ed25519) Order() *big.Int {
	s, _ := new(big.Int).SetString("72370055773322622139731865630429942408571163593799076060019509382854542509893", 10)
	return s
}

func (c *Ed25519) Generator() dh.Point {
	return &ed25519Point{p: edwards25519.NewGeneratorPoint()}
}

type ed25519Point struct {
	p *edwards25519.Point
}

func (p *ed25519Point) Bytes() []byte {
	return p.p.Bytes()
}

func (p *ed25519Point) Add(other dh.Point) (dh.Point, error) {
	o, ok := other.(*ed25519Point)
	if !ok {
		return nil, fmt.Errorf("curves: foreign point type %T: %w", other, dh.ErrCurveMismatch)
	}
	res := edwards25519.NewIdentityPoint().Add(p.p, o.p)
	return &ed25519Point{p: res}, nil
}

func (p *ed25519Point) ScalarMult(k *big.Int) (dh.Point, error) {
	if k == nil || k.Sign() < 0 {
		return nil, fmt.Errorf("curves: scalar must be non-negative: %w", dh.ErrInvalidScalar)
	}

	s, err := ed25519Scalar(k)
	if err != nil {
		return nil, err
	}
	res := edwards25519.NewIdentityPoint().ScalarMult(s, p.p)
	return &ed25519Point{p: res}, nil
}

func (p *ed25519Point) Equal(other dh.Point) bool {
	o, ok := other.(*ed25519Point)
	if !ok {
		return false
	}
	return p.p.Equal(o.p) == 1
}

// ed25519Scalar converts a non-negative big.Int to an edwards25519 scalar.
// big.Int is big-endian, the scalar encoding is little-endian.
func ed25519Scalar(k *big.Int) (*edwards25519.Scalar, error) {
	reduced := new(big.Int).Mod(k, (&Ed25519{}).Order())
	be := reduced.Bytes()

	var le [32]byte
	for i := 0; i < len(be); i++ {
		le[len(be)-1-i] = be[i]
	}

	s, err := edwards25519.NewScalar().SetCanonicalBytes(le[:])
	if err != nil {
		return nil, fmt.Errorf("curves: %w: %v", dh.ErrInvalidScalar, err)
	}
	return s, nil
}
