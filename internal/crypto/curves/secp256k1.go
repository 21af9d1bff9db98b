package curves

import (
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-hessian-dh/pkg/dh"
)

// Secp256k1 is the secp256k1 group in affine coordinates. The point at
// infinity is represented as (0, 0), matching crypto/elliptic conventions.
type Secp256k1 struct{}

// NewSecp256k1 returns the secp256k1 group.
func NewSecp256k1() dh.Group {
	return &Secp256k1{}
}

func (c *Secp256k1) Name() string {
	return "secp256k1"
}

func (c *Secp256k1) Order() *big.Int {
	return new(big.Int).Set(secp256k1.S256().Params().N)
}

func (c *Secp256k1) Generator() dh.Point {
	params := secp256k1.S256().Params()
	return &secp256k1Point{
		x: new(big.Int).Set(params.Gx),
		y: new(big.Int).Set(params.Gy),
	}
}

type secp256k1Point struct {
	x *big.Int
	y *big.Int
}

// Bytes returns the uncompressed encoding 0x04 || X || Y with 32-byte
// coordinates.
func (p *secp256k1Point) Bytes() []byte {
	buf := make([]byte, 65)
	buf[0] = 0x04
	p.x.FillBytes(buf[1:33])
	p.y.FillBytes(buf[33:65])
	return buf
}

func (p *secp256k1Point) Add(other dh.Point) (dh.Point, error) {
	o, ok := other.(*secp256k1Point)
	if !ok {
		return nil, fmt.Errorf("curves: foreign point type %T: %w", other, dh.ErrCurveMismatch)
	}
	x, y := secp256k1.S256().Add(p.x, p.y, o.x, o.y)
	return &secp256k1Point{x: x, y: y}, nil
}

func (p *secp256k1Point) ScalarMult(k *big.Int) (dh.Point, error) {
	if k == nil || k.Sign() < 0 {
		return nil, fmt.Errorf("curves: scalar must be non-negative: %w", dh.ErrInvalidScalar)
	}
	reduced := new(big.Int).Mod(k, secp256k1.S256().Params().N)
	x, y := secp256k1.S256().ScalarMult(p.x, p.y, reduced.Bytes())
	return &secp256k1Point{x: x, y: y}, nil
}

func (p *secp256k1Point) Equal(other dh.Point) bool {
	o, ok := other.(*secp256k1Point)
	if !ok {
		return false
	}
	return p.x.Cmp(o.x) == 0 && p.y.Cmp(o.y) == 0
}
