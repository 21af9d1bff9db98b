package hessian

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-hessian-dh/pkg/dh"
)

// Group exposes a curve together with a designated generator and its known
// subgroup order through the dh.Group interface, so the exchange layer can
// run over the Hessian-ring construction the same way it runs over the
// classic curves in internal/crypto/curves.
type Group struct {
	curve     Curve
	generator Point
	order     uint64
}

// NewGroup validates that the generator lies on the curve and that the
// supplied order actually sends it to the identity, then returns the group.
func NewGroup(curve Curve, generator Point, order uint64) (*Group, error) {
	if err := curve.checkOperand(generator); err != nil {
		return nil, fmt.Errorf("hessian: generator: %w", err)
	}
	if order == 0 {
		return nil, fmt.Errorf("hessian: order must be positive: %w", dh.ErrInvalidScalar)
	}
	check, err := curve.ScalarMul(generator, new(big.Int).SetUint64(order))
	if err != nil {
		return nil, err
	}
	if !check.Equal(curve.Identity()) {
		return nil, fmt.Errorf("hessian: %d·G is not the identity: %w", order, dh.ErrInvalidScalar)
	}
	return &Group{curve: curve, generator: generator, order: order}, nil
}

// Curve returns the underlying curve.
func (g *Group) Curve() Curve {
	return g.curve
}

// Name identifies the group by its base field.
func (g *Group) Name() string {
	return fmt.Sprintf("twisted-hessian-F%d[ε]", g.curve.Modulus())
}

// Generator returns the base point.
func (g *Group) Generator() dh.Point {
	return &groupPoint{group: g, point: g.generator}
}

// Order returns the order of the generator's subgroup.
func (g *Group) Order() *big.Int {
	return new(big.Int).SetUint64(g.order)
}

// Wrap lifts a raw curve point into the dh.Point interface.
func (g *Group) Wrap(p Point) (dh.Point, error) {
	if err := g.curve.checkOperand(p); err != nil {
		return nil, err
	}
	return &groupPoint{group: g, point: p}, nil
}

// groupPoint adapts a raw Point to dh.Point.
type groupPoint struct {
	group *Group
	point Point
}

// Point returns the underlying projective point.
func (p *groupPoint) Point() Point {
	return p.point
}

func (p *groupPoint) sibling(other dh.Point) (*groupPoint, error) {
	o, ok := other.(*groupPoint)
	if !ok {
		return nil, fmt.Errorf("hessian: foreign point type %T: %w", other, dh.ErrCurveMismatch)
	}
	if !o.group.curve.Equal(p.group.curve) {
		return nil, fmt.Errorf("hessian: point from a different curve: %w", dh.ErrCurveMismatch)
	}
	return o, nil
}

func (p *groupPoint) Bytes() []byte {
	b, err := p.point.Bytes()
	if err != nil {
		// wrapped points are validated at construction, so a degenerate
		// triple here is a broken invariant
		panic(err)
	}
	return b
}

func (p *groupPoint) Add(other dh.Point) (dh.Point, error) {
	o, err := p.sibling(other)
	if err != nil {
		return nil, err
	}
	sum, err := p.group.curve.Add(p.point, o.point)
	if err != nil {
		return nil, err
	}
	return &groupPoint{group: p.group, point: sum}, nil
}

func (p *groupPoint) ScalarMult(k *big.Int) (dh.Point, error) {
	r, err := p.group.curve.ScalarMul(p.point, k)
	if err != nil {
		return nil, err
	}
	return &groupPoint{group: p.group, point: r}, nil
}

func (p *groupPoint) Equal(other dh.Point) bool {
	o, err := p.sibling(other)
	if err != nil {
		return false
	}
	return p.point.Equal(o.point)
}
