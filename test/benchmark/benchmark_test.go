package benchmark

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/smallyu/go-hessian-dh/internal/crypto/field"
	"github.com/smallyu/go-hessian-dh/internal/crypto/hessian"
	"github.com/smallyu/go-hessian-dh/internal/crypto/ring"
	"github.com/smallyu/go-hessian-dh/pkg/dh"
)

var moduli = []uint64{5, 11, 7919, 1<<61 - 1}

func BenchmarkFieldAdd(b *testing.B) {
	for _, q := range moduli {
		b.Run(fmt.Sprintf("q=%d", q), func(b *testing.B) {
			x := field.New(q-2, q)
			y := field.New(q/2, q)
			for i := 0; i < b.N; i++ {
				_ = x.Add(y)
			}
		})
	}
}

func BenchmarkFieldMul(b *testing.B) {
	for _, q := range moduli {
		b.Run(fmt.Sprintf("q=%d", q), func(b *testing.B) {
			x := field.New(q-2, q)
			y := field.New(q/2, q)
			for i := 0; i < b.N; i++ {
				_ = x.Mul(y)
			}
		})
	}
}

func BenchmarkFieldInverse(b *testing.B) {
	for _, q := range moduli {
		b.Run(fmt.Sprintf("q=%d", q), func(b *testing.B) {
			x := field.New(q-2, q)
			for i := 0; i < b.N; i++ {
				if _, err := x.Inverse(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkRingMul(b *testing.B) {
	for _, q := range moduli {
		b.Run(fmt.Sprintf("q=%d", q), func(b *testing.B) {
			x := ring.New(field.New(q-2, q), field.New(3%q, q))
			y := ring.New(field.New(q/2, q), field.New(q-1, q))
			for i := 0; i < b.N; i++ {
				_ = x.Mul(y)
			}
		})
	}
}

func BenchmarkRingInverse(b *testing.B) {
	for _, q := range moduli {
		b.Run(fmt.Sprintf("q=%d", q), func(b *testing.B) {
			x := ring.New(field.New(q-2, q), field.New(3%q, q))
			for i := 0; i < b.N; i++ {
				if _, err := x.Inverse(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// paperSetup returns the F5[ε] curve with its order-45 generator.
func paperSetup(b *testing.B) (hessian.Curve, hessian.Point) {
	b.Helper()
	re := func(x, y uint64) ring.Element {
		return ring.New(field.New(x, 5), field.New(y, 5))
	}
	curve, err := hessian.NewCurve(re(1, 1), re(1, 1))
	if err != nil {
		b.Fatal(err)
	}
	return curve, hessian.NewPoint(re(1, 0), re(2, 0), re(3, 1))
}

func BenchmarkCurveAdd(b *testing.B) {
	curve, p := paperSetup(b)
	q, err := curve.ScalarMul(p, big.NewInt(7))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := curve.Add(p, q); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCurveDouble(b *testing.B) {
	curve, p := paperSetup(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := curve.Double(p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkScalarMul(b *testing.B) {
	curve, p := paperSetup(b)
	k := big.NewInt(35)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := curve.ScalarMul(p, k); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkExchange(b *testing.B) {
	curve, p := paperSetup(b)
	group, err := hessian.NewGroup(curve, p, 45)
	if err != nil {
		b.Fatal(err)
	}
	exchange := dh.NewExchange(group)
	alice := big.NewInt(4)
	bob := big.NewInt(35)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := exchange.Simulate(alice, bob); err != nil {
			b.Fatal(err)
		}
	}
}
