package hessian

import (
	"math/big"
	"testing"
)

// FuzzPointOperations throws arbitrary triples at the curve layer. Every
// input must either be handled or rejected with an error; nothing may panic.
func FuzzPointOperations(f *testing.F) {
	f.Add(uint64(1), uint64(0), uint64(7), uint64(6), uint64(4), uint64(6))
	f.Add(uint64(0), uint64(0), uint64(0), uint64(0), uint64(0), uint64(0))
	f.Add(uint64(0), uint64(1), uint64(0), uint64(2), uint64(0), uint64(3))
	f.Add(uint64(10), uint64(10), uint64(10), uint64(10), uint64(10), uint64(10))

	f.Fuzz(func(t *testing.T, xa, xb, ya, yb, za, zb uint64) {
		const q = 11
		curve, err := NewCurve(
			re(1, 2, q),
			re(2, 1, q),
		)
		if err != nil {
			t.Fatalf("paper curve rejected: %v", err)
		}

		p := NewPoint(re(xa, xb, q), re(ya, yb, q), re(za, zb, q))

		_ = p.IsDegenerate()
		_ = p.Equal(p)
		_ = curve.Contains(p)
		_, _ = p.Normalize()
		_, _ = p.Bytes()

		generator := NewPoint(re(1, 0, q), re(7, 6, q), re(4, 6, q))
		_, _ = curve.Add(p, generator)
		_, _ = curve.Double(p)
		_, _ = curve.ScalarMul(p, big.NewInt(int64(xa%64)))
	})
}
