package e2e

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-hessian-dh/internal/crypto/curves"
	"github.com/smallyu/go-hessian-dh/internal/crypto/field"
	"github.com/smallyu/go-hessian-dh/internal/crypto/hessian"
	"github.com/smallyu/go-hessian-dh/internal/crypto/ring"
	"github.com/smallyu/go-hessian-dh/pkg/dh"
)

func re(a, b, q uint64) ring.Element {
	return ring.New(field.New(a, q), field.New(b, q))
}

// TestFullExchangePaperParameters runs the complete pipeline, field through
// key derivation, on the paper's F5[ε] parameters and checks every published
// intermediate value along the way.
func TestFullExchangePaperParameters(t *testing.T) {
	curve, err := hessian.NewCurve(re(1, 1, 5), re(1, 1, 5))
	require.NoError(t, err)

	generator := hessian.NewPoint(re(1, 0, 5), re(2, 0, 5), re(3, 1, 5))
	require.True(t, curve.Contains(generator))

	// published multiples of the generator
	for _, v := range []struct {
		k    int64
		want hessian.Point
	}{
		{4, hessian.NewPoint(re(1, 0, 5), re(4, 0, 5), re(3, 2, 5))},
		{5, hessian.NewPoint(re(1, 0, 5), re(3, 2, 5), re(4, 3, 5))},
		{35, hessian.NewPoint(re(1, 0, 5), re(3, 0, 5), re(2, 0, 5))},
	} {
		got, err := curve.ScalarMul(generator, big.NewInt(v.k))
		require.NoError(t, err)
		assert.True(t, got.Equal(v.want), "%dP mismatch", v.k)
	}

	group, err := hessian.NewGroup(curve, generator, 45)
	require.NoError(t, err)

	exchange := dh.NewExchange(group)
	aliceShared, bobShared, err := exchange.Simulate(big.NewInt(4), big.NewInt(35))
	require.NoError(t, err)
	require.True(t, aliceShared.Equal(bobShared))

	// the shared secret is 5P
	fiveP, err := curve.ScalarMul(generator, big.NewInt(5))
	require.NoError(t, err)
	wrapped, err := group.Wrap(fiveP)
	require.NoError(t, err)
	assert.True(t, aliceShared.Equal(wrapped))

	aliceKey := dh.DeriveKey(aliceShared, 32)
	bobKey := dh.DeriveKey(bobShared, 32)
	assert.Equal(t, aliceKey, bobKey)
}

// TestFullExchangeSecondCurve exercises the F11[ε] parameters from the
// paper's second worked example with a generator order found by search.
func TestFullExchangeSecondCurve(t *testing.T) {
	curve, err := hessian.NewCurve(re(1, 2, 11), re(2, 1, 11))
	require.NoError(t, err)

	generator := hessian.NewPoint(re(1, 0, 11), re(7, 6, 11), re(4, 6, 11))
	require.True(t, curve.Contains(generator))

	order, err := curve.PointOrder(generator)
	require.NoError(t, err)
	require.Greater(t, order, uint64(1))

	group, err := hessian.NewGroup(curve, generator, order)
	require.NoError(t, err)

	exchange := dh.NewExchange(group)
	for a := int64(1); a < int64(order); a += 13 {
		for b := int64(1); b < int64(order); b += 17 {
			aliceShared, bobShared, err := exchange.Simulate(big.NewInt(a), big.NewInt(b))
			require.NoError(t, err)
			assert.True(t, aliceShared.Equal(bobShared), "a=%d b=%d", a, b)
		}
	}
}

// TestExchangeAcrossAllGroups checks that the same protocol code agrees with
// itself over every Group implementation in the module.
func TestExchangeAcrossAllGroups(t *testing.T) {
	curve, err := hessian.NewCurve(re(1, 1, 5), re(1, 1, 5))
	require.NoError(t, err)
	group, err := hessian.NewGroup(curve, hessian.NewPoint(re(1, 0, 5), re(2, 0, 5), re(3, 1, 5)), 45)
	require.NoError(t, err)

	for _, g := range []dh.Group{group, curves.NewEd25519(), curves.NewSecp256k1()} {
		t.Run(g.Name(), func(t *testing.T) {
			exchange := dh.NewExchange(g)
			aliceShared, bobShared, err := exchange.Simulate(big.NewInt(20260825), big.NewInt(1234577))
			require.NoError(t, err)
			assert.True(t, aliceShared.Equal(bobShared))
			assert.Equal(t, dh.DeriveKey(aliceShared, 64), dh.DeriveKey(bobShared, 64))
		})
	}
}
