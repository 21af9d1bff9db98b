// Package dh implements Diffie-Hellman key agreement over any cyclic group
// satisfying the Group interface. The twisted Hessian curve group over
// Fq[ε] is the construction this module exists for; secp256k1 and Ed25519
// wrappers share the same interface.
//
// The exchange layer deliberately does not check that a peer-supplied public
// point lies on the expected curve. Callers handling untrusted peers must
// run the curve membership test themselves before accepting a point.
package dh

import (
	"fmt"
	"math/big"

	"golang.org/x/crypto/sha3"
)

// KeyPair couples a private scalar with the public point derived from it.
type KeyPair struct {
	Private *big.Int
	Public  Point
}

// Exchange runs Diffie-Hellman over a fixed group. The value is immutable
// and safe for concurrent use.
type Exchange struct {
	group Group
}

// NewExchange creates an exchange context over the given group.
func NewExchange(group Group) *Exchange {
	return &Exchange{group: group}
}

// Group returns the group the exchange runs over.
func (e *Exchange) Group() Group {
	return e.group
}

// reducePrivate brings a caller-supplied private scalar into [1, order-1].
// The scalar is reduced mod the generator order first; a reduction of zero
// (including zero itself) is rejected. Negative scalars are the caller's
// bug, not a residue class, and are rejected outright.
func (e *Exchange) reducePrivate(private *big.Int) (*big.Int, error) {
	if private == nil || private.Sign() < 0 {
		return nil, fmt.Errorf("dh: private key must be positive: %w", ErrInvalidPrivateKey)
	}
	reduced := new(big.Int).Mod(private, e.group.Order())
	if reduced.Sign() == 0 {
		return nil, fmt.Errorf("dh: private key reduces to zero: %w", ErrInvalidPrivateKey)
	}
	return reduced, nil
}

// GenerateKeyPair derives the public point private·G. The private scalar is
// caller-supplied; sourcing randomness is outside this package.
func (e *Exchange) GenerateKeyPair(private *big.Int) (*KeyPair, error) {
	reduced, err := e.reducePrivate(private)
	if err != nil {
		return nil, err
	}
	public, err := e.group.Generator().ScalarMult(reduced)
	if err != nil {
		return nil, err
	}
	return &KeyPair{Private: reduced, Public: public}, nil
}

// ComputeSharedSecret combines the local private scalar with the peer's
// public point. For honest peers the result is symmetric:
// a·(b·G) and b·(a·G) are the same point.
func (e *Exchange) ComputeSharedSecret(private *big.Int, peerPublic Point) (Point, error) {
	reduced, err := e.reducePrivate(private)
	if err != nil {
		return nil, err
	}
	return peerPublic.ScalarMult(reduced)
}

// Simulate runs both sides of an exchange locally and returns the two shared
// secrets, which must compare equal for any valid pair of private scalars.
func (e *Exchange) Simulate(alicePrivate, bobPrivate *big.Int) (Point, Point, error) {
	alice, err := e.GenerateKeyPair(alicePrivate)
	if err != nil {
		return nil, nil, err
	}
	bob, err := e.GenerateKeyPair(bobPrivate)
	if err != nil {
		return nil, nil, err
	}

	aliceShared, err := e.ComputeSharedSecret(alice.Private, bob.Public)
	if err != nil {
		return nil, nil, err
	}
	bobShared, err := e.ComputeSharedSecret(bob.Private, alice.Public)
	if err != nil {
		return nil, nil, err
	}
	return aliceShared, bobShared, nil
}

// DeriveKey expands a shared point into an outLen-byte symmetric key with
// SHAKE-256 over the point's canonical serialization.
func DeriveKey(shared Point, outLen int) []byte {
	shake := sha3.NewShake256()
	shake.Write(shared.Bytes())

	out := make([]byte, outLen)
	shake.Read(out)
	return out
}
