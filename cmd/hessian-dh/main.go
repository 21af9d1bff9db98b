// Command hessian-dh runs a Diffie-Hellman exchange over the paper's
// twisted Hessian curve on F5[ε] with caller-chosen private scalars and
// prints both public points and the derived shared key.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"math/big"

	"github.com/smallyu/go-hessian-dh/internal/crypto/field"
	"github.com/smallyu/go-hessian-dh/internal/crypto/hessian"
	"github.com/smallyu/go-hessian-dh/internal/crypto/ring"
	"github.com/smallyu/go-hessian-dh/pkg/dh"
)

func main() {
	alicePrivate := flag.Int64("alice", 4, "Alice's private scalar")
	bobPrivate := flag.Int64("bob", 35, "Bob's private scalar")
	keyLen := flag.Int("keylen", 32, "derived key length in bytes")
	flag.Parse()

	const q = 5
	re := func(a, b uint64) ring.Element {
		return ring.New(field.New(a, q), field.New(b, q))
	}

	curve, err := hessian.NewCurve(re(1, 1), re(1, 1))
	if err != nil {
		log.Fatalf("curve: %v", err)
	}
	group, err := hessian.NewGroup(curve, hessian.NewPoint(re(1, 0), re(2, 0), re(3, 1)), 45)
	if err != nil {
		log.Fatalf("group: %v", err)
	}

	exchange := dh.NewExchange(group)
	alice, err := exchange.GenerateKeyPair(big.NewInt(*alicePrivate))
	if err != nil {
		log.Fatalf("alice keypair: %v", err)
	}
	bob, err := exchange.GenerateKeyPair(big.NewInt(*bobPrivate))
	if err != nil {
		log.Fatalf("bob keypair: %v", err)
	}

	shared, err := exchange.ComputeSharedSecret(alice.Private, bob.Public)
	if err != nil {
		log.Fatalf("shared secret: %v", err)
	}

	fmt.Printf("group:        %s\n", group.Name())
	fmt.Printf("alice public: %x\n", alice.Public.Bytes())
	fmt.Printf("bob public:   %x\n", bob.Public.Bytes())
	fmt.Printf("shared key:   %s\n", hex.EncodeToString(dh.DeriveKey(shared, *keyLen)))
}
