// Package main demonstrates ECDSA-style nonce reuse and private key recovery
// via the pair search used when the vulnerable pair is not known in advance
package main

import (
	"fmt"
	"log"
	"math/big"

	"github.com/Caqil/affine-nonce/pkg/attack"
	"github.com/Caqil/affine-nonce/pkg/crypto/curve"
	"github.com/Caqil/affine-nonce/pkg/crypto/field"
	"github.com/Caqil/affine-nonce/pkg/crypto/rand"
	"github.com/Caqil/affine-nonce/pkg/fixture"
	"github.com/Caqil/affine-nonce/pkg/keygen"
	"github.com/Caqil/affine-nonce/pkg/logger"
	"github.com/Caqil/affine-nonce/pkg/nonce"
	"github.com/Caqil/affine-nonce/pkg/signing"
)

func main() {
	fmt.Println("=== ECDSA Key Recovery: Nonce Reuse ===")
	fmt.Println()

	logr := logger.New(&logger.Config{Level: "info", Pretty: true})

	// Phase 1: Generate the victim key pair
	fmt.Println("Phase 1: Key generation...")
	c, err := curve.New(curve.Secp256k1)
	if err != nil {
		log.Fatalf("Failed to create curve: %v", err)
	}
	kp, err := keygen.Generate(c, rand.Secure())
	if err != nil {
		log.Fatalf("Failed to generate key pair: %v", err)
	}
	info, err := fixture.FromKeyPair(kp)
	if err != nil {
		log.Fatalf("Failed to encode key info: %v", err)
	}
	fmt.Printf("  ✓ Curve: %s\n", c.Name())
	fmt.Printf("  ✓ Public Key: %s...\n", info.PublicKeyHex[:16])

	// Phase 2: Sign four transactions with a single reused nonce
	fmt.Println("\nPhase 2: Signing with a reused nonce...")
	rel := nonce.Reuse()
	sched, err := nonce.NewRandomSchedule(field.Secp256k1(), rel, rand.Secure())
	if err != nil {
		log.Fatalf("Failed to create schedule: %v", err)
	}
	signer, err := signing.NewECDSASigner(kp)
	if err != nil {
		log.Fatalf("Failed to create signer: %v", err)
	}
	messages := [][]byte{
		[]byte("Transaction 1: Send 0.5 BTC to bc1q..."),
		[]byte("Transaction 2: Send 1.2 BTC to bc1q..."),
		[]byte("Transaction 3: Send 0.1 BTC to bc1q..."),
		[]byte("Transaction 4: Send 2.0 BTC to bc1q..."),
	}
	sigs, err := signer.Sign(sched, messages)
	if err != nil {
		log.Fatalf("Signing failed: %v", err)
	}
	fmt.Printf("  ✓ Produced %d signatures, all sharing r=%x...\n",
		len(sigs), sigs[0].R.Bytes()[:8])

	// Phase 3: Export one record to show the interchange format
	fmt.Println("\nPhase 3: Fixture record sample...")
	rec, err := fixture.FromECDSA(sigs[0])
	if err != nil {
		log.Fatalf("Failed to encode record: %v", err)
	}
	idx := 0
	rec.NonceIndex = &idx
	sample, err := fixture.MarshalECDSA([]*fixture.ECDSARecord{rec})
	if err != nil {
		log.Fatalf("Failed to marshal record: %v", err)
	}
	fmt.Printf("%s\n", sample)

	// Phase 4: Search all signature pairs for the private key
	fmt.Println("\nPhase 4: Searching signature pairs...")
	match, err := attack.SearchPairs(c, sigs, rel, kp.Public, logr)
	if err != nil {
		log.Fatalf("Search failed: %v", err)
	}
	fmt.Printf("  ✓ Pair (%d, %d) broke the key\n", match.Pair[0], match.Pair[1])
	if match.PrivateKey.Cmp(kp.Private) != 0 {
		log.Fatal("❌ Recovered scalar does not match the private key")
	}
	fmt.Println("  ✓ Recovered scalar verified against the public key")

	// Phase 5: The same break as a single end-to-end run
	fmt.Println("\nPhase 5: One-call scenario run...")
	report, err := attack.Run(&attack.Config{
		Curve:    curve.Secp256k1,
		Relation: nonce.FixedStep(big.NewInt(1337)),
		Messages: messages[:2],
		Log:      logr,
	})
	if err != nil {
		log.Fatalf("Scenario run failed: %v", err)
	}
	if !report.Verified {
		log.Fatal("❌ Scenario run did not verify")
	}
	fmt.Println("  ✓ Fixed-step schedule broken end to end")

	fmt.Println("\n=== Recovery Complete! ===")
	fmt.Println("\nKey Features Demonstrated:")
	fmt.Println("  ✓ ECDSA-style signing with a reused nonce")
	fmt.Println("  ✓ All-pairs search with public key verification")
	fmt.Println("  ✓ End-to-end simulate-then-break run")
}
