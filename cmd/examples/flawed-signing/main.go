// Package main demonstrates EdDSA-style signing under an affine nonce drift
// and the closed-form recovery of the private scalar from two signatures
package main

import (
	"fmt"
	"log"
	"math/big"

	"github.com/Caqil/affine-nonce/pkg/crypto/curve"
	"github.com/Caqil/affine-nonce/pkg/crypto/field"
	"github.com/Caqil/affine-nonce/pkg/crypto/rand"
	"github.com/Caqil/affine-nonce/pkg/fixture"
	"github.com/Caqil/affine-nonce/pkg/keygen"
	"github.com/Caqil/affine-nonce/pkg/nonce"
	"github.com/Caqil/affine-nonce/pkg/recovery"
	"github.com/Caqil/affine-nonce/pkg/signing"
)

func main() {
	fmt.Println("=== Flawed EdDSA Signing: Affine Nonce Drift ===")
	fmt.Println()

	// Phase 1: Generate the victim key pair
	fmt.Println("Phase 1: Key generation...")
	c, err := curve.New(curve.Edwards25519)
	if err != nil {
		log.Fatalf("Failed to create curve: %v", err)
	}
	kp, err := keygen.Generate(c, rand.Secure())
	if err != nil {
		log.Fatalf("Failed to generate key pair: %v", err)
	}
	fmt.Printf("  ✓ Curve: %s\n", c.Name())
	fmt.Printf("  ✓ Public Key: %x...%x\n", kp.Public[:4], kp.Public[28:])

	// Phase 2: Plant the flaw. Each nonce is 3*previous + 17 mod L.
	fmt.Println("\nPhase 2: Building the flawed nonce schedule...")
	rel := nonce.Affine(big.NewInt(3), big.NewInt(17))
	sched, err := nonce.NewRandomSchedule(field.Ed25519(), rel, rand.Secure())
	if err != nil {
		log.Fatalf("Failed to create schedule: %v", err)
	}
	fmt.Printf("  ✓ Nonce relation: %s\n", rel)

	// Phase 3: Sign two messages
	fmt.Println("\nPhase 3: Forward signing...")
	messages := [][]byte{
		[]byte("Transfer 100 XLM from Alice to Bob"),
		[]byte("Transfer 250 XLM from Alice to Carol"),
	}
	signer, err := signing.NewEdDSASigner(kp)
	if err != nil {
		log.Fatalf("Failed to create signer: %v", err)
	}
	sigs, err := signer.Sign(sched, messages)
	if err != nil {
		log.Fatalf("Signing failed: %v", err)
	}
	for i, sig := range sigs {
		fmt.Printf("  ✓ Signature %d: r=%x... s=%x...\n",
			i+1, sig.R.Bytes()[:8], sig.S.Bytes()[:8])
	}

	// Phase 4: Export the signatures as fixture records
	fmt.Println("\nPhase 4: Exporting fixture records...")
	records := make([]*fixture.EdDSARecord, 0, len(sigs))
	for _, sig := range sigs {
		rec, err := fixture.FromEdDSA(sig)
		if err != nil {
			log.Fatalf("Failed to encode record: %v", err)
		}
		records = append(records, rec)
	}
	data, err := fixture.MarshalEdDSA(records)
	if err != nil {
		log.Fatalf("Failed to marshal records: %v", err)
	}
	fmt.Printf("  ✓ Scenario JSON (%d bytes):\n%s\n", len(data), data)

	// Phase 5: Recover the private key from the records alone
	fmt.Println("\nPhase 5: Key recovery from the signature pair...")
	sig1, err := records[0].Signature()
	if err != nil {
		log.Fatalf("Failed to decode record: %v", err)
	}
	sig2, err := records[1].Signature()
	if err != nil {
		log.Fatalf("Failed to decode record: %v", err)
	}
	res, err := recovery.Recover(sig1, sig2, rel)
	if err != nil {
		log.Fatalf("Recovery failed: %v", err)
	}
	if res.Indeterminate {
		log.Fatal("❌ Signature pair is indeterminate")
	}
	if res.PrivateKey.Cmp(kp.Private) != 0 {
		log.Fatal("❌ Recovered scalar does not match the private key")
	}
	fmt.Println("  ✓ Recovered scalar matches the victim private key")

	fmt.Println("\n=== Recovery Complete! ===")
	fmt.Println("\nKey Features Demonstrated:")
	fmt.Println("  ✓ EdDSA-style signing with related nonces")
	fmt.Println("  ✓ Fixture record export and re-import")
	fmt.Println("  ✓ Closed-form private key recovery from two signatures")
}
