package vss

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// GeneratePrivateKey samples a private key uniformly from [0, Q) that is
// coprime to (Q-1), so that it has a multiplicative inverse modulo the group
// order and is therefore usable as a DLEQ secret.
func GeneratePrivateKey(group *Group, rnd io.Reader) (*big.Int, error) {
	order := new(big.Int).Sub(group.Q, big.NewInt(1))

	for {
		sk, err := rand.Int(rnd, group.Q)
		if err != nil {
			return nil, fmt.Errorf("vss: sampling private key: %w", err)
		}

		gcd := new(big.Int).GCD(nil, nil, sk, order)
		if gcd.Cmp(big.NewInt(1)) == 0 {
			return sk, nil
		}
	}
}

// GeneratePublicKey returns Generator^privateKey mod Q.
func GeneratePublicKey(group *Group, privateKey *big.Int) *big.Int {
	return new(big.Int).Exp(group.Generator, privateKey, group.Q)
}
