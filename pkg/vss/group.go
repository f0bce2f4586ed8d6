// Package vss implements the verifiable secret sharing engine: group setup,
// key generation, public verification of a dealer's distribution and of an
// individual recipient's decrypted share, and threshold reconstruction.
package vss

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/go-pvss/pvss/internal/pvsslog"
)

// rfc3526Group14Hex is the 2048-bit MODP group from RFC 3526 §3, a safe
// prime q = 2p+1 for Sophie Germain prime p.
const rfc3526Group14Hex = "FFFFFFFFFFFFFFFFC90FDAA22168C234C4C6628B80DC1CD129024E088A67CC74020BBEA63B139B22514A08798E3404DDEF9519B3CD3A431B302B0A6DF25F14374FE1356D6D51C245E485B576625E7EC6F44C42E9A637ED6B0BFF5CB6F406B7EDEE386BFB5A899FA5AE9F24117C4B1FE649286651ECE45B3DC2007CB8A163BF0598DA48361C55D39A69163FA8FD24CF5F83655D23DCA3AD961C62F356208552BB9ED529077096966D670C354E4ABC9804F1746C08CA18217C32905E462E36CE3BE39E772C180E86039B2783A2EC07A28FB5C55DF06F4C52C9DE2BCBF6955817183995497CEA956AE515D2261898FA051015728E5A8AACAA68FFFFFFFFFFFFFFFF"

// Group holds the parameters of the multiplicative group the scheme runs
// over: Q is a safe prime, SubgroupGenerator generates the order-(Q-1)/2
// prime subgroup used for polynomial commitments, and Generator generates
// the full order-(Q-1) group used for keypairs and secret masking.
type Group struct {
	Q                 *big.Int
	SubgroupGenerator *big.Int
	Generator         *big.Int
	Length            int
}

// NewGroup adopts caller-supplied group parameters, e.g. the small test
// group used by the fixed test vectors.
func NewGroup(q, subgroupGenerator, generator *big.Int, length int) *Group {
	return &Group{
		Q:                 new(big.Int).Set(q),
		SubgroupGenerator: new(big.Int).Set(subgroupGenerator),
		Generator:         new(big.Int).Set(generator),
		Length:            length,
	}
}

// NewRFC3526Group14 returns the standard 2048-bit safe-prime group: Q is the
// RFC 3526 Group 14 modulus, SubgroupGenerator is (Q-1)/2, and Generator is 2.
func NewRFC3526Group14() *Group {
	q, ok := new(big.Int).SetString(rfc3526Group14Hex, 16)
	if !ok {
		panic("vss: malformed RFC 3526 Group 14 constant")
	}

	subgroupGenerator := new(big.Int).Sub(q, big.NewInt(1))
	subgroupGenerator.Rsh(subgroupGenerator, 1)

	group := &Group{
		Q:                 q,
		SubgroupGenerator: subgroupGenerator,
		Generator:         big.NewInt(2),
		Length:            2048,
	}

	pvsslog.Info("vss: group constructed", "length", group.Length)

	return group
}

// GenerateGroup samples a fresh random safe prime of the given bit length
// and returns the corresponding group with Generator fixed at 2. This is
// substantially slower than NewRFC3526Group14 and exists for constructing
// custom groups at runtime; production use should prefer the fixed RFC 3526
// group.
func GenerateGroup(bits int) (*Group, error) {
	if bits < 8 {
		return nil, fmt.Errorf("vss: group bit length %d too small", bits)
	}

	for {
		p, err := rand.Prime(rand.Reader, bits-1)
		if err != nil {
			return nil, fmt.Errorf("vss: generating safe prime: %w", err)
		}

		q := new(big.Int).Lsh(p, 1)
		q.Add(q, big.NewInt(1))

		if !q.ProbablyPrime(32) {
			continue
		}

		group := &Group{
			Q:                 q,
			SubgroupGenerator: p,
			Generator:         big.NewInt(2),
			Length:            bits,
		}

		pvsslog.Info("vss: group generated", "length", bits)

		return group, nil
	}
}
