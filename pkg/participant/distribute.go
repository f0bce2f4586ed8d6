package participant

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"math/big"

	"github.com/go-pvss/pvss/internal/pvsslog"
	"github.com/go-pvss/pvss/pkg/dleq"
	"github.com/go-pvss/pvss/pkg/math/polynomial"
	"github.com/go-pvss/pvss/pkg/sharebox"
	"github.com/go-pvss/pvss/pkg/vss"
)

// DistributeSecret deals secret to the given recipients under the given
// threshold, sampling a fresh random sharing polynomial and DLEQ witness.
// Positions are assigned 1..N in publicKeys order. It panics if threshold
// exceeds the recipient count, mirroring the precondition violation the
// scheme treats as a programming error rather than a recoverable failure.
func (p *Participant) DistributeSecret(rnd io.Reader, secret *big.Int, publicKeys []*big.Int, threshold int) (*sharebox.DistributionShareBox, error) {
	if threshold > len(publicKeys) {
		panic(fmt.Sprintf("participant: distribute secret: threshold %d exceeds %d recipients", threshold, len(publicKeys)))
	}

	poly, err := polynomial.NewRandom(rnd, threshold-1, p.Group.Q)
	if err != nil {
		return nil, fmt.Errorf("participant: distribute secret: %w", err)
	}

	w, err := rand.Int(rnd, p.Group.Q)
	if err != nil {
		return nil, fmt.Errorf("participant: distribute secret: sampling witness: %w", err)
	}

	return p.Distribute(secret, publicKeys, threshold, poly, w)
}

// Distribute deals secret to publicKeys under threshold using a
// caller-supplied polynomial and shared DLEQ witness w. This deterministic
// form exists for reproducible test vectors; DistributeSecret is the usual
// entry point.
func (p *Participant) Distribute(secret *big.Int, publicKeys []*big.Int, threshold int, poly *polynomial.Polynomial, w *big.Int) (*sharebox.DistributionShareBox, error) {
	if threshold > len(publicKeys) {
		panic(fmt.Sprintf("participant: distribute: threshold %d exceeds %d recipients", threshold, len(publicKeys)))
	}

	qMinus1 := new(big.Int).Sub(p.Group.Q, big.NewInt(1))

	commitments := make([]*big.Int, threshold)
	for j := 0; j < threshold; j++ {
		commitments[j] = new(big.Int).Exp(p.Group.SubgroupGenerator, poly.Coefficients[j], p.Group.Q)
	}

	dist := sharebox.New(publicKeys)
	dist.Commitments = commitments

	secretShares := make(map[string]*big.Int, len(publicKeys))
	transcript := dleq.NewTranscript()

	position := int64(1)
	for _, pk := range publicKeys {
		secretShare := new(big.Int).Mod(poly.Evaluate(big.NewInt(position)), qMinus1)
		secretShares[sharebox.KeyFor(pk)] = secretShare

		x := vss.EvaluateCommitments(p.Group, commitments, position)

		encryptedShare := new(big.Int).Exp(pk, secretShare, p.Group.Q)

		stmt := dleq.Statement{G1: p.Group.SubgroupGenerator, H1: x, G2: pk, H2: encryptedShare}
		commitment := dleq.Commit(stmt, w, p.Group.Q)
		transcript.Absorb(stmt, commitment)

		dist.Set(pk, position, encryptedShare, nil)

		position++
	}

	challenge := transcript.Challenge(p.Group.Q)
	dist.Challenge = challenge

	for _, pk := range publicKeys {
		secretShare := secretShares[sharebox.KeyFor(pk)]
		response := dleq.Respond(w, secretShare, challenge, p.Group.Q)

		pos, _ := dist.Position(pk)
		share, _ := dist.Share(pk)
		dist.Set(pk, pos, share, response)
	}

	constantTerm := new(big.Int).Mod(poly.Evaluate(big.NewInt(0)), qMinus1)
	maskedGenerator := new(big.Int).Exp(p.Group.Generator, constantTerm, p.Group.Q)

	digest := sha256.Sum256([]byte(maskedGenerator.String()))
	mask := new(big.Int).SetBytes(digest[:])
	mask.Mod(mask, p.Group.Q)

	dist.U = new(big.Int).Xor(secret, mask)

	pvsslog.Info("participant: distributed secret", "recipients", len(publicKeys), "threshold", threshold)

	return dist, nil
}
