package participant

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/go-pvss/pvss/internal/pvsslog"
	"github.com/go-pvss/pvss/pkg/dleq"
	"github.com/go-pvss/pvss/pkg/math/modular"
	"github.com/go-pvss/pvss/pkg/sharebox"
)

// ExtractSecretShare decrypts and proves p's share of dist using a freshly
// sampled DLEQ witness.
func (p *Participant) ExtractSecretShare(rnd io.Reader, dist *sharebox.DistributionShareBox) (*sharebox.ShareBox, error) {
	w, err := rand.Int(rnd, p.Group.Q)
	if err != nil {
		return nil, fmt.Errorf("participant: extract secret share: sampling witness: %w", err)
	}
	return p.ExtractShare(dist, w)
}

// ExtractShare decrypts and proves p's share of dist using the given DLEQ
// witness w. This deterministic form exists for reproducible test vectors;
// ExtractSecretShare is the usual entry point.
func (p *Participant) ExtractShare(dist *sharebox.DistributionShareBox, w *big.Int) (*sharebox.ShareBox, error) {
	encryptedShare, ok := dist.Share(p.PublicKey)
	if !ok {
		return nil, fmt.Errorf("participant: extract share: no encrypted share recorded for this participant's public key")
	}

	qMinus1 := new(big.Int).Sub(p.Group.Q, big.NewInt(1))

	privateKeyInverse, ok := modular.ModInverse(p.PrivateKey, qMinus1)
	if !ok {
		return nil, fmt.Errorf("participant: extract share: private key has no inverse modulo (Q-1)")
	}

	decryptedShare := new(big.Int).Exp(encryptedShare, privateKeyInverse, p.Group.Q)

	stmt := dleq.Statement{G1: p.Group.Generator, H1: p.PublicKey, G2: decryptedShare, H2: encryptedShare}
	commitment := dleq.Commit(stmt, w, p.Group.Q)

	transcript := dleq.NewTranscript()
	transcript.Absorb(stmt, commitment)
	challenge := transcript.Challenge(p.Group.Q)

	response := dleq.Respond(w, p.PrivateKey, challenge, p.Group.Q)

	pvsslog.Info("participant: extracted share", "publickey", p.PublicKey.String())

	return sharebox.New(p.PublicKey, decryptedShare, challenge, response), nil
}
