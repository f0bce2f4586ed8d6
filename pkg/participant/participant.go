// Package participant provides the dealer/recipient facade over pkg/vss,
// pkg/dleq and pkg/math/polynomial: a Participant generates its own keypair,
// distributes a secret to a set of recipients, extracts its own share from a
// dealer's distribution, and verifies or reconstructs using the VSS engine.
package participant

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/go-pvss/pvss/internal/pvsslog"
	"github.com/go-pvss/pvss/pkg/sharebox"
	"github.com/go-pvss/pvss/pkg/vss"
)

// Participant is one party in a sharing run, identified by its own keypair
// over a fixed Group.
type Participant struct {
	Group      *vss.Group
	PrivateKey *big.Int
	PublicKey  *big.Int
}

// New returns a Participant with no keypair yet; call Initialize before
// distributing or extracting.
func New(group *vss.Group) *Participant {
	return &Participant{Group: group}
}

// Initialize samples a fresh keypair for the participant using rnd.
func (p *Participant) Initialize(rnd io.Reader) error {
	sk, err := vss.GeneratePrivateKey(p.Group, rnd)
	if err != nil {
		return err
	}

	p.PrivateKey = sk
	p.PublicKey = vss.GeneratePublicKey(p.Group, sk)

	pvsslog.Info("participant: initialized", "publickey", p.PublicKey.String())

	return nil
}

// VerifyDistributionShares checks dist's shared Fiat–Shamir transcript.
func (p *Participant) VerifyDistributionShares(dist *sharebox.DistributionShareBox) bool {
	return vss.VerifyDistributionShares(p.Group, dist)
}

// VerifyShare checks sb against the encrypted share dist recorded for
// publicKey.
func (p *Participant) VerifyShare(sb *sharebox.ShareBox, dist *sharebox.DistributionShareBox, publicKey *big.Int) bool {
	return vss.VerifyShareAgainstDistribution(p.Group, sb, dist, publicKey)
}

// RandomWitness samples a fresh DLEQ witness uniformly from [0, Group.Q).
func RandomWitness(group *vss.Group, rnd io.Reader) (*big.Int, error) {
	return rand.Int(rnd, group.Q)
}
