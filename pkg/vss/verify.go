package vss

import (
	"math/big"

	"github.com/go-pvss/pvss/internal/pvsslog"
	"github.com/go-pvss/pvss/pkg/dleq"
	"github.com/go-pvss/pvss/pkg/sharebox"
)

// VerifyShare checks a recipient's ShareBox against the encrypted share the
// dealer published for it: it proves log_G(sb.PublicKey) == log_{sb.Share}(encryptedShare),
// i.e. that sb.Share is the correct decryption of encryptedShare under the
// secret key behind sb.PublicKey.
func VerifyShare(group *Group, sb *sharebox.ShareBox, encryptedShare *big.Int) bool {
	stmt := dleq.Statement{
		G1: group.Generator,
		H1: sb.PublicKey,
		G2: sb.Share,
		H2: encryptedShare,
	}

	ok := dleq.Verify(stmt, sb.Challenge, sb.Response, group.Q)
	if !ok {
		pvsslog.Warn("vss: share verification failed", "publickey", sb.PublicKey.String())
	}
	return ok
}

// VerifyShareAgainstDistribution looks up the encrypted share the dealer
// published for publicKey in dist and verifies sb against it. It fails if no
// encrypted share is recorded for publicKey.
func VerifyShareAgainstDistribution(group *Group, sb *sharebox.ShareBox, dist *sharebox.DistributionShareBox, publicKey *big.Int) bool {
	encryptedShare, ok := dist.Share(publicKey)
	if !ok {
		pvsslog.Warn("vss: verify share against distribution: no encrypted share recorded", "publickey", publicKey.String())
		return false
	}

	return VerifyShare(group, sb, encryptedShare)
}

// VerifyDistributionShares replays the dealer's shared Fiat–Shamir
// transcript: for each public key in dist.PublicKeys (in order), it
// reconstructs X_i = Π_j commitments[j]^{position_i^j mod (Q-1)} mod Q,
// verifies the DLEQ statement (g, X_i, pk_i, Y_i) with the recorded response,
// and folds the recomputed commitment into a shared transcript. It returns
// true only if every recipient has a recorded position, share and response,
// and the finalized transcript challenge equals dist.Challenge.
func VerifyDistributionShares(group *Group, dist *sharebox.DistributionShareBox) bool {
	transcript := dleq.NewTranscript()

	for _, publicKey := range dist.PublicKeys {
		position, ok := dist.Position(publicKey)
		if !ok {
			pvsslog.Warn("vss: verify distribution: missing position", "publickey", publicKey.String())
			return false
		}
		response, ok := dist.Response(publicKey)
		if !ok {
			pvsslog.Warn("vss: verify distribution: missing response", "publickey", publicKey.String())
			return false
		}
		encryptedShare, ok := dist.Share(publicKey)
		if !ok {
			pvsslog.Warn("vss: verify distribution: missing share", "publickey", publicKey.String())
			return false
		}

		x := EvaluateCommitments(group, dist.Commitments, position)

		stmt := dleq.Statement{
			G1: group.SubgroupGenerator,
			H1: x,
			G2: publicKey,
			H2: encryptedShare,
		}

		commitment := dleq.Recompute(stmt, response, dist.Challenge, group.Q)
		transcript.Absorb(stmt, commitment)
	}

	ok := transcript.Challenge(group.Q).Cmp(dist.Challenge) == 0
	if !ok {
		pvsslog.Warn("vss: distribution transcript mismatch")
	}
	return ok
}
