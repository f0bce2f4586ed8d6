package participant_test

import (
	"context"
	"crypto/rand"
	"math/big"
	"testing/quick"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-pvss/pvss/internal/testutil"
	"github.com/go-pvss/pvss/pkg/participant"
	"github.com/go-pvss/pvss/pkg/sharebox"
)

// buildRun deals a fresh secret to n recipients under threshold t over the
// shared small test group and returns everything a property needs to poke at.
func buildRun(n, t int) (dealer *participant.Participant, recipients []*participant.Participant, dist *sharebox.DistributionShareBox, secret *big.Int) {
	group := testutil.SmallGroup()

	dealer = participant.New(group)
	if err := dealer.Initialize(rand.Reader); err != nil {
		panic(err)
	}

	recipients = make([]*participant.Participant, n)
	publicKeys := make([]*big.Int, n)
	for i := range recipients {
		recipients[i] = participant.New(group)
		if err := recipients[i].Initialize(rand.Reader); err != nil {
			panic(err)
		}
		publicKeys[i] = recipients[i].PublicKey
	}

	secret, err := rand.Int(rand.Reader, group.Q)
	if err != nil {
		panic(err)
	}

	dist, err = dealer.DistributeSecret(rand.Reader, secret, publicKeys, t)
	if err != nil {
		panic(err)
	}

	return dealer, recipients, dist, secret
}

var _ = Describe("Threshold scheme invariants", func() {
	It("verifies a valid distribution and every honestly extracted share, for any n, t", func() {
		property := func(nRaw, tRaw uint8) bool {
			n := 2 + int(nRaw%5)    // 2..6
			t := 1 + int(tRaw)%n    // 1..n

			_, recipients, dist, _ := buildRun(n, t)

			if !recipients[0].VerifyDistributionShares(dist) {
				return false
			}

			for _, recipient := range recipients {
				sb, err := recipient.ExtractSecretShare(rand.Reader, dist)
				if err != nil {
					return false
				}
				if !recipient.VerifyShare(sb, dist, recipient.PublicKey) {
					return false
				}
			}

			return true
		}

		Expect(quick.Check(property, &quick.Config{MaxCount: 20})).To(Succeed())
	})

	It("reconstructs the dealt secret from any t-subset of N shares", func() {
		property := func(nRaw, tRaw, skipRaw uint8) bool {
			n := 2 + int(nRaw%5) // 2..6
			t := 1 + int(tRaw)%n // 1..n

			_, recipients, dist, secret := buildRun(n, t)

			shareBoxes := make([]*sharebox.ShareBox, 0, n)
			for _, recipient := range recipients {
				sb, err := recipient.ExtractSecretShare(rand.Reader, dist)
				if err != nil {
					return false
				}
				shareBoxes = append(shareBoxes, sb)
			}

			// Pick an arbitrary t-subset by rotating the list and truncating.
			offset := int(skipRaw) % n
			subset := make([]*sharebox.ShareBox, 0, t)
			for i := 0; i < t; i++ {
				subset = append(subset, shareBoxes[(offset+i)%n])
			}

			reconstructed, _, err := recipients[0].Reconstruct(context.Background(), subset, dist)
			if err != nil {
				return false
			}

			return reconstructed.Cmp(secret) == 0
		}

		Expect(quick.Check(property, &quick.Config{MaxCount: 20})).To(Succeed())
	})

	It("refuses to reconstruct from fewer than t shares", func() {
		property := func(nRaw, tRaw uint8) bool {
			n := 3 + int(nRaw%4) // 3..6
			t := 2 + int(tRaw)%(n-1) // 2..n, so t-1 >= 1

			_, recipients, dist, _ := buildRun(n, t)

			shareBoxes := make([]*sharebox.ShareBox, 0, t-1)
			for i := 0; i < t-1; i++ {
				sb, err := recipients[i].ExtractSecretShare(rand.Reader, dist)
				if err != nil {
					return false
				}
				shareBoxes = append(shareBoxes, sb)
			}

			_, _, err := recipients[0].Reconstruct(context.Background(), shareBoxes, dist)
			return err != nil
		}

		Expect(quick.Check(property, &quick.Config{MaxCount: 20})).To(Succeed())
	})

	It("detects a single flipped bit in a commitment or in the challenge", func() {
		_, recipients, dist, _ := buildRun(4, 3)
		Expect(recipients[0].VerifyDistributionShares(dist)).To(BeTrue())

		tamperCommitments := *dist
		tamperedCommitments := make([]*big.Int, len(dist.Commitments))
		copy(tamperedCommitments, dist.Commitments)
		tamperedCommitments[0] = new(big.Int).Xor(tamperedCommitments[0], big.NewInt(1))
		tamperCommitments.Commitments = tamperedCommitments
		Expect(recipients[0].VerifyDistributionShares(&tamperCommitments)).To(BeFalse())

		tamperChallenge := *dist
		tamperChallenge.Challenge = new(big.Int).Xor(dist.Challenge, big.NewInt(1))
		Expect(recipients[0].VerifyDistributionShares(&tamperChallenge)).To(BeFalse())
	})
})
