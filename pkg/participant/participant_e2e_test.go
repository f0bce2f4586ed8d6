package participant_test

import (
	"context"
	"crypto/rand"
	"math/big"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-pvss/pvss/pkg/participant"
	"github.com/go-pvss/pvss/pkg/secretcodec"
	"github.com/go-pvss/pvss/pkg/sharebox"
	"github.com/go-pvss/pvss/pkg/vss"
)

var _ = Describe("End-to-end sharing over the production group", func() {
	It("distributes, verifies, extracts, cross-verifies and reconstructs", func() {
		group := vss.NewRFC3526Group14()

		dealer := participant.New(group)
		Expect(dealer.Initialize(rand.Reader)).To(Succeed())

		recipients := make([]*participant.Participant, 3)
		publicKeys := make([]*big.Int, 3)
		for i := range recipients {
			recipients[i] = participant.New(group)
			Expect(recipients[i].Initialize(rand.Reader)).To(Succeed())
			publicKeys[i] = recipients[i].PublicKey
		}

		secret := secretcodec.Encode("Test")

		dist, err := dealer.DistributeSecret(rand.Reader, secret, publicKeys, 3)
		Expect(err).NotTo(HaveOccurred())

		for _, recipient := range recipients {
			Expect(recipient.VerifyDistributionShares(dist)).To(BeTrue())
		}

		shareBoxes := make([]*sharebox.ShareBox, len(recipients))
		for i, recipient := range recipients {
			sb, err := recipient.ExtractSecretShare(rand.Reader, dist)
			Expect(err).NotTo(HaveOccurred())
			shareBoxes[i] = sb

			for _, other := range recipients {
				Expect(other.VerifyShare(sb, dist, recipient.PublicKey)).To(BeTrue())
			}
		}

		for _, recipient := range recipients {
			reconstructed, skipped, err := recipient.Reconstruct(context.Background(), shareBoxes, dist)
			Expect(err).NotTo(HaveOccurred())
			Expect(skipped).To(Equal(0))

			message, err := secretcodec.Decode(reconstructed)
			Expect(err).NotTo(HaveOccurred())
			Expect(message).To(Equal("Test"))
		}
	})

	It("rejects a tampered distribution and a tampered share", func() {
		group := vss.NewRFC3526Group14()

		dealer := participant.New(group)
		Expect(dealer.Initialize(rand.Reader)).To(Succeed())

		recipient := participant.New(group)
		Expect(recipient.Initialize(rand.Reader)).To(Succeed())

		secret := secretcodec.Encode("Test")
		dist, err := dealer.DistributeSecret(rand.Reader, secret, []*big.Int{recipient.PublicKey}, 1)
		Expect(err).NotTo(HaveOccurred())

		tamperedDist := *dist
		tamperedDist.Challenge = new(big.Int).Add(dist.Challenge, big.NewInt(1))
		Expect(recipient.VerifyDistributionShares(&tamperedDist)).To(BeFalse())

		sb, err := recipient.ExtractSecretShare(rand.Reader, dist)
		Expect(err).NotTo(HaveOccurred())

		tamperedShare := *sb
		tamperedShare.Response = new(big.Int).Add(sb.Response, big.NewInt(1))
		Expect(recipient.VerifyShare(&tamperedShare, dist, recipient.PublicKey)).To(BeFalse())
	})
})
