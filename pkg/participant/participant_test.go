package participant_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-pvss/pvss/internal/testutil"
	"github.com/go-pvss/pvss/pkg/math/polynomial"
	"github.com/go-pvss/pvss/pkg/participant"
	"github.com/go-pvss/pvss/pkg/sharebox"
	"github.com/go-pvss/pvss/pkg/vss"
)

func s1Fixture(t *testing.T) (group *vss.Group, dealer *participant.Participant, publicKeys []*big.Int, dist *sharebox.DistributionShareBox) {
	t.Helper()

	group = testutil.SmallGroup()

	dealer = participant.New(group)
	dealer.PrivateKey = big.NewInt(105929)
	dealer.PublicKey = vss.GeneratePublicKey(group, dealer.PrivateKey)

	recipientKeys := testutil.Ints("7901", "4801", "1453")
	publicKeys = make([]*big.Int, len(recipientKeys))
	for i, sk := range recipientKeys {
		publicKeys[i] = vss.GeneratePublicKey(group, sk)
	}

	poly := polynomial.NewFrom(testutil.Ints("164102006", "43489589", "98100795"))
	w := big.NewInt(6345)
	secret := big.NewInt(1234567890)

	var err error
	dist, err = dealer.Distribute(secret, publicKeys, 3, poly, w)
	require.NoError(t, err)

	return group, dealer, publicKeys, dist
}

func TestDistributeFixedVector(t *testing.T) {
	_, dealer, publicKeys, dist := s1Fixture(t)

	assert.Equal(t, testutil.Ints("92318234", "76602245", "63484157"), dist.Commitments)
	assert.Equal(t, testutil.Int("41963410"), dist.Challenge)

	wantShares := testutil.Ints("42478042", "80117658", "86941725")
	wantResponses := testutil.Ints("151565889", "146145105", "71350321")

	for i, pk := range publicKeys {
		share, ok := dist.Share(pk)
		require.True(t, ok)
		assert.Equal(t, wantShares[i], share, "share %d", i)

		response, ok := dist.Response(pk)
		require.True(t, ok)
		assert.Equal(t, wantResponses[i], response, "response %d", i)

		position, ok := dist.Position(pk)
		require.True(t, ok)
		assert.EqualValues(t, i+1, position)
	}

	assert.True(t, dealer.VerifyDistributionShares(dist))
}

func TestExtractShareFixedVector(t *testing.T) {
	group, _, _, dist := s1Fixture(t)

	recipient := participant.New(group)
	recipient.PrivateKey = big.NewInt(7901)
	recipient.PublicKey = vss.GeneratePublicKey(group, recipient.PrivateKey)

	sb, err := recipient.ExtractShare(dist, big.NewInt(1337))
	require.NoError(t, err)

	assert.Equal(t, testutil.Int("164021044"), sb.Share)
	assert.Equal(t, testutil.Int("134883166"), sb.Challenge)
	assert.Equal(t, testutil.Int("81801891"), sb.Response)

	assert.True(t, recipient.VerifyShare(sb, dist, recipient.PublicKey))
}

func TestReconstructFixedVector(t *testing.T) {
	group, dealer, publicKeys, dist := s1Fixture(t)
	_ = dealer

	shareBoxes := []*sharebox.ShareBox{
		sharebox.New(publicKeys[0], testutil.Int("164021044"), big.NewInt(0), big.NewInt(0)),
		sharebox.New(publicKeys[1], testutil.Int("157312059"), big.NewInt(0), big.NewInt(0)),
		sharebox.New(publicKeys[2], testutil.Int("63399333"), big.NewInt(0), big.NewInt(0)),
	}

	p := participant.New(group)
	secret, skipped, err := p.Reconstruct(context.Background(), shareBoxes, dist)
	require.NoError(t, err)
	assert.Equal(t, 0, skipped)
	assert.Equal(t, testutil.Int("1234567890"), secret)
}

func TestReconstructWithCustomPositionsFixedVector(t *testing.T) {
	group := testutil.SmallGroup()

	pkA, pkB, pkD := big.NewInt(1001), big.NewInt(1002), big.NewInt(1004)

	dist := sharebox.New([]*big.Int{pkA, pkB, pkD})
	dist.Commitments = make([]*big.Int, 3)
	dist.Challenge = big.NewInt(0)
	dist.U = testutil.Int("1284073502")

	dist.Set(pkA, 1, big.NewInt(0), big.NewInt(0))
	dist.Set(pkB, 2, big.NewInt(0), big.NewInt(0))
	dist.Set(pkD, 4, big.NewInt(0), big.NewInt(0))

	shareBoxes := []*sharebox.ShareBox{
		sharebox.New(pkA, testutil.Int("164021044"), big.NewInt(0), big.NewInt(0)),
		sharebox.New(pkB, testutil.Int("157312059"), big.NewInt(0), big.NewInt(0)),
		sharebox.New(pkD, testutil.Int("59066181"), big.NewInt(0), big.NewInt(0)),
	}

	p := participant.New(group)
	secret, skipped, err := p.Reconstruct(context.Background(), shareBoxes, dist)
	require.NoError(t, err)
	assert.Equal(t, 0, skipped)
	assert.Equal(t, testutil.Int("1234567890"), secret)
}

func TestReconstructFailsWithTooFewShares(t *testing.T) {
	group, _, publicKeys, dist := s1Fixture(t)

	shareBoxes := []*sharebox.ShareBox{
		sharebox.New(publicKeys[0], testutil.Int("164021044"), big.NewInt(0), big.NewInt(0)),
	}

	p := participant.New(group)
	_, _, err := p.Reconstruct(context.Background(), shareBoxes, dist)
	assert.Error(t, err)
}

func TestDistributePanicsWhenThresholdExceedsRecipients(t *testing.T) {
	group := testutil.SmallGroup()
	dealer := participant.New(group)

	poly := polynomial.NewFrom(testutil.Ints("1", "2", "3"))
	publicKeys := testutil.Ints("100", "200")

	assert.Panics(t, func() {
		_, _ = dealer.Distribute(big.NewInt(42), publicKeys, 3, poly, big.NewInt(1))
	})
}

func TestTamperedDistributionFailsVerification(t *testing.T) {
	_, _, _, dist := s1Fixture(t)

	tampered := *dist
	tampered.Challenge = new(big.Int).Add(dist.Challenge, big.NewInt(1))

	dealer := participant.New(testutil.SmallGroup())
	assert.False(t, dealer.VerifyDistributionShares(&tampered))
}
