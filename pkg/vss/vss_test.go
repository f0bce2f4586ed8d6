package vss_test

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-pvss/pvss/internal/testutil"
	"github.com/go-pvss/pvss/pkg/vss"
)

func TestNewRFC3526Group14(t *testing.T) {
	group := vss.NewRFC3526Group14()

	require.Equal(t, 2048, group.Q.BitLen())
	assert.Equal(t, big.NewInt(2), group.Generator)

	expectedSubgroup := new(big.Int).Sub(group.Q, big.NewInt(1))
	expectedSubgroup.Rsh(expectedSubgroup, 1)
	assert.Equal(t, expectedSubgroup, group.SubgroupGenerator)

	assert.True(t, group.Q.ProbablyPrime(32))
	assert.True(t, group.SubgroupGenerator.ProbablyPrime(32))
}

func TestGeneratePublicKeyFixedVector(t *testing.T) {
	group := testutil.SmallGroup()

	privateKey := big.NewInt(105929)
	publicKey := vss.GeneratePublicKey(group, privateKey)

	assert.Equal(t, big.NewInt(148446388), publicKey)
}

func TestGeneratePrivateKeyIsCoprimeToGroupOrder(t *testing.T) {
	group := testutil.SmallGroup()
	order := new(big.Int).Sub(group.Q, big.NewInt(1))

	for i := 0; i < 20; i++ {
		sk, err := vss.GeneratePrivateKey(group, rand.Reader)
		require.NoError(t, err)

		gcd := new(big.Int).GCD(nil, nil, sk, order)
		assert.Equal(t, big.NewInt(1), gcd)
	}
}

func TestEvaluateCommitmentsAtZeroReturnsConstantCommitment(t *testing.T) {
	group := testutil.SmallGroup()
	commitments := []*big.Int{big.NewInt(7), big.NewInt(11), big.NewInt(13)}

	x := vss.EvaluateCommitments(group, commitments, 0)

	assert.Equal(t, big.NewInt(7), x, "only commitments[0]^{0^0}=commitments[0] survives at position 0")
}
