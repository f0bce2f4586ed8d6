package vss

import "math/big"

// EvaluateCommitments returns X = Π_j commitments[j]^{position^j mod (Q-1)} mod Q,
// the polynomial commitment evaluated "in the exponent" at the given
// position. Both the dealer (while distributing) and a verifier (while
// replaying the transcript) compute this same value independently.
func EvaluateCommitments(group *Group, commitments []*big.Int, position int64) *big.Int {
	qMinus1 := new(big.Int).Sub(group.Q, big.NewInt(1))

	x := big.NewInt(1)
	exponent := big.NewInt(1)
	positionBig := big.NewInt(position)

	for _, commitment := range commitments {
		term := new(big.Int).Exp(commitment, exponent, group.Q)
		x.Mul(x, term)
		x.Mod(x, group.Q)

		exponent.Mul(exponent, positionBig)
		exponent.Mod(exponent, qMinus1)
	}

	return x
}
