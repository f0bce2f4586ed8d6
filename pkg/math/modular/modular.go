// Package modular implements the signed big-integer primitives the VSS
// engine needs on top of math/big: the extended Euclidean algorithm, modular
// inverse, absolute value, and the Lagrange interpolation coefficient used
// to reconstruct a secret "in the exponent".
package modular

import "math/big"

// ExtendedGCD returns (g, x, y) such that a*x + b*y = g = gcd(a, b).
// It is the textbook recursive extended Euclidean algorithm and must
// tolerate negative intermediate values, since Lagrange numerators and
// denominators are signed.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	if a.Sign() == 0 {
		return new(big.Int).Set(b), big.NewInt(0), big.NewInt(1)
	}

	q := new(big.Int)
	r := new(big.Int)
	q.QuoRem(b, a, r)

	g1, x1, y1 := ExtendedGCD(r, a)

	// x = y1 - q*x1
	x = new(big.Int).Mul(q, x1)
	x.Sub(y1, x)
	y = x1

	return g1, x, y
}

// ModInverse returns ((x mod m) + m) mod m such that a*x ≡ 1 (mod m), or
// false if gcd(a, m) != 1 and no inverse exists.
func ModInverse(a, m *big.Int) (*big.Int, bool) {
	g, x, _ := ExtendedGCD(a, m)
	if g.Cmp(big.NewInt(1)) != 0 {
		return nil, false
	}

	result := new(big.Int).Mod(x, m)
	result.Add(result, m)
	result.Mod(result, m)

	return result, true
}

// Abs returns the magnitude of n.
func Abs(n *big.Int) *big.Int {
	return new(big.Int).Abs(n)
}

// LagrangeCoefficient returns the unreduced rational (numerator, denominator)
// of the Lagrange basis coefficient for position i over the position set S:
//
//	λ_i = ∏_{j ∈ S, j≠i} j / (j−i)
//
// If i is not a member of S, (0, 1) is returned.
//
// The product iterates j over {1, ..., max(S)}, skipping values not in S —
// not over S itself. This matches the reference implementation this scheme
// was distilled from and is required for the reconstruction vectors in the
// test suite to match. It differs from the textbook definition only when S
// contains positions below 1 (such as 0), which are left out of the product.
func LagrangeCoefficient(i int64, positions []int64) (num, den *big.Int) {
	if !containsInt64(positions, i) {
		return big.NewInt(0), big.NewInt(1)
	}

	num = big.NewInt(1)
	den = big.NewInt(1)

	max := positions[0]
	for _, p := range positions {
		if p > max {
			max = p
		}
	}

	for j := int64(1); j <= max; j++ {
		if j == i || !containsInt64(positions, j) {
			continue
		}
		num.Mul(num, big.NewInt(j))
		den.Mul(den, big.NewInt(j-i))
	}

	return num, den
}

func containsInt64(values []int64, target int64) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
