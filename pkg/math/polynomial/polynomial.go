// Package polynomial implements the Shamir secret-sharing polynomial
// p(X) = a_0 + a_1*X + ... + a_{t-1}*X^{t-1} over the integers.
package polynomial

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// Polynomial is an ordered sequence of coefficients a_0, ..., a_{t-1}.
// a_0 is the pre-secret shared by the scheme.
type Polynomial struct {
	Coefficients []*big.Int
}

// NewRandom samples a polynomial of the given degree with coefficients drawn
// uniformly from [0, q) using the supplied randomness source. degree+1
// coefficients are produced; degree 0 yields a constant polynomial.
func NewRandom(rnd io.Reader, degree int, q *big.Int) (*Polynomial, error) {
	if degree < 0 {
		return nil, fmt.Errorf("polynomial: negative degree %d", degree)
	}

	coeffs := make([]*big.Int, degree+1)
	for i := range coeffs {
		c, err := rand.Int(rnd, q)
		if err != nil {
			return nil, fmt.Errorf("polynomial: sampling coefficient %d: %w", i, err)
		}
		coeffs[i] = c
	}

	return &Polynomial{Coefficients: coeffs}, nil
}

// NewFrom adopts caller-supplied coefficients, in a_0..a_{t-1} order. Used by
// tests and deterministic dealing.
func NewFrom(coefficients []*big.Int) *Polynomial {
	coeffs := make([]*big.Int, len(coefficients))
	for i, c := range coefficients {
		coeffs[i] = new(big.Int).Set(c)
	}
	return &Polynomial{Coefficients: coeffs}
}

// Degree returns t-1, the polynomial's degree.
func (p *Polynomial) Degree() int {
	return len(p.Coefficients) - 1
}

// Evaluate returns p(x) = Σ a_i * x^i over the integers, via Horner's
// method. No modular reduction is applied: callers reduce modulo q or
// modulo (q-1) as their use case requires, since this implementation shares
// one polynomial between the exponent domain (mod q-1) and the commitment
// domain (mod q).
func (p *Polynomial) Evaluate(x *big.Int) *big.Int {
	result := new(big.Int)
	for i := len(p.Coefficients) - 1; i >= 0; i-- {
		result.Mul(result, x)
		result.Add(result, p.Coefficients[i])
	}
	return result
}
