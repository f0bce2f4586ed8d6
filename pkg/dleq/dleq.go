// Package dleq implements the non-interactive Chaum–Pedersen
// discrete-log-equality proof (DLEQ) used to convince a verifier that
// log_g1(h1) == log_g2(h2) without revealing the shared discrete log, and the
// shared Fiat–Shamir transcript that lets a dealer fold many such statements
// into a single challenge scalar.
package dleq

import (
	"crypto/sha256"
	"hash"
	"math/big"
)

var one = big.NewInt(1)

// Statement is one DLEQ instance: the claim that log_g1(h1) == log_g2(h2).
type Statement struct {
	G1, H1, G2, H2 *big.Int
}

// Commitment is the prover's first move, a1 = g1^w mod q and a2 = g2^w mod q,
// for witness w.
type Commitment struct {
	A1, A2 *big.Int
}

// Commit produces the prover's commitment for a freshly sampled witness w.
// The caller supplies w; the same witness may be reused across several
// statements that will share one Fiat–Shamir transcript (spec §4.4).
func Commit(stmt Statement, w, q *big.Int) Commitment {
	return Commitment{
		A1: new(big.Int).Exp(stmt.G1, w, q),
		A2: new(big.Int).Exp(stmt.G2, w, q),
	}
}

// Respond computes the prover's response r = (w − alpha*c) mod (q−1), using
// floor-mod so the result lands in [0, q−1).
func Respond(w, alpha, c, q *big.Int) *big.Int {
	qMinus1 := new(big.Int).Sub(q, one)

	r := new(big.Int).Mul(alpha, c)
	r.Sub(w, r)
	r.Mod(r, qMinus1)

	return r
}

// Recompute derives the commitment a verifier would see from a (response,
// challenge) pair, without knowledge of the witness: a1' = g1^r * h1^c mod q,
// a2' = g2^r * h2^c mod q. For an honest prover this equals the commitment
// Commit produced for the witness that yielded r.
func Recompute(stmt Statement, r, c, q *big.Int) Commitment {
	a1 := new(big.Int).Exp(stmt.G1, r, q)
	h1c := new(big.Int).Exp(stmt.H1, c, q)
	a1.Mul(a1, h1c)
	a1.Mod(a1, q)

	a2 := new(big.Int).Exp(stmt.G2, r, q)
	h2c := new(big.Int).Exp(stmt.H2, c, q)
	a2.Mul(a2, h2c)
	a2.Mod(a2, q)

	return Commitment{A1: a1, A2: a2}
}

// Transcript accumulates the Fiat–Shamir challenge hash across one or more
// statement commitments. Absorption order is h1, h2, a1, a2 per statement, as
// the ASCII base-10 decimal encoding of each value with no separators; the
// order must match bit-for-bit between prover and verifier.
type Transcript struct {
	h hash.Hash
}

// NewTranscript returns an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{h: sha256.New()}
}

// Absorb folds one statement's (h1, h2) and its commitment (a1, a2) into the
// transcript.
func (t *Transcript) Absorb(stmt Statement, commitment Commitment) {
	t.h.Write([]byte(stmt.H1.String()))
	t.h.Write([]byte(stmt.H2.String()))
	t.h.Write([]byte(commitment.A1.String()))
	t.h.Write([]byte(commitment.A2.String()))
}

// Challenge finalizes the transcript to a 256-bit digest, interpreted as a
// big-endian unsigned integer and reduced modulo (q−1). Challenge does not
// consume the transcript; further statements may still be absorbed and a new
// challenge derived, though the scheme only ever finalizes once per
// distribution or extraction.
func (t *Transcript) Challenge(q *big.Int) *big.Int {
	digest := t.h.Sum(nil)

	qMinus1 := new(big.Int).Sub(q, one)
	c := new(big.Int).SetBytes(digest)
	c.Mod(c, qMinus1)

	return c
}

// Verify checks a single-statement proof (challenge, response) against stmt
// over modulus q by replaying the prover's commitment and transcript.
func Verify(stmt Statement, challenge, response, q *big.Int) bool {
	commitment := Recompute(stmt, response, challenge, q)

	t := NewTranscript()
	t.Absorb(stmt, commitment)

	return t.Challenge(q).Cmp(challenge) == 0
}
