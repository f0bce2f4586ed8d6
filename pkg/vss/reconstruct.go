package vss

import (
	"context"
	"crypto/sha256"
	"fmt"
	"math/big"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/go-pvss/pvss/internal/pvsslog"
	"github.com/go-pvss/pvss/pkg/math/modular"
	"github.com/go-pvss/pvss/pkg/sharebox"
)

// computeFactor returns share^λ mod Q, where λ is the Lagrange basis
// coefficient for position over positions. ok is false when λ's denominator,
// or the reconstructed factor itself, has no modular inverse — the caller
// should then skip this share's contribution to the reconstruction product
// rather than trust a degenerate result.
func computeFactor(group *Group, position int64, share *big.Int, positions []int64) (*big.Int, bool) {
	qMinus1 := new(big.Int).Sub(group.Q, big.NewInt(1))

	num, den := modular.LagrangeCoefficient(position, positions)
	absDen := modular.Abs(den)

	var exponent *big.Int

	if new(big.Int).Rem(num, den).Sign() == 0 {
		exponent = new(big.Int).Quo(num, absDen)
	} else {
		gcd := new(big.Int).GCD(nil, nil, num, absDen)

		reducedNum := new(big.Int).Quo(num, gcd)
		reducedDen := new(big.Int).Quo(absDen, gcd)

		invDen, ok := modular.ModInverse(reducedDen, qMinus1)
		if !ok {
			return nil, false
		}

		exponent = new(big.Int).Mul(reducedNum, invDen)
		exponent.Mod(exponent, qMinus1)
	}

	factor := new(big.Int).Exp(share, exponent, group.Q)

	sign := new(big.Int).Mul(num, den)
	if sign.Sign() < 0 {
		inverse, ok := modular.ModInverse(factor, group.Q)
		if !ok {
			return nil, false
		}
		factor = inverse
	}

	return factor, true
}

// Reconstruct recovers the shared secret from at least t ShareBoxes (t being
// the number of polynomial commitments in dist), folding each recipient's
// decrypted share into the reconstruction product via its Lagrange
// coefficient. Per-position factors are computed concurrently.
//
// It returns the recovered secret, the number of shares skipped because
// their Lagrange coefficient was not invertible (0 in the ordinary case),
// and an error only for malformed input (too few shares, or a share whose
// public key has no recorded position).
func Reconstruct(ctx context.Context, group *Group, shareBoxes []*sharebox.ShareBox, dist *sharebox.DistributionShareBox) (*big.Int, int, error) {
	if len(shareBoxes) < len(dist.Commitments) {
		return nil, 0, fmt.Errorf("vss: reconstruct: need at least %d shares, got %d", len(dist.Commitments), len(shareBoxes))
	}

	type entry struct {
		position int64
		share    *big.Int
	}

	seen := make(map[int64]bool, len(shareBoxes))
	entries := make([]entry, 0, len(shareBoxes))
	positions := make([]int64, 0, len(shareBoxes))

	for _, sb := range shareBoxes {
		position, ok := dist.Position(sb.PublicKey)
		if !ok {
			return nil, 0, fmt.Errorf("vss: reconstruct: no recorded position for public key %s", sb.PublicKey.String())
		}
		if seen[position] {
			continue
		}
		seen[position] = true
		entries = append(entries, entry{position: position, share: sb.Share})
		positions = append(positions, position)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].position < entries[j].position })
	sort.Slice(positions, func(i, j int) bool { return positions[i] < positions[j] })

	factors := make([]*big.Int, len(entries))
	skipped := make([]bool, len(entries))

	eg, _ := errgroup.WithContext(ctx)
	for i, e := range entries {
		i, e := i, e
		eg.Go(func() error {
			factor, ok := computeFactor(group, e.position, e.share, positions)
			if !ok {
				skipped[i] = true
				pvsslog.Warn("vss: reconstruct: skipping share", "position", e.position, "reason", ErrUninvertibleCoefficient.Error())
				return nil
			}
			factors[i] = factor
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}

	secret := big.NewInt(1)
	skippedCount := 0
	for i, factor := range factors {
		if skipped[i] {
			skippedCount++
			continue
		}
		secret.Mul(secret, factor)
		secret.Mod(secret, group.Q)
	}

	digest := sha256.Sum256([]byte(secret.String()))
	mask := new(big.Int).SetBytes(digest[:])
	mask.Mod(mask, group.Q)

	decrypted := new(big.Int).Xor(mask, dist.U)

	pvsslog.Info("vss: reconstruct complete", "shares_used", len(entries), "skipped", skippedCount)

	return decrypted, skippedCount, nil
}
