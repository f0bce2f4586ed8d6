package participant

import (
	"context"
	"math/big"

	"github.com/go-pvss/pvss/pkg/sharebox"
	"github.com/go-pvss/pvss/pkg/vss"
)

// Reconstruct recovers the shared secret from at least t ShareBoxes. It
// returns the recovered secret, the number of shares skipped because their
// Lagrange coefficient was not invertible, and an error only for malformed
// input.
func (p *Participant) Reconstruct(ctx context.Context, shareBoxes []*sharebox.ShareBox, dist *sharebox.DistributionShareBox) (*big.Int, int, error) {
	return vss.Reconstruct(ctx, p.Group, shareBoxes, dist)
}
