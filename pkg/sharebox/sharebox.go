// Package sharebox defines the immutable records exchanged between the
// dealer and recipients of a verifiable secret sharing run:
// DistributionShareBox, published once by the dealer, and ShareBox, published
// once per recipient at extraction time.
package sharebox

import "math/big"

// ShareBox is a recipient's published, publicly verifiable decrypted share.
// All fields are set once at construction and never mutated afterward.
type ShareBox struct {
	PublicKey *big.Int
	Share     *big.Int
	Challenge *big.Int
	Response  *big.Int
}

// New constructs a ShareBox. The caller retains ownership of the inputs; New
// does not copy them.
func New(publicKey, share, challenge, response *big.Int) *ShareBox {
	return &ShareBox{
		PublicKey: publicKey,
		Share:     share,
		Challenge: challenge,
		Response:  response,
	}
}

// DistributionShareBox is the dealer's published record of one secret
// sharing: the polynomial commitments, the recipient list and their assigned
// positions, each recipient's encrypted share, the one shared Fiat–Shamir
// challenge, each recipient's DLEQ response, and the masked secret.
//
// Positions, Shares and Responses are keyed by the decimal string form of a
// recipient's public key rather than by *big.Int directly, since *big.Int is
// not a valid Go map key; use the Position/Share/Response accessors rather
// than indexing the maps with a freshly allocated key.
type DistributionShareBox struct {
	Commitments []*big.Int
	PublicKeys  []*big.Int
	Positions   map[string]int64
	Shares      map[string]*big.Int
	Challenge   *big.Int
	Responses   map[string]*big.Int
	U           *big.Int
}

// New constructs an empty DistributionShareBox with N recipient slots
// pre-sized for publicKeys.
func New(publicKeys []*big.Int) *DistributionShareBox {
	return &DistributionShareBox{
		PublicKeys: publicKeys,
		Positions:  make(map[string]int64, len(publicKeys)),
		Shares:     make(map[string]*big.Int, len(publicKeys)),
		Responses:  make(map[string]*big.Int, len(publicKeys)),
	}
}

// KeyFor returns the map key a *big.Int public key is stored and looked up
// under in Positions, Shares, and Responses.
func KeyFor(publicKey *big.Int) string {
	return publicKey.String()
}

// Position returns the recipient's assigned polynomial evaluation point and
// whether one is recorded.
func (d *DistributionShareBox) Position(publicKey *big.Int) (int64, bool) {
	p, ok := d.Positions[KeyFor(publicKey)]
	return p, ok
}

// Share returns the recipient's encrypted share Y_i and whether one is
// recorded.
func (d *DistributionShareBox) Share(publicKey *big.Int) (*big.Int, bool) {
	s, ok := d.Shares[KeyFor(publicKey)]
	return s, ok
}

// Response returns the recipient's DLEQ response r_i and whether one is
// recorded.
func (d *DistributionShareBox) Response(publicKey *big.Int) (*big.Int, bool) {
	r, ok := d.Responses[KeyFor(publicKey)]
	return r, ok
}

// Set records the position, encrypted share, and DLEQ response for one
// recipient, keyed by its public key.
func (d *DistributionShareBox) Set(publicKey *big.Int, position int64, share, response *big.Int) {
	key := KeyFor(publicKey)
	d.Positions[key] = position
	d.Shares[key] = share
	d.Responses[key] = response
}
