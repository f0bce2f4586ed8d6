package sharebox

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/fxamacker/cbor/v2"
)

// shareBoxWire is the wire representation of a ShareBox: big integers encoded
// as big-endian byte slices, the same convention the dealer config codec uses
// for curve scalars.
type shareBoxWire struct {
	PublicKey []byte `cbor:"1,keyasint" json:"public_key"`
	Share     []byte `cbor:"2,keyasint" json:"share"`
	Challenge []byte `cbor:"3,keyasint" json:"challenge"`
	Response  []byte `cbor:"4,keyasint" json:"response"`
}

func (sb *ShareBox) toWire() shareBoxWire {
	return shareBoxWire{
		PublicKey: sb.PublicKey.Bytes(),
		Share:     sb.Share.Bytes(),
		Challenge: sb.Challenge.Bytes(),
		Response:  sb.Response.Bytes(),
	}
}

func (sb *ShareBox) fromWire(w shareBoxWire) {
	sb.PublicKey = new(big.Int).SetBytes(w.PublicKey)
	sb.Share = new(big.Int).SetBytes(w.Share)
	sb.Challenge = new(big.Int).SetBytes(w.Challenge)
	sb.Response = new(big.Int).SetBytes(w.Response)
}

// MarshalCBOR implements cbor.Marshaler.
func (sb *ShareBox) MarshalCBOR() ([]byte, error) {
	data, err := cbor.Marshal(sb.toWire())
	if err != nil {
		return nil, fmt.Errorf("sharebox: marshal ShareBox: %w", err)
	}
	return data, nil
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (sb *ShareBox) UnmarshalCBOR(data []byte) error {
	var w shareBoxWire
	if err := cbor.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("sharebox: unmarshal ShareBox: %w", err)
	}
	sb.fromWire(w)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (sb *ShareBox) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(sb.toWire())
	if err != nil {
		return nil, fmt.Errorf("sharebox: marshal ShareBox: %w", err)
	}
	return data, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (sb *ShareBox) UnmarshalJSON(data []byte) error {
	var w shareBoxWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("sharebox: unmarshal ShareBox: %w", err)
	}
	sb.fromWire(w)
	return nil
}

// distributionShareBoxWire is the wire representation of a
// DistributionShareBox. Positions/Shares/Responses, map-keyed in memory by
// decimal public key string, flatten to parallel slices indexed the same way
// as PublicKeys so the wire format needs no map-of-bytes-keys encoding.
type distributionShareBoxWire struct {
	Commitments [][]byte `cbor:"1,keyasint" json:"commitments"`
	PublicKeys  [][]byte `cbor:"2,keyasint" json:"public_keys"`
	Positions   []int64  `cbor:"3,keyasint" json:"positions"`
	Shares      [][]byte `cbor:"4,keyasint" json:"shares"`
	Challenge   []byte   `cbor:"5,keyasint" json:"challenge"`
	Responses   [][]byte `cbor:"6,keyasint" json:"responses"`
	U           []byte   `cbor:"7,keyasint" json:"u"`
}

func (d *DistributionShareBox) toWire() (distributionShareBoxWire, error) {
	w := distributionShareBoxWire{
		Commitments: make([][]byte, len(d.Commitments)),
		PublicKeys:  make([][]byte, len(d.PublicKeys)),
		Positions:   make([]int64, len(d.PublicKeys)),
		Shares:      make([][]byte, len(d.PublicKeys)),
		Responses:   make([][]byte, len(d.PublicKeys)),
		Challenge:   d.Challenge.Bytes(),
		U:           d.U.Bytes(),
	}

	for i, c := range d.Commitments {
		w.Commitments[i] = c.Bytes()
	}

	for i, pk := range d.PublicKeys {
		w.PublicKeys[i] = pk.Bytes()

		position, ok := d.Position(pk)
		if !ok {
			return distributionShareBoxWire{}, fmt.Errorf("sharebox: marshal DistributionShareBox: missing position for recipient %d", i)
		}
		w.Positions[i] = position

		share, ok := d.Share(pk)
		if !ok {
			return distributionShareBoxWire{}, fmt.Errorf("sharebox: marshal DistributionShareBox: missing share for recipient %d", i)
		}
		w.Shares[i] = share.Bytes()

		response, ok := d.Response(pk)
		if !ok {
			return distributionShareBoxWire{}, fmt.Errorf("sharebox: marshal DistributionShareBox: missing response for recipient %d", i)
		}
		w.Responses[i] = response.Bytes()
	}

	return w, nil
}

func (d *DistributionShareBox) fromWire(w distributionShareBoxWire) error {
	if len(w.PublicKeys) != len(w.Positions) || len(w.PublicKeys) != len(w.Shares) || len(w.PublicKeys) != len(w.Responses) {
		return fmt.Errorf("sharebox: unmarshal DistributionShareBox: mismatched recipient slice lengths")
	}

	commitments := make([]*big.Int, len(w.Commitments))
	for i, c := range w.Commitments {
		commitments[i] = new(big.Int).SetBytes(c)
	}

	publicKeys := make([]*big.Int, len(w.PublicKeys))
	for i, pk := range w.PublicKeys {
		publicKeys[i] = new(big.Int).SetBytes(pk)
	}

	*d = *New(publicKeys)
	d.Commitments = commitments
	d.Challenge = new(big.Int).SetBytes(w.Challenge)
	d.U = new(big.Int).SetBytes(w.U)

	for i, pk := range publicKeys {
		d.Set(pk, w.Positions[i], new(big.Int).SetBytes(w.Shares[i]), new(big.Int).SetBytes(w.Responses[i]))
	}

	return nil
}

// MarshalCBOR implements cbor.Marshaler.
func (d *DistributionShareBox) MarshalCBOR() ([]byte, error) {
	w, err := d.toWire()
	if err != nil {
		return nil, err
	}
	data, err := cbor.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("sharebox: marshal DistributionShareBox: %w", err)
	}
	return data, nil
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (d *DistributionShareBox) UnmarshalCBOR(data []byte) error {
	var w distributionShareBoxWire
	if err := cbor.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("sharebox: unmarshal DistributionShareBox: %w", err)
	}
	return d.fromWire(w)
}

// MarshalJSON implements json.Marshaler.
func (d *DistributionShareBox) MarshalJSON() ([]byte, error) {
	w, err := d.toWire()
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("sharebox: marshal DistributionShareBox: %w", err)
	}
	return data, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DistributionShareBox) UnmarshalJSON(data []byte) error {
	var w distributionShareBoxWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("sharebox: unmarshal DistributionShareBox: %w", err)
	}
	return d.fromWire(w)
}
