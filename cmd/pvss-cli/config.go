package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"github.com/go-pvss/pvss/pkg/participant"
	"github.com/go-pvss/pvss/pkg/vss"
)

// participantConfig is the on-disk form of a Participant's keypair, stored
// as decimal strings so a config file is readable without a hex decoder.
type participantConfig struct {
	PrivateKey string `json:"private_key"`
	PublicKey  string `json:"public_key"`
}

func loadParticipant(group *vss.Group, path string) (*participant.Participant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pvss-cli: reading participant config %s: %w", path, err)
	}

	var cfg participantConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("pvss-cli: parsing participant config %s: %w", path, err)
	}

	p := participant.New(group)

	if cfg.PrivateKey != "" {
		sk, ok := new(big.Int).SetString(cfg.PrivateKey, 10)
		if !ok {
			return nil, fmt.Errorf("pvss-cli: participant config %s: malformed private key", path)
		}
		p.PrivateKey = sk
	}

	pk, ok := new(big.Int).SetString(cfg.PublicKey, 10)
	if !ok {
		return nil, fmt.Errorf("pvss-cli: participant config %s: malformed public key", path)
	}
	p.PublicKey = pk

	return p, nil
}

func saveParticipant(p *participant.Participant, path string) error {
	cfg := participantConfig{PublicKey: p.PublicKey.String()}
	if p.PrivateKey != nil {
		cfg.PrivateKey = p.PrivateKey.String()
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("pvss-cli: marshaling participant config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("pvss-cli: writing participant config %s: %w", path, err)
	}

	return nil
}

// loadPublicKeys reads a JSON array of decimal-string public keys.
func loadPublicKeys(path string) ([]*big.Int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pvss-cli: reading public key list %s: %w", path, err)
	}

	var decimals []string
	if err := json.Unmarshal(data, &decimals); err != nil {
		return nil, fmt.Errorf("pvss-cli: parsing public key list %s: %w", path, err)
	}

	keys := make([]*big.Int, len(decimals))
	for i, d := range decimals {
		n, ok := new(big.Int).SetString(d, 10)
		if !ok {
			return nil, fmt.Errorf("pvss-cli: public key list %s: malformed entry %q", path, d)
		}
		keys[i] = n
	}

	return keys, nil
}

func resolveGroup(name string) (*vss.Group, error) {
	switch name {
	case "rfc3526", "":
		return vss.NewRFC3526Group14(), nil
	case "small":
		return vss.NewGroup(big.NewInt(179426549), big.NewInt(1301081), big.NewInt(15486487), 28), nil
	default:
		return nil, fmt.Errorf("pvss-cli: unknown group %q, want \"rfc3526\" or \"small\"", name)
	}
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("pvss-cli: reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("pvss-cli: parsing %s: %w", path, err)
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("pvss-cli: marshaling %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("pvss-cli: writing %s: %w", path, err)
	}
	return nil
}
