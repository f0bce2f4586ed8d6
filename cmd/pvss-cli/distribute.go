package main

import (
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-pvss/pvss/pkg/participant"
	"github.com/go-pvss/pvss/pkg/secretcodec"
)

func newDistributeCmd() *cobra.Command {
	var (
		publicKeysPath string
		threshold      int
		secretText     string
		output         string
	)

	cmd := &cobra.Command{
		Use:   "distribute",
		Short: "Deal a secret to a set of recipients",
		RunE: func(cmd *cobra.Command, args []string) error {
			group, err := resolveGroup(groupName)
			if err != nil {
				return err
			}

			publicKeys, err := loadPublicKeys(publicKeysPath)
			if err != nil {
				return err
			}

			dealer := participant.New(group)
			secret := secretcodec.Encode(secretText)

			dist, err := dealer.DistributeSecret(rand.Reader, secret, publicKeys, threshold)
			if err != nil {
				return fmt.Errorf("pvss-cli: distribute: %w", err)
			}

			if err := writeJSON(output, dist); err != nil {
				return err
			}

			fmt.Printf("distributed to %d recipients, threshold %d\n", len(publicKeys), threshold)
			fmt.Printf("distribution saved to: %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVar(&publicKeysPath, "public-keys", "", "JSON array of recipient public keys, as decimal strings (required)")
	cmd.Flags().IntVarP(&threshold, "threshold", "t", 0, "reconstruction threshold (required)")
	cmd.Flags().StringVar(&secretText, "secret", "", "secret message to distribute, as UTF-8 text (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "distribution.json", "output distribution file")
	cmd.MarkFlagRequired("public-keys")
	cmd.MarkFlagRequired("threshold")
	cmd.MarkFlagRequired("secret")

	return cmd
}
