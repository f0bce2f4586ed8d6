package main

import (
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-pvss/pvss/pkg/participant"
)

func newKeygenCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a participant keypair",
		RunE: func(cmd *cobra.Command, args []string) error {
			group, err := resolveGroup(groupName)
			if err != nil {
				return err
			}

			p := participant.New(group)
			if err := p.Initialize(rand.Reader); err != nil {
				return fmt.Errorf("pvss-cli: keygen: %w", err)
			}

			if err := saveParticipant(p, output); err != nil {
				return err
			}

			fmt.Printf("public key: %s\n", p.PublicKey.String())
			fmt.Printf("config saved to: %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "participant.json", "output config file")

	return cmd
}
