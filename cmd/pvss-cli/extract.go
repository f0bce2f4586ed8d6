package main

import (
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-pvss/pvss/pkg/sharebox"
)

func newExtractCmd() *cobra.Command {
	var (
		participantPath  string
		distributionPath string
		output           string
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Decrypt and prove this participant's share of a distribution",
		RunE: func(cmd *cobra.Command, args []string) error {
			group, err := resolveGroup(groupName)
			if err != nil {
				return err
			}

			p, err := loadParticipant(group, participantPath)
			if err != nil {
				return err
			}
			if p.PrivateKey == nil {
				return fmt.Errorf("pvss-cli: extract: %s has no recorded private key", participantPath)
			}

			var dist sharebox.DistributionShareBox
			if err := readJSON(distributionPath, &dist); err != nil {
				return err
			}

			sb, err := p.ExtractSecretShare(rand.Reader, &dist)
			if err != nil {
				return fmt.Errorf("pvss-cli: extract: %w", err)
			}

			if err := writeJSON(output, sb); err != nil {
				return err
			}

			fmt.Printf("share saved to: %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVar(&participantPath, "participant", "", "this participant's config file (required)")
	cmd.Flags().StringVar(&distributionPath, "distribution", "", "distribution file to extract from (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "sharebox.json", "output share box file")
	cmd.MarkFlagRequired("participant")
	cmd.MarkFlagRequired("distribution")

	return cmd
}
