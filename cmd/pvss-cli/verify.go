package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/go-pvss/pvss/pkg/sharebox"
	"github.com/go-pvss/pvss/pkg/vss"
)

func newVerifyDistributionCmd() *cobra.Command {
	var distributionPath string

	cmd := &cobra.Command{
		Use:   "verify-distribution",
		Short: "Verify a dealer's published distribution",
		RunE: func(cmd *cobra.Command, args []string) error {
			group, err := resolveGroup(groupName)
			if err != nil {
				return err
			}

			var dist sharebox.DistributionShareBox
			if err := readJSON(distributionPath, &dist); err != nil {
				return err
			}

			if !vss.VerifyDistributionShares(group, &dist) {
				return fmt.Errorf("pvss-cli: verify-distribution: %s does not verify", distributionPath)
			}

			fmt.Println("distribution verifies")
			return nil
		},
	}

	cmd.Flags().StringVar(&distributionPath, "distribution", "", "distribution file to verify (required)")
	cmd.MarkFlagRequired("distribution")

	return cmd
}

func newVerifyShareCmd() *cobra.Command {
	var (
		shareBoxPath     string
		distributionPath string
		publicKeyText    string
	)

	cmd := &cobra.Command{
		Use:   "verify-share",
		Short: "Verify a recipient's decrypted share against a distribution",
		RunE: func(cmd *cobra.Command, args []string) error {
			group, err := resolveGroup(groupName)
			if err != nil {
				return err
			}

			var sb sharebox.ShareBox
			if err := readJSON(shareBoxPath, &sb); err != nil {
				return err
			}

			var dist sharebox.DistributionShareBox
			if err := readJSON(distributionPath, &dist); err != nil {
				return err
			}

			publicKey := sb.PublicKey
			if publicKeyText != "" {
				n, ok := new(big.Int).SetString(publicKeyText, 10)
				if !ok {
					return fmt.Errorf("pvss-cli: verify-share: malformed --public-key %q", publicKeyText)
				}
				publicKey = n
			}

			if !vss.VerifyShareAgainstDistribution(group, &sb, &dist, publicKey) {
				return fmt.Errorf("pvss-cli: verify-share: %s does not verify", shareBoxPath)
			}

			fmt.Println("share verifies")
			return nil
		},
	}

	cmd.Flags().StringVar(&shareBoxPath, "sharebox", "", "share box file to verify (required)")
	cmd.Flags().StringVar(&distributionPath, "distribution", "", "distribution the share was extracted from (required)")
	cmd.Flags().StringVar(&publicKeyText, "public-key", "", "owning public key, decimal (defaults to the share box's own PublicKey field)")
	cmd.MarkFlagRequired("sharebox")
	cmd.MarkFlagRequired("distribution")

	return cmd
}
