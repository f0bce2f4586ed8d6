package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-pvss/pvss/pkg/secretcodec"
	"github.com/go-pvss/pvss/pkg/sharebox"
	"github.com/go-pvss/pvss/pkg/vss"
)

func newReconstructCmd() *cobra.Command {
	var (
		distributionPath string
		shareBoxPaths    []string
		asText           bool
	)

	cmd := &cobra.Command{
		Use:   "reconstruct",
		Short: "Reconstruct the shared secret from a threshold of share boxes",
		RunE: func(cmd *cobra.Command, args []string) error {
			group, err := resolveGroup(groupName)
			if err != nil {
				return err
			}

			var dist sharebox.DistributionShareBox
			if err := readJSON(distributionPath, &dist); err != nil {
				return err
			}

			shareBoxes := make([]*sharebox.ShareBox, len(shareBoxPaths))
			for i, path := range shareBoxPaths {
				var sb sharebox.ShareBox
				if err := readJSON(path, &sb); err != nil {
					return err
				}
				shareBoxes[i] = &sb
			}

			secret, skipped, err := vss.Reconstruct(context.Background(), group, shareBoxes, &dist)
			if err != nil {
				return fmt.Errorf("pvss-cli: reconstruct: %w", err)
			}
			if skipped > 0 {
				fmt.Printf("warning: skipped %d share(s) with an uninvertible lagrange coefficient\n", skipped)
			}

			if asText {
				message, err := secretcodec.Decode(secret)
				if err != nil {
					return fmt.Errorf("pvss-cli: reconstruct: %w", err)
				}
				fmt.Println(message)
				return nil
			}

			fmt.Println(secret.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&distributionPath, "distribution", "", "distribution file (required)")
	cmd.Flags().StringSliceVar(&shareBoxPaths, "sharebox", nil, "share box file, repeatable; at least t are required (required)")
	cmd.Flags().BoolVar(&asText, "text", true, "decode the reconstructed secret as UTF-8 text rather than printing its decimal integer form")
	cmd.MarkFlagRequired("distribution")
	cmd.MarkFlagRequired("sharebox")

	return cmd
}
