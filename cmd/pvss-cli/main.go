// Command pvss-cli drives one participant of a publicly verifiable secret
// sharing run from the command line: generate a keypair, deal a secret to a
// set of recipients, extract and verify shares, and reconstruct the secret
// once enough shares are in hand.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-pvss/pvss/internal/pvsslog"
)

var (
	groupName string
	logLevel  string

	rootCmd = &cobra.Command{
		Use:   "pvss-cli",
		Short: "Publicly verifiable secret sharing over a safe-prime group",
		Long: `pvss-cli deals a secret to a set of recipients using Schoenmakers'
publicly verifiable secret sharing scheme: a dealer commits to a sharing
polynomial and proves, via a non-interactive discrete-log-equality proof,
that every recipient's encrypted share is consistent with those commitments.
Each recipient independently verifies the distribution, decrypts and proves
its own share, and any sufficiently large subset of shares reconstructs the
original secret.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			pvsslog.Init(logLevel, os.Stderr)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&groupName, "group", "rfc3526", `group to operate over: "rfc3526" (2048-bit production group) or "small" (fast test group)`)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error, disabled")

	rootCmd.AddCommand(
		newKeygenCmd(),
		newDistributeCmd(),
		newExtractCmd(),
		newVerifyDistributionCmd(),
		newVerifyShareCmd(),
		newReconstructCmd(),
		newDemoCmd(),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
