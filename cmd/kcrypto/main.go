package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kcrypto",
		Short: "SHA-256 and hardware-backed random numbers for boot tooling",
		Long: `kcrypto exposes the kcrypto primitives to build and boot scripts:
whole-file SHA-256 digests, digest verification, and random bytes drawn
from RDRAND with a deterministic software fallback.`,
		Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newHashCommand(),
		newVerifyCommand(),
		newRandCommand(),
		newProbeCommand(),
		newSelfTestCommand(),
	)

	return rootCmd
}
