package main

import (
	"fmt"
	"runtime"

	"github.com/opd-ai/go-kcrypto"
	"github.com/spf13/cobra"
)

func newProbeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Report hardware random-number support",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(out, "rdrand (cpuid): %s\n", yesNo(kcrypto.RDRAND().Supported()))
			fmt.Fprintf(out, "rdrand (startup): %s\n", yesNo(kcrypto.StartupRDRAND().Supported()))
			return nil
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
