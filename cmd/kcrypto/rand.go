package main

import (
	"encoding/hex"
	"fmt"

	"github.com/opd-ai/go-kcrypto"
	"github.com/spf13/cobra"
)

func newRandCommand() *cobra.Command {
	var (
		n            int
		fallback     bool
		startupProbe bool
		seed         string
		format       string
	)

	cmd := &cobra.Command{
		Use:   "rand",
		Short: "Print random bytes",
		Long: `Draws bytes from a kcrypto generator. RDRAND is used when the CPU
supports it; --fallback forces the deterministic xorshift sequence, which
is reproducible and NOT suitable for keys.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 0 {
				return fmt.Errorf("--bytes must not be negative, got %d", n)
			}
			if format != "hex" && format != "raw" {
				return fmt.Errorf("unknown format %q (use 'hex' or 'raw')", format)
			}

			config := kcrypto.Config{}
			if fallback {
				config.Flags |= kcrypto.FlagNoHardware
			}
			if startupProbe {
				config.Flags |= kcrypto.FlagStartupProbe
			}
			if cmd.Flags().Changed("seed") {
				config.Seed = []byte(seed)
			}

			gen, err := kcrypto.New(config)
			if err != nil {
				return err
			}

			buf := make([]byte, n)
			gen.Fill(buf)

			out := cmd.OutOrStdout()
			if format == "raw" {
				_, err = out.Write(buf)
				return err
			}
			_, err = fmt.Fprintln(out, hex.EncodeToString(buf))
			return err
		},
	}

	cmd.Flags().IntVarP(&n, "bytes", "n", 32, "Number of bytes to print")
	cmd.Flags().BoolVar(&fallback, "fallback", false, "Disable RDRAND and use the software sequence only")
	cmd.Flags().BoolVar(&startupProbe, "startup-probe", false, "Use CPU features detected at start instead of probing per draw")
	cmd.Flags().StringVar(&seed, "seed", "", "Seed for the software sequence")
	cmd.Flags().StringVarP(&format, "format", "f", "hex", "Output format: hex or raw")

	return cmd
}
