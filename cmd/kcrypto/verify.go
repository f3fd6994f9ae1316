package main

import (
	"fmt"

	"github.com/opd-ai/go-kcrypto"
	"github.com/spf13/cobra"
)

func newVerifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <digest> [file]",
		Short: "Check a file against a hex SHA-256 digest",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			want, err := kcrypto.ParseDigest(args[0])
			if err != nil {
				return err
			}

			path := "-"
			if len(args) == 2 {
				path = args[1]
			}

			data, err := readInput(cmd, path)
			if err != nil {
				return err
			}

			if got := kcrypto.Hash(data); !got.Equal(want) {
				return fmt.Errorf("%s: digest mismatch: got %s, want %s", path, got, want)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", path)
			return nil
		},
	}

	return cmd
}
