package main

import (
	"fmt"

	"github.com/opd-ai/go-kcrypto"
	"github.com/spf13/cobra"
)

func newSelfTestCommand() *cobra.Command {
	var vectors string

	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Run SHA-256 known-answer tests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := kcrypto.SelfTest(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "built-in vectors: OK")

			if vectors == "" {
				return nil
			}

			suite, err := kcrypto.LoadTestVectors(vectors)
			if err != nil {
				return err
			}
			if err := suite.Check(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d vectors OK\n", vectors, len(suite.Vectors))
			return nil
		},
	}

	cmd.Flags().StringVar(&vectors, "vectors", "", "Additional JSON vector file to check")

	return cmd
}
