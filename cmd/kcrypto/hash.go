package main

import (
	"fmt"
	"io"
	"os"

	"github.com/opd-ai/go-kcrypto"
	"github.com/spf13/cobra"
)

func newHashCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash [file...]",
		Short: "Print SHA-256 digests of files",
		Long:  "Prints one line per file in sha256sum format. With no files, or with '-', standard input is hashed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}

			for _, path := range args {
				data, err := readInput(cmd, path)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", kcrypto.Hash(data), path)
			}
			return nil
		},
	}

	return cmd
}

// readInput reads a whole file, or standard input for "-". Hashing is
// whole-buffer only, so the entire input is held in memory.
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
