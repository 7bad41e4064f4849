// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/pimmuno/protectconf/internal/keys"
)

func newSSEKeyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sse-key",
		Short: "Work with server-side-encryption master keys",
		Long: `Sse-key manages the 32-byte master keys referenced by the sse_key
option of a configuration. Keys are stored as raw bytes in a file; a
single trailing newline is tolerated.`,
	}

	cmd.AddCommand(
		newSSEKeyFingerprintCommand(),
		newSSEKeyDeriveCommand(),
		newSSEKeyGenerateCommand(),
	)

	return cmd
}

func newSSEKeyFingerprintCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint <keyfile>",
		Short: "Print a short identifier for a key without revealing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := keys.Load(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), key.Fingerprint())
			return err
		},
	}
}

func newSSEKeyDeriveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "derive <keyfile> <url>",
		Short: "Derive the per-file key for one remote object",
		Long: `Derive prints the Base64 per-file key that the pipeline will use for
the object at the given URL when sse_key_is_master is set. Useful for
decrypting individual objects out of band.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			master, err := keys.Load(args[0])
			if err != nil {
				return err
			}
			derived, err := master.PerFile(args[1])
			if err != nil {
				return err
			}
			return derived.WriteBase64(cmd.OutOrStdout())
		},
	}
}

func newSSEKeyGenerateCommand() *cobra.Command {
	var (
		outPath string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a fresh random master key",
		Long: `Generate creates a new 32-byte master key from the OS random source.
With -o the raw key is written to a file readable only by the current
user and its fingerprint is printed; without -o the key is printed as
Base64 on stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSSEKeyGenerate(cmd, outPath, force)
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write the raw key to this file instead of stdout")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite the output file if it exists")

	return cmd
}

func runSSEKeyGenerate(cmd *cobra.Command, outPath string, force bool) error {
	key, err := keys.Generate()
	if err != nil {
		return err
	}

	if outPath == "" {
		return key.WriteBase64(cmd.OutOrStdout())
	}

	if !force {
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("refusing to overwrite %s (use --force)", outPath)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	if err := os.WriteFile(outPath, key[:], 0o600); err != nil {
		return fmt.Errorf("write key file: %w", err)
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (fingerprint %s)\n", outPath, key.Fingerprint())
	return err
}
