// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/holomush/credcheck/internal/credential"
)

// NewValidateCmd creates the validate subcommand.
func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate username password",
		Short: "Check a credential against the rules without authenticating",
		Long: `Check a username and password against the credential rules only.
The first rule that fails is reported; the registry is not consulted.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := credential.Validate(args[0], args[1])
			if !result.OK {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Validation failed: %s\n", result.Reason); err != nil {
					return err
				}
				return errRefused
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Credential is valid.")
			return err
		},
	}

	cmd.Flags().SetInterspersed(false)

	return cmd
}
