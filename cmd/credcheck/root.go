// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/holomush/credcheck/internal/auth"
	"github.com/holomush/credcheck/internal/config"
	"github.com/holomush/credcheck/internal/console"
	"github.com/holomush/credcheck/internal/credential"
	"github.com/holomush/credcheck/internal/logging"
	"github.com/holomush/credcheck/pkg/errutil"
)

const serviceName = "credcheck"

// errRefused is returned when a credential fails validation or authentication.
// The reason has already been written to stdout.
var errRefused = errors.New("credential refused")

// env is what every command needs after configuration is loaded.
type env struct {
	cfg      *config.Config
	logger   *slog.Logger
	registry *auth.Registry
}

// loadEnv reads configuration and builds the logger and registry.
func loadEnv(cmd *cobra.Command) (*env, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("read config flag: %w", err)
	}

	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.Setup(serviceName, cmd.Root().Version, cfg.LogFormat, level, cmd.ErrOrStderr())

	registry, err := cfg.Registry()
	if err != nil {
		errutil.LogError(cmd.Context(), logger, "failed to build user registry", err)
		return nil, err
	}
	logger.DebugContext(cmd.Context(), "configuration loaded",
		"config", path,
		"log_format", cfg.LogFormat,
		"users", registry.Len(),
	)

	return &env{cfg: cfg, logger: logger, registry: registry}, nil
}

// NewRootCmd creates the root command for the credcheck CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credcheck [username password]",
		Short: "Validate and authenticate a credential",
		Long: `credcheck checks a username and password against the credential rules
and then against the user registry.

With two arguments the credential is taken from the command line as-is.
Without arguments the username is prompted for and the password is read
without echo.

Flags must come before the username; everything after it is taken as-is.
A username that starts with '-' or is named like a subcommand needs a
leading "--", as in: credcheck -- -alice 'P@ssw0rd1'`,
		Args:          credentialArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			return runCheck(cmd, rt, args)
		},
	}

	cmd.PersistentFlags().String("config", "", "config file path (default: XDG_CONFIG_HOME/credcheck/config.yaml)")
	cmd.PersistentFlags().String("log-format", config.DefaultLogFormat, "log format (json or text)")
	cmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "log level (debug, info, warn or error)")

	// the password after the username may itself look like a flag
	cmd.Flags().SetInterspersed(false)

	cmd.AddCommand(NewValidateCmd())
	cmd.AddCommand(NewUsersCmd())
	cmd.AddCommand(NewSchemaCmd())

	return cmd
}

// credentialArgs accepts either no arguments or a username and a password.
func credentialArgs(_ *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 2 {
		return fmt.Errorf("expected no arguments or exactly 2 (username password), got %d", len(args))
	}
	return nil
}

func runCheck(cmd *cobra.Command, rt *env, args []string) error {
	ctx := cmd.Context()

	var cred credential.Credential
	if len(args) == 2 {
		cred = credential.Credential{Username: args[0], Password: args[1]}
	} else {
		var err error
		cred, err = console.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()).Prompt(ctx)
		if err != nil {
			errutil.LogError(ctx, rt.logger, "failed to read credential", err)
			return err
		}
	}

	session := console.NewSession(auth.NewAuthenticator(rt.registry), rt.logger, cmd.OutOrStdout())
	outcome, err := session.Run(ctx, cred)
	if err != nil {
		return err
	}
	if outcome != console.OutcomeAuthenticated {
		return errRefused
	}
	return nil
}
