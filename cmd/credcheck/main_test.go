// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with an isolated config directory.
func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommand_HasExpectedSubcommands(t *testing.T) {
	out, _, err := execute(t, "", "--help")
	require.NoError(t, err)

	for _, sub := range []string{"validate", "users", "schema"} {
		assert.Contains(t, out, sub, "Help missing %q command", sub)
	}
}

func TestRootCommand_VersionFlag(t *testing.T) {
	cmd := NewRootCmd()
	cmd.Version = "test-version"
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "test-version")
}

func TestRootCommand_ArgumentMode(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantOut string
		wantErr error
	}{
		{
			name:    "authenticated",
			args:    []string{"alice", "P@ssw0rd1"},
			wantOut: "Authentication successful.\n",
		},
		{
			name:    "case-insensitive username",
			args:    []string{"ALICE", "P@ssw0rd1"},
			wantOut: "Authentication successful.\n",
		},
		{
			name:    "wrong password",
			args:    []string{"alice", "Wr0ng#pass"},
			wantOut: "Authentication failed.\n",
			wantErr: errRefused,
		},
		{
			name:    "unknown user",
			args:    []string{"carol", "P@ssw0rd1"},
			wantOut: "Authentication failed.\n",
			wantErr: errRefused,
		},
		{
			name:    "invalid credential",
			args:    []string{"alice", "password1"},
			wantOut: "Validation failed: Password must contain at least one uppercase letter.\n",
			wantErr: errRefused,
		},
		{
			name:    "arguments are taken literally",
			args:    []string{"--", "-alice", "P@ssw0rd1"},
			wantOut: "Authentication failed.\n",
			wantErr: errRefused,
		},
		{
			name:    "password starting with a dash",
			args:    []string{"alice", "-Passw0rd1"},
			wantOut: "Authentication failed.\n",
			wantErr: errRefused,
		},
		{
			name:    "password that looks like a long flag",
			args:    []string{"alice", "--Config1"},
			wantOut: "Authentication failed.\n",
			wantErr: errRefused,
		},
		{
			name:    "password that looks like help",
			args:    []string{"alice", "--help"},
			wantOut: "Validation failed: Password must be at least 8 characters long.\n",
			wantErr: errRefused,
		},
		{
			name:    "username named like a subcommand",
			args:    []string{"--", "users", "P@ssw0rd1"},
			wantOut: "Authentication failed.\n",
			wantErr: errRefused,
		},
		{
			name:    "flags before the username still apply",
			args:    []string{"--log-format", "text", "bob", "Secret#123"},
			wantOut: "Authentication successful.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, "", tt.args...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantOut, out)
		})
	}
}

func TestRootCommand_WrongArgumentCount(t *testing.T) {
	_, _, err := execute(t, "", "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly 2")
}

func TestRootCommand_InteractiveMode(t *testing.T) {
	out, _, err := execute(t, "bob\nSecret#12X\x7f3\n")
	require.NoError(t, err)
	assert.Equal(t, "Username: Password: \nAuthentication successful.\n", out)
	assert.NotContains(t, out, "Secret#123")
}

func TestRootCommand_InteractiveNoInput(t *testing.T) {
	_, _, err := execute(t, "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errRefused)
}

func TestRootCommand_ConfigFileRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("users:\n  - username: carol\n    secret: C@rol2024\n"), 0o600))

	out, _, err := execute(t, "", "--config", path, "Carol", "C@rol2024")
	require.NoError(t, err)
	assert.Equal(t, "Authentication successful.\n", out)

	out, _, err = execute(t, "", "--config", path, "alice", "P@ssw0rd1")
	assert.ErrorIs(t, err, errRefused)
	assert.Equal(t, "Authentication failed.\n", out)
}

func TestRootCommand_BadConfig(t *testing.T) {
	_, _, err := execute(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "alice", "P@ssw0rd1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errRefused)

	_, _, err = execute(t, "", "--log-format", "xml", "alice", "P@ssw0rd1")
	require.Error(t, err)
}

func TestRootCommand_LogsToStderrWithoutPassword(t *testing.T) {
	_, stderr, err := execute(t, "", "--log-level", "debug", "alice", "Wr0ng#pass")
	require.ErrorIs(t, err, errRefused)

	assert.Contains(t, stderr, `"service":"credcheck"`)
	assert.Contains(t, stderr, `"outcome":"rejected"`)
	assert.Contains(t, stderr, `"attempt_id"`)
	assert.NotContains(t, stderr, "Wr0ng#pass")
	assert.NotContains(t, stderr, `"username"`)
	assert.NotContains(t, stderr, "alice")
}

func TestRootCommand_DefaultLevelIsQuiet(t *testing.T) {
	for _, args := range [][]string{
		{"alice", "Wr0ng#pass"},
		{"alice", "password1"},
		{"alice", "P@ssw0rd1"},
	} {
		_, stderr, _ := execute(t, "", args...)
		assert.Empty(t, stderr, "args %q", args)
	}

	out, stderr, err := execute(t, "alice\nWr0ng#pass\n")
	require.ErrorIs(t, err, errRefused)
	assert.Equal(t, "Username: Password: \nAuthentication failed.\n", out)
	assert.Empty(t, stderr)
}

func TestValidateCommand(t *testing.T) {
	out, _, err := execute(t, "", "validate", "carol", "C@rol2024")
	require.NoError(t, err)
	assert.Equal(t, "Credential is valid.\n", out)

	out, _, err = execute(t, "", "validate", "ab", "C@rol2024")
	assert.ErrorIs(t, err, errRefused)
	assert.Equal(t, "Validation failed: Username must be at least 3 characters long.\n", out)

	out, _, err = execute(t, "", "validate", "carol", "-C@rol2024")
	require.NoError(t, err)
	assert.Equal(t, "Credential is valid.\n", out)

	_, _, err = execute(t, "", "validate", "carol")
	assert.Error(t, err)
}

func TestValidateCommand_WriteFailure(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := NewRootCmd()
	cmd.SetOut(failingWriter{})
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"validate", "ab", "C@rol2024"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.NotErrorIs(t, err, errRefused)
}

type failingWriter struct{}

func (failingWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("closed")
}

func TestUsersCommand(t *testing.T) {
	out, _, err := execute(t, "", "users")
	require.NoError(t, err)
	assert.Equal(t, "alice\nbob\n", out)
	assert.NotContains(t, out, "P@ssw0rd1")
}

func TestSchemaCommand(t *testing.T) {
	out, _, err := execute(t, "", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, `"$id"`)
	assert.Contains(t, out, `"log_format"`)

	path := filepath.Join(t.TempDir(), "schemas", "config.schema.json")
	out, _, err = execute(t, "", "schema", "--output", path)
	require.NoError(t, err)
	assert.Equal(t, "Generated "+path+"\n", out)
	assert.FileExists(t, path)
}

func TestExitCode(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, 1, exitCode(&buf, errRefused))
	assert.Empty(t, buf.String())

	assert.Equal(t, 2, exitCode(&buf, errors.New("boom")))
	assert.Equal(t, "Error: boom\n", buf.String())
}
