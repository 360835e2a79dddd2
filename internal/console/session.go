// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"github.com/holomush/credcheck/internal/credential"
)

// Messages written for each outcome.
const (
	MsgAuthenticated = "Authentication successful."
	MsgRejected      = "Authentication failed."
	msgInvalidPrefix = "Validation failed: "
)

// Outcome is the result of one attempt.
type Outcome int

// Attempt outcomes.
const (
	OutcomeInvalid Outcome = iota + 1
	OutcomeAuthenticated
	OutcomeRejected
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInvalid:
		return "validation_failed"
	case OutcomeAuthenticated:
		return "authenticated"
	case OutcomeRejected:
		return "rejected"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Authenticator decides whether a validated credential is known.
type Authenticator interface {
	Authenticate(username, password string) bool
}

// Session runs attempts: validate first, authenticate only valid credentials.
type Session struct {
	auth   Authenticator
	logger *slog.Logger
	out    io.Writer
}

// NewSession creates a Session that reports to out.
func NewSession(a Authenticator, logger *slog.Logger, out io.Writer) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{auth: a, logger: logger, out: out}
}

// Run checks c and writes a one-line result. The error is only non-nil
// when the result could not be written.
func (s *Session) Run(ctx context.Context, c credential.Credential) (Outcome, error) {
	logger := s.logger.With("attempt_id", ulid.Make().String())

	var outcome Outcome
	var msg string
	if result := c.Validate(); !result.OK {
		outcome = OutcomeInvalid
		msg = msgInvalidPrefix + result.Reason.String()
		logger.InfoContext(ctx, "credential rejected by validation",
			"outcome", outcome.String(),
			"rule", result.Rule,
		)
	} else if s.auth.Authenticate(c.Username, c.Password) {
		outcome = OutcomeAuthenticated
		msg = MsgAuthenticated
		logger.InfoContext(ctx, "credential authenticated", "outcome", outcome.String())
	} else {
		outcome = OutcomeRejected
		msg = MsgRejected
		logger.InfoContext(ctx, "credential not authenticated", "outcome", outcome.String())
	}

	if _, err := fmt.Fprintln(s.out, msg); err != nil {
		return outcome, oops.Code("CONSOLE_WRITE_FAILED").Wrap(err)
	}
	return outcome, nil
}
