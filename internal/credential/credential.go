// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package credential

import (
	"fmt"
	"log/slog"
)

const redacted = "[REDACTED]"

// Credential is a username/password pair for a single attempt.
// It is never persisted and never logged with its password.
type Credential struct {
	Username string
	Password string
}

// Validate applies the rule set to c.
func (c Credential) Validate() Result {
	return Validate(c.Username, c.Password)
}

// String implements fmt.Stringer without exposing the password.
func (c Credential) String() string {
	return fmt.Sprintf("Credential{Username: %q, Password: %s}", c.Username, redacted)
}

// GoString keeps %#v from printing the password.
func (c Credential) GoString() string {
	return c.String()
}

// LogValue implements slog.LogValuer.
func (c Credential) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("username", c.Username),
		slog.String("password", redacted),
	)
}
