// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package credential

// Reason is the human-readable message for a failed rule.
type Reason string

// Reasons reported by Validate, one per rule.
const (
	ReasonUsernameRequired  Reason = "Username is required."
	ReasonUsernameTooShort  Reason = "Username must be at least 3 characters long."
	ReasonUsernameCharset   Reason = "Username contains invalid characters. Use letters, digits, '.', '_' or '-'."
	ReasonPasswordRequired  Reason = "Password is required."
	ReasonPasswordTooShort  Reason = "Password must be at least 8 characters long."
	ReasonPasswordUppercase Reason = "Password must contain at least one uppercase letter."
	ReasonPasswordLowercase Reason = "Password must contain at least one lowercase letter."
	ReasonPasswordDigit     Reason = "Password must contain at least one digit."
	ReasonPasswordSpecial   Reason = "Password should contain at least one special character."
)

// String returns the message text.
func (r Reason) String() string {
	return string(r)
}
