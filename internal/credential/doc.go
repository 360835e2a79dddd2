// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package credential decides whether a username/password pair is acceptable
// before any authentication is attempted.
//
// # Rules
//
// Validate applies a fixed, ordered rule set and reports only the first rule
// that fails:
//   - username present, at least 3 characters, letters/digits/'.'/'_'/'-' only
//   - password present, at least 8 characters
//   - password contains an uppercase letter, a lowercase letter, a digit
//     and a special character
//
// A password made only of whitespace counts as present. An underscore counts
// as a special character. Both behaviors are part of the rule set.
package credential
