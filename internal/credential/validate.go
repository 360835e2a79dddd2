// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package credential

import (
	"strings"
	"unicode/utf8"

	"github.com/samber/oops"
)

// Length constraints, counted in characters.
const (
	MinUsernameLength = 3
	MinPasswordLength = 8
)

// Result is the outcome of Validate. Reason is empty iff OK is true.
type Result struct {
	OK     bool
	Rule   string
	Reason Reason
}

// Valid is the Result for an acceptable credential.
var Valid = Result{OK: true}

// Err converts a failed Result into a coded error. It returns nil when OK.
func (r Result) Err() error {
	if r.OK {
		return nil
	}
	return oops.Code("CREDENTIAL_INVALID").
		With("rule", r.Rule).
		Errorf("%s", r.Reason)
}

type rule struct {
	name   string
	reason Reason
	check  func(username, password string) bool
}

// rules are evaluated in order; the first failing rule decides the Result.
var rules = []rule{
	{"username_required", ReasonUsernameRequired, func(u, _ string) bool {
		return strings.TrimSpace(u) != ""
	}},
	{"username_length", ReasonUsernameTooShort, func(u, _ string) bool {
		return utf8.RuneCountInString(u) >= MinUsernameLength
	}},
	{"username_charset", ReasonUsernameCharset, func(u, _ string) bool {
		return u != "" && allRunes(u, isUsernameChar)
	}},
	{"password_required", ReasonPasswordRequired, func(_, p string) bool {
		return p != ""
	}},
	{"password_length", ReasonPasswordTooShort, func(_, p string) bool {
		return utf8.RuneCountInString(p) >= MinPasswordLength
	}},
	{"password_uppercase", ReasonPasswordUppercase, func(_, p string) bool {
		return anyRune(p, isUpper)
	}},
	{"password_lowercase", ReasonPasswordLowercase, func(_, p string) bool {
		return anyRune(p, isLower)
	}},
	{"password_digit", ReasonPasswordDigit, func(_, p string) bool {
		return anyRune(p, isDigit)
	}},
	{"password_special", ReasonPasswordSpecial, func(_, p string) bool {
		return anyRune(p, isSpecial)
	}},
}

// Validate checks username and password against the rule set and returns
// the first violation, or Valid. It never fails and has no side effects.
func Validate(username, password string) Result {
	for _, r := range rules {
		if !r.check(username, password) {
			return Result{Rule: r.name, Reason: r.reason}
		}
	}
	return Valid
}

// Rules returns the rule names in evaluation order.
func Rules() []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.name
	}
	return names
}
