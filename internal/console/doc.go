// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package console collects a credential from a terminal or from arguments
// and reports the result of validating and authenticating it.
package console
