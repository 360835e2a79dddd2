// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package auth authenticates validated credentials against a user registry.
//
// # Registry
//
// A Registry is built once with NewRegistry (or DemoRegistry) and never
// changes afterwards, so it can be shared between goroutines. Usernames are
// keys compared without regard to ASCII case; secrets are compared exactly.
//
// # Authenticator
//
// Authenticator is constructed with the Registry it should consult:
//
//	a := auth.NewAuthenticator(auth.DemoRegistry())
//	ok := a.Authenticate("ALICE", "P@ssw0rd1") // true
//
// A failed authentication does not say whether the username or the secret
// was wrong.
package auth
