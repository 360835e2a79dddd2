// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package auth

// Authenticator checks credentials against a Registry.
type Authenticator struct {
	registry *Registry
}

// NewAuthenticator creates an Authenticator backed by registry. A nil
// registry rejects every credential.
func NewAuthenticator(registry *Registry) *Authenticator {
	return &Authenticator{registry: registry}
}

// Authenticate reports whether username is registered and password matches
// its secret exactly. Unknown users and wrong secrets both return false.
//
// Callers validate the credential first; Authenticate does not.
func (a *Authenticator) Authenticate(username, password string) bool {
	rec, ok := a.registry.Lookup(username)
	return ok && rec.Secret == password
}
