// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package auth

import (
	"sort"
	"strings"

	"github.com/samber/oops"
)

// UserRecord is a known user. Username is matched without regard to ASCII
// case; Secret is compared exactly and is stored in clear.
type UserRecord struct {
	Username string
	Secret   string
}

// Registry is an immutable set of user records keyed by folded username.
// The zero value is an empty registry.
type Registry struct {
	records map[string]UserRecord
}

// NewRegistry builds a Registry from records. Empty usernames and usernames
// that differ only by ASCII case are rejected.
func NewRegistry(records ...UserRecord) (*Registry, error) {
	m := make(map[string]UserRecord, len(records))
	for i, rec := range records {
		if strings.TrimSpace(rec.Username) == "" {
			return nil, oops.Code("REGISTRY_INVALID_USERNAME").
				With("index", i).
				Errorf("username cannot be empty")
		}
		key := foldASCII(rec.Username)
		if existing, ok := m[key]; ok {
			return nil, oops.Code("REGISTRY_DUPLICATE_USERNAME").
				With("username", rec.Username).
				With("existing", existing.Username).
				Errorf("username %q collides with %q", rec.Username, existing.Username)
		}
		m[key] = rec
	}
	return &Registry{records: m}, nil
}

// DemoRecords returns the built-in demo users.
func DemoRecords() []UserRecord {
	return []UserRecord{
		{Username: "alice", Secret: "P@ssw0rd1"},
		{Username: "bob", Secret: "Secret#123"},
	}
}

// DemoRegistry returns a Registry holding DemoRecords.
func DemoRegistry() *Registry {
	reg, err := NewRegistry(DemoRecords()...)
	if err != nil {
		panic(err) // static data
	}
	return reg
}

// Lookup finds the record for username, ignoring ASCII case.
func (r *Registry) Lookup(username string) (UserRecord, bool) {
	if r == nil {
		return UserRecord{}, false
	}
	rec, ok := r.records[foldASCII(username)]
	return rec, ok
}

// Len returns the number of records.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.records)
}

// Usernames returns the registered usernames as configured, sorted.
func (r *Registry) Usernames() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.records))
	for _, rec := range r.records {
		names = append(names, rec.Username)
	}
	sort.Strings(names)
	return names
}

// foldASCII lower-cases ASCII letters only. Other runes are left untouched so
// the comparison stays ordinal.
func foldASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}
