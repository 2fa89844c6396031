// Package auth provides API-key based tenant authentication.
//
// Credentials are a static tenant-to-key mapping loaded once from
// configuration. The CredentialStore is immutable after construction and
// safe for concurrent use by all request-handling goroutines.
package auth

import "errors"

// ErrInvalidCredential is returned when an API key is empty or unknown.
var ErrInvalidCredential = errors.New("invalid API key")

// Principal is the request-scoped identity resolved from an API key.
// It lives only for the duration of a single request and is never persisted.
type Principal struct {
	TenantID string
	APIKey   string
}

// CredentialStore holds the static tenant/API-key mapping with a pre-built
// reverse index for key lookups.
type CredentialStore struct {
	tenantByKey map[string]string
}

// NewCredentialStore builds a credential store from configuration entries of
// the form tenantID -> apiKey. Later entries win on duplicate keys.
func NewCredentialStore(keys map[string]string) *CredentialStore {
	byKey := make(map[string]string, len(keys))
	for tenantID, apiKey := range keys {
		if apiKey != "" {
			byKey[apiKey] = tenantID
		}
	}
	return &CredentialStore{tenantByKey: byKey}
}

// LookupTenant resolves an API key to its tenant identifier.
func (s *CredentialStore) LookupTenant(apiKey string) (string, bool) {
	tenantID, ok := s.tenantByKey[apiKey]
	return tenantID, ok
}

// Len returns the number of configured credentials.
func (s *CredentialStore) Len() int {
	return len(s.tenantByKey)
}

// Authenticator resolves raw API keys to authenticated principals.
type Authenticator struct {
	store *CredentialStore
}

// NewAuthenticator creates an Authenticator backed by the given store.
func NewAuthenticator(store *CredentialStore) *Authenticator {
	return &Authenticator{store: store}
}

// Authenticate resolves rawKey to a Principal. It fails with
// ErrInvalidCredential when the key is empty or not present in the store.
func (a *Authenticator) Authenticate(rawKey string) (Principal, error) {
	if rawKey == "" {
		return Principal{}, ErrInvalidCredential
	}
	tenantID, ok := a.store.LookupTenant(rawKey)
	if !ok {
		return Principal{}, ErrInvalidCredential
	}
	return Principal{TenantID: tenantID, APIKey: rawKey}, nil
}
