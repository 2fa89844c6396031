package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialStoreLookup(t *testing.T) {
	store := NewCredentialStore(map[string]string{
		"acme":   "key-acme",
		"globex": "key-globex",
		"empty":  "",
	})

	assert.Equal(t, 2, store.Len())

	tenantID, ok := store.LookupTenant("key-acme")
	assert.True(t, ok)
	assert.Equal(t, "acme", tenantID)

	tenantID, ok = store.LookupTenant("key-globex")
	assert.True(t, ok)
	assert.Equal(t, "globex", tenantID)

	_, ok = store.LookupTenant("unknown")
	assert.False(t, ok)

	_, ok = store.LookupTenant("")
	assert.False(t, ok)
}

func TestAuthenticator(t *testing.T) {
	store := NewCredentialStore(map[string]string{"acme": "key-acme"})
	authenticator := NewAuthenticator(store)

	tests := []struct {
		name           string
		rawKey         string
		expectedTenant string
		expectError    bool
	}{
		{
			name:           "valid key resolves tenant",
			rawKey:         "key-acme",
			expectedTenant: "acme",
		},
		{
			name:        "empty key is rejected",
			rawKey:      "",
			expectError: true,
		},
		{
			name:        "unknown key is rejected",
			rawKey:      "key-unknown",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			principal, err := authenticator.Authenticate(tt.rawKey)
			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidCredential)
				assert.Empty(t, principal.TenantID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedTenant, principal.TenantID)
			assert.Equal(t, tt.rawKey, principal.APIKey)
		})
	}
}

func TestAuthenticatorEmptyStore(t *testing.T) {
	authenticator := NewAuthenticator(NewCredentialStore(nil))

	_, err := authenticator.Authenticate("anything")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}
