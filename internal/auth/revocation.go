package auth

import (
	"crypto/md5"
	"encoding/hex"
	"sync"
)

// Fingerprint returns the revocation-lookup key for a raw token string.
//
// md5 here is a fast map key, not a security control: rejecting a token still
// requires someone to have presented the exact raw string that was revoked.
func Fingerprint(rawToken string) string {
	sum := md5.Sum([]byte(rawToken))
	return hex.EncodeToString(sum[:])
}

// RevocationList records tokens invalidated before their natural expiry.
//
// State is held in process memory for the lifetime of the service instance:
// entries are never swept, are lost on restart, and are not shared between
// concurrently running instances. Logout-everywhere semantics across a
// multi-instance deployment would need an external shared store.
type RevocationList struct {
	mu      sync.RWMutex
	revoked map[string]bool
}

func NewRevocationList() *RevocationList {
	return &RevocationList{revoked: make(map[string]bool)}
}

// Revoke marks the raw token as revoked. Revoking an already-revoked token is
// a no-op success.
func (l *RevocationList) Revoke(rawToken string) {
	fp := Fingerprint(rawToken)
	l.mu.Lock()
	l.revoked[fp] = true
	l.mu.Unlock()
}

// IsRevoked reports whether the fingerprint has been revoked. Pure lookup.
func (l *RevocationList) IsRevoked(fingerprint string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.revoked[fingerprint]
}
