package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// AdminKeyHeader carries the shared admin secret on every admin request.
const AdminKeyHeader = "X-Admin-Key"

var ErrNoAdminSecret = errors.New("admin secret is not configured: set ADMIN_KEY or ADMIN_KEY_HASH")

type Authenticator interface {
	Authenticate(presented string) bool
}

// KeyAuthenticator checks a presented key against a single server-held
// secret. There is no identity, session or expiry.
type KeyAuthenticator struct {
	key  []byte
	hash []byte
}

// NewKeyAuthenticator prefers bcryptHash when both are set.
func NewKeyAuthenticator(key, bcryptHash string) (*KeyAuthenticator, error) {
	if bcryptHash != "" {
		if _, err := bcrypt.Cost([]byte(bcryptHash)); err != nil {
			return nil, err
		}
		return &KeyAuthenticator{hash: []byte(bcryptHash)}, nil
	}
	if key == "" {
		return nil, ErrNoAdminSecret
	}
	return &KeyAuthenticator{key: []byte(key)}, nil
}

func (a *KeyAuthenticator) Authenticate(presented string) bool {
	if presented == "" {
		return false
	}
	if a.hash != nil {
		return bcrypt.CompareHashAndPassword(a.hash, []byte(presented)) == nil
	}
	return subtle.ConstantTimeCompare(a.key, []byte(presented)) == 1
}
