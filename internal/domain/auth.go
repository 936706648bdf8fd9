package domain

import "time"

// TokenIssuer issues session tokens (e.g. JWT) for an authorized admin.
type TokenIssuer interface {
	Issue(identity *Identity, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a session token and returns the admin identity.
type TokenVerifier interface {
	Verify(token string) (*Identity, error)
}
