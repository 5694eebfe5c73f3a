package auth

import "crypto/subtle"

// AdminGate decides whether a caller-supplied token grants admin
// access. The secret is a single static credential: no sessions, no
// expiry, no rotation.
type AdminGate struct {
	secret []byte
}

func NewAdminGate(secret string) *AdminGate {
	return &AdminGate{secret: []byte(secret)}
}

// Allow reports whether token matches the configured secret. The
// comparison is constant-time so the token cannot be guessed byte by
// byte from response latency. An unconfigured secret denies everything.
func (g *AdminGate) Allow(token string) bool {
	if len(g.secret) == 0 || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), g.secret) == 1
}
