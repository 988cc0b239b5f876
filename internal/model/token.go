package model

// TokenManager generates and validates signed access tokens bound to a username.
type TokenManager interface {
	GenerateAccessToken(subject string) (string, error)
	// ParseAccessToken returns the token subject. It fails with ErrExpiredToken
	// for well-signed expired tokens and ErrInvalidToken otherwise.
	ParseAccessToken(token string) (string, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}
