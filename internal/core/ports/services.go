package ports

import "time"

// SessionClaims holds the parsed session token claims.
type SessionClaims struct {
	Address string
}

// SessionTokenService issues and validates the session tokens that bind HTTP
// requests to the active wallet.
type SessionTokenService interface {
	Generate(address string) (string, time.Time, error)
	Validate(tokenString string) (*SessionClaims, error)
}

// EncryptionService protects secrets that reach durable storage.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}
