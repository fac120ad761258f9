package models

// User is a registered account. PasswordDigest is the hex digest produced by
// the configured cryptox.Hasher; the plaintext is never stored.
type User struct {
	ID             int64
	Username       string
	PasswordDigest string
	IsAdmin        bool
}
