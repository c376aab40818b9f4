package adminuser

// PasswordHasher is the password hashing port.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}
