package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrBadHash indicates a stored hash that bcrypt could not parse. This should
// never happen for hashes produced by Hash; if it surfaces, the stored record
// is corrupt.
var ErrBadHash = errors.New("unparseable password hash")

// Hash derives a salted bcrypt hash from the plaintext. The output encodes
// the algorithm, cost and salt, so Verify needs no external parameters.
func Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

// Verify reports whether plain matches the bcrypt hash. A mismatch is
// (false, nil); a hash bcrypt cannot parse is (false, ErrBadHash).
func Verify(plain, hashed string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrBadHash, err)
	}
}
