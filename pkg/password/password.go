// Package password hashea y verifica contraseñas con bcrypt.
// El salt se genera en cada Hash y viaja embebido en el digest.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Cost costo de bcrypt (mismo factor que los hashes ya existentes en la tabla users).
const Cost = 10

// MaxLen bytes de la contraseña que bcrypt tiene en cuenta. El resto se ignora,
// igual que hacían los hashes ya existentes en la tabla users.
const MaxLen = 72

// Hash devuelve el digest bcrypt de plaintext.
func Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword(truncate(plaintext), Cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// Verify compara plaintext con digest. Devuelve (false, nil) si no coinciden
// y un error solo cuando el digest no tiene formato bcrypt.
func Verify(plaintext, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), truncate(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("verify password: %w", err)
	}
}

func truncate(plaintext string) []byte {
	b := []byte(plaintext)
	if len(b) > MaxLen {
		b = b[:MaxLen]
	}
	return b
}
