package auth

import (
	"errors"
	"sync"

	"github.com/dmitrijs2005/foundrmate/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

// dummyHash is compared against when the account does not exist so that a
// failed login takes the same time either way.
var dummyHash = sync.OnceValue(func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("foundrmate-dummy"), bcrypt.DefaultCost)
	return h
})

// HashPassword returns the bcrypt hash of plain.
func HashPassword(plain string, cost int) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", common.Internal(err)
	}
	return string(h), nil
}

// CheckPassword reports whether plain matches hash. A mismatch is not an
// error; a corrupt hash is.
func CheckPassword(hash, plain string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, common.Internal(err)
	}
}

// BurnPasswordCheck performs one comparison against a fixed hash.
func BurnPasswordCheck(plain string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(plain))
}
