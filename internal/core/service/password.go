package service

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher implements ports.PasswordHasher on top of bcrypt. Each call
// to Hash generates a fresh salt, so hashing the same password twice yields
// different records that both verify.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher with the given cost. Costs outside the
// bcrypt range fall back to the library default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash produces a salted one-way record of password. Empty plaintext is
// accepted here on purpose; rejecting empty passwords is a registration
// policy, not a hashing concern.
func (h *BcryptHasher) Hash(password string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Verify reports whether password matches record. bcrypt compares in
// constant time; a malformed record and a wrong password both come back
// false so callers cannot tell the cases apart.
func (h *BcryptHasher) Verify(password, record string) bool {
	return bcrypt.CompareHashAndPassword([]byte(record), []byte(password)) == nil
}
