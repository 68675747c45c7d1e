// Package models holds the server's domain types.
package models

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/foundrmate/internal/server/auth"
)

// User is a registered account as stored in the users table.
type User struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLogin    *time.Time
}

// PublicUser is the only projection of User sent to callers.
type PublicUser struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// NewUser returns a User with normalised name and email and no hash yet.
func NewUser(fullName, email string) *User {
	return &User{
		FullName: strings.TrimSpace(fullName),
		Email:    NormalizeEmail(email),
	}
}

// SetPassword replaces the stored hash with a hash of plain.
func (u *User) SetPassword(plain string, cost int) error {
	h, err := auth.HashPassword(plain, cost)
	if err != nil {
		return err
	}
	u.PasswordHash = h
	return nil
}

// CheckPassword reports whether plain matches the stored hash.
func (u *User) CheckPassword(plain string) (bool, error) {
	return auth.CheckPassword(u.PasswordHash, plain)
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, FullName: u.FullName, Email: u.Email}
}

// NormalizeEmail trims and lower-cases an address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
