// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the core entity in the system, representing a registered account.
// PasswordHash is never serialized; the delivery layer maps entities to
// response DTOs that omit it.
type User struct {
	ID           int64     // Database-generated numeric identifier, also carried in issued tokens.
	Name         string    // The user's display name.
	Email        string    // The user's login identifier, unique across accounts.
	PasswordHash string    // bcrypt hash of the password. Raw passwords never leave the hasher.
	CreatedAt    time.Time // Timestamp of when this account was registered.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
