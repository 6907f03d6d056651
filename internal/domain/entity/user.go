// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the aggregate root of the system: one gardener account together
// with the plant records it owns. Plants live inside the user document, so
// every mutation of the plant list is persisted as a single-document write.
type User struct {
	FullName     string    // The user's display name.
	Email        string    // Unique login identifier; every operation is keyed by it.
	PasswordHash string    // bcrypt hash of the password. The plaintext is never stored.
	Plants       []Plant   // The user's plant records, in insertion order.
	CreatedAt    time.Time // Set once when the account is created, immutable afterwards.
}

// FindPlant returns the index of the plant with the given id, or -1.
func (u *User) FindPlant(plantID string) int {
	for i := range u.Plants {
		if u.Plants[i].ID.String() == plantID {
			return i
		}
	}

	return -1
}
