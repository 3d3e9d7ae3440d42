// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a resident, collector or administrator known to the system.
// Credentials and sessions are owned by an external account store; only the
// fields the notifier and reconciler need are modelled here.
type Account struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the account.
	Name      string    // Display name, used as the collector label on truck notifications.
	Role      Role      // The single role this account acts under.
	Barangay  string    // The assigned collection area (barangay) of a resident.
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this account.
}

// IsResident reports whether the account receives resident notifications.
func (a *Account) IsResident() bool {
	return a != nil && a.Role == RoleResident
}
