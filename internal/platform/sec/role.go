// Copyright (c) 2026 Melodia. All rights reserved.
// Author: trong.vandt@gmail.com

package sec

// # Roles & Principals

// Role represents the authorization level granted to an account.
//
// The set is closed: any value outside it is rejected at token verification
// time, so the policy evaluator never sees an unknown role.
type Role string

const (
	// Full catalog control, including create and destroy
	RoleAdmin Role = "admin"

	// Can correct and enrich existing catalog entries
	RoleEditor Role = "editor"

	// Default role for standard registered accounts
	RoleUser Role = "user"
)

// Valid reports whether the role belongs to the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleUser:
		return true
	}
	return false
}

// Actor is the acting principal behind an operation.
//
// A nil *Actor means anonymous access. Every catalog operation takes the
// actor as an explicit argument — there is no ambient session state.
type Actor struct {
	// ID is the principal's opaque identity, stamped into created_by /
	// updated_by on mutations.
	ID string

	// Role is the principal's authorization level.
	Role Role
}
