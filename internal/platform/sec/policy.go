// Copyright (c) 2026 Melodia. All rights reserved.
// Author: trong.vandt@gmail.com

package sec

// # Policy Evaluation

// Action is a catalog operation subject to authorization.
type Action string

const (
	ActionRead    Action = "read"
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionDestroy Action = "destroy"
)

// policyTable maps (action, role) to an allow decision.
//
// It is an explicit table rather than a role hierarchy: new actions add a
// row, new roles add a column, and the matrix stays reviewable at a glance.
// Roles absent from a row are denied.
var policyTable = map[Action]map[Role]bool{
	ActionCreate: {
		RoleAdmin: true,
	},
	ActionUpdate: {
		RoleAdmin:  true,
		RoleEditor: true,
	},
	ActionDestroy: {
		RoleAdmin: true,
	},
}

// Allowed decides whether an actor may perform an action, optionally on a
// specific record.
//
// Evaluation is total: it always returns a definite allow/deny. Reads are
// universally allowed, including for anonymous (nil) actors. The record
// argument is accepted for interface symmetry but current rules do not
// inspect record content.
func Allowed(actor *Actor, action Action, record any) bool {
	if action == ActionRead {
		return true
	}

	if actor == nil {
		return false
	}

	return policyTable[action][actor.Role]
}
