// Copyright (c) 2026 Melodia. All rights reserved.
// Author: trong.vandt@gmail.com

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vantrong/melodia/internal/platform/sec"
)

/*
TestAllowed_Matrix walks the full (action, role) decision table, including
anonymous access. Evaluation must be total: every cell has a definite answer.
*/
func TestAllowed_Matrix(t *testing.T) {
	admin := &sec.Actor{ID: "a1", Role: sec.RoleAdmin}
	editor := &sec.Actor{ID: "e1", Role: sec.RoleEditor}
	user := &sec.Actor{ID: "u1", Role: sec.RoleUser}

	tests := []struct {
		name   string
		actor  *sec.Actor
		action sec.Action
		want   bool
	}{
		{"read_admin", admin, sec.ActionRead, true},
		{"read_editor", editor, sec.ActionRead, true},
		{"read_user", user, sec.ActionRead, true},
		{"read_anonymous", nil, sec.ActionRead, true},

		{"create_admin", admin, sec.ActionCreate, true},
		{"create_editor", editor, sec.ActionCreate, false},
		{"create_user", user, sec.ActionCreate, false},
		{"create_anonymous", nil, sec.ActionCreate, false},

		{"update_admin", admin, sec.ActionUpdate, true},
		{"update_editor", editor, sec.ActionUpdate, true},
		{"update_user", user, sec.ActionUpdate, false},
		{"update_anonymous", nil, sec.ActionUpdate, false},

		{"destroy_admin", admin, sec.ActionDestroy, true},
		{"destroy_editor", editor, sec.ActionDestroy, false},
		{"destroy_user", user, sec.ActionDestroy, false},
		{"destroy_anonymous", nil, sec.ActionDestroy, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sec.Allowed(tt.actor, tt.action, nil))
		})
	}
}

/*
TestAllowed_RecordIgnored confirms the record argument does not influence the
decision — it exists for interface symmetry only.
*/
func TestAllowed_RecordIgnored(t *testing.T) {
	editor := &sec.Actor{ID: "e1", Role: sec.RoleEditor}

	assert.Equal(t,
		sec.Allowed(editor, sec.ActionUpdate, nil),
		sec.Allowed(editor, sec.ActionUpdate, struct{ Name string }{"anything"}),
	)
}

/*
TestRole_Valid verifies the closed role set.
*/
func TestRole_Valid(t *testing.T) {
	assert.True(t, sec.RoleAdmin.Valid())
	assert.True(t, sec.RoleEditor.Valid())
	assert.True(t, sec.RoleUser.Valid())
	assert.False(t, sec.Role("superadmin").Valid())
	assert.False(t, sec.Role("").Valid())
}
