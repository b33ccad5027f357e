// Copyright (c) 2026 Melodia. All rights reserved.
// Author: trong.vandt@gmail.com

package sortspec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantrong/melodia/pkg/sortspec"
)

func testFields() *sortspec.FieldSet {
	return sortspec.NewFieldSet().
		Add("name", false).
		Add("albumCount", true)
}

/*
TestParse_Directives covers the four marker forms and every rejection case.
*/
func TestParse_Directives(t *testing.T) {
	tests := []struct {
		name    string
		tokens  []string
		want    []sortspec.Key
		wantErr bool
	}{
		{"ascending", []string{"+name"}, []sortspec.Key{{Field: "name"}}, false},
		{"descending", []string{"-name"}, []sortspec.Key{{Field: "name", Desc: true}}, false},
		{"nulls_last_asc", []string{"++albumCount"}, []sortspec.Key{{Field: "albumCount", NullsLast: true}}, false},
		{"nulls_last_desc", []string{"--albumCount"}, []sortspec.Key{{Field: "albumCount", Desc: true, NullsLast: true}}, false},
		{"multi_key", []string{"--albumCount", "+name"}, []sortspec.Key{
			{Field: "albumCount", Desc: true, NullsLast: true},
			{Field: "name"},
		}, false},
		{"no_tokens", nil, []sortspec.Key{}, false},
		{"missing_marker", []string{"name"}, nil, true},
		{"unknown_field", []string{"+bogus"}, nil, true},
		{"doubled_on_non_nullable", []string{"++name"}, nil, true},
		{"bare_marker", []string{"-"}, nil, true},
		{"one_bad_token_fails_all", []string{"+name", "oops"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := sortspec.Parse(tt.tokens, testFields())

			if tt.wantErr {
				require.Error(t, err)
				var parseErr *sortspec.ParseError
				assert.ErrorAs(t, err, &parseErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, plan.Keys)
		})
	}
}

/*
TestPlan_OrderBy verifies the SQL rendering, including the identity tiebreak
that is always appended last.
*/
func TestPlan_OrderBy(t *testing.T) {
	columns := map[string]string{
		"name":       "a.name",
		"albumCount": "agg.albumcount",
	}

	tests := []struct {
		name   string
		tokens []string
		want   string
	}{
		{"empty_plan_keeps_tiebreak", nil, "a.id ASC"},
		{"ascending", []string{"+name"}, "a.name ASC, a.id ASC"},
		{"descending_nulls_last", []string{"--albumCount"}, "agg.albumcount DESC NULLS LAST, a.id ASC"},
		{"composed", []string{"++albumCount", "-name"}, "agg.albumcount ASC NULLS LAST, a.name DESC, a.id ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := sortspec.Parse(tt.tokens, testFields())
			require.NoError(t, err)

			assert.Equal(t, tt.want, plan.OrderBy(columns, "a.id"))
		})
	}
}

/*
TestKey_Compare checks direction flipping and null placement. Without the
doubled marker, absent values compare as the largest value (PostgreSQL's
default); with it they always land last.
*/
func TestKey_Compare(t *testing.T) {
	tests := []struct {
		name                string
		key                 sortspec.Key
		rawCmp              int
		leftNull, rightNull bool
		want                int
	}{
		{"asc_passthrough", sortspec.Key{}, -1, false, false, -1},
		{"desc_flips", sortspec.Key{Desc: true}, -1, false, false, 1},
		{"equal_stays_equal", sortspec.Key{Desc: true}, 0, false, false, 0},
		{"both_null_equal", sortspec.Key{Desc: true, NullsLast: true}, 0, true, true, 0},
		{"default_null_sorts_last_asc", sortspec.Key{}, 0, true, false, 1},
		{"default_null_sorts_first_desc", sortspec.Key{Desc: true}, 0, true, false, -1},
		{"pinned_null_last_asc", sortspec.Key{NullsLast: true}, 0, true, false, 1},
		{"pinned_null_last_desc", sortspec.Key{Desc: true, NullsLast: true}, 0, true, false, 1},
		{"pinned_present_before_null_desc", sortspec.Key{Desc: true, NullsLast: true}, 0, false, true, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.Compare(tt.rawCmp, tt.leftNull, tt.rightNull))
		})
	}
}
