// Copyright (c) 2026 Melodia. All rights reserved.
// Author: trong.vandt@gmail.com

/*
Package sortspec parses sort directives into an executable ordering plan.

A directive is a field name prefixed by a directional marker:

	+name     ascending
	-name     descending
	++field   ascending, absent values pinned last
	--field   descending, absent values pinned last

The doubled marker is only legal on fields registered as nullable (derived
aggregates and timestamps); it guarantees deterministic placement of rows
with no value regardless of direction. Directives compose as a stable
multi-key sort: earlier keys take priority, later keys break ties, and the
caller appends a stable identity tiebreak for rows equal on every key.

The resulting [Plan] compiles in two directions: [Plan.OrderBy] renders a SQL
ORDER BY fragment for relational stores, while [Key.Compare] drives the
in-memory comparator. Both produce the same ordering, which is what lets the
catalog behave identically regardless of the storage engine behind it.
*/
package sortspec

import (
	"fmt"
	"strings"
)

// Key is a single parsed sort directive.
type Key struct {
	// Field is the bare field name, marker stripped.
	Field string
	// Desc orders the key descending when true.
	Desc bool
	// NullsLast pins absent values after all present values, regardless
	// of direction. Set only by doubled markers.
	NullsLast bool
}

// Plan is an ordered list of sort keys. The zero value is a valid plan and
// means "caller-defined default ordering".
type Plan struct {
	Keys []Key
}

// IsZero reports whether the plan carries no directives.
func (p Plan) IsZero() bool {
	return len(p.Keys) == 0
}

// FieldSet is the registry of sortable fields a caller accepts.
type FieldSet struct {
	nullable map[string]bool
}

// NewFieldSet returns an empty field registry.
func NewFieldSet() *FieldSet {
	return &FieldSet{nullable: make(map[string]bool)}
}

// Add registers a sortable field. Nullable fields additionally accept the
// doubled marker form.
func (s *FieldSet) Add(field string, nullable bool) *FieldSet {
	s.nullable[field] = nullable
	return s
}

// ParseError describes a directive that could not be parsed.
type ParseError struct {
	Token  string
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("sortspec: invalid directive %q: %s", e.Token, e.Reason)
}

// Parse converts raw directive tokens into a [Plan].
//
// Every token must be a registered field with a well-formed marker; a single
// bad token fails the whole parse so a typo never silently degrades an
// ordering.
func Parse(tokens []string, fields *FieldSet) (Plan, error) {
	keys := make([]Key, 0, len(tokens))

	for _, token := range tokens {
		key, err := parseToken(token, fields)
		if err != nil {
			return Plan{}, err
		}
		keys = append(keys, key)
	}

	return Plan{Keys: keys}, nil
}

// parseToken parses one directive token against the field registry.
func parseToken(token string, fields *FieldSet) (Key, error) {
	var key Key

	switch {
	case strings.HasPrefix(token, "++"):
		key = Key{Field: token[2:], NullsLast: true}
	case strings.HasPrefix(token, "--"):
		key = Key{Field: token[2:], Desc: true, NullsLast: true}
	case strings.HasPrefix(token, "+"):
		key = Key{Field: token[1:]}
	case strings.HasPrefix(token, "-"):
		key = Key{Field: token[1:], Desc: true}
	default:
		return Key{}, &ParseError{Token: token, Reason: "missing direction marker"}
	}

	if key.Field == "" {
		return Key{}, &ParseError{Token: token, Reason: "missing field name"}
	}

	nullable, known := fields.nullable[key.Field]
	if !known {
		return Key{}, &ParseError{Token: token, Reason: "unknown sort field"}
	}

	if key.NullsLast && !nullable {
		return Key{}, &ParseError{Token: token, Reason: "doubled marker requires a nullable field"}
	}

	return key, nil
}

// OrderBy renders the plan as a SQL ORDER BY fragment (without the leading
// "ORDER BY" keywords).
//
// columns maps field names to column expressions; tiebreak is the column
// appended last so rows equal on every key still order deterministically.
// Fields absent from the map are skipped — the caller's registry and column
// map are expected to agree.
func (p Plan) OrderBy(columns map[string]string, tiebreak string) string {
	var b strings.Builder

	for _, key := range p.Keys {
		column, ok := columns[key.Field]
		if !ok {
			continue
		}

		if b.Len() > 0 {
			b.WriteString(", ")
		}

		b.WriteString(column)
		if key.Desc {
			b.WriteString(" DESC")
		} else {
			b.WriteString(" ASC")
		}
		if key.NullsLast {
			b.WriteString(" NULLS LAST")
		}
	}

	if b.Len() > 0 {
		b.WriteString(", ")
	}
	b.WriteString(tiebreak)
	b.WriteString(" ASC")

	return b.String()
}

// Compare applies the key's direction and null policy to a raw comparison.
//
// rawCmp is the natural ascending comparison of the two values (-1, 0, +1);
// leftNull and rightNull report absent values. Without the NullsLast pin,
// absent values compare as the largest value, matching PostgreSQL's default
// (last under ASC, first under DESC).
func (k Key) Compare(rawCmp int, leftNull, rightNull bool) int {
	if leftNull || rightNull {
		switch {
		case leftNull && rightNull:
			return 0
		case k.NullsLast:
			if leftNull {
				return 1
			}
			return -1
		case leftNull:
			rawCmp = 1
		default:
			rawCmp = -1
		}
	}

	if k.Desc {
		return -rawCmp
	}
	return rawCmp
}
