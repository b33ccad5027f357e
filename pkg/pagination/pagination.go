// Copyright (c) 2026 Melodia. All rights reserved.
// Author: trong.vandt@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// Melodia paginates by offset: a request carries a limit and an offset, and
// the response metadata reports whether more matches exist beyond the
// returned slice plus the offset to request next. Stores over-fetch one row
// (limit+1) so HasMore never needs a second counting query.
package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 12
	// MaxLimit is the upper bound for items per page to prevent system abuse.
	MaxLimit = 100
)

// Params holds the parsed limit and offset from a request's query string.
type Params struct {
	Limit  int
	Offset int
}

// Normalize returns params with missing or out-of-range values replaced by
// the defaults: a limit outside [1, MaxLimit] becomes [DefaultLimit] and a
// negative offset becomes zero.
//
// The service layer calls this on every search, so direct callers passing a
// zero-value Params get the same bounds as HTTP callers going through
// [FromRequest].
func (p Params) Normalize() Params {
	if p.Limit < 1 || p.Limit > MaxLimit {
		p.Limit = DefaultLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Limit      int  `json:"limit"`
	Offset     int  `json:"offset"`
	Count      int  `json:"count"`
	HasMore    bool `json:"has_more"`
	NextOffset int  `json:"next_offset"`
}

// NewMeta constructs pagination metadata for a response.
//
// NextOffset is the offset of the page immediately following this one
// (current offset + number of items returned). It is meaningful only when
// HasMore is true.
func NewMeta(params Params, count int, hasMore bool) Meta {
	return Meta{
		Limit:      params.Limit,
		Offset:     params.Offset,
		Count:      count,
		HasMore:    hasMore,
		NextOffset: params.Offset + count,
	}
}

// FromRequest parses "limit" and "offset" query parameters from an HTTP request.
//
// # Clamping
//
// Invalid, negative, or excessive values are automatically clamped to
// [DefaultLimit], [MaxLimit], or offset zero.
func FromRequest(r *http.Request) Params {
	return Params{
		Limit:  parseIntParam(r, "limit", DefaultLimit),
		Offset: parseIntParam(r, "offset", 0),
	}.Normalize()
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}
