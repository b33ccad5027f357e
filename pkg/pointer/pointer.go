// Copyright (c) 2026 Melodia. All rights reserved.
// Author: trong.vandt@gmail.com

/*
Package pointer provides utilities for working with pointers in Go.

Optional catalog fields (biography, release year, cover URL) are modeled as
pointers throughout Melodia; this package removes the boilerplate of taking
the address of a literal or dereferencing a possibly-nil value.
*/
package pointer

// To returns a pointer to the provided value.
// Useful when a struct field or function parameter expects a pointer
// (e.g. pointer.To(2021)).
func To[T any](v T) *T {
	return &v
}

// Val safely dereferences a pointer.
// If the pointer is nil, it returns the zero value of the underlying type.
func Val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Fallback safely dereferences a pointer.
// If the pointer is nil, it returns the provided fallback value instead.
func Fallback[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
