// Copyright (c) 2026 Melodia. All rights reserved.
// Author: trong.vandt@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vantrong/melodia/pkg/slug"
)

/*
TestFrom verifies accent stripping, lowercasing, and hyphen cleanup.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Radiohead", "radiohead"},
		{"spaces", "Godspeed You Black Emperor", "godspeed-you-black-emperor"},
		{"accents", "Sigur Rós", "sigur-ros"},
		{"punctuation", "Godspeed You! Black Emperor", "godspeed-you-black-emperor"},
		{"collapsed_hyphens", "A  --  B", "a-b"},
		{"trimmed", "  The Fall  ", "the-fall"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
