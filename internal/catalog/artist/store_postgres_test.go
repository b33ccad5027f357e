package artist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestEscapeLike verifies that user queries stay literal substring containment
when rendered into an ILIKE pattern: %, _ and the escape character itself
must not act as wildcards. Otherwise "a_c" would match "abc" here while
the in-memory store's strings.Contains rejects it.
*/
func TestEscapeLike(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "radiohead", "radiohead"},
		{"percent", "100% silk", `100\% silk`},
		{"underscore", "a_c", `a\_c`},
		{"backslash", `ac\dc`, `ac\\dc`},
		{"all_three", `_%\`, `\_\%\\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLike(tt.input))
		})
	}
}
