package artist_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vantrong/melodia/internal/catalog/artist"
)

/*
TestNextPreviousNames_RenameSequence walks the canonical rename chain
First → Second → Third → First and checks the trail after each step. The
final step reverts to an earlier name, which must be removed from the trail
before the old name is prepended.
*/
func TestNextPreviousNames_RenameSequence(t *testing.T) {
	trail := []string{}

	trail = artist.NextPreviousNames("First", "Second", trail)
	assert.Equal(t, []string{"First"}, trail)

	trail = artist.NextPreviousNames("Second", "Third", trail)
	assert.Equal(t, []string{"Second", "First"}, trail)

	trail = artist.NextPreviousNames("Third", "First", trail)
	assert.Equal(t, []string{"Third", "Second"}, trail)
}

/*
TestNextPreviousNames_Cases covers trail edge cases individually.
*/
func TestNextPreviousNames_Cases(t *testing.T) {
	tests := []struct {
		name    string
		oldName string
		newName string
		current []string
		want    []string
	}{
		{"empty_trail", "Old", "New", nil, []string{"Old"}},
		{"prepend_keeps_order", "C", "D", []string{"B", "A"}, []string{"C", "B", "A"}},
		{"revert_removes_duplicate", "C", "A", []string{"B", "A"}, []string{"C", "B"}},
		{"empty_entries_dropped", "C", "D", []string{"B", "", "A"}, []string{"C", "B", "A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, artist.NextPreviousNames(tt.oldName, tt.newName, tt.current))
		})
	}
}

/*
TestNextPreviousNames_Capped verifies the oldest entries fall off once the
trail reaches its bound.
*/
func TestNextPreviousNames_Capped(t *testing.T) {
	trail := []string{}
	for i := 0; i < 80; i++ {
		trail = artist.NextPreviousNames(fmt.Sprintf("Name %d", i), fmt.Sprintf("Name %d", i+1), trail)
	}

	assert.Len(t, trail, 50)
	// Most recent first: the last rename's old name leads the trail.
	assert.Equal(t, "Name 79", trail[0])
	assert.Equal(t, "Name 30", trail[49])
}
