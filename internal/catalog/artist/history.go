package artist

// maxPreviousNames bounds the rename audit trail. The trail is
// most-recent-first, so renames past the cap drop the oldest entries.
const maxPreviousNames = 50

// NextPreviousNames computes the rename audit trail after a name change.
//
// The new name is removed from the current trail if present — reverting to
// an earlier name must not leave that name duplicated in the history — and
// the old name is prepended. Callers invoke this only when newName actually
// differs from oldName.
//
// Example: a trail of ["Second", "First"] and a rename "Third" → "First"
// yields ["Third", "Second"].
func NextPreviousNames(oldName, newName string, current []string) []string {
	next := make([]string, 0, len(current)+1)
	next = append(next, oldName)

	for _, name := range current {
		if name == newName || name == "" {
			continue
		}
		next = append(next, name)
	}

	if len(next) > maxPreviousNames {
		next = next[:maxPreviousNames]
	}

	return next
}
