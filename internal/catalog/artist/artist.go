package artist

import (
	"time"

	"github.com/vantrong/melodia/pkg/sortspec"
)

// Artist represents a musical act in the catalog.
//
// PreviousNames is the rename audit trail, most recent first. It never
// contains empty strings and is bounded (see history.go). CreatedBy and
// UpdatedBy carry the acting principal's ID, or nil for trusted internal
// writes performed without an actor.
type Artist struct {
	ID            string    `json:"id"`
	Slug          string    `json:"slug"`
	Name          string    `json:"name"`
	PreviousNames []string  `json:"previous_names"`
	Biography     *string   `json:"biography"`
	CreatedBy     *string   `json:"created_by,omitempty"`
	UpdatedBy     *string   `json:"updated_by,omitempty"`
	InsertedAt    time.Time `json:"inserted_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Aggregates is populated only when the caller asks for enrichment.
	// It is never persisted; see aggregate.go.
	Aggregates *Aggregates `json:"aggregates,omitempty"`
}

// Attrs is the change set for creating or updating an artist.
// A nil pointer means "field not part of this change".
type Attrs struct {
	Name      *string `json:"name"`
	Biography *string `json:"biography"`
}

// Filter holds the parameters for a paginated artist search.
type Filter struct {
	// Query matches case-insensitively against the CURRENT name only;
	// previous names are an audit trail, not a search index. Empty matches all.
	Query string
}

const (
	FieldName      = "name"
	FieldBiography = "biography"
	FieldSort      = "sort"
)

// Sortable fields accepted by the search planner. The field tokens are part
// of the public API and deliberately mirror the JSON casing.
const (
	SortName            = "name"
	SortInsertedAt      = "insertedAt"
	SortUpdatedAt       = "updatedAt"
	SortAlbumCount      = "albumCount"
	SortLatestAlbumYear = "latestAlbumYearReleased"
)

// sortFields registers which fields may be sorted on and which of them
// accept the doubled nulls-last marker (aggregates and timestamps).
var sortFields = sortspec.NewFieldSet().
	Add(SortName, false).
	Add(SortInsertedAt, true).
	Add(SortUpdatedAt, true).
	Add(SortAlbumCount, true).
	Add(SortLatestAlbumYear, true)

// defaultSort orders by ascending name when the caller gives no directives.
var defaultSort = sortspec.Plan{Keys: []sortspec.Key{{Field: SortName}}}
