package artist

import (
	"sort"

	"github.com/vantrong/melodia/internal/catalog/album"
	"github.com/vantrong/melodia/pkg/pointer"
)

// Aggregates are the derived scalar fields computed from an artist's album
// collection. They are never stored: every resolution reflects the related
// rows as they are right now.
type Aggregates struct {
	// AlbumCount is the cardinality of the album set.
	AlbumCount int `json:"album_count"`

	// LatestAlbumYearReleased is the greatest release year among the
	// albums; ties resolve to the album with the smallest ID. Nil when no
	// album carries a year.
	LatestAlbumYearReleased *int `json:"latest_album_year_released"`

	// CoverImageURL is the cover of the first album, by descending release
	// year, whose cover is set. Nil when none is.
	CoverImageURL *string `json:"cover_image_url"`
}

// ResolveAggregates computes the derived fields from a loaded album
// collection.
//
// It is a pure function: no store access, no error conditions. An empty or
// nil collection yields a zero count and absent values, never a failure.
func ResolveAggregates(albums []*album.Album) Aggregates {
	aggregates := Aggregates{AlbumCount: len(albums)}
	if len(albums) == 0 {
		return aggregates
	}

	// Order by release year descending; albums without a year go last, and
	// equal years resolve by ascending ID so repeated resolutions agree.
	ordered := make([]*album.Album, len(albums))
	copy(ordered, albums)
	sort.SliceStable(ordered, func(i, j int) bool {
		left, right := ordered[i], ordered[j]
		switch {
		case left.YearReleased == nil && right.YearReleased == nil:
			return left.ID < right.ID
		case left.YearReleased == nil:
			return false
		case right.YearReleased == nil:
			return true
		case *left.YearReleased != *right.YearReleased:
			return *left.YearReleased > *right.YearReleased
		default:
			return left.ID < right.ID
		}
	})

	if ordered[0].YearReleased != nil {
		aggregates.LatestAlbumYearReleased = pointer.To(*ordered[0].YearReleased)
	}

	for _, al := range ordered {
		if al.CoverImageURL != nil {
			aggregates.CoverImageURL = pointer.To(*al.CoverImageURL)
			break
		}
	}

	return aggregates
}
