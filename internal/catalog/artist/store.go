package artist

import (
	"context"

	"github.com/vantrong/melodia/internal/catalog/album"
	"github.com/vantrong/melodia/pkg/sortspec"
)

// Repository is the storage contract for artists.
//
// The catalog core owns filtering and ordering SEMANTICS — what a sort plan
// means — while implementations own execution. Both the PostgreSQL and the
// in-memory store must yield identical orderings for the same plan.
type Repository interface {
	// SearchArtists returns one page of matches plus a flag reporting
	// whether at least one further match exists past the returned slice.
	SearchArtists(ctx context.Context, f Filter, plan sortspec.Plan, limit, offset int) ([]*Artist, bool, error)

	GetArtist(ctx context.Context, id string) (*Artist, error)
	CreateArtist(ctx context.Context, a *Artist) error

	// UpdateArtist persists name, slug, previous names, biography, and the
	// updated-by stamp as a single atomic write.
	UpdateArtist(ctx context.Context, a *Artist) error

	// DeleteArtist removes the artist and every album it owns in one
	// atomic unit. No orphan album may survive.
	DeleteArtist(ctx context.Context, id string) error

	// ListAlbums loads the artist's album collection for aggregate
	// resolution.
	ListAlbums(ctx context.Context, artistID string) ([]*album.Album, error)
}
