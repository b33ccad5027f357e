package album

import "context"

// Repository is the storage contract for albums.
//
// Implementations must guarantee that every stored album references a live
// artist: creation against a missing artist fails, and destroying an artist
// removes its albums in the same atomic unit (see the artist repository).
type Repository interface {
	ListAlbumsByArtist(ctx context.Context, artistID string) ([]*Album, error)
	GetAlbum(ctx context.Context, id string) (*Album, error)
	CreateAlbum(ctx context.Context, al *Album) error
	DeleteAlbum(ctx context.Context, id string) error
	ArtistExists(ctx context.Context, artistID string) (bool, error)
}
