package album_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantrong/melodia/internal/catalog/album"
	"github.com/vantrong/melodia/internal/catalog/artist"
	"github.com/vantrong/melodia/internal/platform/apperr"
	"github.com/vantrong/melodia/internal/platform/sec"
	"github.com/vantrong/melodia/pkg/pointer"
)

var (
	adminActor = &sec.Actor{ID: "actor-admin", Role: sec.RoleAdmin}
	userActor  = &sec.Actor{ID: "actor-user", Role: sec.RoleUser}
)

// The in-memory artist store doubles as the album repository, which is what
// lets these tests seed an owning artist.
func newTestService(t *testing.T) (*album.Service, *artist.MemoryStore) {
	t.Helper()
	store := artist.NewMemoryStore()
	require.NoError(t, store.CreateArtist(context.Background(), &artist.Artist{ID: "a1", Name: "owner"}))
	return album.NewService(store, slog.New(slog.NewTextHandler(io.Discard, nil))), store
}

/*
TestCreateAlbum_Success verifies a valid album lands under its artist.
*/
func TestCreateAlbum_Success(t *testing.T) {
	service, store := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateAlbum(ctx, album.Attrs{
		ArtistID:      "a1",
		Title:         "OK Computer",
		YearReleased:  pointer.To(1997),
		CoverImageURL: pointer.To("https://img.melodia.app/okc.jpg"),
	}, adminActor)
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "a1", created.ArtistID)

	albums, err := store.ListAlbumsByArtist(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, albums, 1)
	assert.Equal(t, "OK Computer", albums[0].Title)
}

/*
TestCreateAlbum_Validation covers field-level rejections; every failure
leaves the store untouched.
*/
func TestCreateAlbum_Validation(t *testing.T) {
	tests := []struct {
		name      string
		attrs     album.Attrs
		wantField string
	}{
		{"missing_artist", album.Attrs{Title: "X"}, album.FieldArtistID},
		{"missing_title", album.Attrs{ArtistID: "a1"}, album.FieldTitle},
		{"year_before_recording_existed", album.Attrs{ArtistID: "a1", Title: "X", YearReleased: pointer.To(1492)}, album.FieldYearReleased},
		{"year_in_far_future", album.Attrs{ArtistID: "a1", Title: "X", YearReleased: pointer.To(3000)}, album.FieldYearReleased},
		{"bad_cover_url", album.Attrs{ArtistID: "a1", Title: "X", CoverImageURL: pointer.To("not a url")}, album.FieldCoverImageURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, store := newTestService(t)
			ctx := context.Background()

			_, err := service.CreateAlbum(ctx, tt.attrs, adminActor)
			require.Error(t, err)

			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, "VALIDATION_ERROR", appError.Code)
			assert.Equal(t, tt.wantField, appError.Details[0].Field)

			albums, listErr := store.ListAlbumsByArtist(ctx, "a1")
			require.NoError(t, listErr)
			assert.Empty(t, albums)
		})
	}
}

/*
TestCreateAlbum_MissingArtist rejects an album referencing a dead artist.
*/
func TestCreateAlbum_MissingArtist(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.CreateAlbum(context.Background(), album.Attrs{ArtistID: "ghost", Title: "Orphan"}, adminActor)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestCreateAlbum_Authorization denies non-admin creators before any store
access.
*/
func TestCreateAlbum_Authorization(t *testing.T) {
	service, store := newTestService(t)
	ctx := context.Background()

	for _, actor := range []*sec.Actor{userActor, nil} {
		_, err := service.CreateAlbum(ctx, album.Attrs{ArtistID: "a1", Title: "Denied"}, actor)
		require.Error(t, err)
		assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
	}

	albums, err := store.ListAlbumsByArtist(ctx, "a1")
	require.NoError(t, err)
	assert.Empty(t, albums)
}

/*
TestDestroyAlbum verifies single-album removal and its policy gate.
*/
func TestDestroyAlbum(t *testing.T) {
	service, store := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateAlbum(ctx, album.Attrs{ArtistID: "a1", Title: "Short-lived"}, adminActor)
	require.NoError(t, err)

	err = service.DestroyAlbum(ctx, created.ID, userActor)
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)

	require.NoError(t, service.DestroyAlbum(ctx, created.ID, adminActor))

	_, err = store.GetAlbum(ctx, created.ID)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
