package artist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantrong/melodia/internal/catalog/album"
	"github.com/vantrong/melodia/internal/catalog/artist"
	"github.com/vantrong/melodia/pkg/pointer"
)

/*
TestResolveAggregates_Empty verifies that an artist with no albums yields a
zero count and absent derived values — never an error.
*/
func TestResolveAggregates_Empty(t *testing.T) {
	aggregates := artist.ResolveAggregates(nil)

	assert.Equal(t, 0, aggregates.AlbumCount)
	assert.Nil(t, aggregates.LatestAlbumYearReleased)
	assert.Nil(t, aggregates.CoverImageURL)
}

/*
TestResolveAggregates_CoverByDescendingYear uses albums released in 2021 (no
cover), 2019 (cover A), and 2020 (cover B). The cover comes from the first
album with one by descending year — cover B — while the latest year stays 2021.
*/
func TestResolveAggregates_CoverByDescendingYear(t *testing.T) {
	albums := []*album.Album{
		{ID: "al-1", YearReleased: pointer.To(2021)},
		{ID: "al-2", YearReleased: pointer.To(2019), CoverImageURL: pointer.To("https://img.melodia.app/a.jpg")},
		{ID: "al-3", YearReleased: pointer.To(2020), CoverImageURL: pointer.To("https://img.melodia.app/b.jpg")},
	}

	aggregates := artist.ResolveAggregates(albums)

	assert.Equal(t, 3, aggregates.AlbumCount)
	require.NotNil(t, aggregates.LatestAlbumYearReleased)
	assert.Equal(t, 2021, *aggregates.LatestAlbumYearReleased)
	require.NotNil(t, aggregates.CoverImageURL)
	assert.Equal(t, "https://img.melodia.app/b.jpg", *aggregates.CoverImageURL)
}

/*
TestResolveAggregates_Cases covers the remaining aggregate edge cases.
*/
func TestResolveAggregates_Cases(t *testing.T) {
	tests := []struct {
		name       string
		albums     []*album.Album
		wantCount  int
		wantLatest *int
		wantCover  *string
	}{
		{
			name:      "years_all_absent",
			albums:    []*album.Album{{ID: "al-1"}, {ID: "al-2"}},
			wantCount: 2,
		},
		{
			name: "year_tie_breaks_by_smallest_id",
			albums: []*album.Album{
				{ID: "al-2", YearReleased: pointer.To(2020), CoverImageURL: pointer.To("second")},
				{ID: "al-1", YearReleased: pointer.To(2020), CoverImageURL: pointer.To("first")},
			},
			wantCount:  2,
			wantLatest: pointer.To(2020),
			wantCover:  pointer.To("first"),
		},
		{
			name: "yearless_album_still_counted",
			albums: []*album.Album{
				{ID: "al-1"},
				{ID: "al-2", YearReleased: pointer.To(1997)},
			},
			wantCount:  2,
			wantLatest: pointer.To(1997),
		},
		{
			name: "cover_only_on_yearless_album",
			albums: []*album.Album{
				{ID: "al-1", YearReleased: pointer.To(2001)},
				{ID: "al-2", CoverImageURL: pointer.To("fallback")},
			},
			wantCount:  2,
			wantLatest: pointer.To(2001),
			wantCover:  pointer.To("fallback"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aggregates := artist.ResolveAggregates(tt.albums)

			assert.Equal(t, tt.wantCount, aggregates.AlbumCount)
			assert.Equal(t, tt.wantLatest, aggregates.LatestAlbumYearReleased)
			assert.Equal(t, tt.wantCover, aggregates.CoverImageURL)
		})
	}
}
