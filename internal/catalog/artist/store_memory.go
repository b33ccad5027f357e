package artist

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/vantrong/melodia/internal/catalog/album"
	"github.com/vantrong/melodia/internal/platform/apperr"
	"github.com/vantrong/melodia/internal/platform/dberr"
	"github.com/vantrong/melodia/pkg/sortspec"
)

// MemoryStore is an in-process implementation of both the artist and album
// repositories, backed by maps under a single lock. Holding both entities in
// one store is what lets DeleteArtist cascade atomically without a database.
//
// It exists for tests and as proof that search ordering is a property of the
// plan, not the storage engine: a [sortspec.Plan] must order rows here exactly
// as its ORDER BY rendering does in PostgreSQL.
type MemoryStore struct {
	mu      sync.RWMutex
	artists map[string]*Artist
	albums  map[string]*album.Album
}

// Interface conformance, checked at compile time.
var (
	_ Repository       = (*MemoryStore)(nil)
	_ album.Repository = (*MemoryStore)(nil)
)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		artists: make(map[string]*Artist),
		albums:  make(map[string]*album.Album),
	}
}

// sortRow pairs an artist with the derived values its sort keys may need.
type sortRow struct {
	artist     *Artist
	albumCount int
	latestYear *int
}

func (store *MemoryStore) SearchArtists(_ context.Context, f Filter, plan sortspec.Plan, limit, offset int) ([]*Artist, bool, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	needle := strings.ToLower(f.Query)

	rows := make([]sortRow, 0, len(store.artists))
	for _, a := range store.artists {
		if needle != "" && !strings.Contains(strings.ToLower(a.Name), needle) {
			continue
		}
		rows = append(rows, store.buildSortRow(a))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		for _, key := range plan.Keys {
			if c := compareRows(key, rows[i], rows[j]); c != 0 {
				return c < 0
			}
		}
		// Identity tiebreak, matching the ", id ASC" suffix on the SQL side.
		return rows[i].artist.ID < rows[j].artist.ID
	})

	if offset >= len(rows) {
		return nil, false, nil
	}
	rows = rows[offset:]

	hasMore := len(rows) > limit
	if hasMore {
		rows = rows[:limit]
	}

	artists := make([]*Artist, len(rows))
	for i, row := range rows {
		artists[i] = copyArtist(row.artist)
	}
	return artists, hasMore, nil
}

// buildSortRow derives the aggregate sort values for one artist. The counts
// match what the relational store's lateral join produces: a count is never
// absent (zero albums counts as zero) but the latest year is absent when no
// album carries one.
func (store *MemoryStore) buildSortRow(a *Artist) sortRow {
	row := sortRow{artist: a}
	for _, al := range store.albums {
		if al.ArtistID != a.ID {
			continue
		}
		row.albumCount++
		if al.YearReleased != nil && (row.latestYear == nil || *al.YearReleased > *row.latestYear) {
			year := *al.YearReleased
			row.latestYear = &year
		}
	}
	return row
}

// compareRows evaluates one sort key against two rows, returning the usual
// negative/zero/positive ordering.
func compareRows(key sortspec.Key, left, right sortRow) int {
	var (
		raw                 int
		leftNull, rightNull bool
	)

	switch key.Field {
	case SortName:
		raw = strings.Compare(left.artist.Name, right.artist.Name)
	case SortInsertedAt:
		raw = compareTimes(left.artist.InsertedAt, right.artist.InsertedAt)
	case SortUpdatedAt:
		raw = compareTimes(left.artist.UpdatedAt, right.artist.UpdatedAt)
	case SortAlbumCount:
		raw = left.albumCount - right.albumCount
	case SortLatestAlbumYear:
		leftNull, rightNull = left.latestYear == nil, right.latestYear == nil
		if !leftNull && !rightNull {
			raw = *left.latestYear - *right.latestYear
		}
	}

	return key.Compare(raw, leftNull, rightNull)
}

func compareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}

func (store *MemoryStore) GetArtist(_ context.Context, id string) (*Artist, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	a, ok := store.artists[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return copyArtist(a), nil
}

func (store *MemoryStore) CreateArtist(_ context.Context, a *Artist) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, exists := store.artists[a.ID]; exists {
		return apperr.Conflict("Resource already exists")
	}

	// Tests may back-date rows to exercise timestamp ordering; only stamp
	// what the caller left zero.
	now := time.Now().UTC()
	if a.InsertedAt.IsZero() {
		a.InsertedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	store.artists[a.ID] = copyArtist(a)
	return nil
}

func (store *MemoryStore) UpdateArtist(_ context.Context, a *Artist) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	stored, ok := store.artists[a.ID]
	if !ok {
		return dberr.ErrNotFound
	}

	a.InsertedAt = stored.InsertedAt
	a.UpdatedAt = time.Now().UTC()
	store.artists[a.ID] = copyArtist(a)
	return nil
}

func (store *MemoryStore) DeleteArtist(_ context.Context, id string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, ok := store.artists[id]; !ok {
		return dberr.ErrNotFound
	}

	// Cascade under the same lock: no observer ever sees an orphaned album.
	for albumID, al := range store.albums {
		if al.ArtistID == id {
			delete(store.albums, albumID)
		}
	}
	delete(store.artists, id)
	return nil
}

func (store *MemoryStore) ListAlbums(ctx context.Context, artistID string) ([]*album.Album, error) {
	return store.ListAlbumsByArtist(ctx, artistID)
}

func (store *MemoryStore) ListAlbumsByArtist(_ context.Context, artistID string) ([]*album.Album, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	var albums []*album.Album
	for _, al := range store.albums {
		if al.ArtistID == artistID {
			albums = append(albums, copyAlbum(al))
		}
	}

	// Newest release first, years absent last, matching the relational
	// store's "yearreleased DESC NULLS LAST, id ASC".
	sort.Slice(albums, func(i, j int) bool {
		left, right := albums[i], albums[j]
		switch {
		case left.YearReleased == nil && right.YearReleased == nil:
			return left.ID < right.ID
		case left.YearReleased == nil:
			return false
		case right.YearReleased == nil:
			return true
		case *left.YearReleased != *right.YearReleased:
			return *left.YearReleased > *right.YearReleased
		}
		return left.ID < right.ID
	})
	return albums, nil
}

func (store *MemoryStore) GetAlbum(_ context.Context, id string) (*album.Album, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	al, ok := store.albums[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return copyAlbum(al), nil
}

func (store *MemoryStore) CreateAlbum(_ context.Context, al *album.Album) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, ok := store.artists[al.ArtistID]; !ok {
		// Mirrors the relational foreign key violation.
		return apperr.ValidationError("Referenced resource does not exist")
	}
	if _, exists := store.albums[al.ID]; exists {
		return apperr.Conflict("Resource already exists")
	}

	now := time.Now().UTC()
	if al.InsertedAt.IsZero() {
		al.InsertedAt = now
	}
	if al.UpdatedAt.IsZero() {
		al.UpdatedAt = now
	}

	store.albums[al.ID] = copyAlbum(al)
	return nil
}

func (store *MemoryStore) DeleteAlbum(_ context.Context, id string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, ok := store.albums[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(store.albums, id)
	return nil
}

func (store *MemoryStore) ArtistExists(_ context.Context, artistID string) (bool, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	_, ok := store.artists[artistID]
	return ok, nil
}

// copyArtist returns a deep copy so callers can't mutate stored state.
func copyArtist(a *Artist) *Artist {
	clone := *a
	clone.PreviousNames = append([]string(nil), a.PreviousNames...)
	clone.Aggregates = nil
	return &clone
}

func copyAlbum(al *album.Album) *album.Album {
	clone := *al
	return &clone
}
