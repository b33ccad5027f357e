package artist_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantrong/melodia/internal/catalog/album"
	"github.com/vantrong/melodia/internal/catalog/artist"
	"github.com/vantrong/melodia/internal/platform/ctxutil"
	"github.com/vantrong/melodia/internal/platform/sec"
	"github.com/vantrong/melodia/pkg/pointer"
)

func newTestRouter(t *testing.T) (http.Handler, *artist.MemoryStore) {
	t.Helper()
	store := artist.NewMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := artist.NewHandler(
		artist.NewService(store, logger),
		album.NewService(store, logger),
	)
	return handler.Routes(), store
}

// do performs a request against the artist routes, optionally as an actor.
func do(t *testing.T, router http.Handler, method, target, body string, actor *sec.Actor) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	request := httptest.NewRequest(method, target, reader)
	if actor != nil {
		request = request.WithContext(ctxutil.WithActor(request.Context(), actor))
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

/*
TestHTTP_SearchArtists drives the full query-string surface: filter, sort
directives, pagination, and aggregate enrichment.
*/
func TestHTTP_SearchArtists(t *testing.T) {
	router, store := newTestRouter(t)
	ctx := context.Background()

	require.NoError(t, store.CreateArtist(ctx, &artist.Artist{ID: "a1", Name: "goodbye"}))
	require.NoError(t, store.CreateArtist(ctx, &artist.Artist{ID: "a2", Name: "hello"}))
	require.NoError(t, store.CreateAlbum(ctx, &album.Album{ID: "al1", ArtistID: "a1", Title: "Farewell", YearReleased: pointer.To(2003)}))

	response := do(t, router, "GET", "/?q=o&sort=-name&include=aggregates&limit=1", "", nil)
	require.Equal(t, http.StatusOK, response.Code)

	var envelope struct {
		Data []struct {
			ID         string `json:"id"`
			Name       string `json:"name"`
			Aggregates *struct {
				AlbumCount int `json:"album_count"`
			} `json:"aggregates"`
		} `json:"data"`
		Meta struct {
			HasMore    bool `json:"has_more"`
			NextOffset int  `json:"next_offset"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &envelope))

	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "hello", envelope.Data[0].Name)
	require.NotNil(t, envelope.Data[0].Aggregates)
	assert.Equal(t, 0, envelope.Data[0].Aggregates.AlbumCount)
	assert.True(t, envelope.Meta.HasMore)
	assert.Equal(t, 1, envelope.Meta.NextOffset)
}

/*
TestHTTP_SearchArtists_AscendingSort sends the ascending markers through a
real query string, where "+" decodes to a space before the handler sees it.
Both forms must still reach the planner as directives.
*/
func TestHTTP_SearchArtists_AscendingSort(t *testing.T) {
	router, store := newTestRouter(t)
	ctx := context.Background()

	require.NoError(t, store.CreateArtist(ctx, &artist.Artist{ID: "a1", Name: "beta"}))
	require.NoError(t, store.CreateArtist(ctx, &artist.Artist{ID: "a2", Name: "alpha"}))
	require.NoError(t, store.CreateArtist(ctx, &artist.Artist{ID: "a3", Name: "gamma"}))
	require.NoError(t, store.CreateAlbum(ctx, &album.Album{ID: "al1", ArtistID: "a1", Title: "Debut", YearReleased: pointer.To(2005)}))
	require.NoError(t, store.CreateAlbum(ctx, &album.Album{ID: "al2", ArtistID: "a2", Title: "Debut", YearReleased: pointer.To(2015)}))

	var envelope struct {
		Data []struct {
			Name string `json:"name"`
		} `json:"data"`
	}

	response := do(t, router, "GET", "/?sort=+name", "", nil)
	require.Equal(t, http.StatusOK, response.Code)
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 3)
	assert.Equal(t, "alpha", envelope.Data[0].Name)
	assert.Equal(t, "beta", envelope.Data[1].Name)
	assert.Equal(t, "gamma", envelope.Data[2].Name)

	// Ascending latest year with the artist lacking albums pinned last.
	response = do(t, router, "GET", "/?sort=++latestAlbumYearReleased", "", nil)
	require.Equal(t, http.StatusOK, response.Code)
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 3)
	assert.Equal(t, "beta", envelope.Data[0].Name)
	assert.Equal(t, "alpha", envelope.Data[1].Name)
	assert.Equal(t, "gamma", envelope.Data[2].Name)
}

/*
TestHTTP_SearchArtists_BadSort maps a malformed directive to a 400.
*/
func TestHTTP_SearchArtists_BadSort(t *testing.T) {
	router, _ := newTestRouter(t)

	response := do(t, router, "GET", "/?sort=name", "", nil)
	assert.Equal(t, http.StatusBadRequest, response.Code)
	assert.Contains(t, response.Body.String(), "VALIDATION_ERROR")
}

/*
TestHTTP_CreateArtist covers the mutation status codes: 201 for an admin,
403 for anonymous, 400 for bad payloads.
*/
func TestHTTP_CreateArtist(t *testing.T) {
	router, _ := newTestRouter(t)
	admin := &sec.Actor{ID: "actor-admin", Role: sec.RoleAdmin}

	response := do(t, router, "POST", "/", `{"name":"New Act"}`, admin)
	require.Equal(t, http.StatusCreated, response.Code)
	assert.Contains(t, response.Body.String(), `"slug":"new-act"`)

	response = do(t, router, "POST", "/", `{"name":"Denied"}`, nil)
	assert.Equal(t, http.StatusForbidden, response.Code)

	response = do(t, router, "POST", "/", `{"name":`, admin)
	assert.Equal(t, http.StatusBadRequest, response.Code)

	response = do(t, router, "POST", "/", `{"name":""}`, admin)
	assert.Equal(t, http.StatusBadRequest, response.Code)
}

/*
TestHTTP_ArtistLifecycle walks get, rename, album listing, and destroy
through the routes.
*/
func TestHTTP_ArtistLifecycle(t *testing.T) {
	router, store := newTestRouter(t)
	ctx := context.Background()
	admin := &sec.Actor{ID: "actor-admin", Role: sec.RoleAdmin}

	require.NoError(t, store.CreateArtist(ctx, &artist.Artist{ID: "a1", Name: "First"}))
	require.NoError(t, store.CreateAlbum(ctx, &album.Album{ID: "al1", ArtistID: "a1", Title: "Debut", YearReleased: pointer.To(2010)}))

	response := do(t, router, "GET", "/a1", "", nil)
	require.Equal(t, http.StatusOK, response.Code)
	assert.Contains(t, response.Body.String(), `"name":"First"`)

	response = do(t, router, "GET", "/a1/albums", "", nil)
	require.Equal(t, http.StatusOK, response.Code)
	assert.Contains(t, response.Body.String(), `"title":"Debut"`)

	response = do(t, router, "PATCH", "/a1", `{"name":"Second"}`, admin)
	require.Equal(t, http.StatusOK, response.Code)
	assert.Contains(t, response.Body.String(), `"previous_names":["First"]`)

	response = do(t, router, "DELETE", "/a1", "", admin)
	require.Equal(t, http.StatusNoContent, response.Code)

	response = do(t, router, "GET", "/a1", "", nil)
	assert.Equal(t, http.StatusNotFound, response.Code)

	response = do(t, router, "GET", "/a1/albums", "", nil)
	assert.Equal(t, http.StatusNotFound, response.Code)
}
