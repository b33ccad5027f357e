package artist

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vantrong/melodia/internal/catalog/album"
	requestutil "github.com/vantrong/melodia/internal/platform/request"
	"github.com/vantrong/melodia/internal/platform/respond"
	"github.com/vantrong/melodia/pkg/pagination"
	"github.com/vantrong/melodia/pkg/query"
)

// includeAggregates is the ?include token that opts a read into the derived
// fields (album count, latest year, cover).
const includeAggregates = "aggregates"

type Handler struct {
	service *Service
	albums  *album.Service
}

func NewHandler(service *Service, albums *album.Service) *Handler {
	return &Handler{service: service, albums: albums}
}

// Routes returns the artist route group. Authorization lives in the service's
// policy evaluator, not here.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.searchArtists)
	router.Get("/{id}", handler.getArtist)
	router.Get("/{id}/albums", handler.listArtistAlbums)
	router.Post("/", handler.createArtist)
	router.Patch("/{id}", handler.updateArtist)
	router.Delete("/{id}", handler.destroyArtist)

	return router
}

// searchArtists handles GET /artists.
//
// Query parameters:
//
//	q        case-insensitive substring match on the current name
//	sort     comma-separated sort directives, e.g. sort=-name,++albumCount
//	include  "aggregates" to attach derived fields to each result
//	limit, offset
func (handler *Handler) searchArtists(writer http.ResponseWriter, request *http.Request) {
	params := request.URL.Query()

	artists, meta, err := handler.service.SearchArtists(
		request.Context(),
		Filter{Query: params.Get("q")},
		query.SortDirectives(params.Get("sort")),
		pagination.FromRequest(request),
		query.Flag(params.Get("include"), includeAggregates),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, artists, meta)
}

func (handler *Handler) getArtist(writer http.ResponseWriter, request *http.Request) {
	withAggregates := query.Flag(request.URL.Query().Get("include"), includeAggregates)

	a, err := handler.service.GetArtist(request.Context(), requestutil.ID(request, "id"), withAggregates)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, a)
}

// listArtistAlbums handles GET /artists/{id}/albums, newest release first.
func (handler *Handler) listArtistAlbums(writer http.ResponseWriter, request *http.Request) {
	// Resolve the artist first so a missing one yields 404, not an empty list.
	a, err := handler.service.GetArtist(request.Context(), requestutil.ID(request, "id"), false)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	albums, err := handler.albums.ListAlbumsByArtist(request.Context(), a.ID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, albums)
}

func (handler *Handler) createArtist(writer http.ResponseWriter, request *http.Request) {
	var attrs Attrs
	if err := requestutil.DecodeJSON(request, &attrs); err != nil {
		respond.Error(writer, request, err)
		return
	}

	a, err := handler.service.CreateArtist(request.Context(), attrs, requestutil.Actor(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, a)
}

func (handler *Handler) updateArtist(writer http.ResponseWriter, request *http.Request) {
	var attrs Attrs
	if err := requestutil.DecodeJSON(request, &attrs); err != nil {
		respond.Error(writer, request, err)
		return
	}

	a, err := handler.service.UpdateArtist(request.Context(), requestutil.ID(request, "id"), attrs, requestutil.Actor(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, a)
}

func (handler *Handler) destroyArtist(writer http.ResponseWriter, request *http.Request) {
	err := handler.service.DestroyArtist(request.Context(), requestutil.ID(request, "id"), requestutil.Actor(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
