package album

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/vantrong/melodia/internal/platform/request"
	"github.com/vantrong/melodia/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the album route group.
//
// Mutations are open at the router level; the service's policy evaluator is
// the single authorization decision point.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{id}", handler.getAlbum)
	router.Post("/", handler.createAlbum)
	router.Delete("/{id}", handler.destroyAlbum)

	return router
}

func (handler *Handler) getAlbum(writer http.ResponseWriter, request *http.Request) {
	al, err := handler.service.GetAlbum(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, al)
}

func (handler *Handler) createAlbum(writer http.ResponseWriter, request *http.Request) {
	var attrs Attrs
	if err := requestutil.DecodeJSON(request, &attrs); err != nil {
		respond.Error(writer, request, err)
		return
	}

	al, err := handler.service.CreateAlbum(request.Context(), attrs, requestutil.Actor(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, al)
}

func (handler *Handler) destroyAlbum(writer http.ResponseWriter, request *http.Request) {
	err := handler.service.DestroyAlbum(request.Context(), requestutil.ID(request, "id"), requestutil.Actor(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
