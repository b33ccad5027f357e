package album

import (
	"context"
	"log/slog"
	"time"

	"github.com/vantrong/melodia/internal/platform/apperr"
	"github.com/vantrong/melodia/internal/platform/sec"
	"github.com/vantrong/melodia/internal/platform/validate"
	"github.com/vantrong/melodia/pkg/uuidv7"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListAlbumsByArtist returns every album owned by the artist, newest release
// first. Reads require no authorization.
func (service *Service) ListAlbumsByArtist(ctx context.Context, artistID string) ([]*Album, error) {
	return service.repo.ListAlbumsByArtist(ctx, artistID)
}

func (service *Service) GetAlbum(ctx context.Context, id string) (*Album, error) {
	return service.repo.GetAlbum(ctx, id)
}

// CreateAlbum adds a release to an existing artist's catalog.
//
// Policy and validation both run before any store write; a failed check
// leaves the catalog untouched.
func (service *Service) CreateAlbum(ctx context.Context, attrs Attrs, actor *sec.Actor) (*Album, error) {
	if !sec.Allowed(actor, sec.ActionCreate, nil) {
		return nil, apperr.Forbidden("You are not allowed to create albums")
	}

	validator := &validate.Validator{}
	validator.Required(FieldArtistID, attrs.ArtistID)
	validator.Required(FieldTitle, attrs.Title).MaxLen(FieldTitle, attrs.Title, 200)

	if attrs.YearReleased != nil {
		validator.Range(FieldYearReleased, *attrs.YearReleased, earliestRecordedYear, time.Now().Year()+1)
	}
	if attrs.CoverImageURL != nil {
		validator.URL(FieldCoverImageURL, *attrs.CoverImageURL)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	exists, err := service.repo.ArtistExists(ctx, attrs.ArtistID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Artist")
	}

	al := &Album{
		ID:            uuidv7.New(),
		ArtistID:      attrs.ArtistID,
		Title:         attrs.Title,
		YearReleased:  attrs.YearReleased,
		CoverImageURL: attrs.CoverImageURL,
	}

	if err := service.repo.CreateAlbum(ctx, al); err != nil {
		return nil, err
	}

	service.logger.Info("album_created",
		slog.String("album_id", al.ID),
		slog.String("artist_id", al.ArtistID),
	)
	return al, nil
}

// DestroyAlbum removes a single release. Destroying the owning artist
// instead removes all of its albums at once.
func (service *Service) DestroyAlbum(ctx context.Context, id string, actor *sec.Actor) error {
	if !sec.Allowed(actor, sec.ActionDestroy, nil) {
		return apperr.Forbidden("You are not allowed to destroy albums")
	}

	if err := service.repo.DeleteAlbum(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("album_destroyed", slog.String("album_id", id))
	return nil
}
