package artist

import (
	"context"
	"log/slog"

	"github.com/vantrong/melodia/internal/platform/apperr"
	"github.com/vantrong/melodia/internal/platform/sec"
	"github.com/vantrong/melodia/internal/platform/validate"
	"github.com/vantrong/melodia/pkg/pagination"
	"github.com/vantrong/melodia/pkg/pointer"
	"github.com/vantrong/melodia/pkg/slug"
	"github.com/vantrong/melodia/pkg/sortspec"
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

// # Policy Affordances

// CanCreateArtist reports whether the actor may create artists.
// Pure decision — callers use these to pre-filter UI affordances without
// attempting the mutation.
func CanCreateArtist(actor *sec.Actor) bool {
	return sec.Allowed(actor, sec.ActionCreate, nil)
}

// CanUpdateArtist reports whether the actor may update the given artist.
func CanUpdateArtist(actor *sec.Actor, a *Artist) bool {
	return sec.Allowed(actor, sec.ActionUpdate, a)
}

// CanDestroyArtist reports whether the actor may destroy the given artist.
func CanDestroyArtist(actor *sec.Actor, a *Artist) bool {
	return sec.Allowed(actor, sec.ActionDestroy, a)
}

// # Read Operations

// SearchArtists runs a filtered, ordered, paginated catalog search.
//
// sortTokens are raw directives such as "+name" or "--albumCount"; an
// unparsable token fails the whole search with a validation error. With no
// tokens the catalog orders by ascending name. Reads require no
// authorization and have no side effects — callers may abandon them freely.
//
// Aggregate enrichment is opt-in so the related-row loads only happen when
// the caller will actually use them.
func (service *Service) SearchArtists(ctx context.Context, filter Filter, sortTokens []string, page pagination.Params, withAggregates bool) ([]*Artist, pagination.Meta, error) {
	plan, err := sortspec.Parse(sortTokens, sortFields)
	if err != nil {
		return nil, pagination.Meta{}, apperr.ValidationError("Validation failed",
			apperr.FieldError{Field: FieldSort, Message: err.Error()})
	}
	if plan.IsZero() {
		plan = defaultSort
	}

	// Direct callers may hand in a zero-value page; bound it here so a
	// zero limit never produces an empty page that still claims more.
	page = page.Normalize()

	artists, hasMore, err := service.repo.SearchArtists(ctx, filter, plan, page.Limit, page.Offset)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	if withAggregates {
		if err := service.enrich(ctx, artists); err != nil {
			return nil, pagination.Meta{}, err
		}
	}

	return artists, pagination.NewMeta(page, len(artists), hasMore), nil
}

// GetArtist loads a single artist, optionally enriched with aggregates.
func (service *Service) GetArtist(ctx context.Context, id string, withAggregates bool) (*Artist, error) {
	a, err := service.repo.GetArtist(ctx, id)
	if err != nil {
		return nil, err
	}

	if withAggregates {
		if err := service.enrich(ctx, []*Artist{a}); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// enrich resolves aggregates for each artist from its current album rows.
func (service *Service) enrich(ctx context.Context, artists []*Artist) error {
	for _, a := range artists {
		albums, err := service.repo.ListAlbums(ctx, a.ID)
		if err != nil {
			return err
		}
		a.Aggregates = pointer.To(ResolveAggregates(albums))
	}
	return nil
}

// # Mutations

// CreateArtist adds a new artist to the catalog.
//
// Policy is evaluated first, then validation; only when both pass does the
// store see a write. The actor's ID is stamped into created_by/updated_by;
// a nil actor in a context that reaches this far (trusted internal callers)
// leaves the stamps absent.
func (service *Service) CreateArtist(ctx context.Context, attrs Attrs, actor *sec.Actor) (*Artist, error) {
	if !CanCreateArtist(actor) {
		return nil, apperr.Forbidden("You are not allowed to create artists")
	}

	name := pointer.Val(attrs.Name)

	validator := &validate.Validator{}
	validator.Required(FieldName, name).MaxLen(FieldName, name, 200)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	a := &Artist{
		ID:            uuidv7.New(),
		Slug:          slug.From(name),
		Name:          name,
		PreviousNames: []string{},
		Biography:     attrs.Biography,
	}
	if actor != nil {
		a.CreatedBy = pointer.To(actor.ID)
		a.UpdatedBy = pointer.To(actor.ID)
	}

	if err := service.repo.CreateArtist(ctx, a); err != nil {
		return nil, err
	}

	service.logger.Info("artist_created",
		slog.String("artist_id", a.ID),
		slog.String("name", a.Name),
	)
	return a, nil
}

// UpdateArtist applies a change set to an existing artist.
//
// A rename additionally rewrites the previous-names trail and the slug; all
// changed fields, the trail, and the updated-by stamp land in one atomic
// store write. A change set whose name equals the stored name touches the
// trail not at all.
func (service *Service) UpdateArtist(ctx context.Context, id string, attrs Attrs, actor *sec.Actor) (*Artist, error) {
	current, err := service.repo.GetArtist(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanUpdateArtist(actor, current) {
		return nil, apperr.Forbidden("You are not allowed to update artists")
	}

	renamed := false
	updated := *current

	if attrs.Name != nil {
		validator := &validate.Validator{}
		validator.Required(FieldName, *attrs.Name).MaxLen(FieldName, *attrs.Name, 200)
		if err := validator.Err(); err != nil {
			return nil, err
		}

		if *attrs.Name != current.Name {
			updated.PreviousNames = NextPreviousNames(current.Name, *attrs.Name, current.PreviousNames)
			updated.Name = *attrs.Name
			updated.Slug = slug.From(*attrs.Name)
			renamed = true
		}
	}

	if attrs.Biography != nil {
		updated.Biography = attrs.Biography
	}

	updated.UpdatedBy = nil
	if actor != nil {
		updated.UpdatedBy = pointer.To(actor.ID)
	}

	if err := service.repo.UpdateArtist(ctx, &updated); err != nil {
		return nil, err
	}

	service.logger.Info("artist_updated",
		slog.String("artist_id", updated.ID),
		slog.Bool("renamed", renamed),
	)
	return &updated, nil
}

// DestroyArtist removes the artist and cascades to every album it owns as a
// single atomic unit.
func (service *Service) DestroyArtist(ctx context.Context, id string, actor *sec.Actor) error {
	if !CanDestroyArtist(actor, nil) {
		return apperr.Forbidden("You are not allowed to destroy artists")
	}

	if err := service.repo.DeleteArtist(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("artist_destroyed", slog.String("artist_id", id))
	return nil
}
