package artist

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vantrong/melodia/internal/catalog/album"
	"github.com/vantrong/melodia/internal/platform/database/schema"
	"github.com/vantrong/melodia/internal/platform/dberr"
	"github.com/vantrong/melodia/pkg/sortspec"
)

// orderColumns maps public sort field tokens to SQL expressions. Aggregate
// fields resolve against the lateral agg join in searchQuery.
var orderColumns = map[string]string{
	SortName:            "a.name",
	SortInsertedAt:      "a.insertedat",
	SortUpdatedAt:       "a.updatedat",
	SortAlbumCount:      "agg.albumcount",
	SortLatestAlbumYear: "agg.latestyear",
}

// likeEscaper neutralizes the ILIKE pattern metacharacters so a user query
// stays literal substring containment — the same contract the in-memory
// store satisfies with strings.Contains. The escape character itself goes
// first.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) SearchArtists(ctx context.Context, f Filter, plan sortspec.Plan, limit, offset int) ([]*Artist, bool, error) {
	// The lateral join feeds the aggregate sort keys; result rows carry only
	// stored columns since enrichment is the resolver's job.
	query := fmt.Sprintf(`
		SELECT a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s
		FROM %s a
		LEFT JOIN LATERAL (
			SELECT count(*) AS albumcount, max(al.%s) AS latestyear
			FROM %s al
			WHERE al.%s = a.%s
		) agg ON true
	`,
		schema.CatalogArtist.ID, schema.CatalogArtist.Slug, schema.CatalogArtist.Name,
		schema.CatalogArtist.PreviousNames, schema.CatalogArtist.Biography,
		schema.CatalogArtist.CreatedBy, schema.CatalogArtist.UpdatedBy,
		schema.CatalogArtist.InsertedAt, schema.CatalogArtist.UpdatedAt,
		schema.CatalogArtist.Table,
		schema.CatalogAlbum.YearReleased, schema.CatalogAlbum.Table,
		schema.CatalogAlbum.ArtistID, schema.CatalogArtist.ID,
	)

	args := []any{}
	if f.Query != "" {
		query += ` WHERE a.name ILIKE $1`
		args = append(args, "%"+escapeLike(f.Query)+"%")
	}

	// Over-fetch one row so hasMore needs no second counting query.
	query += fmt.Sprintf(" ORDER BY %s LIMIT $%d OFFSET $%d",
		plan.OrderBy(orderColumns, "a.id"), len(args)+1, len(args)+2)
	args = append(args, limit+1, offset)

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, false, dberr.Wrap(err, "search_artists")
	}
	defer rows.Close()

	var artists []*Artist
	for rows.Next() {
		a := &Artist{}
		if err := rows.Scan(&a.ID, &a.Slug, &a.Name, &a.PreviousNames, &a.Biography,
			&a.CreatedBy, &a.UpdatedBy, &a.InsertedAt, &a.UpdatedAt); err != nil {
			return nil, false, dberr.Wrap(err, "scan_artist")
		}
		artists = append(artists, a)
	}

	hasMore := len(artists) > limit
	if hasMore {
		artists = artists[:limit]
	}

	return artists, hasMore, nil
}

func (repository *PostgresRepository) GetArtist(ctx context.Context, id string) (*Artist, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.CatalogArtist.ID, schema.CatalogArtist.Slug, schema.CatalogArtist.Name,
		schema.CatalogArtist.PreviousNames, schema.CatalogArtist.Biography,
		schema.CatalogArtist.CreatedBy, schema.CatalogArtist.UpdatedBy,
		schema.CatalogArtist.InsertedAt, schema.CatalogArtist.UpdatedAt,
		schema.CatalogArtist.Table, schema.CatalogArtist.ID,
	)

	a := &Artist{}
	err := repository.db.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Slug, &a.Name, &a.PreviousNames, &a.Biography,
		&a.CreatedBy, &a.UpdatedBy, &a.InsertedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_artist")
	}

	return a, nil
}

func (repository *PostgresRepository) CreateArtist(ctx context.Context, a *Artist) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.CatalogArtist.Table,
		schema.CatalogArtist.ID, schema.CatalogArtist.Slug, schema.CatalogArtist.Name,
		schema.CatalogArtist.PreviousNames, schema.CatalogArtist.Biography,
		schema.CatalogArtist.CreatedBy, schema.CatalogArtist.UpdatedBy,
		schema.CatalogArtist.InsertedAt, schema.CatalogArtist.UpdatedAt,
		schema.CatalogArtist.InsertedAt, schema.CatalogArtist.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		a.ID, a.Slug, a.Name, a.PreviousNames, a.Biography, a.CreatedBy, a.UpdatedBy,
	).Scan(&a.InsertedAt, &a.UpdatedAt)
	return dberr.Wrap(err, "create_artist")
}

func (repository *PostgresRepository) UpdateArtist(ctx context.Context, a *Artist) error {
	// All fields of a rename — name, slug, trail, stamp — go down in one
	// UPDATE so partial application is impossible.
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.CatalogArtist.Table,
		schema.CatalogArtist.Slug, schema.CatalogArtist.Name, schema.CatalogArtist.PreviousNames,
		schema.CatalogArtist.Biography, schema.CatalogArtist.UpdatedBy, schema.CatalogArtist.UpdatedAt,
		schema.CatalogArtist.ID,
		schema.CatalogArtist.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		a.ID, a.Slug, a.Name, a.PreviousNames, a.Biography, a.UpdatedBy,
	).Scan(&a.UpdatedAt)
	return dberr.Wrap(err, "update_artist")
}

func (repository *PostgresRepository) DeleteArtist(ctx context.Context, id string) error {
	// Owned albums and the artist row fall in one transaction: the schema's
	// ON DELETE CASCADE would also cover this, but the cascade is a domain
	// invariant and stays visible here rather than buried in DDL.
	tx, err := repository.db.Begin(ctx)
	if err != nil {
		return dberr.Wrap(err, "delete_artist_begin")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	deleteAlbums := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CatalogAlbum.Table, schema.CatalogAlbum.ArtistID)
	if _, err := tx.Exec(ctx, deleteAlbums, id); err != nil {
		return dberr.Wrap(err, "delete_artist_albums")
	}

	deleteArtist := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CatalogArtist.Table, schema.CatalogArtist.ID)
	cmd, err := tx.Exec(ctx, deleteArtist, id)
	if err != nil {
		return dberr.Wrap(err, "delete_artist")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return dberr.Wrap(err, "delete_artist_commit")
	}
	return nil
}

func (repository *PostgresRepository) ListAlbums(ctx context.Context, artistID string) ([]*album.Album, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC
	`,
		schema.CatalogAlbum.ID, schema.CatalogAlbum.ArtistID, schema.CatalogAlbum.Title,
		schema.CatalogAlbum.YearReleased, schema.CatalogAlbum.CoverImageURL,
		schema.CatalogAlbum.InsertedAt, schema.CatalogAlbum.UpdatedAt,
		schema.CatalogAlbum.Table, schema.CatalogAlbum.ArtistID, schema.CatalogAlbum.ID,
	)

	rows, err := repository.db.Query(ctx, query, artistID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_artist_albums")
	}
	defer rows.Close()

	var albums []*album.Album
	for rows.Next() {
		al := &album.Album{}
		if err := rows.Scan(&al.ID, &al.ArtistID, &al.Title, &al.YearReleased,
			&al.CoverImageURL, &al.InsertedAt, &al.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_album")
		}
		albums = append(albums, al)
	}

	return albums, nil
}
