package album

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vantrong/melodia/internal/platform/database/schema"
	"github.com/vantrong/melodia/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListAlbumsByArtist(ctx context.Context, artistID string) ([]*Album, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC NULLS LAST, %s ASC
	`,
		schema.CatalogAlbum.ID, schema.CatalogAlbum.ArtistID, schema.CatalogAlbum.Title,
		schema.CatalogAlbum.YearReleased, schema.CatalogAlbum.CoverImageURL,
		schema.CatalogAlbum.InsertedAt, schema.CatalogAlbum.UpdatedAt,
		schema.CatalogAlbum.Table, schema.CatalogAlbum.ArtistID,
		schema.CatalogAlbum.YearReleased, schema.CatalogAlbum.ID,
	)

	rows, err := repository.db.Query(ctx, query, artistID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_albums")
	}
	defer rows.Close()

	var albums []*Album
	for rows.Next() {
		al := &Album{}
		if err := rows.Scan(&al.ID, &al.ArtistID, &al.Title, &al.YearReleased, &al.CoverImageURL, &al.InsertedAt, &al.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_album")
		}
		albums = append(albums, al)
	}

	return albums, nil
}

func (repository *PostgresRepository) GetAlbum(ctx context.Context, id string) (*Album, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.CatalogAlbum.ID, schema.CatalogAlbum.ArtistID, schema.CatalogAlbum.Title,
		schema.CatalogAlbum.YearReleased, schema.CatalogAlbum.CoverImageURL,
		schema.CatalogAlbum.InsertedAt, schema.CatalogAlbum.UpdatedAt,
		schema.CatalogAlbum.Table, schema.CatalogAlbum.ID,
	)

	al := &Album{}
	err := repository.db.QueryRow(ctx, query, id).Scan(
		&al.ID, &al.ArtistID, &al.Title, &al.YearReleased, &al.CoverImageURL, &al.InsertedAt, &al.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_album")
	}

	return al, nil
}

func (repository *PostgresRepository) CreateAlbum(ctx context.Context, al *Album) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.CatalogAlbum.Table,
		schema.CatalogAlbum.ID, schema.CatalogAlbum.ArtistID, schema.CatalogAlbum.Title,
		schema.CatalogAlbum.YearReleased, schema.CatalogAlbum.CoverImageURL,
		schema.CatalogAlbum.InsertedAt, schema.CatalogAlbum.UpdatedAt,
		schema.CatalogAlbum.InsertedAt, schema.CatalogAlbum.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query, al.ID, al.ArtistID, al.Title, al.YearReleased, al.CoverImageURL).
		Scan(&al.InsertedAt, &al.UpdatedAt)
	return dberr.Wrap(err, "create_album")
}

func (repository *PostgresRepository) DeleteAlbum(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CatalogAlbum.Table, schema.CatalogAlbum.ID)

	cmd, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_album")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) ArtistExists(ctx context.Context, artistID string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.CatalogArtist.Table, schema.CatalogArtist.ID,
	)

	var exists bool
	if err := repository.db.QueryRow(ctx, query, artistID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "artist_exists")
	}

	return exists, nil
}
