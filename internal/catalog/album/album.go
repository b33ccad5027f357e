package album

import "time"

// Album is a single release owned by exactly one artist.
//
// YearReleased and CoverImageURL are optional; the artist's derived fields
// (latest year, cover) are computed from whatever subset of albums carries
// them.
type Album struct {
	ID            string    `json:"id"`
	ArtistID      string    `json:"artist_id"`
	Title         string    `json:"title"`
	YearReleased  *int      `json:"year_released"`
	CoverImageURL *string   `json:"cover_image_url"`
	InsertedAt    time.Time `json:"inserted_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Attrs is the change set for creating an album.
type Attrs struct {
	ArtistID      string  `json:"artist_id"`
	Title         string  `json:"title"`
	YearReleased  *int    `json:"year_released"`
	CoverImageURL *string `json:"cover_image_url"`
}

const (
	FieldArtistID      = "artist_id"
	FieldTitle         = "title"
	FieldYearReleased  = "year_released"
	FieldCoverImageURL = "cover_image_url"
)

// earliestRecordedYear bounds YearReleased from below; phonograph cylinders
// predate nothing we would catalog.
const earliestRecordedYear = 1877
