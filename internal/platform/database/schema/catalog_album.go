package schema

// CatalogAlbumTable represents the 'catalog.album' table
type CatalogAlbumTable struct {
	Table         string
	ID            string
	ArtistID      string
	Title         string
	YearReleased  string
	CoverImageURL string
	InsertedAt    string
	UpdatedAt     string
}

// CatalogAlbum is the schema definition for catalog.album
var CatalogAlbum = CatalogAlbumTable{
	Table:         "catalog.album",
	ID:            "id",
	ArtistID:      "artistid",
	Title:         "title",
	YearReleased:  "yearreleased",
	CoverImageURL: "coverimageurl",
	InsertedAt:    "insertedat",
	UpdatedAt:     "updatedat",
}

func (t CatalogAlbumTable) Columns() []string {
	return []string{t.ID, t.ArtistID, t.Title, t.YearReleased, t.CoverImageURL, t.InsertedAt, t.UpdatedAt}
}
