package schema

// CatalogArtistTable represents the 'catalog.artist' table
type CatalogArtistTable struct {
	Table         string
	ID            string
	Slug          string
	Name          string
	PreviousNames string
	Biography     string
	CreatedBy     string
	UpdatedBy     string
	InsertedAt    string
	UpdatedAt     string
}

// CatalogArtist is the schema definition for catalog.artist
var CatalogArtist = CatalogArtistTable{
	Table:         "catalog.artist",
	ID:            "id",
	Slug:          "slug",
	Name:          "name",
	PreviousNames: "previousnames",
	Biography:     "biography",
	CreatedBy:     "createdby",
	UpdatedBy:     "updatedby",
	InsertedAt:    "insertedat",
	UpdatedAt:     "updatedat",
}

func (t CatalogArtistTable) Columns() []string {
	return []string{t.ID, t.Slug, t.Name, t.PreviousNames, t.Biography, t.CreatedBy, t.UpdatedBy, t.InsertedAt, t.UpdatedAt}
}
