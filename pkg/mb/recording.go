package mb

// Recording — уникальная запись трека; связывает треки разных релизов.
type Recording struct {
	ID    string `json:"id"`
	Title string `json:"title"`

	// Длительность в миллисекундах.
	Length *int `json:"length,omitempty"`

	Video            bool     `json:"video,omitempty"`
	Disambiguation   string   `json:"disambiguation,omitempty"`
	ISRCs            []string `json:"isrcs,omitempty"`
	FirstReleaseDate string   `json:"first-release-date,omitempty"`

	ArtistCredit []ArtistCredit `json:"artist-credit,omitempty"`
	Releases     []Release      `json:"releases,omitempty"`
	Relations    []Relation     `json:"relations,omitempty"`
	Aliases      []Alias        `json:"aliases,omitempty"`
	Tags         []Tag          `json:"tags,omitempty"`
	Genres       []Genre        `json:"genres,omitempty"`
	Rating       *Rating        `json:"rating,omitempty"`
	Annotation   string         `json:"annotation,omitempty"`
}

// FetchRecording — lookup записи по MBID.
func (c *Client) FetchRecording() *FetchQuery[Recording] {
	return newFetchQuery[Recording](c)
}

// BrowseRecordings — все записи, связанные с другой сущностью.
func (c *Client) BrowseRecordings() *BrowseQuery[Recording] {
	return newBrowseQuery[Recording](c)
}

// SearchRecordings — полнотекстовый поиск записей.
func (c *Client) SearchRecordings(query string) *SearchQuery[Recording] {
	return newSearchQuery[Recording](c, query)
}
