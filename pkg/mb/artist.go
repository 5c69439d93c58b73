package mb

// Artist — музыкант, группа или иной участник, вовлеченный в создание музыки.
type Artist struct {
	// MBID сущности (https://musicbrainz.org/doc/MusicBrainz_Identifier).
	ID string `json:"id"`

	// Официальное имя артиста.
	Name     string `json:"name"`
	SortName string `json:"sort-name,omitempty"`

	// Комментарий для различения одноименных артистов.
	Disambiguation string `json:"disambiguation,omitempty"`

	Type    string `json:"type,omitempty"`
	TypeID  string `json:"type-id,omitempty"`
	Gender  string `json:"gender,omitempty"`
	Country string `json:"country,omitempty"`

	Area      *Area     `json:"area,omitempty"`
	BeginArea *Area     `json:"begin-area,omitempty"`
	LifeSpan  *LifeSpan `json:"life-span,omitempty"`

	// Подчиненные коллекции, присутствуют только при соответствующих inc токенах.
	Releases      []Release      `json:"releases,omitempty"`
	ReleaseGroups []ReleaseGroup `json:"release-groups,omitempty"`
	Recordings    []Recording    `json:"recordings,omitempty"`
	Works         []Work         `json:"works,omitempty"`
	Aliases       []Alias        `json:"aliases,omitempty"`
	Tags          []Tag          `json:"tags,omitempty"`
	Genres        []Genre        `json:"genres,omitempty"`
	Rating        *Rating        `json:"rating,omitempty"`
	Relations     []Relation     `json:"relations,omitempty"`
	Annotation    string         `json:"annotation,omitempty"`
}

// FetchArtist — lookup артиста по MBID.
func (c *Client) FetchArtist() *FetchQuery[Artist] {
	return newFetchQuery[Artist](c)
}

// BrowseArtists — все артисты, связанные с другой сущностью.
func (c *Client) BrowseArtists() *BrowseQuery[Artist] {
	return newBrowseQuery[Artist](c)
}

// SearchArtists — полнотекстовый поиск артистов по lucene выражению.
func (c *Client) SearchArtists(query string) *SearchQuery[Artist] {
	return newSearchQuery[Artist](c, query)
}
