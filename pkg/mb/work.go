package mb

// Work — произведение как таковое (композиция), независимо от записей.
type Work struct {
	ID    string `json:"id"`
	Title string `json:"title"`

	Type   string `json:"type,omitempty"`
	TypeID string `json:"type-id,omitempty"`

	Languages      []string `json:"languages,omitempty"`
	ISWCs          []string `json:"iswcs,omitempty"`
	Disambiguation string   `json:"disambiguation,omitempty"`

	Relations  []Relation `json:"relations,omitempty"`
	Aliases    []Alias    `json:"aliases,omitempty"`
	Tags       []Tag      `json:"tags,omitempty"`
	Genres     []Genre    `json:"genres,omitempty"`
	Rating     *Rating    `json:"rating,omitempty"`
	Annotation string     `json:"annotation,omitempty"`
}

// FetchWork — lookup произведения по MBID.
func (c *Client) FetchWork() *FetchQuery[Work] {
	return newFetchQuery[Work](c)
}

// BrowseWorks — все произведения, связанные с другой сущностью.
func (c *Client) BrowseWorks() *BrowseQuery[Work] {
	return newBrowseQuery[Work](c)
}

// SearchWorks — полнотекстовый поиск произведений.
func (c *Client) SearchWorks(query string) *SearchQuery[Work] {
	return newSearchQuery[Work](c, query)
}
