package mb

// Event — организованное событие: концерт, фестиваль, тур.
type Event struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Type           string `json:"type,omitempty"`
	TypeID         string `json:"type-id,omitempty"`
	Disambiguation string `json:"disambiguation,omitempty"`

	// Время начала "HH:MM".
	Time      string `json:"time,omitempty"`
	Setlist   string `json:"setlist,omitempty"`
	Cancelled bool   `json:"cancelled,omitempty"`

	LifeSpan   *LifeSpan  `json:"life-span,omitempty"`
	Relations  []Relation `json:"relations,omitempty"`
	Aliases    []Alias    `json:"aliases,omitempty"`
	Tags       []Tag      `json:"tags,omitempty"`
	Genres     []Genre    `json:"genres,omitempty"`
	Rating     *Rating    `json:"rating,omitempty"`
	Annotation string     `json:"annotation,omitempty"`
}

// FetchEvent — lookup события по MBID.
func (c *Client) FetchEvent() *FetchQuery[Event] {
	return newFetchQuery[Event](c)
}

// BrowseEvents — все события, связанные с другой сущностью.
func (c *Client) BrowseEvents() *BrowseQuery[Event] {
	return newBrowseQuery[Event](c)
}

// SearchEvents — полнотекстовый поиск событий.
func (c *Client) SearchEvents(query string) *SearchQuery[Event] {
	return newSearchQuery[Event](c, query)
}
