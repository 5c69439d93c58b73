package mb

// Area — географический регион: страна, город, субрегион.
type Area struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	SortName string `json:"sort-name,omitempty"`

	Type           string `json:"type,omitempty"`
	TypeID         string `json:"type-id,omitempty"`
	Disambiguation string `json:"disambiguation,omitempty"`

	ISO31661Codes []string `json:"iso-3166-1-codes,omitempty"`
	ISO31662Codes []string `json:"iso-3166-2-codes,omitempty"`

	LifeSpan  *LifeSpan  `json:"life-span,omitempty"`
	Relations []Relation `json:"relations,omitempty"`
	Aliases   []Alias    `json:"aliases,omitempty"`
	Tags      []Tag      `json:"tags,omitempty"`
	Genres    []Genre    `json:"genres,omitempty"`
}

// FetchArea — lookup региона по MBID.
func (c *Client) FetchArea() *FetchQuery[Area] {
	return newFetchQuery[Area](c)
}

// BrowseAreas — все регионы, связанные с другой сущностью.
func (c *Client) BrowseAreas() *BrowseQuery[Area] {
	return newBrowseQuery[Area](c)
}

// SearchAreas — полнотекстовый поиск регионов.
func (c *Client) SearchAreas(query string) *SearchQuery[Area] {
	return newSearchQuery[Area](c, query)
}
