package mb

// Label — издатель (импринт или контролирующая его компания).
type Label struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	SortName string `json:"sort-name,omitempty"`

	// Тип описывает основную деятельность лейбла.
	Type   string `json:"type,omitempty"`
	TypeID string `json:"type-id,omitempty"`

	Disambiguation string `json:"disambiguation,omitempty"`
	Country        string `json:"country,omitempty"`

	// "LC" код лейбла.
	LabelCode *int `json:"label-code,omitempty"`

	Area     *Area     `json:"area,omitempty"`
	LifeSpan *LifeSpan `json:"life-span,omitempty"`

	Releases   []Release  `json:"releases,omitempty"`
	Relations  []Relation `json:"relations,omitempty"`
	Aliases    []Alias    `json:"aliases,omitempty"`
	Tags       []Tag      `json:"tags,omitempty"`
	Genres     []Genre    `json:"genres,omitempty"`
	Rating     *Rating    `json:"rating,omitempty"`
	Annotation string     `json:"annotation,omitempty"`
}

// FetchLabel — lookup лейбла по MBID.
func (c *Client) FetchLabel() *FetchQuery[Label] {
	return newFetchQuery[Label](c)
}

// BrowseLabels — все лейблы, связанные с другой сущностью.
func (c *Client) BrowseLabels() *BrowseQuery[Label] {
	return newBrowseQuery[Label](c)
}

// SearchLabels — полнотекстовый поиск лейблов.
func (c *Client) SearchLabels(query string) *SearchQuery[Label] {
	return newSearchQuery[Label](c, query)
}
