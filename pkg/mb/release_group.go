package mb

// ReleaseGroup группирует издания одного и того же альбома/сингла.
type ReleaseGroup struct {
	ID    string `json:"id"`
	Title string `json:"title"`

	PrimaryType      string   `json:"primary-type,omitempty"`
	PrimaryTypeID    string   `json:"primary-type-id,omitempty"`
	SecondaryTypes   []string `json:"secondary-types,omitempty"`
	SecondaryTypeIDs []string `json:"secondary-type-ids,omitempty"`

	FirstReleaseDate string `json:"first-release-date,omitempty"`
	Disambiguation   string `json:"disambiguation,omitempty"`

	ArtistCredit []ArtistCredit `json:"artist-credit,omitempty"`
	Releases     []Release      `json:"releases,omitempty"`
	Relations    []Relation     `json:"relations,omitempty"`
	Aliases      []Alias        `json:"aliases,omitempty"`
	Tags         []Tag          `json:"tags,omitempty"`
	Genres       []Genre        `json:"genres,omitempty"`
	Rating       *Rating        `json:"rating,omitempty"`
	Annotation   string         `json:"annotation,omitempty"`
}

// FetchReleaseGroup — lookup релиз-группы по MBID.
func (c *Client) FetchReleaseGroup() *FetchQuery[ReleaseGroup] {
	return newFetchQuery[ReleaseGroup](c)
}

// BrowseReleaseGroups — все релиз-группы, связанные с другой сущностью.
func (c *Client) BrowseReleaseGroups() *BrowseQuery[ReleaseGroup] {
	return newBrowseQuery[ReleaseGroup](c)
}

// SearchReleaseGroups — полнотекстовый поиск релиз-групп.
func (c *Client) SearchReleaseGroups(query string) *SearchQuery[ReleaseGroup] {
	return newSearchQuery[ReleaseGroup](c, query)
}

// FetchReleaseGroupCoverart — lookup обложки релиз-группы в Cover Art Archive.
func (c *Client) FetchReleaseGroupCoverart() *FetchCoverartQuery[ReleaseGroup] {
	return newCoverartQuery[ReleaseGroup](c)
}
