package mb

// Release — конкретное издание продукта: дата, страна, лейбл, штрихкод,
// упаковка. Альбом, купленный в магазине — это release.
type Release struct {
	ID    string `json:"id"`
	Title string `json:"title"`

	// Статус описывает, насколько релиз "официальный".
	Status   string `json:"status,omitempty"`
	StatusID string `json:"status-id,omitempty"`

	// Дата выхода, строкой "YYYY[-MM[-DD]]".
	Date    string `json:"date,omitempty"`
	Country string `json:"country,omitempty"`

	// Качество данных релиза (не музыки — для музыки есть рейтинги).
	Quality string `json:"quality,omitempty"`

	// Штрихкод: обычно 12-значный UPC или 13-значный EAN.
	Barcode        string `json:"barcode,omitempty"`
	Disambiguation string `json:"disambiguation,omitempty"`
	Packaging      string `json:"packaging,omitempty"`
	PackagingID    string `json:"packaging-id,omitempty"`
	ASIN           string `json:"asin,omitempty"`

	TextRepresentation *TextRepresentation `json:"text-representation,omitempty"`

	ReleaseGroup *ReleaseGroup  `json:"release-group,omitempty"`
	ArtistCredit []ArtistCredit `json:"artist-credit,omitempty"`
	Media        []Media        `json:"media,omitempty"`
	LabelInfo    []LabelInfo    `json:"label-info,omitempty"`
	Relations    []Relation     `json:"relations,omitempty"`
	Aliases      []Alias        `json:"aliases,omitempty"`
	Tags         []Tag          `json:"tags,omitempty"`
	Genres       []Genre        `json:"genres,omitempty"`
	Annotation   string         `json:"annotation,omitempty"`
}

// TextRepresentation — язык и письменность треклиста релиза.
type TextRepresentation struct {
	Language string `json:"language,omitempty"`
	Script   string `json:"script,omitempty"`
}

// Media — физический носитель релиза (каждый CD в боксете — отдельный medium).
type Media struct {
	Title      string  `json:"title,omitempty"`
	Position   int     `json:"position,omitempty"`
	Format     string  `json:"format,omitempty"`
	FormatID   string  `json:"format-id,omitempty"`
	DiscCount  int     `json:"disc-count,omitempty"`
	TrackCount int     `json:"track-count,omitempty"`
	Tracks     []Track `json:"tracks,omitempty"`
}

// Track — позиция в треклисте носителя.
type Track struct {
	ID        string     `json:"id"`
	Number    string     `json:"number,omitempty"`
	Title     string     `json:"title"`
	Position  int        `json:"position,omitempty"`
	Length    *int       `json:"length,omitempty"`
	Recording *Recording `json:"recording,omitempty"`
}

// LabelInfo — лейбл, выпустивший релиз, с каталожным номером.
type LabelInfo struct {
	CatalogNumber string `json:"catalog-number,omitempty"`
	Label         *Label `json:"label,omitempty"`
}

// FetchRelease — lookup релиза по MBID.
func (c *Client) FetchRelease() *FetchQuery[Release] {
	return newFetchQuery[Release](c)
}

// BrowseReleases — все релизы, связанные с другой сущностью.
func (c *Client) BrowseReleases() *BrowseQuery[Release] {
	return newBrowseQuery[Release](c)
}

// SearchReleases — полнотекстовый поиск релизов по lucene выражению.
func (c *Client) SearchReleases(query string) *SearchQuery[Release] {
	return newSearchQuery[Release](c, query)
}

// FetchReleaseCoverart — lookup обложки релиза в Cover Art Archive.
func (c *Client) FetchReleaseCoverart() *FetchCoverartQuery[Release] {
	return newCoverartQuery[Release](c)
}
