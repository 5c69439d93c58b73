package mb

// Общие вложенные записи, встречающиеся у большинства сущностей.

// Alias — альтернативное имя или опечатка сущности.
type Alias struct {
	Name     string `json:"name"`
	SortName string `json:"sort-name,omitempty"`
	Type     string `json:"type,omitempty"`
	TypeID   string `json:"type-id,omitempty"`
	Locale   string `json:"locale,omitempty"`
	Primary  *bool  `json:"primary,omitempty"`
	Begin    string `json:"begin,omitempty"`
	End      string `json:"end,omitempty"`
	Ended    bool   `json:"ended,omitempty"`
}

// Tag — пользовательский тег с счетчиком голосов.
type Tag struct {
	Count int    `json:"count"`
	Name  string `json:"name"`
}

// Genre — жанр (в MusicBrainz реализован поверх системы тегов).
type Genre struct {
	ID             string `json:"id,omitempty"`
	Count          int    `json:"count,omitempty"`
	Name           string `json:"name"`
	Disambiguation string `json:"disambiguation,omitempty"`
}

// Rating — агрегированная оценка сущности (0-5).
type Rating struct {
	Value      float64 `json:"value"`
	VotesCount int     `json:"votes-count"`
}

// LifeSpan — период существования сущности (даты как строки "YYYY[-MM[-DD]]").
type LifeSpan struct {
	Begin string `json:"begin,omitempty"`
	End   string `json:"end,omitempty"`
	Ended bool   `json:"ended,omitempty"`
}

// ArtistCredit — кому и как приписана работа (релиз, запись и т.д.).
type ArtistCredit struct {
	Name       string `json:"name"`
	Joinphrase string `json:"joinphrase,omitempty"`
	Artist     Artist `json:"artist"`
}

// Relation — ребро связи между сущностями, пришедшее по *-rels inc токену.
// Заполнено поле, соответствующее target-type.
type Relation struct {
	Type       string   `json:"type"`
	TypeID     string   `json:"type-id,omitempty"`
	TargetType string   `json:"target-type,omitempty"`
	Direction  string   `json:"direction,omitempty"`
	Begin      string   `json:"begin,omitempty"`
	End        string   `json:"end,omitempty"`
	Ended      bool     `json:"ended,omitempty"`
	Attributes []string `json:"attributes,omitempty"`

	Artist       *Artist       `json:"artist,omitempty"`
	Release      *Release      `json:"release,omitempty"`
	ReleaseGroup *ReleaseGroup `json:"release_group,omitempty"`
	Recording    *Recording    `json:"recording,omitempty"`
	Label        *Label        `json:"label,omitempty"`
	Work         *Work         `json:"work,omitempty"`
	Area         *Area         `json:"area,omitempty"`
	URL          *URLResource  `json:"url,omitempty"`
}

// URLResource — url сущность внутри relation.
type URLResource struct {
	ID       string `json:"id"`
	Resource string `json:"resource"`
}
