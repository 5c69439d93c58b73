package mb

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Place — площадка: клуб, студия, стадион.
type Place struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Type           string `json:"type,omitempty"`
	TypeID         string `json:"type-id,omitempty"`
	Disambiguation string `json:"disambiguation,omitempty"`
	Address        string `json:"address,omitempty"`

	Area        *Area        `json:"area,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`

	LifeSpan   *LifeSpan  `json:"life-span,omitempty"`
	Relations  []Relation `json:"relations,omitempty"`
	Aliases    []Alias    `json:"aliases,omitempty"`
	Tags       []Tag      `json:"tags,omitempty"`
	Genres     []Genre    `json:"genres,omitempty"`
	Annotation string     `json:"annotation,omitempty"`
}

// Coordinates — географические координаты площадки.
//
// API отдает широту/долготу то числом, то строкой, поэтому тут кастомный
// анмаршал, принимающий оба варианта.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

func (c *Coordinates) UnmarshalJSON(data []byte) error {
	var raw struct {
		Latitude  json.RawMessage `json:"latitude"`
		Longitude json.RawMessage `json:"longitude"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	lat, err := parseCoordinate(raw.Latitude)
	if err != nil {
		return fmt.Errorf("latitude: %w", err)
	}
	lon, err := parseCoordinate(raw.Longitude)
	if err != nil {
		return fmt.Errorf("longitude: %w", err)
	}

	c.Latitude = lat
	c.Longitude = lon
	return nil
}

func (c Coordinates) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]float64{
		"latitude":  c.Latitude,
		"longitude": c.Longitude,
	})
}

func parseCoordinate(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 {
		return 0, nil
	}

	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		return num, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("coordinate is neither number nor string: %s", raw)
	}
	return strconv.ParseFloat(s, 64)
}

// FetchPlace — lookup площадки по MBID.
func (c *Client) FetchPlace() *FetchQuery[Place] {
	return newFetchQuery[Place](c)
}

// BrowsePlaces — все площадки, связанные с другой сущностью.
func (c *Client) BrowsePlaces() *BrowseQuery[Place] {
	return newBrowseQuery[Place](c)
}

// SearchPlaces — полнотекстовый поиск площадок.
func (c *Client) SearchPlaces(query string) *SearchQuery[Place] {
	return newSearchQuery[Place](c, query)
}
