package mb

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeResultSuccess(t *testing.T) {
	body := []byte(`{"id": "mbid", "name": "Nirvana", "country": "US"}`)

	artist, err := decodeResult[Artist](body, "query")

	require.NoError(t, err)
	assert.Equal(t, "mbid", artist.ID)
	assert.Equal(t, "Nirvana", artist.Name)
	assert.Equal(t, "US", artist.Country)
}

func TestDecodeResultNotFound(t *testing.T) {
	body := []byte(`{"error": "Not Found", "help": "For usage, please see..."}`)

	_, err := decodeResult[Artist](body, "http://example/artist/x")

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "http://example/artist/x", notFound.Query)
}

func TestDecodeResultAPIErrorKeepsFields(t *testing.T) {
	body := []byte(`{"error": "Invalid mbid.", "help": "For usage, please see: https://musicbrainz.org/development/mmd"}`)

	_, err := decodeResult[Artist](body, "query")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid mbid.", apiErr.Message)
	assert.Contains(t, apiErr.Help, "musicbrainz.org")
}

func TestDecodeResultPayloadWinsOverEmptyError(t *testing.T) {
	// Поле "error" пустое — это payload, а не envelope ошибки
	body := []byte(`{"id": "mbid", "name": "X", "error": ""}`)

	artist, err := decodeResult[Artist](body, "query")

	require.NoError(t, err)
	assert.Equal(t, "mbid", artist.ID)
}

func TestDecodeResultGarbageIsDecodeError(t *testing.T) {
	body := []byte(`<html>Bad Gateway</html>`)

	_, err := decodeResult[Artist](body, "query")

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "query", decodeErr.Query)
	assert.Error(t, decodeErr.Unwrap())
}

func TestBrowseResultUsesPerTypeFieldNames(t *testing.T) {
	artistBody := []byte(`{"artist-count": 12, "artist-offset": 3, "artists": [{"id": "a1", "name": "A"}]}`)

	var artists BrowseResult[Artist]
	require.NoError(t, json.Unmarshal(artistBody, &artists))
	assert.Equal(t, 12, artists.Count)
	assert.Equal(t, 3, artists.Offset)
	require.Len(t, artists.Entities, 1)
	assert.Equal(t, "a1", artists.Entities[0].ID)

	// У лейблов свои имена полей
	labelBody := []byte(`{"label-count": 2, "label-offset": 0, "labels": [{"id": "l1", "name": "Motown"}]}`)

	var labels BrowseResult[Label]
	require.NoError(t, json.Unmarshal(labelBody, &labels))
	assert.Equal(t, 2, labels.Count)
	require.Len(t, labels.Entities, 1)
	assert.Equal(t, "Motown", labels.Entities[0].Name)
}

func TestBrowseResultMarshalRoundTrip(t *testing.T) {
	original := BrowseResult[Artist]{
		Count:    1,
		Offset:   0,
		Entities: []Artist{{ID: "a1", Name: "A"}},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"artist-count":1`)

	var decoded BrowseResult[Artist]
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestSearchResultUsesCatalogueEntitiesField(t *testing.T) {
	body := []byte(`{
		"created": "2026-01-15T10:30:00.000Z",
		"count": 99,
		"offset": 25,
		"artists": [{"id": "a1", "name": "A", "score": 100}]
	}`)

	var result SearchResult[Artist]
	require.NoError(t, json.Unmarshal(body, &result))

	assert.Equal(t, 99, result.Count)
	assert.Equal(t, 25, result.Offset)
	assert.Equal(t, 2026, result.Created.Year())
	require.Len(t, result.Entities, 1)
	assert.Equal(t, "a1", result.Entities[0].ID)
}

func TestSearchResultCreatedWithoutTimezone(t *testing.T) {
	// Сервер иногда отдает created без таймзоны
	body := []byte(`{"created": "2026-01-15T10:30:00.123", "count": 0, "offset": 0, "works": []}`)

	var result SearchResult[Work]
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, time.January, result.Created.Month())
}

func TestCoordinatesAcceptNumberAndString(t *testing.T) {
	var fromNumbers Coordinates
	require.NoError(t, json.Unmarshal([]byte(`{"latitude": 55.75, "longitude": 37.62}`), &fromNumbers))
	assert.InDelta(t, 55.75, fromNumbers.Latitude, 0.001)

	var fromStrings Coordinates
	require.NoError(t, json.Unmarshal([]byte(`{"latitude": "55.75", "longitude": "37.62"}`), &fromStrings))
	assert.InDelta(t, 37.62, fromStrings.Longitude, 0.001)

	var broken Coordinates
	assert.Error(t, json.Unmarshal([]byte(`{"latitude": true, "longitude": 0}`), &broken))
}
