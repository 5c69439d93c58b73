package mb

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilkoid/musicbrainz-go/pkg/config"
)

// scriptedHTTPClient — мок HTTPClient (Rule 9): отдает заранее
// подготовленные ответы по очереди и записывает запросы.
type scriptedHTTPClient struct {
	responses []*http.Response
	errs      []error
	requests  []*http.Request
}

func (s *scriptedHTTPClient) Do(req *http.Request) (*http.Response, error) {
	i := len(s.requests)
	s.requests = append(s.requests, req)

	if i < len(s.errs) && s.errs[i] != nil {
		return nil, s.errs[i]
	}
	if i < len(s.responses) {
		return s.responses[i], nil
	}
	// Скрипт кончился — повторяем последний ответ
	last := s.responses[len(s.responses)-1]
	return &http.Response{
		StatusCode: last.StatusCode,
		Header:     last.Header,
		Body:       io.NopCloser(strings.NewReader("")),
	}, nil
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func serviceUnavailable(retryAfter string) *http.Response {
	h := http.Header{}
	if retryAfter != "" {
		h.Set("retry-after", retryAfter)
	}
	return &http.Response{
		StatusCode: http.StatusServiceUnavailable,
		Header:     h,
		Body:       io.NopCloser(strings.NewReader("")),
	}
}

// mockClient собирает клиент с моком вместо HTTP и записью вызовов sleep.
func mockClient(mock *scriptedHTTPClient) (*Client, *[]time.Duration) {
	c := newTestClient()
	c.httpClient = mock

	var sleeps []time.Duration
	c.sleep = func(ctx context.Context, d time.Duration) error {
		sleeps = append(sleeps, d)
		return nil
	}
	return c, &sleeps
}

func TestRetryOn503ThenSuccess(t *testing.T) {
	mock := &scriptedHTTPClient{
		responses: []*http.Response{
			serviceUnavailable("2"),
			serviceUnavailable("2"),
			jsonResponse(200, `{"id": "mbid", "name": "Nirvana"}`),
		},
	}
	c, sleeps := mockClient(mock)

	artist, err := c.FetchArtist().ID("mbid").Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Nirvana", artist.Name)
	assert.Len(t, mock.requests, 3)
	// Спим retry-after+1 секунд на каждый 503
	assert.Equal(t, []time.Duration{3 * time.Second, 3 * time.Second}, *sleeps)
}

func TestRetryExhaustionReturnsMaxRetriesExceeded(t *testing.T) {
	mock := &scriptedHTTPClient{
		responses: []*http.Response{serviceUnavailable("1")},
	}
	c, _ := mockClient(mock)
	c.SetMaxRetries(4)

	_, err := c.FetchArtist().ID("mbid").Execute(context.Background())

	require.ErrorIs(t, err, ErrMaxRetriesExceeded)
	assert.Len(t, mock.requests, 4)
}

func Test503WithoutRetryAfterFailsImmediately(t *testing.T) {
	mock := &scriptedHTTPClient{
		responses: []*http.Response{serviceUnavailable("")},
	}
	c, sleeps := mockClient(mock)

	_, err := c.FetchArtist().ID("mbid").Execute(context.Background())

	require.ErrorIs(t, err, ErrRetryAfterMissing)
	assert.Len(t, mock.requests, 1)
	assert.Empty(t, *sleeps)
}

func Test503WithGarbageRetryAfterFailsImmediately(t *testing.T) {
	mock := &scriptedHTTPClient{
		responses: []*http.Response{serviceUnavailable("soon")},
	}
	c, _ := mockClient(mock)

	_, err := c.FetchArtist().ID("mbid").Execute(context.Background())

	require.ErrorIs(t, err, ErrRetryAfterMissing)
}

func TestTransportErrorIsNotRetried(t *testing.T) {
	transportErr := errors.New("connection refused")
	mock := &scriptedHTTPClient{
		errs: []error{transportErr},
	}
	c, _ := mockClient(mock)

	_, err := c.FetchArtist().ID("mbid").Execute(context.Background())

	require.ErrorIs(t, err, transportErr)
	assert.Len(t, mock.requests, 1)
}

func TestNon503ErrorStatusIsDecodedNotRetried(t *testing.T) {
	// 400 несет envelope ошибки, повтор не нужен
	mock := &scriptedHTTPClient{
		responses: []*http.Response{
			jsonResponse(400, `{"error": "Invalid mbid.", "help": "..."}`),
		},
	}
	c, _ := mockClient(mock)

	_, err := c.FetchArtist().ID("bad").Execute(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Len(t, mock.requests, 1)
}

func TestSetUserAgentRejectsEmpty(t *testing.T) {
	c := newTestClient()

	assert.Error(t, c.SetUserAgent(""))
	assert.NoError(t, c.SetUserAgent("my-app/1.0 (me@example.com)"))
	assert.Equal(t, "my-app/1.0 (me@example.com)", c.UserAgent())
}

func TestEndToEndFetchArtist(t *testing.T) {
	var gotUserAgent, gotAccept, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		gotPath = r.URL.Path
		w.Write([]byte(`{"id": "5b11f4ce-a62d-471e-81fc-a69a8278c7da", "name": "Nirvana", "country": "US"}`))
	}))
	defer server.Close()

	c := New()
	c.DropRateLimit()
	c.SetBaseURL(server.URL + "/ws/2")
	require.NoError(t, c.SetUserAgent("mb-test/1.0"))

	artist, err := c.FetchArtist().
		ID("5b11f4ce-a62d-471e-81fc-a69a8278c7da").
		Include(IncAliases).
		Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Nirvana", artist.Name)
	assert.Equal(t, "/ws/2/artist/5b11f4ce-a62d-471e-81fc-a69a8278c7da", gotPath)
	assert.Equal(t, "mb-test/1.0", gotUserAgent)
	assert.Equal(t, "application/json", gotAccept)
}

func TestEndToEndNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "Not Found", "help": "For usage, please see..."}`))
	}))
	defer server.Close()

	c := New()
	c.DropRateLimit()
	c.SetBaseURL(server.URL + "/ws/2")

	_, err := c.FetchArtist().ID("no-such-mbid").Execute(context.Background())

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, ErrNotFound, ClassifyError(err))
}

func TestNewFromConfigDefaults(t *testing.T) {
	// Пустой конфиг получает все дефолты через GetDefaults()
	c, err := NewFromConfig(config.MBConfig{})
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, c.musicbrainzURL)
	assert.Equal(t, DefaultMaxRetries, c.maxRetries)
	assert.NotNil(t, c.limiter)
}
