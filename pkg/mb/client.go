// Package mb предоставляет reusable SDK для MusicBrainz WS/2 API.
//
// Architecture:
//
// Это **API SDK**, а не просто "тупой" HTTP клиент. Он предоставляет:
//   - HTTP клиент с retry, rate limiting и типизированными ошибками
//   - Типизированные query builders (fetch / browse / search / coverart)
//   - Табличный каталог сущностей (пути, inc токены, имена полей browse/search)
//   - Декодирование envelope ответов (payload или {error, help})
//
// Ограничения API MusicBrainz (https://musicbrainz.org/doc/MusicBrainz_API):
//   - обязательный осмысленный User-Agent в каждом запросе
//   - глобальный rate limit: 1 запрос/сек, burst до 5
//   - при превышении сервер отвечает 503 + заголовок retry-after
//
// Usage pattern:
//
//	client := mb.New()
//	artist, err := client.FetchArtist().
//	    ID("5b11f4ce-a62d-471e-81fc-a69a8278c7da").
//	    Include(mb.IncAliases).
//	    Execute(ctx)
package mb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/ilkoid/musicbrainz-go/pkg/config"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL — корневой URL основного metadata API.
	DefaultBaseURL = "http://musicbrainz.org/ws/2"

	// DefaultCoverartURL — корневой URL Cover Art Archive.
	DefaultCoverartURL = "http://coverartarchive.org"

	// DefaultUserAgent используется если приложение не задало свой.
	// MusicBrainz настоятельно просит указывать контактные данные приложения.
	DefaultUserAgent = "musicbrainz-go/0.1.0 (https://github.com/ilkoid/musicbrainz-go)"

	// DefaultMaxRetries — максимум повторов при 503 (лимиты согласно документации MB).
	DefaultMaxRetries = 10

	defaultTimeout = 30 * time.Second
)

// HTTPClient интерфейс для выполнения HTTP запросов.
//
// Позволяет мокировать HTTP клиент в тестах (Rule 9).
// Стандартный *http.Client реализует этот интерфейс.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client — клиент MusicBrainz API.
//
// Конфигурация (базовые URL, User-Agent, max retries) считается неизменяемой
// на время конкурентного использования. Единственный разделяемый мутабельный
// ресурс — rate limiter, он потокобезопасен.
type Client struct {
	musicbrainzURL string
	coverartURL    string
	userAgent      string
	maxRetries     int
	timeout        time.Duration

	httpClient HTTPClient // Интерфейс вместо конкретного типа для testability

	// Rate limiter API. По умолчанию 5 "ячеек" burst и пополнение 1/сек,
	// в соответствии с гайдлайнами MB. nil = лимитер отключен.
	limiter *rate.Limiter

	// sleep подменяется в тестах чтобы не ждать retry-after по-настоящему.
	sleep func(ctx context.Context, d time.Duration) error
}

// New создает клиент с дефолтными значениями (боевые URL, лимитер включен).
func New() *Client {
	return &Client{
		musicbrainzURL: DefaultBaseURL,
		coverartURL:    DefaultCoverartURL,
		userAgent:      DefaultUserAgent,
		maxRetries:     DefaultMaxRetries,
		timeout:        defaultTimeout,
		httpClient:     newHTTPClient(DefaultUserAgent, defaultTimeout),
		limiter:        newRateLimiter(),
		sleep:          sleepContext,
	}
}

// NewFromConfig создает клиент из конфигурации.
//
// Поля с нулевыми значениями используют дефолтные значения через GetDefaults().
func NewFromConfig(cfg config.MBConfig) (*Client, error) {
	cfg = cfg.GetDefaults()

	timeout, err := time.ParseDuration(cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid mb.timeout format: %w", err)
	}

	c := &Client{
		musicbrainzURL: cfg.BaseURL,
		coverartURL:    cfg.CoverartURL,
		userAgent:      cfg.UserAgent,
		maxRetries:     cfg.MaxRetries,
		timeout:        timeout,
		httpClient:     newHTTPClient(cfg.UserAgent, timeout),
		sleep:          sleepContext,
	}
	if !cfg.DisableRateLimit {
		c.limiter = newRateLimiter()
	}
	return c, nil
}

// SetUserAgent задает User-Agent для всех последующих запросов.
//
// Заголовки "запечены" в transport при создании HTTP клиента, поэтому смена
// User-Agent пересоздает клиент целиком. Нельзя вызывать конкурентно с
// запросами в полете.
func (c *Client) SetUserAgent(userAgent string) error {
	if userAgent == "" {
		return fmt.Errorf("user agent must not be empty")
	}
	c.userAgent = userAgent
	c.httpClient = newHTTPClient(userAgent, c.timeout)
	return nil
}

// SetBaseURL переопределяет URL metadata API (для тестов и зеркал).
func (c *Client) SetBaseURL(url string) {
	c.musicbrainzURL = url
}

// SetCoverartURL переопределяет URL Cover Art Archive.
func (c *Client) SetCoverartURL(url string) {
	c.coverartURL = url
}

// SetMaxRetries переопределяет максимум повторов при 503.
func (c *Client) SetMaxRetries(n int) {
	c.maxRetries = n
}

// DropRateLimit полностью отключает локальный rate limiter.
// После этого acquire() становится no-op.
func (c *Client) DropRateLimit() {
	c.limiter = nil
}

// UserAgent возвращает текущий User-Agent клиента.
func (c *Client) UserAgent() string {
	return c.userAgent
}

// sendWithRetries выполняет GET и разруливает 503 ответы сервера.
//
// Машина состояний: ожидание лимитера -> отправка -> {успех, 503, transport error}.
// Лимитер берется один раз перед первой отправкой: при повторе темп задает
// сам сервер через retry-after, локальный бакет его не дублирует.
// На 503 спим retry-after+1 секунд и повторяем, максимум maxRetries раз.
// Любой другой статус отдается вызывающему как есть: не-успешные статусы
// несут декодируемый envelope ошибки, а не повод для повтора.
// Transport ошибки не ретраятся (Rule 7: возвращаем ошибку сразу).
func (c *Client) sendWithRetries(ctx context.Context, rawURL string) (*http.Response, error) {
	if err := c.acquire(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	for retries := 0; retries != c.maxRetries; retries++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusServiceUnavailable {
			return resp, nil
		}

		// Уперлись в серверный rate limit. Ждем сколько сказали, плюс секунда.
		retryAfter := resp.Header.Get("retry-after")
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()

		if retryAfter == "" {
			// Протокол нарушен: 503 без retry-after не повторяем.
			return nil, ErrRetryAfterMissing
		}
		secs, err := strconv.Atoi(retryAfter)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrRetryAfterMissing, retryAfter)
		}

		if err := c.sleep(ctx, time.Duration(secs+1)*time.Second); err != nil {
			return nil, err
		}
	}

	return nil, ErrMaxRetriesExceeded
}

// getJSON выполняет GET и декодирует envelope ответа в T.
//
// query — человекочитаемое описание запроса (URL), попадает в NotFoundError.
func getJSON[T any](ctx context.Context, c *Client, rawURL string) (T, error) {
	var zero T

	resp, err := c.sendWithRetries(ctx, rawURL)
	if err != nil {
		return zero, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, fmt.Errorf("read body: %w", err)
	}

	return decodeResult[T](body, rawURL)
}

// newHTTPClient собирает *http.Client с дефолтными заголовками в transport.
func newHTTPClient(userAgent string, timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &headerTransport{
			base:      http.DefaultTransport,
			userAgent: userAgent,
		},
	}
}

// headerTransport добавляет обязательные заголовки к каждому запросу.
type headerTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", t.userAgent)
	clone.Header.Set("Accept", "application/json")
	return t.base.RoundTrip(clone)
}

// sleepContext — сон с поддержкой отмены через context.
func sleepContext(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
