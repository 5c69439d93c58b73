package mb

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// SearchQuery — полнотекстовый поиск сущностей по lucene выражению.
//
// Выражение уходит в URL как есть, после "&query=". SDK его не кодирует
// и не экранирует: корректность lucene фрагмента — ответственность
// вызывающего (см. pkg/lucene для удобного построения).
type SearchQuery[T any] struct {
	inner baseQuery[T]
	query string
	page  pagination
}

func newSearchQuery[T any](c *Client, query string) *SearchQuery[T] {
	return &SearchQuery[T]{
		inner: baseQuery[T]{client: c, path: mustDescriptor[T]().path},
		query: query,
	}
}

// Include добавляет inc токены к запросу, в порядке вызова.
func (q *SearchQuery[T]) Include(incs ...Include) *SearchQuery[T] {
	q.inner.include(incs...)
	return q
}

// Limit задает количество результатов на страницу (1-100, дефолт сервера 25).
func (q *SearchQuery[T]) Limit(limit int) *SearchQuery[T] {
	q.page.limit = limit
	q.page.hasLimit = true
	return q
}

// Offset задает смещение для постраничного обхода результатов.
func (q *SearchQuery[T]) Offset(offset int) *SearchQuery[T] {
	q.page.offset = offset
	q.page.hasOffset = true
	return q
}

// Clone возвращает независимую копию запроса до выполнения
// (например, чтобы запросить вторую страницу того же поиска).
func (q *SearchQuery[T]) Clone() *SearchQuery[T] {
	clone := *q
	clone.inner = q.inner.clone()
	return &clone
}

// URL возвращает полный URL, который уйдет на сервер.
func (q *SearchQuery[T]) URL() string {
	var sb strings.Builder
	sb.WriteString(q.inner.createURL())
	sb.WriteString(paramQuery)
	sb.WriteString(q.query)
	q.page.appendTo(&sb)
	return sb.String()
}

// Execute выполняет запрос и возвращает страницу результатов.
func (q *SearchQuery[T]) Execute(ctx context.Context) (SearchResult[T], error) {
	return getJSON[SearchResult[T]](ctx, q.inner.client, q.URL())
}

// SearchResult — страница search результатов.
//
// count/offset/created в search ответах называются одинаково для всех типов,
// а вот имя списка сущностей — per-type и берется из каталога.
type SearchResult[T any] struct {
	Created  time.Time
	Count    int
	Offset   int
	Entities []T
}

// Форматы поля created: сервер отдает ISO8601 с или без таймзоны.
var createdFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999",
	"2006-01-02T15:04:05",
}

func parseCreated(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range createdFormats {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// UnmarshalJSON читает per-type имя поля сущностей из каталога.
func (r *SearchResult[T]) UnmarshalJSON(data []byte) error {
	desc, err := descriptorOf[T]()
	if err != nil {
		return err
	}

	var raw struct {
		Created string                     `json:"created"`
		Count   int                        `json:"count"`
		Offset  int                        `json:"offset"`
		Fields  map[string]json.RawMessage `json:"-"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if err := json.Unmarshal(data, &raw.Fields); err != nil {
		return err
	}

	if raw.Created != "" {
		created, err := parseCreated(raw.Created)
		if err != nil {
			return fmt.Errorf("field \"created\": %w", err)
		}
		r.Created = created
	}
	r.Count = raw.Count
	r.Offset = raw.Offset

	if v, ok := raw.Fields[desc.searchEntitiesField]; ok {
		if err := json.Unmarshal(v, &r.Entities); err != nil {
			return fmt.Errorf("field %q: %w", desc.searchEntitiesField, err)
		}
	}
	return nil
}

// MarshalJSON — обратная операция, с тем же per-type именем поля.
func (r SearchResult[T]) MarshalJSON() ([]byte, error) {
	desc, err := descriptorOf[T]()
	if err != nil {
		return nil, err
	}
	return json.Marshal(map[string]any{
		"created":                r.Created.Format(time.RFC3339Nano),
		"count":                  r.Count,
		"offset":                 r.Offset,
		desc.searchEntitiesField: r.Entities,
	})
}
