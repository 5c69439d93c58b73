package mb

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// BrowseQuery — прямой lookup всех сущностей, связанных с другой сущностью
// ("все релизы этого лейбла"). Связь задается ровно одной парой ключ/значение.
type BrowseQuery[T any] struct {
	inner baseQuery[T]
	link  string
	page  pagination
}

func newBrowseQuery[T any](c *Client) *BrowseQuery[T] {
	return &BrowseQuery[T]{
		inner: baseQuery[T]{client: c, path: mustDescriptor[T]().path},
	}
}

// By задает связующую сущность. Повторный вызов перезаписывает связь.
func (q *BrowseQuery[T]) By(by BrowseBy, id string) *BrowseQuery[T] {
	q.link = string(by) + "=" + id
	return q
}

// Include добавляет inc токены к запросу, в порядке вызова.
func (q *BrowseQuery[T]) Include(incs ...Include) *BrowseQuery[T] {
	q.inner.include(incs...)
	return q
}

// Limit задает количество результатов на страницу (1-100, дефолт сервера 25).
func (q *BrowseQuery[T]) Limit(limit int) *BrowseQuery[T] {
	q.page.limit = limit
	q.page.hasLimit = true
	return q
}

// Offset задает смещение для постраничного обхода.
func (q *BrowseQuery[T]) Offset(offset int) *BrowseQuery[T] {
	q.page.offset = offset
	q.page.hasOffset = true
	return q
}

// Clone возвращает независимую копию запроса до выполнения.
func (q *BrowseQuery[T]) Clone() *BrowseQuery[T] {
	clone := *q
	clone.inner = q.inner.clone()
	return &clone
}

// URL возвращает полный URL, который уйдет на сервер.
func (q *BrowseQuery[T]) URL() string {
	var sb strings.Builder
	sb.WriteString(q.inner.createURL())
	sb.WriteString("&")
	sb.WriteString(q.link)
	q.page.appendTo(&sb)
	return sb.String()
}

// Execute выполняет запрос и возвращает страницу результатов.
func (q *BrowseQuery[T]) Execute(ctx context.Context) (BrowseResult[T], error) {
	return getJSON[BrowseResult[T]](ctx, q.inner.client, q.URL())
}

// BrowseResult — страница browse результатов.
//
// В JSON сервиса имена полей специфичны для типа сущности ("artist-count",
// "label-count" и т.д.), поэтому маршалинг ходит в каталог вместо
// фиксированных тегов.
type BrowseResult[T any] struct {
	Count    int
	Offset   int
	Entities []T
}

// UnmarshalJSON читает per-type имена полей из каталога.
func (r *BrowseResult[T]) UnmarshalJSON(data []byte) error {
	desc, err := descriptorOf[T]()
	if err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw[desc.countField]; ok {
		if err := json.Unmarshal(v, &r.Count); err != nil {
			return fmt.Errorf("field %q: %w", desc.countField, err)
		}
	}
	if v, ok := raw[desc.offsetField]; ok {
		if err := json.Unmarshal(v, &r.Offset); err != nil {
			return fmt.Errorf("field %q: %w", desc.offsetField, err)
		}
	}
	if v, ok := raw[desc.entitiesField]; ok {
		if err := json.Unmarshal(v, &r.Entities); err != nil {
			return fmt.Errorf("field %q: %w", desc.entitiesField, err)
		}
	}
	return nil
}

// MarshalJSON — обратная операция, с теми же per-type именами полей.
func (r BrowseResult[T]) MarshalJSON() ([]byte, error) {
	desc, err := descriptorOf[T]()
	if err != nil {
		return nil, err
	}
	return json.Marshal(map[string]any{
		desc.countField:    r.Count,
		desc.offsetField:   r.Offset,
		desc.entitiesField: r.Entities,
	})
}
