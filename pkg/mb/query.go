package mb

import (
	"strconv"
	"strings"
)

// Константы wire формата WS/2 (см. оригинальную документацию API).
const (
	fmtJSON     = "?fmt=json"
	paramInc    = "&inc="
	paramLimit  = "&limit="
	paramOffset = "&offset="
	paramQuery  = "&query="
)

// baseQuery — общая часть всех запросов: клиент, путь сущности и inc токены.
//
// Запрос создается entry-point методом клиента, мутируется chained вызовами
// и потребляется Execute. Повторный Execute того же запроса — отдельный
// независимый HTTP обмен с тем же URL.
type baseQuery[T any] struct {
	client   *Client
	path     string
	includes []Include
}

// createURL собирает полный URL запроса.
//
// Токены идут в порядке добавления (порядок влияет только на wire формат).
// Кодирование не выполняется: токены и пагинация ограничены безопасным
// набором символов по построению.
func (q *baseQuery[T]) createURL() string {
	var sb strings.Builder
	sb.WriteString(q.client.musicbrainzURL)
	sb.WriteString("/")
	sb.WriteString(q.path)
	sb.WriteString(fmtJSON)

	if len(q.includes) == 0 {
		return sb.String()
	}

	sb.WriteString(paramInc)
	for i, inc := range q.includes {
		if i > 0 {
			sb.WriteString("+")
		}
		sb.WriteString(inc.String())
	}

	return sb.String()
}

func (q *baseQuery[T]) include(incs ...Include) {
	q.includes = append(q.includes, incs...)
}

func (q *baseQuery[T]) clone() baseQuery[T] {
	return baseQuery[T]{
		client:   q.client,
		path:     q.path,
		includes: append([]Include(nil), q.includes...),
	}
}

// pagination — опциональные limit/offset для browse и search.
// В URL limit всегда идет раньше offset, независимо от порядка настройки.
type pagination struct {
	limit     int
	offset    int
	hasLimit  bool
	hasOffset bool
}

func (p *pagination) appendTo(sb *strings.Builder) {
	if p.hasLimit {
		sb.WriteString(paramLimit)
		sb.WriteString(strconv.Itoa(p.limit))
	}
	if p.hasOffset {
		sb.WriteString(paramOffset)
		sb.WriteString(strconv.Itoa(p.offset))
	}
}
