// Package lucene — построитель поисковых выражений для search запросов MB.
//
// MusicBrainz принимает поисковые запросы в синтаксисе lucene. SDK отправляет
// выражение как есть (см. pkg/mb SearchQuery), этот пакет помогает собрать
// корректный фрагмент: квотирование значений с пробелами, экранирование
// спецсимволов, AND/OR цепочки.
//
// Пример:
//
//	expr := lucene.NewQuery().
//	    Field("artist", "Miles Davis").
//	    And().
//	    Field("country", "US").
//	    Build()
//	// artist:"Miles Davis" AND country:US
package lucene

import "strings"

// Спецсимволы lucene синтаксиса, требующие экранирования внутри значений.
const specialChars = `+-!(){}[]^"~*?:\/`

// Query — выражение в процессе сборки.
type Query struct {
	parts []string
}

// NewQuery создает пустое выражение.
func NewQuery() *Query {
	return &Query{}
}

// Field добавляет условие "поле:значение".
//
// Значение экранируется; если содержит пробелы — берется в кавычки.
func (q *Query) Field(name, value string) *Query {
	q.parts = append(q.parts, name+":"+quote(value))
	return q
}

// Raw добавляет готовый фрагмент без какой-либо обработки.
func (q *Query) Raw(fragment string) *Query {
	q.parts = append(q.parts, fragment)
	return q
}

// And добавляет оператор AND между условиями.
func (q *Query) And() *Query {
	q.parts = append(q.parts, "AND")
	return q
}

// Or добавляет оператор OR между условиями.
func (q *Query) Or() *Query {
	q.parts = append(q.parts, "OR")
	return q
}

// Not добавляет оператор NOT перед следующим условием.
func (q *Query) Not() *Query {
	q.parts = append(q.parts, "NOT")
	return q
}

// Group добавляет подвыражение в скобках.
func (q *Query) Group(sub *Query) *Query {
	q.parts = append(q.parts, "("+sub.Build()+")")
	return q
}

// Build собирает итоговое выражение.
func (q *Query) Build() string {
	return strings.Join(q.parts, " ")
}

// Escape экранирует спецсимволы lucene внутри значения.
func Escape(value string) string {
	var sb strings.Builder
	for _, r := range value {
		if strings.ContainsRune(specialChars, r) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// quote экранирует значение и при необходимости берет его в кавычки.
func quote(value string) string {
	escaped := Escape(value)
	if strings.ContainsAny(escaped, " \t") {
		return `"` + escaped + `"`
	}
	return escaped
}
