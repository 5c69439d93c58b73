package mb

import "context"

// FetchQuery — lookup одной сущности по известному MBID.
//
// Пример:
//
//	nirvana, err := client.FetchArtist().
//	    ID("5b11f4ce-a62d-471e-81fc-a69a8278c7da").
//	    Execute(ctx)
type FetchQuery[T any] struct {
	inner baseQuery[T]
}

func newFetchQuery[T any](c *Client) *FetchQuery[T] {
	return &FetchQuery[T]{
		inner: baseQuery[T]{client: c, path: mustDescriptor[T]().path},
	}
}

// ID задает MBID сущности. Ровно один на запрос.
func (q *FetchQuery[T]) ID(id string) *FetchQuery[T] {
	q.inner.path += "/" + id
	return q
}

// Include добавляет inc токены к запросу, в порядке вызова.
//
// Допустимость токена для типа сущности SDK не проверяет: неверная
// комбинация вернется ошибкой сервиса (см. AllowedIncludes).
func (q *FetchQuery[T]) Include(incs ...Include) *FetchQuery[T] {
	q.inner.include(incs...)
	return q
}

// Clone возвращает независимую копию запроса до выполнения
// (для шаблонного переиспользования).
func (q *FetchQuery[T]) Clone() *FetchQuery[T] {
	return &FetchQuery[T]{inner: q.inner.clone()}
}

// URL возвращает полный URL, который уйдет на сервер.
func (q *FetchQuery[T]) URL() string {
	return q.inner.createURL()
}

// Execute выполняет запрос и возвращает сущность.
func (q *FetchQuery[T]) Execute(ctx context.Context) (T, error) {
	return getJSON[T](ctx, q.inner.client, q.inner.createURL())
}
