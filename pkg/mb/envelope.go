package mb

import "encoding/json"

// serviceError — envelope ошибки, который возвращает сам MusicBrainz.
type serviceError struct {
	Error string `json:"error"`
	Help  string `json:"help"`
}

// isNotFound: сервис сигналит отсутствие сущности точным текстом "Not Found".
func (e serviceError) isNotFound() bool {
	return e.Error == "Not Found"
}

func (e serviceError) toError(query string) error {
	if e.isNotFound() {
		return &NotFoundError{Query: query}
	}
	return &APIError{Message: e.Error, Help: e.Help}
}

// decodeResult разбирает тело ответа как сумму {payload T | {error, help}}.
//
// Порядок важен: сначала пробуем успешный payload. В Go envelope ошибки
// тоже анмаршалится в большинство структур (неизвестные поля игнорируются),
// поэтому после успешного анмаршала дополнительно проверяем наличие
// непустого верхнеуровневого поля "error". Payload без "error" всегда
// выигрывает. Тело, не подходящее ни под одну форму — DecodeError,
// а не молчаливое "not found".
func decodeResult[T any](body []byte, query string) (T, error) {
	var out T

	unmarshalErr := json.Unmarshal(body, &out)
	if unmarshalErr == nil {
		var probe serviceError
		if json.Unmarshal(body, &probe) != nil || probe.Error == "" {
			return out, nil
		}
		var zero T
		return zero, probe.toError(query)
	}

	var probe serviceError
	if err := json.Unmarshal(body, &probe); err == nil && probe.Error != "" {
		var zero T
		return zero, probe.toError(query)
	}

	var zero T
	return zero, &DecodeError{Query: query, Err: unmarshalErr}
}
