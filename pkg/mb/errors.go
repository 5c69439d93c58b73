package mb

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMaxRetriesExceeded — сервер отвечал 503 все разрешенные попытки подряд.
var ErrMaxRetriesExceeded = errors.New("max retries exceeded")

// ErrRetryAfterMissing — сервер вернул 503 без валидного заголовка retry-after.
// Это нарушение протокола MB; запрос не повторяется.
var ErrRetryAfterMissing = errors.New("503 response without retry-after header")

// APIError — ошибка, которую вернул сам MusicBrainz в envelope {error, help}.
type APIError struct {
	Message string
	Help    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("musicbrainz api error: %s", e.Message)
}

// NotFoundError — сервис ответил "Not Found" на запрос.
//
// Query — описание исходного запроса (полный URL), для диагностики.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("musicbrainz returned \"Not Found\" for query %q", e.Query)
}

// DecodeError — тело ответа не совпало ни с payload, ни с envelope ошибки.
type DecodeError struct {
	Query string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode response for query %q: %v", e.Query, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ErrorType представляет тип ошибки для диагностики в CLI утилитах.
type ErrorType int

const (
	ErrUnknown ErrorType = iota
	ErrNotFound
	ErrService
	ErrTimeout
	ErrNetwork
	ErrRateLimit
	ErrDecode
)

// String возвращает строковое представление типа ошибки.
func (e ErrorType) String() string {
	switch e {
	case ErrNotFound:
		return "not_found"
	case ErrService:
		return "service_error"
	case ErrTimeout:
		return "timeout"
	case ErrNetwork:
		return "network_error"
	case ErrRateLimit:
		return "rate_limit"
	case ErrDecode:
		return "decode_error"
	default:
		return "unknown"
	}
}

// HumanMessage возвращает человекочитаемое сообщение для типа ошибки.
func (e ErrorType) HumanMessage() string {
	switch e {
	case ErrNotFound:
		return "Сущность не найдена. Проверьте MBID или поисковый запрос."
	case ErrService:
		return "MusicBrainz вернул ошибку. Проверьте параметры запроса (inc токены и т.д.)."
	case ErrTimeout:
		return "Превышено время ожидания. Сервер MusicBrainz не отвечает или проблемы с сетью."
	case ErrNetwork:
		return "Сервер MusicBrainz недоступен. Проверьте подключение к интернету."
	case ErrRateLimit:
		return "Превышен лимит запросов к API. Подождите перед следующей попыткой."
	case ErrDecode:
		return "Не удалось разобрать ответ сервера. Возможно, изменился формат API."
	default:
		return "Неизвестная ошибка при подключении к MusicBrainz API."
	}
}

// ClassifyError классифицирует ошибку по типу для лучшей диагностики.
//
// Сначала проверяем типизированные ошибки SDK через errors.As/Is,
// затем анализируем текст transport ошибок.
func ClassifyError(err error) ErrorType {
	if err == nil {
		return ErrUnknown
	}

	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		return ErrNotFound
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return ErrService
	}
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return ErrDecode
	}
	if errors.Is(err, ErrMaxRetriesExceeded) || errors.Is(err, ErrRetryAfterMissing) {
		return ErrRateLimit
	}

	errMsg := err.Error()
	errMsgLower := strings.ToLower(errMsg)

	if strings.Contains(errMsgLower, "timeout") ||
		strings.Contains(errMsg, "deadline exceeded") {
		return ErrTimeout
	}
	if strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no such host") {
		return ErrNetwork
	}

	return ErrUnknown
}
