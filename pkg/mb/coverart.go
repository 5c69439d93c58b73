package mb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ilkoid/musicbrainz-go/pkg/utils"
)

// CoverartType — сторона обложки.
type CoverartType int

const (
	CoverartFront CoverartType = iota
	CoverartBack
)

func (t CoverartType) String() string {
	switch t {
	case CoverartBack:
		return "back"
	default:
		return "front"
	}
}

// CoverartResolution — запрошенное разрешение миниатюры.
type CoverartResolution int

const (
	Res250 CoverartResolution = iota
	Res500
	Res1200
)

func (r CoverartResolution) String() string {
	switch r {
	case Res500:
		return "500"
	case Res1200:
		return "1200"
	default:
		return "250"
	}
}

// CoverartResponse — результат coverart запроса.
//
// Ровно одно из полей заполнено: если сторона/разрешение не заданы, Archive
// отвечает JSON описанием (Coverart); если заданы — редиректом, и результатом
// становится финальный URL картинки.
type CoverartResponse struct {
	Coverart *Coverart
	URL      string
}

// FetchCoverartQuery — lookup обложки сущности по MBID
// (поддерживается для Release и ReleaseGroup).
type FetchCoverartQuery[T any] struct {
	client *Client
	path   string

	imgType *CoverartType
	imgRes  *CoverartResolution
}

func newCoverartQuery[T any](c *Client) *FetchCoverartQuery[T] {
	return &FetchCoverartQuery[T]{
		client: c,
		path:   mustDescriptor[T]().path,
	}
}

// ID задает MBID сущности. Ровно один на запрос.
func (q *FetchCoverartQuery[T]) ID(id string) *FetchCoverartQuery[T] {
	q.path += "/" + id
	return q
}

// Front запрашивает лицевую сторону обложки.
func (q *FetchCoverartQuery[T]) Front() *FetchCoverartQuery[T] {
	return q.setType(CoverartFront, "Front")
}

// Back запрашивает оборотную сторону обложки.
func (q *FetchCoverartQuery[T]) Back() *FetchCoverartQuery[T] {
	return q.setType(CoverartBack, "Back")
}

func (q *FetchCoverartQuery[T]) setType(t CoverartType, call string) *FetchCoverartQuery[T] {
	if q.imgType != nil {
		utils.Warn("ignoring coverart type call, type already set", "call", call)
		return q
	}
	q.imgType = &t
	return q
}

// Res задает разрешение миниатюры. Повторные вызовы игнорируются.
func (q *FetchCoverartQuery[T]) Res(res CoverartResolution) *FetchCoverartQuery[T] {
	if q.imgRes != nil {
		utils.Warn("ignoring coverart resolution call, resolution already set", "res", res.String())
		return q
	}
	q.imgRes = &res
	return q
}

// Clone возвращает независимую копию запроса до выполнения.
func (q *FetchCoverartQuery[T]) Clone() *FetchCoverartQuery[T] {
	clone := *q
	if q.imgType != nil {
		t := *q.imgType
		clone.imgType = &t
	}
	if q.imgRes != nil {
		r := *q.imgRes
		clone.imgRes = &r
	}
	return &clone
}

// validate финализирует путь запроса.
//
// Разрешение без стороны неявно подразумевает лицевую сторону: дефолт
// применяется здесь, перед сборкой URL, а не при конфигурации.
func (q *FetchCoverartQuery[T]) validate() {
	if q.imgType != nil {
		q.path += "/" + q.imgType.String()
		if q.imgRes != nil {
			q.path += "-" + q.imgRes.String()
		}
		return
	}
	if q.imgRes != nil {
		t := CoverartFront
		q.imgType = &t
		q.validate()
	}
}

// URL возвращает финальный URL запроса (после validate).
func (q *FetchCoverartQuery[T]) URL() string {
	return q.client.coverartURL + "/" + q.path
}

// Execute выполняет запрос.
//
// Если сторона или разрешение заданы, Archive отвечает редиректом на
// картинку — возвращаем финальный URL. Иначе декодируем JSON описание.
func (q *FetchCoverartQuery[T]) Execute(ctx context.Context) (CoverartResponse, error) {
	q.validate()

	resp, err := q.client.sendWithRetries(ctx, q.URL())
	if err != nil {
		return CoverartResponse{}, err
	}
	defer resp.Body.Close()

	if q.imgType != nil {
		// http.Client уже прошел по редиректам; resp.Request держит финальный URL.
		return CoverartResponse{URL: resp.Request.URL.String()}, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return CoverartResponse{}, fmt.Errorf("read body: %w", err)
	}
	coverart, err := decodeResult[Coverart](body, q.URL())
	if err != nil {
		return CoverartResponse{}, err
	}
	return CoverartResponse{Coverart: &coverart}, nil
}

// Coverart — JSON описание обложек из Cover Art Archive.
type Coverart struct {
	Images  []CoverartImage `json:"images"`
	Release string          `json:"release"`
}

// CoverartImage — одна картинка в описании обложки.
type CoverartImage struct {
	Approved   bool               `json:"approved"`
	Back       bool               `json:"back"`
	Front      bool               `json:"front"`
	Comment    string             `json:"comment"`
	Edit       int                `json:"edit"`
	ID         json.Number        `json:"id"`
	Image      string             `json:"image"`
	Thumbnails CoverartThumbnails `json:"thumbnails"`
	Types      []string           `json:"types"`
}

// CoverartThumbnails — ссылки на миниатюры разных разрешений.
type CoverartThumbnails struct {
	Res250  string `json:"250"`
	Res500  string `json:"500"`
	Res1200 string `json:"1200"`
	Small   string `json:"small"`
	Large   string `json:"large"`
}
