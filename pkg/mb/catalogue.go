package mb

import (
	"fmt"
	"reflect"
)

// incKind — вид inc токена: подзапрос, relationship или сырая строка.
type incKind uint8

const (
	incSubquery incKind = iota
	incRelationship
	incRaw
)

// Include — параметр запроса, добавляющий связанные данные в ответ.
//
// Токены иммутабельны и берутся из статических таблиц ниже; RawInclude
// оставлен как запасной выход для еще не замоделированных токенов.
type Include struct {
	kind  incKind
	value string
}

// String возвращает wire представление токена.
func (i Include) String() string {
	return i.value
}

// RawInclude оборачивает произвольную строку в inc токен.
// Строка уходит в URL как есть, без проверок и кодирования.
func RawInclude(value string) Include {
	return Include{kind: incRaw, value: value}
}

func subquery(value string) Include {
	return Include{kind: incSubquery, value: value}
}

func relationship(value string) Include {
	return Include{kind: incRelationship, value: value}
}

// Subquery токены: встраивают подчиненные коллекции в ответ.
var (
	IncAliases       = subquery("aliases")
	IncAnnotation    = subquery("annotation")
	IncAreas         = subquery("areas")
	IncArtistCredits = subquery("artist-credits")
	IncArtists       = subquery("artists")
	IncDiscids       = subquery("discids")
	IncEvents        = subquery("events")
	IncGenres        = subquery("genres")
	IncInstruments   = subquery("instruments")
	IncISRCs         = subquery("isrcs")
	IncLabels        = subquery("labels")
	IncMedia         = subquery("media")
	IncPlaces        = subquery("places")
	IncRatings       = subquery("ratings")
	IncRecordings    = subquery("recordings")
	IncReleaseGroups = subquery("release-groups")
	IncReleases      = subquery("releases")
	IncSeries        = subquery("series")
	IncTags          = subquery("tags")
	IncUrls          = subquery("urls")
	IncWorks         = subquery("works")
)

// Relationship токены: встраивают ребра связей заданной категории.
var (
	IncAreaRels         = relationship("area-rels")
	IncArtistRels       = relationship("artist-rels")
	IncEventRels        = relationship("event-rels")
	IncGenreRels        = relationship("genre-rels")
	IncInstrumentRels   = relationship("instrument-rels")
	IncLabelRels        = relationship("label-rels")
	IncPlaceRels        = relationship("place-rels")
	IncRecordingRels    = relationship("recording-rels")
	IncReleaseRels      = relationship("release-rels")
	IncReleaseGroupRels = relationship("release-group-rels")
	IncSeriesRels       = relationship("series-rels")
	IncURLRels          = relationship("url-rels")
	IncWorkRels         = relationship("work-rels")

	IncRecordingLevelRels    = relationship("recording-level-rels")
	IncReleaseGroupLevelRels = relationship("release-group-level-rels")
	IncWorkLevelRels         = relationship("work-level-rels")
)

// BrowseBy — ключ связи для browse запросов ("все релизы этого лейбла").
type BrowseBy string

const (
	BrowseByArea         BrowseBy = "area"
	BrowseByArtist       BrowseBy = "artist"
	BrowseByCollection   BrowseBy = "collection"
	BrowseByLabel        BrowseBy = "label"
	BrowseByPlace        BrowseBy = "place"
	BrowseByRecording    BrowseBy = "recording"
	BrowseByRelease      BrowseBy = "release"
	BrowseByReleaseGroup BrowseBy = "release-group"
	BrowseByTrack        BrowseBy = "track"
	BrowseByTrackArtist  BrowseBy = "track_artist"
	BrowseByWork         BrowseBy = "work"
)

// entityDesc — запись каталога: все, что generic builder'ам нужно знать
// про конкретный тип сущности.
//
// JSON browse/search ответов использует имена полей, специфичные для типа
// ("artist-count" vs "label-count"), поэтому имена лежат здесь, а не
// захардкожены в BrowseResult/SearchResult.
type entityDesc struct {
	// Сегмент пути в URL API.
	path string

	// Имена полей в browse ответе.
	countField    string
	offsetField   string
	entitiesField string

	// Имя поля со списком сущностей в search ответе
	// (count/offset/created там всегда называются одинаково).
	searchEntitiesField string

	// Допустимые inc токены и browse связи. Справочные таблицы: SDK не
	// валидирует их при запросе, неверная комбинация вернется ошибкой
	// сервиса (поведение оригинального API сохранено).
	includes []Include
	browseBy []BrowseBy
}

// catalogue — статическая таблица всех сущностей SDK.
var catalogue = map[reflect.Type]entityDesc{
	reflect.TypeOf(Artist{}): {
		path:                "artist",
		countField:          "artist-count",
		offsetField:         "artist-offset",
		entitiesField:       "artists",
		searchEntitiesField: "artists",
		includes: []Include{
			IncRecordings, IncReleases, IncReleaseGroups, IncWorks,
			IncAliases, IncAnnotation, IncTags, IncRatings, IncGenres,
		},
		browseBy: []BrowseBy{
			BrowseByArea, BrowseByCollection, BrowseByRecording,
			BrowseByRelease, BrowseByReleaseGroup, BrowseByWork,
		},
	},
	reflect.TypeOf(Release{}): {
		path:                "release",
		countField:          "release-count",
		offsetField:         "release-offset",
		entitiesField:       "releases",
		searchEntitiesField: "releases",
		includes: []Include{
			IncArtists, IncLabels, IncRecordings, IncReleaseGroups,
			IncMedia, IncArtistCredits, IncDiscids, IncISRCs,
			IncAliases, IncAnnotation, IncTags, IncGenres,
		},
		browseBy: []BrowseBy{
			BrowseByArea, BrowseByArtist, BrowseByCollection,
			BrowseByLabel, BrowseByTrack, BrowseByTrackArtist,
			BrowseByRecording, BrowseByReleaseGroup,
		},
	},
	reflect.TypeOf(ReleaseGroup{}): {
		path:                "release-group",
		countField:          "release-group-count",
		offsetField:         "release-group-offset",
		entitiesField:       "release-groups",
		searchEntitiesField: "release-groups",
		includes: []Include{
			IncArtists, IncReleases, IncArtistCredits,
			IncAliases, IncAnnotation, IncTags, IncRatings, IncGenres,
		},
		browseBy: []BrowseBy{
			BrowseByArtist, BrowseByCollection, BrowseByRelease,
		},
	},
	reflect.TypeOf(Recording{}): {
		path:                "recording",
		countField:          "recording-count",
		offsetField:         "recording-offset",
		entitiesField:       "recordings",
		searchEntitiesField: "recordings",
		includes: []Include{
			IncArtists, IncReleases, IncArtistCredits, IncISRCs,
			IncAliases, IncAnnotation, IncTags, IncRatings, IncGenres,
		},
		browseBy: []BrowseBy{
			BrowseByArtist, BrowseByCollection, BrowseByRelease,
			BrowseByWork,
		},
	},
	reflect.TypeOf(Label{}): {
		path:                "label",
		countField:          "label-count",
		offsetField:         "label-offset",
		entitiesField:       "labels",
		searchEntitiesField: "labels",
		includes: []Include{
			IncReleases, IncAliases, IncAnnotation, IncTags,
			IncRatings, IncGenres,
		},
		browseBy: []BrowseBy{
			BrowseByArea, BrowseByCollection, BrowseByRelease,
		},
	},
	reflect.TypeOf(Work{}): {
		path:                "work",
		countField:          "work-count",
		offsetField:         "work-offset",
		entitiesField:       "works",
		searchEntitiesField: "works",
		includes: []Include{
			IncAliases, IncAnnotation, IncTags, IncRatings, IncGenres,
		},
		browseBy: []BrowseBy{
			BrowseByArtist, BrowseByCollection,
		},
	},
	reflect.TypeOf(Area{}): {
		path:                "area",
		countField:          "area-count",
		offsetField:         "area-offset",
		entitiesField:       "areas",
		searchEntitiesField: "areas",
		includes: []Include{
			IncAliases, IncAnnotation, IncTags, IncGenres,
		},
		browseBy: []BrowseBy{
			BrowseByCollection,
		},
	},
	reflect.TypeOf(Event{}): {
		path:                "event",
		countField:          "event-count",
		offsetField:         "event-offset",
		entitiesField:       "events",
		searchEntitiesField: "events",
		includes: []Include{
			IncAliases, IncAnnotation, IncTags, IncRatings, IncGenres,
		},
		browseBy: []BrowseBy{
			BrowseByArea, BrowseByArtist, BrowseByCollection,
			BrowseByPlace,
		},
	},
	reflect.TypeOf(Place{}): {
		path:                "place",
		countField:          "place-count",
		offsetField:         "place-offset",
		entitiesField:       "places",
		searchEntitiesField: "places",
		includes: []Include{
			IncAliases, IncAnnotation, IncTags, IncGenres,
		},
		browseBy: []BrowseBy{
			BrowseByArea, BrowseByCollection,
		},
	},
}

// descriptorOf возвращает запись каталога для типа T.
func descriptorOf[T any]() (entityDesc, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	desc, ok := catalogue[t]
	if !ok {
		return entityDesc{}, fmt.Errorf("entity type %s is not registered in the catalogue", t)
	}
	return desc, nil
}

// mustDescriptor — как descriptorOf, но для вызовов из конструкторов
// самого SDK, где тип гарантированно зарегистрирован.
func mustDescriptor[T any]() entityDesc {
	desc, err := descriptorOf[T]()
	if err != nil {
		panic(err)
	}
	return desc
}

// AllowedIncludes возвращает справочный список inc токенов для типа T.
// Список не используется для валидации запросов.
func AllowedIncludes[T any]() []Include {
	desc, err := descriptorOf[T]()
	if err != nil {
		return nil
	}
	return append([]Include(nil), desc.includes...)
}

// AllowedBrowseBy возвращает справочный список browse связей для типа T.
func AllowedBrowseBy[T any]() []BrowseBy {
	desc, err := descriptorOf[T]()
	if err != nil {
		return nil
	}
	return append([]BrowseBy(nil), desc.browseBy...)
}
