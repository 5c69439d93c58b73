package mb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// newTestClient возвращает клиент без лимитера, на дефолтных URL.
func newTestClient() *Client {
	c := New()
	c.DropRateLimit()
	return c
}

func TestFetchURLWithoutIncludes(t *testing.T) {
	c := newTestClient()

	url := c.FetchArtist().ID("5b11f4ce-a62d-471e-81fc-a69a8278c7da").URL()

	assert.Equal(t, "http://musicbrainz.org/ws/2/artist/5b11f4ce-a62d-471e-81fc-a69a8278c7da?fmt=json", url)
}

func TestFetchURLJoinsIncludesInOrder(t *testing.T) {
	c := newTestClient()

	url := c.FetchArtist().
		ID("mbid").
		Include(IncReleases, IncAliases).
		Include(IncArtistRels).
		URL()

	// Токены идут в порядке добавления, через "+"
	assert.Equal(t, "http://musicbrainz.org/ws/2/artist/mbid?fmt=json&inc=releases+aliases+artist-rels", url)
}

func TestFetchURLRawInclude(t *testing.T) {
	c := newTestClient()

	url := c.FetchRelease().ID("mbid").Include(RawInclude("some-future-token")).URL()

	assert.Equal(t, "http://musicbrainz.org/ws/2/release/mbid?fmt=json&inc=some-future-token", url)
}

func TestBrowseURLLinkAndPagination(t *testing.T) {
	c := newTestClient()

	url := c.BrowseReleases().
		By(BrowseByLabel, "label-mbid").
		Limit(50).
		Offset(100).
		URL()

	assert.Equal(t, "http://musicbrainz.org/ws/2/release?fmt=json&label=label-mbid&limit=50&offset=100", url)
}

func TestBrowseURLLimitAlwaysBeforeOffset(t *testing.T) {
	c := newTestClient()

	// Порядок настройки обратный, но в URL limit всегда раньше offset
	url := c.BrowseArtists().
		By(BrowseByArea, "area-mbid").
		Offset(10).
		Limit(5).
		URL()

	assert.Equal(t, "http://musicbrainz.org/ws/2/artist?fmt=json&area=area-mbid&limit=5&offset=10", url)
}

func TestBrowseURLByOverwritesLink(t *testing.T) {
	c := newTestClient()

	url := c.BrowseReleases().
		By(BrowseByLabel, "first").
		By(BrowseByArtist, "second").
		URL()

	assert.Equal(t, "http://musicbrainz.org/ws/2/release?fmt=json&artist=second", url)
}

func TestSearchURLQueryGoesVerbatim(t *testing.T) {
	c := newTestClient()

	// Выражение не кодируется и не экранируется
	url := c.SearchArtists(`artist:"Miles Davis" AND country:US`).Limit(10).URL()

	assert.Equal(t, `http://musicbrainz.org/ws/2/artist?fmt=json&query=artist:"Miles Davis" AND country:US&limit=10`, url)
}

func TestSearchURLWithIncludes(t *testing.T) {
	c := newTestClient()

	url := c.SearchLabels("label:Motown").Include(IncAliases).URL()

	assert.Equal(t, "http://musicbrainz.org/ws/2/label?fmt=json&inc=aliases&query=label:Motown", url)
}

func TestCloneIsIndependent(t *testing.T) {
	c := newTestClient()

	base := c.SearchArtists("artist:Nirvana").Limit(25)
	second := base.Clone().Offset(25)

	assert.Equal(t, "http://musicbrainz.org/ws/2/artist?fmt=json&query=artist:Nirvana&limit=25", base.URL())
	assert.Equal(t, "http://musicbrainz.org/ws/2/artist?fmt=json&query=artist:Nirvana&limit=25&offset=25", second.URL())

	// Include на клоне не трогает оригинал
	fetchBase := c.FetchArtist().ID("mbid")
	fetchClone := fetchBase.Clone().Include(IncAliases)

	assert.NotEqual(t, fetchBase.URL(), fetchClone.URL())
	assert.Equal(t, "http://musicbrainz.org/ws/2/artist/mbid?fmt=json", fetchBase.URL())
}

func TestCustomBaseURL(t *testing.T) {
	c := newTestClient()
	c.SetBaseURL("http://localhost:5000/ws/2")

	url := c.FetchWork().ID("mbid").URL()

	assert.Equal(t, "http://localhost:5000/ws/2/work/mbid?fmt=json", url)
}

func TestDescriptorCoversAllEntities(t *testing.T) {
	// Каждая сущность каталога знает путь и имена полей browse/search
	for typ, desc := range catalogue {
		assert.NotEmpty(t, desc.path, "path for %s", typ)
		assert.NotEmpty(t, desc.countField, "countField for %s", typ)
		assert.NotEmpty(t, desc.offsetField, "offsetField for %s", typ)
		assert.NotEmpty(t, desc.entitiesField, "entitiesField for %s", typ)
		assert.NotEmpty(t, desc.searchEntitiesField, "searchEntitiesField for %s", typ)
	}
}

func TestAllowedIncludesAndBrowseBy(t *testing.T) {
	incs := AllowedIncludes[Artist]()
	assert.Contains(t, incs, IncReleases)

	browseBy := AllowedBrowseBy[Release]()
	assert.Contains(t, browseBy, BrowseByLabel)
}
