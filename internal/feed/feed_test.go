package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rssFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Test News</title>
  <link>https://news.test</link>
  <language>fr-FR</language>
  <item>
    <title>L'élection présidentielle : résultats</title>
    <link>https://news.test/election</link>
    <guid>news-1</guid>
    <pubDate>Fri, 01 Mar 2024 10:00:00 GMT</pubDate>
    <description><![CDATA[<p>Les électeurs ont <b>voté</b>.</p><p>Participation record.</p>]]></description>
  </item>
  <item>
    <title>No link here</title>
    <description>dropped</description>
  </item>
</channel>
</rss>`

func TestFetchFeed(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rssFixture))
	}))
	defer srv.Close()

	f := NewFetcher(5*time.Second, "tagdesk-test")
	items, err := f.FetchFeed(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, items, 1)

	it := items[0]
	assert.Equal(t, "tagdesk-test", gotUA)
	assert.Equal(t, "https://news.test/election", it.URL)
	assert.Equal(t, "news-1", it.GUID)
	assert.Equal(t, "fr", it.Language)
	require.NotNil(t, it.PublishedAt)
	assert.Equal(t, 2024, it.PublishedAt.Year())
	assert.Contains(t, it.Content, "<b>voté</b>")
}

func TestFetchFeedError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not a feed"))
	}))
	defer srv.Close()

	_, err := NewFetcher(5*time.Second, "").FetchFeed(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestFetchFullContentStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := NewFetcher(5*time.Second, "").FetchFullContent(context.Background(), srv.URL+"/missing")
	assert.ErrorContains(t, err, "HTTP 404")

	_, err = NewFetcher(5*time.Second, "").FetchFullContent(context.Background(), "not a url")
	assert.Error(t, err)
}

func TestHTMLToText(t *testing.T) {
	got := HTMLToText(`<p>Les électeurs ont <b>voté</b>.</p><script>var x = 1;</script><p>Participation record.</p>`)
	assert.Equal(t, "Les électeurs ont voté. Participation record.", got)

	assert.Equal(t, "plain text", HTMLToText("  plain text "))
}

func TestProcess(t *testing.T) {
	cases := map[string]string{
		"Brexit: MPs' vote, today!":   "brexit mps vote today",
		"A well-known  result - 2024": "a well-known result 2024",
		"L'élection présidentielle":   "l'élection présidentielle",
		"":                            "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Process(in), in)
	}
}

func TestToArticle(t *testing.T) {
	published := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	a := ToArticle(Item{
		GUID:        "g1",
		URL:         "https://news.test/a",
		Headline:    "Vote Today!",
		Author:      "Desk",
		Language:    "en",
		PublishedAt: &published,
	}, 7, "Voters queue early.")

	assert.Equal(t, int64(7), a.SourceID)
	assert.Equal(t, "Vote Today!", a.Headline)
	assert.Equal(t, "vote today", a.Title)
	assert.Equal(t, "voters queue early", a.Body)
	assert.Equal(t, "g1", a.ExternalID)
}

func TestFindFeedLink(t *testing.T) {
	base, _ := url.Parse("https://news.test/blog/")
	html := `<html><head>
		<link rel="stylesheet" href="/style.css">
		<link rel="alternate" type="application/atom+xml" href="/atom.xml">
	</head></html>`

	got, ok := FindFeedLink(strings.NewReader(html), base)
	assert.True(t, ok)
	assert.Equal(t, "https://news.test/atom.xml", got)

	_, ok = FindFeedLink(strings.NewReader("<html></html>"), base)
	assert.False(t, ok)
}

func TestDiscoverFeed(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("<html><head></head><body>no links</body></html>"))
	})
	mux.HandleFunc("/rss.xml", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rssFixture))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	got, err := DiscoverFeed(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/rss.xml", got)
}
