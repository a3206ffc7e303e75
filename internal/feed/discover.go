// internal/feed/discover.go
package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

var feedPatterns = []string{
	"/feed",
	"/feed.xml",
	"/rss.xml",
	"/rss",
	"/atom.xml",
	"/index.xml",
	"/feeds/all.rss.xml",
}

// FindFeedLink returns the first RSS or Atom alternate link of an HTML page,
// resolved against base.
func FindFeedLink(r io.Reader, base *url.URL) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", false
	}
	var found string
	doc.Find(`link[rel="alternate"]`).EachWithBreak(func(i int, s *goquery.Selection) bool {
		typ, _ := s.Attr("type")
		href, ok := s.Attr("href")
		if !ok || (typ != "application/rss+xml" && typ != "application/atom+xml") {
			return true
		}
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return true
		}
		found = base.ResolveReference(ref).String()
		return false
	})
	return found, found != ""
}

func DiscoverFeed(ctx context.Context, siteURL string) (string, error) {
	client := &http.Client{Timeout: 10 * time.Second}

	base, err := url.Parse(siteURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL %s: %w", siteURL, err)
	}

	// Try to find feed link in HTML
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, siteURL, nil)
	if err == nil {
		if resp, err := client.Do(req); err == nil {
			feedURL, ok := FindFeedLink(io.LimitReader(resp.Body, 500000), base)
			resp.Body.Close()
			if ok {
				return feedURL, nil
			}
		}
	}

	// Try common feed paths
	baseURL := strings.TrimSuffix(siteURL, "/")
	for _, pattern := range feedPatterns {
		feedURL := baseURL + pattern
		req, err := http.NewRequestWithContext(ctx, http.MethodHead, feedURL, nil)
		if err != nil {
			continue
		}
		resp, err := client.Do(req)
		if err != nil {
			continue
		}
		resp.Body.Close()
		if resp.StatusCode == http.StatusOK {
			return feedURL, nil
		}
	}

	return "", fmt.Errorf("could not discover feed for %s", siteURL)
}
