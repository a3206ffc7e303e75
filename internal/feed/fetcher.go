package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-shiori/go-readability"
	"github.com/mmcdole/gofeed"

	"github.com/julienpequegnot/tagdesk/internal/lang"
)

type Item struct {
	GUID        string
	URL         string
	Headline    string
	Author      string
	PublishedAt *time.Time
	// Content is the item's HTML content or description.
	Content  string
	Language string
}

type Fetcher struct {
	parser    *gofeed.Parser
	client    *http.Client
	userAgent string
}

func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	parser := gofeed.NewParser()
	if userAgent != "" {
		parser.UserAgent = userAgent
	}
	return &Fetcher{
		parser:    parser,
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

func (f *Fetcher) FetchFeed(ctx context.Context, feedURL string) ([]Item, error) {
	feed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	code := lang.Normalize(feed.Language)

	var items []Item
	for _, it := range feed.Items {
		item := Item{
			GUID:     it.GUID,
			URL:      it.Link,
			Headline: strings.TrimSpace(it.Title),
			Language: code,
		}

		if it.Author != nil {
			item.Author = it.Author.Name
		} else if len(feed.Authors) > 0 {
			item.Author = feed.Authors[0].Name
		}

		if it.PublishedParsed != nil {
			item.PublishedAt = it.PublishedParsed
		} else if it.UpdatedParsed != nil {
			item.PublishedAt = it.UpdatedParsed
		}

		if it.Content != "" {
			item.Content = it.Content
		} else {
			item.Content = it.Description
		}

		if item.URL == "" {
			continue
		}
		items = append(items, item)
	}

	return items, nil
}

// FetchFullContent downloads the page and returns its readable text.
func (f *Fetcher) FetchFullContent(ctx context.Context, pageURL string) (string, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", fmt.Errorf("invalid URL: %s", pageURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	article, err := readability.FromReader(resp.Body, parsedURL)
	if err != nil {
		return "", fmt.Errorf("parse content: %w", err)
	}
	return strings.TrimSpace(article.TextContent), nil
}
