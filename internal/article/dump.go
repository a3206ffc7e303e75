package article

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/julienpequegnot/tagdesk/internal/lang"
)

type dumpArticle struct {
	ID  string `json:"id"`
	Std struct {
		Title               string `json:"title"`
		PublicationDatetime string `json:"publication_datetime"`
		LangCode            string `json:"lang_code"`
		URL                 string `json:"url"`
	} `json:"std"`
	NonStd struct {
		PublisherName string `json:"publisher_name"`
		SourceName    string `json:"source_name"`
	} `json:"non_std"`
	Out struct {
		InferLanguage   string `json:"infer_language"`
		ProcessSections struct {
			Title string `json:"title"`
			Body  string `json:"body"`
		} `json:"process_sections"`
		ClassifyCategories struct {
			RelevanceScores map[string]float64 `json:"relevance_scores"`
		} `json:"classify_categories"`
	} `json:"out"`
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"}

func (d dumpArticle) article() Article {
	a := Article{
		ExternalID:   d.ID,
		URL:          d.Std.URL,
		Headline:     d.Std.Title,
		Title:        d.Out.ProcessSections.Title,
		Body:         d.Out.ProcessSections.Body,
		Publisher:    d.NonStd.PublisherName,
		SourceName:   d.NonStd.SourceName,
		LegacyScores: d.Out.ClassifyCategories.RelevanceScores,
	}
	if a.URL == "" {
		a.URL = "article:" + d.ID
	}
	code := d.Out.InferLanguage
	if code == "" {
		code = d.Std.LangCode
	}
	if code != "" {
		a.Language = lang.Normalize(code)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, d.Std.PublicationDatetime); err == nil {
			a.PublishedAt = &t
			break
		}
	}
	return a
}

// LoadJSON decodes an array of upstream article records.
func LoadJSON(r io.Reader) ([]Article, error) {
	var docs []dumpArticle
	if err := json.NewDecoder(r).Decode(&docs); err != nil {
		return nil, fmt.Errorf("failed to decode articles: %w", err)
	}
	articles := make([]Article, 0, len(docs))
	for _, d := range docs {
		articles = append(articles, d.article())
	}
	return articles, nil
}

func LoadJSONFile(path string) ([]Article, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return LoadJSON(f)
}
