package feed

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"

	"github.com/julienpequegnot/tagdesk/internal/article"
)

// HTMLToText strips markup from feed content.
func HTMLToText(html string) string {
	if !strings.ContainsRune(html, '<') {
		return strings.TrimSpace(html)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.TrimSpace(html)
	}
	doc.Find("script, style, nav, header, footer, aside, figure").Remove()

	// block elements get a separator so words do not run together
	doc.Find("p, br, li, h1, h2, h3, h4, h5, h6, div").Each(func(i int, s *goquery.Selection) {
		s.AppendHtml(" ")
	})
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// Process turns text into the scoring form: lowercase words separated by single
// spaces. Punctuation becomes a separator except for apostrophes and hyphens
// inside a word.
func Process(text string) string {
	runes := []rune(strings.ToLower(text))
	var sb strings.Builder
	sb.Grow(len(text))
	for i, r := range runes {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			sb.WriteRune(r)
		case (r == '\'' || r == '’' || r == '-') && i > 0 && i < len(runes)-1 &&
			unicode.IsLetter(runes[i-1]) && unicode.IsLetter(runes[i+1]):
			sb.WriteRune(r)
		default:
			sb.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

// ToArticle converts a feed item into an unsaved article of the given source.
// body is the plain text used for scoring.
func ToArticle(item Item, sourceID int64, body string) article.Article {
	return article.Article{
		SourceID:    sourceID,
		ExternalID:  item.GUID,
		URL:         item.URL,
		Headline:    item.Headline,
		Title:       Process(item.Headline),
		Body:        Process(body),
		Language:    item.Language,
		Publisher:   item.Author,
		PublishedAt: item.PublishedAt,
	}
}
