// Package wordfreq builds the corpus-wide word list used to discover new hooks.
package wordfreq

import (
	"sort"
	"unicode/utf8"

	"github.com/kljensen/snowball"

	"github.com/julienpequegnot/tagdesk/internal/article"
	"github.com/julienpequegnot/tagdesk/internal/lang"
	"github.com/julienpequegnot/tagdesk/internal/summary"
)

type WordFrequency struct {
	Word  string
	Count int
	// Index is the zero-based position in the sorted list.
	Index int
}

type Options struct {
	// MinLength drops words shorter than this many runes.
	MinLength     int
	SkipStopWords bool
	// GroupStems merges words sharing a snowball stem in the article language.
	// The group is listed under its most frequent form.
	GroupStems bool
}

var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "of": true, "with": true, "by": true, "from": true,
	"is": true, "are": true, "was": true, "were": true, "be": true,
	"been": true, "being": true, "have": true, "has": true, "had": true,
	"do": true, "does": true, "did": true, "will": true, "would": true,
	"could": true, "should": true, "may": true, "might": true, "must": true,
	"this": true, "that": true, "these": true, "those": true,
	"i": true, "you": true, "he": true, "she": true, "it": true,
	"we": true, "they": true, "what": true, "which": true, "who": true,
	"when": true, "where": true, "why": true, "how": true,
	"all": true, "each": true, "every": true, "both": true, "few": true,
	"more": true, "most": true, "other": true, "some": true, "such": true,
	"no": true, "not": true, "only": true, "same": true, "so": true,
	"than": true, "too": true, "very": true, "just": true, "also": true,
	"his": true, "her": true, "its": true, "their": true, "as": true,
	"said": true, "after": true, "over": true, "about": true, "into": true,
}

func IsStopWord(w string) bool {
	return stopWords[w]
}

// Count tallies every processed token of the title and body of each article and
// returns the words by descending count, ties broken alphabetically.
func Count(articles []article.Article, opts Options) []WordFrequency {
	counts := make(map[string]int)
	forms := make(map[string]map[string]int)
	for _, a := range articles {
		stemmer, ok := lang.SnowballName(a.Language)
		if !ok {
			stemmer = "english"
		}
		for _, section := range []string{a.Title, a.Body} {
			for _, w := range summary.Tokenize(section) {
				if utf8.RuneCountInString(w) < opts.MinLength {
					continue
				}
				if opts.SkipStopWords && stopWords[w] {
					continue
				}
				if !opts.GroupStems {
					counts[w]++
					continue
				}
				key := stem(w, stemmer)
				if forms[key] == nil {
					forms[key] = make(map[string]int)
				}
				forms[key][w]++
			}
		}
	}
	for _, group := range forms {
		word, total := representative(group)
		counts[word] += total
	}

	freqs := make([]WordFrequency, 0, len(counts))
	for w, n := range counts {
		freqs = append(freqs, WordFrequency{Word: w, Count: n})
	}
	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].Count != freqs[j].Count {
			return freqs[i].Count > freqs[j].Count
		}
		return freqs[i].Word < freqs[j].Word
	})
	for i := range freqs {
		freqs[i].Index = i
	}
	return freqs
}

func stem(w, language string) string {
	s, err := snowball.Stem(w, language, true)
	if err != nil || s == "" {
		return w
	}
	return s
}

// representative picks the most frequent form, ties broken alphabetically, and
// the group total.
func representative(group map[string]int) (string, int) {
	var word string
	best, total := 0, 0
	for w, n := range group {
		total += n
		if n > best || (n == best && w < word) {
			word, best = w, n
		}
	}
	return word, total
}

// Top returns at most n entries; n <= 0 returns them all.
func Top(freqs []WordFrequency, n int) []WordFrequency {
	if n <= 0 || n >= len(freqs) {
		return freqs
	}
	return freqs[:n]
}
