// Package matcher counts whole-word occurrences of rule hooks in a token sequence,
// expanding every hook into its lemmatized and translated forms first.
package matcher

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/julienpequegnot/tagdesk/internal/lang"
)

type Lemmatizer interface {
	Lemmatize(word string) string
}

type Translator interface {
	Translate(term, code string) string
}

// Matcher is stateless after construction and safe for concurrent use.
type Matcher struct {
	lemmatizer Lemmatizer
	translator Translator
	baseLang   string
}

// New builds a matcher. Either collaborator may be nil to disable that expansion.
func New(lemmatizer Lemmatizer, translator Translator, baseLang string) *Matcher {
	if baseLang == "" {
		baseLang = lang.Base
	}
	return &Matcher{
		lemmatizer: lemmatizer,
		translator: translator,
		baseLang:   lang.Normalize(baseLang),
	}
}

// Expand returns the candidate terms for one hook: the literal term, its lemma
// when different, and its translation into code when code is not the base
// language and a distinct translation exists.
func (m *Matcher) Expand(hook, code string) []string {
	term := strings.TrimSpace(hook)
	if term == "" {
		return nil
	}
	candidates := []string{term}

	if m.lemmatizer != nil {
		if lemma := m.lemmatizer.Lemmatize(term); lemma != "" && !strings.EqualFold(lemma, term) {
			candidates = append(candidates, lemma)
		}
	}

	code = lang.Normalize(code)
	if m.translator != nil && code != "" && code != m.baseLang {
		if tr := m.translator.Translate(term, code); tr != "" && !strings.EqualFold(tr, term) {
			candidates = append(candidates, tr)
		}
	}
	return candidates
}

// CountFrequencies sums the occurrences of every candidate of every hook in the
// whitespace-joined token pool. Counts of different candidates are additive.
func (m *Matcher) CountFrequencies(hooks, tokens []string, code string) int {
	if len(hooks) == 0 || len(tokens) == 0 {
		return 0
	}
	pool := strings.ToLower(strings.Join(tokens, " "))

	total := 0
	for _, hook := range hooks {
		for _, term := range m.Expand(hook, code) {
			total += countWhole(pool, strings.ToLower(term))
		}
	}
	return total
}

// CountOccurrences counts case-insensitive, non-overlapping occurrences of term
// in text that are bounded by whitespace or the ends of text.
func CountOccurrences(text, term string) int {
	return countWhole(strings.ToLower(text), strings.ToLower(strings.TrimSpace(term)))
}

func countWhole(pool, term string) int {
	if term == "" {
		return 0
	}
	count := 0
	for i := 0; i <= len(pool)-len(term); {
		j := strings.Index(pool[i:], term)
		if j < 0 {
			break
		}
		start := i + j
		end := start + len(term)
		if boundaryBefore(pool, start) && boundaryAfter(pool, end) {
			count++
			i = end
			continue
		}
		_, size := utf8.DecodeRuneInString(pool[start:])
		i = start + size
	}
	return count
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return unicode.IsSpace(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return unicode.IsSpace(r)
}
