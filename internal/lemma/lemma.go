// Package lemma reduces keywords to a base form so that hooks also match their
// inflected variants. Forms are tried in noun, adjective, verb order.
package lemma

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"

	"github.com/julienpequegnot/tagdesk/internal/lang"
)

// The English dictionary is large; it is loaded on first use and shared.
var englishDict = sync.OnceValue(func() *golem.Lemmatizer {
	l, err := golem.New(en.New())
	if err != nil {
		slog.Warn("english lemma dictionary unavailable", "error", err)
		return nil
	}
	return l
})

type Lemmatizer struct {
	english bool
}

// New returns a lemmatizer for the given language code. English, also the fallback
// for codes without snowball support, gets the irregular-form tables and the
// dictionary; other languages keep words unchanged.
func New(code string) *Lemmatizer {
	name, ok := lang.SnowballName(code)
	if !ok {
		name = "english"
	}
	return &Lemmatizer{english: name == "english"}
}

// Lemmatize returns the first base form that differs from word, or word itself.
func (l *Lemmatizer) Lemmatize(word string) string {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return word
	}
	for _, form := range []func(string) string{l.Noun, l.Adjective, l.Verb} {
		if f := form(w); f != "" && f != w {
			return f
		}
	}
	return word
}

// Noun singularizes a plural noun.
func (l *Lemmatizer) Noun(w string) string {
	if !l.english {
		return w
	}
	if base, ok := irregularNouns[w]; ok {
		return base
	}
	if _, ok := invariantNouns[lastWord(w)]; ok || len(w) <= 3 {
		return w
	}
	switch {
	case strings.HasSuffix(w, "ies") && len(w) > 4:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "sses"),
		strings.HasSuffix(w, "xes"),
		strings.HasSuffix(w, "zes"),
		strings.HasSuffix(w, "ches"),
		strings.HasSuffix(w, "shes"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "ss"),
		strings.HasSuffix(w, "us"),
		strings.HasSuffix(w, "is"):
		return w
	case strings.HasSuffix(w, "s"):
		return w[:len(w)-1]
	}
	return w
}

// Adjective reduces comparative and superlative forms.
func (l *Lemmatizer) Adjective(w string) string {
	if !l.english {
		return w
	}
	if base, ok := irregularAdjectives[w]; ok {
		return base
	}
	switch {
	case strings.HasSuffix(w, "iest") && len(w) > 6:
		return w[:len(w)-4] + "y"
	case strings.HasSuffix(w, "est") && len(w) > 6 && doubled(w[:len(w)-3]):
		return w[:len(w)-4]
	}
	return w
}

// Verb reduces past and progressive forms. Regular inflections are resolved
// through the dictionary, so a form without a known lemma stays as is.
func (l *Lemmatizer) Verb(w string) string {
	if !l.english {
		return w
	}
	if base, ok := irregularVerbs[w]; ok {
		return base
	}
	if len(w) <= 4 || strings.Contains(w, " ") {
		return w
	}
	if !strings.HasSuffix(w, "ing") && !strings.HasSuffix(w, "ed") {
		return w
	}
	dict := englishDict()
	if dict == nil {
		return w
	}
	if dict.InDict(w) {
		if base := dict.Lemma(w); base != "" {
			return base
		}
	}
	return w
}

func doubled(s string) bool {
	n := len(s)
	if n < 2 || s[n-1] != s[n-2] {
		return false
	}
	return strings.ContainsRune("bdgmnpt", rune(s[n-1]))
}

func lastWord(w string) string {
	if i := strings.LastIndexByte(w, ' '); i >= 0 {
		return w[i+1:]
	}
	return w
}
