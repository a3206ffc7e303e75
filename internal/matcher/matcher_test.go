package matcher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/julienpequegnot/tagdesk/internal/lemma"
	"github.com/julienpequegnot/tagdesk/internal/translate"
)

func newTestMatcher(t *testing.T) *Matcher {
	t.Helper()
	table, err := translate.LoadCSV(strings.NewReader("word,fr\nelection,élection\nvote,scrutin\n"))
	if err != nil {
		t.Fatalf("failed to load table: %v", err)
	}
	return New(lemma.New("en"), table, "en")
}

func TestCountOccurrencesWholeWords(t *testing.T) {
	assert.Equal(t, 2, CountOccurrences("cat dog cat bird", "cat"))
	assert.Equal(t, 0, CountOccurrences("concatenate category", "cat"))
	assert.Equal(t, 1, CountOccurrences("the CAT sat", "cat"))
	assert.Equal(t, 3, CountOccurrences("cat cat cat", "cat"))
	assert.Equal(t, 0, CountOccurrences("cat", ""))
}

func TestCountOccurrencesPhrases(t *testing.T) {
	text := "the white house said the white house press office"
	assert.Equal(t, 2, CountOccurrences(text, "white house"))
	assert.Equal(t, 0, CountOccurrences("whitehouse", "white house"))
}

func TestCountOccurrencesNonOverlapping(t *testing.T) {
	assert.Equal(t, 1, CountOccurrences("a a a", "a a"))
}

func TestCountFrequenciesScenario(t *testing.T) {
	m := New(nil, nil, "en")
	assert.Equal(t, 2, m.CountFrequencies([]string{"cat"}, []string{"cat", "dog", "cat", "bird"}, ""))
}

func TestCountFrequenciesEmptyHooks(t *testing.T) {
	m := newTestMatcher(t)
	tokens := []string{"election", "day"}

	assert.Equal(t, 0, m.CountFrequencies(nil, tokens, ""))
	assert.Equal(t, 0, m.CountFrequencies([]string{""}, tokens, ""))
	assert.Equal(t, 0, m.CountFrequencies([]string{"election"}, nil, ""))
}

func TestCountFrequenciesAddsLemmaCounts(t *testing.T) {
	m := newTestMatcher(t)
	tokens := strings.Fields("elections held after the election")

	// literal "elections" once, lemma "election" once
	assert.Equal(t, 2, m.CountFrequencies([]string{"elections"}, tokens, "en"))
	// literal only, lemma is identical
	assert.Equal(t, 1, m.CountFrequencies([]string{"election"}, tokens, "en"))
}

func TestCountFrequenciesAlternatives(t *testing.T) {
	m := newTestMatcher(t)
	tokens := strings.Fields("vote today in the election")

	assert.Equal(t, 2, m.CountFrequencies([]string{"election", "vote"}, tokens, ""))
}

func TestCountFrequenciesTranslations(t *testing.T) {
	m := newTestMatcher(t)
	tokens := strings.Fields("le scrutin de dimanche et l'élection")

	assert.Equal(t, 1, m.CountFrequencies([]string{"vote"}, tokens, "fr"))
	assert.Equal(t, 0, m.CountFrequencies([]string{"vote"}, tokens, "en"))
}

func TestMissingTranslationMatchesLemmaOnlyExpansion(t *testing.T) {
	m := newTestMatcher(t)
	lemmaOnly := New(lemma.New("en"), nil, "en")
	tokens := strings.Fields("referendums et referendum")

	assert.Equal(t, []string{"referendums", "referendum"}, m.Expand("referendums", "fr"))
	assert.Equal(t,
		lemmaOnly.CountFrequencies([]string{"referendums"}, tokens, "fr"),
		m.CountFrequencies([]string{"referendums"}, tokens, "fr"),
	)
}

func TestExpandSkipsTranslationInBaseLanguage(t *testing.T) {
	m := newTestMatcher(t)

	assert.Equal(t, []string{"vote"}, m.Expand("vote", "en-GB"))
	assert.Equal(t, []string{"vote", "scrutin"}, m.Expand("vote", "fr"))
	assert.Nil(t, m.Expand("  ", "fr"))
}

func TestCountFrequenciesMonotonic(t *testing.T) {
	m := newTestMatcher(t)
	tokens := strings.Fields("a quiet day with no news")

	prev := m.CountFrequencies([]string{"vote"}, tokens, "")
	for i := 0; i < 5; i++ {
		tokens = append(tokens, "VOTE")
		next := m.CountFrequencies([]string{"vote"}, tokens, "")
		assert.GreaterOrEqual(t, next, prev)
		prev = next
	}
	assert.Equal(t, 5, prev)
}
