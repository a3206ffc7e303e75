package lemma

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLemmatizeNouns(t *testing.T) {
	l := New("en")

	assert.Equal(t, "election", l.Lemmatize("elections"))
	assert.Equal(t, "policy", l.Lemmatize("policies"))
	assert.Equal(t, "tax", l.Lemmatize("taxes"))
	assert.Equal(t, "child", l.Lemmatize("children"))
	assert.Equal(t, "human right", l.Lemmatize("human rights"))
}

func TestLemmatizeKeepsInvariantWords(t *testing.T) {
	l := New("en")

	assert.Equal(t, "news", l.Lemmatize("news"))
	assert.Equal(t, "crisis", l.Lemmatize("crisis"))
	assert.Equal(t, "virus", l.Lemmatize("virus"))
	assert.Equal(t, "cat", l.Lemmatize("cat"))
}

func TestLemmatizeAdjectives(t *testing.T) {
	l := New("en")

	assert.Equal(t, "good", l.Lemmatize("best"))
	assert.Equal(t, "happy", l.Lemmatize("happiest"))
	assert.Equal(t, "big", l.Lemmatize("biggest"))
}

func TestLemmatizeVerbs(t *testing.T) {
	l := New("en")

	assert.Equal(t, "go", l.Lemmatize("went"))
	assert.Equal(t, "vote", l.Lemmatize("voted"))
	assert.Equal(t, "run", l.Lemmatize("running"))
}

func TestLemmatizeReturnsInputWhenUnchanged(t *testing.T) {
	l := New("en")

	assert.Equal(t, "Vote", l.Lemmatize("Vote"))
	assert.Equal(t, "", l.Lemmatize(""))
}

func TestNounTakesPrecedenceOverVerb(t *testing.T) {
	l := New("en")

	assert.Equal(t, "life", l.Lemmatize("lives"))
}

func TestUnsupportedLanguageFallsBackToEnglish(t *testing.T) {
	l := New("ja")

	assert.Equal(t, "election", l.Lemmatize("elections"))
}

func TestLemmatizeInflectionsToDictionaryForms(t *testing.T) {
	l := New("en")

	assert.Equal(t, "study", l.Lemmatize("studied"))
	assert.Equal(t, "create", l.Lemmatize("created"))
	assert.NotEqual(t, "unit", l.Lemmatize("united"))
	assert.Equal(t, "hundred", l.Lemmatize("hundred"))
}

func TestNonEnglishKeepsWords(t *testing.T) {
	l := New("fr")

	assert.Equal(t, "élections", l.Lemmatize("élections"))
	assert.Equal(t, "votée", l.Lemmatize("votée"))
}
