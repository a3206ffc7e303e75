package pipeline

import (
	"fmt"

	"github.com/julienpequegnot/tagdesk/internal/config"
	"github.com/julienpequegnot/tagdesk/internal/lemma"
	"github.com/julienpequegnot/tagdesk/internal/matcher"
	"github.com/julienpequegnot/tagdesk/internal/scorer"
	"github.com/julienpequegnot/tagdesk/internal/taxonomy"
	"github.com/julienpequegnot/tagdesk/internal/translate"
)

// Engine bundles the read-only scoring collaborators built from configuration.
type Engine struct {
	Scorer       *scorer.Scorer
	Matcher      *matcher.Matcher
	Translations *translate.Table
}

// NewEngine loads the translation table and wires lemmatizer, matcher and scorer.
func NewEngine(cfg *config.Config) (*Engine, error) {
	table, err := translate.LoadFile(cfg.TranslationsPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}
	return NewEngineWithTable(cfg, table), nil
}

func NewEngineWithTable(cfg *config.Config, table *translate.Table) *Engine {
	base := cfg.Scoring.BaseLanguage
	m := matcher.New(lemma.New(base), table, base)
	s := scorer.New(m,
		scorer.WithStrict(cfg.Scoring.Strict),
		scorer.WithSectionWeights(taxonomy.SectionWeights{
			Title: cfg.Scoring.TitleWeight,
			Body:  cfg.Scoring.BodyWeight,
		}),
	)
	return &Engine{Scorer: s, Matcher: m, Translations: table}
}
