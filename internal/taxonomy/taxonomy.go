// Package taxonomy holds the category tree and the keyword rules used to score articles.
package taxonomy

import "strings"

// Section names one of the scored text fields of an article.
type Section string

const (
	SectionTitle Section = "title"
	SectionBody  Section = "body"
)

// Sections lists the scored sections in evaluation order.
var Sections = []Section{SectionTitle, SectionBody}

const (
	DefaultTitleWeight = 3.0
	DefaultBodyWeight  = 1.0
	DefaultRuleWeight  = 1.0
)

// RuleOverride shadows a rule's fields for a single section.
// Nil Weight or Boost means "use the rule's own value".
type RuleOverride struct {
	Inactive bool
	Weight   *float64
	Boost    *float64
}

// KeywordRule is the atomic scoring unit of a category.
type KeywordRule struct {
	// Hook holds "|"-separated alternative spellings.
	Hook   string
	Weight float64
	Boost  float64

	SectionOverrides map[Section]RuleOverride
}

// Hooks splits the hook into its alternatives.
func (r KeywordRule) Hooks() []string {
	return strings.Split(r.Hook, "|")
}

// Override returns the section override, if any.
func (r KeywordRule) Override(s Section) (RuleOverride, bool) {
	o, ok := r.SectionOverrides[s]
	return o, ok
}

// ActiveIn reports whether the rule takes part in scoring section s.
func (r KeywordRule) ActiveIn(s Section) bool {
	o, ok := r.Override(s)
	return !ok || !o.Inactive
}

// WeightIn resolves the rule weight for section s, defaulting to 1.
func (r KeywordRule) WeightIn(s Section) float64 {
	if o, ok := r.Override(s); ok && o.Weight != nil && *o.Weight != 0 {
		return *o.Weight
	}
	if r.Weight != 0 {
		return r.Weight
	}
	return DefaultRuleWeight
}

// BoostIn resolves the rule boost for section s.
func (r KeywordRule) BoostIn(s Section) float64 {
	if o, ok := r.Override(s); ok && o.Boost != nil {
		return *o.Boost
	}
	return r.Boost
}

// WithOverride returns a copy of the rule with the override for s replaced.
func (r KeywordRule) WithOverride(s Section, o RuleOverride) KeywordRule {
	overrides := make(map[Section]RuleOverride, len(r.SectionOverrides)+1)
	for k, v := range r.SectionOverrides {
		overrides[k] = v
	}
	overrides[s] = o
	r.SectionOverrides = overrides
	return r
}

// SectionWeights are per-category section weights. Zero means "use the default".
type SectionWeights struct {
	Title float64
	Body  float64
}

// Category is a taxonomy node. ParentID only organizes the tree; scoring treats
// categories as a flat list.
type Category struct {
	ID        string
	Key       string
	Name      string
	ParentID  string
	Color     string
	LegacyKey string

	Rules         []KeywordRule
	Weights       SectionWeights
	QuickKeywords []string
}

// SectionWeight resolves the weight of section s, falling back to defaults.
func (c Category) SectionWeight(s Section, defaults SectionWeights) float64 {
	var w, d float64
	switch s {
	case SectionTitle:
		w, d = c.Weights.Title, defaults.Title
		if d == 0 {
			d = DefaultTitleWeight
		}
	case SectionBody:
		w, d = c.Weights.Body, defaults.Body
		if d == 0 {
			d = DefaultBodyWeight
		}
	}
	if w != 0 {
		return w
	}
	return d
}

// Float returns a pointer to v, for building overrides.
func Float(v float64) *float64 {
	return &v
}
