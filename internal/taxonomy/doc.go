package taxonomy

// The *Doc types mirror the external JSON/YAML/TOML category shape, where section
// overrides are nested "title" and "body" objects on a rule.

type OverrideDoc struct {
	Inactive bool     `json:"inactive,omitempty" yaml:"inactive,omitempty" toml:"inactive,omitempty"`
	Weight   *float64 `json:"weight,omitempty" yaml:"weight,omitempty" toml:"weight,omitempty"`
	Boost    *float64 `json:"boost,omitempty" yaml:"boost,omitempty" toml:"boost,omitempty"`
}

type RuleDoc struct {
	Hook   string       `json:"hook" yaml:"hook" toml:"hook"`
	Weight float64      `json:"weight,omitempty" yaml:"weight,omitempty" toml:"weight,omitempty"`
	Boost  float64      `json:"boost,omitempty" yaml:"boost,omitempty" toml:"boost,omitempty"`
	Title  *OverrideDoc `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Body   *OverrideDoc `json:"body,omitempty" yaml:"body,omitempty" toml:"body,omitempty"`
}

type WeightsDoc struct {
	Title float64 `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Body  float64 `json:"body,omitempty" yaml:"body,omitempty" toml:"body,omitempty"`
}

type CategoryDoc struct {
	ID              string      `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	Key             string      `json:"key" yaml:"key" toml:"key"`
	Name            string      `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	ParentID        string      `json:"parentId,omitempty" yaml:"parentId,omitempty" toml:"parentId,omitempty"`
	Color           string      `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
	LegacyKey       string      `json:"legacy_key,omitempty" yaml:"legacy_key,omitempty" toml:"legacy_key,omitempty"`
	Rules           []RuleDoc   `json:"rules" yaml:"rules" toml:"rules"`
	SectionsWeights *WeightsDoc `json:"sections_weights,omitempty" yaml:"sections_weights,omitempty" toml:"sections_weights,omitempty"`
	QuickKeywords   []string    `json:"quick_keywords,omitempty" yaml:"quick_keywords,omitempty" toml:"quick_keywords,omitempty"`
}

// FileDoc is the top level of a taxonomy file.
type FileDoc struct {
	Categories []CategoryDoc `json:"categories" yaml:"categories" toml:"categories"`
}

func (d OverrideDoc) override() RuleOverride {
	return RuleOverride{Inactive: d.Inactive, Weight: d.Weight, Boost: d.Boost}
}

func overrideDoc(o RuleOverride) *OverrideDoc {
	return &OverrideDoc{Inactive: o.Inactive, Weight: o.Weight, Boost: o.Boost}
}

// Rule converts the document into a KeywordRule.
func (d RuleDoc) Rule() KeywordRule {
	r := KeywordRule{Hook: d.Hook, Weight: d.Weight, Boost: d.Boost}
	if d.Title != nil || d.Body != nil {
		r.SectionOverrides = make(map[Section]RuleOverride, 2)
	}
	if d.Title != nil {
		r.SectionOverrides[SectionTitle] = d.Title.override()
	}
	if d.Body != nil {
		r.SectionOverrides[SectionBody] = d.Body.override()
	}
	return r
}

// RuleToDoc converts a KeywordRule into its document shape.
func RuleToDoc(r KeywordRule) RuleDoc {
	d := RuleDoc{Hook: r.Hook, Weight: r.Weight, Boost: r.Boost}
	if o, ok := r.Override(SectionTitle); ok {
		d.Title = overrideDoc(o)
	}
	if o, ok := r.Override(SectionBody); ok {
		d.Body = overrideDoc(o)
	}
	return d
}

// Category converts the document into a Category.
func (d CategoryDoc) Category() Category {
	c := Category{
		ID:            d.ID,
		Key:           d.Key,
		Name:          d.Name,
		ParentID:      d.ParentID,
		Color:         d.Color,
		LegacyKey:     d.LegacyKey,
		QuickKeywords: d.QuickKeywords,
	}
	if d.Rules != nil {
		c.Rules = make([]KeywordRule, 0, len(d.Rules))
		for _, rd := range d.Rules {
			c.Rules = append(c.Rules, rd.Rule())
		}
	}
	if d.SectionsWeights != nil {
		c.Weights = SectionWeights{Title: d.SectionsWeights.Title, Body: d.SectionsWeights.Body}
	}
	if c.Name == "" {
		c.Name = c.Key
	}
	return c
}

// CategoryToDoc converts a Category into its document shape.
func CategoryToDoc(c Category) CategoryDoc {
	d := CategoryDoc{
		ID:            c.ID,
		Key:           c.Key,
		Name:          c.Name,
		ParentID:      c.ParentID,
		Color:         c.Color,
		LegacyKey:     c.LegacyKey,
		QuickKeywords: c.QuickKeywords,
		Rules:         make([]RuleDoc, 0, len(c.Rules)),
	}
	for _, r := range c.Rules {
		d.Rules = append(d.Rules, RuleToDoc(r))
	}
	if c.Weights != (SectionWeights{}) {
		d.SectionsWeights = &WeightsDoc{Title: c.Weights.Title, Body: c.Weights.Body}
	}
	return d
}
