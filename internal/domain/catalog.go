package domain

// Catalog is the fixed list of fixtures the estimator offers. It is built
// once at start-up; templates returned from it must not be modified.
type Catalog struct {
	templates  []FixtureTemplate
	categories []string
	subtypes   map[string][]string
}

// NewCatalog validates templates and indexes categories and subtypes in
// the order they first appear. Extra category names with no fixtures
// are kept so they can still be listed.
func NewCatalog(templates []FixtureTemplate, categories ...string) (*Catalog, error) {
	c := &Catalog{
		templates: make([]FixtureTemplate, 0, len(templates)),
		subtypes:  make(map[string][]string),
	}
	seenCat := make(map[string]bool)
	for _, name := range categories {
		if !seenCat[name] {
			seenCat[name] = true
			c.categories = append(c.categories, name)
		}
	}

	seenSub := make(map[string]bool)
	for _, t := range templates {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		c.templates = append(c.templates, t)
		if !seenCat[t.Category] {
			seenCat[t.Category] = true
			c.categories = append(c.categories, t.Category)
		}
		if t.Subtype != "" && !seenSub[t.Category+"\x00"+t.Subtype] {
			seenSub[t.Category+"\x00"+t.Subtype] = true
			c.subtypes[t.Category] = append(c.subtypes[t.Category], t.Subtype)
		}
	}
	return c, nil
}

// All returns every template in catalog order
func (c *Catalog) All() []FixtureTemplate {
	out := make([]FixtureTemplate, len(c.templates))
	copy(out, c.templates)
	return out
}

// Categories returns the category names in display order
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// Subtypes returns the subtypes of category, nil if it has none
func (c *Catalog) Subtypes(category string) []string {
	subs := c.subtypes[category]
	if len(subs) == 0 {
		return nil
	}
	out := make([]string, len(subs))
	copy(out, subs)
	return out
}

// RequiresSubtype reports whether category is split into subtypes
func (c *Catalog) RequiresSubtype(category string) bool {
	return len(c.subtypes[category]) > 0
}

// Filter returns the templates of category. For a subtype-bearing
// category only the chosen subtype is returned, and nothing at all
// until a subtype is chosen.
func (c *Catalog) Filter(category, subtype string) []FixtureTemplate {
	needSub := c.RequiresSubtype(category)
	if needSub && subtype == "" {
		return []FixtureTemplate{}
	}

	out := []FixtureTemplate{}
	for _, t := range c.templates {
		if t.Category != category {
			continue
		}
		if needSub && t.Subtype != subtype {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Find looks a template up by name
func (c *Catalog) Find(name string) (FixtureTemplate, bool) {
	for _, t := range c.templates {
		if t.Name == name {
			return t, true
		}
	}
	return FixtureTemplate{}, false
}
