package domain

// Pick is an unconfirmed colour temperature and quantity for one fixture
type Pick struct {
	ColorTemp ColorTemp `json:"color_temp"`
	Quantity  int       `json:"quantity"`
}

// Browser tracks which part of the catalog is on screen and the picks
// made there that have not been added to the selection yet
type Browser struct {
	catalog  *Catalog
	category string
	subtype  string
	picks    map[string]Pick
}

// NewBrowser starts on category
func NewBrowser(c *Catalog, category string) *Browser {
	return &Browser{
		catalog:  c,
		category: category,
		picks:    make(map[string]Pick),
	}
}

func (b *Browser) Category() string { return b.category }

func (b *Browser) Subtype() string { return b.subtype }

// SelectCategory switches category, clearing the subtype and all picks
func (b *Browser) SelectCategory(category string) {
	b.category = category
	b.subtype = ""
	b.resetPicks()
}

// SelectSubtype switches subtype within the current category and clears picks
func (b *Browser) SelectSubtype(subtype string) {
	b.subtype = subtype
	b.resetPicks()
}

// Visible returns the fixtures currently listed
func (b *Browser) Visible() []FixtureTemplate {
	return b.catalog.Filter(b.category, b.subtype)
}

// Pick chooses a colour temperature for a listed fixture and resets its
// pending quantity to 1
func (b *Browser) Pick(name string, ct ColorTemp) bool {
	if name == "" || ct == "" {
		return false
	}
	if _, ok := b.visible(name); !ok {
		return false
	}
	b.picks[name] = Pick{ColorTemp: ct, Quantity: 1}
	return true
}

// SetPendingQuantity edits the quantity of a pick; it never drops below 1
func (b *Browser) SetPendingQuantity(name string, qty int) bool {
	p, ok := b.picks[name]
	if !ok {
		return false
	}
	if qty < 1 {
		qty = 1
	}
	p.Quantity = qty
	b.picks[name] = p
	return true
}

// Pending returns the pick for name
func (b *Browser) Pending(name string) (Pick, bool) {
	p, ok := b.picks[name]
	return p, ok
}

// Picks returns a copy of all pending picks
func (b *Browser) Picks() map[string]Pick {
	out := make(map[string]Pick, len(b.picks))
	for k, v := range b.picks {
		out[k] = v
	}
	return out
}

// Confirm hands the pick for name over to the caller and clears it
func (b *Browser) Confirm(name string) (FixtureTemplate, Pick, bool) {
	p, ok := b.picks[name]
	if !ok {
		return FixtureTemplate{}, Pick{}, false
	}
	t, ok := b.visible(name)
	if !ok {
		return FixtureTemplate{}, Pick{}, false
	}
	delete(b.picks, name)
	return t, p, true
}

func (b *Browser) visible(name string) (FixtureTemplate, bool) {
	for _, t := range b.Visible() {
		if t.Name == name {
			return t, true
		}
	}
	return FixtureTemplate{}, false
}

func (b *Browser) resetPicks() {
	b.picks = make(map[string]Pick)
}
