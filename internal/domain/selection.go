package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Selection owns the list of fixtures chosen for a room.
// Invalid mutations are ignored and reported through the bool result.
type Selection struct {
	items []SelectedFixture
	newID func() string
}

// NewSelection creates an empty selection
func NewSelection() *Selection {
	return &Selection{newID: uuid.NewString}
}

// AddFromCatalog adds qty of template at colour temperature ct.
// A pick with the same name and ct already present gets its quantity raised.
func (s *Selection) AddFromCatalog(t FixtureTemplate, ct ColorTemp, qty int) bool {
	if qty <= 0 || ct == "" {
		return false
	}
	lumen, ok := t.Lumen(ct)
	if !ok {
		return false
	}

	for i := range s.items {
		if s.items[i].Name == t.Name && s.items[i].ColorTemp == ct {
			s.items[i].Quantity += qty
			return true
		}
	}

	s.items = append(s.items, SelectedFixture{
		ID:        CatalogFixtureID(t.Name, ct),
		Name:      t.Name,
		Lumen:     lumen,
		Watt:      t.Watt,
		ColorTemp: ct,
		Size:      t.Size,
		Category:  t.Category,
		Quantity:  qty,
		Subtype:   t.Subtype,
		Thumbnail: t.Thumbnail,
	})
	return true
}

// AddCustom appends a built fixture as a new entry, even when an
// identical one is already selected
func (s *Selection) AddCustom(c CustomFixture) bool {
	if strings.TrimSpace(c.Name) == "" || c.Lumen <= 0 || c.Watt <= 0 {
		return false
	}

	s.items = append(s.items, SelectedFixture{
		ID:        s.newID(),
		Name:      c.Name,
		Lumen:     c.Lumen,
		Watt:      c.Watt,
		ColorTemp: CustomColorTemp,
		Size:      string(CustomColorTemp),
		Category:  c.Category,
		Quantity:  1,
	})
	return true
}

// AddSaved re-adds a previously saved custom fixture as a new entry
func (s *Selection) AddSaved(saved SavedCustomFixture) bool {
	return s.AddCustom(CustomFixture{
		Name:        saved.Name,
		Lumen:       saved.Lumen,
		Watt:        saved.Watt,
		Category:    CategoryTag(saved.Mode, saved.FixtureType),
		FixtureType: saved.FixtureType,
	})
}

// Remove drops the entry with id
func (s *Selection) Remove(id string) bool {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// SetQuantity replaces the quantity of id; anything below 1 removes it
func (s *Selection) SetQuantity(id string, qty int) bool {
	if qty < 1 {
		return s.Remove(id)
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = qty
			return true
		}
	}
	return false
}

// Get returns the entry with id
func (s *Selection) Get(id string) (SelectedFixture, bool) {
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return SelectedFixture{}, false
}

// Items returns a copy of the selected fixtures in insertion order
func (s *Selection) Items() []SelectedFixture {
	out := make([]SelectedFixture, len(s.items))
	copy(out, s.items)
	return out
}

// Replace swaps the whole list, e.g. when a saved result is reopened.
// Entries with a quantity below 1 are dropped.
func (s *Selection) Replace(items []SelectedFixture) {
	s.items = s.items[:0]
	for _, it := range items {
		if it.Quantity < 1 {
			continue
		}
		s.items = append(s.items, it)
	}
}

// Len returns the number of entries
func (s *Selection) Len() int {
	return len(s.items)
}
