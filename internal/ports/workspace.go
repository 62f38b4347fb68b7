package ports

import (
	"context"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/quentinrf/plant-monitor/services/lux-service/internal/catalog"
	"github.com/quentinrf/plant-monitor/services/lux-service/internal/domain"
	"github.com/quentinrf/plant-monitor/services/lux-service/internal/longpress"
)

// Initial form values
const (
	DefaultAreaInput   = "20"
	DefaultHeightInput = "2500"
)

// Hold controls
const (
	ControlArea     = "area"
	ControlHeight   = "height"
	ControlQuantity = "quantity"
	ControlPending  = "pending"
)

// Control names a stepper that can be held down. Target is the selected
// fixture id for ControlQuantity and the catalog name for ControlPending.
type Control struct {
	Field  string  `json:"field"`
	Target string  `json:"target,omitempty"`
	Delta  float64 `json:"delta"`
}

// CustomInput carries the custom fixture form fields that changed
type CustomInput struct {
	Name        *string           `json:"name"`
	Mode        *domain.InputMode `json:"mode"`
	FixtureType *string           `json:"fixture_type"`
	Efficiency  *float64          `json:"efficiency"`
	Lumen       *float64          `json:"lumen"`
	Watt        *float64          `json:"watt"`
}

// CustomState is the custom fixture form with what it would add
type CustomState struct {
	Form            domain.CustomBuilder `json:"form"`
	Proposal        domain.CustomFixture `json:"proposal"`
	Ready           bool                 `json:"ready"`
	EfficiencyError string               `json:"efficiency_error,omitempty"`
}

// State is a consistent copy of a workspace
type State struct {
	ID          string                   `json:"id"`
	AreaInput   string                   `json:"area_input"`
	HeightInput string                   `json:"height_input"`
	Room        domain.RoomGeometry      `json:"room"`
	TargetLux   int                      `json:"target_lux"`
	Preset      string                   `json:"preset,omitempty"`
	Fixtures    []domain.SelectedFixture `json:"fixtures"`
	Result      domain.Result            `json:"result"`
	Achievement domain.Achievement       `json:"achievement"`
	Custom      CustomState              `json:"custom"`
	Category    string                   `json:"category"`
	Subtype     string                   `json:"subtype,omitempty"`
	Picks       map[string]domain.Pick   `json:"picks"`
}

// Workspace is the form state of one client. Every mutation recomputes
// the result before returning.
//
// Lock order: a hold Repeater's lock is taken before mu, never after.
type Workspace struct {
	id   string
	data *catalog.Data
	lib  *Library

	clock longpress.Clock
	now   func() time.Time
	newID func() string

	mu          sync.Mutex
	areaInput   string
	heightInput string
	room        domain.RoomGeometry
	target      int
	preset      string
	selection   *domain.Selection
	builder     *domain.CustomBuilder
	browser     *domain.Browser
	result      domain.Result
	hold        *longpress.Repeater
	closed      bool
}

// NewWorkspace creates a workspace with the default room and preset
func NewWorkspace(id string, data *catalog.Data, lib *Library) *Workspace {
	w := &Workspace{
		id:        id,
		data:      data,
		lib:       lib,
		clock:     longpress.RealClock(),
		now:       time.Now,
		newID:     uuid.NewString,
		target:    data.DefaultTarget(),
		preset:    data.DefaultPreset,
		selection: domain.NewSelection(),
		builder:   domain.NewCustomBuilder(data.Factors),
		browser:   domain.NewBrowser(data.Catalog, data.DefaultCategory),
	}
	w.setAreaLocked(DefaultAreaInput)
	w.setHeightLocked(DefaultHeightInput)
	w.recomputeLocked()
	return w
}

// ID returns the workspace id
func (w *Workspace) ID() string { return w.id }

// State returns a snapshot of the workspace
func (w *Workspace) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stateLocked()
}

// SetRoom replaces area (m²) and height (mm) from text input
func (w *Workspace) SetRoom(area, height string) State {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.setAreaLocked(area)
	w.setHeightLocked(height)
	w.recomputeLocked()
	return w.stateLocked()
}

// SetTarget replaces the target illuminance; negative values are ignored
func (w *Workspace) SetTarget(lux int) State {
	w.mu.Lock()
	defer w.mu.Unlock()

	if lux >= 0 {
		w.target = lux
	}
	return w.stateLocked()
}

// ChoosePreset selects a space type and takes over its target
func (w *Workspace) ChoosePreset(name string) (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	p, ok := domain.FindPreset(w.data.Presets, name)
	if !ok {
		return w.stateLocked(), domain.ErrUnknownPreset
	}
	w.preset = p.Name
	w.target = p.TargetLux
	return w.stateLocked(), nil
}

// AddFromCatalog adds qty of a catalog fixture at ct. Invalid quantities
// and colour temperatures are ignored.
func (w *Workspace) AddFromCatalog(name string, ct domain.ColorTemp, qty int) (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	t, ok := w.data.Catalog.Find(name)
	if !ok {
		return w.stateLocked(), domain.ErrUnknownTemplate
	}
	if w.selection.AddFromCatalog(t, ct, qty) {
		w.recomputeLocked()
	}
	return w.stateLocked(), nil
}

// Remove drops a selected fixture
func (w *Workspace) Remove(id string) (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.selection.Remove(id) {
		return w.stateLocked(), domain.ErrFixtureNotFound
	}
	w.recomputeLocked()
	return w.stateLocked(), nil
}

// SetQuantity changes the quantity of a selected fixture; below 1 removes it
func (w *Workspace) SetQuantity(id string, qty int) (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.selection.SetQuantity(id, qty) {
		return w.stateLocked(), domain.ErrFixtureNotFound
	}
	w.recomputeLocked()
	return w.stateLocked(), nil
}

// Visible lists the catalog fixtures for the current category and subtype
func (w *Workspace) Visible() []domain.FixtureTemplate {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.browser.Visible()
}

// BrowseCategory switches the catalog category
func (w *Workspace) BrowseCategory(category string) State {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.browser.SelectCategory(category)
	return w.stateLocked()
}

// BrowseSubtype switches the subtype inside the current category
func (w *Workspace) BrowseSubtype(subtype string) State {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.browser.SelectSubtype(subtype)
	return w.stateLocked()
}

// Pick chooses a colour temperature for a listed fixture
func (w *Workspace) Pick(name string, ct domain.ColorTemp) (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.browser.Pick(name, ct) {
		return w.stateLocked(), domain.ErrUnknownTemplate
	}
	return w.stateLocked(), nil
}

// SetPendingQuantity edits the quantity of a pick
func (w *Workspace) SetPendingQuantity(name string, qty int) (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.browser.SetPendingQuantity(name, qty) {
		return w.stateLocked(), domain.ErrUnknownTemplate
	}
	return w.stateLocked(), nil
}

// ConfirmPick adds a pick to the selection
func (w *Workspace) ConfirmPick(name string) (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	t, p, ok := w.browser.Confirm(name)
	if !ok {
		return w.stateLocked(), domain.ErrUnknownTemplate
	}
	if w.selection.AddFromCatalog(t, p.ColorTemp, p.Quantity) {
		w.recomputeLocked()
	}
	return w.stateLocked(), nil
}

// EditCustom applies changed custom form fields. Mode and type are
// applied before the values so derived lumen uses the new efficiency.
func (w *Workspace) EditCustom(in CustomInput) State {
	w.mu.Lock()
	defer w.mu.Unlock()

	_ = ApplyCustomInput(w.builder, in)
	return w.stateLocked()
}

// ApplyCustomInput applies the changed fields to b and returns the
// efficiency validation error, if any. Lumen is only taken in lumen
// mode and watt only in watt mode.
func ApplyCustomInput(b *domain.CustomBuilder, in CustomInput) error {
	if in.Mode != nil {
		b.SetMode(*in.Mode)
	}
	if in.FixtureType != nil {
		b.SetFixtureType(*in.FixtureType)
	}
	if in.Efficiency != nil {
		_ = b.SetEfficiency(*in.Efficiency)
	}
	if in.Lumen != nil && b.Mode == domain.ModeLumen {
		b.SetLumen(*in.Lumen)
	}
	if in.Watt != nil && b.Mode == domain.ModeWatt {
		b.SetWatt(*in.Watt)
	}
	if in.Name != nil {
		b.Name = *in.Name
	}
	return b.ValidateEfficiency()
}

// AddCustom adds the fixture the custom form describes and clears the form
func (w *Workspace) AddCustom() (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	fx, ok := w.builder.Propose()
	if !ok || !w.selection.AddCustom(fx) {
		return w.stateLocked(), domain.ErrIncompleteFixture
	}
	w.builder.Clear()
	w.recomputeLocked()
	return w.stateLocked(), nil
}

// SaveCustomFixture stores the custom form in the library
func (w *Workspace) SaveCustomFixture(ctx context.Context) (domain.SavedCustomFixture, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	s, ok := w.builder.Snapshot(w.newID(), w.now().UTC())
	if !ok {
		return domain.SavedCustomFixture{}, domain.ErrIncompleteFixture
	}
	if err := w.lib.SaveCustomFixture(ctx, s); err != nil {
		return domain.SavedCustomFixture{}, err
	}
	return s, nil
}

// LoadSavedFixture refills the custom form from the library and adds
// the fixture to the selection
func (w *Workspace) LoadSavedFixture(ctx context.Context, id string) (State, error) {
	s, err := w.lib.FindCustomFixture(ctx, id)
	if err != nil {
		return w.State(), err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.builder.Restore(s)
	if w.selection.AddSaved(s) {
		w.recomputeLocked()
	}
	return w.stateLocked(), nil
}

// SaveResult stores the current estimate in the library
func (w *Workspace) SaveResult(ctx context.Context) (domain.SavedResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	r, err := domain.NewSavedResult(w.newID(), w.room, w.target, w.result, w.selection.Items(), w.now().UTC())
	if err != nil {
		return domain.SavedResult{}, err
	}
	if err := w.lib.SaveResult(ctx, r); err != nil {
		return domain.SavedResult{}, err
	}
	return r, nil
}

// LoadResult restores room, target and fixtures from a saved result
func (w *Workspace) LoadResult(ctx context.Context, id string) (State, error) {
	r, err := w.lib.FindResult(ctx, id)
	if err != nil {
		return w.State(), err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.setAreaLocked(formatNumber(r.Area))
	w.setHeightLocked(formatNumber(r.HeightMM))
	w.target = r.TargetLux
	w.selection.Replace(r.Fixtures)
	w.recomputeLocked()
	return w.stateLocked(), nil
}

// Hold presses a stepper: the step is applied at once and then repeated
// until ReleaseHold. A new hold replaces the previous one.
func (w *Workspace) Hold(ctl Control) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return domain.ErrWorkspaceNotFound
	}
	if err := w.checkControlLocked(ctl); err != nil {
		w.mu.Unlock()
		return err
	}
	prev := w.hold
	r := longpress.New(longpress.Options{
		Mode:     longpress.ModeRepeat,
		OnRepeat: func() { w.step(ctl) },
		Clock:    w.clock,
	})
	w.hold = r
	w.mu.Unlock()

	if prev != nil {
		prev.Close()
	}
	r.Press()
	return nil
}

// ReleaseHold ends the current hold, if any
func (w *Workspace) ReleaseHold() {
	w.mu.Lock()
	r := w.hold
	w.hold = nil
	w.mu.Unlock()

	if r != nil {
		r.Release(true)
		r.Close()
	}
}

// Close stops any hold in progress; later holds are refused
func (w *Workspace) Close() {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
	w.ReleaseHold()
}

func (w *Workspace) checkControlLocked(ctl Control) error {
	switch ctl.Field {
	case ControlArea, ControlHeight:
		return nil
	case ControlQuantity:
		if _, ok := w.selection.Get(ctl.Target); !ok {
			return domain.ErrFixtureNotFound
		}
		return nil
	case ControlPending:
		if _, ok := w.browser.Pending(ctl.Target); !ok {
			return domain.ErrUnknownTemplate
		}
		return nil
	}
	return domain.ErrUnknownControl
}

// step applies one stepper increment. Room values stop at 0 and
// quantities at 1.
func (w *Workspace) step(ctl Control) {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch ctl.Field {
	case ControlArea:
		w.setAreaLocked(formatNumber(math.Max(0, w.room.Area+ctl.Delta)))
	case ControlHeight:
		w.setHeightLocked(formatNumber(math.Max(0, w.room.HeightMM+ctl.Delta)))
	case ControlQuantity:
		fx, ok := w.selection.Get(ctl.Target)
		if !ok {
			return
		}
		w.selection.SetQuantity(fx.ID, max(1, fx.Quantity+int(ctl.Delta)))
	case ControlPending:
		p, ok := w.browser.Pending(ctl.Target)
		if !ok {
			return
		}
		w.browser.SetPendingQuantity(ctl.Target, p.Quantity+int(ctl.Delta))
		return
	}
	w.recomputeLocked()
}

func (w *Workspace) setAreaLocked(s string) {
	w.areaInput = domain.NormalizeNumeric(s)
	w.room.Area = domain.ParseNumeric(w.areaInput)
}

func (w *Workspace) setHeightLocked(s string) {
	w.heightInput = domain.NormalizeNumeric(s)
	w.room.HeightMM = domain.ParseNumeric(w.heightInput)
}

func (w *Workspace) recomputeLocked() {
	w.result = domain.Estimate(w.selection.Items(), w.room, w.data.Factors)

	log.Debug().
		Str("workspace", w.id).
		Int("fixtures", w.selection.Len()).
		Int("expected_lux", w.result.ExpectedLux).
		Msg("recomputed estimate")
}

func (w *Workspace) stateLocked() State {
	proposal, ready := w.builder.Propose()
	st := State{
		ID:          w.id,
		AreaInput:   w.areaInput,
		HeightInput: w.heightInput,
		Room:        w.room,
		TargetLux:   w.target,
		Preset:      w.preset,
		Fixtures:    w.selection.Items(),
		Result:      w.result,
		Achievement: domain.Achieve(w.result.ExpectedLux, w.target),
		Custom: CustomState{
			Form:     *w.builder,
			Proposal: proposal,
			Ready:    ready,
		},
		Category: w.browser.Category(),
		Subtype:  w.browser.Subtype(),
		Picks:    w.browser.Picks(),
	}
	if err := w.builder.ValidateEfficiency(); err != nil {
		st.Custom.EfficiencyError = err.Error()
	}
	return st
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
