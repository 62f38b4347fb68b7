package grpc

import (
	"context"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/quentinrf/plant-monitor/services/lux-service/internal/catalog"
	"github.com/quentinrf/plant-monitor/services/lux-service/internal/domain"
	"github.com/quentinrf/plant-monitor/services/lux-service/internal/ports"
)

// LuxServiceHandler implements the gRPC LuxService. It is stateless:
// every Estimate carries its own room and fixtures.
type LuxServiceHandler struct {
	UnimplementedLuxServiceServer
	data *catalog.Data
}

// NewLuxServiceHandler creates a new gRPC handler
func NewLuxServiceHandler(data *catalog.Data) *LuxServiceHandler {
	return &LuxServiceHandler{data: data}
}

// Estimate runs the lumen method for the given room and fixtures
func (h *LuxServiceHandler) Estimate(ctx context.Context, req *EstimateRequest) (*EstimateResponse, error) {
	log.Info().
		Float64("area", req.Area).
		Float64("height_mm", req.HeightMM).
		Int("fixtures", len(req.Fixtures)).
		Msg("Estimate called")

	sel := domain.NewSelection()
	for _, in := range req.Fixtures {
		if err := h.add(sel, in); err != nil {
			log.Warn().Err(err).Str("fixture", in.Name).Msg("rejected fixture")
			return nil, err
		}
	}

	room := domain.RoomGeometry{Area: req.Area, HeightMM: req.HeightMM}
	res := domain.Estimate(sel.Items(), room, h.data.Factors)

	return &EstimateResponse{
		Result:      res,
		Achievement: domain.Achieve(res.ExpectedLux, req.TargetLux),
		HeightBand:  domain.HeightBand(req.HeightMM),
		Fixtures:    sel.Items(),
	}, nil
}

func (h *LuxServiceHandler) add(sel *domain.Selection, in FixtureInput) error {
	qty := in.Quantity
	if qty == 0 {
		qty = 1
	}
	if qty < 0 {
		return status.Errorf(codes.InvalidArgument, "quantity of %q must be positive", in.Name)
	}

	if in.ColorTemp != "" && domain.ColorTemp(in.ColorTemp) != domain.CustomColorTemp {
		t, ok := h.data.Catalog.Find(in.Name)
		if !ok {
			return status.Errorf(codes.NotFound, "%v: %s", domain.ErrUnknownTemplate, in.Name)
		}
		if !sel.AddFromCatalog(t, domain.ColorTemp(in.ColorTemp), qty) {
			return status.Errorf(codes.InvalidArgument, "%q has no %s variant", in.Name, in.ColorTemp)
		}
		return nil
	}

	category := in.Category
	if category == "" {
		category = domain.CategoryLumenCustom
	}
	if !sel.AddCustom(domain.CustomFixture{Name: in.Name, Lumen: in.Lumen, Watt: in.Watt, Category: category}) {
		return status.Errorf(codes.InvalidArgument, "%v: %s", domain.ErrIncompleteFixture, in.Name)
	}
	items := sel.Items()
	sel.SetQuantity(items[len(items)-1].ID, qty)
	return nil
}

// ListCatalog returns the fixtures of a category, or the whole catalog
func (h *LuxServiceHandler) ListCatalog(ctx context.Context, req *ListCatalogRequest) (*ListCatalogResponse, error) {
	log.Info().Str("category", req.Category).Str("subtype", req.Subtype).Msg("ListCatalog called")

	c := h.data.Catalog
	fixtures := c.All()
	if req.Category != "" {
		fixtures = c.Filter(req.Category, req.Subtype)
	}

	return &ListCatalogResponse{
		Categories: c.Categories(),
		Subtypes:   c.Subtypes(req.Category),
		Fixtures:   fixtures,
	}, nil
}

// ListPresets returns the space presets
func (h *LuxServiceHandler) ListPresets(ctx context.Context, req *ListPresetsRequest) (*ListPresetsResponse, error) {
	log.Info().Msg("ListPresets called")

	return &ListPresetsResponse{
		Presets:       h.data.Presets,
		DefaultPreset: h.data.DefaultPreset,
	}, nil
}

// PreviewCustom shows the fixture a custom form would produce
func (h *LuxServiceHandler) PreviewCustom(ctx context.Context, req *PreviewCustomRequest) (*PreviewCustomResponse, error) {
	log.Info().Msg("PreviewCustom called")

	b := domain.NewCustomBuilder(h.data.Factors)
	effErr := ports.ApplyCustomInput(b, req.Input)
	proposal, ready := b.Propose()

	resp := &PreviewCustomResponse{Proposal: proposal, Ready: ready}
	if effErr != nil {
		resp.EfficiencyError = effErr.Error()
	}
	return resp, nil
}
