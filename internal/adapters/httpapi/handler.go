package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quentinrf/plant-monitor/services/lux-service/internal/domain"
	"github.com/quentinrf/plant-monitor/services/lux-service/internal/ports"
	"github.com/quentinrf/plant-monitor/services/lux-service/internal/report"
)

// Handler serves the estimator to the browser client
type Handler struct {
	workspaces *ports.Workspaces
	format     *report.Formatter
}

// NewHandler creates a handler over the workspace registry
func NewHandler(workspaces *ports.Workspaces, format *report.Formatter) *Handler {
	return &Handler{workspaces: workspaces, format: format}
}

// View is a workspace with its display text
type View struct {
	State   ports.State    `json:"state"`
	Summary report.Summary `json:"summary"`
}

type roomRequest struct {
	Area   string `json:"area"`
	Height string `json:"height"`
}

type targetRequest struct {
	TargetLux int `json:"target_lux"`
}

type presetRequest struct {
	Name string `json:"name" binding:"required"`
}

// addFixtureRequest defaults an omitted quantity to 1; an explicit
// non-positive quantity adds nothing
type addFixtureRequest struct {
	Name      string           `json:"name" binding:"required"`
	ColorTemp domain.ColorTemp `json:"color_temp" binding:"required"`
	Quantity  *int             `json:"quantity"`
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

type browseRequest struct {
	Category *string `json:"category"`
	Subtype  *string `json:"subtype"`
}

type pickRequest struct {
	Name      string           `json:"name" binding:"required"`
	ColorTemp domain.ColorTemp `json:"color_temp"`
	Quantity  int              `json:"quantity"`
}

func (h *Handler) view(st ports.State) View {
	return View{
		State:   st,
		Summary: h.format.Summarize(st.Result, st.TargetLux, st.Room.HeightMM),
	}
}

func (h *Handler) workspace(c *gin.Context) (*ports.Workspace, bool) {
	ws, err := h.workspaces.Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return nil, false
	}
	return ws, true
}

func (h *Handler) respondState(c *gin.Context, st ports.State, err error) {
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, h.view(st))
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// GET /api/v1/catalog
func (h *Handler) ListCatalog(c *gin.Context) {
	cat := h.workspaces.Data().Catalog
	category := c.Query("category")

	fixtures := cat.All()
	if category != "" {
		fixtures = cat.Filter(category, c.Query("subtype"))
	}

	RespondOK(c, gin.H{
		"categories": cat.Categories(),
		"subtypes":   cat.Subtypes(category),
		"fixtures":   fixtures,
	})
}

// GET /api/v1/presets
func (h *Handler) ListPresets(c *gin.Context) {
	data := h.workspaces.Data()
	RespondOK(c, gin.H{
		"presets":        data.Presets,
		"default_preset": data.DefaultPreset,
	})
}

// POST /api/v1/custom/preview
func (h *Handler) PreviewCustom(c *gin.Context) {
	var req ports.CustomInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	b := domain.NewCustomBuilder(h.workspaces.Data().Factors)
	effErr := ports.ApplyCustomInput(b, req)
	proposal, ready := b.Propose()

	resp := gin.H{
		"proposal": proposal,
		"ready":    ready,
		"watt":     h.format.Watt(proposal.Watt),
	}
	if effErr != nil {
		resp["efficiency_error"] = effErr.Error()
	}
	RespondOK(c, resp)
}

// GET /api/v1/saved-fixtures
func (h *Handler) ListSavedFixtures(c *gin.Context) {
	RespondOK(c, gin.H{"fixtures": h.workspaces.Library().CustomFixtures(c.Request.Context())})
}

// DELETE /api/v1/saved-fixtures/:sid
func (h *Handler) DeleteSavedFixture(c *gin.Context) {
	if err := h.workspaces.Library().DeleteCustomFixture(c.Request.Context(), c.Param("sid")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/v1/saved-results
func (h *Handler) ListSavedResults(c *gin.Context) {
	RespondOK(c, gin.H{"results": h.workspaces.Library().Results(c.Request.Context())})
}

// DELETE /api/v1/saved-results/:rid
func (h *Handler) DeleteSavedResult(c *gin.Context) {
	if err := h.workspaces.Library().DeleteResult(c.Request.Context(), c.Param("rid")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /api/v1/workspaces
func (h *Handler) CreateWorkspace(c *gin.Context) {
	ws := h.workspaces.Create()
	c.JSON(http.StatusCreated, h.view(ws.State()))
}

// GET /api/v1/workspaces/:id
func (h *Handler) GetWorkspace(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	RespondOK(c, h.view(ws.State()))
}

// DELETE /api/v1/workspaces/:id
func (h *Handler) DeleteWorkspace(c *gin.Context) {
	if err := h.workspaces.Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PUT /api/v1/workspaces/:id/room
func (h *Handler) SetRoom(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	RespondOK(c, h.view(ws.SetRoom(req.Area, req.Height)))
}

// PUT /api/v1/workspaces/:id/target
func (h *Handler) SetTarget(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	var req targetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	RespondOK(c, h.view(ws.SetTarget(req.TargetLux)))
}

// PUT /api/v1/workspaces/:id/preset
func (h *Handler) ChoosePreset(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	var req presetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	st, err := ws.ChoosePreset(req.Name)
	h.respondState(c, st, err)
}

// POST /api/v1/workspaces/:id/fixtures
func (h *Handler) AddFixture(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	var req addFixtureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	qty := 1
	if req.Quantity != nil {
		qty = *req.Quantity
	}
	st, err := ws.AddFromCatalog(req.Name, req.ColorTemp, qty)
	h.respondState(c, st, err)
}

// PATCH /api/v1/workspaces/:id/fixtures/:fid
func (h *Handler) SetQuantity(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	var req quantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	st, err := ws.SetQuantity(c.Param("fid"), req.Quantity)
	h.respondState(c, st, err)
}

// DELETE /api/v1/workspaces/:id/fixtures/:fid
func (h *Handler) RemoveFixture(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	st, err := ws.Remove(c.Param("fid"))
	h.respondState(c, st, err)
}

// GET /api/v1/workspaces/:id/browse
func (h *Handler) Browse(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	st := ws.State()
	RespondOK(c, gin.H{
		"category": st.Category,
		"subtype":  st.Subtype,
		"subtypes": h.workspaces.Data().Catalog.Subtypes(st.Category),
		"picks":    st.Picks,
		"fixtures": ws.Visible(),
	})
}

// PUT /api/v1/workspaces/:id/browse
func (h *Handler) SetBrowse(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	var req browseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.Category != nil {
		ws.BrowseCategory(*req.Category)
	}
	if req.Subtype != nil {
		ws.BrowseSubtype(*req.Subtype)
	}
	h.Browse(c)
}

// POST /api/v1/workspaces/:id/picks
func (h *Handler) Pick(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	var req pickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	st, err := ws.Pick(req.Name, req.ColorTemp)
	h.respondState(c, st, err)
}

// PATCH /api/v1/workspaces/:id/picks
func (h *Handler) SetPendingQuantity(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	var req pickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	st, err := ws.SetPendingQuantity(req.Name, req.Quantity)
	h.respondState(c, st, err)
}

// POST /api/v1/workspaces/:id/picks/confirm
func (h *Handler) ConfirmPick(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	var req pickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	st, err := ws.ConfirmPick(req.Name)
	h.respondState(c, st, err)
}

// PATCH /api/v1/workspaces/:id/custom
func (h *Handler) EditCustom(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	var req ports.CustomInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	RespondOK(c, h.view(ws.EditCustom(req)))
}

// POST /api/v1/workspaces/:id/custom
func (h *Handler) AddCustom(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	st, err := ws.AddCustom()
	h.respondState(c, st, err)
}

// POST /api/v1/workspaces/:id/custom/save
func (h *Handler) SaveCustomFixture(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	saved, err := ws.SaveCustomFixture(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// POST /api/v1/workspaces/:id/saved-fixtures/:sid/load
func (h *Handler) LoadSavedFixture(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	st, err := ws.LoadSavedFixture(c.Request.Context(), c.Param("sid"))
	h.respondState(c, st, err)
}

// POST /api/v1/workspaces/:id/results
func (h *Handler) SaveResult(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	saved, err := ws.SaveResult(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// POST /api/v1/workspaces/:id/results/:rid/load
func (h *Handler) LoadResult(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	st, err := ws.LoadResult(c.Request.Context(), c.Param("rid"))
	h.respondState(c, st, err)
}

// POST /api/v1/workspaces/:id/hold
func (h *Handler) Hold(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	var req ports.Control
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := ws.Hold(req); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, h.view(ws.State()))
}

// POST /api/v1/workspaces/:id/release
func (h *Handler) Release(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	ws.ReleaseHold()
	RespondOK(c, h.view(ws.State()))
}
