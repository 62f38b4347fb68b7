// Package httpapi exposes workspaces and the saved lists to the browser client
package httpapi

import (
	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	Handler      *Handler
	AllowOrigins []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger())
	r.Use(CORS(cfg.AllowOrigins))

	h := cfg.Handler
	r.GET("/healthcheck", h.HealthCheck)

	api := r.Group("/api/v1")
	{
		api.GET("/catalog", h.ListCatalog)
		api.GET("/presets", h.ListPresets)
		api.POST("/custom/preview", h.PreviewCustom)

		api.GET("/saved-fixtures", h.ListSavedFixtures)
		api.DELETE("/saved-fixtures/:sid", h.DeleteSavedFixture)
		api.GET("/saved-results", h.ListSavedResults)
		api.DELETE("/saved-results/:rid", h.DeleteSavedResult)

		api.POST("/workspaces", h.CreateWorkspace)
	}

	ws := api.Group("/workspaces/:id")
	{
		ws.GET("", h.GetWorkspace)
		ws.DELETE("", h.DeleteWorkspace)

		ws.PUT("/room", h.SetRoom)
		ws.PUT("/target", h.SetTarget)
		ws.PUT("/preset", h.ChoosePreset)

		ws.POST("/fixtures", h.AddFixture)
		ws.PATCH("/fixtures/:fid", h.SetQuantity)
		ws.DELETE("/fixtures/:fid", h.RemoveFixture)

		ws.GET("/browse", h.Browse)
		ws.PUT("/browse", h.SetBrowse)
		ws.POST("/picks", h.Pick)
		ws.PATCH("/picks", h.SetPendingQuantity)
		ws.POST("/picks/confirm", h.ConfirmPick)

		ws.PATCH("/custom", h.EditCustom)
		ws.POST("/custom", h.AddCustom)
		ws.POST("/custom/save", h.SaveCustomFixture)
		ws.POST("/saved-fixtures/:sid/load", h.LoadSavedFixture)

		ws.POST("/results", h.SaveResult)
		ws.POST("/results/:rid/load", h.LoadResult)

		ws.POST("/hold", h.Hold)
		ws.POST("/release", h.Release)
	}

	return r
}
