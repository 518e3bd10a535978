package api

import (
	"net/http"

	"dealership-backoffice/internal/domain/model"

	"github.com/gin-gonic/gin"
)

func (h *handler) settingsRoutes(r *gin.RouterGroup) {
	r.GET("/settings", h.getSettings)
	r.PUT("/settings", h.saveSettings)
	r.GET("/settings/defaults", func(c *gin.Context) {
		c.JSON(http.StatusOK, model.DefaultSettings())
	})
}

func (h *handler) getSettings(c *gin.Context) {
	res := h.Settings().Load(c.Request.Context())
	writeResult(c, res, false)
}

// saveSettings replaces every field except the record id, which always comes
// from the stored settings.
func (h *handler) saveSettings(c *gin.Context) {
	var body model.SystemSettings
	if !bindJSON(c, &body) {
		return
	}
	form := h.Settings()
	if res := form.Load(c.Request.Context()); !res.Success {
		writeResult(c, res, false)
		return
	}
	form.UpdateData(func(s *model.SystemSettings) {
		id := s.ID
		*s = body
		s.ID = id
	})
	writeResult(c, form.Save(c.Request.Context()), false)
}
