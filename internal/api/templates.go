package api

import (
	"net/http"

	"dealership-backoffice/internal/domain/model"

	"github.com/gin-gonic/gin"
)

type templateRequest struct {
	Fields model.TemplatePatch       `json:"fields"`
	Lines  []model.SpecificationLine `json:"lines"`
}

func (h *handler) templateRoutes(r *gin.RouterGroup) {
	g := r.Group("/templates")
	g.GET("", h.listTemplates)
	g.GET("/statistics", h.templateStatistics)
	g.POST("", h.createTemplate)
	g.GET("/:id", h.getTemplate)
	g.PUT("/:id", h.saveTemplate)
	g.POST("/:id/duplicate", h.duplicateTemplate)
	g.POST("/:id/default", h.setDefaultTemplate)
	g.PUT("/:id/website-visible", h.setTemplateVisible)
	g.DELETE("/:id", h.deleteTemplate)
}

func (h *handler) listTemplates(c *gin.Context) {
	templates, err := h.Templates.List(c.Request.Context(), queryBool(c, "include_inactive"))
	if err != nil {
		fail(c, err, "Failed to load templates")
		return
	}
	c.JSON(http.StatusOK, templates)
}

func (h *handler) templateStatistics(c *gin.Context) {
	stats, err := h.Templates.Statistics(c.Request.Context())
	if err != nil {
		fail(c, err, "Failed to load templates")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *handler) getTemplate(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	template, err := h.Templates.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Failed to load template")
		return
	}
	c.JSON(http.StatusOK, template)
}

func (h *handler) createTemplate(c *gin.Context) {
	var req templateRequest
	if !bindJSON(c, &req) {
		return
	}
	saved, err := h.Templates.Save(c.Request.Context(), 0, req.Fields, req.Lines)
	if err != nil {
		fail(c, err, "Failed to create template")
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// saveTemplate replaces fields and, when lines is present, the whole line list.
func (h *handler) saveTemplate(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req templateRequest
	if !bindJSON(c, &req) {
		return
	}
	saved, err := h.Templates.Save(c.Request.Context(), id, req.Fields, req.Lines)
	if err != nil {
		fail(c, err, "Failed to update template")
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *handler) duplicateTemplate(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	created, err := h.Templates.Duplicate(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Failed to duplicate template")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *handler) setDefaultTemplate(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Templates.SetDefault(c.Request.Context(), id); err != nil {
		fail(c, err, "Failed to update template")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Default template updated"})
}

func (h *handler) setTemplateVisible(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var body struct {
		Visible bool `json:"website_visible"`
	}
	if !bindJSON(c, &body) {
		return
	}
	if err := h.Templates.SetWebsiteVisible(c.Request.Context(), id, body.Visible); err != nil {
		fail(c, err, "Failed to update template")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Template visibility updated"})
}

func (h *handler) deleteTemplate(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Templates.Delete(c.Request.Context(), id, confirmation(c)); err != nil {
		fail(c, err, "Failed to delete template")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Template deleted successfully"})
}
