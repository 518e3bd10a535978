package api

import (
	"net/http"

	"dealership-backoffice/internal/domain/model"

	"github.com/gin-gonic/gin"
)

func (h *handler) categoryRoutes(r *gin.RouterGroup) {
	g := r.Group("/categories")
	g.GET("", h.listCategories)
	g.GET("/statistics", h.categoryStatistics)
	g.POST("", h.createCategory)
	g.GET("/:id", h.getCategory)
	g.PATCH("/:id", h.updateCategory)
	g.PATCH("/:id/flags", h.setCategoryFlags)
	g.POST("/:id/icon", h.uploadCategoryIcon)
	g.POST("/:id/duplicate", h.duplicateCategory)
	g.DELETE("/:id", h.deleteCategory)
}

func (h *handler) listCategories(c *gin.Context) {
	filter := model.CategoryFilter{
		IncludeInactive: queryBool(c, "include_inactive"),
		WebsiteVisible:  queryBool(c, "website_visible"),
		Information:     queryBool(c, "information"),
		InlineEditable:  queryBool(c, "inline_editable"),
	}
	categories, err := h.Categories.List(c.Request.Context(), filter)
	if err != nil {
		fail(c, err, "Failed to load categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *handler) categoryStatistics(c *gin.Context) {
	stats, err := h.Categories.Statistics(c.Request.Context())
	if err != nil {
		fail(c, err, "Failed to load categories")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *handler) getCategory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	category, err := h.Categories.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Failed to load category")
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *handler) createCategory(c *gin.Context) {
	var draft model.CategoryDraft
	if !bindJSON(c, &draft) {
		return
	}
	created, err := h.Categories.Create(c.Request.Context(), draft)
	if err != nil {
		fail(c, err, "Failed to create category")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *handler) updateCategory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var patch model.CategoryPatch
	if !bindJSON(c, &patch) {
		return
	}
	updated, err := h.Categories.Update(c.Request.Context(), id, patch)
	if err != nil {
		fail(c, err, "Failed to update category")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *handler) setCategoryFlags(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var flags model.CategoryFlags
	if !bindJSON(c, &flags) {
		return
	}
	updated, err := h.Categories.SetFlags(c.Request.Context(), id, flags)
	if err != nil {
		fail(c, err, "Failed to update category")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *handler) uploadCategoryIcon(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	header, err := c.FormFile("file")
	if err != nil {
		respondWithError(c, http.StatusBadRequest, "File is required", err)
		return
	}
	file, err := header.Open()
	if err != nil {
		respondWithError(c, http.StatusBadRequest, "Failed to read file", err)
		return
	}
	defer file.Close()

	updated, err := h.Categories.UploadIcon(c.Request.Context(), id, header.Filename, file)
	if err != nil {
		fail(c, err, "Failed to upload category icon")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *handler) duplicateCategory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	created, err := h.Categories.Duplicate(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Failed to duplicate category")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *handler) deleteCategory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Categories.Delete(c.Request.Context(), id, confirmation(c)); err != nil {
		fail(c, err, "Failed to delete category")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
