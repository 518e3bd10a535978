package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"dealership-backoffice/internal/app/usecases"
	"dealership-backoffice/internal/domain/model"

	"github.com/gin-gonic/gin"
)

func (h *handler) mediaRoutes(r *gin.RouterGroup) {
	g := r.Group("/media")
	g.GET("", h.listMedia)
	g.POST("", h.createMedia)
	g.PUT("/order", h.reorderMedia)
	g.GET("/:id", h.getMedia)
	g.PATCH("/:id", h.updateMedia)
	g.DELETE("/:id", h.deleteMedia)
	g.POST("/:id/primary", h.setPrimaryMedia)
	g.PUT("/:id/featured", h.setFeaturedMedia)
	g.PUT("/:id/website-visible", h.setMediaWebsiteVisible)
}

func (h *handler) listMedia(c *gin.Context) {
	carID, ok := queryInt64(c, "car_id")
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}
	offset, ok := queryInt(c, "offset")
	if !ok {
		return
	}
	items, err := h.Media.List(c.Request.Context(), model.MediaFilter{
		CarID:           carID,
		MediaType:       strings.TrimSpace(c.Query("media_type")),
		IncludeInactive: queryBool(c, "include_inactive"),
		Limit:           limit,
		Offset:          offset,
	})
	if err != nil {
		fail(c, err, "Failed to load media")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *handler) getMedia(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Media.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Failed to load media")
		return
	}
	c.JSON(http.StatusOK, item)
}

// bindMedia fills form from either a JSON body or a multipart request with a
// "data" JSON part and an optional "file" part.
func bindMedia(c *gin.Context, form *usecases.MediaForm) bool {
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		var patch model.MediaPatch
		if !bindJSON(c, &patch) {
			return false
		}
		form.UpdateData(patch)
		return true
	}

	if raw := c.PostForm("data"); raw != "" {
		var patch model.MediaPatch
		if err := json.Unmarshal([]byte(raw), &patch); err != nil {
			respondWithError(c, http.StatusBadRequest, "Invalid media data", err)
			return false
		}
		form.UpdateData(patch)
	}

	header, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return true
		}
		respondWithError(c, http.StatusBadRequest, "Failed to read file", err)
		return false
	}
	file, err := header.Open()
	if err != nil {
		respondWithError(c, http.StatusBadRequest, "Failed to read file", err)
		return false
	}
	defer file.Close()
	if err := form.AttachFile(header.Filename, file); err != nil {
		fail(c, err, "Failed to upload file")
		return false
	}
	return true
}

func (h *handler) createMedia(c *gin.Context) {
	form := h.Media.New()
	if !bindMedia(c, form) {
		return
	}
	writeResult(c, form.Save(c.Request.Context()), true)
}

func (h *handler) updateMedia(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	form, err := h.Media.Open(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Failed to load media")
		return
	}
	if !bindMedia(c, form) {
		return
	}
	writeResult(c, form.Save(c.Request.Context()), false)
}

func (h *handler) deleteMedia(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Media.Delete(c.Request.Context(), id, confirmation(c)); err != nil {
		fail(c, err, "Failed to delete media")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Media deleted successfully"})
}

func (h *handler) setPrimaryMedia(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Media.SetPrimary(c.Request.Context(), id); err != nil {
		fail(c, err, "Failed to update media")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Primary media updated"})
}

func (h *handler) setFeaturedMedia(c *gin.Context) {
	h.setMediaFlag(c, "is_featured", h.Media.SetFeatured)
}

func (h *handler) setMediaWebsiteVisible(c *gin.Context) {
	h.setMediaFlag(c, "website_visible", h.Media.SetWebsiteVisible)
}

func (h *handler) setMediaFlag(c *gin.Context, field string, set func(ctx context.Context, id int64, value bool) error) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var body map[string]*bool
	if !bindJSON(c, &body) {
		return
	}
	value := body[field]
	if value == nil {
		respondWithError(c, http.StatusBadRequest, field+" is required", nil)
		return
	}
	if err := set(c.Request.Context(), id, *value); err != nil {
		fail(c, err, "Failed to update media")
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, field: *value})
}

func (h *handler) reorderMedia(c *gin.Context) {
	var order []model.MediaSequence
	if !bindJSON(c, &order) {
		return
	}
	if err := h.Media.Reorder(c.Request.Context(), order); err != nil {
		fail(c, err, "Failed to reorder media")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Media order updated"})
}
