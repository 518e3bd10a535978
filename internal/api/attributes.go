package api

import (
	"context"
	"net/http"

	"dealership-backoffice/internal/app/usecases"
	"dealership-backoffice/internal/domain/model"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func (h *handler) attributeRoutes(r *gin.RouterGroup) {
	g := r.Group("/attributes")
	g.GET("", h.listAttributes)
	g.GET("/statistics", h.attributeStatistics)
	g.GET("/palette", h.palette)
	g.POST("", h.createAttribute)
	g.GET("/:id", h.getAttribute)
	g.PATCH("/:id", h.updateAttribute)
	g.DELETE("/:id", h.deleteAttribute)
	g.POST("/:id/duplicate", h.duplicateAttribute)
	g.POST("/:id/toggle-key", h.toggleKeyAttribute)
	g.POST("/:id/toggle-filterable", h.toggleFilterable)
	g.PUT("/:id/category", h.assignCategory)

	g.GET("/:id/values", h.listValues)
	g.POST("/:id/values", h.addValue)
	g.PATCH("/:id/values/:valueId", h.updateValue)
	g.PUT("/:id/values/:valueId/price", h.updateValuePrice)
	g.PUT("/:id/values/:valueId/custom", h.setValueCustom)
	g.DELETE("/:id/values/:valueId", h.removeValue)
}

func (h *handler) listAttributes(c *gin.Context) {
	filter := model.AttributeFilter{
		OnlyFilterable:  queryBool(c, "filterable"),
		OnlyKey:         queryBool(c, "key"),
		OnlyWebsiteSpec: queryBool(c, "website_spec"),
	}
	attrs, err := h.Attributes.List(c.Request.Context(), filter)
	if err != nil {
		fail(c, err, "Failed to load attributes")
		return
	}
	c.JSON(http.StatusOK, attrs)
}

func (h *handler) attributeStatistics(c *gin.Context) {
	stats, err := h.Attributes.Statistics(c.Request.Context())
	if err != nil {
		fail(c, err, "Failed to load attributes")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *handler) palette(c *gin.Context) {
	c.JSON(http.StatusOK, usecases.PredefinedColors)
}

func (h *handler) getAttribute(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	attr, err := h.Attributes.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Failed to load attribute")
		return
	}
	c.JSON(http.StatusOK, attr)
}

func (h *handler) createAttribute(c *gin.Context) {
	var draft model.AttributeDraft
	if !bindJSON(c, &draft) {
		return
	}
	created, err := h.Attributes.Create(c.Request.Context(), draft)
	if err != nil {
		fail(c, err, "Failed to create attribute")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *handler) updateAttribute(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var patch model.AttributePatch
	if !bindJSON(c, &patch) {
		return
	}
	if err := h.Attributes.Update(c.Request.Context(), id, patch); err != nil {
		fail(c, err, "Failed to update attribute")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Attribute updated successfully"})
}

func (h *handler) deleteAttribute(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Attributes.Delete(c.Request.Context(), id, confirmation(c)); err != nil {
		fail(c, err, "Failed to delete attribute")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Attribute deleted successfully"})
}

func (h *handler) duplicateAttribute(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	created, err := h.Attributes.Duplicate(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Failed to duplicate attribute")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *handler) toggleKeyAttribute(c *gin.Context) {
	h.toggleAttribute(c, h.Attributes.ToggleKeyAttribute, "is_key_attribute")
}

func (h *handler) toggleFilterable(c *gin.Context) {
	h.toggleAttribute(c, h.Attributes.ToggleFilterable, "is_filterable")
}

func (h *handler) toggleAttribute(c *gin.Context, toggle func(context.Context, int64) (bool, error), field string) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	next, err := toggle(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Failed to update attribute")
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, field: next})
}

func (h *handler) assignCategory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var body struct {
		Category string `json:"category"`
	}
	if !bindJSON(c, &body) {
		return
	}
	if err := h.Attributes.AssignCategory(c.Request.Context(), id, body.Category); err != nil {
		fail(c, err, "Failed to update attribute")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Attribute updated successfully"})
}

// valueSet opens the value set of the attribute named in the path.
func (h *handler) valueSet(c *gin.Context) (*usecases.ValueSet, bool) {
	id, ok := idParam(c, "id")
	if !ok {
		return nil, false
	}
	attr, err := h.Attributes.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Failed to load attribute")
		return nil, false
	}
	return h.Attributes.Values(attr, nil), true
}

type valueView struct {
	model.AttributeValue
	Display usecases.ValueDisplay `json:"display"`
}

func (h *handler) listValues(c *gin.Context) {
	set, ok := h.valueSet(c)
	if !ok {
		return
	}
	if err := set.Load(c.Request.Context()); err != nil {
		fail(c, err, "Failed to load attribute values")
		return
	}
	locale := h.locale(c)
	values := set.Values()
	res := make([]valueView, 0, len(values))
	for _, v := range values {
		res = append(res, valueView{AttributeValue: v, Display: set.Display(v, locale)})
	}
	c.JSON(http.StatusOK, res)
}

func (h *handler) addValue(c *gin.Context) {
	set, ok := h.valueSet(c)
	if !ok {
		return
	}
	var draft model.AttributeValueDraft
	if !bindJSON(c, &draft) {
		return
	}
	created, err := set.Add(c.Request.Context(), draft)
	if err != nil {
		fail(c, err, "Failed to create attribute value")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *handler) updateValue(c *gin.Context) {
	var patch model.AttributeValuePatch
	h.withValue(c, &patch, func(set *usecases.ValueSet, valueID int64) (model.AttributeValue, error) {
		return set.Update(c.Request.Context(), valueID, patch)
	})
}

func (h *handler) updateValuePrice(c *gin.Context) {
	var body struct {
		Price decimal.Decimal `json:"price"`
	}
	h.withValue(c, &body, func(set *usecases.ValueSet, valueID int64) (model.AttributeValue, error) {
		return set.UpdatePrice(c.Request.Context(), valueID, body.Price)
	})
}

func (h *handler) setValueCustom(c *gin.Context) {
	var body struct {
		Custom bool `json:"is_custom"`
	}
	h.withValue(c, &body, func(set *usecases.ValueSet, valueID int64) (model.AttributeValue, error) {
		return set.SetCustom(c.Request.Context(), valueID, body.Custom)
	})
}

func (h *handler) withValue(c *gin.Context, body any, apply func(*usecases.ValueSet, int64) (model.AttributeValue, error)) {
	valueID, ok := idParam(c, "valueId")
	if !ok {
		return
	}
	if !bindJSON(c, body) {
		return
	}
	set, ok := h.valueSet(c)
	if !ok {
		return
	}
	updated, err := apply(set, valueID)
	if err != nil {
		fail(c, err, "Failed to update attribute value")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *handler) removeValue(c *gin.Context) {
	valueID, ok := idParam(c, "valueId")
	if !ok {
		return
	}
	set, ok := h.valueSet(c)
	if !ok {
		return
	}
	if err := set.Remove(c.Request.Context(), valueID, confirmation(c)); err != nil {
		fail(c, err, "Failed to delete attribute value")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Value deleted successfully"})
}
