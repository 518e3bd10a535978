package api

import (
	"net/http"

	"dealership-backoffice/internal/domain/model"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type carPreview struct {
	Name         string            `json:"name"`
	Completion   int               `json:"completion"`
	Valid        bool              `json:"valid"`
	PriceWithVAT decimal.Decimal   `json:"price_with_vat"`
	Data         model.CarData     `json:"data"`
	Errors       map[string]string `json:"errors"`
}

func (h *handler) carRoutes(r *gin.RouterGroup) {
	g := r.Group("/cars")
	g.GET("", h.listCars)
	g.POST("", h.createCar)
	g.POST("/preview", h.previewCar)
	g.GET("/:id", h.getCar)
	g.PATCH("/:id", h.updateCar)
	g.DELETE("/:id", h.deleteCar)
}

func (h *handler) listCars(c *gin.Context) {
	brandID, ok := queryInt64(c, "brand_id")
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
	cars, err := h.Cars.List(c.Request.Context(), model.CarFilter{
		IncludeInactive: queryBool(c, "include_inactive"),
		BrandID:         brandID,
		Limit:           limit,
		Offset:          offset,
	})
	if err != nil {
		fail(c, err, "Failed to load cars")
		return
	}
	c.JSON(http.StatusOK, cars)
}

func (h *handler) getCar(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	car, err := h.Cars.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Failed to load car")
		return
	}
	c.JSON(http.StatusOK, car)
}

func (h *handler) createCar(c *gin.Context) {
	var patch model.CarPatch
	if !bindJSON(c, &patch) {
		return
	}
	form := h.Cars.New()
	form.UpdateData(patch)
	writeResult(c, form.Save(c.Request.Context()), true)
}

func (h *handler) updateCar(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var patch model.CarPatch
	if !bindJSON(c, &patch) {
		return
	}
	form, err := h.Cars.Open(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Failed to load car")
		return
	}
	form.UpdateData(patch)
	writeResult(c, form.Save(c.Request.Context()), false)
}

// previewCar runs the form logic without saving: cascade, validation,
// completion, VAT price and the generated name.
func (h *handler) previewCar(c *gin.Context) {
	var patch model.CarPatch
	if !bindJSON(c, &patch) {
		return
	}
	form := h.Cars.New()
	form.UpdateData(patch)
	c.JSON(http.StatusOK, carPreview{
		Name:         form.NamePreview(c.Request.Context()),
		Completion:   form.CompletionPercentage(),
		Valid:        form.IsValid(),
		PriceWithVAT: form.PriceWithVAT(),
		Data:         form.Data(),
		Errors:       form.Errors(),
	})
}

func (h *handler) deleteCar(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Cars.Delete(c.Request.Context(), id, confirmation(c)); err != nil {
		fail(c, err, "Failed to delete car")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Car deleted successfully"})
}
