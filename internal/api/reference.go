package api

import (
	"net/http"

	"dealership-backoffice/internal/app/usecases"

	"github.com/gin-gonic/gin"
)

type referenceResponse struct {
	Data   usecases.ReferenceData `json:"data"`
	Errors map[string]string      `json:"errors,omitempty"`
}

func (h *handler) referenceRoutes(r *gin.RouterGroup) {
	r.GET("/reference", h.loadReference)
}

// loadReference always answers 200; a list that failed is empty and named in
// errors.
func (h *handler) loadReference(c *gin.Context) {
	brandID, ok := queryInt64(c, "brand_id")
	if !ok {
		return
	}
	modelID, ok := queryInt64(c, "model_id")
	if !ok {
		return
	}
	scope := usecases.FullReferenceScope()
	scope.BrandID = brandID
	scope.ModelID = modelID

	data, errs := h.References.Load(c.Request.Context(), scope)
	res := referenceResponse{Data: data}
	if len(errs) > 0 {
		res.Errors = make(map[string]string, len(errs))
		for name, err := range errs {
			res.Errors[name] = err.Error()
		}
	}
	c.JSON(http.StatusOK, res)
}
