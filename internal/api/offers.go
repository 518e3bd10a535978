package api

import (
	"net/http"
	"time"

	"dealership-backoffice/internal/domain/model"

	"github.com/gin-gonic/gin"
)

type offerView struct {
	model.Offer
	Status model.OfferStatus `json:"status"`
}

func (h *handler) offerRoutes(r *gin.RouterGroup) {
	g := r.Group("/offers")
	g.GET("", h.listOffers)
	g.GET("/expired", h.expiredOffers)
	g.POST("", h.createOffer)
	g.GET("/:id", h.getOffer)
	g.PATCH("/:id", h.updateOffer)
	g.POST("/:id/banner", h.uploadOfferBanner)
	g.DELETE("/:id/banner", h.removeOfferBanner)
	g.POST("/:id/reactivate", h.reactivateOffer)
	g.DELETE("/:id", h.deleteOffer)
	g.DELETE("/:id/permanent", h.deleteOfferPermanently)
}

func offerViews(offers []model.Offer, now time.Time) []offerView {
	res := make([]offerView, 0, len(offers))
	for _, o := range offers {
		res = append(res, offerView{Offer: o, Status: o.Status(now)})
	}
	return res
}

func (h *handler) listOffers(c *gin.Context) {
	offers, err := h.Offers.List(c.Request.Context(), queryBool(c, "include_inactive"))
	if err != nil {
		fail(c, err, "Failed to load offers")
		return
	}
	c.JSON(http.StatusOK, offerViews(offers, time.Now()))
}

func (h *handler) expiredOffers(c *gin.Context) {
	now := time.Now()
	offers, err := h.Offers.ExpiredActive(c.Request.Context(), now)
	if err != nil {
		fail(c, err, "Failed to load offers")
		return
	}
	c.JSON(http.StatusOK, offerViews(offers, now))
}

func (h *handler) getOffer(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	offer, err := h.Offers.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Failed to load offer")
		return
	}
	c.JSON(http.StatusOK, offerView{Offer: offer, Status: offer.Status(time.Now())})
}

func (h *handler) createOffer(c *gin.Context) {
	var patch model.OfferPatch
	if !bindJSON(c, &patch) {
		return
	}
	form := h.Offers.New()
	form.UpdateData(patch)
	writeResult(c, form.Save(c.Request.Context()), true)
}

func (h *handler) updateOffer(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var patch model.OfferPatch
	if !bindJSON(c, &patch) {
		return
	}
	form, err := h.Offers.Open(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Failed to load offer")
		return
	}
	form.UpdateData(patch)
	writeResult(c, form.Save(c.Request.Context()), false)
}

func (h *handler) uploadOfferBanner(c *gin.Context) {
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

	form, err := h.Offers.Open(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Failed to load offer")
		return
	}
	if err := form.SetBanner(header.Filename, file); err != nil {
		fail(c, err, "Failed to upload banner")
		return
	}
	writeResult(c, form.Save(c.Request.Context()), false)
}

func (h *handler) removeOfferBanner(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Offers.RemoveBanner(c.Request.Context(), id); err != nil {
		fail(c, err, "Failed to remove banner")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Banner removed successfully"})
}

func (h *handler) reactivateOffer(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Offers.Reactivate(c.Request.Context(), id); err != nil {
		fail(c, err, "Failed to reactivate offer")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Offer reactivated successfully"})
}

func (h *handler) deleteOffer(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Offers.Delete(c.Request.Context(), id, confirmation(c)); err != nil {
		fail(c, err, "Failed to delete offer")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Offer deactivated successfully"})
}

func (h *handler) deleteOfferPermanently(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Offers.DeletePermanently(c.Request.Context(), id, confirmation(c)); err != nil {
		fail(c, err, "Failed to delete offer")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Offer deleted permanently"})
}
