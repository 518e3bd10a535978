// Package api exposes the back-office controllers over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"dealership-backoffice/internal/activity"
	"dealership-backoffice/internal/app/usecases"
	"dealership-backoffice/internal/config"
	"dealership-backoffice/internal/domain/model"
	"dealership-backoffice/internal/logging"
	"dealership-backoffice/internal/notify"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const (
	maxUploadMemory = 32 << 20
	shutdownTimeout = 10 * time.Second
)

// Deps are the controllers served by the router. A nil controller leaves its
// routes unregistered.
type Deps struct {
	Attributes  *usecases.AttributeController
	Categories  *usecases.CategoryController
	Templates   *usecases.TemplateController
	Cars        *usecases.CarController
	Offers      *usecases.OfferController
	Media       *usecases.MediaController
	Settings    func() *usecases.SettingsForm
	References  *usecases.ReferenceLoader
	Hub         *notify.Hub
	Journal     *activity.Journal
	Locale      model.Locale
	Logger      logging.LoggerService
	CorsOrigins []string
}

type handler struct {
	Deps
}

func NewRouter(d Deps) *gin.Engine {
	if d.Logger == nil {
		d.Logger = logging.Nop{}
	}
	d.Locale = d.Locale.OrDefault()
	h := &handler{Deps: d}

	r := gin.New()
	r.Use(gin.Recovery(), requestID())
	r.MaxMultipartMemory = maxUploadMemory

	origins := d.CorsOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", requestIDHeader},
		ExposeHeaders: []string{"Content-Length", requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api")
	if d.Attributes != nil {
		h.attributeRoutes(v1)
	}
	if d.Categories != nil {
		h.categoryRoutes(v1)
	}
	if d.Templates != nil {
		h.templateRoutes(v1)
	}
	if d.Cars != nil {
		h.carRoutes(v1)
	}
	if d.Offers != nil {
		h.offerRoutes(v1)
	}
	if d.Media != nil {
		h.mediaRoutes(v1)
	}
	if d.Settings != nil {
		h.settingsRoutes(v1)
	}
	if d.References != nil {
		h.referenceRoutes(v1)
	}
	h.activityRoutes(r, v1)

	return r
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, cfg config.HTTPConfig, router http.Handler, logger logging.LoggerService) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log("http: listening on " + cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Log("http: server stopped")
	return <-errCh
}
