package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"dealership-backoffice/internal/app/usecases"
	"dealership-backoffice/internal/domain/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func respondWithError(c *gin.Context, statusCode int, message string, err error) {
	body := gin.H{"message": message}
	var validation *model.ValidationError
	if errors.As(err, &validation) {
		body["errors"] = validation.Fields
	} else if err != nil {
		body["error"] = err.Error()
	}
	c.JSON(statusCode, body)
}

// fail maps a controller error onto a status code. Validation and
// confirmation problems carry their own message; anything else uses fallback.
func fail(c *gin.Context, err error, fallback string) {
	var validation *model.ValidationError
	switch {
	case errors.As(err, &validation):
		respondWithError(c, http.StatusUnprocessableEntity, validation.Error(), err)
	case errors.Is(err, model.ErrNotFound):
		respondWithError(c, http.StatusNotFound, "Record not found", err)
	case errors.Is(err, model.ErrNotConfirmed):
		respondWithError(c, http.StatusPreconditionRequired, "Confirmation required, repeat the request with confirm=true", err)
	case errors.Is(err, model.ErrSaveInProgress):
		respondWithError(c, http.StatusConflict, err.Error(), err)
	case isUpstream(err):
		respondWithError(c, http.StatusBadGateway, fallback, err)
	default:
		respondWithError(c, http.StatusInternalServerError, fallback, err)
	}
}

func isUpstream(err error) bool {
	var transport *model.TransportError
	var rejection *model.BackendRejection
	return errors.As(err, &transport) || errors.As(err, &rejection)
}

func writeResult[T any](c *gin.Context, res usecases.Result[T], created bool) {
	if res.Success {
		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		c.JSON(status, res)
		return
	}
	status := http.StatusInternalServerError
	switch {
	case model.IsValidation(res.Err):
		status = http.StatusUnprocessableEntity
	case errors.Is(res.Err, model.ErrSaveInProgress):
		status = http.StatusConflict
	case errors.Is(res.Err, model.ErrNotFound):
		status = http.StatusNotFound
	case isUpstream(res.Err):
		status = http.StatusBadGateway
	}
	c.JSON(status, res)
}

func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondWithError(c, http.StatusBadRequest, "Invalid "+name, err)
		return 0, false
	}
	return id, true
}

func queryInt64(c *gin.Context, name string) (int64, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, true
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		respondWithError(c, http.StatusBadRequest, "Invalid "+name, err)
		return 0, false
	}
	return n, true
}

func queryInt(c *gin.Context, name string) (int, bool) {
	n, ok := queryInt64(c, name)
	return int(n), ok
}

func queryBool(c *gin.Context, name string) bool {
	v, err := strconv.ParseBool(c.Query(name))
	return err == nil && v
}

// confirmation turns ?confirm=true into the controller's confirmation gate.
func confirmation(c *gin.Context) usecases.Confirmer {
	return usecases.Confirmed(queryBool(c, "confirm"))
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return false
	}
	return true
}

func (h *handler) locale(c *gin.Context) model.Locale {
	if l := strings.TrimSpace(c.Query("lang")); l != "" {
		return model.Locale(l)
	}
	return h.Locale
}
