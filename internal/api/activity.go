package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dealership-backoffice/internal/activity"
	"dealership-backoffice/internal/domain/model"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"
)

const wsWriteTimeout = 5 * time.Second

func (h *handler) activityRoutes(r *gin.Engine, v1 *gin.RouterGroup) {
	if h.Journal != nil {
		v1.GET("/activity", h.listActivity)
	}
	if h.Hub != nil {
		v1.GET("/notifications/recent", h.recentNotifications)
		r.GET("/ws/notifications", h.streamNotifications)
	}
}

func (h *handler) listActivity(c *gin.Context) {
	entityID, ok := queryInt64(c, "entity_id")
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}
	entries, err := h.Journal.Recent(c.Request.Context(), activity.Query{
		Entity:   strings.TrimSpace(c.Query("entity")),
		EntityID: entityID,
		Level:    model.NotificationLevel(strings.TrimSpace(c.Query("level"))),
		Limit:    limit,
	})
	if err != nil {
		fail(c, err, "Failed to load activity")
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *handler) recentNotifications(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.Hub.Recent(limit))
}

// streamNotifications pushes every hub notification to the socket as JSON
// until the client goes away.
func (h *handler) streamNotifications(c *gin.Context) {
	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		OriginPatterns: originPatterns(h.CorsOrigins),
	})
	if err != nil {
		h.Logger.LogError("ws: accept", err)
		return
	}
	defer conn.CloseNow()

	ctx := conn.CloseRead(c.Request.Context())
	events, cancel := h.Hub.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-events:
			if !ok {
				conn.Close(websocket.StatusGoingAway, "server shutting down")
				return
			}
			writeCtx, done := context.WithTimeout(ctx, wsWriteTimeout)
			err := wsjson.Write(writeCtx, conn, n)
			done()
			if err != nil {
				if websocket.CloseStatus(err) == -1 {
					h.Logger.LogWarning("ws: write notification: " + err.Error())
				}
				return
			}
		}
	}
}

// originPatterns turns CORS origins into the host patterns the websocket
// handshake checks against.
func originPatterns(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	patterns := make([]string, 0, len(origins))
	for _, o := range origins {
		if o == "*" {
			return []string{"*"}
		}
		if u, err := url.Parse(o); err == nil && u.Host != "" {
			patterns = append(patterns, u.Host)
			continue
		}
		patterns = append(patterns, o)
	}
	return patterns
}
