package handlers

import (
	"net/http"
	"time"

	"studydesk/internal/http/middleware"
	"studydesk/internal/logger"
	"studydesk/internal/pages"
	"studydesk/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// TimerWS streams the session's countdown. Auth comes from the cookie or
// the "token" query parameter.
func (h *Handler) TimerWS(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session required"})
		return
	}

	allowedOrigin := h.AllowedOrigin
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			if allowedOrigin == "" {
				return true
			}
			return r.Header.Get("Origin") == allowedOrigin
		},
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("ws upgrade error", "error", err)
		return
	}

	client := ws.NewClient(sess.ID, conn, pages.TimeLayout)
	go client.Run(func() (time.Time, bool) {
		return h.Study.TimerEnd(sess)
	})
}
