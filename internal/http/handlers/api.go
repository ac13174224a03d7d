package handlers

import (
	"net/http"

	"studydesk/internal/domain"
	"studydesk/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// CreateSession starts a session for API clients and returns its bearer token.
func (h *Handler) CreateSession(c *gin.Context) {
	sess, token, page, err := h.Study.StartSession(c.Request.Context(), requestMeta(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"session_id": sess.ID,
		"page":       page,
	})
}

type dispatchRequest struct {
	Target domain.PageID     `json:"target" binding:"required"`
	Inputs map[string]string `json:"inputs"`
}

// DispatchJSON is the JSON counterpart of the form dispatch.
func (h *Handler) DispatchJSON(c *gin.Context) {
	sess, _ := middleware.GetSession(c)

	var req dispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	page, err := h.Study.Dispatch(c.Request.Context(), sess, req.Target, req.Inputs, requestMeta(c))
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetPage renders a page that takes no inputs.
func (h *Handler) GetPage(c *gin.Context) {
	sess, _ := middleware.GetSession(c)

	page, err := h.Study.Render(c.Request.Context(), sess, domain.PageID(c.Param("id")))
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) ListTasks(c *gin.Context) {
	tasks := h.Study.ListTasks()
	c.JSON(http.StatusOK, gin.H{"header": domain.TaskHeader, "tasks": tasks})
}

// Graph returns the navigation graph as nodes and edges.
func (h *Handler) Graph(c *gin.Context) {
	g := h.Study.Graph()
	c.JSON(http.StatusOK, gin.H{
		"entry": g.Entry,
		"nodes": g.Nodes(),
		"edges": g.Edges(),
	})
}
