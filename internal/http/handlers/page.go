package handlers

import (
	"net/http"

	"studydesk/internal/domain"
	"studydesk/internal/http/middleware"
	"studydesk/internal/repository"

	"github.com/gin-gonic/gin"
)

// targetField is the form field set by the clicked button.
const targetField = "target"

// sessionOrStart returns the caller's session, starting a fresh one (and
// setting the cookie) when the request carries none.
func (h *Handler) sessionOrStart(c *gin.Context) (*repository.Session, *domain.Page, bool) {
	if sess, ok := middleware.GetSession(c); ok {
		return sess, nil, true
	}
	sess, token, page, err := h.Study.StartSession(c.Request.Context(), requestMeta(c))
	if err != nil {
		c.String(http.StatusInternalServerError, "could not start session")
		return nil, nil, false
	}
	h.setSessionCookie(c, token)
	return sess, &page, true
}

// Index renders the entry page.
func (h *Handler) Index(c *gin.Context) {
	sess, page, ok := h.sessionOrStart(c)
	if !ok {
		return
	}
	if page == nil {
		p, err := h.Study.Render(c.Request.Context(), sess, domain.PageIndex)
		if err != nil {
			c.String(errorStatus(err), err.Error())
			return
		}
		page = &p
	}
	c.HTML(http.StatusOK, "page", page)
}

// Dispatch handles a button press from a rendered page: the button's target
// page plus every named input on the form.
func (h *Handler) Dispatch(c *gin.Context) {
	sess, fresh, ok := h.sessionOrStart(c)
	if !ok {
		return
	}
	if fresh != nil {
		// the old session expired; start over at the entry page
		c.HTML(http.StatusOK, "page", fresh)
		return
	}

	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "bad form")
		return
	}
	inputs := make(map[string]string, len(c.Request.PostForm))
	for name := range c.Request.PostForm {
		inputs[name] = c.Request.PostForm.Get(name)
	}

	target := domain.PageID(c.Request.PostForm.Get(targetField))
	page, err := h.Study.Dispatch(c.Request.Context(), sess, target, inputs, requestMeta(c))
	if err != nil {
		c.String(errorStatus(err), err.Error())
		return
	}
	c.HTML(http.StatusOK, "page", page)
}
