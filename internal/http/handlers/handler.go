package handlers

import (
	"errors"
	"net/http"

	"studydesk/internal/http/middleware"
	"studydesk/internal/pages"
	"studydesk/internal/repository"
	"studydesk/internal/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Study         *service.StudyService
	AllowedOrigin string
	SecureCookie  bool
}

func NewHandler(study *service.StudyService, allowedOrigin string, secureCookie bool) *Handler {
	return &Handler{Study: study, AllowedOrigin: allowedOrigin, SecureCookie: secureCookie}
}

func requestMeta(c *gin.Context) service.RequestMeta {
	return service.RequestMeta{IP: c.ClientIP(), UserAgent: c.Request.UserAgent()}
}

// errorStatus maps service errors onto HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, pages.ErrUnknownPage), errors.Is(err, service.ErrPageNeedsInputs):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidToken), errors.Is(err, repository.ErrSessionNotFound):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, int(service.TokenTTL.Seconds()), "/", "", h.SecureCookie, true)
}
