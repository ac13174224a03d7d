package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"studydesk/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubResolver map[string]*repository.Session

func (s stubResolver) Resolve(token string) (*repository.Session, error) {
	if sess, ok := s[token]; ok {
		return sess, nil
	}
	return nil, errors.New("invalid token")
}

func newSessionRouter(r SessionResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	e.GET("/who", Session(r), RequireSession(), func(c *gin.Context) {
		sess, _ := GetSession(c)
		c.String(http.StatusOK, sess.ID)
	})
	return e
}

func TestSessionFromBearerCookieAndQuery(t *testing.T) {
	resolver := stubResolver{"tok": {ID: "s1"}}
	e := newSessionRouter(resolver)

	bearer := httptest.NewRequest(http.MethodGet, "/who", nil)
	bearer.Header.Set("Authorization", "Bearer tok")

	cookie := httptest.NewRequest(http.MethodGet, "/who", nil)
	cookie.AddCookie(&http.Cookie{Name: SessionCookie, Value: "tok"})

	query := httptest.NewRequest(http.MethodGet, "/who?token=tok", nil)

	for name, req := range map[string]*http.Request{"bearer": bearer, "cookie": cookie, "query": query} {
		w := httptest.NewRecorder()
		e.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, name)
		assert.Equal(t, "s1", w.Body.String(), name)
	}
}

func TestRequireSessionRejectsInvalidToken(t *testing.T) {
	e := newSessionRouter(stubResolver{})

	req := httptest.NewRequest(http.MethodGet, "/who", nil)
	req.Header.Set("Authorization", "Bearer bad")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
