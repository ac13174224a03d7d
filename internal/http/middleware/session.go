package middleware

import (
	"net/http"
	"strings"

	"studydesk/internal/repository"

	"github.com/gin-gonic/gin"
)

// SessionCookie carries the signed session token for the HTML flow.
const SessionCookie = "studydesk_session"

const sessionKey = "session"

// SessionResolver maps a token to a live session.
type SessionResolver interface {
	Resolve(token string) (*repository.Session, error)
}

// TokenFromRequest looks for the session token in the Authorization header,
// then the session cookie, then the "token" query parameter.
func TokenFromRequest(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if v, err := c.Cookie(SessionCookie); err == nil && v != "" {
		return v
	}
	return c.Query("token")
}

// Session attaches the caller's session to the context when the token is
// valid. It never aborts.
func Session(r SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := TokenFromRequest(c); token != "" {
			if sess, err := r.Resolve(token); err == nil {
				c.Set(sessionKey, sess)
			}
		}
		c.Next()
	}
}

// RequireSession aborts with 401 unless Session attached a session.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetSession(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session required"})
			return
		}
		c.Next()
	}
}

func GetSession(c *gin.Context) (*repository.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*repository.Session)
	return sess, ok
}
