package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// mustLogin redirects anonymous visitors to the login page.
func (s *Server) mustLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.currentUser(c) == nil {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// mustSuperuser gates product mutation. Anonymous visitors go to the login
// page; signed-in users without the store-management flag get a notice and
// are sent home rather than a hard failure.
func (s *Server) mustSuperuser() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := s.currentUser(c)
		if u == nil {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		if !u.Superuser {
			flash(c, "error", "Sorry, only store owners can do that.")
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// requestLogger emits one structured event per request.
func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}
