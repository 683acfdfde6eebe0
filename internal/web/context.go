package web

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/models"
)

// ViewData is the template context for a rendered page.
type ViewData map[string]any

// Flash is a one-shot notice shown on the next rendered page.
type Flash struct {
	Level   string // success, error, warning
	Message string
}

func init() {
	gob.Register(Flash{})
}

// Server holds the handler dependencies.
type Server struct {
	db  *gorm.DB
	cat *catalog.Catalog
	log zerolog.Logger
	cfg *config.Config
}

const userIDKey = "user_id"

func flash(c *gin.Context, level, message string) {
	sess := sessions.Default(c)
	sess.AddFlash(Flash{Level: level, Message: message})
	_ = sess.Save()
}

func takeFlashes(c *gin.Context) []Flash {
	sess := sessions.Default(c)
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = sess.Save() // persist the removal
	out := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			out = append(out, f)
		}
	}
	return out
}

// currentUser loads the signed-in user, if any. The lookup is cached on the
// gin context so guards and handlers share one query.
func (s *Server) currentUser(c *gin.Context) *models.User {
	if v, ok := c.Get("currentUser"); ok {
		return v.(*models.User)
	}
	sess := sessions.Default(c)
	id, ok := sess.Get(userIDKey).(uint)
	if !ok {
		return nil
	}
	var u models.User
	if err := s.db.First(&u, id).Error; err != nil {
		// stale session, drop it
		sess.Clear()
		_ = sess.Save()
		return nil
	}
	c.Set("currentUser", &u)
	return &u
}

// view decorates page data with the shared context: the signed-in user,
// pending flashes and the category list used for navigation.
func (s *Server) view(c *gin.Context, data ViewData) ViewData {
	if data == nil {
		data = ViewData{}
	}
	if u := s.currentUser(c); u != nil {
		data["User"] = u
	}
	data["Flashes"] = takeFlashes(c)
	if _, ok := data["Categories"]; !ok {
		cats, err := s.cat.Categories()
		if err != nil {
			s.log.Error().Err(err).Msg("load categories for navigation")
		}
		data["Categories"] = cats
	}
	return data
}
