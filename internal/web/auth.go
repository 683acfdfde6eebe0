package web

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"storefront/internal/models"
)

func (s *Server) registerForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.tmpl", s.view(c, nil))
}

func (s *Server) register(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	email := strings.TrimSpace(c.PostForm("email"))
	pw := c.PostForm("password")
	if username == "" || email == "" || pw == "" {
		c.HTML(http.StatusBadRequest, "register.tmpl", s.view(c, ViewData{"Error": "Fill all fields"}))
		return
	}

	var cnt int64
	if err := s.db.Model(&models.User{}).Where("username = ?", username).Count(&cnt).Error; err != nil {
		s.serverError(c, err)
		return
	}
	if cnt > 0 {
		c.HTML(http.StatusBadRequest, "register.tmpl", s.view(c, ViewData{"Error": "Username taken"}))
		return
	}
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&cnt).Error; err != nil {
		s.serverError(c, err)
		return
	}
	if cnt > 0 {
		c.HTML(http.StatusBadRequest, "register.tmpl", s.view(c, ViewData{"Error": "Email already registered"}))
		return
	}

	hash, err := models.HashPassword(pw)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "register.tmpl", s.view(c, ViewData{"Error": err.Error()}))
		return
	}
	u := models.User{Username: username, Email: email, PasswordHash: hash}
	if err := s.db.Create(&u).Error; err != nil {
		s.log.Error().Err(err).Msg("register user")
		c.HTML(http.StatusInternalServerError, "register.tmpl", s.view(c, ViewData{"Error": "Could not create the account"}))
		return
	}

	s.signIn(c, &u)
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) loginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", s.view(c, nil))
}

func (s *Server) login(c *gin.Context) {
	ident := strings.TrimSpace(c.PostForm("username"))
	pw := c.PostForm("password")
	if ident == "" || pw == "" {
		c.HTML(http.StatusBadRequest, "login.tmpl", s.view(c, ViewData{"Error": "Fill all fields"}))
		return
	}

	q := s.db
	if strings.Contains(ident, "@") {
		q = q.Where("email = ?", ident)
	} else {
		q = q.Where("username = ?", ident)
	}
	var u models.User
	if err := q.First(&u).Error; err != nil {
		c.HTML(http.StatusUnauthorized, "login.tmpl", s.view(c, ViewData{"Error": "User not found"}))
		return
	}
	if !models.CheckPassword(u.PasswordHash, pw) {
		c.HTML(http.StatusUnauthorized, "login.tmpl", s.view(c, ViewData{"Error": "Wrong password"}))
		return
	}

	s.signIn(c, &u)
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) signIn(c *gin.Context, u *models.User) {
	sess := sessions.Default(c)
	sess.Set(userIDKey, u.ID)
	_ = sess.Save()
}
