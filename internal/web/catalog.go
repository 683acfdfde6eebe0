package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/catalog"
)

func (s *Server) home(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/products/")
}

// listProducts composes the optional query-string dimensions (sort,
// direction, category, q) into one listing.
func (s *Server) listProducts(c *gin.Context) {
	query := c.Request.URL.Query()

	params := catalog.ListParams{
		Sort:      query.Get("sort"),
		Direction: query.Get("direction"),
	}

	if raw := query.Get("category"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				params.Categories = append(params.Categories, name)
			}
		}
	}

	if query.Has("q") {
		term := strings.TrimSpace(query.Get("q"))
		if term == "" {
			flash(c, "error", "You didn't enter any search criteria!")
			c.Redirect(http.StatusSeeOther, "/products/")
			return
		}
		params.Search = term
	}

	items, err := s.cat.Products(params)
	if err != nil {
		s.serverError(c, err)
		return
	}

	c.HTML(http.StatusOK, "products.tmpl", s.view(c, ViewData{
		"Products":           items,
		"Search":             params.Search,
		"CurrentSort":        params.Sort,
		"CurrentDirection":   params.Direction,
		"SelectedCategories": params.Categories,
	}))
}

func (s *Server) productDetail(c *gin.Context) {
	p, err := s.cat.ActiveProductBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.notFound(c)
			return
		}
		s.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "product_detail.tmpl", s.view(c, ViewData{"Product": p}))
}

func (s *Server) categoryProducts(c *gin.Context) {
	cat, err := s.cat.CategoryBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.notFound(c)
			return
		}
		s.serverError(c, err)
		return
	}

	items, err := s.cat.Products(catalog.ListParams{Categories: []string{cat.Name}})
	if err != nil {
		s.serverError(c, err)
		return
	}

	c.HTML(http.StatusOK, "products.tmpl", s.view(c, ViewData{
		"Products":        items,
		"CurrentCategory": cat,
		"Search":          "",
	}))
}

func (s *Server) notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found.tmpl", s.view(c, nil))
}

func (s *Server) serverError(c *gin.Context, err error) {
	s.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("handler failed")
	c.HTML(http.StatusInternalServerError, "error.tmpl", s.view(c, nil))
}
