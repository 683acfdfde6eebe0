package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/catalog"
	"storefront/internal/models"
)

func (s *Server) addProductForm(c *gin.Context) {
	c.HTML(http.StatusOK, "product_form.tmpl", s.view(c, ViewData{
		"Mode":   "create",
		"Form":   ProductForm{InStock: true, IsActive: true},
		"Errors": map[string]string{},
	}))
}

func (s *Server) addProduct(c *gin.Context) {
	form := productFormFromRequest(c)

	var p models.Product
	fieldErrs, err := form.apply(&p, s.cat)
	if err != nil {
		s.serverError(c, err)
		return
	}
	if fieldErrs != nil {
		c.HTML(http.StatusBadRequest, "product_form.tmpl", s.view(c, ViewData{
			"Mode": "create", "Form": form, "Errors": fieldErrs,
		}))
		return
	}

	imgPath, imgErr := saveUploadedImage(c, "image", s.cfg.UploadDir)
	if imgErr != nil {
		c.HTML(http.StatusBadRequest, "product_form.tmpl", s.view(c, ViewData{
			"Mode": "create", "Form": form,
			"Errors": map[string]string{"Image": imgErr.Error()},
		}))
		return
	}
	p.ImagePath = imgPath

	if err := s.cat.CreateProduct(&p); err != nil {
		s.serverError(c, err)
		return
	}
	flash(c, "success", "Successfully added "+p.Name+"!")
	c.Redirect(http.StatusSeeOther, "/products/"+p.Slug+"/")
}

func (s *Server) editProductForm(c *gin.Context) {
	p, err := s.cat.ProductBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.notFound(c)
			return
		}
		s.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "product_form.tmpl", s.view(c, ViewData{
		"Mode": "edit", "Item": p, "Form": productFormFromModel(p),
		"Errors": map[string]string{},
	}))
}

func (s *Server) editProduct(c *gin.Context) {
	p, err := s.cat.ProductBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.notFound(c)
			return
		}
		s.serverError(c, err)
		return
	}

	form := productFormFromRequest(c)
	fieldErrs, err := form.apply(p, s.cat)
	if err != nil {
		s.serverError(c, err)
		return
	}
	if fieldErrs != nil {
		c.HTML(http.StatusBadRequest, "product_form.tmpl", s.view(c, ViewData{
			"Mode": "edit", "Item": p, "Form": form, "Errors": fieldErrs,
		}))
		return
	}

	// optional replacement image
	imgPath, imgErr := saveUploadedImage(c, "image", s.cfg.UploadDir)
	if imgErr != nil {
		c.HTML(http.StatusBadRequest, "product_form.tmpl", s.view(c, ViewData{
			"Mode": "edit", "Item": p, "Form": form,
			"Errors": map[string]string{"Image": imgErr.Error()},
		}))
		return
	}
	if imgPath != "" {
		p.ImagePath = imgPath
	}

	if err := s.cat.UpdateProduct(p); err != nil {
		s.serverError(c, err)
		return
	}
	flash(c, "success", "Successfully updated "+p.Name+"!")
	c.Redirect(http.StatusSeeOther, "/products/"+p.Slug+"/")
}

func (s *Server) deleteProductForm(c *gin.Context) {
	p, err := s.cat.ProductBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.notFound(c)
			return
		}
		s.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "product_confirm_delete.tmpl", s.view(c, ViewData{"Item": p}))
}

func (s *Server) deleteProduct(c *gin.Context) {
	p, err := s.cat.ProductBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.notFound(c)
			return
		}
		s.serverError(c, err)
		return
	}
	if err := s.cat.DeleteProduct(p); err != nil {
		s.serverError(c, err)
		return
	}
	flash(c, "success", "Product deleted!")
	c.Redirect(http.StatusSeeOther, "/products/")
}
