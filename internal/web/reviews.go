package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/catalog"
	"storefront/internal/models"
)

func (s *Server) addReview(c *gin.Context) {
	p, err := s.cat.ActiveProductBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.notFound(c)
			return
		}
		s.serverError(c, err)
		return
	}
	detailURL := "/products/" + p.Slug + "/"

	form := reviewFormFromRequest(c)
	review := models.ProductReview{ProductID: &p.ID}
	if u := s.currentUser(c); u != nil {
		review.UserID = &u.ID
	}
	if fieldErrs := form.apply(&review); fieldErrs != nil {
		for _, msg := range fieldErrs {
			flash(c, "error", msg)
		}
		c.Redirect(http.StatusSeeOther, detailURL)
		return
	}

	if err := s.cat.CreateReview(&review); err != nil {
		s.serverError(c, err)
		return
	}
	flash(c, "success", "Thanks for your review!")
	c.Redirect(http.StatusSeeOther, detailURL)
}

// loadOwnReview resolves the review from the URL and enforces that the
// signed-in user wrote it (store owners may touch any review). A nil return
// means a response was already written.
func (s *Server) loadOwnReview(c *gin.Context) *models.ProductReview {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		s.notFound(c)
		return nil
	}
	review, err := s.cat.ReviewByID(uint(id))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.notFound(c)
			return nil
		}
		s.serverError(c, err)
		return nil
	}

	u := s.currentUser(c)
	owns := review.UserID != nil && u != nil && *review.UserID == u.ID
	if !owns && (u == nil || !u.Superuser) {
		flash(c, "error", "You can only change your own reviews.")
		c.Redirect(http.StatusSeeOther, "/")
		return nil
	}
	return review
}

func reviewReturnURL(r *models.ProductReview) string {
	if r.Product != nil {
		return "/products/" + r.Product.Slug + "/"
	}
	return "/products/"
}

func (s *Server) editReviewForm(c *gin.Context) {
	review := s.loadOwnReview(c)
	if review == nil {
		return
	}
	c.HTML(http.StatusOK, "review_form.tmpl", s.view(c, ViewData{
		"Review": review,
		"Form": ReviewForm{
			Title:  review.Title,
			Body:   review.Body,
			Rating: strconv.Itoa(review.Rating),
		},
		"Errors": map[string]string{},
	}))
}

func (s *Server) editReview(c *gin.Context) {
	review := s.loadOwnReview(c)
	if review == nil {
		return
	}

	form := reviewFormFromRequest(c)
	if fieldErrs := form.apply(review); fieldErrs != nil {
		c.HTML(http.StatusBadRequest, "review_form.tmpl", s.view(c, ViewData{
			"Review": review, "Form": form, "Errors": fieldErrs,
		}))
		return
	}

	if err := s.cat.UpdateReview(review); err != nil {
		s.serverError(c, err)
		return
	}
	flash(c, "success", "Review updated.")
	c.Redirect(http.StatusSeeOther, reviewReturnURL(review))
}

func (s *Server) deleteReview(c *gin.Context) {
	review := s.loadOwnReview(c)
	if review == nil {
		return
	}
	if err := s.cat.DeleteReview(review); err != nil {
		s.serverError(c, err)
		return
	}
	flash(c, "success", "Review deleted.")
	c.Redirect(http.StatusSeeOther, reviewReturnURL(review))
}
