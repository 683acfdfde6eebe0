package web

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"

	"storefront/internal/catalog"
	"storefront/internal/models"
)

// ProductForm carries the raw submitted values so an invalid submission can
// be redisplayed exactly as entered.
type ProductForm struct {
	CategoryID  string
	Name        string
	Slug        string
	Description string
	Price       string
	Rating      string
	ImageURL    string
	HasSizes    bool
	InStock     bool
	IsActive    bool
}

func productFormFromRequest(c *gin.Context) ProductForm {
	return ProductForm{
		CategoryID:  strings.TrimSpace(c.PostForm("category_id")),
		Name:        strings.TrimSpace(c.PostForm("name")),
		Slug:        strings.TrimSpace(c.PostForm("slug")),
		Description: strings.TrimSpace(c.PostForm("description")),
		Price:       strings.TrimSpace(c.PostForm("price")),
		Rating:      strings.TrimSpace(c.PostForm("rating")),
		ImageURL:    strings.TrimSpace(c.PostForm("image_url")),
		HasSizes:    c.PostForm("has_sizes") != "",
		InStock:     c.PostForm("in_stock") != "",
		IsActive:    c.PostForm("is_active") != "",
	}
}

func productFormFromModel(p *models.Product) ProductForm {
	f := ProductForm{
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		ImageURL:    p.ImageURL,
		HasSizes:    p.HasSizes,
		InStock:     p.InStock,
		IsActive:    p.IsActive,
	}
	if p.CategoryID != nil {
		f.CategoryID = strconv.FormatUint(uint64(*p.CategoryID), 10)
	}
	if p.Rating != nil {
		f.Rating = p.Rating.StringFixed(2)
	}
	return f
}

// apply validates the form and, when everything checks out, writes the
// fields onto p. A non-empty map means validation failed; an error means the
// database did.
func (f ProductForm) apply(p *models.Product, cat *catalog.Catalog) (map[string]string, error) {
	errs := map[string]string{}

	if f.Name == "" {
		errs["Name"] = "Name is required."
	}

	sl := f.Slug
	if sl == "" {
		sl = f.Name
	}
	sl = slug.Make(sl)
	if sl == "" {
		errs["Slug"] = "Slug could not be derived, set one explicitly."
	} else {
		taken, err := cat.SlugTaken(sl, p.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			errs["Slug"] = "Another product already uses this slug."
		}
	}

	var price decimal.Decimal
	if f.Price == "" {
		errs["Price"] = "Price is required."
	} else {
		var err error
		price, err = decimal.NewFromString(strings.ReplaceAll(f.Price, ",", "."))
		if err != nil || price.IsNegative() {
			errs["Price"] = "Enter a valid non-negative price."
		}
	}

	var rating *decimal.Decimal
	if f.Rating != "" {
		r, err := decimal.NewFromString(f.Rating)
		if err != nil || r.IsNegative() || r.GreaterThan(decimal.NewFromInt(5)) {
			errs["Rating"] = "Rating must be between 0 and 5."
		} else {
			rating = &r
		}
	}

	var categoryID *uint
	if f.CategoryID != "" {
		id, err := strconv.ParseUint(f.CategoryID, 10, 32)
		if err != nil {
			errs["Category"] = "Pick a valid category."
		} else if _, err := cat.CategoryByID(uint(id)); err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				errs["Category"] = "Pick a valid category."
			} else {
				return nil, err
			}
		} else {
			v := uint(id)
			categoryID = &v
		}
	}

	if len(errs) > 0 {
		return errs, nil
	}

	p.CategoryID = categoryID
	p.Category = nil
	p.Name = f.Name
	p.Slug = sl
	p.Description = f.Description
	p.Price = price
	p.Rating = rating
	p.ImageURL = f.ImageURL
	p.HasSizes = f.HasSizes
	p.InStock = f.InStock
	p.IsActive = f.IsActive
	return nil, nil
}

// ReviewForm carries a submitted review.
type ReviewForm struct {
	Title  string
	Body   string
	Rating string
}

func reviewFormFromRequest(c *gin.Context) ReviewForm {
	return ReviewForm{
		Title:  strings.TrimSpace(c.PostForm("title")),
		Body:   strings.TrimSpace(c.PostForm("body")),
		Rating: strings.TrimSpace(c.PostForm("rating")),
	}
}

// apply validates the form and writes the fields onto r. The rating defaults
// to 3 when the field is left empty and must otherwise be 1..5.
func (f ReviewForm) apply(r *models.ProductReview) map[string]string {
	errs := map[string]string{}

	if f.Title == "" {
		errs["Title"] = "Title is required."
	}
	if f.Body == "" {
		errs["Body"] = "Review body is required."
	}

	rating := 3
	if f.Rating != "" {
		n, err := strconv.Atoi(f.Rating)
		if err != nil || n < 1 || n > 5 {
			errs["Rating"] = "Rating must be between 1 and 5."
		} else {
			rating = n
		}
	}

	if len(errs) > 0 {
		return errs
	}

	r.Title = f.Title
	r.Body = f.Body
	r.Rating = rating
	return nil
}
