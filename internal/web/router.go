package web

import (
	"html/template"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"storefront/internal/catalog"
	"storefront/internal/config"
)

// NewRouter builds the gin engine with sessions, templates, static assets
// and every route of the store.
func NewRouter(gdb *gorm.DB, log zerolog.Logger, cfg *config.Config) *gin.Engine {
	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))

	r.Static("/uploads", "./"+cfg.UploadDir)
	r.Static("/static", "./static")

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions("storefront_session", store))

	r.SetFuncMap(template.FuncMap{
		// money renders a decimal with two fractional digits; it also
		// accepts the nullable rating column.
		"money": func(v any) string {
			switch d := v.(type) {
			case decimal.Decimal:
				return d.StringFixed(2)
			case *decimal.Decimal:
				if d == nil {
					return ""
				}
				return d.StringFixed(2)
			}
			return ""
		},
		"deref": func(p *uint) uint {
			if p == nil {
				return 0
			}
			return *p
		},
	})
	r.LoadHTMLGlob(cfg.TemplateGlob)

	s := &Server{db: gdb, cat: catalog.New(gdb), log: log, cfg: cfg}

	r.GET("/", s.home)

	r.GET("/register", s.registerForm)
	r.POST("/register", s.register)
	r.GET("/login", s.loginForm)
	r.POST("/login", s.login)
	r.GET("/logout", s.logout)

	p := r.Group("/products")
	{
		p.GET("/", s.listProducts)
		p.GET("/category/:slug/", s.categoryProducts)

		su := s.mustSuperuser()
		p.GET("/add/", su, s.addProductForm)
		p.POST("/add/", su, s.addProduct)
		p.GET("/edit/:slug/", su, s.editProductForm)
		p.POST("/edit/:slug/", su, s.editProduct)
		p.GET("/delete/:slug/", su, s.deleteProductForm)
		p.POST("/delete/:slug/", su, s.deleteProduct)

		auth := s.mustLogin()
		p.POST("/review/:id/edit/", auth, s.editReview)
		p.GET("/review/:id/edit/", auth, s.editReviewForm)
		p.POST("/review/:id/delete/", auth, s.deleteReview)

		p.GET("/:slug/", s.productDetail)
		p.POST("/:slug/review/add/", auth, s.addReview)
	}

	return r
}
