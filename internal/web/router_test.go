package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"storefront/internal/config"
	"storefront/internal/models"
)

// newTestServer builds the full router against an in-memory SQLite database.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a single connection keeps the in-memory database and the pragma alive
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, db.AutoMigrate(models.All()...))

	cfg := &config.Config{
		Env:           "development",
		SessionSecret: "test-secret",
		UploadDir:     t.TempDir(),
		TemplateGlob:  "../views/**/*.tmpl",
	}
	return NewRouter(db, zerolog.Nop(), cfg), db
}

func createUser(t *testing.T, db *gorm.DB, username string, superuser bool) *models.User {
	t.Helper()
	hash, err := models.HashPassword("secret123")
	require.NoError(t, err)
	u := &models.User{Username: username, Email: username + "@example.com", PasswordHash: hash, Superuser: superuser}
	require.NoError(t, db.Create(u).Error)
	return u
}

// signIn performs a real login and returns the session cookie to attach to
// later requests.
func signIn(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()
	form := url.Values{"username": {username}, "password": {"secret123"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusSeeOther, w.Code)

	for _, c := range w.Result().Cookies() {
		if c.Name == "storefront_session" {
			return c.Name + "=" + c.Value
		}
	}
	t.Fatal("no session cookie after login")
	return ""
}

func get(r *gin.Engine, path, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r *gin.Engine, path, cookie string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
