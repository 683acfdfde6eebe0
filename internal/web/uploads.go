package web

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// saveUploadedImage stores an optional image from the form field into the
// upload directory and returns its public path. A missing file is not an
// error, an unsupported extension is.
func saveUploadedImage(c *gin.Context, field, dir string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".webp" {
		return "", fmt.Errorf("unsupported image format")
	}
	_ = os.MkdirAll(dir, 0o755)
	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}
