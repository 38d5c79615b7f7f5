package uploads

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/staicu8/OnlineShop/models"
)

const (
	productPublicPath = "/uploads/products"
	maxImageSize      = 5 * 1024 * 1024 // 5MB
)

var (
	ErrInvalidImageType = errors.New("image must be jpg, jpeg, png or gif")
	ErrImageTooLarge    = errors.New("image must not exceed 5MB")
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// BaseDir is where uploaded files land on disk. Overridable for deployments
// that serve uploads from a mounted volume.
func BaseDir() string {
	if dir := os.Getenv("UPLOADS_DIR"); dir != "" {
		return dir
	}
	return "uploads"
}

// SaveProductImage validates and stores an uploaded product image, returning
// its public path. Returns the default image path when no file was sent.
func SaveProductImage(c *gin.Context, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		// No file uploaded
		return models.DefaultProductImage, nil
	}
	return storeImage(c, file)
}

func storeImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", ErrInvalidImageType
	}
	if file.Size > maxImageSize {
		return "", ErrImageTooLarge
	}

	saveDir := filepath.Join(BaseDir(), "products")
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %w", err)
	}

	filename := uuid.NewString() + ext
	savePath := filepath.Join(saveDir, filename)
	if err := c.SaveUploadedFile(file, savePath); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	return fmt.Sprintf("%s/%s", productPublicPath, filename), nil
}
