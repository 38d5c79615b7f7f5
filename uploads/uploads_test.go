package uploads

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/staicu8/OnlineShop/models"
)

func testContext(t *testing.T, req *http.Request) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	return c
}

func multipartImageRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/products", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestSaveProductImageDefaultsWhenNoFile(t *testing.T) {
	c := testContext(t, httptest.NewRequest(http.MethodPost, "/products", nil))

	path, err := SaveProductImage(c, "image")
	require.NoError(t, err)
	require.Equal(t, models.DefaultProductImage, path)
}

func TestSaveProductImageRejectsBadExtension(t *testing.T) {
	for _, filename := range []string{"payload.exe", "notes.txt", "archive.png.zip", "noext"} {
		c := testContext(t, multipartImageRequest(t, "image", filename, []byte("data")))

		_, err := SaveProductImage(c, "image")
		require.True(t, errors.Is(err, ErrInvalidImageType), "filename %q", filename)
	}
}

func TestStoreImageRejectsOversizedFile(t *testing.T) {
	file := &multipart.FileHeader{Filename: "big.jpg", Size: maxImageSize + 1}

	_, err := storeImage(nil, file)
	require.True(t, errors.Is(err, ErrImageTooLarge))
}

func TestSaveProductImageWritesUniqueFile(t *testing.T) {
	t.Setenv("UPLOADS_DIR", t.TempDir())
	c := testContext(t, multipartImageRequest(t, "image", "photo.PNG", []byte("fake png bytes")))

	path, err := SaveProductImage(c, "image")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(path, "/uploads/products/"))
	require.True(t, strings.HasSuffix(path, ".png"))

	saved := filepath.Join(BaseDir(), "products", filepath.Base(path))
	data, err := os.ReadFile(saved)
	require.NoError(t, err)
	require.Equal(t, []byte("fake png bytes"), data)
}
