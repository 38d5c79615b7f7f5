package collaboratorcontroller

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/staicu8/OnlineShop/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.FAQ{},
	))
	return db
}

// testRouter wires the products routes with a stubbed authenticated user.
func testRouter(db *gorm.DB, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	r.POST("/collaborator/products", CreateProduct(db))
	r.PUT("/collaborator/products/:id", UpdateProduct(db))
	r.DELETE("/collaborator/products/:id", DeleteProduct(db))
	return r
}

func productFormBody(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func seedCategory(t *testing.T, db *gorm.DB) models.Category {
	t.Helper()
	category := models.Category{Name: "Home & Garden"}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func TestCreateProductStartsPending(t *testing.T) {
	db := openTestDB(t)
	category := seedCategory(t, db)
	r := testRouter(db, "collab1")

	body, contentType := productFormBody(t, map[string]string{
		"title":       "Garden Hose",
		"description": "20m hose",
		"price":       "29.99",
		"stock":       "12",
		"category_id": strconv.Itoa(int(category.ID)),
	})
	req := httptest.NewRequest(http.MethodPost, "/collaborator/products", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var product models.Product
	require.NoError(t, db.First(&product, "title = ?", "Garden Hose").Error)
	require.Equal(t, models.ProductStatusPending, product.Status)
	require.Equal(t, "collab1", product.CreatedByUserID)
	require.Equal(t, models.DefaultProductImage, product.ImagePath)
}

func TestUpdateSendsProductBackToReview(t *testing.T) {
	db := openTestDB(t)
	category := seedCategory(t, db)
	product := models.Product{
		Title:           "Garden Hose",
		Description:     "20m hose",
		ImagePath:       models.DefaultProductImage,
		Price:           29.99,
		Stock:           12,
		Status:          models.ProductStatusApproved,
		CategoryID:      category.ID,
		CreatedByUserID: "collab1",
	}
	require.NoError(t, db.Create(&product).Error)
	r := testRouter(db, "collab1")

	body, contentType := productFormBody(t, map[string]string{
		"title":       "Garden Hose XL",
		"description": "30m hose",
		"price":       "39.99",
		"stock":       "8",
		"category_id": strconv.Itoa(int(category.ID)),
	})
	req := httptest.NewRequest(http.MethodPut, "/collaborator/products/"+strconv.Itoa(int(product.ID)), body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Product
	require.NoError(t, db.First(&got, product.ID).Error)
	require.Equal(t, "Garden Hose XL", got.Title)
	require.Equal(t, models.ProductStatusPending, got.Status)
	require.Empty(t, got.RejectionReason)
}

func TestUpdateForeignProductForbidden(t *testing.T) {
	db := openTestDB(t)
	category := seedCategory(t, db)
	product := models.Product{
		Title:           "Garden Hose",
		Description:     "20m hose",
		ImagePath:       models.DefaultProductImage,
		Price:           29.99,
		Stock:           12,
		Status:          models.ProductStatusApproved,
		CategoryID:      category.ID,
		CreatedByUserID: "collab1",
	}
	require.NoError(t, db.Create(&product).Error)
	r := testRouter(db, "someone-else")

	body, contentType := productFormBody(t, map[string]string{
		"title":       "Hijacked",
		"description": "x",
		"price":       "1",
		"category_id": strconv.Itoa(int(category.ID)),
	})
	req := httptest.NewRequest(http.MethodPut, "/collaborator/products/"+strconv.Itoa(int(product.ID)), body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)

	var got models.Product
	require.NoError(t, db.First(&got, product.ID).Error)
	require.Equal(t, "Garden Hose", got.Title)
	require.Equal(t, models.ProductStatusApproved, got.Status)
}

func TestMissingProductIsNotFoundNotForbidden(t *testing.T) {
	db := openTestDB(t)
	category := seedCategory(t, db)
	r := testRouter(db, "collab1")

	body, contentType := productFormBody(t, map[string]string{
		"title":       "Ghost",
		"description": "x",
		"price":       "1",
		"category_id": strconv.Itoa(int(category.ID)),
	})
	req := httptest.NewRequest(http.MethodPut, "/collaborator/products/424242", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/collaborator/products/424242", nil)
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteForeignProductForbidden(t *testing.T) {
	db := openTestDB(t)
	category := seedCategory(t, db)
	product := models.Product{
		Title:           "Garden Hose",
		Description:     "20m hose",
		ImagePath:       models.DefaultProductImage,
		Price:           29.99,
		Stock:           12,
		Status:          models.ProductStatusApproved,
		CategoryID:      category.ID,
		CreatedByUserID: "collab1",
	}
	require.NoError(t, db.Create(&product).Error)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/collaborator/products/"+strconv.Itoa(int(product.ID)), nil)
	testRouter(db, "someone-else").ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/collaborator/products/"+strconv.Itoa(int(product.ID)), nil)
	testRouter(db, "collab1").ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}
