package productcontroller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
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
		&models.Review{},
		&models.FAQ{},
	))
	return db
}

func seedCatalog(t *testing.T, db *gorm.DB) models.Category {
	t.Helper()
	category := models.Category{Name: "Electronics"}
	require.NoError(t, db.Create(&category).Error)

	rows := []models.Product{
		{Title: "Visible Phone", ImagePath: models.DefaultProductImage, Price: 300, Stock: 5, Status: models.ProductStatusApproved, CategoryID: category.ID},
		{Title: "Visible Laptop", ImagePath: models.DefaultProductImage, Price: 900, Stock: 2, Status: models.ProductStatusApproved, CategoryID: category.ID},
		{Title: "Hidden Draft", ImagePath: models.DefaultProductImage, Price: 10, Stock: 1, Status: models.ProductStatusPending, CategoryID: category.ID},
		{Title: "Hidden Reject", ImagePath: models.DefaultProductImage, Price: 10, Stock: 1, Status: models.ProductStatusRejected, CategoryID: category.ID},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}
	return category
}

type listResponse struct {
	Products   []models.Product `json:"products"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
	TotalItems int64            `json:"total_items"`
}

func listProducts(t *testing.T, db *gorm.DB, rawQuery string) listResponse {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/products", GetProducts(db))

	req := httptest.NewRequest(http.MethodGet, "/products"+rawQuery, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestCatalogOnlyShowsApprovedProducts(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)

	resp := listProducts(t, db, "")
	require.Equal(t, int64(2), resp.TotalItems)
	for _, p := range resp.Products {
		require.Equal(t, models.ProductStatusApproved, p.Status)
	}
}

func TestCatalogSearchIsCaseInsensitive(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)

	resp := listProducts(t, db, "?search=LAPTOP")
	require.Equal(t, int64(1), resp.TotalItems)
	require.Equal(t, "Visible Laptop", resp.Products[0].Title)

	// Pending products stay hidden even when the search matches.
	resp = listProducts(t, db, "?search=draft")
	require.Zero(t, resp.TotalItems)
}

func TestCatalogSorting(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)

	resp := listProducts(t, db, "?sort=price_asc")
	require.Len(t, resp.Products, 2)
	require.Equal(t, "Visible Phone", resp.Products[0].Title)

	resp = listProducts(t, db, "?sort=price_desc")
	require.Equal(t, "Visible Laptop", resp.Products[0].Title)
}

func TestCatalogPagination(t *testing.T) {
	db := openTestDB(t)
	category := models.Category{Name: "Books"}
	require.NoError(t, db.Create(&category).Error)
	for i := 0; i < pageSize+3; i++ {
		require.NoError(t, db.Create(&models.Product{
			Title:      "Book",
			ImagePath:  models.DefaultProductImage,
			Price:      10,
			Stock:      1,
			Status:     models.ProductStatusApproved,
			CategoryID: category.ID,
		}).Error)
	}

	resp := listProducts(t, db, "")
	require.Len(t, resp.Products, pageSize)
	require.Equal(t, 2, resp.TotalPages)
	require.Equal(t, int64(pageSize+3), resp.TotalItems)

	resp = listProducts(t, db, "?page=2")
	require.Len(t, resp.Products, 3)
	require.Equal(t, 2, resp.Page)
}
