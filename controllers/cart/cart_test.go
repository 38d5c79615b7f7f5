package cartcontroller

import (
	"errors"
	"testing"

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
		&models.CartItem{},
	))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, status models.ProductStatus, stock int) models.Product {
	t.Helper()
	category := models.Category{Name: "Fashion"}
	require.NoError(t, db.FirstOrCreate(&category, models.Category{Name: "Fashion"}).Error)
	product := models.Product{
		Title:      "T-Shirt",
		ImagePath:  models.DefaultProductImage,
		Price:      15,
		Stock:      stock,
		Status:     status,
		CategoryID: category.ID,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func cartQuantity(t *testing.T, db *gorm.DB, userID string, productID uint) int {
	t.Helper()
	var item models.CartItem
	err := db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0
	}
	require.NoError(t, err)
	return item.Quantity
}

func TestAddItemMergesQuantities(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, models.ProductStatusApproved, 10)

	require.NoError(t, AddItem(db, "u1", product.ID, 2))
	require.NoError(t, AddItem(db, "u1", product.ID, 3))

	require.Equal(t, 5, cartQuantity(t, db, "u1", product.ID))

	// Still a single row for the pair.
	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestAddItemRejectsUnapprovedProduct(t *testing.T) {
	db := openTestDB(t)
	pending := seedProduct(t, db, models.ProductStatusPending, 10)

	err := AddItem(db, "u1", pending.ID, 1)
	require.True(t, errors.Is(err, ErrProductNotAvailable))
	require.True(t, errors.Is(AddItem(db, "u1", 9999, 1), ErrProductNotAvailable))
}

func TestAddItemCannotExceedStock(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, models.ProductStatusApproved, 4)

	require.True(t, errors.Is(AddItem(db, "u1", product.ID, 5), ErrStockExceeded))
	require.Equal(t, 0, cartQuantity(t, db, "u1", product.ID))

	// Merging past the stock ceiling fails and leaves the line untouched.
	require.NoError(t, AddItem(db, "u1", product.ID, 3))
	require.True(t, errors.Is(AddItem(db, "u1", product.ID, 2), ErrStockExceeded))
	require.Equal(t, 3, cartQuantity(t, db, "u1", product.ID))
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, models.ProductStatusApproved, 10)
	require.NoError(t, AddItem(db, "u1", product.ID, 2))

	require.NoError(t, SetQuantity(db, "u1", product.ID, 0))
	require.Equal(t, 0, cartQuantity(t, db, "u1", product.ID))
}

func TestSetQuantityBoundedByStock(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, models.ProductStatusApproved, 5)
	require.NoError(t, AddItem(db, "u1", product.ID, 2))

	require.True(t, errors.Is(SetQuantity(db, "u1", product.ID, 6), ErrStockExceeded))
	require.Equal(t, 2, cartQuantity(t, db, "u1", product.ID))

	require.NoError(t, SetQuantity(db, "u1", product.ID, 5))
	require.Equal(t, 5, cartQuantity(t, db, "u1", product.ID))
}

func TestSetQuantityMissingLine(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, models.ProductStatusApproved, 5)

	err := SetQuantity(db, "u1", product.ID, 1)
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, models.ProductStatusApproved, 10)

	require.NoError(t, AddItem(db, "u1", product.ID, 2))
	require.NoError(t, AddItem(db, "u2", product.ID, 7))

	require.Equal(t, 2, cartQuantity(t, db, "u1", product.ID))
	require.Equal(t, 7, cartQuantity(t, db, "u2", product.ID))
}
