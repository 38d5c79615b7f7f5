package admincontroller

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
		&models.UserRole{},
		&models.Category{},
		&models.Product{},
	))
	return db
}

func seedPendingProduct(t *testing.T, db *gorm.DB) models.Product {
	t.Helper()
	category := models.Category{Name: "Electronics"}
	require.NoError(t, db.Create(&category).Error)
	product := models.Product{
		Title:      "Headphones",
		ImagePath:  models.DefaultProductImage,
		Price:      79,
		Stock:      20,
		Status:     models.ProductStatusPending,
		CategoryID: category.ID,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func productStatus(t *testing.T, db *gorm.DB, id uint) models.Product {
	t.Helper()
	var product models.Product
	require.NoError(t, db.First(&product, id).Error)
	return product
}

func TestApproveProduct(t *testing.T) {
	db := openTestDB(t)
	product := seedPendingProduct(t, db)

	require.NoError(t, ApproveProduct(db, product.ID))
	got := productStatus(t, db, product.ID)
	require.Equal(t, models.ProductStatusApproved, got.Status)
	require.Empty(t, got.RejectionReason)
}

func TestRejectThenReApprove(t *testing.T) {
	db := openTestDB(t)
	product := seedPendingProduct(t, db)

	require.NoError(t, RejectProduct(db, product.ID, "blurry photos"))
	got := productStatus(t, db, product.ID)
	require.Equal(t, models.ProductStatusRejected, got.Status)
	require.Equal(t, "blurry photos", got.RejectionReason)

	// Approving after a rejection clears the stale reason.
	require.NoError(t, ApproveProduct(db, product.ID))
	got = productStatus(t, db, product.ID)
	require.Equal(t, models.ProductStatusApproved, got.Status)
	require.Empty(t, got.RejectionReason)
}

func TestModerateMissingProduct(t *testing.T) {
	db := openTestDB(t)

	require.True(t, errors.Is(ApproveProduct(db, 12345), gorm.ErrRecordNotFound))
	require.True(t, errors.Is(RejectProduct(db, 12345, "no"), gorm.ErrRecordNotFound))
}

func TestChangeUserRoleReplacesWholeSet(t *testing.T) {
	db := openTestDB(t)
	user := models.User{ID: "u1", Email: "u1@example.com"}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.UserRole{UserID: "u1", Role: models.RoleUser}).Error)
	require.NoError(t, db.Create(&models.UserRole{UserID: "u1", Role: models.RoleCollaborator}).Error)

	require.NoError(t, ChangeUserRole(db, "u1", models.RoleAdmin))

	var roles []models.UserRole
	require.NoError(t, db.Where("user_id = ?", "u1").Find(&roles).Error)
	require.Len(t, roles, 1)
	require.Equal(t, models.RoleAdmin, roles[0].Role)
}

func TestChangeUserRoleValidation(t *testing.T) {
	db := openTestDB(t)
	user := models.User{ID: "u1", Email: "u1@example.com"}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.UserRole{UserID: "u1", Role: models.RoleUser}).Error)

	require.True(t, errors.Is(ChangeUserRole(db, "u1", "Superuser"), ErrUnknownRole))
	require.True(t, errors.Is(ChangeUserRole(db, "missing", models.RoleAdmin), gorm.ErrRecordNotFound))

	// Failed attempts leave the existing role set alone.
	var roles []models.UserRole
	require.NoError(t, db.Where("user_id = ?", "u1").Find(&roles).Error)
	require.Len(t, roles, 1)
	require.Equal(t, models.RoleUser, roles[0].Role)
}

func TestDeleteProductCascadesOrderHistory(t *testing.T) {
	// Foreign keys enforced, like the production store.
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	))

	require.NoError(t, db.Create(&models.User{ID: "u1", Email: "u1@example.com"}).Error)
	product := seedPendingProduct(t, db)
	order := models.Order{
		UserID: "u1",
		Items: []models.OrderItem{
			{ProductID: product.ID, Quantity: 1, UnitPrice: product.Price},
		},
		TotalAmount: product.Price,
		Status:      models.OrderStatusPlaced,
	}
	require.NoError(t, db.Create(&order).Error)

	require.NoError(t, db.Delete(&models.Product{}, product.ID).Error)

	var itemCount int64
	require.NoError(t, db.Model(&models.OrderItem{}).
		Where("product_id = ?", product.ID).
		Count(&itemCount).Error)
	require.Zero(t, itemCount)

	// The order record itself survives its product.
	var kept models.Order
	require.NoError(t, db.First(&kept, order.ID).Error)
}

func TestCategoryNamesAreUnique(t *testing.T) {
	db := openTestDB(t)

	first, err := CreateCategory(db, "Books", "printed things")
	require.NoError(t, err)

	_, err = CreateCategory(db, "Books", "again")
	require.True(t, errors.Is(err, ErrDuplicateCategory))

	second, err := CreateCategory(db, "Music", "")
	require.NoError(t, err)

	// Renaming onto an existing name collides; renaming to itself does not.
	_, err = UpdateCategory(db, second.ID, "Books", "")
	require.True(t, errors.Is(err, ErrDuplicateCategory))

	updated, err := UpdateCategory(db, first.ID, "Books", "new description")
	require.NoError(t, err)
	require.Equal(t, "new description", updated.Description)
}
