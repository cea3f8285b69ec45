package service

import (
	"testing"

	"github.com/zzirit/zzirit-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.ItemType{},
		&models.Brand{},
		&models.Item{},
		&models.TimeDeal{},
		&models.TimeDealItem{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Member{},
		&models.Admin{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

// createTestItem 连带创建类型与品牌，名称需在同进程内保持唯一。
func createTestItem(t *testing.T, db *gorm.DB, name string, price int64, stock int) *models.Item {
	t.Helper()

	itemType := models.ItemType{Name: name + " 类型"}
	if err := db.Create(&itemType).Error; err != nil {
		t.Fatalf("create item type failed: %v", err)
	}
	brand := models.Brand{Name: name + " 品牌", TypeID: itemType.ID}
	if err := db.Create(&brand).Error; err != nil {
		t.Fatalf("create brand failed: %v", err)
	}
	item := models.Item{
		Name:          name,
		TypeID:        itemType.ID,
		BrandID:       brand.ID,
		Price:         models.NewMoneyFromInt(price),
		StockQuantity: stock,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("create item failed: %v", err)
	}
	return &item
}
