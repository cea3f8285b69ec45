package service

import (
	"errors"
	"testing"
	"time"

	"github.com/zzirit/zzirit-api/internal/clock"
	"github.com/zzirit/zzirit-api/internal/models"
	"github.com/zzirit/zzirit-api/internal/repository"

	"gorm.io/gorm"
)

func newItemService(t *testing.T, db *gorm.DB, now time.Time) *ItemService {
	t.Helper()

	itemRepo := repository.NewItemRepository(db)
	taxonomyRepo := repository.NewTaxonomyRepository(db)
	dealService := NewTimeDealService(repository.NewTimeDealRepository(db), clock.NewFixed(now))
	return NewItemService(itemRepo, taxonomyRepo, dealService)
}

func TestItemCreate_Validation(t *testing.T) {
	db := newTestDB(t)
	base := time.Date(2027, 9, 1, 10, 0, 0, 0, time.UTC)
	svc := newItemService(t, db, base)

	itemType := models.ItemType{Name: "상품 검증 유형"}
	if err := db.Create(&itemType).Error; err != nil {
		t.Fatalf("create type failed: %v", err)
	}
	brand := models.Brand{Name: "상품 검증 브랜드", TypeID: itemType.ID}
	if err := db.Create(&brand).Error; err != nil {
		t.Fatalf("create brand failed: %v", err)
	}
	otherType := models.ItemType{Name: "상품 검증 다른 유형"}
	if err := db.Create(&otherType).Error; err != nil {
		t.Fatalf("create other type failed: %v", err)
	}

	valid := UpsertItemInput{
		Name:          "검증 상품",
		TypeID:        itemType.ID,
		BrandID:       brand.ID,
		Price:         models.NewMoneyFromInt(10000),
		StockQuantity: 10,
	}

	cases := []struct {
		name    string
		mutate  func(input *UpsertItemInput)
		wantErr error
	}{
		{"空名称", func(in *UpsertItemInput) { in.Name = "  " }, ErrItemNameInvalid},
		{"负价格", func(in *UpsertItemInput) { in.Price = models.NewMoneyFromInt(-1) }, ErrItemPriceInvalid},
		{"负库存", func(in *UpsertItemInput) { in.StockQuantity = -1 }, ErrItemStockInvalid},
		{"类型不存在", func(in *UpsertItemInput) { in.TypeID = 999999 }, ErrTypeNotFound},
		{"品牌不存在", func(in *UpsertItemInput) { in.BrandID = 999999 }, ErrBrandNotFound},
		{"品牌不属于该类型", func(in *UpsertItemInput) { in.TypeID = otherType.ID }, ErrBrandNotFound},
	}
	for _, tc := range cases {
		input := valid
		tc.mutate(&input)
		if _, err := svc.Create(input); !errors.Is(err, tc.wantErr) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.wantErr, err)
		}
	}

	item, err := svc.Create(valid)
	if err != nil {
		t.Fatalf("create valid item failed: %v", err)
	}
	if item.ID == 0 || item.Price.String() != "10000" {
		t.Fatalf("unexpected created item: %+v", item)
	}
}

func TestItemUpdateDelete_NotFound(t *testing.T) {
	db := newTestDB(t)
	base := time.Date(2027, 9, 2, 10, 0, 0, 0, time.UTC)
	svc := newItemService(t, db, base)

	if _, err := svc.Update(999999, UpsertItemInput{Name: "없는 상품"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}
	if err := svc.Delete(999999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on delete, got %v", err)
	}
}

func TestItemGetDetail_OverlaysOngoingDeal(t *testing.T) {
	db := newTestDB(t)
	base := time.Date(2027, 9, 3, 10, 0, 0, 0, time.UTC)
	svc := newItemService(t, db, base)
	item := createTestItem(t, db, "상세 특가 상품", 20000, 30)
	plain := createTestItem(t, db, "상세 정가 상품", 15000, 30)

	dealRepo := repository.NewTimeDealRepository(db)
	deal := &models.TimeDeal{
		Title:         "상세 딜",
		DiscountRatio: 25,
		StartTime:     base.Add(-time.Hour),
		EndTime:       base.Add(2 * time.Hour),
		Items: []models.TimeDealItem{{
			ItemID:        item.ID,
			ItemName:      item.Name,
			Quantity:      5,
			OriginalPrice: item.Price,
			FinalPrice:    DiscountedPrice(item.Price, 25),
		}},
	}
	if err := dealRepo.Create(deal); err != nil {
		t.Fatalf("create deal failed: %v", err)
	}

	detail, err := svc.GetDetail(item.ID)
	if err != nil {
		t.Fatalf("get detail failed: %v", err)
	}
	if detail.DealPrice == nil || detail.DealPrice.String() != "15000" {
		t.Fatalf("expected deal price 15000, got %+v", detail.DealPrice)
	}
	if detail.DiscountRatio != 25 {
		t.Fatalf("expected ratio 25, got %d", detail.DiscountRatio)
	}
	if detail.DealEndsIn != "02:00:00" {
		t.Fatalf("expected remaining 02:00:00, got %s", detail.DealEndsIn)
	}

	plainDetail, err := svc.GetDetail(plain.ID)
	if err != nil {
		t.Fatalf("get plain detail failed: %v", err)
	}
	if plainDetail.DealPrice != nil || plainDetail.DiscountRatio != 0 {
		t.Fatalf("expected no deal overlay, got %+v", plainDetail)
	}

	if _, err := svc.GetDetail(999999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTaxonomyCreate(t *testing.T) {
	db := newTestDB(t)
	base := time.Date(2027, 9, 4, 10, 0, 0, 0, time.UTC)
	svc := newItemService(t, db, base)

	if _, err := svc.CreateType("  "); !errors.Is(err, ErrItemNameInvalid) {
		t.Fatalf("expected ErrItemNameInvalid, got %v", err)
	}

	itemType, err := svc.CreateType("분류 생성 유형")
	if err != nil {
		t.Fatalf("create type failed: %v", err)
	}
	if itemType.ID == 0 {
		t.Fatalf("expected type id assigned")
	}

	if _, err := svc.CreateBrand(999999, "고아 브랜드"); !errors.Is(err, ErrTypeNotFound) {
		t.Fatalf("expected ErrTypeNotFound, got %v", err)
	}

	brand, err := svc.CreateBrand(itemType.ID, "분류 생성 브랜드")
	if err != nil {
		t.Fatalf("create brand failed: %v", err)
	}
	if brand.TypeID != itemType.ID {
		t.Fatalf("expected brand bound to type %d, got %d", itemType.ID, brand.TypeID)
	}

	brands, err := svc.ListBrandsByType(itemType.ID)
	if err != nil {
		t.Fatalf("list brands failed: %v", err)
	}
	if len(brands) != 1 || brands[0].Name != "분류 생성 브랜드" {
		t.Fatalf("unexpected brands: %+v", brands)
	}

	if _, err := svc.ListBrandsByType(999999); !errors.Is(err, ErrTypeNotFound) {
		t.Fatalf("expected ErrTypeNotFound for brand listing, got %v", err)
	}
}
