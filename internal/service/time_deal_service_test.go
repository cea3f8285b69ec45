package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/zzirit/zzirit-api/internal/clock"
	"github.com/zzirit/zzirit-api/internal/constants"
	"github.com/zzirit/zzirit-api/internal/models"
	"github.com/zzirit/zzirit-api/internal/repository"
)

func TestTimeDealViewOf(t *testing.T) {
	start := time.Date(2027, 1, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)
	deal := &models.TimeDeal{
		ID:            42,
		Title:         "뷰 테스트 딜",
		DiscountRatio: 25,
		StartTime:     start,
		EndTime:       end,
		Items: []models.TimeDealItem{{
			ItemID:        7,
			ItemName:      "뷰 테스트 상품",
			Quantity:      3,
			OriginalPrice: models.NewMoneyFromInt(10000),
			FinalPrice:    models.NewMoneyFromInt(7500),
		}},
	}
	svc := NewTimeDealService(nil, clock.NewFixed(start))

	upcoming := svc.ViewOf(deal, start.Add(-time.Minute))
	if upcoming.Status != constants.TimeDealStatusUpcoming {
		t.Fatalf("expected UPCOMING, got %s", upcoming.Status)
	}
	if upcoming.Remaining != ZeroRemaining {
		t.Fatalf("expected zero remaining before start, got %s", upcoming.Remaining)
	}

	ongoing := svc.ViewOf(deal, start.Add(time.Hour))
	if ongoing.Status != constants.TimeDealStatusOngoing {
		t.Fatalf("expected ONGOING, got %s", ongoing.Status)
	}
	if ongoing.Remaining != "02:00:00" {
		t.Fatalf("expected remaining 02:00:00, got %s", ongoing.Remaining)
	}
	if len(ongoing.Items) != 1 || ongoing.Items[0].FinalPrice.String() != "7500" {
		t.Fatalf("expected snapshot line in view, got %+v", ongoing.Items)
	}

	ended := svc.ViewOf(deal, end.Add(time.Second))
	if ended.Status != constants.TimeDealStatusEnded {
		t.Fatalf("expected ENDED, got %s", ended.Status)
	}
	if ended.Remaining != ZeroRemaining {
		t.Fatalf("expected zero remaining after end, got %s", ended.Remaining)
	}
}

func TestTimeDealGetView_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewTimeDealService(repository.NewTimeDealRepository(db), clock.NewFixed(time.Date(2027, 1, 11, 0, 0, 0, 0, time.UTC)))

	if _, err := svc.GetView(987654); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFindActiveDealLine(t *testing.T) {
	db := newTestDB(t)
	base := time.Date(2027, 1, 12, 12, 0, 0, 0, time.UTC)
	dealRepo := repository.NewTimeDealRepository(db)
	svc := NewTimeDealService(dealRepo, clock.NewFixed(base))
	item := createTestItem(t, db, "특가 조회 상품", 30000, 20)

	deal := &models.TimeDeal{
		Title:         "조회 딜",
		DiscountRatio: 10,
		StartTime:     base.Add(-time.Hour),
		EndTime:       base.Add(time.Hour),
		Items: []models.TimeDealItem{{
			ItemID:        item.ID,
			ItemName:      item.Name,
			Quantity:      5,
			OriginalPrice: item.Price,
			FinalPrice:    DiscountedPrice(item.Price, 10),
		}},
	}
	if err := dealRepo.Create(deal); err != nil {
		t.Fatalf("create deal failed: %v", err)
	}

	hitDeal, hitLine, err := svc.FindActiveDealLine(item.ID, base)
	if err != nil {
		t.Fatalf("find active deal line failed: %v", err)
	}
	if hitDeal == nil || hitLine == nil {
		t.Fatalf("expected hit for item %d", item.ID)
	}
	if hitDeal.ID != deal.ID || hitLine.FinalPrice.String() != "27000" {
		t.Fatalf("unexpected hit: deal=%d price=%s", hitDeal.ID, hitLine.FinalPrice.String())
	}

	missDeal, missLine, err := svc.FindActiveDealLine(999999, base)
	if err != nil {
		t.Fatalf("find missing item failed: %v", err)
	}
	if missDeal != nil || missLine != nil {
		t.Fatalf("expected no hit for unknown item")
	}

	// 窗口之外不再命中
	lateDeal, lateLine, err := svc.FindActiveDealLine(item.ID, base.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("find after window failed: %v", err)
	}
	if lateDeal != nil || lateLine != nil {
		t.Fatalf("expected no hit after deal ended")
	}
}

func TestCurrentDealItems(t *testing.T) {
	db := newTestDB(t)
	base := time.Date(2027, 1, 13, 12, 0, 0, 0, time.UTC)
	dealRepo := repository.NewTimeDealRepository(db)
	svc := NewTimeDealService(dealRepo, clock.NewFixed(base))
	item := createTestItem(t, db, "캐러셀 상품", 50000, 40)

	deal := &models.TimeDeal{
		Title:         "캐러셀 딜",
		DiscountRatio: 20,
		StartTime:     base.Add(-time.Hour),
		EndTime:       base.Add(90 * time.Minute),
		Items: []models.TimeDealItem{{
			ItemID:        item.ID,
			ItemName:      item.Name,
			Quantity:      10,
			OriginalPrice: item.Price,
			FinalPrice:    DiscountedPrice(item.Price, 20),
		}},
	}
	if err := dealRepo.Create(deal); err != nil {
		t.Fatalf("create deal failed: %v", err)
	}

	items, err := svc.CurrentDealItems(context.Background())
	if err != nil {
		t.Fatalf("current deal items failed: %v", err)
	}
	var found *CurrentDealItem
	for i := range items {
		if items[i].TimeDealID == deal.ID {
			found = &items[i]
		}
	}
	if found == nil {
		t.Fatalf("expected carousel entry for deal %d", deal.ID)
	}
	if found.FinalPrice.String() != "40000" || found.DiscountRatio != 20 {
		t.Fatalf("unexpected carousel entry: %+v", found)
	}
	if found.Remaining != "01:30:00" {
		t.Fatalf("expected remaining 01:30:00, got %s", found.Remaining)
	}
}
