package repository

import (
	"testing"
	"time"

	"github.com/zzirit/zzirit-api/internal/constants"
	"github.com/zzirit/zzirit-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTimeDealTestRepo(t *testing.T) *GormTimeDealRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.TimeDeal{}, &models.TimeDealItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewTimeDealRepository(db)
}

func TestTimeDealList_StatusWindow(t *testing.T) {
	repo := newTimeDealTestRepo(t)
	base := time.Date(2029, 3, 1, 12, 0, 0, 0, time.UTC)

	deals := []models.TimeDeal{
		{Title: "윈도우 예정", DiscountRatio: 10, StartTime: base.Add(time.Hour), EndTime: base.Add(2 * time.Hour)},
		{Title: "윈도우 진행", DiscountRatio: 10, StartTime: base.Add(-time.Hour), EndTime: base.Add(time.Hour)},
		{Title: "윈도우 경계", DiscountRatio: 10, StartTime: base.Add(-2 * time.Hour), EndTime: base},
		{Title: "윈도우 종료", DiscountRatio: 10, StartTime: base.Add(-3 * time.Hour), EndTime: base.Add(-2 * time.Hour)},
	}
	for i := range deals {
		if err := repo.Create(&deals[i]); err != nil {
			t.Fatalf("create deal %q failed: %v", deals[i].Title, err)
		}
	}

	cases := []struct {
		status string
		want   map[string]bool
	}{
		{constants.TimeDealStatusUpcoming, map[string]bool{"윈도우 예정": true}},
		// 结束时间为闭区间，end == now 仍为进行中
		{constants.TimeDealStatusOngoing, map[string]bool{"윈도우 진행": true, "윈도우 경계": true}},
		{constants.TimeDealStatusEnded, map[string]bool{"윈도우 종료": true}},
	}
	for _, tc := range cases {
		got, total, err := repo.List(TimeDealListFilter{
			Status:   tc.status,
			Now:      base,
			Query:    "윈도우",
			Page:     1,
			PageSize: 10,
		})
		if err != nil {
			t.Fatalf("list %s failed: %v", tc.status, err)
		}
		if int(total) != len(tc.want) || len(got) != len(tc.want) {
			t.Fatalf("%s: expected %d deals, got total=%d len=%d", tc.status, len(tc.want), total, len(got))
		}
		for _, deal := range got {
			if !tc.want[deal.Title] {
				t.Fatalf("%s: unexpected deal %q", tc.status, deal.Title)
			}
		}
	}
}

func TestTimeDealList_SearchByID(t *testing.T) {
	repo := newTimeDealTestRepo(t)
	base := time.Date(2029, 3, 2, 12, 0, 0, 0, time.UTC)

	deal := models.TimeDeal{Title: "아이디 검색 딜", DiscountRatio: 15, StartTime: base, EndTime: base.Add(time.Hour)}
	if err := repo.Create(&deal); err != nil {
		t.Fatalf("create deal failed: %v", err)
	}

	got, total, err := repo.List(TimeDealListFilter{
		Now:         base,
		SearchField: constants.TimeDealSearchFieldID,
		Query:       "999999",
		Page:        1,
		PageSize:    10,
	})
	if err != nil {
		t.Fatalf("list by missing id failed: %v", err)
	}
	if total != 0 || len(got) != 0 {
		t.Fatalf("expected no match, got total=%d", total)
	}
}

func TestTimeDealListOngoing_IncludesEndBoundary(t *testing.T) {
	repo := newTimeDealTestRepo(t)
	base := time.Date(2029, 3, 3, 12, 0, 0, 0, time.UTC)

	boundary := models.TimeDeal{
		Title:         "경계 진행 딜",
		DiscountRatio: 10,
		StartTime:     base.Add(-time.Hour),
		EndTime:       base,
		Items: []models.TimeDealItem{{
			ItemID:        12345,
			ItemName:      "경계 상품",
			Quantity:      1,
			OriginalPrice: models.NewMoneyFromInt(1000),
			FinalPrice:    models.NewMoneyFromInt(900),
		}},
	}
	if err := repo.Create(&boundary); err != nil {
		t.Fatalf("create boundary deal failed: %v", err)
	}

	deals, err := repo.ListOngoing(base)
	if err != nil {
		t.Fatalf("list ongoing failed: %v", err)
	}
	var found *models.TimeDeal
	for i := range deals {
		if deals[i].ID == boundary.ID {
			found = &deals[i]
		}
	}
	if found == nil {
		t.Fatalf("expected deal ending exactly now to be ongoing")
	}
	if len(found.Items) != 1 || found.Items[0].ItemName != "경계 상품" {
		t.Fatalf("expected preloaded items, got %+v", found.Items)
	}

	deals, err = repo.ListOngoing(base.Add(time.Second))
	if err != nil {
		t.Fatalf("list ongoing after end failed: %v", err)
	}
	for i := range deals {
		if deals[i].ID == boundary.ID {
			t.Fatalf("expected deal excluded after end time")
		}
	}
}

func TestTimeDealDelete_RemovesLines(t *testing.T) {
	repo := newTimeDealTestRepo(t)
	base := time.Date(2029, 3, 4, 12, 0, 0, 0, time.UTC)

	deal := models.TimeDeal{
		Title:         "삭제 전파 딜",
		DiscountRatio: 10,
		StartTime:     base,
		EndTime:       base.Add(time.Hour),
		Items: []models.TimeDealItem{{
			ItemID:        22345,
			ItemName:      "삭제 상품",
			Quantity:      2,
			OriginalPrice: models.NewMoneyFromInt(2000),
			FinalPrice:    models.NewMoneyFromInt(1800),
		}},
	}
	if err := repo.Create(&deal); err != nil {
		t.Fatalf("create deal failed: %v", err)
	}

	if err := repo.Delete(deal.ID); err != nil {
		t.Fatalf("delete deal failed: %v", err)
	}
	got, err := repo.GetByID(deal.ID)
	if err != nil {
		t.Fatalf("get deleted deal failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil after delete, got %+v", got)
	}
}
