package service

import (
	"context"
	"time"

	"github.com/zzirit/zzirit-api/internal/cache"
	"github.com/zzirit/zzirit-api/internal/clock"
	"github.com/zzirit/zzirit-api/internal/constants"
	"github.com/zzirit/zzirit-api/internal/models"
	"github.com/zzirit/zzirit-api/internal/repository"
)

const currentDealCacheTTL = 30 * time.Second

// TimeDealService 限时特价查询服务
type TimeDealService struct {
	dealRepo repository.TimeDealRepository
	clk      clock.Clock
}

// NewTimeDealService 创建限时特价查询服务
func NewTimeDealService(dealRepo repository.TimeDealRepository, clk clock.Clock) *TimeDealService {
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &TimeDealService{
		dealRepo: dealRepo,
		clk:      clk,
	}
}

// TimeDealLineView 限时特价商品明细视图
type TimeDealLineView struct {
	ItemID        uint         `json:"item_id"`
	ItemName      string       `json:"item_name"`
	Quantity      int          `json:"quantity"`
	OriginalPrice models.Money `json:"original_price"`
	FinalPrice    models.Money `json:"final_price"`
}

// TimeDealView 限时特价视图
// Status 与 Remaining 由同一基准时间推导，明细沿用创建时的价格快照。
type TimeDealView struct {
	ID            uint               `json:"id"`
	Title         string             `json:"title"`
	DiscountRatio int                `json:"discount_ratio"`
	StartTime     time.Time          `json:"start_time"`
	EndTime       time.Time          `json:"end_time"`
	Status        string             `json:"status"`
	Remaining     string             `json:"remaining"`
	Items         []TimeDealLineView `json:"items"`
}

// CurrentDealItem 进行中特价商品（前台轮播）
type CurrentDealItem struct {
	TimeDealID    uint         `json:"time_deal_id"`
	ItemID        uint         `json:"item_id"`
	Name          string       `json:"name"`
	OriginalPrice models.Money `json:"original_price"`
	FinalPrice    models.Money `json:"final_price"`
	DiscountRatio int          `json:"discount_ratio"`
	EndTime       time.Time    `json:"end_time"`
	Remaining     string       `json:"remaining"`
	Quantity      int          `json:"quantity"`
}

// Now 返回服务当前时间
func (s *TimeDealService) Now() time.Time {
	return s.clk.Now()
}

// ViewOf 构建限时特价视图
func (s *TimeDealService) ViewOf(deal *models.TimeDeal, now time.Time) TimeDealView {
	view := TimeDealView{
		ID:            deal.ID,
		Title:         deal.Title,
		DiscountRatio: deal.DiscountRatio,
		StartTime:     deal.StartTime,
		EndTime:       deal.EndTime,
		Status:        StatusAt(now, deal.StartTime, deal.EndTime),
		Remaining:     ZeroRemaining,
		Items:         make([]TimeDealLineView, 0, len(deal.Items)),
	}
	if view.Status == constants.TimeDealStatusOngoing {
		view.Remaining = RemainingAt(now, deal.EndTime)
	}
	for _, line := range deal.Items {
		view.Items = append(view.Items, TimeDealLineView{
			ItemID:        line.ItemID,
			ItemName:      line.ItemName,
			Quantity:      line.Quantity,
			OriginalPrice: line.OriginalPrice,
			FinalPrice:    line.FinalPrice,
		})
	}
	return view
}

// GetView 根据ID获取限时特价视图
func (s *TimeDealService) GetView(id uint) (*TimeDealView, error) {
	deal, err := s.dealRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, ErrNotFound
	}
	view := s.ViewOf(deal, s.clk.Now())
	return &view, nil
}

// CurrentDealItems 获取进行中的特价商品（带缓存，倒计时按当前时间重算）
func (s *TimeDealService) CurrentDealItems(ctx context.Context) ([]CurrentDealItem, error) {
	now := s.clk.Now()

	var cached []CurrentDealItem
	if hit, err := cache.GetJSON(ctx, constants.CacheKeyCurrentDeal, &cached); err == nil && hit {
		return refreshRemaining(cached, now), nil
	}

	items, err := s.loadCurrentDealItems(now)
	if err != nil {
		return nil, err
	}
	_ = cache.SetJSON(ctx, constants.CacheKeyCurrentDeal, items, currentDealCacheTTL)
	return refreshRemaining(items, now), nil
}

// FindActiveDealLine 查找商品命中的进行中特价明细
func (s *TimeDealService) FindActiveDealLine(itemID uint, now time.Time) (*models.TimeDeal, *models.TimeDealItem, error) {
	deals, err := s.dealRepo.ListOngoing(now)
	if err != nil {
		return nil, nil, err
	}
	for i := range deals {
		for j := range deals[i].Items {
			if deals[i].Items[j].ItemID == itemID {
				return &deals[i], &deals[i].Items[j], nil
			}
		}
	}
	return nil, nil, nil
}

// InvalidateCurrentCache 失效进行中特价缓存
func (s *TimeDealService) InvalidateCurrentCache(ctx context.Context) error {
	return cache.Del(ctx, constants.CacheKeyCurrentDeal)
}

func (s *TimeDealService) loadCurrentDealItems(now time.Time) ([]CurrentDealItem, error) {
	deals, err := s.dealRepo.ListOngoing(now)
	if err != nil {
		return nil, err
	}
	items := make([]CurrentDealItem, 0)
	for _, deal := range deals {
		for _, line := range deal.Items {
			items = append(items, CurrentDealItem{
				TimeDealID:    deal.ID,
				ItemID:        line.ItemID,
				Name:          line.ItemName,
				OriginalPrice: line.OriginalPrice,
				FinalPrice:    line.FinalPrice,
				DiscountRatio: deal.DiscountRatio,
				EndTime:       deal.EndTime,
				Quantity:      line.Quantity,
			})
		}
	}
	return items, nil
}

// refreshRemaining 基于同一当前时间回填倒计时，过滤已结束条目
func refreshRemaining(items []CurrentDealItem, now time.Time) []CurrentDealItem {
	result := make([]CurrentDealItem, 0, len(items))
	for _, item := range items {
		if now.After(item.EndTime) {
			continue
		}
		item.Remaining = RemainingAt(now, item.EndTime)
		result = append(result, item)
	}
	return result
}
