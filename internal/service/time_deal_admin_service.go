package service

import (
	"context"
	"strings"
	"time"

	"github.com/zzirit/zzirit-api/internal/clock"
	"github.com/zzirit/zzirit-api/internal/constants"
	"github.com/zzirit/zzirit-api/internal/logger"
	"github.com/zzirit/zzirit-api/internal/models"
	"github.com/zzirit/zzirit-api/internal/queue"
	"github.com/zzirit/zzirit-api/internal/repository"
)

// TimeDealAdminService 限时特价管理服务
type TimeDealAdminService struct {
	dealRepo    repository.TimeDealRepository
	itemRepo    repository.ItemRepository
	dealService *TimeDealService
	queueClient *queue.Client
	clk         clock.Clock
}

// NewTimeDealAdminService 创建限时特价管理服务
func NewTimeDealAdminService(
	dealRepo repository.TimeDealRepository,
	itemRepo repository.ItemRepository,
	dealService *TimeDealService,
	queueClient *queue.Client,
	clk clock.Clock,
) *TimeDealAdminService {
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &TimeDealAdminService{
		dealRepo:    dealRepo,
		itemRepo:    itemRepo,
		dealService: dealService,
		queueClient: queueClient,
		clk:         clk,
	}
}

// TimeDealLineInput 限时特价商品行输入
type TimeDealLineInput struct {
	ItemID   uint
	Quantity int
}

// CreateTimeDealInput 创建限时特价输入
type CreateTimeDealInput struct {
	Title         string
	DiscountRatio int
	StartTime     time.Time
	EndTime       time.Time
	Lines         []TimeDealLineInput
}

// Create 创建限时特价。
// 校验顺序：标题、折扣率、时间窗口、空行集，再逐行校验商品存在与数量上限；
// 全部通过后按当前商品快照价格与名称落库。
func (s *TimeDealAdminService) Create(input CreateTimeDealInput) (*models.TimeDeal, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrDealTitleInvalid
	}
	if input.DiscountRatio < constants.TimeDealRatioMin || input.DiscountRatio > constants.TimeDealRatioMax {
		return nil, ErrDealRatioInvalid
	}
	if !input.EndTime.After(input.StartTime) {
		return nil, ErrDealWindowInvalid
	}
	if len(input.Lines) == 0 {
		return nil, ErrDealItemsEmpty
	}

	lines := make([]models.TimeDealItem, 0, len(input.Lines))
	for _, line := range input.Lines {
		item, err := s.itemRepo.GetByID(line.ItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, ErrItemNotFound
		}
		if line.Quantity < 1 || line.Quantity > item.StockQuantity {
			return nil, ErrDealQuantityExceedsStock
		}
		lines = append(lines, models.TimeDealItem{
			ItemID:        item.ID,
			ItemName:      item.Name,
			Quantity:      line.Quantity,
			OriginalPrice: item.Price,
			FinalPrice:    DiscountedPrice(item.Price, input.DiscountRatio),
		})
	}

	deal := &models.TimeDeal{
		Title:         strings.TrimSpace(input.Title),
		DiscountRatio: input.DiscountRatio,
		StartTime:     input.StartTime,
		EndTime:       input.EndTime,
		Items:         lines,
	}
	if err := s.dealRepo.Create(deal); err != nil {
		return nil, err
	}

	s.scheduleRefresh(deal)
	if s.dealService != nil {
		_ = s.dealService.InvalidateCurrentCache(context.Background())
	}
	return deal, nil
}

// List 获取限时特价列表（状态按当前时间推导）
func (s *TimeDealAdminService) List(status, searchField, query string, page, pageSize int) ([]TimeDealView, int64, error) {
	now := s.clk.Now()
	deals, total, err := s.dealRepo.List(repository.TimeDealListFilter{
		Status:      status,
		Now:         now,
		SearchField: searchField,
		Query:       query,
		Page:        page,
		PageSize:    pageSize,
	})
	if err != nil {
		return nil, 0, err
	}

	views := make([]TimeDealView, 0, len(deals))
	for i := range deals {
		views = append(views, s.dealService.ViewOf(&deals[i], now))
	}
	return views, total, nil
}

// Delete 删除限时特价
func (s *TimeDealAdminService) Delete(id uint) error {
	deal, err := s.dealRepo.GetByID(id)
	if err != nil {
		return err
	}
	if deal == nil {
		return ErrNotFound
	}
	if err := s.dealRepo.Delete(id); err != nil {
		return err
	}
	if s.dealService != nil {
		_ = s.dealService.InvalidateCurrentCache(context.Background())
	}
	return nil
}

// scheduleRefresh 在窗口边沿调度缓存刷新任务
func (s *TimeDealAdminService) scheduleRefresh(deal *models.TimeDeal) {
	if !s.queueClient.Enabled() {
		return
	}
	payload := queue.TimeDealRefreshPayload{TimeDealID: deal.ID}
	if err := s.queueClient.EnqueueTimeDealRefreshAt(payload, deal.StartTime); err != nil {
		logger.Warnw("time_deal_refresh_enqueue_failed", "time_deal_id", deal.ID, "at", deal.StartTime, "error", err)
	}
	if err := s.queueClient.EnqueueTimeDealRefreshAt(payload, deal.EndTime); err != nil {
		logger.Warnw("time_deal_refresh_enqueue_failed", "time_deal_id", deal.ID, "at", deal.EndTime, "error", err)
	}
}
