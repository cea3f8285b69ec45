package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/zzirit/zzirit-api/internal/constants"
	"github.com/zzirit/zzirit-api/internal/models"

	"gorm.io/gorm"
)

// TimeDealRepository 限时特价数据访问接口
type TimeDealRepository interface {
	GetByID(id uint) (*models.TimeDeal, error)
	Create(deal *models.TimeDeal) error
	Delete(id uint) error
	List(filter TimeDealListFilter) ([]models.TimeDeal, int64, error)
	ListOngoing(now time.Time) ([]models.TimeDeal, error)
	WithTx(tx *gorm.DB) *GormTimeDealRepository
}

// TimeDealListFilter 限时特价列表筛选
// Status 按时间窗口过滤（UPCOMING/ONGOING/ENDED），以 Now 为基准时间。
type TimeDealListFilter struct {
	Status      string
	Now         time.Time
	SearchField string
	Query       string
	Page        int
	PageSize    int
}

// GormTimeDealRepository GORM 实现
type GormTimeDealRepository struct {
	db *gorm.DB
}

// NewTimeDealRepository 创建限时特价仓库
func NewTimeDealRepository(db *gorm.DB) *GormTimeDealRepository {
	return &GormTimeDealRepository{db: db}
}

// WithTx 绑定事务
func (r *GormTimeDealRepository) WithTx(tx *gorm.DB) *GormTimeDealRepository {
	if tx == nil {
		return r
	}
	return &GormTimeDealRepository{db: tx}
}

// GetByID 根据ID获取限时特价（含商品明细）
func (r *GormTimeDealRepository) GetByID(id uint) (*models.TimeDeal, error) {
	var deal models.TimeDeal
	if err := r.db.Preload("Items").First(&deal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &deal, nil
}

// Create 创建限时特价（含商品明细）
func (r *GormTimeDealRepository) Create(deal *models.TimeDeal) error {
	return r.db.Create(deal).Error
}

// Delete 删除限时特价及其商品明细
func (r *GormTimeDealRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("time_deal_id = ?", id).Delete(&models.TimeDealItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.TimeDeal{}, id).Error
	})
}

// List 获取限时特价列表
func (r *GormTimeDealRepository) List(filter TimeDealListFilter) ([]models.TimeDeal, int64, error) {
	var deals []models.TimeDeal
	query := r.db.Model(&models.TimeDeal{})
	query = applyStatusWindow(query, filter.Status, filter.Now)

	if q := strings.TrimSpace(filter.Query); q != "" {
		switch filter.SearchField {
		case constants.TimeDealSearchFieldID:
			query = query.Where("id = ?", q)
		default:
			query = query.Where("title LIKE ?", "%"+q+"%")
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Preload("Items").Order("start_time desc, id desc").Find(&deals).Error; err != nil {
		return nil, 0, err
	}
	return deals, total, nil
}

// ListOngoing 获取当前进行中的限时特价（结束时间含端点）
func (r *GormTimeDealRepository) ListOngoing(now time.Time) ([]models.TimeDeal, error) {
	var deals []models.TimeDeal
	query := r.db.Where("start_time <= ? AND end_time >= ?", now, now)
	if err := query.Preload("Items").Order("end_time asc").Find(&deals).Error; err != nil {
		return nil, err
	}
	return deals, nil
}

// applyStatusWindow 将状态筛选翻译为时间窗口条件
func applyStatusWindow(query *gorm.DB, status string, now time.Time) *gorm.DB {
	switch status {
	case constants.TimeDealStatusUpcoming:
		return query.Where("start_time > ?", now)
	case constants.TimeDealStatusOngoing:
		return query.Where("start_time <= ? AND end_time >= ?", now, now)
	case constants.TimeDealStatusEnded:
		return query.Where("end_time < ?", now)
	default:
		return query
	}
}
