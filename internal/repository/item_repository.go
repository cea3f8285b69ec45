package repository

import (
	"errors"
	"strings"

	"github.com/zzirit/zzirit-api/internal/constants"
	"github.com/zzirit/zzirit-api/internal/models"

	"gorm.io/gorm"
)

// ItemRepository 商品数据访问接口
type ItemRepository interface {
	GetByID(id uint) (*models.Item, error)
	GetByIDs(ids []uint) ([]models.Item, error)
	List(filter ItemListFilter) ([]models.Item, int64, error)
	Create(item *models.Item) error
	Update(item *models.Item) error
	Delete(id uint) error
	DecrementStock(id uint, quantity int) error
	WithTx(tx *gorm.DB) *GormItemRepository
}

// ItemListFilter 商品列表筛选
type ItemListFilter struct {
	TypeIDs  []uint
	BrandIDs []uint
	Keyword  string
	Sort     string
	Page     int
	PageSize int
}

// ErrInsufficientStock 库存不足
var ErrInsufficientStock = errors.New("insufficient stock")

// GormItemRepository GORM 实现
type GormItemRepository struct {
	db *gorm.DB
}

// NewItemRepository 创建商品仓库
func NewItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// WithTx 绑定事务
func (r *GormItemRepository) WithTx(tx *gorm.DB) *GormItemRepository {
	if tx == nil {
		return r
	}
	return &GormItemRepository{db: tx}
}

// GetByID 根据ID获取商品
func (r *GormItemRepository) GetByID(id uint) (*models.Item, error) {
	var item models.Item
	if err := r.db.Preload("Type").Preload("Brand").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// GetByIDs 批量获取商品
func (r *GormItemRepository) GetByIDs(ids []uint) ([]models.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var items []models.Item
	if err := r.db.Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// List 获取商品列表
func (r *GormItemRepository) List(filter ItemListFilter) ([]models.Item, int64, error) {
	var items []models.Item
	query := r.db.Model(&models.Item{})

	if len(filter.TypeIDs) > 0 {
		query = query.Where("type_id IN ?", filter.TypeIDs)
	}
	if len(filter.BrandIDs) > 0 {
		query = query.Where("brand_id IN ?", filter.BrandIDs)
	}
	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		query = query.Where("name LIKE ?", "%"+keyword+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	query = query.Preload("Type").Preload("Brand")

	switch filter.Sort {
	case constants.ItemSortPriceAsc:
		query = query.Order("price asc, id desc")
	case constants.ItemSortPriceDesc:
		query = query.Order("price desc, id desc")
	default:
		query = query.Order("id desc")
	}

	if err := query.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Create 创建商品
func (r *GormItemRepository) Create(item *models.Item) error {
	return r.db.Create(item).Error
}

// Update 更新商品
func (r *GormItemRepository) Update(item *models.Item) error {
	return r.db.Save(item).Error
}

// Delete 删除商品
func (r *GormItemRepository) Delete(id uint) error {
	return r.db.Delete(&models.Item{}, id).Error
}

// DecrementStock 扣减库存（带库存充足校验）
func (r *GormItemRepository) DecrementStock(id uint, quantity int) error {
	if quantity <= 0 {
		return nil
	}
	result := r.db.Model(&models.Item{}).
		Where("id = ? AND stock_quantity >= ?", id, quantity).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}
