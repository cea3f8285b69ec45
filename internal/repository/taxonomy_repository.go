package repository

import (
	"errors"

	"github.com/zzirit/zzirit-api/internal/models"

	"gorm.io/gorm"
)

// TaxonomyRepository 类型/品牌数据访问接口
type TaxonomyRepository interface {
	ListTypes() ([]models.ItemType, error)
	GetTypeByID(id uint) (*models.ItemType, error)
	ListBrandsByType(typeID uint) ([]models.Brand, error)
	GetBrandByID(id uint) (*models.Brand, error)
	CreateType(itemType *models.ItemType) error
	CreateBrand(brand *models.Brand) error
}

// GormTaxonomyRepository GORM 实现
type GormTaxonomyRepository struct {
	db *gorm.DB
}

// NewTaxonomyRepository 创建类型/品牌仓库
func NewTaxonomyRepository(db *gorm.DB) *GormTaxonomyRepository {
	return &GormTaxonomyRepository{db: db}
}

// ListTypes 获取全部商品类型
func (r *GormTaxonomyRepository) ListTypes() ([]models.ItemType, error) {
	var types []models.ItemType
	if err := r.db.Order("id asc").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// GetTypeByID 根据ID获取商品类型
func (r *GormTaxonomyRepository) GetTypeByID(id uint) (*models.ItemType, error) {
	var itemType models.ItemType
	if err := r.db.First(&itemType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itemType, nil
}

// ListBrandsByType 获取指定类型下的品牌
func (r *GormTaxonomyRepository) ListBrandsByType(typeID uint) ([]models.Brand, error) {
	var brands []models.Brand
	query := r.db.Order("id asc")
	if typeID != 0 {
		query = query.Where("type_id = ?", typeID)
	}
	if err := query.Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

// GetBrandByID 根据ID获取品牌
func (r *GormTaxonomyRepository) GetBrandByID(id uint) (*models.Brand, error) {
	var brand models.Brand
	if err := r.db.First(&brand, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

// CreateType 创建商品类型
func (r *GormTaxonomyRepository) CreateType(itemType *models.ItemType) error {
	return r.db.Create(itemType).Error
}

// CreateBrand 创建品牌
func (r *GormTaxonomyRepository) CreateBrand(brand *models.Brand) error {
	return r.db.Create(brand).Error
}
