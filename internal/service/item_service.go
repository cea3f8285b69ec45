package service

import (
	"strings"

	"github.com/zzirit/zzirit-api/internal/models"
	"github.com/zzirit/zzirit-api/internal/repository"

	"github.com/shopspring/decimal"
)

// ItemService 商品服务
type ItemService struct {
	itemRepo     repository.ItemRepository
	taxonomyRepo repository.TaxonomyRepository
	dealService  *TimeDealService
}

// NewItemService 创建商品服务
func NewItemService(
	itemRepo repository.ItemRepository,
	taxonomyRepo repository.TaxonomyRepository,
	dealService *TimeDealService,
) *ItemService {
	return &ItemService{
		itemRepo:     itemRepo,
		taxonomyRepo: taxonomyRepo,
		dealService:  dealService,
	}
}

// ItemDetail 商品详情（含命中的限时特价）
type ItemDetail struct {
	models.Item
	DealPrice     *models.Money `json:"deal_price,omitempty"`     // 特价（命中进行中活动时）
	DiscountRatio int           `json:"discount_ratio,omitempty"` // 命中的折扣率
	DealEndsIn    string        `json:"deal_ends_in,omitempty"`   // 特价剩余时长
}

// List 获取商品列表
func (s *ItemService) List(filter repository.ItemListFilter) ([]models.Item, int64, error) {
	return s.itemRepo.List(filter)
}

// GetDetail 获取商品详情（叠加进行中特价）
func (s *ItemService) GetDetail(id uint) (*ItemDetail, error) {
	item, err := s.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}

	detail := &ItemDetail{Item: *item}
	if s.dealService != nil {
		now := s.dealService.Now()
		deal, line, err := s.dealService.FindActiveDealLine(item.ID, now)
		if err != nil {
			return nil, err
		}
		if deal != nil && line != nil {
			price := line.FinalPrice
			detail.DealPrice = &price
			detail.DiscountRatio = deal.DiscountRatio
			detail.DealEndsIn = RemainingAt(now, deal.EndTime)
		}
	}
	return detail, nil
}

// ListTypes 获取全部商品类型
func (s *ItemService) ListTypes() ([]models.ItemType, error) {
	return s.taxonomyRepo.ListTypes()
}

// ListBrandsByType 获取类型下的品牌
func (s *ItemService) ListBrandsByType(typeID uint) ([]models.Brand, error) {
	itemType, err := s.taxonomyRepo.GetTypeByID(typeID)
	if err != nil {
		return nil, err
	}
	if itemType == nil {
		return nil, ErrTypeNotFound
	}
	return s.taxonomyRepo.ListBrandsByType(typeID)
}

// CreateType 创建商品类型
func (s *ItemService) CreateType(name string) (*models.ItemType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrItemNameInvalid
	}
	itemType := &models.ItemType{Name: name}
	if err := s.taxonomyRepo.CreateType(itemType); err != nil {
		return nil, err
	}
	return itemType, nil
}

// CreateBrand 在类型下创建品牌
func (s *ItemService) CreateBrand(typeID uint, name string) (*models.Brand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrItemNameInvalid
	}
	itemType, err := s.taxonomyRepo.GetTypeByID(typeID)
	if err != nil {
		return nil, err
	}
	if itemType == nil {
		return nil, ErrTypeNotFound
	}
	brand := &models.Brand{Name: name, TypeID: typeID}
	if err := s.taxonomyRepo.CreateBrand(brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// UpsertItemInput 商品创建/更新输入
type UpsertItemInput struct {
	Name          string
	TypeID        uint
	BrandID       uint
	Price         models.Money
	StockQuantity int
	ImageURL      string
}

func (s *ItemService) validateUpsert(input UpsertItemInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrItemNameInvalid
	}
	if input.Price.Decimal.LessThan(decimal.Zero) {
		return ErrItemPriceInvalid
	}
	if input.StockQuantity < 0 {
		return ErrItemStockInvalid
	}
	itemType, err := s.taxonomyRepo.GetTypeByID(input.TypeID)
	if err != nil {
		return err
	}
	if itemType == nil {
		return ErrTypeNotFound
	}
	brand, err := s.taxonomyRepo.GetBrandByID(input.BrandID)
	if err != nil {
		return err
	}
	if brand == nil || brand.TypeID != input.TypeID {
		return ErrBrandNotFound
	}
	return nil
}

// Create 创建商品
func (s *ItemService) Create(input UpsertItemInput) (*models.Item, error) {
	if err := s.validateUpsert(input); err != nil {
		return nil, err
	}
	item := &models.Item{
		Name:          strings.TrimSpace(input.Name),
		TypeID:        input.TypeID,
		BrandID:       input.BrandID,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
		ImageURL:      input.ImageURL,
	}
	if err := s.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update 更新商品
func (s *ItemService) Update(id uint, input UpsertItemInput) (*models.Item, error) {
	item, err := s.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	if err := s.validateUpsert(input); err != nil {
		return nil, err
	}
	item.Name = strings.TrimSpace(input.Name)
	item.TypeID = input.TypeID
	item.BrandID = input.BrandID
	item.Price = input.Price
	item.StockQuantity = input.StockQuantity
	item.ImageURL = input.ImageURL
	if err := s.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete 删除商品
func (s *ItemService) Delete(id uint) error {
	item, err := s.itemRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrNotFound
	}
	return s.itemRepo.Delete(id)
}
