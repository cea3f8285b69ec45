package service

import (
	"github.com/zzirit/zzirit-api/internal/models"
	"github.com/zzirit/zzirit-api/internal/repository"

	"github.com/shopspring/decimal"
)

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	itemRepo    repository.ItemRepository
	dealService *TimeDealService
}

// NewCartService 创建购物车服务
func NewCartService(
	cartRepo repository.CartRepository,
	itemRepo repository.ItemRepository,
	dealService *TimeDealService,
) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		itemRepo:    itemRepo,
		dealService: dealService,
	}
}

// CartLine 购物车行（单价按进行中特价解析）
type CartLine struct {
	ItemID     uint         `json:"item_id"`
	ItemName   string       `json:"item_name"`
	ImageURL   string       `json:"image_url"`
	Quantity   int          `json:"quantity"`
	UnitPrice  models.Money `json:"unit_price"`
	LineTotal  models.Money `json:"line_total"`
	TimeDealID *uint        `json:"time_deal_id,omitempty"`
	Stock      int          `json:"stock"`
}

// CartView 购物车视图
type CartView struct {
	Lines       []CartLine   `json:"lines"`
	TotalAmount models.Money `json:"total_amount"`
}

// List 获取会员购物车（含特价单价与合计）
func (s *CartService) List(memberID uint) (*CartView, error) {
	cartItems, err := s.cartRepo.ListByMember(memberID)
	if err != nil {
		return nil, err
	}

	now := s.dealService.Now()
	view := &CartView{Lines: make([]CartLine, 0, len(cartItems))}
	total := decimal.Zero
	for _, cartItem := range cartItems {
		if cartItem.Item == nil {
			continue
		}
		line := CartLine{
			ItemID:    cartItem.ItemID,
			ItemName:  cartItem.Item.Name,
			ImageURL:  cartItem.Item.ImageURL,
			Quantity:  cartItem.Quantity,
			UnitPrice: cartItem.Item.Price,
			Stock:     cartItem.Item.StockQuantity,
		}
		deal, dealLine, err := s.dealService.FindActiveDealLine(cartItem.ItemID, now)
		if err != nil {
			return nil, err
		}
		if deal != nil && dealLine != nil {
			line.UnitPrice = dealLine.FinalPrice
			dealID := deal.ID
			line.TimeDealID = &dealID
		}
		line.LineTotal = models.NewMoneyFromDecimal(
			line.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(line.Quantity))))
		total = total.Add(line.LineTotal.Decimal)
		view.Lines = append(view.Lines, line)
	}
	view.TotalAmount = models.NewMoneyFromDecimal(total)
	return view, nil
}

// Upsert 新增或覆盖购物车项，数量收敛到 [1, 库存]
func (s *CartService) Upsert(memberID, itemID uint, quantity int) (*models.CartItem, error) {
	item, err := s.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	if item.StockQuantity < 1 {
		return nil, ErrCartQuantityInvalid
	}

	cartItem := &models.CartItem{
		MemberID: memberID,
		ItemID:   itemID,
		Quantity: ClampLineQuantity(quantity, item.StockQuantity),
	}
	if err := s.cartRepo.Upsert(cartItem); err != nil {
		return nil, err
	}
	return cartItem, nil
}

// Increase 购物车项数量加一（不超过库存）
func (s *CartService) Increase(memberID, itemID uint) (*models.CartItem, error) {
	return s.adjust(memberID, itemID, 1)
}

// Decrease 购物车项数量减一（不低于 1）
func (s *CartService) Decrease(memberID, itemID uint) (*models.CartItem, error) {
	return s.adjust(memberID, itemID, -1)
}

func (s *CartService) adjust(memberID, itemID uint, delta int) (*models.CartItem, error) {
	cartItem, err := s.cartRepo.GetByMemberAndItem(memberID, itemID)
	if err != nil {
		return nil, err
	}
	if cartItem == nil {
		return nil, ErrNotFound
	}
	item, err := s.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	quantity := ClampLineQuantity(cartItem.Quantity+delta, item.StockQuantity)
	if quantity == cartItem.Quantity {
		return cartItem, nil
	}
	if err := s.cartRepo.UpdateQuantity(memberID, itemID, quantity); err != nil {
		return nil, err
	}
	cartItem.Quantity = quantity
	return cartItem, nil
}

// Remove 删除购物车项
func (s *CartService) Remove(memberID, itemID uint) error {
	cartItem, err := s.cartRepo.GetByMemberAndItem(memberID, itemID)
	if err != nil {
		return err
	}
	if cartItem == nil {
		return ErrNotFound
	}
	return s.cartRepo.DeleteByMemberAndItem(memberID, itemID)
}
