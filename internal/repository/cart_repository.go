package repository

import (
	"errors"

	"github.com/zzirit/zzirit-api/internal/models"

	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	ListByMember(memberID uint) ([]models.CartItem, error)
	GetByMemberAndItem(memberID, itemID uint) (*models.CartItem, error)
	Upsert(cartItem *models.CartItem) error
	UpdateQuantity(memberID, itemID uint, quantity int) error
	DeleteByMemberAndItem(memberID, itemID uint) error
	Clear(memberID uint) error
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// ListByMember 获取会员购物车（含商品）
func (r *GormCartRepository) ListByMember(memberID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Where("member_id = ?", memberID).Preload("Item").Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByMemberAndItem 获取购物车项
func (r *GormCartRepository) GetByMemberAndItem(memberID, itemID uint) (*models.CartItem, error) {
	var cartItem models.CartItem
	if err := r.db.Where("member_id = ? AND item_id = ?", memberID, itemID).First(&cartItem).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cartItem, nil
}

// Upsert 新增或更新购物车项
func (r *GormCartRepository) Upsert(cartItem *models.CartItem) error {
	existing, err := r.GetByMemberAndItem(cartItem.MemberID, cartItem.ItemID)
	if err != nil {
		return err
	}
	if existing == nil {
		return r.db.Create(cartItem).Error
	}
	existing.Quantity = cartItem.Quantity
	if err := r.db.Save(existing).Error; err != nil {
		return err
	}
	*cartItem = *existing
	return nil
}

// UpdateQuantity 更新购物车项数量
func (r *GormCartRepository) UpdateQuantity(memberID, itemID uint, quantity int) error {
	return r.db.Model(&models.CartItem{}).
		Where("member_id = ? AND item_id = ?", memberID, itemID).
		Update("quantity", quantity).Error
}

// DeleteByMemberAndItem 删除购物车项
func (r *GormCartRepository) DeleteByMemberAndItem(memberID, itemID uint) error {
	return r.db.Where("member_id = ? AND item_id = ?", memberID, itemID).Delete(&models.CartItem{}).Error
}

// Clear 清空会员购物车
func (r *GormCartRepository) Clear(memberID uint) error {
	return r.db.Where("member_id = ?", memberID).Delete(&models.CartItem{}).Error
}
