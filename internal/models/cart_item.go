package models

import (
	"time"

	"gorm.io/gorm"
)

// CartItem 购物车项
type CartItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`                                    // 主键
	MemberID  uint           `gorm:"not null;uniqueIndex:idx_cart_member_item" json:"member_id"` // 会员ID
	ItemID    uint           `gorm:"not null;uniqueIndex:idx_cart_member_item" json:"item_id"`   // 商品ID
	Quantity  int            `gorm:"not null" json:"quantity"`                                // 数量
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                                 // 创建时间
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`                                 // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                          // 软删除时间

	Item *Item `gorm:"foreignKey:ItemID" json:"item,omitempty"` // 关联商品
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
