package models

import (
	"time"

	"gorm.io/gorm"
)

// TimeDeal 限时特价活动表
// 状态不落库，由时间窗口与当前时间推导。
type TimeDeal struct {
	ID            uint           `gorm:"primarykey" json:"id"`             // 主键
	Title         string         `gorm:"not null" json:"title"`            // 活动标题
	DiscountRatio int            `gorm:"not null" json:"discount_ratio"`   // 折扣率（1-99，百分比）
	StartTime     time.Time      `gorm:"index;not null" json:"start_time"` // 开始时间
	EndTime       time.Time      `gorm:"index;not null" json:"end_time"`   // 结束时间
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`          // 创建时间
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                   // 软删除时间

	Items []TimeDealItem `gorm:"foreignKey:TimeDealID" json:"items,omitempty"` // 活动商品明细
}

// TableName 指定表名
func (TimeDeal) TableName() string {
	return "time_deals"
}

// TimeDealItem 限时特价商品明细（创建时快照价格与名称）
type TimeDealItem struct {
	ID            uint   `gorm:"primarykey" json:"id"`                                        // 主键
	TimeDealID    uint   `gorm:"not null;index" json:"time_deal_id"`                          // 活动ID
	ItemID        uint   `gorm:"not null;index" json:"item_id"`                               // 商品ID
	ItemName      string `gorm:"not null" json:"item_name"`                                   // 商品名称快照
	Quantity      int    `gorm:"not null" json:"quantity"`                                    // 活动数量
	OriginalPrice Money  `gorm:"type:decimal(20,0);not null;default:0" json:"original_price"` // 原价快照
	FinalPrice    Money  `gorm:"type:decimal(20,0);not null;default:0" json:"final_price"`    // 折后价快照

	Item *Item `gorm:"foreignKey:ItemID" json:"item,omitempty"` // 关联商品
}

// TableName 指定表名
func (TimeDealItem) TableName() string {
	return "time_deal_items"
}
