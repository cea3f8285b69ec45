package models

import (
	"time"

	"gorm.io/gorm"
)

// Item 商品表
type Item struct {
	ID            uint           `gorm:"primarykey" json:"id"`                             // 主键
	Name          string         `gorm:"not null;index" json:"name"`                       // 商品名称
	TypeID        uint           `gorm:"not null;index" json:"type_id"`                    // 商品类型ID
	BrandID       uint           `gorm:"not null;index" json:"brand_id"`                   // 品牌ID
	Price         Money          `gorm:"type:decimal(20,0);not null;default:0" json:"price"` // 售价（韩元）
	StockQuantity int            `gorm:"not null;default:0" json:"stock_quantity"`         // 库存数量
	ImageURL      string         `gorm:"type:varchar(500)" json:"image_url"`               // 商品图片
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                          // 创建时间
	UpdatedAt     time.Time      `json:"updated_at"`                                       // 更新时间
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                   // 软删除时间

	// 关联
	Type  *ItemType `gorm:"foreignKey:TypeID" json:"type,omitempty"`   // 商品类型
	Brand *Brand    `gorm:"foreignKey:BrandID" json:"brand,omitempty"` // 品牌
}

// TableName 指定表名
func (Item) TableName() string {
	return "items"
}
