package models

// Brand 品牌表（按商品类型归属）
type Brand struct {
	ID     uint      `gorm:"primarykey" json:"id"`                                          // 主键
	Name   string    `gorm:"not null;uniqueIndex:idx_brand_type_name" json:"name"`          // 品牌名称
	TypeID uint      `gorm:"not null;index;uniqueIndex:idx_brand_type_name" json:"type_id"` // 商品类型ID
	Type   *ItemType `gorm:"foreignKey:TypeID" json:"type,omitempty"`                       // 关联类型
}

// TableName 指定表名
func (Brand) TableName() string {
	return "brands"
}
