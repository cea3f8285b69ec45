package models

// ItemType 商品类型表
type ItemType struct {
	ID   uint   `gorm:"primarykey" json:"id"`             // 主键
	Name string `gorm:"uniqueIndex;not null" json:"name"` // 类型名称
}

// TableName 指定表名
func (ItemType) TableName() string {
	return "item_types"
}
