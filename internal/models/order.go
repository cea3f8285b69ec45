package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表
type Order struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                      // 主键
	OrderNo     string         `gorm:"uniqueIndex;not null" json:"order_no"`                      // 订单编号
	MemberID    uint           `gorm:"index;not null" json:"member_id"`                           // 会员ID
	Status      string         `gorm:"index;not null" json:"status"`                              // 订单状态
	Currency    string         `gorm:"not null" json:"currency"`                                  // 币种
	TotalAmount Money          `gorm:"type:decimal(20,0);not null;default:0" json:"total_amount"` // 实付金额
	PaymentKey  string         `gorm:"type:varchar(200)" json:"payment_key,omitempty"`            // 支付网关交易键
	ExpiresAt   *time.Time     `gorm:"index" json:"expires_at"`                                   // 支付过期时间
	PaidAt      *time.Time     `gorm:"index" json:"paid_at"`                                      // 支付时间
	CanceledAt  *time.Time     `gorm:"index" json:"canceled_at"`                                  // 取消时间
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt   time.Time      `gorm:"index" json:"updated_at"`                                   // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                            // 软删除时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// OrderItem 订单项（下单时快照单价）
type OrderItem struct {
	ID         uint   `gorm:"primarykey" json:"id"`                                    // 主键
	OrderID    uint   `gorm:"not null;index" json:"order_id"`                          // 订单ID
	ItemID     uint   `gorm:"not null;index" json:"item_id"`                           // 商品ID
	ItemName   string `gorm:"not null" json:"item_name"`                               // 商品名称快照
	Quantity   int    `gorm:"not null" json:"quantity"`                                // 数量
	UnitPrice  Money  `gorm:"type:decimal(20,0);not null;default:0" json:"unit_price"` // 成交单价（含限时特价）
	TimeDealID *uint  `gorm:"index" json:"time_deal_id,omitempty"`                     // 命中的限时特价ID
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
