package constants

// 限时特价状态常量（由时间窗口推导，不落库）
const (
	TimeDealStatusUpcoming = "UPCOMING"
	TimeDealStatusOngoing  = "ONGOING"
	TimeDealStatusEnded    = "ENDED"
)

// 限时特价折扣率边界
const (
	TimeDealRatioMin = 1
	TimeDealRatioMax = 99
)

// 限时特价列表搜索字段常量
const (
	TimeDealSearchFieldName = "name"
	TimeDealSearchFieldID   = "id"
)

// 订单状态常量
const (
	OrderStatusPendingPayment = "pending_payment"
	OrderStatusPaid           = "paid"
	OrderStatusFailed         = "failed"
	OrderStatusCanceled       = "canceled"
)

// 支付状态常量
const (
	PaymentStatusInitiated = "initiated"
	PaymentStatusSuccess   = "success"
	PaymentStatusFailed    = "failed"
)

// 商品排序常量
const (
	ItemSortNewest    = "newest"
	ItemSortPriceAsc  = "price_asc"
	ItemSortPriceDesc = "price_desc"
)

// 分页默认值常量
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// 队列常量
const (
	QueueDefault           = "default"
	TaskOrderTimeoutCancel = "order:timeout_cancel"
	TaskTimeDealRefresh    = "time_deal:refresh"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault  = "zz"
	CacheKeyCurrentDeal = "time_deal:current"
)

// 币种常量
const (
	SiteCurrencyDefault = "KRW"
)

// 通知级别常量
const (
	NotifySeverityInfo    = "info"
	NotifySeverityWarning = "warning"
	NotifySeverityError   = "error"
)
