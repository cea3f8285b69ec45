package service

import (
	"fmt"
	"time"

	"github.com/zzirit/zzirit-api/internal/constants"
	"github.com/zzirit/zzirit-api/internal/models"

	"github.com/shopspring/decimal"
)

// ZeroRemaining 倒计时结束后的固定展示值
const ZeroRemaining = "00:00:00"

var hundred = decimal.NewFromInt(100)

// DiscountedPrice 计算折后价：原价 * (100 - 折扣率) / 100，四舍五入到整数。
// 结果不为负且不超过原价。
func DiscountedPrice(original models.Money, ratio int) models.Money {
	if ratio <= 0 {
		return models.NewMoneyFromDecimal(original.Decimal)
	}
	if ratio >= 100 {
		return models.NewMoneyFromDecimal(decimal.Zero)
	}
	discounted := original.Decimal.Mul(hundred.Sub(decimal.NewFromInt(int64(ratio)))).Div(hundred)
	if discounted.LessThan(decimal.Zero) {
		discounted = decimal.Zero
	}
	return models.NewMoneyFromDecimal(discounted)
}

// StatusAt 推导限时特价状态。结束时间为闭区间：now == end 仍为进行中。
func StatusAt(now, start, end time.Time) string {
	if now.Before(start) {
		return constants.TimeDealStatusUpcoming
	}
	if !now.After(end) {
		return constants.TimeDealStatusOngoing
	}
	return constants.TimeDealStatusEnded
}

// RemainingAt 计算距结束时间的剩余时长，格式 HH:MM:SS（小时可超过 24）。
// 已结束时返回 ZeroRemaining。每次调用基于传入时间重新计算，不持有计时器。
func RemainingAt(now, end time.Time) string {
	remaining := end.Sub(now)
	if remaining <= 0 {
		return ZeroRemaining
	}
	totalSeconds := int64(remaining.Seconds())
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// ClampLineQuantity 将数量收敛到 [1, stockLimit] 区间，永不报错。
func ClampLineQuantity(quantity, stockLimit int) int {
	if stockLimit < 1 {
		return 1
	}
	if quantity < 1 {
		return 1
	}
	if quantity > stockLimit {
		return stockLimit
	}
	return quantity
}
