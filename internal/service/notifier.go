package service

import (
	"github.com/zzirit/zzirit-api/internal/constants"
	"github.com/zzirit/zzirit-api/internal/logger"
)

// Notifier 业务事件通知接口，由订单/支付流程显式注入。
type Notifier interface {
	Notify(message, severity string)
}

// LogNotifier 默认实现：写入结构化日志
type LogNotifier struct{}

// NewLogNotifier 创建日志通知器
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify 按级别记录通知
func (n *LogNotifier) Notify(message, severity string) {
	switch severity {
	case constants.NotifySeverityError:
		logger.Errorw("notify", "message", message)
	case constants.NotifySeverityWarning:
		logger.Warnw("notify", "message", message)
	default:
		logger.Infow("notify", "message", message)
	}
}
