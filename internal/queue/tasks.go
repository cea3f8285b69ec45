package queue

import (
	"encoding/json"

	"github.com/zzirit/zzirit-api/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderTimeoutCancel 订单超时取消任务
	TaskOrderTimeoutCancel = constants.TaskOrderTimeoutCancel
	// TaskTimeDealRefresh 限时特价缓存刷新任务（窗口边沿触发）
	TaskTimeDealRefresh = constants.TaskTimeDealRefresh
)

// OrderTimeoutCancelPayload 超时取消任务载荷
type OrderTimeoutCancelPayload struct {
	OrderID uint `json:"order_id"`
}

// TimeDealRefreshPayload 限时特价刷新任务载荷
type TimeDealRefreshPayload struct {
	TimeDealID uint `json:"time_deal_id"`
}

// NewOrderTimeoutCancelTask 创建超时取消任务
func NewOrderTimeoutCancelTask(payload OrderTimeoutCancelPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderTimeoutCancel, body), nil
}

// NewTimeDealRefreshTask 创建限时特价刷新任务
func NewTimeDealRefreshTask(payload TimeDealRefreshPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTimeDealRefresh, body), nil
}
