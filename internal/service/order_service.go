package service

import (
	"context"
	"fmt"
	"time"

	"github.com/zzirit/zzirit-api/internal/clock"
	"github.com/zzirit/zzirit-api/internal/constants"
	"github.com/zzirit/zzirit-api/internal/logger"
	"github.com/zzirit/zzirit-api/internal/models"
	"github.com/zzirit/zzirit-api/internal/payment/toss"
	"github.com/zzirit/zzirit-api/internal/queue"
	"github.com/zzirit/zzirit-api/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentGateway 支付网关抽象（测试可替换）
type PaymentGateway interface {
	Confirm(ctx context.Context, paymentKey, orderNo string, amount decimal.Decimal) (*toss.ConfirmResult, error)
	Cancel(ctx context.Context, paymentKey, reason string) error
}

// OrderService 订单服务
type OrderService struct {
	orderRepo     repository.OrderRepository
	cartRepo      repository.CartRepository
	itemRepo      repository.ItemRepository
	cartService   *CartService
	gateway       PaymentGateway
	queueClient   *queue.Client
	notifier      Notifier
	clk           clock.Clock
	expireMinutes int
}

// NewOrderService 创建订单服务
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	itemRepo repository.ItemRepository,
	cartService *CartService,
	gateway PaymentGateway,
	queueClient *queue.Client,
	notifier Notifier,
	clk clock.Clock,
	expireMinutes int,
) *OrderService {
	if clk == nil {
		clk = clock.NewSystem()
	}
	if notifier == nil {
		notifier = NewLogNotifier()
	}
	if expireMinutes <= 0 {
		expireMinutes = 15
	}
	return &OrderService{
		orderRepo:     orderRepo,
		cartRepo:      cartRepo,
		itemRepo:      itemRepo,
		cartService:   cartService,
		gateway:       gateway,
		queueClient:   queueClient,
		notifier:      notifier,
		clk:           clk,
		expireMinutes: expireMinutes,
	}
}

// InitOrder 从购物车创建待支付订单，单价按下单时特价快照。
func (s *OrderService) InitOrder(memberID uint) (*models.Order, error) {
	cartView, err := s.cartService.List(memberID)
	if err != nil {
		return nil, err
	}
	if len(cartView.Lines) == 0 {
		return nil, ErrCartEmpty
	}

	now := s.clk.Now()
	expiresAt := now.Add(time.Duration(s.expireMinutes) * time.Minute)
	order := &models.Order{
		OrderNo:     uuid.NewString(),
		MemberID:    memberID,
		Status:      constants.OrderStatusPendingPayment,
		Currency:    constants.SiteCurrencyDefault,
		TotalAmount: cartView.TotalAmount,
		ExpiresAt:   &expiresAt,
		Items:       make([]models.OrderItem, 0, len(cartView.Lines)),
	}
	for _, line := range cartView.Lines {
		order.Items = append(order.Items, models.OrderItem{
			ItemID:     line.ItemID,
			ItemName:   line.ItemName,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			TimeDealID: line.TimeDealID,
		})
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	if s.queueClient.Enabled() {
		delay := expiresAt.Sub(now)
		if err := s.queueClient.EnqueueOrderTimeoutCancel(queue.OrderTimeoutCancelPayload{OrderID: order.ID}, delay); err != nil {
			logger.Warnw("order_timeout_cancel_enqueue_failed", "order_id", order.ID, "error", err)
		}
	}
	return order, nil
}

// Confirm 确认支付：校验金额一致后调用网关，成功则扣库存、清购物车。
func (s *OrderService) Confirm(ctx context.Context, memberID uint, orderNo, paymentKey string, amount models.Money) (*models.Order, error) {
	order, err := s.orderRepo.GetByOrderNo(orderNo)
	if err != nil {
		return nil, err
	}
	if order == nil || order.MemberID != memberID {
		return nil, ErrNotFound
	}
	if order.Status != constants.OrderStatusPendingPayment {
		return nil, ErrOrderStateInvalid
	}
	if !order.TotalAmount.Decimal.Equal(amount.Decimal) {
		return nil, ErrOrderAmountMismatch
	}

	if s.gateway != nil {
		if _, err := s.gateway.Confirm(ctx, paymentKey, orderNo, order.TotalAmount.Decimal); err != nil {
			s.notifier.Notify(fmt.Sprintf("order %s payment rejected", order.OrderNo), constants.NotifySeverityWarning)
			return nil, fmt.Errorf("%w: %v", ErrPaymentRejected, err)
		}
	}

	for _, item := range order.Items {
		if err := s.itemRepo.DecrementStock(item.ItemID, item.Quantity); err != nil {
			logger.Warnw("order_stock_decrement_failed", "order_id", order.ID, "item_id", item.ItemID, "error", err)
		}
	}

	now := s.clk.Now()
	order.Status = constants.OrderStatusPaid
	order.PaymentKey = paymentKey
	order.PaidAt = &now
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	if err := s.cartRepo.Clear(memberID); err != nil {
		logger.Warnw("order_cart_clear_failed", "order_id", order.ID, "error", err)
	}
	s.notifier.Notify(fmt.Sprintf("order %s paid", order.OrderNo), constants.NotifySeverityInfo)
	return order, nil
}

// Fail 标记支付失败
func (s *OrderService) Fail(memberID uint, orderNo, reason string) (*models.Order, error) {
	order, err := s.orderRepo.GetByOrderNo(orderNo)
	if err != nil {
		return nil, err
	}
	if order == nil || order.MemberID != memberID {
		return nil, ErrNotFound
	}
	if order.Status != constants.OrderStatusPendingPayment {
		return nil, ErrOrderStateInvalid
	}
	order.Status = constants.OrderStatusFailed
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	s.notifier.Notify(fmt.Sprintf("order %s payment failed: %s", order.OrderNo, reason), constants.NotifySeverityWarning)
	return order, nil
}

// Cancel 取消待支付订单
func (s *OrderService) Cancel(memberID, orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.MemberID != memberID {
		return nil, ErrNotFound
	}
	if order.Status != constants.OrderStatusPendingPayment {
		return nil, ErrOrderStateInvalid
	}
	now := s.clk.Now()
	order.Status = constants.OrderStatusCanceled
	order.CanceledAt = &now
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

// ListMine 获取会员订单列表
func (s *OrderService) ListMine(memberID uint, page, pageSize int) ([]models.Order, int64, error) {
	return s.orderRepo.ListByMember(memberID, page, pageSize)
}

// HandleTimeoutCancel 超时取消（worker 调用），仅处理仍待支付的订单。
func (s *OrderService) HandleTimeoutCancel(orderID uint) error {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return nil
	}
	if order.Status != constants.OrderStatusPendingPayment {
		return nil
	}
	now := s.clk.Now()
	if order.ExpiresAt != nil && now.Before(*order.ExpiresAt) {
		return nil
	}
	order.Status = constants.OrderStatusCanceled
	order.CanceledAt = &now
	if err := s.orderRepo.Update(order); err != nil {
		return err
	}
	logger.Infow("order_timeout_canceled", "order_id", order.ID, "order_no", order.OrderNo)
	return nil
}
