package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/zzirit/zzirit-api/internal/clock"
	"github.com/zzirit/zzirit-api/internal/constants"
	"github.com/zzirit/zzirit-api/internal/models"
	"github.com/zzirit/zzirit-api/internal/payment/toss"
	"github.com/zzirit/zzirit-api/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type stubGateway struct {
	confirmErr   error
	confirmCalls int
	lastAmount   decimal.Decimal
}

func (g *stubGateway) Confirm(ctx context.Context, paymentKey, orderNo string, amount decimal.Decimal) (*toss.ConfirmResult, error) {
	g.confirmCalls++
	g.lastAmount = amount
	if g.confirmErr != nil {
		return nil, g.confirmErr
	}
	return &toss.ConfirmResult{PaymentKey: paymentKey, OrderNo: orderNo, Status: "DONE"}, nil
}

func (g *stubGateway) Cancel(ctx context.Context, paymentKey, reason string) error {
	return nil
}

type orderFixture struct {
	db       *gorm.DB
	clk      *clock.FixedClock
	gateway  *stubGateway
	itemRepo repository.ItemRepository
	cart     *CartService
	orders   *OrderService
}

func newOrderFixture(t *testing.T, base time.Time) *orderFixture {
	t.Helper()

	db := newTestDB(t)
	clk := clock.NewFixed(base)
	orderRepo := repository.NewOrderRepository(db)
	cartRepo := repository.NewCartRepository(db)
	itemRepo := repository.NewItemRepository(db)
	dealService := NewTimeDealService(repository.NewTimeDealRepository(db), clk)
	cartService := NewCartService(cartRepo, itemRepo, dealService)
	gateway := &stubGateway{}
	orders := NewOrderService(orderRepo, cartRepo, itemRepo, cartService, gateway, nil, nil, clk, 30)
	return &orderFixture{
		db:       db,
		clk:      clk,
		gateway:  gateway,
		itemRepo: itemRepo,
		cart:     cartService,
		orders:   orders,
	}
}

func TestInitOrder_SnapshotsCart(t *testing.T) {
	base := time.Date(2028, 2, 1, 10, 0, 0, 0, time.UTC)
	f := newOrderFixture(t, base)
	item := createTestItem(t, f.db, "주문 생성 상품", 12000, 10)
	memberID := uint(4001)

	if _, err := f.orders.InitOrder(memberID); !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}

	if _, err := f.cart.Upsert(memberID, item.ID, 3); err != nil {
		t.Fatalf("upsert cart failed: %v", err)
	}

	order, err := f.orders.InitOrder(memberID)
	if err != nil {
		t.Fatalf("init order failed: %v", err)
	}
	if order.OrderNo == "" {
		t.Fatalf("expected order no assigned")
	}
	if order.Status != constants.OrderStatusPendingPayment {
		t.Fatalf("expected pending_payment, got %s", order.Status)
	}
	if order.Currency != constants.SiteCurrencyDefault {
		t.Fatalf("expected KRW, got %s", order.Currency)
	}
	if order.TotalAmount.String() != "36000" {
		t.Fatalf("expected total 36000, got %s", order.TotalAmount.String())
	}
	if order.ExpiresAt == nil || !order.ExpiresAt.Equal(base.Add(30*time.Minute)) {
		t.Fatalf("expected expiry at base+30m, got %v", order.ExpiresAt)
	}
	if len(order.Items) != 1 {
		t.Fatalf("expected 1 order item, got %d", len(order.Items))
	}
	line := order.Items[0]
	if line.ItemName != item.Name || line.Quantity != 3 || line.UnitPrice.String() != "12000" {
		t.Fatalf("unexpected order item snapshot: %+v", line)
	}
}

func TestConfirm_PaysOrderAndClearsCart(t *testing.T) {
	base := time.Date(2028, 2, 2, 10, 0, 0, 0, time.UTC)
	f := newOrderFixture(t, base)
	item := createTestItem(t, f.db, "주문 결제 상품", 20000, 10)
	memberID := uint(4002)

	if _, err := f.cart.Upsert(memberID, item.ID, 2); err != nil {
		t.Fatalf("upsert cart failed: %v", err)
	}
	order, err := f.orders.InitOrder(memberID)
	if err != nil {
		t.Fatalf("init order failed: %v", err)
	}

	ctx := context.Background()

	if _, err := f.orders.Confirm(ctx, memberID, "없는-주문", "pay-key", order.TotalAmount); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := f.orders.Confirm(ctx, memberID, order.OrderNo, "pay-key", models.NewMoneyFromInt(39999)); !errors.Is(err, ErrOrderAmountMismatch) {
		t.Fatalf("expected ErrOrderAmountMismatch, got %v", err)
	}
	if f.gateway.confirmCalls != 0 {
		t.Fatalf("gateway must not be called before validation passes")
	}

	paid, err := f.orders.Confirm(ctx, memberID, order.OrderNo, "pay-key", order.TotalAmount)
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if paid.Status != constants.OrderStatusPaid {
		t.Fatalf("expected paid, got %s", paid.Status)
	}
	if paid.PaymentKey != "pay-key" || paid.PaidAt == nil {
		t.Fatalf("expected payment key and paid_at set, got %+v", paid)
	}
	if f.gateway.confirmCalls != 1 || !f.gateway.lastAmount.Equal(decimal.NewFromInt(40000)) {
		t.Fatalf("expected gateway called with 40000, calls=%d amount=%s", f.gateway.confirmCalls, f.gateway.lastAmount.String())
	}

	refreshed, err := f.itemRepo.GetByID(item.ID)
	if err != nil {
		t.Fatalf("reload item failed: %v", err)
	}
	if refreshed.StockQuantity != 8 {
		t.Fatalf("expected stock 8 after payment, got %d", refreshed.StockQuantity)
	}

	view, err := f.cart.List(memberID)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(view.Lines) != 0 {
		t.Fatalf("expected cart cleared after payment, got %d lines", len(view.Lines))
	}

	// 已支付订单不可重复确认
	if _, err := f.orders.Confirm(ctx, memberID, order.OrderNo, "pay-key-2", order.TotalAmount); !errors.Is(err, ErrOrderStateInvalid) {
		t.Fatalf("expected ErrOrderStateInvalid, got %v", err)
	}
}

func TestConfirm_GatewayRejection(t *testing.T) {
	base := time.Date(2028, 2, 3, 10, 0, 0, 0, time.UTC)
	f := newOrderFixture(t, base)
	item := createTestItem(t, f.db, "주문 거절 상품", 30000, 5)
	memberID := uint(4003)

	if _, err := f.cart.Upsert(memberID, item.ID, 1); err != nil {
		t.Fatalf("upsert cart failed: %v", err)
	}
	order, err := f.orders.InitOrder(memberID)
	if err != nil {
		t.Fatalf("init order failed: %v", err)
	}

	f.gateway.confirmErr = errors.New("card declined")
	if _, err := f.orders.Confirm(context.Background(), memberID, order.OrderNo, "pay-key", order.TotalAmount); !errors.Is(err, ErrPaymentRejected) {
		t.Fatalf("expected ErrPaymentRejected, got %v", err)
	}

	reloaded, _, err := f.orders.ListMine(memberID, 1, 10)
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if len(reloaded) != 1 || reloaded[0].Status != constants.OrderStatusPendingPayment {
		t.Fatalf("expected order to stay pending after rejection, got %+v", reloaded)
	}

	refreshed, err := f.itemRepo.GetByID(item.ID)
	if err != nil {
		t.Fatalf("reload item failed: %v", err)
	}
	if refreshed.StockQuantity != 5 {
		t.Fatalf("expected stock untouched after rejection, got %d", refreshed.StockQuantity)
	}
}

func TestFailAndCancel(t *testing.T) {
	base := time.Date(2028, 2, 4, 10, 0, 0, 0, time.UTC)
	f := newOrderFixture(t, base)
	item := createTestItem(t, f.db, "주문 실패 상품", 10000, 10)
	memberID := uint(4004)

	if _, err := f.cart.Upsert(memberID, item.ID, 1); err != nil {
		t.Fatalf("upsert cart failed: %v", err)
	}
	first, err := f.orders.InitOrder(memberID)
	if err != nil {
		t.Fatalf("init first order failed: %v", err)
	}

	failed, err := f.orders.Fail(memberID, first.OrderNo, "사용자 취소")
	if err != nil {
		t.Fatalf("fail order failed: %v", err)
	}
	if failed.Status != constants.OrderStatusFailed {
		t.Fatalf("expected failed, got %s", failed.Status)
	}
	if _, err := f.orders.Fail(memberID, first.OrderNo, "중복"); !errors.Is(err, ErrOrderStateInvalid) {
		t.Fatalf("expected ErrOrderStateInvalid, got %v", err)
	}

	if _, err := f.cart.Upsert(memberID, item.ID, 1); err != nil {
		t.Fatalf("upsert cart again failed: %v", err)
	}
	second, err := f.orders.InitOrder(memberID)
	if err != nil {
		t.Fatalf("init second order failed: %v", err)
	}

	if _, err := f.orders.Cancel(uint(999999), second.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for other member, got %v", err)
	}
	canceled, err := f.orders.Cancel(memberID, second.ID)
	if err != nil {
		t.Fatalf("cancel order failed: %v", err)
	}
	if canceled.Status != constants.OrderStatusCanceled || canceled.CanceledAt == nil {
		t.Fatalf("expected canceled with timestamp, got %+v", canceled)
	}
	if _, err := f.orders.Cancel(memberID, second.ID); !errors.Is(err, ErrOrderStateInvalid) {
		t.Fatalf("expected ErrOrderStateInvalid on repeat cancel, got %v", err)
	}
}

func TestHandleTimeoutCancel(t *testing.T) {
	base := time.Date(2028, 2, 5, 10, 0, 0, 0, time.UTC)
	f := newOrderFixture(t, base)
	item := createTestItem(t, f.db, "주문 만료 상품", 10000, 10)
	memberID := uint(4005)

	if _, err := f.cart.Upsert(memberID, item.ID, 1); err != nil {
		t.Fatalf("upsert cart failed: %v", err)
	}
	order, err := f.orders.InitOrder(memberID)
	if err != nil {
		t.Fatalf("init order failed: %v", err)
	}

	// 未到期不处理
	if err := f.orders.HandleTimeoutCancel(order.ID); err != nil {
		t.Fatalf("timeout cancel before expiry failed: %v", err)
	}
	pending, _, err := f.orders.ListMine(memberID, 1, 10)
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if pending[0].Status != constants.OrderStatusPendingPayment {
		t.Fatalf("expected still pending, got %s", pending[0].Status)
	}

	f.clk.Advance(31 * time.Minute)
	if err := f.orders.HandleTimeoutCancel(order.ID); err != nil {
		t.Fatalf("timeout cancel after expiry failed: %v", err)
	}
	expired, _, err := f.orders.ListMine(memberID, 1, 10)
	if err != nil {
		t.Fatalf("list orders after expiry failed: %v", err)
	}
	if expired[0].Status != constants.OrderStatusCanceled {
		t.Fatalf("expected canceled after expiry, got %s", expired[0].Status)
	}

	// 不存在的订单与已终态订单均为空操作
	if err := f.orders.HandleTimeoutCancel(999999); err != nil {
		t.Fatalf("timeout cancel on missing order failed: %v", err)
	}
	if err := f.orders.HandleTimeoutCancel(order.ID); err != nil {
		t.Fatalf("timeout cancel on canceled order failed: %v", err)
	}
}
