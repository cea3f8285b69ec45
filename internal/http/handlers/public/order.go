package public

import (
	"errors"
	"strconv"

	handlershared "github.com/zzirit/zzirit-api/internal/http/handlers/shared"
	"github.com/zzirit/zzirit-api/internal/http/response"
	"github.com/zzirit/zzirit-api/internal/models"
	"github.com/zzirit/zzirit-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateOrder 从购物车创建待支付订单
func (h *Handler) CreateOrder(c *gin.Context) {
	memberID, ok := getMemberID(c)
	if !ok {
		return
	}

	order, err := h.OrderService.InitOrder(memberID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCartEmpty):
			respondError(c, response.CodeBadRequest, "购物车为空", nil)
		default:
			respondError(c, response.CodeInternal, "订单创建失败", err)
		}
		return
	}
	response.Success(c, gin.H{
		"order_no":     order.OrderNo,
		"total_amount": order.TotalAmount,
		"currency":     order.Currency,
		"expires_at":   order.ExpiresAt,
	})
}

// ConfirmPaymentRequest 支付确认请求
type ConfirmPaymentRequest struct {
	OrderNo    string `json:"order_no" binding:"required"`
	PaymentKey string `json:"payment_key" binding:"required"`
	Amount     int64  `json:"amount" binding:"required"`
}

// ConfirmPayment 确认支付（金额校验后调用支付网关）
func (h *Handler) ConfirmPayment(c *gin.Context) {
	memberID, ok := getMemberID(c)
	if !ok {
		return
	}
	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数无效", err)
		return
	}

	order, err := h.OrderService.Confirm(c.Request.Context(), memberID, req.OrderNo, req.PaymentKey, models.NewMoneyFromInt(req.Amount))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "订单不存在", nil)
		case errors.Is(err, service.ErrOrderStateInvalid):
			respondError(c, response.CodeBadRequest, "订单状态不允许支付", nil)
		case errors.Is(err, service.ErrOrderAmountMismatch):
			respondError(c, response.CodeBadRequest, "支付金额与订单金额不一致", nil)
		case errors.Is(err, service.ErrPaymentRejected):
			respondError(c, response.CodeBadRequest, "支付网关拒绝了该笔支付", err)
		default:
			respondError(c, response.CodeInternal, "支付确认失败", err)
		}
		return
	}
	response.Success(c, gin.H{
		"order_no": order.OrderNo,
		"status":   order.Status,
		"paid_at":  order.PaidAt,
	})
}

// FailPaymentRequest 支付失败上报请求
type FailPaymentRequest struct {
	OrderNo string `json:"order_no" binding:"required"`
	Reason  string `json:"reason"`
}

// FailPayment 上报支付失败
func (h *Handler) FailPayment(c *gin.Context) {
	memberID, ok := getMemberID(c)
	if !ok {
		return
	}
	var req FailPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数无效", err)
		return
	}

	order, err := h.OrderService.Fail(memberID, req.OrderNo, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "订单不存在", nil)
		case errors.Is(err, service.ErrOrderStateInvalid):
			respondError(c, response.CodeBadRequest, "订单状态不允许变更", nil)
		default:
			respondError(c, response.CodeInternal, "支付状态更新失败", err)
		}
		return
	}
	response.Success(c, gin.H{"order_no": order.OrderNo, "status": order.Status})
}

// CancelOrder 取消待支付订单
func (h *Handler) CancelOrder(c *gin.Context) {
	memberID, ok := getMemberID(c)
	if !ok {
		return
	}
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.OrderService.Cancel(memberID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "订单不存在", nil)
		case errors.Is(err, service.ErrOrderStateInvalid):
			respondError(c, response.CodeBadRequest, "订单状态不允许取消", nil)
		default:
			respondError(c, response.CodeInternal, "订单取消失败", err)
		}
		return
	}
	response.Success(c, gin.H{"order_no": order.OrderNo, "status": order.Status})
}

// ListOrders 获取当前会员订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	memberID, ok := getMemberID(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	orders, total, err := h.OrderService.ListMine(memberID, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "订单列表获取失败", err)
		return
	}
	response.SuccessWithPage(c, gin.H{"orders": orders}, response.BuildPagination(page, pageSize, total))
}
