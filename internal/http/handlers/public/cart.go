package public

import (
	"errors"

	"github.com/zzirit/zzirit-api/internal/http/response"
	"github.com/zzirit/zzirit-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CartItemRequest 购物车项请求
type CartItemRequest struct {
	ItemID   uint `json:"item_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required"`
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	memberID, ok := getMemberID(c)
	if !ok {
		return
	}

	view, err := h.CartService.List(memberID)
	if err != nil {
		respondError(c, response.CodeInternal, "购物车获取失败", err)
		return
	}
	response.Success(c, view)
}

// UpsertCartItem 添加/覆盖购物车项
func (h *Handler) UpsertCartItem(c *gin.Context) {
	memberID, ok := getMemberID(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数无效", err)
		return
	}

	cartItem, err := h.CartService.Upsert(memberID, req.ItemID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound):
			respondError(c, response.CodeNotFound, "商品不存在", nil)
		case errors.Is(err, service.ErrCartQuantityInvalid):
			respondError(c, response.CodeBadRequest, "商品库存不足", nil)
		default:
			respondError(c, response.CodeInternal, "购物车更新失败", err)
		}
		return
	}
	response.Success(c, gin.H{"item_id": cartItem.ItemID, "quantity": cartItem.Quantity})
}

// IncreaseCartItem 购物车项数量加一
func (h *Handler) IncreaseCartItem(c *gin.Context) {
	h.adjustCartItem(c, 1)
}

// DecreaseCartItem 购物车项数量减一
func (h *Handler) DecreaseCartItem(c *gin.Context) {
	h.adjustCartItem(c, -1)
}

func (h *Handler) adjustCartItem(c *gin.Context, delta int) {
	memberID, ok := getMemberID(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "item_id")
	if !ok {
		return
	}

	adjust := h.CartService.Decrease
	if delta > 0 {
		adjust = h.CartService.Increase
	}
	cartItem, err := adjust(memberID, itemID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "购物车项不存在", nil)
		case errors.Is(err, service.ErrItemNotFound):
			respondError(c, response.CodeNotFound, "商品不存在", nil)
		default:
			respondError(c, response.CodeInternal, "购物车更新失败", err)
		}
		return
	}
	response.Success(c, gin.H{"item_id": cartItem.ItemID, "quantity": cartItem.Quantity})
}

// DeleteCartItem 删除购物车项
func (h *Handler) DeleteCartItem(c *gin.Context) {
	memberID, ok := getMemberID(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "item_id")
	if !ok {
		return
	}

	if err := h.CartService.Remove(memberID, itemID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "购物车项不存在", nil)
		default:
			respondError(c, response.CodeInternal, "购物车更新失败", err)
		}
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
