package service

import "errors"

// 业务哨兵错误，handler 层通过 errors.Is 匹配后映射为响应码。
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already registered")

	ErrDealTitleInvalid         = errors.New("time deal title invalid")
	ErrDealRatioInvalid         = errors.New("time deal discount ratio invalid")
	ErrDealWindowInvalid        = errors.New("time deal window invalid")
	ErrDealItemsEmpty           = errors.New("time deal items empty")
	ErrItemNotFound             = errors.New("item not found")
	ErrDealQuantityExceedsStock = errors.New("time deal quantity exceeds stock")

	ErrItemNameInvalid     = errors.New("item name invalid")
	ErrItemPriceInvalid    = errors.New("item price invalid")
	ErrItemStockInvalid    = errors.New("item stock invalid")
	ErrTypeNotFound        = errors.New("item type not found")
	ErrBrandNotFound       = errors.New("brand not found")
	ErrCartQuantityInvalid = errors.New("cart quantity invalid")
	ErrCartEmpty           = errors.New("cart is empty")

	ErrOrderAmountMismatch = errors.New("order amount mismatch")
	ErrOrderStateInvalid   = errors.New("order state invalid")
	ErrPaymentRejected     = errors.New("payment rejected")
	ErrQueueUnavailable    = errors.New("queue unavailable")
)
