package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/zzirit/zzirit-api/internal/http/response"
	"github.com/zzirit/zzirit-api/internal/models"
	"github.com/zzirit/zzirit-api/internal/repository"
	"github.com/zzirit/zzirit-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ItemRequest 商品创建/更新请求
type ItemRequest struct {
	Name          string `json:"name" binding:"required"`
	TypeID        uint   `json:"type_id" binding:"required"`
	BrandID       uint   `json:"brand_id" binding:"required"`
	Price         int64  `json:"price"`
	StockQuantity int    `json:"stock_quantity"`
	ImageURL      string `json:"image_url"`
}

func (r ItemRequest) toInput() service.UpsertItemInput {
	return service.UpsertItemInput{
		Name:          r.Name,
		TypeID:        r.TypeID,
		BrandID:       r.BrandID,
		Price:         models.NewMoneyFromInt(r.Price),
		StockQuantity: r.StockQuantity,
		ImageURL:      r.ImageURL,
	}
}

func respondItemError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "商品不存在", nil)
	case errors.Is(err, service.ErrItemNameInvalid):
		respondError(c, response.CodeBadRequest, "商品名称无效", nil)
	case errors.Is(err, service.ErrItemPriceInvalid):
		respondError(c, response.CodeBadRequest, "商品价格无效", nil)
	case errors.Is(err, service.ErrItemStockInvalid):
		respondError(c, response.CodeBadRequest, "商品库存无效", nil)
	case errors.Is(err, service.ErrTypeNotFound):
		respondError(c, response.CodeBadRequest, "商品类型不存在", nil)
	case errors.Is(err, service.ErrBrandNotFound):
		respondError(c, response.CodeBadRequest, "品牌不存在或不属于该类型", nil)
	default:
		respondError(c, response.CodeInternal, fallback, err)
	}
}

// GetAdminItems 获取商品列表 (Admin)
func (h *Handler) GetAdminItems(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	page, pageSize = normalizePagination(page, pageSize)

	items, total, err := h.ItemService.List(repository.ItemListFilter{
		Keyword:  strings.TrimSpace(c.Query("keyword")),
		Sort:     strings.TrimSpace(c.Query("sort")),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "商品列表获取失败", err)
		return
	}
	response.SuccessWithPage(c, gin.H{"items": items}, response.BuildPagination(page, pageSize, total))
}

// GetAdminItem 获取商品详情 (Admin)
func (h *Handler) GetAdminItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.ItemService.GetDetail(id)
	if err != nil {
		respondItemError(c, err, "商品详情获取失败")
		return
	}
	response.Success(c, detail)
}

// CreateItem 创建商品
func (h *Handler) CreateItem(c *gin.Context) {
	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数无效", err)
		return
	}

	item, err := h.ItemService.Create(req.toInput())
	if err != nil {
		respondItemError(c, err, "商品创建失败")
		return
	}
	response.Success(c, item)
}

// UpdateItem 更新商品
func (h *Handler) UpdateItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数无效", err)
		return
	}

	item, err := h.ItemService.Update(id, req.toInput())
	if err != nil {
		respondItemError(c, err, "商品更新失败")
		return
	}
	response.Success(c, item)
}

// DeleteItem 删除商品
func (h *Handler) DeleteItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.ItemService.Delete(id); err != nil {
		respondItemError(c, err, "商品删除失败")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
