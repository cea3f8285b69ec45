package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/zzirit/zzirit-api/internal/http/response"
	"github.com/zzirit/zzirit-api/internal/service"

	"github.com/gin-gonic/gin"
)

// TimeDealLineRequest 限时特价行请求
type TimeDealLineRequest struct {
	ItemID   uint `json:"item_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required"`
}

// CreateTimeDealRequest 创建限时特价请求
type CreateTimeDealRequest struct {
	Title         string                `json:"title" binding:"required"`
	DiscountRatio int                   `json:"discount_ratio" binding:"required"`
	StartTime     string                `json:"start_time" binding:"required"`
	EndTime       string                `json:"end_time" binding:"required"`
	Items         []TimeDealLineRequest `json:"items" binding:"required"`
}

// CreateTimeDeal 创建限时特价活动
func (h *Handler) CreateTimeDeal(c *gin.Context) {
	var req CreateTimeDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数无效", err)
		return
	}

	startTime, err := parseTime(req.StartTime)
	if err != nil {
		respondError(c, response.CodeBadRequest, "开始时间格式无效", err)
		return
	}
	endTime, err := parseTime(req.EndTime)
	if err != nil {
		respondError(c, response.CodeBadRequest, "结束时间格式无效", err)
		return
	}

	lines := make([]service.TimeDealLineInput, 0, len(req.Items))
	for _, line := range req.Items {
		lines = append(lines, service.TimeDealLineInput{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
		})
	}

	deal, err := h.TimeDealAdminService.Create(service.CreateTimeDealInput{
		Title:         req.Title,
		DiscountRatio: req.DiscountRatio,
		StartTime:     startTime,
		EndTime:       endTime,
		Lines:         lines,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDealTitleInvalid):
			respondError(c, response.CodeBadRequest, "活动标题不能为空", nil)
		case errors.Is(err, service.ErrDealRatioInvalid):
			respondError(c, response.CodeBadRequest, "折扣率必须在 1 到 99 之间", nil)
		case errors.Is(err, service.ErrDealWindowInvalid):
			respondError(c, response.CodeBadRequest, "结束时间必须晚于开始时间", nil)
		case errors.Is(err, service.ErrDealItemsEmpty):
			respondError(c, response.CodeBadRequest, "活动商品不能为空", nil)
		case errors.Is(err, service.ErrItemNotFound):
			respondError(c, response.CodeBadRequest, "活动包含不存在的商品", nil)
		case errors.Is(err, service.ErrDealQuantityExceedsStock):
			respondError(c, response.CodeBadRequest, "活动数量超出商品库存", nil)
		default:
			respondError(c, response.CodeInternal, "限时特价创建失败", err)
		}
		return
	}
	response.Success(c, deal)
}

// GetAdminTimeDeals 获取限时特价列表 (Admin)
func (h *Handler) GetAdminTimeDeals(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	page, pageSize = normalizePagination(page, pageSize)

	status := strings.ToUpper(strings.TrimSpace(c.Query("status")))
	searchField := strings.TrimSpace(c.Query("search_field"))
	query := strings.TrimSpace(c.Query("query"))

	deals, total, err := h.TimeDealAdminService.List(status, searchField, query, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "限时特价列表获取失败", err)
		return
	}
	response.SuccessWithPage(c, gin.H{"time_deals": deals}, response.BuildPagination(page, pageSize, total))
}

// GetAdminTimeDeal 获取限时特价详情 (Admin)
func (h *Handler) GetAdminTimeDeal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.TimeDealService.GetView(id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "限时特价不存在", nil)
		default:
			respondError(c, response.CodeInternal, "限时特价获取失败", err)
		}
		return
	}
	response.Success(c, view)
}

// DeleteTimeDeal 删除限时特价活动
func (h *Handler) DeleteTimeDeal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.TimeDealAdminService.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "限时特价不存在", nil)
		default:
			respondError(c, response.CodeInternal, "限时特价删除失败", err)
		}
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
