package public

import (
	"errors"
	"strconv"
	"strings"

	handlershared "github.com/zzirit/zzirit-api/internal/http/handlers/shared"
	"github.com/zzirit/zzirit-api/internal/http/response"
	"github.com/zzirit/zzirit-api/internal/repository"
	"github.com/zzirit/zzirit-api/internal/service"

	"github.com/gin-gonic/gin"
)

// GetItems 获取商品列表（支持类型/品牌筛选、关键字搜索、排序）
func (h *Handler) GetItems(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	filter := repository.ItemListFilter{
		TypeIDs:  parseUintList(c.Query("type_ids")),
		BrandIDs: parseUintList(c.Query("brand_ids")),
		Keyword:  strings.TrimSpace(c.Query("keyword")),
		Sort:     strings.TrimSpace(c.Query("sort")),
		Page:     page,
		PageSize: pageSize,
	}

	items, total, err := h.ItemService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "商品列表获取失败", err)
		return
	}
	response.SuccessWithPage(c, gin.H{"items": items}, response.BuildPagination(page, pageSize, total))
}

// GetItemByID 获取商品详情（叠加进行中限时特价）
func (h *Handler) GetItemByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.ItemService.GetDetail(id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "商品不存在", nil)
		default:
			respondError(c, response.CodeInternal, "商品详情获取失败", err)
		}
		return
	}
	response.Success(c, detail)
}

// GetTypes 获取全部商品类型
func (h *Handler) GetTypes(c *gin.Context) {
	types, err := h.ItemService.ListTypes()
	if err != nil {
		respondError(c, response.CodeInternal, "商品类型获取失败", err)
		return
	}
	response.Success(c, gin.H{"types": types})
}

// GetBrandsByType 获取类型下的品牌列表
func (h *Handler) GetBrandsByType(c *gin.Context) {
	typeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	brands, err := h.ItemService.ListBrandsByType(typeID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTypeNotFound):
			respondError(c, response.CodeNotFound, "商品类型不存在", nil)
		default:
			respondError(c, response.CodeInternal, "品牌列表获取失败", err)
		}
		return
	}
	response.Success(c, gin.H{"brands": brands})
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "路径参数无效", nil)
		return 0, false
	}
	return uint(id), true
}

func parseUintList(raw string) []uint {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	result := make([]uint, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil || value == 0 {
			continue
		}
		result = append(result, uint(value))
	}
	return result
}
