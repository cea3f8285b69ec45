package admin

import (
	"errors"

	"github.com/zzirit/zzirit-api/internal/http/response"
	"github.com/zzirit/zzirit-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateTypeRequest 创建商品类型请求
type CreateTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateType 创建商品类型
func (h *Handler) CreateType(c *gin.Context) {
	var req CreateTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数无效", err)
		return
	}

	itemType, err := h.ItemService.CreateType(req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNameInvalid):
			respondError(c, response.CodeBadRequest, "类型名称无效", nil)
		default:
			respondError(c, response.CodeInternal, "商品类型创建失败", err)
		}
		return
	}
	response.Success(c, itemType)
}

// CreateBrandRequest 创建品牌请求
type CreateBrandRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateBrand 在类型下创建品牌
func (h *Handler) CreateBrand(c *gin.Context) {
	typeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数无效", err)
		return
	}

	brand, err := h.ItemService.CreateBrand(typeID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNameInvalid):
			respondError(c, response.CodeBadRequest, "品牌名称无效", nil)
		case errors.Is(err, service.ErrTypeNotFound):
			respondError(c, response.CodeNotFound, "商品类型不存在", nil)
		default:
			respondError(c, response.CodeInternal, "品牌创建失败", err)
		}
		return
	}
	response.Success(c, brand)
}
