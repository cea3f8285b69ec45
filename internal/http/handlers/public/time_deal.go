package public

import (
	"github.com/zzirit/zzirit-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetCurrentTimeDeals 获取当前进行中的限时特价商品
func (h *Handler) GetCurrentTimeDeals(c *gin.Context) {
	items, err := h.TimeDealService.CurrentDealItems(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "限时特价获取失败", err)
		return
	}
	response.Success(c, gin.H{"items": items})
}
