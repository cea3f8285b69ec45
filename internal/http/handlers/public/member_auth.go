package public

import (
	"errors"

	"github.com/zzirit/zzirit-api/internal/http/response"
	"github.com/zzirit/zzirit-api/internal/service"

	"github.com/gin-gonic/gin"
)

// MemberRegisterRequest 会员注册请求
type MemberRegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

// MemberRegister 会员注册
func (h *Handler) MemberRegister(c *gin.Context) {
	var req MemberRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数无效", err)
		return
	}

	member, err := h.MemberAuthService.Register(req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailExists):
			respondError(c, response.CodeBadRequest, "邮箱已被注册", nil)
		default:
			respondError(c, response.CodeInternal, "注册失败", err)
		}
		return
	}

	response.Success(c, gin.H{
		"member": gin.H{
			"id":    member.ID,
			"email": member.Email,
			"name":  member.Name,
		},
	})
}

// MemberLoginRequest 会员登录请求
type MemberLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// MemberLogin 会员登录
func (h *Handler) MemberLogin(c *gin.Context) {
	var req MemberLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数无效", err)
		return
	}

	member, token, expiresAt, err := h.MemberAuthService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			respondError(c, response.CodeUnauthorized, "邮箱或密码错误", nil)
		default:
			respondError(c, response.CodeInternal, "登录失败", err)
		}
		return
	}

	response.Success(c, gin.H{
		"member": gin.H{
			"id":    member.ID,
			"email": member.Email,
			"name":  member.Name,
		},
		"token":      token,
		"expires_at": expiresAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// GetCurrentMember 获取当前会员信息
func (h *Handler) GetCurrentMember(c *gin.Context) {
	id, ok := getMemberID(c)
	if !ok {
		return
	}

	member, err := h.MemberAuthService.GetMe(id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "会员不存在", nil)
		default:
			respondError(c, response.CodeInternal, "会员信息获取失败", err)
		}
		return
	}
	response.Success(c, gin.H{
		"id":            member.ID,
		"email":         member.Email,
		"name":          member.Name,
		"last_login_at": member.LastLoginAt,
		"created_at":    member.CreatedAt,
	})
}
