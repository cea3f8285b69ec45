package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/zzirit/zzirit-api/internal/config"
	"github.com/zzirit/zzirit-api/internal/models"
	"github.com/zzirit/zzirit-api/internal/repository"
	"github.com/zzirit/zzirit-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newAuthTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}, &models.Member{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func TestJWTAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newAuthTestDB(t)
	adminRepo := repository.NewAdminRepository(db)

	cfg := &config.Config{JWT: config.JWTConfig{
		SecretKey:   "middleware-admin-secret-0123456789abcdef",
		ExpireHours: 1,
	}}
	authService := service.NewAuthService(cfg, adminRepo)

	admin := models.Admin{Username: "middleware-admin", PasswordHash: "unused"}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("create admin failed: %v", err)
	}
	token, _, err := authService.GenerateJWT(&admin)
	if err != nil {
		t.Fatalf("generate jwt failed: %v", err)
	}

	r := gin.New()
	r.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, adminRepo))
	r.GET("/secure", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("username"))
	})

	cases := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"缺少头", "", http.StatusUnauthorized},
		{"格式错误", "Token " + token, http.StatusUnauthorized},
		{"伪造 token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"有效 token", "Bearer " + token, http.StatusOK},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		if tc.authHeader != "" {
			req.Header.Set("Authorization", tc.authHeader)
		}
		r.ServeHTTP(w, req)
		if w.Code != tc.wantStatus {
			t.Fatalf("%s: expected status %d, got %d", tc.name, tc.wantStatus, w.Code)
		}
		if tc.wantStatus == http.StatusOK && w.Body.String() != admin.Username {
			t.Fatalf("expected username in context, got %q", w.Body.String())
		}
	}

	// 已删除的管理员不再通过鉴权
	if err := db.Delete(&models.Admin{}, admin.ID).Error; err != nil {
		t.Fatalf("delete admin failed: %v", err)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for removed admin, got %d", w.Code)
	}
}

func TestMemberJWTAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newAuthTestDB(t)
	memberRepo := repository.NewMemberRepository(db)

	cfg := &config.Config{MemberJWT: config.JWTConfig{
		SecretKey:   "middleware-member-secret-0123456789abcdef",
		ExpireHours: 1,
	}}
	memberAuth := service.NewMemberAuthService(cfg, memberRepo)

	member := models.Member{Email: "middleware-member@zzirit.shop", PasswordHash: "unused", Name: "미들웨어 회원"}
	if err := db.Create(&member).Error; err != nil {
		t.Fatalf("create member failed: %v", err)
	}
	token, _, err := memberAuth.GenerateJWT(&member)
	if err != nil {
		t.Fatalf("generate jwt failed: %v", err)
	}

	r := gin.New()
	r.Use(MemberJWTAuthMiddleware(cfg.MemberJWT.SecretKey, memberRepo))
	r.GET("/me", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("member_email"))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || w.Body.String() != member.Email {
		t.Fatalf("expected member email, got status=%d body=%q", w.Code, w.Body.String())
	}

	// 管理员密钥签发的 token 不可访问会员接口
	adminCfg := &config.Config{JWT: config.JWTConfig{
		SecretKey:   "middleware-admin-secret-0123456789abcdef",
		ExpireHours: 1,
	}}
	adminToken, _, err := service.NewAuthService(adminCfg, nil).GenerateJWT(&models.Admin{ID: member.ID, Username: "sneaky"})
	if err != nil {
		t.Fatalf("generate admin jwt failed: %v", err)
	}
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for cross-audience token, got %d", w.Code)
	}
}
