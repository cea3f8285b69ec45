package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/zzirit/zzirit-api/internal/config"

	"github.com/gin-gonic/gin"
)

func newCORSRouter(cfg config.CORSConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware(cfg))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func TestCORSMiddleware_AllowedOrigin(t *testing.T) {
	r := newCORSRouter(config.CORSConfig{
		AllowedOrigins:   []string{"https://zzirit.shop"},
		AllowCredentials: true,
		MaxAge:           600,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://zzirit.shop")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://zzirit.shop" {
		t.Fatalf("expected allowed origin echoed, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Fatalf("expected credentials header, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Max-Age"); got != "600" {
		t.Fatalf("expected max age 600, got %q", got)
	}
}

func TestCORSMiddleware_DisallowedOrigin(t *testing.T) {
	r := newCORSRouter(config.CORSConfig{
		AllowedOrigins: []string{"https://zzirit.shop"},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example")
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no allow-origin header, got %q", got)
	}
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	r := newCORSRouter(config.CORSConfig{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://zzirit.shop")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard origin by default, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); got == "" {
		t.Fatalf("expected methods header on preflight")
	}
}

func TestResolveAllowedOrigin(t *testing.T) {
	cases := []struct {
		name             string
		origin           string
		allowed          []string
		allowCredentials bool
		want             string
	}{
		{"通配符", "https://a.example", []string{"*"}, false, "*"},
		{"通配符带凭证回显来源", "https://a.example", []string{"*"}, true, "https://a.example"},
		{"精确匹配", "https://zzirit.shop", []string{"https://zzirit.shop"}, false, "https://zzirit.shop"},
		{"大小写不敏感", "https://ZZIRIT.shop", []string{"https://zzirit.shop"}, false, "https://ZZIRIT.shop"},
		{"不匹配", "https://evil.example", []string{"https://zzirit.shop"}, false, ""},
		{"空来源", "", []string{"https://zzirit.shop"}, false, ""},
		{"空白名单", "https://zzirit.shop", nil, false, ""},
	}
	for _, tc := range cases {
		if got := resolveAllowedOrigin(tc.origin, tc.allowed, tc.allowCredentials); got != tc.want {
			t.Fatalf("%s: resolveAllowedOrigin = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(requestIDKey))
	})

	// 未携带请求 ID 时自动生成
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := w.Header().Get(requestIDHeader)
	if generated == "" || w.Body.String() != generated {
		t.Fatalf("expected generated request id in header and context, header=%q body=%q", generated, w.Body.String())
	}

	// 透传客户端请求 ID
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-fixed-id")
	r.ServeHTTP(w, req)
	if got := w.Header().Get(requestIDHeader); got != "req-fixed-id" {
		t.Fatalf("expected request id passthrough, got %q", got)
	}
}
