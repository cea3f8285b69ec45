package router

import (
	"github.com/zzirit/zzirit-api/internal/config"
	adminhandlers "github.com/zzirit/zzirit-api/internal/http/handlers/admin"
	publichandlers "github.com/zzirit/zzirit-api/internal/http/handlers/public"
	"github.com/zzirit/zzirit-api/internal/logger"
	"github.com/zzirit/zzirit-api/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 静态文件服务（上传的图片）
	r.Static("/uploads", "./uploads")

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/items", publicHandler.GetItems)
			public.GET("/items/:id", publicHandler.GetItemByID)
			public.GET("/types", publicHandler.GetTypes)
			public.GET("/types/:id/brands", publicHandler.GetBrandsByType)
			public.GET("/time-deals/current", publicHandler.GetCurrentTimeDeals)
		}

		// 会员认证接口
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.MemberRegister)
			auth.POST("/login", publicHandler.MemberLogin)
		}

		// 会员接口（需鉴权）
		member := apiV1.Group("")
		member.Use(MemberJWTAuthMiddleware(cfg.MemberJWT.SecretKey, c.MemberRepo))
		{
			member.GET("/me", publicHandler.GetCurrentMember)
			member.GET("/cart", publicHandler.GetCart)
			member.POST("/cart/items", publicHandler.UpsertCartItem)
			member.PATCH("/cart/items/:item_id/increase", publicHandler.IncreaseCartItem)
			member.PATCH("/cart/items/:item_id/decrease", publicHandler.DecreaseCartItem)
			member.DELETE("/cart/items/:item_id", publicHandler.DeleteCartItem)
			member.POST("/orders", publicHandler.CreateOrder)
			member.GET("/orders", publicHandler.ListOrders)
			member.POST("/orders/:id/cancel", publicHandler.CancelOrder)
			member.POST("/payments/confirm", publicHandler.ConfirmPayment)
			member.POST("/payments/fail", publicHandler.FailPayment)
		}

		// 管理员接口
		admin := apiV1.Group("/admin")
		{
			// 登录接口（无需鉴权）
			admin.POST("/login", adminHandler.AdminLogin)

			// 需要鉴权的接口
			authorized := admin.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo))
			{
				// 商品管理
				authorized.GET("/items", adminHandler.GetAdminItems)
				authorized.GET("/items/:id", adminHandler.GetAdminItem)
				authorized.POST("/items", adminHandler.CreateItem)
				authorized.PUT("/items/:id", adminHandler.UpdateItem)
				authorized.DELETE("/items/:id", adminHandler.DeleteItem)

				// 类型/品牌管理
				authorized.POST("/types", adminHandler.CreateType)
				authorized.POST("/types/:id/brands", adminHandler.CreateBrand)

				// 限时特价管理
				authorized.GET("/time-deals", adminHandler.GetAdminTimeDeals)
				authorized.GET("/time-deals/:id", adminHandler.GetAdminTimeDeal)
				authorized.POST("/time-deals", adminHandler.CreateTimeDeal)
				authorized.DELETE("/time-deals/:id", adminHandler.DeleteTimeDeal)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
