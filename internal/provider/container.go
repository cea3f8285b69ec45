package provider

import (
	"github.com/zzirit/zzirit-api/internal/cache"
	"github.com/zzirit/zzirit-api/internal/clock"
	"github.com/zzirit/zzirit-api/internal/config"
	"github.com/zzirit/zzirit-api/internal/logger"
	"github.com/zzirit/zzirit-api/internal/models"
	"github.com/zzirit/zzirit-api/internal/payment/toss"
	"github.com/zzirit/zzirit-api/internal/queue"
	"github.com/zzirit/zzirit-api/internal/repository"
	"github.com/zzirit/zzirit-api/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client
	Clock       clock.Clock

	// Repositories
	AdminRepo    repository.AdminRepository
	MemberRepo   repository.MemberRepository
	TaxonomyRepo repository.TaxonomyRepository
	ItemRepo     repository.ItemRepository
	TimeDealRepo repository.TimeDealRepository
	CartRepo     repository.CartRepository
	OrderRepo    repository.OrderRepository

	// Services
	AuthService          *service.AuthService
	MemberAuthService    *service.MemberAuthService
	ItemService          *service.ItemService
	TimeDealService      *service.TimeDealService
	TimeDealAdminService *service.TimeDealAdminService
	CartService          *service.CartService
	OrderService         *service.OrderService
	Notifier             service.Notifier
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
		Clock:       clock.NewSystem(),
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.MemberRepo = repository.NewMemberRepository(db)
	c.TaxonomyRepo = repository.NewTaxonomyRepository(db)
	c.ItemRepo = repository.NewItemRepository(db)
	c.TimeDealRepo = repository.NewTimeDealRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
}

func (c *Container) initServices() {
	c.Notifier = service.NewLogNotifier()
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.MemberAuthService = service.NewMemberAuthService(c.Config, c.MemberRepo)
	c.TimeDealService = service.NewTimeDealService(c.TimeDealRepo, c.Clock)
	c.TimeDealAdminService = service.NewTimeDealAdminService(c.TimeDealRepo, c.ItemRepo, c.TimeDealService, c.QueueClient, c.Clock)
	c.ItemService = service.NewItemService(c.ItemRepo, c.TaxonomyRepo, c.TimeDealService)
	c.CartService = service.NewCartService(c.CartRepo, c.ItemRepo, c.TimeDealService)

	var gateway service.PaymentGateway
	tossClient, err := toss.NewClient(toss.Config{
		BaseURL:   c.Config.Payment.GatewayURL,
		SecretKey: c.Config.Payment.SecretKey,
		TimeoutMS: c.Config.Payment.TimeoutMS,
	})
	if err != nil {
		logger.Warnw("provider_init_payment_gateway_failed", "error", err)
	} else {
		gateway = tossClient
	}

	c.OrderService = service.NewOrderService(
		c.OrderRepo,
		c.CartRepo,
		c.ItemRepo,
		c.CartService,
		gateway,
		c.QueueClient,
		c.Notifier,
		c.Clock,
		c.Config.Order.PaymentExpireMinutes,
	)
}
