package bootstrap

import (
	"context"
	"fmt"
	"time"

	"docintel-be/internal/config"
	"docintel-be/internal/controller"
	"docintel-be/internal/entity"
	"docintel-be/internal/pkg/eventbus"
	"docintel-be/internal/pkg/logger"
	"docintel-be/internal/pkg/metrics"
	"docintel-be/internal/pkg/serverutils"
	"docintel-be/internal/repository/contract"
	"docintel-be/internal/repository/implementation"
	"docintel-be/internal/repository/memory"
	"docintel-be/internal/seed"
	"docintel-be/internal/service"
	"docintel-be/internal/websocket"
	pktNats "docintel-be/pkg/nats"
	"docintel-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	DocumentController  controller.IDocumentController
	FolderController    controller.IFolderController
	ChatbotController   controller.IChatbotController
	ApprovalController  controller.IApprovalController
	WorkspaceController controller.IWorkspaceController

	AuthMiddleware fiber.Handler

	// Stores
	Sessions  *store.SessionStore
	Workspace *store.WorkspaceStore

	// Background Services (Exposed for main.go to run)
	ProcessingService service.IProcessingService
	ChatbotService    service.IChatbotService

	// Change feed & observability
	WebSocketHub *websocket.Hub
	Metrics      *metrics.Metrics
	Bus          *eventbus.Bus

	pubSub    *gochannel.GoChannel
	natsPub   *pktNats.Publisher
	rdb       *redis.Client
	logger    logger.ILogger
	cfg       *config.Config
	cancelRun context.CancelFunc
}

func NewContainer(cfg *config.Config, sysLogger logger.ILogger) (*Container, error) {
	now := time.Now()

	// 1. Infrastructure
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			sysLogger.Warn("BOOTSTRAP", "Failed to parse Redis URL, using direct Addr", map[string]interface{}{"error": err.Error()})
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			sysLogger.Warn("BOOTSTRAP", "Failed to connect to Redis", map[string]interface{}{"error": err.Error()})
		}
	}

	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		p, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			sysLogger.Warn("BOOTSTRAP", "Failed to connect to NATS Publisher", map[string]interface{}{"error": err.Error()})
		} else {
			natsPub = p
		}
	}

	tokens, err := newTokenRepository(cfg, rdb)
	if err != nil {
		return nil, err
	}

	// 2. Event Bus
	pubSub := eventbus.NewPubSub()
	bus := eventbus.NewBus(pubSub, sysLogger)

	wsLogger := sysLogger
	if cfg.App.WsLogFilePath != "" {
		wsLogger = logger.NewIsolatedLogger(cfg.App.WsLogFilePath)
	}
	wsHub := websocket.NewHub(rdb, wsLogger)

	var m *metrics.Metrics
	if cfg.App.MetricsEnabled {
		m = metrics.New()
	}

	// 3. Stores
	actor := seed.Actor(now)
	actor.Email = cfg.Auth.Email
	verifier, err := newVerifier(cfg, actor)
	if err != nil {
		return nil, err
	}

	sessions := store.NewSessionStore(
		store.SessionConfig{
			TokenKey:   cfg.Auth.TokenKey,
			InitDelay:  cfg.Auth.InitDelay,
			LoginDelay: cfg.Auth.LoginDelay,
		},
		tokens,
		verifier,
		store.RealClock,
		sysLogger,
		bus,
	)
	workspace := store.NewWorkspaceStore(seed.Workspace(now), sysLogger, bus)
	if m != nil {
		m.SetUsage(workspace.Usage())
	}

	// 4. Services
	publisherService := service.NewPublisherService(pubSub, service.ProcessingTopic)
	processingService := service.NewProcessingService(pubSub, service.ProcessingTopic, workspace, cfg.Processing.Delay, sysLogger)

	authService := service.NewAuthService(sessions, sysLogger)
	documentService := service.NewDocumentService(workspace, publisherService, cfg.Storage.MaxUploadSize, sysLogger)
	folderService := service.NewFolderService(workspace, sysLogger)
	chatbotService := service.NewChatbotService(workspace, cfg.Chat.ReplyDelay, sysLogger)
	approvalService := service.NewApprovalService(workspace, sysLogger)

	auth := serverutils.TokenMiddleware(sessions)

	// 5. Controllers
	return &Container{
		AuthController:     controller.NewAuthController(authService, auth),
		DocumentController: controller.NewDocumentController(documentService, auth),
		FolderController:   controller.NewFolderController(folderService, auth),
		ChatbotController:  controller.NewChatbotController(chatbotService, auth),
		ApprovalController: controller.NewApprovalController(approvalService, auth),
		WorkspaceController: controller.NewWorkspaceController(
			service.NewDashboardService(workspace),
			service.NewBillingService(workspace),
			service.NewMemberService(workspace),
			service.NewSettingsService(workspace),
			service.NewAnalyticsService(workspace),
			service.NewAutomationService(workspace),
			auth,
		),
		AuthMiddleware: auth,

		Sessions:  sessions,
		Workspace: workspace,

		ProcessingService: processingService,
		ChatbotService:    chatbotService,

		WebSocketHub: wsHub,
		Metrics:      m,
		Bus:          bus,

		pubSub:  pubSub,
		natsPub: natsPub,
		rdb:     rdb,
		logger:  sysLogger,
		cfg:     cfg,
	}, nil
}

// Start runs the background workers: the hub, the bus subscribers, the
// processing consumer and the session restore. It returns once they are
// subscribed; the session restore finishes in the background.
func (c *Container) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	c.cancelRun = cancel

	go c.WebSocketHub.Run(ctx)

	if err := c.Bus.Subscribe(ctx, "websocket", c.WebSocketHub.Publish); err != nil {
		return err
	}
	if c.Metrics != nil {
		if err := c.Bus.Subscribe(ctx, "metrics", c.Metrics.Observe); err != nil {
			return err
		}
	}
	if c.natsPub != nil {
		if err := c.Bus.Subscribe(ctx, "nats", c.natsPub.Forward); err != nil {
			return err
		}
	}

	if err := c.ProcessingService.Consume(ctx); err != nil {
		return fmt.Errorf("start processing consumer: %w", err)
	}

	go func() {
		if err := c.Sessions.Initialize(ctx); err != nil {
			c.logger.Warn("BOOTSTRAP", "Session restore did not complete", map[string]interface{}{"error": err.Error()})
		}
	}()
	return nil
}

// Close tears down in reverse order of Start. Pending logins, chat replies
// and processing waits are discarded.
func (c *Container) Close() {
	c.Sessions.Close()
	c.ChatbotService.Close()
	if c.cancelRun != nil {
		c.cancelRun()
	}
	c.ProcessingService.Close()
	if err := c.pubSub.Close(); err != nil {
		c.logger.Warn("BOOTSTRAP", "Failed to close event bus", map[string]interface{}{"error": err.Error()})
	}
	if c.natsPub != nil {
		c.natsPub.Close()
	}
	if c.rdb != nil {
		_ = c.rdb.Close()
	}
}

func newTokenRepository(cfg *config.Config, rdb *redis.Client) (contract.TokenRepository, error) {
	switch cfg.Storage.TokenStore {
	case "", "file":
		return implementation.NewFileTokenRepository(cfg.Storage.TokenFile), nil
	case "memory":
		return memory.NewTokenRepository(0), nil
	case "redis":
		if rdb == nil {
			return nil, fmt.Errorf("token store redis requires REDIS_URL")
		}
		return implementation.NewRedisTokenRepository(rdb, "docintel:"), nil
	}
	return nil, fmt.Errorf("unknown token store %q", cfg.Storage.TokenStore)
}

func newVerifier(cfg *config.Config, actor *entity.User) (store.Verifier, error) {
	credentials, err := store.NewCredentials(cfg.Auth.Email, cfg.Auth.Password)
	if err != nil {
		return nil, err
	}
	switch cfg.Auth.Verifier {
	case "", "static":
		return store.NewStaticVerifier(credentials, cfg.Auth.Token, actor), nil
	case "jwt":
		return store.NewJWTVerifier(credentials, cfg.Auth.JwtSecret, cfg.Auth.JwtTTL, actor), nil
	}
	return nil, fmt.Errorf("unknown auth verifier %q", cfg.Auth.Verifier)
}
