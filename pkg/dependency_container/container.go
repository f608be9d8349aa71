package dependency_container

import (
	"fmt"
	"reflect"

	"github.com/NeuralTrust/MaskFlow/pkg/app/ledger"
	appmasking "github.com/NeuralTrust/MaskFlow/pkg/app/masking"
	"github.com/NeuralTrust/MaskFlow/pkg/app/object"
	appscan "github.com/NeuralTrust/MaskFlow/pkg/app/scan"
	"github.com/NeuralTrust/MaskFlow/pkg/config"
	"github.com/NeuralTrust/MaskFlow/pkg/domain/actionlog"
	handlers "github.com/NeuralTrust/MaskFlow/pkg/handlers/http"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/auth/jwt"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/cache"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/cache/channel"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/cache/event"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/database"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/events"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/events/kafka"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/events/logexporter"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/lock"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/repository"
	"github.com/NeuralTrust/MaskFlow/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type Container struct {
	Cache               cache.Client
	RedisListener       cache.EventListener
	RedisPublisher      cache.EventPublisher
	EventDispatcher     events.Dispatcher
	HandlerTransport    *handlers.HandlerTransport
	MiddlewareTransport middleware.Transport
	JWTManager          jwt.Manager
	Locker              lock.Locker
}

type ContainerDI struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	// DB is nil when the ledger database is disabled.
	DB             *database.DB
	EventsRegistry map[string]reflect.Type
	EventsChannel  channel.Channel
}

func NewContainer(di ContainerDI) (*Container, error) {
	cfg := di.Cfg

	cacheInstance, err := cache.NewClient(cache.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TLS:      cfg.Redis.TLS,
	}, di.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache: %v", err)
	}

	catalogueCache := cacheInstance.CreateTTLMap(cache.ObjectCatalogueTTLName, cfg.Workflow.CatalogueTTL)

	redisPublisher := cache.NewRedisEventPublisher(cacheInstance, di.EventsChannel)
	redisListener := cache.NewRedisEventListener(di.Logger, cacheInstance, di.EventsRegistry)
	cache.RegisterEventSubscriber[event.InvalidateCatalogueEvent](
		redisListener,
		cache.NewInvalidateCatalogueSubscriber(di.Logger, catalogueCache),
	)

	// protecto
	protectoClient, err := newProtectoClient(cfg, di.Logger)
	if err != nil {
		return nil, err
	}

	// locking
	var locker lock.Locker
	switch cfg.Workflow.LockBackend {
	case "redis":
		locker = lock.NewRedisLocker(cacheInstance.RedisClient(), di.Logger, cfg.Workflow.LockTTL)
	default:
		locker = lock.NewMemoryLocker()
	}

	// action ledger
	exporterLocator := events.NewExporterLocator(
		events.WithExporter(kafka.NewKafkaExporter()),
		events.WithExporter(logexporter.NewLogExporter(di.Logger)),
	)
	exporters, err := exporterLocator.Build(exporterConfigs(cfg.Events.Exporters))
	if err != nil {
		return nil, fmt.Errorf("failed to configure event exporters: %w", err)
	}
	dispatcher := events.NewDispatcher(di.Logger, exporters, cfg.Events.QueueSize)

	var actionLogRepository actionlog.Repository
	if di.DB != nil {
		actionLogRepository = repository.NewActionLogRepository(di.DB.DB)
	} else {
		di.Logger.Warn("ledger database is disabled, action history will not be queryable")
		actionLogRepository = repository.NewNoopActionLogRepository()
	}
	recorder := ledger.NewRecorder(di.Logger, actionLogRepository, dispatcher)
	ledgerFinder := ledger.NewFinder(actionLogRepository)

	// sessions
	scanSessionRepository := repository.NewScanSessionRepository(cacheInstance, cfg.Workflow.SessionTTL)
	reviewSessionRepository := repository.NewReviewSessionRepository(cacheInstance, cfg.Workflow.SessionTTL)

	// use cases
	catalogue := object.NewCatalogue(di.Logger, protectoClient, catalogueCache, redisPublisher)
	scanWorkflow := appscan.NewWorkflow(
		di.Logger,
		protectoClient,
		scanSessionRepository,
		locker,
		recorder,
		appscan.Options{
			SessionTTL:  cfg.Workflow.SessionTTL,
			PageSize:    cfg.Workflow.FieldPageSize,
			LockTimeout: cfg.Workflow.LockTimeout,
		},
	)
	reviewOptions := appmasking.Options{
		SessionTTL:  cfg.Workflow.SessionTTL,
		LockTimeout: cfg.Workflow.LockTimeout,
	}
	eligibilityChecker := appmasking.NewEligibilityChecker(protectoClient)
	reviewer := appmasking.NewReviewer(
		di.Logger,
		protectoClient,
		reviewSessionRepository,
		locker,
		eligibilityChecker,
		reviewOptions,
	)
	reviewActions := appmasking.NewActions(
		di.Logger,
		protectoClient,
		reviewSessionRepository,
		locker,
		eligibilityChecker,
		recorder,
		reviewOptions,
	)

	jwtManager := jwt.NewJwtManager(cfg.Server.SecretKey, cfg.Server.JWTIssuer)

	handlerTransport := &handlers.HandlerTransport{
		// Version
		GetVersionHandler: handlers.NewGetVersionHandler(di.Logger),
		// Objects
		ListObjectsHandler:    handlers.NewListObjectsHandler(di.Logger, catalogue),
		RefreshObjectsHandler: handlers.NewRefreshObjectsHandler(di.Logger, catalogue),
		// Scan
		CreateScanSessionHandler: handlers.NewCreateScanSessionHandler(di.Logger, scanWorkflow),
		GetScanSessionHandler:    handlers.NewGetScanSessionHandler(di.Logger, scanWorkflow),
		ChangeScanObjectHandler:  handlers.NewChangeScanObjectHandler(di.Logger, scanWorkflow),
		SelectScanFieldsHandler:  handlers.NewSelectScanFieldsHandler(di.Logger, scanWorkflow),
		SubmitScanHandler:        handlers.NewSubmitScanHandler(di.Logger, scanWorkflow),
		ResetScanSessionHandler:  handlers.NewResetScanSessionHandler(di.Logger, scanWorkflow),
		// Masking review
		ListScheduledHandler:  handlers.NewListScheduledHandler(di.Logger, reviewer),
		OpenReviewHandler:     handlers.NewOpenReviewHandler(di.Logger, reviewer),
		GetReviewHandler:      handlers.NewGetReviewHandler(di.Logger, reviewer),
		EditReviewHandler:     handlers.NewEditReviewHandler(di.Logger, reviewer),
		SaveExemptionsHandler: handlers.NewSaveExemptionsHandler(di.Logger, reviewActions),
		RetryHandler:          handlers.NewRetryHandler(di.Logger, reviewActions),
		RetryAllHandler:       handlers.NewRetryAllHandler(di.Logger, reviewActions),
		ApproveHandler:        handlers.NewApproveHandler(di.Logger, reviewActions),
		EligibilityHandler:    handlers.NewEligibilityHandler(di.Logger, eligibilityChecker),
		ListActionsHandler:    handlers.NewListActionsHandler(di.Logger, ledgerFinder),
	}

	middlewareTransport := middleware.Transport{
		AuthMiddleware:         middleware.NewAuthMiddleware(di.Logger, jwtManager),
		CORSMiddleware:         middleware.NewCORSMiddleware(corsConfig(cfg.Server.CORS)),
		MetricsMiddleware:      middleware.NewMetricsMiddleware(di.Logger),
		PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(di.Logger),
		SecurityMiddleware:     middleware.NewSecurityMiddleware(),
	}

	return &Container{
		Cache:               cacheInstance,
		RedisListener:       redisListener,
		RedisPublisher:      redisPublisher,
		EventDispatcher:     dispatcher,
		HandlerTransport:    handlerTransport,
		MiddlewareTransport: middlewareTransport,
		JWTManager:          jwtManager,
		Locker:              locker,
	}, nil
}
