package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "gamerflow_service/cmd/gamerflow/docs" // swagger 文件
	"gamerflow_service/internal/api/handlers"
	"gamerflow_service/internal/api/router"
	assistantapp "gamerflow_service/internal/assistant/app"
	assistantrepo "gamerflow_service/internal/assistant/repository"
	catalogapp "gamerflow_service/internal/catalog/app"
	catalogrepo "gamerflow_service/internal/catalog/repository"
	liveapp "gamerflow_service/internal/livechat/app"
	liverepo "gamerflow_service/internal/livechat/repository"
	playbackapp "gamerflow_service/internal/playback/app"
	playbackdomain "gamerflow_service/internal/playback/domain"
	playbackrepo "gamerflow_service/internal/playback/repository"
	uiapp "gamerflow_service/internal/ui/app"
	userstateapp "gamerflow_service/internal/userstate/app"
	userstatedomain "gamerflow_service/internal/userstate/domain"
	userstaterepo "gamerflow_service/internal/userstate/repository"
	"gamerflow_service/pkg/config"
	"gamerflow_service/pkg/database"
	"gamerflow_service/pkg/logger"
	testtool "gamerflow_service/pkg/test_tool"
	"gamerflow_service/pkg/token"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	fiber_log "github.com/gofiber/fiber/v2/middleware/logger"
	_ "go.uber.org/automaxprocs" // 依 container cpu quota 設定 GOMAXPROCS
	"go.uber.org/zap"
)

func main() {
	logger.Log = logger.Initialize(config.EnvConfig.Service, config.EnvConfig.LogPath)
	defer logger.Log.Sync()
	cfg := config.LoadConfig[config.GamerFlow](config.EnvConfig.Service, config.EnvConfig.YAMLPath)
	if config.EnvConfig.Port != "" {
		cfg.Port = config.EnvConfig.Port
	}
	if config.EnvConfig.JWTSecret != "" {
		token.SetSecret(config.EnvConfig.JWTSecret)
	} else if config.IsProduction() {
		logger.Log.Fatal("GAMERFLOW_JWT_SECRET is required in production")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. catalog
	catalogRepo := newCatalogRepository(ctx, cfg)
	catalogUC, err := catalogapp.NewCatalogUseCase(ctx, catalogRepo)
	if err != nil {
		logger.Log.Fatal("load catalog failed", zap.Error(err))
	}

	// 2. redis (user state slots, playback session, live chat pub/sub)
	var (
		stateKV   database.RedisRepository[[]string]
		sessionKV database.RedisRepository[playbackdomain.Session]
		pubsub    liverepo.PubSub
	)
	if cfg.Storage == "memory" {
		stateKV = database.NewMemoryRepository[[]string]()
		sessionKV = database.NewMemoryRepository[playbackdomain.Session]()
		pubsub = liverepo.NewMemoryPubSub()
		logger.Log.Info("storage: memory")
	} else {
		redisClient := newRedisClient(cfg)
		defer redisClient.Close()
		stateKV = database.NewRedisRepository[[]string](redisClient)
		sessionKV = database.NewRedisRepository[playbackdomain.Session](redisClient)
		pubsub = liverepo.NewRedisPubSub(redisClient)
	}

	// 3. rabbitmq (engagement events)
	publisher := userstaterepo.NewNoopEventPublisher()
	if cfg.RabbitMQ.IP != "" {
		conn, err := database.ConnectRabbitMQWithRetry(database.Connection{
			ConnectStr:    fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.RabbitMQ.IP, cfg.RabbitMQ.Port),
			RetryCount:    cfg.RabbitMQ.RetryCount,
			RetryInterval: cfg.RabbitMQ.RetryInterval,
		})
		if err != nil {
			logger.Log.Fatal("connect rabbitmq failed", zap.Error(err))
		}
		defer conn.Close()

		ch, err := database.GetRabbitMQChannelWithRetry(conn, cfg.RabbitMQ.RetryCount, cfg.RabbitMQ.RetryInterval)
		if err != nil {
			logger.Log.Fatal("open rabbitmq channel failed", zap.Error(err))
		}
		defer ch.Close()

		queue := cfg.RabbitMQ.Queue
		if queue == "" {
			queue = userstatedomain.EngagementQueue
		}
		if err := database.DeclareQueue(ch, queue); err != nil {
			logger.Log.Fatal("declare queue failed", zap.String("queue", queue), zap.Error(err))
		}
		publisher = userstaterepo.NewRabbitEventPublisher(database.NewRabbitRepository(ch), queue)
	}

	// 4. mongo (assistant conversations)
	conversationRepo := assistantrepo.NewMemoryConversationRepository()
	if cfg.MongoDB.Host != "" {
		uri := fmt.Sprintf("mongodb://%s:%s@%s:%d", cfg.MongoDB.User, cfg.MongoDB.Password, cfg.MongoDB.Host, cfg.MongoDB.Port)
		mongoDB, err := database.NewMongoDB(ctx, database.Connection{
			ConnectStr:    uri,
			RetryCount:    cfg.MongoDB.RetryCount,
			RetryInterval: time.Duration(cfg.MongoDB.RetryInterval),
		}, cfg.MongoDB.Database)
		if err != nil {
			logger.Log.Fatal("Unable to connect to mongoDB database after retries", zap.String("host", cfg.MongoDB.Host), zap.Error(err))
		}
		defer mongoDB.Close(context.Background())
		conversationRepo = assistantrepo.NewMongoConversationRepository(mongoDB.Database)
	}

	// 5. minio (image forge)
	var forgeStore database.MinIOClientRepo
	if cfg.MinIO.Host != "" {
		mc, err := database.NewMinIOConnection(database.MinIOConnection{
			Endpoint:      fmt.Sprintf("%s:%d", cfg.MinIO.Host, cfg.MinIO.Port),
			User:          cfg.MinIO.User,
			Password:      cfg.MinIO.Password,
			BucketName:    cfg.MinIO.BucketName,
			UseSSL:        cfg.MinIO.UseSSL,
			RetryCount:    cfg.MinIO.RetryCount,
			RetryInterval: cfg.MinIO.RetryInterval,
		})
		if err != nil {
			logger.Log.Fatal("connect minio failed", zap.Error(err))
		}
		forgeStore = mc
	}

	// 6. gemini
	backend := assistantrepo.NewOfflineBackend()
	if genaiClient, err := assistantrepo.NewGeminiClient(ctx, cfg.Gemini.APIKey); err != nil {
		logger.Log.Warn("assistant offline, every call returns its fallback", zap.Error(err))
	} else {
		backend = assistantrepo.NewGeminiBackend(genaiClient, cfg.Gemini)
	}

	// 7. use cases
	userStateUC := userstateapp.NewUserStateUseCase(userstaterepo.NewStateRepository(stateKV), publisher, cfg.SaveDebounce, cfg.MaxCachedProfiles)
	sessionUC := playbackapp.NewSessionUseCase(catalogUC, playbackrepo.NewSessionRepository(sessionKV), cfg.SessionTTL)
	assistantUC := assistantapp.NewAssistantUseCase(backend)
	conversationUC := assistantapp.NewConversationUseCase(assistantUC, conversationRepo)
	forgeUC := assistantapp.NewImageForgeUseCase(assistantUC, forgeStore, cfg.PresignTTL)
	uiUC := uiapp.NewUIUseCase(catalogUC, assistantUC, userStateUC, cfg.MaxCachedProfiles)
	liveUC := liveapp.NewLiveChatUseCase(catalogUC, pubsub, assistantUC)

	// 8. grpc health
	healthServer, err := database.NewHealthServer(":" + cfg.GRPCPort)
	if err != nil {
		logger.Log.Fatal("start grpc health failed", zap.Error(err))
	}
	go func() {
		if err := healthServer.Serve(); err != nil {
			logger.Log.Error("grpc health stopped", zap.Error(err))
		}
	}()
	healthServer.SetServing(config.EnvConfig.Service, true)

	if cfg.PprofAddr != "" {
		testtool.StartPprof(cfg.PprofAddr)
	}

	// 9. fiber
	r := fiber.New(fiber.Config{BodyLimit: handlers.MaxImageSize + 1<<20})
	file, err := os.OpenFile(fmt.Sprintf("%s/access.log", config.EnvConfig.LogPath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer file.Close()

	r.Use(fiber_log.New(fiber_log.Config{
		Output: file,
	}))

	router.RegisterRoutes(r, router.Handlers{
		Catalog:   handlers.NewCatalogHandler(catalogUC, userStateUC),
		Playback:  handlers.NewPlaybackHandler(sessionUC),
		UI:        handlers.NewUIHandler(uiUC),
		Assistant: handlers.NewAssistantHandler(catalogUC, assistantUC, conversationUC, forgeUC),
		Live:      handlers.NewLiveHandler(liveapp.NewLiveWebsocketHandler(liveUC)),
	})

	go func() {
		<-ctx.Done()
		logger.Log.Info("shutting down")
		healthServer.SetServing(config.EnvConfig.Service, false)
		if err := r.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Log.Error("fiber shutdown failed", zap.Error(err))
		}
	}()

	addr := cfg.IP + ":" + cfg.Port
	logger.Log.Info("gamerflow listening", zap.String("addr", addr), zap.String("grpc", healthServer.Addr()))
	if err := r.Listen(addr); err != nil {
		logger.Log.Error("Server failed to start", zap.Error(err))
	}

	// 寫入尚未 flush 的 saved / liked
	flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := userStateUC.Flush(flushCtx); err != nil {
		logger.Log.Error("flush user state failed", zap.Error(err))
	}
	healthServer.Stop()
}

func newCatalogRepository(ctx context.Context, cfg config.GamerFlow) catalogrepo.CatalogRepository {
	if cfg.CatalogSource != "postgres" {
		return catalogrepo.NewStaticCatalogRepository()
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.PostgreSQL.Host, cfg.PostgreSQL.Port, cfg.PostgreSQL.User, cfg.PostgreSQL.Password, cfg.PostgreSQL.Database)
	db, err := database.NewPGConnection(database.Connection{
		ConnectStr:    dsn,
		RetryCount:    cfg.PostgreSQL.RetryCount,
		RetryInterval: time.Duration(cfg.PostgreSQL.RetryInterval),
	})
	if err != nil {
		logger.Log.Fatal("connect postgres failed", zap.Error(err))
	}

	repo := catalogrepo.NewPGCatalogRepository(db)
	if err := repo.AutoMigrate(); err != nil {
		logger.Log.Fatal("migrate catalog failed", zap.Error(err))
	}
	if err := repo.SeedIfEmpty(ctx); err != nil {
		logger.Log.Fatal("seed catalog failed", zap.Error(err))
	}
	return repo
}

func newRedisClient(cfg config.GamerFlow) *redis.Client {
	masterName, sentinels := config.GetRedisSetting()

	var (
		client *redis.Client
		err    error
	)
	if len(sentinels) > 0 {
		client, err = database.NewRedisClient(masterName, sentinels, cfg.Redis.RedisDB)
	} else {
		client, err = database.NewRedisStandaloneClient(cfg.Redis.Addr, cfg.Redis.RedisDB)
	}
	if err != nil {
		logger.Log.Fatal(fmt.Sprintf("connect redis err : %v", err))
	}
	return client
}
