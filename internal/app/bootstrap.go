package app

import (
	"blogapp/internal/app/board"
	"blogapp/internal/app/comment"
	"blogapp/internal/app/health"
	"blogapp/internal/app/session"
	"blogapp/internal/app/user"
	"blogapp/internal/config"
	"blogapp/internal/db"
	"blogapp/internal/db/seeder"
	"blogapp/internal/middleware"
	"blogapp/internal/providers/redis"
	"blogapp/internal/router"
	"blogapp/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Application struct {
	Router *router.Router
	DB     *gorm.DB
}

func Bootstrap(cfg *config.Config, logger *zap.Logger) (*Application, error) {
	dbConn, err := db.Connect(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(dbConn, logger); err != nil {
		return nil, err
	}

	redisProvider := redis.NewRedisProvider(cfg.RedisURL, logger, cfg.RedisTTL)
	eventBus := utils.NewEventBus()

	userRepo := user.NewRepository(dbConn)
	sessionRepo := session.NewRepository(dbConn)
	boardRepo := board.NewRepository(dbConn)
	commentRepo := comment.NewRepository(dbConn)

	sessionService := session.NewService(sessionRepo, userRepo, redisProvider, logger)
	boardService := board.NewService(boardRepo, redisProvider, eventBus, logger)
	commentService := comment.NewService(commentRepo, boardService, eventBus, logger)

	seed := seeder.NewSeeder(dbConn, sessionService, logger)
	if err := seed.Seed(); err != nil {
		logger.Warn("Failed to run seeders", zap.Error(err))
	}

	// Activity log: every domain event ends up in the structured log.
	go func() {
		for event := range eventBus.SubscribeCh() {
			logger.Info("Domain event",
				zap.String("event", event.Event),
				zap.Any("data", event.Data),
			)
		}
	}()

	healthHandler := health.NewHandler(&utils.HealthChecker{
		DB:    dbConn,
		Redis: redisProvider.Client,
	})
	boardHandler := board.NewHandler(boardService)
	commentHandler := comment.NewHandler(commentService)

	r := router.NewRouter(logger, cfg.AllowedOrigins(), middleware.IdentityMiddleware(sessionService))

	r.RegisterHealthRoutes(healthHandler)
	r.RegisterBoardRoutes(boardHandler)
	r.RegisterCommentRoutes(commentHandler)

	return &Application{
		Router: r,
		DB:     dbConn,
	}, nil
}
