package app

import (
	"context"
	"log"
	"time"

	"skill-trade/internal/config"
	"skill-trade/internal/database"
	"skill-trade/internal/database/migration"
	dbpostgres "skill-trade/internal/database/postgres"
	"skill-trade/internal/delivery/http/handler"
	"skill-trade/internal/delivery/http/middleware"
	"skill-trade/internal/infrastructure/cache"
	"skill-trade/internal/pkg/jwt"
	"skill-trade/internal/repository"
	"skill-trade/internal/usecase"
	"skill-trade/internal/ws"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub

	AuthHandler    *handler.AuthHandler
	SkillHandler   *handler.SkillHandler
	MessageHandler *handler.MessageHandler
	MatchHandler   *handler.MatchHandler
	HealthHandler  *handler.HealthHandler
	WSHandler      *ws.Handler

	AuthMiddleware *middleware.AuthMiddleware
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	runner := migration.Runner{Dir: cfg.Database.MigrationsDir}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	hub := ws.NewHub(logger)
	go hub.Run()
	notifier := ws.NewNotifier(hub)

	userRepo := repository.NewPostgresUserRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)
	messageRepo := repository.NewPostgresMessageRepository(db)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	skillUC := usecase.NewSkillUsecase(skillRepo, redisCache, cfg.Limits.SkillFieldMaxLen)
	messageUC := usecase.NewMessageUsecase(messageRepo, userRepo, notifier, cfg.Limits.MessageBodyMaxLen)
	matchUC := usecase.NewMatchUsecase(skillRepo, userRepo, redisCache)

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  redisCache,
		Hub:    hub,

		AuthHandler:    handler.NewAuthHandler(authUC),
		SkillHandler:   handler.NewSkillHandler(skillUC),
		MessageHandler: handler.NewMessageHandler(messageUC),
		MatchHandler:   handler.NewMatchHandler(matchUC),
		HealthHandler:  handler.NewHealthHandler(db),
		WSHandler:      ws.NewHandler(hub, jwtSvc, logger),

		AuthMiddleware: middleware.NewAuthMiddleware(jwtSvc),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
