package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"prodboard/internal/cache"
	"prodboard/internal/config"
	"prodboard/internal/database"
	"prodboard/internal/domain/attachment"
	"prodboard/internal/domain/auth"
	"prodboard/internal/domain/calendar"
	"prodboard/internal/domain/client"
	"prodboard/internal/domain/finance"
	"prodboard/internal/domain/notification"
	"prodboard/internal/domain/project"
	"prodboard/internal/domain/task"
	"prodboard/internal/domain/team"
	"prodboard/internal/middleware"
	jwtsvc "prodboard/internal/pkg/jwt"
	"prodboard/internal/pkg/logx"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logx.New(cfg.IsDev())
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Error("database connection failed", zap.Error(err))
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&team.Member{},
		&client.Client{},
		&project.Project{},
		&task.Task{},
		&calendar.Event{},
		&finance.Record{},
		&attachment.Attachment{},
		&notification.Notification{},
	); err != nil {
		log.Fatal(err)
	}

	var store cache.Cache
	if cfg.RedisAddr != "" {
		redisCache := cache.NewRedis(cfg.RedisAddr)
		if err := redisCache.Ping(context.Background()); err != nil {
			logger.Error("redis unreachable", zap.String("addr", cfg.RedisAddr), zap.Error(err))
			log.Fatal(err)
		}
		store = redisCache
		logger.Info("using redis cache", zap.String("addr", cfg.RedisAddr))
	} else {
		store = cache.NewMemory()
		logger.Info("using in-memory cache")
	}

	jwt := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	teamRepo := team.NewRepository(db)
	clientRepo := client.NewRepository(db)
	projectRepo := project.NewRepository(db)
	taskRepo := task.NewRepository(db)
	calendarRepo := calendar.NewRepository(db)
	financeRepo := finance.NewRepository(db)
	attachmentRepo := attachment.NewRepository(db)
	notificationRepo := notification.NewRepository(db)

	hub := notification.NewHub()
	notificationService := notification.NewService(notificationRepo, hub, logger)
	notificationHandler := notification.NewHandler(notificationService, hub, jwt)

	authService := auth.NewService(teamRepo, jwt)
	authHandler := auth.NewHandler(authService)

	teamService := team.NewService(teamRepo)
	teamHandler := team.NewHandler(teamService)

	clientService := client.NewService(clientRepo)
	clientHandler := client.NewHandler(clientService)

	projectService := project.NewService(projectRepo, clientRepo)
	projectHandler := project.NewHandler(projectService)

	taskService := task.NewService(taskRepo, projectRepo)
	taskHandler := task.NewHandler(taskService)

	calendarService := calendar.NewService(calendarRepo)
	calendarHandler := calendar.NewHandler(calendarService)

	financeService := finance.NewService(financeRepo)
	financeHandler := finance.NewHandler(financeService)

	attachmentService := attachment.NewService(attachment.ServiceDeps{
		Repo:          attachmentRepo,
		Storage:       attachment.NewStorage(cfg.UploadsDir, cfg.StaticBase),
		Cache:         store,
		Logger:        logger,
		Clients:       clientRepo,
		Projects:      projectRepo,
		Tasks:         taskRepo,
		Members:       teamRepo,
		Notifier:      notifierAdapter{notificationService},
		CacheTTL:      cfg.CacheTTL,
		MaxUploadSize: cfg.MaxUploadSize,
	})
	attachmentHandler := attachment.NewHandler(attachmentService)

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS())

	r.Static(cfg.StaticBase, cfg.UploadsDir)
	notification.RegisterWSRoutes(r, notificationHandler)

	v1 := r.Group("/api/v1")
	{
		auth.RegisterPublicRoutes(v1, authHandler)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(jwt))
		{
			auth.RegisterProtectedRoutes(protected, authHandler)
			team.RegisterRoutes(protected, teamHandler)
			client.RegisterRoutes(protected, clientHandler)
			project.RegisterRoutes(protected, projectHandler)
			task.RegisterRoutes(protected, taskHandler)
			calendar.RegisterRoutes(protected, calendarHandler)
			finance.RegisterRoutes(protected, financeHandler)
			attachment.RegisterRoutes(protected, attachmentHandler)
			notification.RegisterRoutes(protected, notificationHandler)
		}
	}

	logger.Info("listening", zap.String("addr", cfg.ListenAddr))
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}

// notifierAdapter bridges the attachment service to the notification
// service without a package dependency between the two domains.
type notifierAdapter struct {
	service *notification.Service
}

func (n notifierAdapter) Notify(ctx context.Context, userID int64, typ, title, message string) {
	n.service.Notify(ctx, userID, notification.Type(typ), title, message)
}
