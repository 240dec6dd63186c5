package main

import (
	"fmt"
	"log"
	"time"

	"github.com/qs3c/contenthub_go_server/config"
	"github.com/qs3c/contenthub_go_server/internal/api"
	"github.com/qs3c/contenthub_go_server/internal/api/handler"
	"github.com/qs3c/contenthub_go_server/internal/database"
	"github.com/qs3c/contenthub_go_server/internal/pkg/cooldown"
	"github.com/qs3c/contenthub_go_server/internal/pkg/cron"
	"github.com/qs3c/contenthub_go_server/internal/pkg/email"
	"github.com/qs3c/contenthub_go_server/internal/pkg/oauth"
	"github.com/qs3c/contenthub_go_server/internal/pkg/oss"
	"github.com/qs3c/contenthub_go_server/internal/repository"
	"github.com/qs3c/contenthub_go_server/internal/service"
)

func main() {
	// 加载配置
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化数据库
	db, err := database.NewMySQL(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database connected")

	// 初始化 Redis
	rdb, err := database.NewRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect redis: %v", err)
	}
	log.Println("Redis connected")

	// 初始化 OSS
	ossClient, err := oss.NewClient(&cfg.OSS)
	if err != nil {
		log.Fatalf("Failed to init OSS client: %v", err)
	}

	// 初始化基础设施
	emailSvc := email.NewService(&cfg.Email)
	cooldownStore := cooldown.NewStore(rdb, time.Duration(cfg.Access.ResendCooldown)*time.Second)
	stateStore := oauth.NewStateStore(rdb)

	// 初始化 Repository
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	folderRepo := repository.NewFolderRepository(db)
	contentRepo := repository.NewContentRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	verifyRepo := repository.NewVerificationRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	pageRepo := repository.NewPageRepository(db)

	// 初始化 Service
	settingService := service.NewSettingService(settingRepo, cfg)
	entitlementService := service.NewEntitlementService(categoryRepo, userRepo)
	timerService := service.NewTimerService(userRepo, settingService)
	authService := service.NewAuthService(userRepo, verifyRepo, settingService, emailSvc, cooldownStore, cfg)
	accountService := service.NewAccountService(userRepo, verifyRepo, emailSvc, authService, cooldownStore)
	userService := service.NewUserService(userRepo)
	categoryService := service.NewCategoryService(categoryRepo, folderRepo, contentRepo, entitlementService)
	folderService := service.NewFolderService(folderRepo, contentRepo, entitlementService)
	contentService := service.NewContentService(contentRepo, folderRepo, entitlementService)
	favoriteService := service.NewFavoriteService(favoriteRepo, contentRepo, userRepo)
	pageService := service.NewPageService(pageRepo)

	// 初始化 Handler
	authHandler := handler.NewAuthHandler(authService, stateStore)
	categoryHandler := handler.NewCategoryHandler(categoryService, entitlementService)
	folderHandler := handler.NewFolderHandler(folderService)
	contentHandler := handler.NewContentHandler(contentService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	timerHandler := handler.NewTimerHandler(timerService)
	accountHandler := handler.NewAccountHandler(accountService, userService)
	userHandler := handler.NewUserHandler(userService)
	settingHandler := handler.NewSettingHandler(settingService)
	pageHandler := handler.NewPageHandler(pageService)
	uploadHandler := handler.NewUploadHandler(ossClient)

	// 启动定时任务
	cronService := cron.NewService(timerService, verifyRepo)
	cronService.Start()
	defer cronService.Stop()

	// 初始化 Router
	router := api.NewRouter(
		authHandler,
		categoryHandler,
		folderHandler,
		contentHandler,
		favoriteHandler,
		timerHandler,
		accountHandler,
		userHandler,
		settingHandler,
		pageHandler,
		uploadHandler,
		userRepo,
		cfg,
	)
	engine := router.Setup()

	// 启动服务器
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	if err := engine.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
