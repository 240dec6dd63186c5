package api

import (
	"github.com/gin-gonic/gin"

	"github.com/qs3c/contenthub_go_server/config"
	"github.com/qs3c/contenthub_go_server/internal/api/handler"
	"github.com/qs3c/contenthub_go_server/internal/api/middleware"
	"github.com/qs3c/contenthub_go_server/internal/repository"
)

type Router struct {
	authHandler     *handler.AuthHandler
	categoryHandler *handler.CategoryHandler
	folderHandler   *handler.FolderHandler
	contentHandler  *handler.ContentHandler
	favoriteHandler *handler.FavoriteHandler
	timerHandler    *handler.TimerHandler
	accountHandler  *handler.AccountHandler
	userHandler     *handler.UserHandler
	settingHandler  *handler.SettingHandler
	pageHandler     *handler.PageHandler
	uploadHandler   *handler.UploadHandler
	userRepo        *repository.UserRepository
	cfg             *config.Config
}

func NewRouter(
	authHandler *handler.AuthHandler,
	categoryHandler *handler.CategoryHandler,
	folderHandler *handler.FolderHandler,
	contentHandler *handler.ContentHandler,
	favoriteHandler *handler.FavoriteHandler,
	timerHandler *handler.TimerHandler,
	accountHandler *handler.AccountHandler,
	userHandler *handler.UserHandler,
	settingHandler *handler.SettingHandler,
	pageHandler *handler.PageHandler,
	uploadHandler *handler.UploadHandler,
	userRepo *repository.UserRepository,
	cfg *config.Config,
) *Router {
	return &Router{
		authHandler:     authHandler,
		categoryHandler: categoryHandler,
		folderHandler:   folderHandler,
		contentHandler:  contentHandler,
		favoriteHandler: favoriteHandler,
		timerHandler:    timerHandler,
		accountHandler:  accountHandler,
		userHandler:     userHandler,
		settingHandler:  settingHandler,
		pageHandler:     pageHandler,
		uploadHandler:   uploadHandler,
		userRepo:        userRepo,
		cfg:             cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	if r.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS(r.cfg.CORS))

	api := engine.Group("/api/v1")
	{
		// 公开接口 - 认证
		auth := api.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/verify-email", r.authHandler.VerifyEmail)
			auth.POST("/resend-verification", r.authHandler.ResendVerification)
			auth.POST("/forgot-password", r.authHandler.ForgotPassword)
			auth.POST("/reset-password", r.authHandler.ResetPassword)
			auth.GET("/beta-status", r.authHandler.BetaStatus)
			auth.GET("/github", r.authHandler.GithubAuth)
			auth.GET("/github/callback", r.authHandler.GithubCallback)
		}

		// 需要认证的接口
		authenticated := api.Group("")
		authenticated.Use(middleware.Auth(r.cfg.JWT.Secret))
		{
			// 分类浏览
			categories := authenticated.Group("/categories")
			{
				categories.GET("", r.categoryHandler.List)
				categories.GET("/:id", r.categoryHandler.Detail)
				categories.PUT("/:id/pin", r.categoryHandler.SetPin)
			}

			// 目录与内容
			authenticated.GET("/folders/:id", r.folderHandler.Detail)
			authenticated.GET("/content/:id", r.contentHandler.Get)

			// 收藏
			favorites := authenticated.Group("/favorites")
			{
				favorites.GET("", r.favoriteHandler.List)
				favorites.POST("", r.favoriteHandler.Add)
				favorites.DELETE("/:content_id", r.favoriteHandler.Remove)
				favorites.GET("/check/:content_id", r.favoriteHandler.Check)
			}

			// 访问计时器
			authenticated.GET("/timer", r.timerHandler.Get)
			authenticated.PUT("/timer", r.timerHandler.Update)

			// 账号
			account := authenticated.Group("/account")
			{
				account.GET("/profile", r.accountHandler.Profile)
				account.GET("/check-update", r.accountHandler.CheckUpdate)
				account.POST("/mark-refreshed", r.accountHandler.MarkRefreshed)
				account.POST("/password-change/request", r.accountHandler.RequestPasswordChange)
				account.POST("/password-change/confirm", r.accountHandler.ConfirmPasswordChange)
				account.POST("/deletion/request", r.accountHandler.RequestDeletion)
				account.POST("/deletion/confirm", r.accountHandler.ConfirmDeletion)
			}

			// 页面配置
			authenticated.GET("/pages/:name", r.pageHandler.Get)
		}

		// 管理接口，每次请求重新校验管理员身份
		admin := api.Group("/admin")
		admin.Use(middleware.Auth(r.cfg.JWT.Secret), middleware.AdminRequired(r.userRepo))
		{
			admin.GET("/users", r.userHandler.List)
			admin.PUT("/users/:id", r.userHandler.UpdateFlags)
			admin.DELETE("/users/:id", r.userHandler.Delete)

			admin.POST("/categories", r.categoryHandler.Create)
			admin.PUT("/categories/:id", r.categoryHandler.Update)
			admin.DELETE("/categories/:id", r.categoryHandler.Delete)

			admin.POST("/folders", r.folderHandler.Create)
			admin.PUT("/folders/:id", r.folderHandler.Update)
			admin.DELETE("/folders/:id", r.folderHandler.Delete)

			admin.POST("/content", r.contentHandler.Create)
			admin.PUT("/content/:id", r.contentHandler.Update)
			admin.DELETE("/content/:id", r.contentHandler.Delete)

			admin.PUT("/pages/:name", r.pageHandler.Update)

			admin.GET("/settings/access-time", r.settingHandler.GetAccessTime)
			admin.PUT("/settings/access-time", r.settingHandler.SetAccessTime)
			admin.GET("/settings/beta", r.settingHandler.GetBeta)
			admin.PUT("/settings/beta", r.settingHandler.SetBeta)

			admin.POST("/upload/media", r.uploadHandler.UploadMedia)
			admin.POST("/upload/banner/:category_id", r.uploadHandler.UploadBanner)
		}
	}

	return engine
}
