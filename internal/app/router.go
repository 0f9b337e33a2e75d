package app

import (
	"taskforge_backend/docs"
	"taskforge_backend/internal/config"
	"taskforge_backend/internal/middleware"
	"taskforge_backend/internal/model"
	"taskforge_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerWorkerRoutes(authGroup, c)
	}

	// 3. 管理员相关接口
	adminGroup := router.Group("/api/admin")
	adminGroup.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		adminGroup.GET("/verification/documents", c.admin.ListPendingDocuments)
		adminGroup.PUT("/verification/documents/:id", c.admin.ReviewDocument)
		adminGroup.GET("/withdrawals", c.admin.ListPendingWithdrawals)
		adminGroup.PUT("/withdrawals/:id", c.admin.ReviewWithdrawal)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// 项目目录对游客开放，便于注册前了解计费
		public.GET("/projects", c.project.ListProjects)
		public.GET("/projects/:id", c.project.GetProject)
	}
}

func (a *App) registerWorkerRoutes(group *gin.RouterGroup, c *controllers) {
	// 账号
	group.GET("/profile", c.auth.GetProfile)
	group.PUT("/user/profile", c.user.UpdateProfile)
	group.PUT("/user/password", c.user.ChangePassword)

	// 任务
	group.POST("/projects/:id/tasks", c.task.GenerateTask)
	group.POST("/tasks/submit", c.task.SubmitTask)

	// 工作台
	group.GET("/dashboard", c.dashboard.GetDashboard)
	group.GET("/activity", c.dashboard.ListActivity)

	// 收益
	group.GET("/earnings", c.earnings.GetEarnings)
	group.POST("/earnings/payout-account", c.earnings.LinkPayoutAccount)
	group.POST("/earnings/withdrawals", c.earnings.RequestWithdrawal)
	group.GET("/earnings/withdrawals", c.earnings.ListWithdrawals)

	// 认证审核
	group.POST("/verification/send-code", c.verification.SendCode)
	group.POST("/verification/confirm", c.verification.ConfirmCode)
	group.POST("/verification/documents", c.verification.UploadDocument)
	group.GET("/verification/documents", c.verification.ListDocuments)
}
