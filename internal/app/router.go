package app

import (
	"footballpro_backend/docs"
	"footballpro_backend/internal/config"
	"footballpro_backend/internal/middleware"
	"footballpro_backend/internal/model"
	"footballpro_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c, cfg)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerPlayerRoutes(authGroup, c)
		a.registerCoachRoutes(authGroup, c)
		a.registerAdminRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// 课程目录对游客开放
		public.GET("/courses", middleware.TryAuthMiddleware(cfg), c.course.List)
		public.GET("/courses/:id", middleware.TryAuthMiddleware(cfg), c.course.Get)
	}
}

func (a *App) registerPlayerRoutes(group *gin.RouterGroup, c *controllers) {
	group.GET("/me", c.auth.Me)

	group.GET("/users/profile", c.user.GetProfile)
	group.PUT("/users/profile", c.user.UpdateProfile)
	group.POST("/users/avatar", c.user.UploadAvatar)

	group.POST("/activity/progress", c.activity.RecordProgress)
	group.GET("/activity/recent", c.activity.RecentActivity)

	group.POST("/bookings", c.booking.Create)
	group.GET("/bookings", c.booking.MyBookings)
	group.DELETE("/bookings/:id", c.booking.Cancel)

	group.GET("/dashboard/stats", c.dashboard.GetStats)
	group.GET("/dashboard/progress", c.dashboard.GetWeeklyProgress)
}

func (a *App) registerCoachRoutes(group *gin.RouterGroup, c *controllers) {
	coach := group.Group("/coach")
	coach.Use(middleware.RoleMiddleware(model.Coach))
	{
		coach.GET("/bookings", c.booking.List)
		coach.PATCH("/bookings/:id/status", c.booking.UpdateStatus)
	}
}

func (a *App) registerAdminRoutes(group *gin.RouterGroup, c *controllers) {
	admin := group.Group("/admin")
	admin.Use(middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users", c.user.List)
		admin.PATCH("/users/:id/status", c.user.SetStatus)

		admin.POST("/courses", c.course.Create)
		admin.PUT("/courses/:id", c.course.Update)
		admin.DELETE("/courses/:id", c.course.Delete)
		admin.POST("/courses/:id/videos", c.course.AddVideo)
		admin.DELETE("/videos/:id", c.course.DeleteVideo)
		admin.POST("/courses/:id/cover", c.course.UploadCover)
	}
}
