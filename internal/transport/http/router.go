package http

import (
	"net/http"

	"workforce_project/internal/middleware"
	"workforce_project/internal/utils/blacklist"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

type RouterConfig struct {
	Auth    *AuthHandler
	User    *UserHandler
	Project *ProjectHandler
	Shift   *ShiftHandler
	Manager *ManagerHandler

	AccessSecret string
	Blacklist    blacklist.Blacklist
	Redis        *redis.Client
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Tracing())

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "Backend is running"})
	})

	api.POST("/auth/register", cfg.Auth.Register)
	api.POST("/auth/login", cfg.Auth.Login)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(cfg.AccessSecret, cfg.Blacklist))
	if cfg.Redis != nil {
		protected.Use(middleware.Idempotency(cfg.Redis))
	}

	protected.POST("/auth/logout", cfg.Auth.Logout)

	protected.GET("/user/profile", cfg.User.Profile)
	protected.GET("/user/pay", cfg.User.Pay)

	protected.GET("/projects", cfg.Project.List)
	protected.POST("/projects/details", cfg.Project.Details)

	protected.GET("/shifts/today", cfg.Shift.Today)
	protected.GET("/shifts/upcoming", cfg.Shift.Upcoming)
	protected.POST("/shifts/check-in", cfg.Shift.CheckIn)
	protected.POST("/shifts/checkout", cfg.Shift.CheckOut)

	manager := protected.Group("/manager")
	manager.GET("/check-role", cfg.Manager.CheckRole)
	manager.GET("/projects", cfg.Manager.CurrentProject)
	manager.GET("/available-projects", cfg.Manager.AvailableProjects)
	manager.POST("/select-project", cfg.Manager.SelectProject)
	manager.POST("/create-group", cfg.Manager.CreateGroup)
	manager.GET("/employees", cfg.Manager.AvailableEmployees)
	manager.POST("/add-employee", cfg.Manager.AddEmployee)
	manager.POST("/group-members", cfg.Manager.GroupMembers)
	manager.GET("/groups", cfg.Manager.ListGroups)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Route not found",
		})
	})

	return r
}
