package handlers

import (
	"log/slog"
	"path/filepath"

	"stepup-tasks/internal/config"
	"stepup-tasks/internal/middleware"
	"stepup-tasks/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// RouterDeps collects everything the HTTP surface needs. Tests swap the
// services for in-memory fakes.
type RouterDeps struct {
	DB          *mongo.Database
	Users       services.UserService
	Tasks       services.TaskService
	Tokens      services.TokenService
	Logger      *slog.Logger
	MongoConfig config.MongoConfig
	StaticDir   string
}

// NewRouter wires middleware and routes. Register and login are open;
// every task route runs behind the auth guard.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(deps.Logger),
		middleware.RecoveryWithLog(deps.Logger),
		cors.Default(),
	)

	if deps.StaticDir != "" {
		router.StaticFile("/", filepath.Join(deps.StaticDir, "index.html"))
		router.StaticFile("/style.css", filepath.Join(deps.StaticDir, "style.css"))
		router.StaticFile("/script.js", filepath.Join(deps.StaticDir, "script.js"))
	}

	health := NewHealthHandler(deps.DB, deps.MongoConfig)
	router.GET("/health", health.Health)

	auth := NewAuthHandler(deps.DB, deps.Users, deps.Tokens)
	api := router.Group("/api")
	{
		api.POST("/register", auth.Register)
		api.POST("/login", auth.Login)
	}

	tasks := NewTaskHandler(deps.DB, deps.Tasks)
	protected := api.Group("/tasks", middleware.RequireAuth(deps.Tokens))
	{
		protected.GET("", tasks.ListTasks)
		protected.POST("", tasks.CreateTask)
		protected.PUT("/:id", tasks.UpdateTask)
		protected.DELETE("/:id", tasks.DeleteTask)
	}

	return router
}
