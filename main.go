package main

import (
	"log"
	"os"

	_ "campusq/docs"
	"campusq/internal/auth"
	"campusq/internal/handlers"
	"campusq/internal/models"
	"campusq/internal/queue"
	"campusq/internal/storage"
	"campusq/internal/store"
	"campusq/internal/tasks"
	"campusq/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @Title						CampusQ API
// @Description				Campus queue management service
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	if os.Getenv("ENV_CHECK") == "" {
		if err := godotenv.Load(); err != nil {
			log.Fatal("failed to load .env: ", err)
		}
	}

	storage.ConnectDatabase()

	if err := storage.DB.AutoMigrate(&models.Queue{}, &models.Admin{}); err != nil {
		log.Fatal("migration failed: ", err)
	}

	storage.InitRedis()

	var opts []queue.Option
	if os.Getenv("STRICT_SERVICES") == "true" {
		opts = append(opts, queue.WithStrictServices())
	}
	svc := queue.NewService(store.NewGormStore(storage.DB), opts...)

	tasks.InitScheduler(svc)

	hub := ws.NewHub()
	go hub.Run()

	h := handlers.New(svc, hub, storage.RedisClient)
	authHandler := handlers.NewAuthHandler(store.NewGormAdminStore(storage.DB))

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/refresh", authHandler.RefreshToken)
	}

	// Visitor-facing routes: joining and watching a queue need no account.
	r.GET("/api/queues/:id", h.GetQueue)
	r.POST("/api/queues/:id/join", h.JoinQueue)
	r.GET("/api/queues/:id/ws", hub.QueueWebSocketHandler)
	r.POST("/api/cleanup", h.Cleanup)

	admin := r.Group("/api/queues", auth.AuthMiddleware())
	{
		admin.POST("", h.CreateQueue)
		admin.GET("", h.ListQueues)
		admin.PATCH("/:id", h.PatchQueue)
		admin.DELETE("/:id", h.DeleteQueue)
		admin.POST("/:id/serve", h.ServeEntry)
		admin.GET("/:id/export", h.ExportQueue)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal("server failed: ", err)
	}
}
