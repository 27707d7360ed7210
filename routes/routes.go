package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ErosMello/jornalescolar/config"
	"github.com/ErosMello/jornalescolar/handlers"
	"github.com/ErosMello/jornalescolar/middleware"
)

func SetupRouter(cfg *config.Config, h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8080", "http://127.0.0.1:8080", "http://localhost:5500", "http://127.0.0.1:5500", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.RateLimit())
	router.Use(middleware.DeviceID())

	// Public routes
	router.POST("/api/signup", h.Signup)
	router.POST("/api/login", h.Login)
	router.GET("/api/news", h.GetNews)
	router.GET("/api/posts/:id", h.GetPost)

	// Ratings: open to everyone, identity attached when present
	rated := router.Group("/api")
	rated.Use(middleware.OptionalJWTAuth(cfg.JWTSecret))
	rated.POST("/posts/:id/rating", h.SubmitRating)
	rated.GET("/posts/:id/rating", h.GetUserRating)
	rated.GET("/posts/:id/rating/average", h.GetPostAverage)

	// Staff routes
	protected := router.Group("/api")
	protected.Use(middleware.JWTAuth(cfg.JWTSecret))
	protected.POST("/logout", h.Logout)
	protected.GET("/me/permission", h.MyPermission)
	protected.POST("/posts", h.CreatePost)
	protected.PUT("/posts/:id", h.UpdatePost)

	// Admin routes
	admin := router.Group("/api")
	admin.Use(middleware.JWTAuth(cfg.JWTSecret), middleware.RequireAdmin())
	admin.DELETE("/posts/:id", h.DeletePost)

	router.NoRoute(func(c *gin.Context) {
		if len(c.Request.URL.Path) >= 4 && c.Request.URL.Path[:4] == "/api" {
			c.JSON(404, gin.H{"error": "endpoint not found", "path": c.Request.URL.Path})
			return
		}
		c.Next()
	})

	return router
}
