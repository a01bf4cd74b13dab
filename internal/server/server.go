package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"postly/internal/config"
	"postly/internal/database"
	"postly/internal/handlers"
	"postly/internal/middleware"
)

type Server struct {
	cfg     *config.Config
	db      database.Service
	handler *handlers.Handler
}

// New wires the router on top of an already-open database service.
func New(cfg *config.Config, db database.Service) *Server {
	handler := handlers.NewHandler(db.GetDB(), cfg.JWTSecret, cfg.AccessTokenTTL)

	return &Server{
		cfg:     cfg,
		db:      db,
		handler: handler,
	}
}

// HTTPServer returns the configured http.Server ready to listen.
func (s *Server) HTTPServer() *http.Server {
	router := s.RegisterRoutes()

	return &http.Server{
		Addr:         "0.0.0.0:" + s.cfg.Port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.Default()

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.db.Health())
	})

	// API routes
	api := r.Group("/api")
	{
		// Public routes
		api.POST("/users", s.handler.Auth.Register)
		api.POST("/login", s.handler.Auth.Login)

		// Protected routes (authentication required)
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(s.cfg.JWTSecret))
		{
			protected.GET("/me", s.handler.Auth.GetMe)

			protected.GET("/posts", s.handler.Post.GetPosts)
			protected.GET("/posts/:id", s.handler.Post.GetPost)
			protected.POST("/posts", s.handler.Post.CreatePost)
			protected.PUT("/posts/:id", s.handler.Post.UpdatePost)
			protected.DELETE("/posts/:id", s.handler.Post.DeletePost)

			protected.POST("/vote", s.handler.Vote.Vote)

			protected.GET("/users/:id", s.handler.User.GetUser)
		}
	}

	return r
}
