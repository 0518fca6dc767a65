package api

import (
	"io"
	"net/http"

	"contactform/internal/api/handlers"
	"contactform/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Server is the local development stand-in for the send-email collaborator
type Server struct {
	router *gin.Engine
}

// NewServer creates a new server instance
func NewServer() *Server {
	gin.SetMode(gin.ReleaseMode)

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())

	server := &Server{router: router}
	server.initializeRoutes()

	return server
}

func (s *Server) initializeRoutes() {
	contactHandler := handlers.NewContactHandler()
	healthHandler := handlers.NewHealthHandler()

	s.router.GET("/health", healthHandler.Check)

	api := s.router.Group("/api")
	{
		api.POST("/send-email", contactHandler.SendEmail)
	}
}

// Router exposes the underlying handler, mainly for tests
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the server on the given port
func (s *Server) Start(port string) error {
	return s.router.Run(":" + port)
}
