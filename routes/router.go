package routes

import (
	"slices"

	"debatecoach/controllers"
	"debatecoach/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Deps is everything the router needs to wire handlers
type Deps struct {
	Log            zerolog.Logger
	AllowedOrigins []string
	Debate         *controllers.DebateController
	Status         *controllers.StatusController
}

// SetupRouter builds the gin engine with every route under /api
func SetupRouter(d Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.RequestLogger(d.Log))
	router.Use(cors.New(corsConfig(d.AllowedOrigins)))

	api := router.Group("/api")
	SetupStatusRoutes(api, d.Status)
	SetupDebateRoutes(api, d.Debate)

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middlewares.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middlewares.RequestIDHeader},
		AllowCredentials: true,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		// Browsers reject "*" on credentialed requests, so echo the origin back.
		cfg.AllowOriginFunc = func(string) bool { return true }
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

func SetupDebateRoutes(api *gin.RouterGroup, dc *controllers.DebateController) {
	api.POST("/generate-debate", dc.GenerateDebate)
	api.POST("/generate-text", dc.GenerateText)
	api.POST("/gemini-generate", dc.GenerateText)
}

func SetupStatusRoutes(api *gin.RouterGroup, sc *controllers.StatusController) {
	api.GET("/", sc.Root)
	api.POST("/status", sc.CreateStatusCheck)
	api.GET("/status", sc.GetStatusChecks)
}
