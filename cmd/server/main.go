package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"fitcircle/backend/internal/auth"
	"fitcircle/backend/internal/config"
	"fitcircle/backend/internal/database"
	"fitcircle/backend/internal/discovery"
	"fitcircle/backend/internal/handler"
	"fitcircle/backend/internal/profile"
	"fitcircle/backend/internal/relationship"
	"fitcircle/backend/internal/visibility"
	"fitcircle/backend/pkg/logger"

	// Swagger imports
	_ "fitcircle/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           FitCircle API
// @version         1.0
// @description     This is the API for the FitCircle service.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Setup(config.AppConfig.LogLevel)

	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	// Wire the stores and the policy core. The default tier table is a
	// value handed to the engine and redactor here, not package state.
	profiles := profile.NewGormStore(database.DB)
	relationStore := relationship.NewGormStore(database.DB)
	resolver := relationship.NewResolver(relationStore)
	relations := relationship.NewService(relationStore)

	engine := visibility.NewEngine(visibility.DefaultTiers())
	redactor := visibility.NewRedactor(engine)
	privacy := profile.NewPrivacyService(profiles, visibility.DefaultTiers())
	ranker := discovery.NewRanker(profiles, resolver, engine, redactor)

	h := handler.New(profiles, privacy, relations, resolver, redactor, ranker)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", h.Register)
			authRoutes.POST("/login", h.Login)
		}

		// User routes (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware())
		{
			userRoutes.GET("", h.SearchUsers) // Must be before /:id
			userRoutes.GET("/me", h.GetMe)
			userRoutes.GET("/me/requests", h.GetRequests)
			userRoutes.GET("/me/privacy", h.GetPrivacySettings)
			userRoutes.PUT("/me/privacy", h.UpdatePrivacySettings)
			userRoutes.GET("/:id", h.PreviewUser)

			// Connection routes
			userRoutes.POST("/:id/connect", h.Connect)
			userRoutes.POST("/:id/accept", h.AcceptRequest)
			userRoutes.POST("/:id/decline", h.DeclineRequest)
			userRoutes.POST("/:id/block", h.BlockUser)
			userRoutes.DELETE("/:id/connect", h.Disconnect)
		}
	}

	addr := ":" + config.AppConfig.Port
	log.Info().Str("addr", addr).Msg("server is running")
	log.Info().Msg("Swagger UI is available at http://localhost:8080/swagger/index.html")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
