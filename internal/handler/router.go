package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Version is reported by the service metadata endpoint.
const Version = "1.0.0"

// NewRouter assembles the gin engine with all middleware and routes. Kept
// separate from main so tests can drive the full route table with httptest.
func NewRouter() *gin.Engine {
	router := gin.New()

	router.Use(gin.Logger())

	// Panics become a 500 with a generic message; the process keeps serving.
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Something went wrong while handling the request",
			"error":   fmt.Sprintf("%v", recovered),
		})
	}))

	// Any origin may call the API.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Service metadata
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    "GameVault API",
			"version": Version,
			"endpoints": []string{
				"GET /api/games",
				"GET /api/games/:id",
				"POST /api/games",
				"PUT /api/games/:id",
				"DELETE /api/games/:id",
				"PATCH /api/games/:id/favorite",
			},
		})
	})

	api := router.Group("/api")
	{
		gameRoutes := api.Group("/games")
		{
			gameRoutes.GET("", GetGames)
			gameRoutes.GET("/:id", GetGameByID)
			gameRoutes.POST("", CreateGame)
			gameRoutes.PUT("/:id", UpdateGame)
			gameRoutes.DELETE("/:id", DeleteGame)
			gameRoutes.PATCH("/:id/favorite", ToggleFavoriteGame)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"message": "API endpoint not found"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	return router
}
