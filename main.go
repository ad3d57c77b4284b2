package main

import (
	"log"
	"os"

	"matchpoint-api/config"
	_ "matchpoint-api/docs" // Swagger docs
	"matchpoint-api/handlers"
	"matchpoint-api/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Matchpoint API
// @version         1.0
// @description     API for recording tennis matches, per-set game scores and winners

// @license.name  MIT
// @license.url   http://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	playerService := services.NewPlayerService(db)
	matchService := services.NewMatchService(db, playerService)
	scoreService := services.NewScoreService(db)

	matchHandler := handlers.NewMatchHandler(matchService)
	scoreHandler := handlers.NewScoreHandler(scoreService)

	r := gin.Default()
	r.Use(cors.Default())

	matches := r.Group("/matches")
	{
		matches.GET("", matchHandler.GetMatches)
		matches.POST("", matchHandler.CreateMatch)
		matches.GET("/:id", matchHandler.GetMatch)
		matches.PATCH("/:id", matchHandler.UpdateMatch)
	}

	r.POST("/scores", scoreHandler.SubmitScore)

	// Swagger endpoint
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/health", healthHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	r.Run(":" + port)
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Message  string `json:"message" example:"Server is running"`
	Database string `json:"database" example:"connected"`
}

// @Summary Health Check
// @Description Check if the server is running and database is connected
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func healthHandler(c *gin.Context) {
	c.JSON(200, HealthResponse{
		Message:  "Server is running",
		Database: "connected",
	})
}
