package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/yaboywf/bb-website-v3/internal/config"
	"github.com/yaboywf/bb-website-v3/internal/db"
	"github.com/yaboywf/bb-website-v3/internal/handler"
	"github.com/yaboywf/bb-website-v3/internal/model"
	"github.com/yaboywf/bb-website-v3/internal/service"
)

func main() {
	// .env는 로컬 개발용, 없으면 무시
	_ = godotenv.Load()

	cfg := config.Load()
	ctx := context.Background()

	postgres, err := db.NewPostgres(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("Failed to connect to postgres: %v", err)
	}
	defer postgres.Close()

	if err := postgres.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	authService, err := service.NewAuthService(postgres, cfg.Auth)
	if err != nil {
		log.Fatalf("Failed to init auth service: %v", err)
	}
	appointmentService := service.NewAppointmentService(postgres, postgres)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(handler.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.CORS.AllowCredentials))

	router.GET("/", handler.Root)
	router.GET("/ping", handler.Ping)
	router.GET("/openapi.json", handler.OpenAPIDoc)

	api := router.Group("/api/v1")
	api.Use(handler.AuthMiddleware(authService))
	{
		api.GET("/get_appointments", appointmentHandler.GetAppointments)
		api.POST("/create_appointment", appointmentHandler.CreateAppointment)
		api.PUT("/update_appointment", appointmentHandler.UpdateAppointment)
		api.DELETE("/delete_appointment", appointmentHandler.DeleteAppointment)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, model.ErrorResponse{Message: "route not found"})
	})

	addr := ":" + cfg.Server.Port
	log.Printf("Listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
