package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"tickoff-app/tickoff/config"
	"tickoff-app/tickoff/database"
	"tickoff-app/tickoff/middleware"
	"tickoff-app/tickoff/routes"
	"tickoff-app/tickoff/services"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cfg := config.Load()

	db, err := database.Setup(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	authService := services.NewAuthService(cfg.JWTSecret, cfg.JWTExpirationHours)
	userService := services.NewUserService(authService)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	routes.RegisterHealthRoutes(router, db)
	routes.RegisterAuthRoutes(router, db, authService, userService)

	authorized := router.Group("/", middleware.AuthMiddleware(authService))
	routes.RegisterTodoRoutes(authorized.Group("todos"), db, services.TodoServiceInstance, services.DurationServiceInstance)
	routes.RegisterUserRoutes(authorized.Group("users"), db, userService)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down server...")
		db.Close()
		os.Exit(0)
	}()

	log.Printf("API server is running on port %s", cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
