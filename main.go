package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/rs/cors"

	"inkpost/api/router"
	"inkpost/config"
	"inkpost/db"
	"inkpost/internal/logger"
)

// @title           Inkpost API
// @version         1.0
// @description     Blogging platform REST API: users, blogs, threaded comments, likes and visitor analytics
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.InitApp()
	cfg := config.GetConfig()

	if os.Getenv("LOG_LEVEL") == "" && cfg.Logging.Level != "" {
		os.Setenv("LOG_LEVEL", cfg.Logging.Level)
	}
	logger.InitFromEnv("LOG_LEVEL")

	if err := db.Init(context.Background()); err != nil {
		log.Fatal(err)
	}

	r, err := router.New()
	if err != nil {
		log.Fatal(err)
	}
	corsOptions := cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsOptions.AllowedOrigins = cfg.CORS.AllowedOrigins
	} else {
		corsOptions.AllowedOrigins = []string{"*"}
	}
	handler := cors.New(corsOptions).Handler(r)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Log.Infof("listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
