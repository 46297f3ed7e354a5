package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	v1 "github.com/civicfix-server/api/v1"
	"github.com/civicfix-server/config"
	"github.com/civicfix-server/database"
	"github.com/civicfix-server/logger"
)

func main() {
	config.LoadEnv()
	logger.Init()

	// Fail fast on missing secrets before touching the database.
	config.JWTSecret()
	config.AdminUsername()
	config.MustGetEnv("ADMIN_PASSWORD")
	config.MustGetEnv("TECH_PASSWORD")

	database.Initialize()
	if err := database.EnsureSeedData(database.DB); err != nil {
		slog.Error("failed to seed database", "error", err)
		os.Exit(1)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))

	v1.RegisterRoutes(router.Group("/api"))

	listener, port, err := listen(config.GetEnv("PORT", "4000"))
	if err != nil {
		slog.Error("unable to bind to any port", "error", err)
		os.Exit(1)
	}

	slog.Info("CivicFix server listening", "addr", fmt.Sprintf("http://localhost:%d", port))
	if err := router.RunListener(listener); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// listen binds the configured port, scanning upward through the next ten
// ports when the requested one is already in use.
func listen(portEnv string) (net.Listener, int, error) {
	port, err := strconv.Atoi(portEnv)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid PORT %q: %w", portEnv, err)
	}

	for i := 0; i < 10; i++ {
		l, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err == nil {
			return l, port, nil
		}
		if errors.Is(err, syscall.EADDRINUSE) {
			slog.Warn("port in use, trying next", "port", port)
			port++
			continue
		}
		return nil, 0, err
	}
	return nil, 0, fmt.Errorf("no free port found starting at %s", portEnv)
}
