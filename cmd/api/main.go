package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"syscall"
	"time"

	"dreamsproperty/internal/config"
	"dreamsproperty/internal/database"
	"dreamsproperty/internal/middleware"
	"dreamsproperty/internal/modules/property"
	"dreamsproperty/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	store := selectStore(cfg)

	service := property.NewService(store)
	handler := property.NewHandler(service)

	r := buildRouter(cfg, handler)

	if err := listenAndServe(r, cfg.Server.Port, cfg.Server.MaxPortAttempts); err != nil {
		log.Fatal(err)
	}
}

// selectStore decides once, at startup, which store backs the service.
// If the database cannot be reached the process runs in demo mode on the
// in-memory store; there is no per-request fallback.
func selectStore(cfg *config.Config) property.Store {
	store, err := connectStore(cfg)
	if err != nil {
		log.Println("Error connecting to database:", err)
		log.Println("App will continue to run in demo mode.")
		return repository.NewMemoryPropertyRepository(repository.DemoProperties())
	}

	log.Println("Database connection established successfully.")
	return store
}

func connectStore(cfg *config.Config) (property.Store, error) {
	db, err := database.Connect(cfg.Database.DSN())
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := database.Migrate(db); err != nil {
		return nil, err
	}

	return repository.NewPropertyRepository(db), nil
}

func buildRouter(cfg *config.Config, handler *property.Handler) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.ErrorLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       10 * time.Minute,
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Dreams Property API is running")
	})

	api := r.Group("/api")
	handler.RegisterRoutes(api)

	return r
}

// listenAndServe binds the first free port starting at port, stepping up
// by one when the address is already taken.
func listenAndServe(r *gin.Engine, port, maxAttempts int) error {
	for attempt := 0; ; attempt++ {
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err != nil {
			if errors.Is(err, syscall.EADDRINUSE) && attempt < maxAttempts {
				log.Printf("Port %d is in use, trying %d", port, port+1)
				port++
				continue
			}
			return err
		}

		log.Printf("Server running on port %d", port)
		log.Printf("API is available at http://localhost:%d/api", port)
		return http.Serve(ln, r)
	}
}
