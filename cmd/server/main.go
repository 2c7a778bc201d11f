package main // Entry point package

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"    // loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/visitor-entry-system/internal/config"
	"github.com/iliyamo/visitor-entry-system/internal/database"
	"github.com/iliyamo/visitor-entry-system/internal/handler"
	"github.com/iliyamo/visitor-entry-system/internal/middleware"
	"github.com/iliyamo/visitor-entry-system/internal/queue"
	"github.com/iliyamo/visitor-entry-system/internal/repository"
	"github.com/iliyamo/visitor-entry-system/internal/router"
	"github.com/iliyamo/visitor-entry-system/internal/service/queue_publisher"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment directly

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("schema: %v", err)
	}

	users := repository.NewUserRepo(db)
	buildings := repository.NewBuildingRepo(db)
	visitors := repository.NewVisitorRepo(db)

	authHandler := handler.NewAuthHandler(cfg, users)
	buildingHandler := handler.NewBuildingHandler(buildings)
	visitorHandler := handler.NewVisitorHandler(visitors)

	// Check-in events only flow when a broker is configured; without one the
	// service runs identically minus the downstream notification.
	if os.Getenv("RABBITMQ_URL") != "" || os.Getenv("AMQP_URL") != "" {
		visitorHandler.Notify = func(ctx context.Context, ev queue.VisitorCheckedInEvent) {
			_ = queue_publisher.PublishVisitorCheckedIn(ctx, ev)
		}
		go func() {
			if err := queue.StartVisitorConsumer(); err != nil {
				log.Printf("visitor-consumer stopped: %v", err)
			}
		}()
	}

	// The buildings listing cache degrades to a pass-through when Redis is
	// unreachable at startup.
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), config.NewRedisClient())

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler)
	router.RegisterBuildings(e, buildingHandler, cacheMW)
	router.RegisterVisitors(e, visitorHandler, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
