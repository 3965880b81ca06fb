package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/bapa-labs/bapa-api/internal/config"
	"github.com/bapa-labs/bapa-api/internal/database"
	"github.com/bapa-labs/bapa-api/internal/handler"
	"github.com/bapa-labs/bapa-api/internal/middleware"
	"github.com/bapa-labs/bapa-api/internal/queue"
	"github.com/bapa-labs/bapa-api/internal/repository"
	"github.com/bapa-labs/bapa-api/internal/router"
	"github.com/bapa-labs/bapa-api/internal/store"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	// Select the store variant once at startup. Handlers only ever see the
	// Store interface.
	var st store.Store
	if cfg.StoreMode == config.StoreModeMock {
		st = store.NewNullStore()
		log.Printf("store: mock mode, no database connection")
	} else {
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("store: connect failed: %v", err)
		}
		defer db.Close()
		st = store.NewLiveStore(db)
	}

	users := repository.NewUserRepo(st)
	responses := repository.NewResponseRepo(st)
	keys := repository.NewKeyRepo(st)

	// Optional Redis cache for the diagnostic endpoints; nil client means
	// the middleware is a pass-through.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis: unavailable, response cache disabled")
	}
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	// Background consumer for the submission event stream. It reconnects on
	// its own and never blocks startup.
	go func() {
		if err := queue.StartSubmissionConsumer(); err != nil {
			log.Printf("submission-consumer: stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e, handler.NewStatusHandler(st, cfg.StoreMode), cache)
	router.RegisterAPI(e,
		handler.NewSubmitHandler(users, responses, keys),
		handler.NewProfileHandler(users, responses, keys))

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, store=%s)", addr, cfg.Env, cfg.StoreMode)

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err)
	}
}
