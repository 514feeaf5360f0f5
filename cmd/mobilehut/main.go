package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"mobilehut/internal/config"
	"mobilehut/internal/docstore"
	"mobilehut/internal/events"
	"mobilehut/internal/http/handlers"
	"mobilehut/internal/payments"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			defer f.Close()
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	store, err := openStore(cfg)
	if err != nil {
		log.Fatal(err)
	}

	var pub events.Publisher = events.Nop{}
	if cfg.AMQPURL != "" {
		p, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.EventsExchange)
		if err != nil {
			log.Printf("[warn] events disabled: %v", err)
		} else {
			pub = p
		}
	}

	provider := payments.NewStripe(cfg.StripeSecretKey)
	if cfg.StripeSecretKey == "" {
		log.Printf("[warn] STRIPE_SECRET_KEY not set; /create-payment-intent will fail")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
		BodyLimit:    1 << 20, // 1 MiB
	})

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(helmet.New())
	app.Use(cors.New())
	app.Use(handlers.StoreTimeout(cfg.StoreTimeout))

	// ---------- Routes ----------
	deps := handlers.NewDeps(store, cfg, provider, pub)
	handlers.Register(app, deps, cfg.RequireAuth)
	app.Use(handlers.NotFound)

	go func() {
		log.Printf("[http] listening on :%s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("[http] shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("[warn] shutdown: %v", err)
	}
	if err := pub.Close(); err != nil {
		log.Printf("[warn] events close: %v", err)
	}
	if err := store.Close(ctx); err != nil {
		log.Printf("[warn] store close: %v", err)
	}
}

func openStore(cfg config.Config) (docstore.Store, error) {
	switch cfg.DBDriver {
	case "mongo":
		ctx, cancel := context.WithTimeout(context.Background(), cfg.StoreTimeout)
		defer cancel()
		return docstore.ConnectMongo(ctx, cfg.MongoURI(), cfg.DBName)
	case "sqlite":
		return docstore.OpenSQLite(cfg.DBDSN)
	default:
		return nil, fmt.Errorf("%w: %q", docstore.ErrUnknownDriver, cfg.DBDriver)
	}
}
