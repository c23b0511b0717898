package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"restoflow/internal/config"
	"restoflow/internal/database"
	"restoflow/internal/events"
	"restoflow/internal/store"
)

func main() {
	config.Load()

	pool, err := database.Connect(context.Background(), config.AppEnv.DatabaseURL, config.AppEnv.DBMaxConns)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	log.Println("PostgreSQL connected, max connections:", pool.Config().MaxConns)

	if err := database.EnsureTables(pool); err != nil {
		log.Fatalf("schema setup failed: %v", err)
	}
	// Customer resolution relies on the unique index; without it duplicates
	// are possible.
	if err := database.EnsureCustomerIndexes(pool); err != nil {
		log.Fatalf("customer index setup failed: %v", err)
	}
	if err := database.EnsureOrderIndexes(pool); err != nil {
		log.Printf("[DB] [WARN] order index warning: %v", err)
	}

	var publisher events.Publisher = events.Noop{}
	if config.AppEnv.RabbitMQURL != "" {
		rabbit, err := events.Dial(config.AppEnv.RabbitMQURL, config.AppEnv.EventsExchange)
		if err != nil {
			log.Printf("[EVENTS] [WARN] events disabled: %v", err)
		} else {
			publisher = rabbit
		}
	} else {
		log.Println("[EVENTS] [INFO] RABBITMQ_URL not set, events disabled")
	}
	defer publisher.Close()

	st := store.New(pool)

	r := gin.Default()
	registerRoutes(r, st, publisher, config.AppEnv)

	if err := r.Run(":" + config.AppEnv.Port); err != nil {
		log.Fatal(err)
	}
}
