package main

import (
	"github.com/gin-gonic/gin"

	"restoflow/internal/config"
	"restoflow/internal/events"
	"restoflow/internal/handlers"
	"restoflow/internal/middleware"
	"restoflow/internal/store"
)

func registerRoutes(r *gin.Engine, st *store.Store, publisher events.Publisher, cfg config.Config) {
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(cfg.CORSOrigin))

	r.GET("/health", handlers.Health(st))

	// Login stays outside the session group so a till holding an expired
	// token can still get a new one.
	r.POST("/api/login", handlers.Login(st, cfg.JWTSecret, cfg.AccessTokenTTL))

	api := r.Group("/api")
	api.Use(middleware.SessionAuth(cfg.JWTSecret))
	{
		api.GET("/menu", handlers.GetMenu(st))
		api.POST("/menu", handlers.CreateMenuItem(st))
		api.PATCH("/menu/:id", handlers.UpdateMenuAvailability(st))

		api.GET("/customers", handlers.GetCustomers(st))

		api.GET("/orders", handlers.GetOrders(st))
		api.POST("/orders", handlers.CreateOrder(st, publisher))

		api.POST("/payment", handlers.RecordPayment(st, publisher))

		api.GET("/reports/summary", handlers.GetSummary(st))
	}
}
