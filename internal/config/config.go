package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	Port           string
	DatabaseURL    string
	DBMaxConns     int32
	JWTSecret      string
	AccessTokenTTL time.Duration
	RabbitMQURL    string
	EventsExchange string
	CORSOrigin     string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = FromEnv()
}

// FromEnv builds a Config from the current process environment.
func FromEnv() Config {
	return Config{
		Port:           getEnvOrDefault("PORT", "3000"),
		DatabaseURL:    requireEnv("DATABASE_URL"),
		DBMaxConns:     int32(getIntEnv("DB_MAX_CONNS", 10)),
		JWTSecret:      getEnvOrDefault("JWT_SECRET", ""),
		AccessTokenTTL: getDurationEnv("ACCESS_TOKEN_TTL", 480, time.Minute),
		RabbitMQURL:    getEnvOrDefault("RABBITMQ_URL", ""),
		EventsExchange: getEnvOrDefault("EVENTS_EXCHANGE", "pos.events"),
		CORSOrigin:     getEnvOrDefault("CORS_ORIGIN", "*"),
	}
}
