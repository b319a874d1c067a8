package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

const (
	DefaultAPIOrigin        = "https://api.menuqr.app"
	DefaultStorefrontURL    = "https://menuqr.app"
	DefaultFallbackTenantID = "demo-tenant"
	APIVersionPath          = "/api/v1"
)

type Config struct {
	APIBaseURL       string
	StorefrontURL    string
	FallbackTenantID string
	SessionStore     string
	ListenAddr       string
	HTTPTimeout      time.Duration
	ActivityTopic    string
	KafkaBroker      string
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Notice: .env not loaded (%v), using process environment", err)
	}

	fallback, ok := os.LookupEnv("FALLBACK_TENANT_ID")
	if !ok {
		fallback = DefaultFallbackTenantID
	}

	return Config{
		APIBaseURL:       NormalizeAPIBaseURL(getEnv("API_URL", DefaultAPIOrigin)),
		StorefrontURL:    strings.TrimRight(getEnv("STOREFRONT_URL", DefaultStorefrontURL), "/"),
		FallbackTenantID: fallback,
		SessionStore:     strings.ToLower(getEnv("SESSION_STORE", "redis")),
		ListenAddr:       getEnv("LISTEN_ADDR", ":8080"),
		HTTPTimeout:      getEnvDuration("HTTP_TIMEOUT", 0),
		ActivityTopic:    getEnv("ACTIVITY_TOPIC", "dashboard-activity"),
		KafkaBroker:      os.Getenv("KAFKA_BROKER"),
	}
}

// NormalizeAPIBaseURL makes sure the origin ends with the versioned API path
// exactly once.
func NormalizeAPIBaseURL(origin string) string {
	base := strings.TrimRight(strings.TrimSpace(origin), "/")
	if base == "" {
		base = DefaultAPIOrigin
	}
	for strings.HasSuffix(base, APIVersionPath+APIVersionPath) {
		base = strings.TrimSuffix(base, APIVersionPath)
	}
	if !strings.HasSuffix(base, APIVersionPath) {
		base += APIVersionPath
	}
	return base
}

// PostgresDSN builds the connection string shared by the session table and
// its change listener.
func PostgresDSN() string {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	return "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable"
}

func MustInitPostgres() *sql.DB {
	db, err := sql.Open("postgres", PostgresDSN())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_HOST", "localhost") + ":" + getEnv("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       getEnvInt("REDIS_DB", 0),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

// NewKafkaWriter returns nil when no broker is configured.
func NewKafkaWriter(broker, topic string) *kafka.Writer {
	if broker == "" {
		return nil
	}
	return &kafka.Writer{
		Addr:     kafka.TCP(broker),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

// NewKafkaReader returns nil when no broker is configured. An empty group
// reads the partition from the latest offset without committing.
func NewKafkaReader(broker, topic, group string) *kafka.Reader {
	if broker == "" {
		return nil
	}
	cfg := kafka.ReaderConfig{
		Brokers: []string{broker},
		Topic:   topic,
		GroupID: group,
	}
	if group == "" {
		cfg.StartOffset = kafka.LastOffset
	}
	return kafka.NewReader(cfg)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %s", key, v, defaultValue)
		return defaultValue
	}
	return d
}
