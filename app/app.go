package app

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/am5510/hiyeum/db"
	"github.com/am5510/hiyeum/notify"
	"github.com/am5510/hiyeum/session"
	"github.com/am5510/hiyeum/storage"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Shorthand aliases for handlers
type Ctx = gin.Context
type H = gin.H

// App aggregates the process-wide dependencies.
type App struct {
	Router   *gin.Engine
	DB       *gorm.DB
	RDB      *redis.Client
	Store    storage.Uploader
	Notifier notify.Notifier
	Config   Config

	adminSess *session.AdminSessionStore
}

// Config is read from environment variables.
type Config struct {
	RedisAddr     string
	RedisPwd      string
	WebOrigin     string
	AdminPassword string
	SessionTTL    time.Duration

	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2Bucket          string
	R2PublicURL       string

	LineChannelSecret string
	LineChannelToken  string
	LineGroupID       string
	LineUserID        string
}

func (a *App) AdminSessions() *session.AdminSessionStore { return a.adminSess }

func MustNew() *App {
	cfg := loadConfig()

	// --- DB: Postgres ---
	dbConn := db.ConnectDB()

	// --- Redis ---
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPwd, DB: 0})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis: %v", err)
	}

	// --- Object storage (R2) ---
	store, err := storage.NewR2Store(context.Background(),
		cfg.R2AccountID, cfg.R2AccessKeyID, cfg.R2SecretAccessKey, cfg.R2Bucket, cfg.R2PublicURL)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	// --- LINE push ---
	notifier, err := notify.NewLineNotifier(
		cfg.LineChannelSecret, cfg.LineChannelToken, cfg.LineGroupID, cfg.LineUserID)
	if err != nil {
		log.Fatalf("line: %v", err)
	}

	// --- Gin ---
	r := gin.Default()
	useCORS(r, cfg.WebOrigin)

	a := &App{
		Router: r, DB: dbConn, RDB: rdb, Store: store, Notifier: notifier, Config: cfg,
		adminSess: session.NewAdminSessionStore(rdb, cfg.SessionTTL),
	}
	return a
}

func (a *App) Close() { _ = a.RDB.Close() }

func loadConfig() Config {
	get := func(k, def string) string {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		return v
	}

	// admin session lives one day unless overridden
	ttl := 24 * time.Hour
	if v := os.Getenv("SESSION_TTL_SECONDS"); v != "" {
		if d, err := time.ParseDuration(v + "s"); err == nil {
			ttl = d
		}
	}

	cfg := Config{
		RedisAddr:     get("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPwd:      os.Getenv("REDIS_PASSWORD"),
		WebOrigin:     get("WEB_ORIGIN", "http://localhost:3000"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		SessionTTL:    ttl,

		R2AccountID:       os.Getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2Bucket:          os.Getenv("R2_BUCKET_NAME"),
		R2PublicURL:       strings.TrimRight(os.Getenv("R2_PUBLIC_URL"), "/"),

		LineChannelSecret: os.Getenv("LINE_CHANNEL_SECRET"),
		LineChannelToken:  os.Getenv("LINE_CHANNEL_ACCESS_TOKEN"),
		LineGroupID:       os.Getenv("LINE_GROUP_ID"),
		LineUserID:        os.Getenv("LINE_USER_ID"),
	}

	if cfg.AdminPassword == "" {
		log.Println("WARNING: ADMIN_PASSWORD is not set, admin login is disabled")
	}
	return cfg
}
