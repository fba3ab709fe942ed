package main

import (
	"context"
	"log"
	"os"

	"github.com/abinayasrim021-droid/shan-eats-assist/internal/auth"
	"github.com/abinayasrim021-droid/shan-eats-assist/internal/catalog"
	"github.com/abinayasrim021-droid/shan-eats-assist/internal/combo"
	"github.com/abinayasrim021-droid/shan-eats-assist/internal/db"
	"github.com/abinayasrim021-droid/shan-eats-assist/internal/order"
	"github.com/abinayasrim021-droid/shan-eats-assist/internal/router"
	"github.com/abinayasrim021-droid/shan-eats-assist/internal/session"
	"github.com/abinayasrim021-droid/shan-eats-assist/internal/storage"
	"github.com/abinayasrim021-droid/shan-eats-assist/internal/voice"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"ADMIN_EMAIL",
		"ADMIN_PASSWORD",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── LOGGER ─────────────────────────
	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("❌ Logger init failed:", err)
	}
	defer zapLogger.Sync()
	logger := zapLogger.Sugar()

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── SESSIONS ─────────────────────────
	sessions := session.NewManager()

	// ───────────────────────── REPOS ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	catalogRepo := catalog.NewPostgresRepository(pgDB)
	orderRepo := order.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	authService := auth.NewService(userRepo)
	comboService := combo.NewService(catalogRepo)
	voiceService := voice.NewService(catalogRepo, sessions, logger)
	orderService := order.NewService(orderRepo, sessions, logger)

	// Seed the canteen admin account
	if err := authService.EnsureAdmin("Canteen Admin", os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD")); err != nil {
		log.Fatal("❌ Admin seed failed:", err)
	}

	// ───────────────────────── HANDLERS ─────────────────────────
	handlers := router.Handlers{
		Auth:         auth.NewHandler(authService, sessions),
		Catalog:      catalog.NewHandler(catalogRepo, sessions),
		CatalogAdmin: catalog.NewAdminHandler(catalogRepo, r2Client),
		Combo:        combo.NewHandler(comboService, sessions),
		Voice:        voice.NewHandler(voiceService),
		Session:      session.NewHandler(sessions, catalogRepo),
		Order:        order.NewHandler(orderService),
		OrderAdmin:   order.NewAdminHandler(orderService),
	}

	// ───────────────────────── START ─────────────────────────
	r := router.NewRouter(handlers)

	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
