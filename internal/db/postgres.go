package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/abinayasrim021-droid/shan-eats-assist/internal/catalog"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	// Seed the menu on first boot
	if err := seedMenu(db); err != nil {
		log.Fatal("Failed to seed menu:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'STUDENT',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// MENU ITEMS
	// -------------------------------
	menuItemsSQL := `
		CREATE TABLE IF NOT EXISTS menu_items (
			id VARCHAR(50) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price INTEGER NOT NULL,
			category VARCHAR(50) NOT NULL,
			image_url VARCHAR(500) NOT NULL DEFAULT '',
			available BOOLEAN NOT NULL DEFAULT TRUE,
			prep_time_minutes INTEGER NOT NULL DEFAULT 5,
			allergens TEXT[] NOT NULL DEFAULT '{}',
			is_veg BOOLEAN NOT NULL DEFAULT TRUE,
			position INTEGER NOT NULL
		)
	`
	if _, err := db.Exec(ctx, menuItemsSQL); err != nil {
		return err
	}

	// -------------------------------
	// ORDERS
	// -------------------------------
	ordersSQL := `
		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			student_email VARCHAR(255) NOT NULL,
			student_name VARCHAR(255) NOT NULL,
			total INTEGER NOT NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'received',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			estimated_minutes INTEGER NOT NULL DEFAULT 0
		)
	`
	if _, err := db.Exec(ctx, ordersSQL); err != nil {
		return err
	}

	orderItemsSQL := `
		CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id UUID NOT NULL,
			item_id VARCHAR(50) NOT NULL,
			name VARCHAR(255) NOT NULL,
			price INTEGER NOT NULL,
			quantity INTEGER NOT NULL,
			FOREIGN KEY (order_id) REFERENCES orders(id)
		)
	`
	if _, err := db.Exec(ctx, orderItemsSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}

// seedMenu inserts the canteen menu when the table is empty. Existing
// rows win, so availability toggles and image uploads survive restarts.
func seedMenu(db *pgxpool.Pool) error {
	ctx := context.Background()

	var count int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for position, item := range catalog.SeedItems() {
		tags := make([]string, 0, len(item.Allergens))
		for _, a := range item.Allergens {
			tags = append(tags, string(a))
		}

		_, err := db.Exec(ctx, `
			INSERT INTO menu_items
				(id, name, description, price, category, image_url, available, prep_time_minutes, allergens, is_veg, position)
			VALUES
				($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`,
			item.ID, item.Name, item.Description, item.Price, string(item.Category),
			item.ImageURL, item.Available, item.PrepTimeMinutes, tags, item.Veg, position)
		if err != nil {
			return err
		}
	}

	log.Println("✅ Menu seeded")
	return nil
}
