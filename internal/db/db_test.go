package db

import (
	"os"
	"testing"
)

// TestConnectPostgres exercises the connection path when DATABASE_URL is available
func TestConnectPostgres(t *testing.T) {
	// Save original DATABASE_URL
	originalDSN := os.Getenv("DATABASE_URL")
	defer func() {
		if originalDSN != "" {
			os.Setenv("DATABASE_URL", originalDSN)
		} else {
			os.Unsetenv("DATABASE_URL")
		}
	}()

	t.Run("valid DATABASE_URL should connect and seed", func(t *testing.T) {
		// Skip unless a real database is wired up
		if os.Getenv("DATABASE_URL") == "" {
			t.Skip("DATABASE_URL not set, skipping integration test")
		}

		pool := ConnectPostgres()
		defer pool.Close()
	})
}
