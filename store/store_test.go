package store

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/LAES18/proyecto-automatas/models"
)

// testDB opens a fresh in-memory database. A single pooled connection keeps
// the in-memory store alive for the whole test.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrapping test database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	return db
}

func registerTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user, err := RegisterUser(db, email, "abc123")
	if err != nil {
		t.Fatalf("RegisterUser(%q) error = %v", email, err)
	}
	return user
}
