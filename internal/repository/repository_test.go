package repository_test

import (
	"fmt"
	"testing"
	"time"

	"gigbook/internal/config"
	"gigbook/internal/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDatabase opens a named in-memory database so each test gets
// isolated tables. Foreign keys are switched on to exercise the same
// referential integrity Postgres enforces.
func newTestDatabase(t *testing.T) *database.Database {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	testDB, err := database.New(db, config.DatabaseConfig{QueryTimeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}
