package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/estateregistry-api/database"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB swaps the package-global connection for a sqlmock-backed
// one so service paths can run without Postgres. The previous
// connection is restored when the test finishes.
func newMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm: %v", err)
	}

	prev := database.DB
	database.DB = gormDB
	t.Cleanup(func() {
		database.DB = prev
		sqlDB.Close()
	})
	return mock
}
