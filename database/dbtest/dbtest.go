// Package dbtest opens throwaway in-memory SQLite databases with the schema migrated.
package dbtest

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-admin/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns a migrated database private to the calling test.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a second connection would see a different in-memory database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, models.AutoMigrate(db), "migrate test database")
	return db
}

// Technologies inserts one technology per name and returns them in order.
func Technologies(t testing.TB, db *gorm.DB, names ...string) []models.Technology {
	t.Helper()
	out := make([]models.Technology, 0, len(names))
	for _, name := range names {
		tech := models.Technology{Name: name, Slug: name}
		require.NoError(t, db.WithContext(context.Background()).Create(&tech).Error)
		out = append(out, tech)
	}
	return out
}

// Types inserts one project type per name and returns them in order.
func Types(t testing.TB, db *gorm.DB, names ...string) []models.Type {
	t.Helper()
	out := make([]models.Type, 0, len(names))
	for _, name := range names {
		typ := models.Type{Name: name, Slug: name}
		require.NoError(t, db.WithContext(context.Background()).Create(&typ).Error)
		out = append(out, typ)
	}
	return out
}
