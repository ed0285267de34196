package service

import (
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDao 測試用in-memory資料庫
func newTestDao(t *testing.T) *db.DbDao {
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	dao := db.NewDbDao(conn)
	require.NoError(t, dao.InitMigrate())
	return dao
}
