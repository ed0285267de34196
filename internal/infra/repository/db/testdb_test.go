package db

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDao 測試用in-memory資料庫，單一連線避免各自看到不同的:memory:
func newTestDao(t *testing.T) *DbDao {
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	dao := NewDbDao(conn)
	require.NoError(t, dao.InitMigrate())
	return dao
}
