package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnConfig 資料庫連線參數，SSLMode與TimeZone留空時套用預設值
type ConnConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DbName   string
	SSLMode  string
	TimeZone string
}

func GetDbConn(cf ConnConfig) (*gorm.DB, error) {
	if cf.SSLMode == "" {
		cf.SSLMode = "disable"
	}
	if cf.TimeZone == "" {
		// 時間戳一律以UTC入庫，顯示時區由前端決定
		cf.TimeZone = "UTC"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		cf.Host, cf.Port, cf.User, cf.Password, cf.DbName, cf.SSLMode, cf.TimeZone)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}
