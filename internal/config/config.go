package config

import (
	"log"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	viper "github.com/spf13/viper"
)

/*
把init config跟read config分開
init : 需要設置viper watch 與 onConfigChange
read : 一般讀取 需要使用讀寫鎖
*/
var config_singleton *ConfigSingleTon
var muonce sync.Once

type ConfigSingleTon struct {
	Config *Config
	mu     sync.RWMutex
}

type Config struct {
	ServerPort    string `mapstructure:"SERVER_PORT"`
	DbName        string `mapstructure:"POSTGRES_DB"`
	DbHost        string `mapstructure:"POSTGRES_HOST"`
	DbPort        string `mapstructure:"POSTGRES_PORT"`
	DbUser        string `mapstructure:"POSTGRES_USER"`
	DbPas         string `mapstructure:"POSTGRES_PASSWORD"`
	RedisHost     string `mapstructure:"REDIS_HOST"`
	RedisPort     string `mapstructure:"REDIS_PORT"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RateLimitRPS  int    `mapstructure:"RATE_LIMIT_RPS"`
}

func GetConfig() *Config {
	initConfig()
	config_singleton.mu.RLock()
	defer config_singleton.mu.RUnlock()
	return config_singleton.Config
}

func initConfig() {
	if config_singleton == nil {
		muonce.Do(func() {
			config_singleton = &ConfigSingleTon{}
			if cf, err := loadConfig(); err == nil {
				config_singleton.Config = cf
			} else {
				log.Fatal("error read config")
			}
			if _, err := os.Stat(".env"); err == nil {
				viper.WatchConfig()
				viper.OnConfigChange(func(e fsnotify.Event) {
					if cf, err := loadConfig(); err == nil {
						config_singleton.Config = cf
					} else {
						log.Panic("failed to reload config file")
					}
				})
			}
		})
	}
}

/*
單純回傳錯誤 由外部決定要不要Fatal
.env不存在時退回預設值加環境變數
*/
func loadConfig() (cf *Config, err error) {
	config_singleton.mu.Lock()
	defer config_singleton.mu.Unlock()

	viper.SetDefault("SERVER_PORT", "3000")
	viper.SetDefault("POSTGRES_DB", "storefront")
	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", "5432")
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "")
	viper.SetDefault("REDIS_HOST", "")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("RATE_LIMIT_RPS", 0)

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(".env"); statErr == nil {
			return nil, err
		}
	}

	cf = &Config{}
	err = viper.Unmarshal(cf)
	if err != nil {
		return nil, err
	}
	return cf, nil
}
