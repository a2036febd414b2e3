package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	postgresStorage "github.com/mizusawa-dev/swimtrack/internal/adapters/database/postgres"
	"github.com/mizusawa-dev/swimtrack/internal/adapters/database/redis"
	"github.com/mizusawa-dev/swimtrack/pkg/logger"
)

type Config struct {
	Database *gorm.DB
	Redis    *redis.Client
}

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("service.session-ttl-hours", 72)
	viper.SetDefault("service.rankings-cache-ttl-seconds", 60)
	viper.SetDefault("service.growth-limit", 10)
	viper.SetDefault("service.uploads-dir", "uploads")

	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}
}

func Get() *Config {
	initConfig()

	err := logger.Init(logger.Config{
		Debug:     viper.GetBool("settings.debug"),
		LogToFile: viper.GetBool("settings.log-to-file"),
		LogsDir:   viper.GetString("settings.logs-dir"),
	})
	if err != nil {
		panic(err)
	}

	var gormConfig *gorm.Config
	if viper.GetBool("settings.debug") {
		newLogger := gormLogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormLogger.Config{
				SlowThreshold: time.Second,
				LogLevel:      gormLogger.Info,
				Colorful:      true,
			},
		)
		gormConfig = &gorm.Config{
			Logger: newLogger,
		}
	} else {
		gormConfig = &gorm.Config{}
	}

	dsn := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%d sslmode=disable",
		viper.GetString("service.database.user"),
		viper.GetString("service.database.password"),
		viper.GetString("service.database.name"),
		viper.GetString("service.database.host"),
		viper.GetInt("service.database.port"),
	)

	database := connectDatabase(dsn, gormConfig)

	errMigrate := database.AutoMigrate(postgresStorage.Migrations...)
	if errMigrate != nil {
		logger.Log.Panicf("Failed to migrate database: %v", errMigrate)
	}

	redisClient, err := redis.New(redis.Options{
		Host:     viper.GetString("service.redis.host"),
		Port:     viper.GetString("service.redis.port"),
		Password: viper.GetString("service.redis.password"),
	})
	if err != nil {
		logger.Log.Panicf("Failed to connect to redis: %v", err)
	}
	logger.Log.Info("Successfully connected to redis")

	return &Config{
		Database: database,
		Redis:    redisClient,
	}
}

// connectDatabase opens the gorm connection, retrying while postgres comes
// up; container starts routinely race the database.
func connectDatabase(dsn string, gormConfig *gorm.Config) *gorm.DB {
	const maxRetries = 10
	const retryInterval = 5 * time.Second

	for i := 0; i < maxRetries; i++ {
		database, err := gorm.Open(postgres.Open(dsn), gormConfig)
		if err == nil {
			logger.Log.Info("Successfully connected to the database")
			return database
		}
		logger.Log.Warnf("Failed to connect to database (attempt %d/%d): %v", i+1, maxRetries, err)
		time.Sleep(retryInterval)
	}

	logger.Log.Panicf("Failed to connect to the database after %d retries", maxRetries)
	return nil
}
