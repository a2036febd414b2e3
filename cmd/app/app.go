package app

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mizusawa-dev/swimtrack/internal/adapters/config"
	"github.com/mizusawa-dev/swimtrack/internal/adapters/database/redis"
	"github.com/mizusawa-dev/swimtrack/pkg/logger"
)

// App bundles everything the HTTP layer needs: the server, the stores and
// the settings read from config.
type App struct {
	Echo   *echo.Echo
	DB     *gorm.DB
	Redis  *redis.Client
	Logger *zap.SugaredLogger

	SessionTTL  time.Duration
	RankingsTTL time.Duration
	GrowthLimit int
	UploadsDir  string
}

func New(cfg *config.Config) (*App, error) {
	apiLogger, err := logger.Named("api")
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())

	return &App{
		Echo:        e,
		DB:          cfg.Database,
		Redis:       cfg.Redis,
		Logger:      apiLogger,
		SessionTTL:  time.Duration(viper.GetInt("service.session-ttl-hours")) * time.Hour,
		RankingsTTL: time.Duration(viper.GetInt("service.rankings-cache-ttl-seconds")) * time.Second,
		GrowthLimit: viper.GetInt("service.growth-limit"),
		UploadsDir:  viper.GetString("service.uploads-dir"),
	}, nil
}

func (a *App) Start() {
	addr := fmt.Sprintf(":%d", viper.GetInt("server.port"))
	logger.Log.Infof("API starting on %s", addr)
	if err := a.Echo.Start(addr); err != nil {
		logger.Log.Panicf("Server stopped: %v", err)
	}
}
