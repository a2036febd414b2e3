package setup

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mizusawa-dev/swimtrack/cmd/app"
	"github.com/mizusawa-dev/swimtrack/internal/adapters/controller/http/handlers"
	"github.com/mizusawa-dev/swimtrack/internal/adapters/controller/http/middlewares"
	"github.com/mizusawa-dev/swimtrack/internal/adapters/database/postgres"
	"github.com/mizusawa-dev/swimtrack/internal/domain/service"
)

// Setup wires storages, services and handlers onto the echo server.
func Setup(a *app.App) error {
	userStorage := postgres.NewUserStorage(a.DB)
	recordStorage := postgres.NewRecordStorage(a.DB)
	competitionStorage := postgres.NewCompetitionStorage(a.DB)
	documentStorage := postgres.NewDocumentStorage(a.DB)
	categoryStorage := postgres.NewCategoryStorage(a.DB)
	announcementStorage := postgres.NewAnnouncementStorage(a.DB)

	userService := service.NewUserService(userStorage)
	authService := service.NewAuthService(userStorage, a.Redis.Sessions, a.SessionTTL)
	recordService := service.NewRecordService(recordStorage, competitionStorage, a.Redis.Rankings)
	rankingService := service.NewRankingService(recordStorage, a.Redis.Rankings, a.RankingsTTL)
	competitionService := service.NewCompetitionService(competitionStorage)
	documentService, err := service.NewDocumentService(documentStorage, a.UploadsDir)
	if err != nil {
		return err
	}
	categoryService := service.NewCategoryService(categoryStorage)
	announcementService := service.NewAnnouncementService(announcementStorage)

	mw := middlewares.New(authService, a.Logger)
	a.Echo.Use(mw.RequestLogger)

	authHandler := handlers.NewAuthHandler(authService, a.SessionTTL, a.Logger)
	recordHandler := handlers.NewRecordHandler(recordService, rankingService, a.Logger)
	athleteHandler := handlers.NewAthleteHandler(userService, rankingService, a.Logger)
	competitionHandler := handlers.NewCompetitionHandler(competitionService, a.Logger)
	documentHandler := handlers.NewDocumentHandler(documentService, categoryService, a.Logger)
	announcementHandler := handlers.NewAnnouncementHandler(announcementService, a.Logger)
	rankingHandler := handlers.NewRankingHandler(rankingService, a.GrowthLimit, a.Logger)

	a.Echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := a.Echo.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/session", authHandler.Session, mw.Authorized)

	records := api.Group("/records", mw.Authorized)
	records.GET("", recordHandler.List)
	records.GET("/competitions", recordHandler.Competitions)
	records.GET("/best", recordHandler.Best)
	records.GET("/export", recordHandler.Export)
	records.POST("", recordHandler.Create, mw.CoachOnly)
	records.PUT("/:id", recordHandler.Update, mw.CoachOnly)
	records.DELETE("/:id", recordHandler.Delete, mw.CoachOnly)

	rankings := api.Group("/rankings", mw.Authorized)
	rankings.GET("/im", rankingHandler.IM)
	rankings.GET("/growth", rankingHandler.Growth)

	athletes := api.Group("/athletes", mw.Authorized)
	athletes.GET("", athleteHandler.List)
	athletes.GET("/:id/bests", athleteHandler.Bests)
	athletes.POST("", athleteHandler.Create, mw.CoachOnly)
	athletes.PUT("/:id", athleteHandler.Update, mw.CoachOnly)
	athletes.DELETE("/:id", athleteHandler.Delete, mw.CoachOnly)

	competitions := api.Group("/competitions", mw.Authorized)
	competitions.GET("", competitionHandler.List)
	competitions.GET("/:id", competitionHandler.Get)
	competitions.POST("", competitionHandler.Create, mw.CoachOnly)
	competitions.PUT("/:id", competitionHandler.Update, mw.CoachOnly)
	competitions.DELETE("/:id", competitionHandler.Delete, mw.CoachOnly)

	documents := api.Group("/documents", mw.Authorized)
	documents.GET("", documentHandler.List)
	documents.GET("/:id/download", documentHandler.Download)
	documents.POST("", documentHandler.Upload, mw.CoachOnly)
	documents.DELETE("/:id", documentHandler.Delete, mw.CoachOnly)

	categories := api.Group("/categories", mw.Authorized)
	categories.GET("", documentHandler.ListCategories)
	categories.POST("", documentHandler.CreateCategory, mw.CoachOnly)

	admin := api.Group("/admin", mw.Authorized, mw.AdminOnly)
	admin.POST("/announcements", announcementHandler.Publish)

	api.GET("/announcements/latest", announcementHandler.Latest, mw.Authorized)

	return nil
}
