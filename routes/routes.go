package routes

import (
	"os"

	"github.com/AnakhaSuresh15/nibblenotes-backend/controllers"
	"github.com/AnakhaSuresh15/nibblenotes-backend/middlewares"
	"github.com/AnakhaSuresh15/nibblenotes-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	origin := os.Getenv("FRONTEND_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	hub := services.NewRealtimeHub()
	store := services.NewGormLogStore(db)

	push, err := services.NewPushService(db)
	if err != nil {
		logrus.WithError(err).Warn("Push notifications disabled")
		push = nil
	}

	logs := controllers.NewLogController(services.NewLogService(db, hub, push))
	insights := controllers.NewInsightsController(services.NewInsightsService(store))
	dashboard := controllers.NewDashboardController(services.NewDashboardService(store))
	realtime := controllers.NewRealtimeController(hub)
	devices := controllers.NewDeviceController(push)

	// Public auth routes
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/refresh", controllers.Refresh)
		auth.POST("/logout", controllers.Logout)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Everything below requires a valid access token.
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.POST("/create-log", logs.CreateLog)
		api.GET("/create-log/ingredients", logs.SearchIngredients)
		api.GET("/logs", logs.GetLogs)
		api.PATCH("/edit-log/:logId", logs.EditLog)
		api.DELETE("/delete-log/:logId", logs.DeleteLog)
		api.DELETE("/delete-logs", logs.DeleteLogs)

		api.GET("/insights-data", insights.GetInsights)
		api.GET("/dashboard/summary", dashboard.GetSummary)

		api.GET("/settings", controllers.GetSettings)
		api.POST("/update-settings", controllers.UpdateSettings)
		api.POST("/upload-image", controllers.UploadImage)

		api.POST("/devices/register", devices.RegisterDevice)
		api.GET("/ws", realtime.EventsWS)
	}

	return r
}
