package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/khoahotran/profile-studio/pkg/auth"
	"github.com/khoahotran/profile-studio/pkg/logger"
)

type RouterDeps struct {
	AuthHandler    *AuthHandler
	ProfileHandler *ProfileHandler
	JWTService     *auth.JWTService
	Logger         logger.Logger
}

func NewRouter(d RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), MetricsMiddleware(), ErrorMiddleware(d.Logger))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
		api.POST("/auth/login", d.AuthHandler.Login)

		private := api.Group("/")
		private.Use(AuthMiddleware(d.JWTService, d.Logger))
		{
			private.GET("/profile", d.ProfileHandler.GetProfile)
			private.PUT("/profile", d.ProfileHandler.ReplaceProfile)
			private.POST("/profile/picture", d.ProfileHandler.UploadPicture)
			private.GET("/onboarding-status", d.ProfileHandler.GetOnboardingStatus)
		}
	}

	return router
}
