package routes

import (
	"github.com/gin-gonic/gin"

	sessionControllers "github.com/pizzahub/pizzahub-api/controllers/session"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, s *Stores) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", sessionControllers.Login(s.Session))
		authGroup.POST("/register", sessionControllers.Register(s.Session))
		authGroup.POST("/logout", sessionControllers.Logout(s.Session))
		authGroup.GET("/me", sessionControllers.CurrentUser(s.Session))
	}
}
