package sessionControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pizzahub/pizzahub-api/models"
	"github.com/pizzahub/pizzahub-api/store"
)

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// POST /auth/login
func Login(session *store.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := session.Login(input.Email, input.Password)
		if err != nil {
			var verr *models.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// POST /auth/register
func Register(session *store.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := session.Register(input.Name, input.Email, input.Password, input.Phone)
		if err != nil {
			var verr *models.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
			return
		}

		c.JSON(http.StatusCreated, user)
	}
}

// POST /auth/logout
func Logout(session *store.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		session.Logout()
		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}

// GET /auth/me
func CurrentUser(session *store.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := session.Current()
		if user == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No user logged in"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
