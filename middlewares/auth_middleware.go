// middlewares/auth_middleware.go
package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/zeyadesperado/GymMaster/models"
	"github.com/zeyadesperado/GymMaster/utils"
)

// AuthMiddleware accepts "Bearer <jwt>" and sets userID and email on the
// context. The user must still exist and be active.
func AuthMiddleware(secret string, db *gorm.DB) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		claims, err := utils.ParseJWT(key, strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		var user models.User
		if err := db.WithContext(c.Request.Context()).Select("id", "email", "is_active").First(&user, claims.UserID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}
		if !user.IsActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user inactive or deleted"})
			return
		}

		c.Set("userID", user.ID)
		c.Set("email", user.Email)
		c.Next()
	}
}
