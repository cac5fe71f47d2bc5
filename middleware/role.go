// File: middleware/role.go
package middleware

import (
	"net/http"

	userRepo "praxia/database/repository/user"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// AdminRequired gates a route to actors carrying the administrative role.
// Must run after AuthMiddleware.
func AdminRequired(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID := c.GetString("userID")
		if actorID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		proj := bson.M{"id": 1, "role": 1}
		usr, err := users.GetByIDWithProjection(actorID, proj)
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication error",
			})
			return
		}
		if !usr.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Administrative role required",
			})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
