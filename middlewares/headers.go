package middlewares

import "github.com/gin-gonic/gin"

const defaultReferrerPolicy = "strict-origin-when-cross-origin"

func ReferrerPolicy() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Referrer-Policy", defaultReferrerPolicy)
		c.Next()
	}
}
