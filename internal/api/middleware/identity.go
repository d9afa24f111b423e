package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Identity copies the caller's user and company ids out of the validated
// claims. It deliberately does not abort on a missing company: downstream
// read models degrade to defaults instead of erroring.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, exists := c.Get("claims"); exists {
			if jwtClaims, ok := claims.(jwt.MapClaims); ok {
				if sub, ok := jwtClaims["sub"].(string); ok {
					c.Set("user_id", sub)
				}
				if org, ok := jwtClaims["organization"].(string); ok && org != "" {
					c.Set("tenant_id", org)
				}
			}
		}

		c.Next()
	}
}

// RenderPass allocates the render-pass id used to scope memoization to
// this one request. Teardown is the overview service's EndPass, wired in
// the router.
func RenderPass() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("pass_id", uuid.New().String())
		c.Next()
	}
}
