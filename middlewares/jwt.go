package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/UCDC-Institute/Website_BCMS/res"
	"github.com/UCDC-Institute/Website_BCMS/services"
)

// JWTMiddleware authenticates the session token from the auth cookie,
// falling back to a bearer Authorization header, and stores the claims
// in the request context.
func JWTMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(services.AUTH_COOKIE)
		if err != nil || token == "" {
			authorization := ctx.GetHeader("Authorization")
			if strings.HasPrefix(authorization, "Bearer ") {
				token = strings.TrimPrefix(authorization, "Bearer ")
			}
		}
		if token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, &res.Response{
				Success: false,
				Message: "Unauthorized",
			})
			return
		}
		claims, err := services.VerifySessionToken(token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, &res.Response{
				Success: false,
				Message: "Unauthorized",
			})
			return
		}
		ctx.Set("user", claims)
		ctx.Next()
	}
}
