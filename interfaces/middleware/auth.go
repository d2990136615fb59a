package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"

	"postpilot/domain/model"
)

// Identity resolves the request's user id from an optional bearer token and
// stores it in the gin context under "user_id". Requests without a valid
// token fall back to the demo user: the demo stores are deliberately not
// wired to real authentication.
func Identity(secretKey string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set("user_id", resolveUserID(ctx.Request.Header.Get("Authorization"), secretKey))
		ctx.Next()
	}
}

func resolveUserID(authorization, secretKey string) string {
	if authorization == "" || secretKey == "" {
		return model.DemoUserID
	}
	parts := strings.Split(authorization, "Bearer ")
	if len(parts) != 2 {
		return model.DemoUserID
	}

	var claims model.UserClaims
	token, err := jwt.ParseWithClaims(parts[1], &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	})
	if err != nil || !token.Valid {
		return model.DemoUserID
	}
	if claims.Issuer != "" {
		return claims.Issuer
	}
	if claims.UserName != "" {
		return claims.UserName
	}
	return model.DemoUserID
}
