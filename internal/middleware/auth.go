package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"autosalon/internal/auth"
	"autosalon/internal/policy"
)

const claimsKey = "Claims"

// Authenticate проверяет bearer-токен и кладёт claims в контекст запроса.
// Дальше обработчиков без валидного токена запрос не проходит.
func Authenticate(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if header == "" || len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Токен доступа отсутствует"})
			return
		}

		claims, err := auth.ParseAccessToken(secret, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Неверный токен"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// Require сверяет роль из токена с таблицей прав для операции.
func Require(op policy.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentClaims(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Токен доступа отсутствует"})
			return
		}
		if !policy.Allowed(claims.Role, op) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Недостаточно прав"})
			return
		}
		c.Next()
	}
}

// CurrentClaims достаёт claims, положенные Authenticate.
func CurrentClaims(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
