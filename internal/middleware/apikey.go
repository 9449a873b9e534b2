package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const apiKeyHeader = "X-API-Key"

// RequireAPIKey пропускает только запросы с известным API ключом.
// Ключ принимается в заголовке X-API-Key или через Authorization: Bearer;
// query-параметр не поддерживается, чтобы ключи не оседали в логах доступа.
// Редирект /r/:id и дашборд не проходят через этот middleware.
func RequireAPIKey(validKeys map[string]string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader(apiKeyHeader)
		if apiKey == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				apiKey = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if apiKey == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "missing_api_key",
				"message": "API key required: pass it via the X-API-Key header or Authorization: Bearer",
			})
			c.Abort()
			return
		}

		// Сравнение за константное время, чтобы не подбирать ключ по таймингам
		keyName, valid := "", false
		for validKey, name := range validKeys {
			if subtle.ConstantTimeCompare([]byte(apiKey), []byte(validKey)) == 1 {
				valid = true
				keyName = name
				break
			}
		}

		if !valid {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "invalid_api_key",
				"message": "Invalid API key",
			})
			c.Abort()
			return
		}

		c.Set("api_key_name", keyName)
		c.Next()
	}
}

// APIKeyName имя ключа, которым аутентифицирован запрос
func APIKeyName(c *gin.Context) (string, bool) {
	name, exists := c.Get("api_key_name")
	if !exists {
		return "", false
	}
	return name.(string), true
}
