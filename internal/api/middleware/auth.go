package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/robinmutlu/robinboard/pkg/jwt"
	"github.com/robinmutlu/robinboard/pkg/redis"
	"github.com/robinmutlu/robinboard/pkg/response"
)

// ContextKeyClaims doğrulanmış JWT alanlarının gin context anahtarı.
const ContextKeyClaims = "claims"

// JWTAuth yönetici uçlarını korur: Bearer token'ı doğrular, yenileme
// token'ını erişim ucunda reddeder, çıkışı yapılmış token'ı kara
// listeden yakalar. rdb nil ise kara liste kontrolü atlanır.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			response.Unauthorized(c, 40100, "Oturum gerekli")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(token)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				response.Unauthorized(c, 40101, "Oturum süresi dolmuş")
			} else {
				response.Unauthorized(c, 40102, "Geçersiz oturum")
			}
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			response.Unauthorized(c, 40102, "Geçersiz oturum")
			c.Abort()
			return
		}

		if rdb != nil {
			if blacklisted, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID); err == nil && blacklisted {
				response.Unauthorized(c, 40103, "Oturum kapatılmış")
				c.Abort()
				return
			}
		}

		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}
