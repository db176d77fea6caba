package middleware

import (
	"BridgerServer/apps/api/internal/utils"
	"BridgerServer/config"
	"BridgerServer/consts"
	"BridgerServer/pkg/result"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware JWT 认证中间件
// 从请求头中提取 Token 并验证，验证通过后将用户ID存入 Context
func JWTAuthMiddleware(cfg config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. 从 Header 中获取 Authorization
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			// 客户端请求错误,属于正常业务流程,不记录日志
			result.Fail(c, consts.CodeUnauthorized)
			c.Abort()
			return
		}

		// 2. 验证格式: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			result.Fail(c, consts.CodeUnauthorized)
			c.Abort()
			return
		}

		// 3. 解析并验证 Token
		claims, err := utils.ParseToken(cfg, parts[1])
		if err != nil {
			// Token 无效或过期,属于正常业务流程,不记录日志
			code := int32(consts.CodeInvalidToken)
			if errors.Is(err, utils.ErrTokenExpired) {
				code = consts.CodeTokenExpired
			}
			result.Fail(c, code)
			c.Abort()
			return
		}

		// 4. 将用户ID存入 Context，供后续 Handler 使用
		c.Set("user_id", claims.UserID)

		c.Next()
	}
}

// GetUserID 从 Context 中获取当前登录用户的 ID
func GetUserID(c *gin.Context) (int64, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	userID, ok := value.(int64)
	return userID, ok
}
