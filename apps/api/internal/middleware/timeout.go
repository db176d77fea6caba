package middleware

import (
	"BridgerServer/consts"
	"BridgerServer/pkg/logger"
	"BridgerServer/pkg/result"
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// TimeoutMiddleware 请求超时控制中间件
// 安全版本：不开启 Goroutine，依赖下游 Context 感知
func TimeoutMiddleware(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. 基于 c.Request.Context() 派生带超时的 context
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		// 2. 替换请求的 context
		// 后续 Handler、数据库、Redis 调用都能感知这个超时
		c.Request = c.Request.WithContext(ctx)

		// 3. 直接在当前协程执行
		c.Next()

		// 4. 后置兜底：处理过程超时且下游还没写响应时，由中间件统一返回
		if ctx.Err() == context.DeadlineExceeded {
			if !c.Writer.Written() {
				logCtx := NewContextWithGin(c)
				logger.Warn(logCtx, "请求处理超时",
					logger.String("path", c.Request.URL.Path),
					logger.Duration("timeout", timeout),
				)
				result.Fail(c, consts.CodeTimeoutError)
				c.Abort()
			}
		}
	}
}
