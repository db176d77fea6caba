package middleware

import (
	"BridgerServer/consts"
	"BridgerServer/pkg/logger"
	"BridgerServer/pkg/result"
	"net"
	"net/http"
	"net/http/httputil"
	"os"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"
)

// GinRecovery panic 恢复中间件
// stack 为 true 时同时记录调用栈
func GinRecovery(stack bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				// 客户端断开连接（broken pipe）不算服务端 panic，不用回写响应
				var brokenPipe bool
				if ne, ok := err.(*net.OpError); ok {
					if se, ok := ne.Err.(*os.SyscallError); ok {
						errMsg := strings.ToLower(se.Error())
						if strings.Contains(errMsg, "broken pipe") ||
							strings.Contains(errMsg, "connection reset by peer") {
							brokenPipe = true
						}
					}
				}

				ctx := NewContextWithGin(c)
				httpRequest, _ := httputil.DumpRequest(c.Request, false)

				if brokenPipe {
					logger.Warn(ctx, "客户端连接断开",
						logger.String("path", c.Request.URL.Path),
						logger.Any("error", err),
						logger.String("request", string(httpRequest)),
					)
					// 连接已断，无法写状态码
					c.Error(err.(error)) //nolint:errcheck
					c.Abort()
					return
				}

				if stack {
					logger.Error(ctx, "请求处理panic",
						logger.Any("error", err),
						logger.String("request", string(httpRequest)),
						logger.String("stack", string(debug.Stack())),
					)
				} else {
					logger.Error(ctx, "请求处理panic",
						logger.Any("error", err),
						logger.String("request", string(httpRequest)),
					)
				}

				c.AbortWithStatusJSON(http.StatusInternalServerError, result.MessageBody{
					Message: consts.GetMessage(consts.CodeInternalError),
				})
			}
		}()
		c.Next()
	}
}
