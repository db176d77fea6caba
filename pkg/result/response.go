package result

import (
	"BridgerServer/consts"
	"net/http"

	"github.com/gin-gonic/gin"
)

// 响应约定：
// - 成功响应直接返回业务数据（数组/对象），与前端既有契约保持一致；
// - 失败响应返回 {"message": "..."}，HTTP 状态码由业务错误码映射（400/401/404/500 等）；
// - trace_id 通过 X-Request-ID 响应头透出，不混入响应体。

// MessageBody 失败响应和纯提示响应的消息体
type MessageBody struct {
	Message string `json:"message"`
}

// Success 返回成功响应（200），data 原样输出
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 返回创建成功响应（201）
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// SuccessWithMessage 返回只带提示消息的成功响应
func SuccessWithMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageBody{Message: message})
}

// Fail 返回失败响应，消息取错误码的默认文案
func Fail(c *gin.Context, code int32) {
	FailWithMessage(c, consts.GetMessage(code), code)
}

// FailWithMessage 返回失败响应并自定义消息
func FailWithMessage(c *gin.Context, message string, code int32) {
	if message == "" {
		message = consts.GetMessage(code)
	}
	c.JSON(consts.GetHTTPStatus(code), MessageBody{Message: message})
}
