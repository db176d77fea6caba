package errs

import (
	"errors"
	"fmt"

	"BridgerServer/consts"
)

// BizError 携带业务错误码的错误。
// 服务层用它向处理器传递业务码，处理器据此决定 HTTP 状态码与文案；
// 不携带业务码的错误一律按服务端内部错误处理。
type BizError struct {
	Code  int32
	cause error
}

// New 创建业务错误。
func New(code int32) *BizError {
	return &BizError{Code: code}
}

// Wrap 创建业务错误并保留底层原因（日志排查用，不会透给客户端）。
func Wrap(code int32, cause error) *BizError {
	return &BizError{Code: code, cause: cause}
}

func (e *BizError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("biz error %d (%s): %v", e.Code, consts.GetMessage(e.Code), e.cause)
	}
	return fmt.Sprintf("biz error %d (%s)", e.Code, consts.GetMessage(e.Code))
}

func (e *BizError) Unwrap() error {
	return e.cause
}

// CodeOf 提取错误中的业务码，非业务错误返回 CodeInternalError。
func CodeOf(err error) int32 {
	if err == nil {
		return consts.CodeSuccess
	}
	var be *BizError
	if errors.As(err, &be) {
		return be.Code
	}
	return consts.CodeInternalError
}
