package utils

import (
	"BridgerServer/consts"
	"BridgerServer/pkg/errs"
)

// ExtractErrorCode 提取业务错误码
// 服务层约定：业务错误用 errs.BizError 携带错误码，其余错误一律按内部错误处理
func ExtractErrorCode(err error) int32 {
	if err == nil {
		return consts.CodeSuccess
	}
	return errs.CodeOf(err)
}
