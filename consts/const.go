package consts

import "net/http"

// 通用错误码
const (
	CodeSuccess = 0 // 成功
)

// 客户端错误 (10xxx)
const (
	CodeParamError       = 10001 // 参数验证失败
	CodeBodyError        = 10002 // 请求体格式错误
	CodeResourceNotFound = 10003 // 资源不存在
	CodeMethodNotAllowed = 10004 // 请求方法不允许
	CodeTooManyRequests  = 10005 // 请求过于频繁
	CodeBodyTooLarge     = 10006 // 请求体过大
)

// 认证错误 (2xxxx)
const (
	CodeUnauthorized   = 20001 // 未认证
	CodeInvalidToken   = 20002 // Token 无效
	CodeTokenExpired   = 20003 // Token 已过期
	CodePermissionDeny = 20004 // 权限不足
)

// 用户模块错误 (11xxx)
const (
	CodeUserNotFound     = 11001 // 用户不存在
	CodeEmailAlreadyUsed = 11002 // 邮箱已被注册
	CodePasswordError    = 11003 // 密码错误
)

// 好友模块错误 (12xxx)
const (
	CodeAlreadyFriend         = 12001 // 已经是好友
	CodeFriendRequestPending  = 12002 // 已有待处理的好友请求
	CodeFriendRequestNotFound = 12003 // 好友请求不存在
	CodeCannotFriendSelf      = 12004 // 不能添加自己为好友
)

// 积分模块错误 (13xxx)
const (
	CodeTierNotFound       = 13001 // 兑换档位不存在
	CodeInsufficientPoints = 13002 // 积分不足
	CodeRewardRuleNotFound = 13003 // 积分规则不存在
)

// 场所模块错误 (14xxx)
const (
	CodeVenueNotFound      = 14001 // 场所不存在
	CodeSubmissionNotFound = 14002 // 场所提交记录不存在
	CodeUploadTypeError    = 14003 // 上传文件类型不支持
	CodeUploadTooLarge     = 14004 // 上传文件过大
)

// 志愿者模块错误 (15xxx)
const (
	CodeVolunteerAlreadyExist = 15001 // 志愿者报名记录已存在
)

// 服务端错误 (3xxxx)
const (
	CodeInternalError      = 30001 // 服务器内部错误
	CodeServiceUnavailable = 30002 // 服务暂不可用
	CodeTimeoutError       = 30003 // 请求处理超时
)

// 错误消息映射
// 说明：消息为面向客户端的英文文案，部分文案是前端依赖的约定字符串，修改需同步前端。
var CodeMessage = map[int32]string{
	CodeSuccess: "success",

	// 客户端错误
	CodeParamError:       "Invalid request parameters.",
	CodeBodyError:        "Malformed request body.",
	CodeResourceNotFound: "Resource not found.",
	CodeMethodNotAllowed: "Method not allowed.",
	CodeTooManyRequests:  "Too many requests, please retry later.",
	CodeBodyTooLarge:     "Request body too large.",

	// 认证错误
	CodeUnauthorized:   "Authentication required.",
	CodeInvalidToken:   "Invalid or expired token.",
	CodeTokenExpired:   "Invalid or expired token.",
	CodePermissionDeny: "Permission denied.",

	// 用户模块
	CodeUserNotFound:     "User not found.",
	CodeEmailAlreadyUsed: "Email is already registered.",
	CodePasswordError:    "Invalid email or password.",

	// 好友模块
	CodeAlreadyFriend:         "Users are already friends",
	CodeFriendRequestPending:  "A friend request is already pending between these users",
	CodeFriendRequestNotFound: "Friend request not found",
	CodeCannotFriendSelf:      "Both user IDs are required, and they must be different.",

	// 积分模块
	CodeTierNotFound:       "Redemption tier not found",
	CodeInsufficientPoints: "Insufficient points",
	CodeRewardRuleNotFound: "Reward rule not found",

	// 场所模块
	CodeVenueNotFound:      "Venue not found",
	CodeSubmissionNotFound: "Submission not found",
	CodeUploadTypeError:    "Unsupported file type.",
	CodeUploadTooLarge:     "File exceeds the size limit.",

	// 志愿者模块
	CodeVolunteerAlreadyExist: "A volunteer application with this contact already exists",

	// 服务端错误
	CodeInternalError:      "Internal server error",
	CodeServiceUnavailable: "Service temporarily unavailable",
	CodeTimeoutError:       "Request timed out",
}

// codeHTTPStatus 业务码到 HTTP 状态码的映射
// 未列出的业务错误码按客户端错误处理（400），服务端错误统一 500。
var codeHTTPStatus = map[int32]int{
	CodeSuccess: http.StatusOK,

	CodeParamError:       http.StatusBadRequest,
	CodeBodyError:        http.StatusBadRequest,
	CodeResourceNotFound: http.StatusNotFound,
	CodeMethodNotAllowed: http.StatusMethodNotAllowed,
	CodeTooManyRequests:  http.StatusTooManyRequests,
	CodeBodyTooLarge:     http.StatusRequestEntityTooLarge,

	CodeUnauthorized:   http.StatusUnauthorized,
	CodeInvalidToken:   http.StatusUnauthorized,
	CodeTokenExpired:   http.StatusUnauthorized,
	CodePermissionDeny: http.StatusForbidden,

	CodeUserNotFound:     http.StatusNotFound,
	CodeEmailAlreadyUsed: http.StatusBadRequest,
	CodePasswordError:    http.StatusUnauthorized,

	CodeAlreadyFriend:         http.StatusBadRequest,
	CodeFriendRequestPending:  http.StatusBadRequest,
	CodeFriendRequestNotFound: http.StatusNotFound,
	CodeCannotFriendSelf:      http.StatusBadRequest,

	CodeTierNotFound:       http.StatusNotFound,
	CodeInsufficientPoints: http.StatusBadRequest,
	CodeRewardRuleNotFound: http.StatusNotFound,

	CodeVenueNotFound:      http.StatusNotFound,
	CodeSubmissionNotFound: http.StatusNotFound,
	CodeUploadTypeError:    http.StatusBadRequest,
	CodeUploadTooLarge:     http.StatusRequestEntityTooLarge,

	CodeVolunteerAlreadyExist: http.StatusBadRequest,

	CodeInternalError:      http.StatusInternalServerError,
	CodeServiceUnavailable: http.StatusServiceUnavailable,
	CodeTimeoutError:       http.StatusInternalServerError,
}

// GetMessage 根据错误码获取错误消息
func GetMessage(code int32) string {
	if msg, ok := CodeMessage[code]; ok {
		return msg
	}
	return "Unknown error"
}

// GetHTTPStatus 根据错误码获取 HTTP 状态码
func GetHTTPStatus(code int32) int {
	if status, ok := codeHTTPStatus[code]; ok {
		return status
	}
	if code >= 30000 {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}

// IsNonServerError 判断是否为业务错误（非服务端内部错误）
// 业务错误由客户端输入或业务规则导致，不需要记录错误日志。
func IsNonServerError(code int32) bool {
	return code != CodeSuccess && code < 30000
}
