package dto

// ==================== 好友服务 DTO ====================

// SearchUserItem 用户搜索结果项
type SearchUserItem struct {
	UserID int64  `json:"user_id"` // 用户ID
	Name   string `json:"name"`    // 用户名
	Email  string `json:"email"`   // 邮箱
}

// SendFriendRequestRequest 发送好友请求 DTO
type SendFriendRequestRequest struct {
	TargetUserID int64 `json:"targetUserId" binding:"required"` // 目标用户ID
}

// FriendRequestItem 待处理好友请求项（含发起方信息）
type FriendRequestItem struct {
	UserID      int64  `json:"user_id"`      // 发起方用户ID
	Name        string `json:"name"`         // 发起方用户名
	Email       string `json:"email"`        // 发起方邮箱
	RequestedAt string `json:"requested_at"` // 请求时间
}

// FriendRequestListResponse 待处理好友请求列表响应 DTO
type FriendRequestListResponse struct {
	Requests []*FriendRequestItem `json:"requests"` // 待处理请求列表
}

// AcceptFriendRequestRequest 接受好友请求 DTO
type AcceptFriendRequestRequest struct {
	RequesterID int64 `json:"requesterId" binding:"required"` // 发起方用户ID
}

// AcceptFriendRequestResponse 接受好友请求响应 DTO
type AcceptFriendRequestResponse struct {
	Message       string `json:"message"`       // 结果消息
	PointsAwarded int64  `json:"pointsAwarded"` // 加给发起方的积分
}

// DeclineFriendRequestRequest 拒绝好友请求 DTO
type DeclineFriendRequestRequest struct {
	RequesterID int64 `json:"requesterId" binding:"required"` // 发起方用户ID
}
