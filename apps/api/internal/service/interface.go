package service

import (
	"BridgerServer/apps/api/internal/dto"
	"context"
	"io"
)

// ==================== 认证与用户服务 ====================

// AuthService 认证与用户服务接口
type AuthService interface {
	// Register 用户注册（按客户端 IP 尽力补全城市/邮编）
	Register(ctx context.Context, req *dto.RegisterRequest, clientIP string) (*dto.RegisterResponse, error)

	// Login 用户登录
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)

	// GetProfile 获取个人主页聚合数据
	GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error)

	// ListUsers 获取全部用户（管理端）
	ListUsers(ctx context.Context) ([]*dto.UserInfo, error)
}

// ==================== 好友服务 ====================

// FriendService 好友服务接口
type FriendService interface {
	// SearchUsers 按用户名搜索用户
	SearchUsers(ctx context.Context, query string) ([]*dto.SearchUserItem, error)

	// SendRequest 发送好友请求
	SendRequest(ctx context.Context, userID, targetUserID int64) error

	// GetPendingRequests 获取当前用户收到的待处理请求
	GetPendingRequests(ctx context.Context, userID int64) (*dto.FriendRequestListResponse, error)

	// AcceptRequest 接受好友请求（加积分给发起方）
	AcceptRequest(ctx context.Context, userID, requesterID int64) (*dto.AcceptFriendRequestResponse, error)

	// DeclineRequest 拒绝好友请求
	DeclineRequest(ctx context.Context, userID, requesterID int64) error
}

// ==================== 积分兑换服务 ====================

// RewardService 积分兑换服务接口
type RewardService interface {
	// Redeem 兑换档位
	Redeem(ctx context.Context, userID, tierID int64) (*dto.RedeemResponse, error)

	// ListTiers 获取全部兑换档位
	ListTiers(ctx context.Context) ([]*dto.TierItem, error)

	// ListHistory 获取当前用户兑换流水
	ListHistory(ctx context.Context, userID int64) ([]*dto.RedemptionHistoryItem, error)
}

// ==================== 场所服务 ====================

// VenueService 场所服务接口
type VenueService interface {
	// ListVenues 获取全部场所
	ListVenues(ctx context.Context) (*dto.VenueListResponse, error)

	// GetVenue 按ID获取场所
	GetVenue(ctx context.Context, venueID int64) (*dto.VenueItem, error)

	// UploadPhoto 上传场所照片
	UploadPhoto(ctx context.Context, venueID int64, fileName string, fileSize int64, reader io.Reader) (*dto.UploadPhotoResponse, error)
}

// ==================== 反馈服务 ====================

// FeedbackService 反馈服务接口
type FeedbackService interface {
	// CreateFeedback 提交反馈（按规则加积分）
	CreateFeedback(ctx context.Context, req *dto.CreateFeedbackRequest) (*dto.CreateFeedbackResponse, error)

	// ListVenueFeedback 获取场所反馈列表
	ListVenueFeedback(ctx context.Context, venueID int64) (*dto.FeedbackListResponse, error)
}

// ==================== 收藏服务 ====================

// StarService 收藏服务接口
type StarService interface {
	// StarVenue 收藏场所（可附带分享对象）
	StarVenue(ctx context.Context, userID int64, req *dto.StarVenueRequest) error

	// ListStarred 获取当前用户的收藏列表
	ListStarred(ctx context.Context, userID int64) (*dto.StarredListResponse, error)
}

// ==================== 到访记录服务 ====================

// VisitService 到访记录服务接口
type VisitService interface {
	// RecordVisit 记录一次到访
	RecordVisit(ctx context.Context, userID int64, req *dto.CreateVisitRequest) (*dto.CreateVisitResponse, error)
}

// ==================== 志愿者服务 ====================

// VolunteerService 志愿者服务接口
type VolunteerService interface {
	// Apply 提交志愿者报名
	Apply(ctx context.Context, req *dto.CreateVolunteerRequest) (*dto.CreateVolunteerResponse, error)

	// ListVolunteers 获取全部志愿者（管理端）
	ListVolunteers(ctx context.Context) ([]*dto.VolunteerItem, error)
}

// ==================== 场所提交服务 ====================

// SubmissionService 场所提交服务接口
type SubmissionService interface {
	// Submit 提交新场所
	Submit(ctx context.Context, userID int64, req *dto.CreateSubmissionRequest) (*dto.CreateSubmissionResponse, error)

	// ListSubmissions 获取全部提交（管理端）
	ListSubmissions(ctx context.Context) ([]*dto.SubmissionItem, error)

	// Accept 审核通过：提交转为正式场所
	Accept(ctx context.Context, submissionID int64) (*dto.AcceptSubmissionResponse, error)

	// Delete 拒绝（删除）提交
	Delete(ctx context.Context, submissionID int64) error
}

// ==================== 统计服务 ====================

// StatsService 平台统计服务接口
type StatsService interface {
	// GetStats 获取用户总数与注册趋势
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
}
