package repository

import (
	"BridgerServer/model"
	"context"
)

// ==================== 用户 Repository ====================

// IUserRepository 用户数据访问接口
type IUserRepository interface {
	// Create 创建新用户
	Create(ctx context.Context, user *model.User) (*model.User, error)

	// GetByID 根据用户ID查询用户信息（带缓存）
	// 用户不存在时返回 (nil, nil)
	GetByID(ctx context.Context, userID int64) (*model.User, error)

	// GetByEmail 根据邮箱查询用户信息
	// 用户不存在时返回 (nil, nil)
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// ExistsByEmail 检查邮箱是否已被注册
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// SearchByName 按用户名模糊搜索（大小写不敏感）
	SearchByName(ctx context.Context, query string, limit int) ([]*model.User, error)

	// ListAll 查询全部用户（管理端）
	ListAll(ctx context.Context) ([]*model.User, error)
}

// ==================== 好友请求台账 Repository ====================

// IFriendRequestRepository 好友请求台账数据访问接口
type IFriendRequestRepository interface {
	// CreatePending 创建待处理好友请求
	// 同方向重复发送命中唯一键冲突时返回 ErrDuplicateKey
	CreatePending(ctx context.Context, requesterID, targetID int64) (*model.FriendRequest, error)

	// ExistsPendingRequest 检查 requester→target 方向是否存在待处理请求
	ExistsPendingRequest(ctx context.Context, requesterID, targetID int64) (bool, error)

	// GetPendingList 获取 target 收到的全部待处理请求（含发起方信息，按时间倒序）
	GetPendingList(ctx context.Context, targetID int64) ([]*model.FriendRequest, []*model.User, error)

	// AcceptRequestAndCreateRelation 接受请求并建立好友关系（事务 + CAS幂等）
	// 同一事务内：CAS 置 accepted=1、双向写入 friend_relation、按积分规则给发起方加分
	// 返回值:
	//   - pointsAwarded: 本次加给发起方的积分
	//   - alreadyProcessed=true: 请求不存在或已被处理（不是数据库错误）
	AcceptRequestAndCreateRelation(ctx context.Context, requesterID, targetID int64) (pointsAwarded int64, alreadyProcessed bool, err error)

	// DeclineRequest 拒绝（删除）待处理请求
	// 请求不存在时返回 ErrRecordNotFound
	DeclineRequest(ctx context.Context, requesterID, targetID int64) error
}

// ==================== 好友关系 Repository ====================

// IFriendRepository 好友关系数据访问接口
type IFriendRepository interface {
	// IsFriend 判断两个用户是否已是好友
	IsFriend(ctx context.Context, userID, friendID int64) (bool, error)

	// GetFriendIDs 获取用户的全部好友ID
	GetFriendIDs(ctx context.Context, userID int64) ([]int64, error)
}

// ==================== 积分与兑换 Repository ====================

// IRewardRepository 积分规则与兑换数据访问接口
type IRewardRepository interface {
	// GetRuleByActivity 按活动类型查询积分规则
	// 规则不存在时返回 (nil, nil)
	GetRuleByActivity(ctx context.Context, activityType string) (*model.RewardRule, error)

	// ListTiers 获取全部兑换档位（按所需积分升序）
	ListTiers(ctx context.Context) ([]*model.RedemptionTier, error)

	// GetTierByID 按档位ID查询
	// 档位不存在时返回 (nil, nil)
	GetTierByID(ctx context.Context, tierID int64) (*model.RedemptionTier, error)

	// RedeemTier 兑换档位（事务 + 条件扣减）
	// 余额不足时返回 (0, ErrInsufficientPoints)
	// 成功时返回扣减后的积分余额
	RedeemTier(ctx context.Context, userID int64, tier *model.RedemptionTier) (int64, error)

	// ListHistory 获取用户兑换流水（按时间倒序）
	ListHistory(ctx context.Context, userID int64) ([]*model.RedemptionHistory, error)
}

// ==================== 场所 Repository ====================

// IVenueRepository 场所数据访问接口
type IVenueRepository interface {
	// ListAll 获取全部场所（带列表缓存）
	ListAll(ctx context.Context) ([]*model.Venue, error)

	// GetByID 按ID查询场所（带缓存）
	// 场所不存在时返回 (nil, nil)
	GetByID(ctx context.Context, venueID int64) (*model.Venue, error)

	// Create 创建场所
	Create(ctx context.Context, venue *model.Venue) (*model.Venue, error)

	// UpdatePhotoURL 更新场所照片地址
	// 场所不存在时返回 ErrRecordNotFound
	UpdatePhotoURL(ctx context.Context, venueID int64, photoURL string) error
}

// ==================== 反馈 Repository ====================

// IFeedbackRepository 场所反馈数据访问接口
type IFeedbackRepository interface {
	// CreateWithAward 创建反馈并按积分规则给用户加分（同一事务）
	// 返回本次加分值
	CreateWithAward(ctx context.Context, feedback *model.Feedback) (int64, error)

	// ListByVenue 获取场所的全部反馈（含用户信息，按时间倒序）
	ListByVenue(ctx context.Context, venueID int64) ([]*model.Feedback, error)
}

// ==================== 收藏 Repository ====================

// IStarRepository 收藏数据访问接口
type IStarRepository interface {
	// Upsert 收藏场所（重复收藏时覆盖分享列表）
	Upsert(ctx context.Context, star *model.StarredLocation) error

	// ListByUser 获取用户的全部收藏（含场所信息）
	ListByUser(ctx context.Context, userID int64) ([]*model.StarredLocation, error)

	// ListSharedWith 获取其他用户分享给 userID 的收藏（含场所信息）
	ListSharedWith(ctx context.Context, userID int64) ([]*model.StarredLocation, error)
}

// ==================== 到访记录 Repository ====================

// IVisitRepository 到访记录数据访问接口
type IVisitRepository interface {
	// Create 记录一次到访
	Create(ctx context.Context, visit *model.VisitHistory) (*model.VisitHistory, error)

	// ListByUser 获取用户的到访记录（含场所信息，按到访日期倒序）
	ListByUser(ctx context.Context, userID int64) ([]*model.VisitHistory, error)
}

// ==================== 志愿者 Repository ====================

// IVolunteerRepository 志愿者数据访问接口
type IVolunteerRepository interface {
	// Create 创建志愿者报名
	// 联系方式重复时返回 ErrDuplicateKey
	Create(ctx context.Context, volunteer *model.Volunteer) (*model.Volunteer, error)

	// ListAll 获取全部志愿者
	ListAll(ctx context.Context) ([]*model.Volunteer, error)
}

// ==================== 场所提交 Repository ====================

// ISubmissionRepository 场所提交数据访问接口
type ISubmissionRepository interface {
	// Create 创建提交
	Create(ctx context.Context, submission *model.LocationSubmission) (*model.LocationSubmission, error)

	// ListAll 获取全部提交
	ListAll(ctx context.Context) ([]*model.LocationSubmission, error)

	// AcceptIntoVenue 审核通过：提交行搬入 venue 表并删除提交（事务）
	// 提交不存在时返回 (nil, ErrRecordNotFound)
	AcceptIntoVenue(ctx context.Context, submissionID int64) (*model.Venue, error)

	// Delete 拒绝（删除）提交
	// 提交不存在时返回 ErrRecordNotFound
	Delete(ctx context.Context, submissionID int64) error
}

// ==================== 统计 Repository ====================

// MonthlyCount 单月注册量
type MonthlyCount struct {
	Month string `gorm:"column:month" json:"month"` // 格式 YYYY-MM
	Count int64  `gorm:"column:count" json:"count"`
}

// IStatsRepository 平台统计数据访问接口
type IStatsRepository interface {
	// CountUsers 用户总数
	CountUsers(ctx context.Context) (int64, error)

	// MonthlyRegistrations 按月统计注册量（SQL 聚合，按月份升序）
	MonthlyRegistrations(ctx context.Context) ([]*MonthlyCount, error)
}
