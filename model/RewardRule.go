package model

// 积分活动类型
// 所有加分动作必须经过 reward_rule 表查询，不允许在代码里写死分值。
const (
	ActivityLeaveFeedback       = "leave_feedback"        // 留下场所反馈
	ActivityAcceptFriendRequest = "accept_friend_request" // 好友请求被接受（加给发起方）
)

// RewardRule 积分规则表：活动类型到分值的静态映射。
type RewardRule struct {
	RewardID         int64  `gorm:"column:reward_id;primaryKey;autoIncrement;comment:规则id"`
	ActivityType     string `gorm:"column:activity_type;type:varchar(64);not null;uniqueIndex:uidx_activity;comment:活动类型"`
	PointsAssociated int64  `gorm:"column:points_associated;not null;comment:活动对应分值"`
}

func (RewardRule) TableName() string { return "reward_rule" }
