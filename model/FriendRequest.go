package model

import "time"

// 好友请求状态
const (
	FriendRequestPending  int8 = 0 // 待处理
	FriendRequestAccepted int8 = 1 // 已接受
)

// FriendRequest 好友请求台账。
// 约束：uidx_requester_target 保证同方向同一对用户最多一条记录，
// 并发重复发送时后写入的一方会命中唯一键冲突。
// 生命周期：send 创建 accepted=0；accept 置 1（记录保留）；decline 删除记录。
type FriendRequest struct {
	Id          int64     `gorm:"column:id;primaryKey;autoIncrement;comment:自增id"`
	RequesterID int64     `gorm:"column:requester_id;not null;uniqueIndex:uidx_requester_target;comment:发起方用户id"`
	TargetID    int64     `gorm:"column:target_id;not null;index:idx_target_accepted;uniqueIndex:uidx_requester_target;comment:接收方用户id"`
	Accepted    int8      `gorm:"column:accepted;not null;default:0;index:idx_target_accepted;comment:状态 0.待处理 1.已接受"`
	RequestedAt time.Time `gorm:"column:requested_at;autoCreateTime"`
}

func (FriendRequest) TableName() string { return "friend_request" }
