package model

import "time"

// FriendRelation 好友关系（单向行，一段关系写两行）。
// 约束：uidx_user_friend 保证同一对用户不重复；写入统一走 ON CONFLICT DO NOTHING，
// 重试不会产生重复行，集合语义由数据库保证。
type FriendRelation struct {
	Id        int64     `gorm:"column:id;primaryKey;autoIncrement;comment:自增id"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uidx_user_friend;comment:用户id"`
	FriendID  int64     `gorm:"column:friend_id;not null;index;uniqueIndex:uidx_user_friend;comment:好友用户id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (FriendRelation) TableName() string { return "friend_relation" }
