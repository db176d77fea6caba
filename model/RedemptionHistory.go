package model

import "time"

// RedemptionHistory 积分兑换流水。
// order_no 用雪花 ID 生成，作为对外可引用的兑换单号。
type RedemptionHistory struct {
	RedemptionID   int64     `gorm:"column:redemption_id;primaryKey;autoIncrement;comment:流水id"`
	OrderNo        string    `gorm:"column:order_no;type:varchar(32);not null;uniqueIndex:uidx_order_no;comment:兑换单号"`
	UserID         int64     `gorm:"column:user_id;not null;index:idx_user_created;comment:用户id"`
	TierID         int64     `gorm:"column:tier_id;not null;comment:兑换档位id"`
	PointsRedeemed int64     `gorm:"column:points_redeemed;not null;comment:扣减积分"`
	CreatedAt      time.Time `gorm:"column:created_at;index:idx_user_created;autoCreateTime"`
}

func (RedemptionHistory) TableName() string { return "redemption_history" }
