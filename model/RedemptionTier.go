package model

// RedemptionTier 积分兑换档位表。
type RedemptionTier struct {
	TierID            int64  `gorm:"column:tier_id;primaryKey;autoIncrement;comment:档位id"`
	PointsRequired    int64  `gorm:"column:points_required;not null;index;comment:所需积分"`
	RewardDescription string `gorm:"column:reward_description;type:varchar(256);not null;comment:奖励描述"`
}

func (RedemptionTier) TableName() string { return "redemption_tier" }
