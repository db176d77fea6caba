package dto

// ==================== 积分兑换服务 DTO ====================

// RedeemRequest 积分兑换请求 DTO
type RedeemRequest struct {
	TierID int64 `json:"tier_id" binding:"required"` // 兑换档位ID
}

// RedeemResponse 积分兑换响应 DTO
type RedeemResponse struct {
	Message            string `json:"message"`            // 结果消息
	Reward             string `json:"reward"`             // 奖励描述
	UpdatedTotalPoints int64  `json:"updatedTotalPoints"` // 扣减后积分余额
}

// TierItem 兑换档位项
type TierItem struct {
	TierID            int64  `json:"tier_id"`            // 档位ID
	PointsRequired    int64  `json:"points_required"`    // 所需积分
	RewardDescription string `json:"reward_description"` // 奖励描述
}

// RedemptionHistoryItem 兑换流水项
type RedemptionHistoryItem struct {
	OrderNo        string `json:"order_no"`        // 兑换单号
	TierID         int64  `json:"tier_id"`         // 档位ID
	PointsRedeemed int64  `json:"points_redeemed"` // 扣减积分
	CreatedAt      string `json:"created_at"`      // 兑换时间
}
