package v1

import (
	"BridgerServer/apps/api/internal/dto"
	"BridgerServer/apps/api/internal/middleware"
	"BridgerServer/apps/api/internal/service"
	"BridgerServer/apps/api/internal/utils"
	"BridgerServer/consts"
	"BridgerServer/pkg/logger"
	"BridgerServer/pkg/result"

	"github.com/gin-gonic/gin"
)

// RewardHandler 积分兑换处理器
type RewardHandler struct {
	rewardService service.RewardService
}

// NewRewardHandler 创建积分兑换处理器
func NewRewardHandler(rewardService service.RewardService) *RewardHandler {
	return &RewardHandler{
		rewardService: rewardService,
	}
}

// Redeem 积分兑换接口
// @Summary 兑换奖励档位
// @Description 扣减积分并写入兑换流水，余额不足返回 400
// @Tags 积分接口
// @Accept json
// @Produce json
// @Param request body dto.RedeemRequest true "兑换请求"
// @Success 200 {object} dto.RedeemResponse
// @Router /api/rewards/redeem [post]
func (h *RewardHandler) Redeem(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		result.Fail(c, consts.CodeUnauthorized)
		return
	}

	// 1. 绑定请求数据
	var req dto.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		result.Fail(c, consts.CodeParamError)
		return
	}

	// 2. 调用服务层处理业务逻辑
	redeemResp, err := h.rewardService.Redeem(ctx, userID, req.TierID)
	if err != nil {
		if consts.IsNonServerError(utils.ExtractErrorCode(err)) {
			// 业务逻辑失败（档位不存在、积分不足）
			result.Fail(c, utils.ExtractErrorCode(err))
			return
		}

		logger.Error(ctx, "积分兑换服务内部错误",
			logger.Int64("user_id", userID),
			logger.Int64("tier_id", req.TierID),
			logger.ErrorField("error", err),
		)
		result.Fail(c, consts.CodeInternalError)
		return
	}

	// 3. 返回成功响应
	result.Success(c, redeemResp)
}

// ListTiers 兑换档位列表接口
// @Summary 获取全部兑换档位
// @Tags 积分接口
// @Produce json
// @Success 200 {array} dto.TierItem
// @Router /api/rewards/tiers [get]
func (h *RewardHandler) ListTiers(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	tiers, err := h.rewardService.ListTiers(ctx)
	if err != nil {
		if consts.IsNonServerError(utils.ExtractErrorCode(err)) {
			result.Fail(c, utils.ExtractErrorCode(err))
			return
		}

		logger.Error(ctx, "获取兑换档位服务内部错误",
			logger.ErrorField("error", err),
		)
		result.Fail(c, consts.CodeInternalError)
		return
	}

	result.Success(c, gin.H{"redemptionTiers": tiers})
}

// ListHistory 兑换流水接口
// @Summary 获取当前用户兑换流水
// @Tags 积分接口
// @Produce json
// @Success 200 {array} dto.RedemptionHistoryItem
// @Router /api/rewards/history [get]
func (h *RewardHandler) ListHistory(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		result.Fail(c, consts.CodeUnauthorized)
		return
	}

	records, err := h.rewardService.ListHistory(ctx, userID)
	if err != nil {
		if consts.IsNonServerError(utils.ExtractErrorCode(err)) {
			result.Fail(c, utils.ExtractErrorCode(err))
			return
		}

		logger.Error(ctx, "获取兑换流水服务内部错误",
			logger.Int64("user_id", userID),
			logger.ErrorField("error", err),
		)
		result.Fail(c, consts.CodeInternalError)
		return
	}

	result.Success(c, gin.H{"history": records})
}
