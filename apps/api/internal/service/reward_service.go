package service

import (
	"BridgerServer/apps/api/internal/converter"
	"BridgerServer/apps/api/internal/dto"
	"BridgerServer/apps/api/internal/repository"
	"BridgerServer/consts"
	"BridgerServer/pkg/errs"
	"BridgerServer/pkg/logger"
	"context"
	"errors"
)

// rewardServiceImpl 积分兑换服务实现
type rewardServiceImpl struct {
	userRepo   repository.IUserRepository
	rewardRepo repository.IRewardRepository
}

// NewRewardService 创建积分兑换服务实例
func NewRewardService(userRepo repository.IUserRepository, rewardRepo repository.IRewardRepository) RewardService {
	return &rewardServiceImpl{
		userRepo:   userRepo,
		rewardRepo: rewardRepo,
	}
}

// Redeem 兑换档位
// 业务流程：
//  1. 档位存在
//  2. 用户存在
//  3. 事务内条件扣减（扣减与余额校验在同一条 UPDATE，天然防并发超扣）
//
// 错误码映射：
//   - CodeTierNotFound: 兑换档位不存在
//   - CodeUserNotFound: 用户不存在
//   - CodeInsufficientPoints: 积分不足
//   - CodeInternalError: 系统内部错误
func (s *rewardServiceImpl) Redeem(ctx context.Context, userID, tierID int64) (*dto.RedeemResponse, error) {
	logger.Info(ctx, "积分兑换请求",
		logger.Int64("user_id", userID),
		logger.Int64("tier_id", tierID),
	)

	// 1. 档位存在
	tier, err := s.rewardRepo.GetTierByID(ctx, tierID)
	if err != nil {
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}
	if tier == nil {
		return nil, errs.New(consts.CodeTierNotFound)
	}

	// 2. 用户存在
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}
	if user == nil {
		return nil, errs.New(consts.CodeUserNotFound)
	}

	// 3. 事务扣减 + 写兑换流水
	remaining, err := s.rewardRepo.RedeemTier(ctx, userID, tier)
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientPoints) {
			return nil, errs.New(consts.CodeInsufficientPoints)
		}
		logger.Error(ctx, "积分兑换失败",
			logger.Int64("user_id", userID),
			logger.Int64("tier_id", tierID),
			logger.ErrorField("error", err),
		)
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}

	logger.Info(ctx, "积分兑换成功",
		logger.Int64("user_id", userID),
		logger.Int64("tier_id", tierID),
		logger.Int64("points_redeemed", tier.PointsRequired),
		logger.Int64("remaining_points", remaining),
	)

	return &dto.RedeemResponse{
		Message:            "Reward redeemed successfully!",
		Reward:             tier.RewardDescription,
		UpdatedTotalPoints: remaining,
	}, nil
}

// ListTiers 获取全部兑换档位（按所需积分升序）
func (s *rewardServiceImpl) ListTiers(ctx context.Context) ([]*dto.TierItem, error) {
	tiers, err := s.rewardRepo.ListTiers(ctx)
	if err != nil {
		logger.Error(ctx, "查询兑换档位失败", logger.ErrorField("error", err))
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}
	return converter.ModelListToTierItemList(tiers), nil
}

// ListHistory 获取当前用户兑换流水
func (s *rewardServiceImpl) ListHistory(ctx context.Context, userID int64) ([]*dto.RedemptionHistoryItem, error) {
	records, err := s.rewardRepo.ListHistory(ctx, userID)
	if err != nil {
		logger.Error(ctx, "查询兑换流水失败",
			logger.Int64("user_id", userID),
			logger.ErrorField("error", err),
		)
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}
	return converter.ModelListToHistoryItemList(records), nil
}
