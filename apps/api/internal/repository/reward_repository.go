package repository

import (
	"BridgerServer/model"
	"BridgerServer/pkg/util"
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// 进程内缓存参数：规则和档位是极低频变更的静态配置，
// 用本地 LRU 顶住热路径（反馈加分、好友接受加分每次都要查规则）。
const (
	rewardCacheSize = 64
	rewardCacheTTL  = 5 * time.Minute

	tierListCacheKey = "__tiers__"
)

type rewardRepositoryImpl struct {
	db          *gorm.DB
	redisClient *redis.Client

	ruleCache *expirable.LRU[string, *model.RewardRule]
	tierCache *expirable.LRU[string, []*model.RedemptionTier]
}

func NewRewardRepository(db *gorm.DB, redisClient *redis.Client) IRewardRepository {
	return &rewardRepositoryImpl{
		db:          db,
		redisClient: redisClient,
		ruleCache:   expirable.NewLRU[string, *model.RewardRule](rewardCacheSize, nil, rewardCacheTTL),
		tierCache:   expirable.NewLRU[string, []*model.RedemptionTier](1, nil, rewardCacheTTL),
	}
}

// GetRuleByActivity 按活动类型查询积分规则
func (r *rewardRepositoryImpl) GetRuleByActivity(ctx context.Context, activityType string) (*model.RewardRule, error) {
	if rule, ok := r.ruleCache.Get(activityType); ok {
		return rule, nil
	}

	var rule model.RewardRule
	err := r.db.WithContext(ctx).
		Where("activity_type = ?", activityType).
		First(&rule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, WrapDBError(err)
	}

	r.ruleCache.Add(activityType, &rule)
	return &rule, nil
}

// ListTiers 获取全部兑换档位（按所需积分升序）
func (r *rewardRepositoryImpl) ListTiers(ctx context.Context) ([]*model.RedemptionTier, error) {
	if tiers, ok := r.tierCache.Get(tierListCacheKey); ok {
		return tiers, nil
	}

	var tiers []*model.RedemptionTier
	err := r.db.WithContext(ctx).
		Order("points_required ASC").
		Find(&tiers).Error
	if err != nil {
		return nil, WrapDBError(err)
	}

	r.tierCache.Add(tierListCacheKey, tiers)
	return tiers, nil
}

// GetTierByID 按档位ID查询
func (r *rewardRepositoryImpl) GetTierByID(ctx context.Context, tierID int64) (*model.RedemptionTier, error) {
	// 档位总量很小，复用列表缓存
	tiers, err := r.ListTiers(ctx)
	if err != nil {
		return nil, err
	}
	for _, tier := range tiers {
		if tier.TierID == tierID {
			return tier, nil
		}
	}

	// 缓存里没有，直查一次兜底（刚插入的新档位）
	var tier model.RedemptionTier
	err = r.db.WithContext(ctx).
		Where("tier_id = ?", tierID).
		First(&tier).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, WrapDBError(err)
	}
	return &tier, nil
}

// RedeemTier 兑换档位（事务 + 条件扣减）
// 扣减语句 WHERE total_points >= ? 由数据库保证余额不为负，
// 并发兑换时超出余额的一方 RowsAffected=0，返回 ErrInsufficientPoints
func (r *rewardRepositoryImpl) RedeemTier(ctx context.Context, userID int64, tier *model.RedemptionTier) (int64, error) {
	var remaining int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 条件扣减
		result := tx.Model(&model.User{}).
			Where("user_id = ? AND total_points >= ?", userID, tier.PointsRequired).
			Update("total_points", gorm.Expr("total_points - ?", tier.PointsRequired))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrInsufficientPoints
		}

		// 2. 写兑换流水
		history := &model.RedemptionHistory{
			OrderNo:        strconv.FormatInt(util.NextID(), 10),
			UserID:         userID,
			TierID:         tier.TierID,
			PointsRedeemed: tier.PointsRequired,
		}
		if err := tx.Create(history).Error; err != nil {
			return err
		}

		// 3. 读出扣减后余额（同一事务内，读到的是本次扣减结果）
		var user model.User
		if err := tx.Select("total_points").
			Where("user_id = ?", userID).
			First(&user).Error; err != nil {
			return err
		}
		remaining = user.TotalPoints
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrInsufficientPoints) {
			return 0, ErrInsufficientPoints
		}
		return 0, WrapDBError(err)
	}

	// 积分变动，失效用户缓存
	invalidateUserCache(ctx, r.redisClient, userID)

	return remaining, nil
}

// ListHistory 获取用户兑换流水（按时间倒序）
func (r *rewardRepositoryImpl) ListHistory(ctx context.Context, userID int64) ([]*model.RedemptionHistory, error) {
	var records []*model.RedemptionHistory
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, WrapDBError(err)
	}
	return records, nil
}
