package service

import (
	"context"
	"testing"
	"time"

	"BridgerServer/apps/api/internal/repository"
	"BridgerServer/consts"
	"BridgerServer/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewardService_Redeem(t *testing.T) {
	initFriendTestLogger()

	coffeeTier := &model.RedemptionTier{TierID: 1, PointsRequired: 50, RewardDescription: "Coffee voucher"}

	t.Run("tier_not_found", func(t *testing.T) {
		rewardRepo := &fakeRewardRepo{
			getTierByIDFn: func(context.Context, int64) (*model.RedemptionTier, error) { return nil, nil },
		}
		svc := NewRewardService(&fakeUserRepo{}, rewardRepo)

		_, err := svc.Redeem(context.Background(), 42, 999)
		requireBizCode(t, err, consts.CodeTierNotFound)
	})

	t.Run("user_not_found", func(t *testing.T) {
		rewardRepo := &fakeRewardRepo{
			getTierByIDFn: func(context.Context, int64) (*model.RedemptionTier, error) { return coffeeTier, nil },
		}
		userRepo := &fakeUserRepo{
			getByIDFn: func(context.Context, int64) (*model.User, error) { return nil, nil },
		}
		svc := NewRewardService(userRepo, rewardRepo)

		_, err := svc.Redeem(context.Background(), 42, 1)
		requireBizCode(t, err, consts.CodeUserNotFound)
	})

	t.Run("insufficient_points", func(t *testing.T) {
		rewardRepo := &fakeRewardRepo{
			getTierByIDFn: func(context.Context, int64) (*model.RedemptionTier, error) { return coffeeTier, nil },
			redeemTierFn: func(context.Context, int64, *model.RedemptionTier) (int64, error) {
				return 0, repository.ErrInsufficientPoints
			},
		}
		userRepo := &fakeUserRepo{
			getByIDFn: func(context.Context, int64) (*model.User, error) {
				return &model.User{UserID: 42, TotalPoints: 10}, nil
			},
		}
		svc := NewRewardService(userRepo, rewardRepo)

		_, err := svc.Redeem(context.Background(), 42, 1)
		requireBizCode(t, err, consts.CodeInsufficientPoints)
	})

	t.Run("success_returns_remaining_balance", func(t *testing.T) {
		rewardRepo := &fakeRewardRepo{
			getTierByIDFn: func(_ context.Context, tierID int64) (*model.RedemptionTier, error) {
				assert.Equal(t, int64(1), tierID)
				return coffeeTier, nil
			},
			redeemTierFn: func(_ context.Context, userID int64, tier *model.RedemptionTier) (int64, error) {
				assert.Equal(t, int64(42), userID)
				assert.Equal(t, coffeeTier.TierID, tier.TierID)
				return 20, nil
			},
		}
		userRepo := &fakeUserRepo{
			getByIDFn: func(context.Context, int64) (*model.User, error) {
				return &model.User{UserID: 42, TotalPoints: 70}, nil
			},
		}
		svc := NewRewardService(userRepo, rewardRepo)

		resp, err := svc.Redeem(context.Background(), 42, 1)
		require.NoError(t, err)
		assert.Equal(t, "Reward redeemed successfully!", resp.Message)
		assert.Equal(t, "Coffee voucher", resp.Reward)
		assert.Equal(t, int64(20), resp.UpdatedTotalPoints)
	})
}

func TestRewardService_ListTiers(t *testing.T) {
	initFriendTestLogger()

	rewardRepo := &fakeRewardRepo{
		listTiersFn: func(context.Context) ([]*model.RedemptionTier, error) {
			return []*model.RedemptionTier{
				{TierID: 1, PointsRequired: 50, RewardDescription: "Coffee voucher"},
				{TierID: 2, PointsRequired: 150, RewardDescription: "Museum ticket"},
			}, nil
		},
	}
	svc := NewRewardService(&fakeUserRepo{}, rewardRepo)

	tiers, err := svc.ListTiers(context.Background())
	require.NoError(t, err)
	require.Len(t, tiers, 2)
	assert.Equal(t, int64(50), tiers[0].PointsRequired)
	assert.Equal(t, "Museum ticket", tiers[1].RewardDescription)
}

func TestRewardService_ListHistory(t *testing.T) {
	initFriendTestLogger()

	createdAt := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	rewardRepo := &fakeRewardRepo{
		listHistoryFn: func(_ context.Context, userID int64) ([]*model.RedemptionHistory, error) {
			assert.Equal(t, int64(42), userID)
			return []*model.RedemptionHistory{
				{RedemptionID: 1, OrderNo: "1881700000000001", UserID: 42, TierID: 1, PointsRedeemed: 50, CreatedAt: createdAt},
			}, nil
		},
	}
	svc := NewRewardService(&fakeUserRepo{}, rewardRepo)

	history, err := svc.ListHistory(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "1881700000000001", history[0].OrderNo)
	assert.Equal(t, int64(50), history[0].PointsRedeemed)
}
