package repository

import (
	"context"
	"testing"

	"BridgerServer/model"
	"BridgerServer/pkg/util"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedeemTier(t *testing.T) {
	initRepoTestLogger()
	require.NoError(t, util.InitSnowflake(1))
	ctx := context.Background()

	tier := &model.RedemptionTier{
		TierID:            3,
		PointsRequired:    80,
		RewardDescription: "Coffee voucher",
	}

	t.Run("insufficient_points", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewRewardRepository(db, nil)

		// 条件扣减未命中：余额不足，整个事务回滚
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `users`").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		_, err := repo.RedeemTier(ctx, 42, tier)
		require.ErrorIs(t, err, ErrInsufficientPoints)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success_returns_remaining_balance", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewRewardRepository(db, nil)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `users`").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO `redemption_history`").
			WillReturnResult(sqlmock.NewResult(7, 1))
		mock.ExpectQuery("SELECT `total_points` FROM `users`").
			WillReturnRows(sqlmock.NewRows([]string{"total_points"}).AddRow(20))
		mock.ExpectCommit()

		remaining, err := repo.RedeemTier(ctx, 42, tier)
		require.NoError(t, err)
		assert.Equal(t, int64(20), remaining)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetRuleByActivity(t *testing.T) {
	initRepoTestLogger()
	ctx := context.Background()

	t.Run("caches_rule_after_first_hit", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewRewardRepository(db, nil)

		// 只允许一次查询，第二次必须走进程内缓存
		mock.ExpectQuery("SELECT \\* FROM `reward_rule`").
			WillReturnRows(sqlmock.NewRows([]string{"reward_id", "activity_type", "points_associated"}).
				AddRow(1, model.ActivityLeaveFeedback, 10))

		rule, err := repo.GetRuleByActivity(ctx, model.ActivityLeaveFeedback)
		require.NoError(t, err)
		require.NotNil(t, rule)
		assert.Equal(t, int64(10), rule.PointsAssociated)

		rule, err = repo.GetRuleByActivity(ctx, model.ActivityLeaveFeedback)
		require.NoError(t, err)
		require.NotNil(t, rule)
		assert.Equal(t, int64(10), rule.PointsAssociated)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing_rule_returns_nil", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewRewardRepository(db, nil)

		mock.ExpectQuery("SELECT \\* FROM `reward_rule`").
			WillReturnRows(sqlmock.NewRows([]string{"reward_id", "activity_type", "points_associated"}))

		rule, err := repo.GetRuleByActivity(ctx, "unknown_activity")
		require.NoError(t, err)
		assert.Nil(t, rule)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetTierByID(t *testing.T) {
	initRepoTestLogger()
	ctx := context.Background()

	t.Run("served_from_tier_list_cache", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewRewardRepository(db, nil)

		mock.ExpectQuery("SELECT \\* FROM `redemption_tier`").
			WillReturnRows(sqlmock.NewRows([]string{"tier_id", "points_required", "reward_description"}).
				AddRow(1, 50, "Sticker pack").
				AddRow(2, 80, "Coffee voucher"))

		tier, err := repo.GetTierByID(ctx, 2)
		require.NoError(t, err)
		require.NotNil(t, tier)
		assert.Equal(t, "Coffee voucher", tier.RewardDescription)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown_tier_returns_nil", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewRewardRepository(db, nil)

		mock.ExpectQuery("SELECT \\* FROM `redemption_tier`").
			WillReturnRows(sqlmock.NewRows([]string{"tier_id", "points_required", "reward_description"}))
		// 列表缓存没有时直查兜底
		mock.ExpectQuery("SELECT \\* FROM `redemption_tier`").
			WillReturnRows(sqlmock.NewRows([]string{"tier_id", "points_required", "reward_description"}))

		tier, err := repo.GetTierByID(ctx, 99)
		require.NoError(t, err)
		assert.Nil(t, tier)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
