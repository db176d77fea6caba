package service

import (
	"context"
	"errors"
	"testing"

	"BridgerServer/apps/api/internal/repository"
	"BridgerServer/consts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStatsRepo struct {
	countUsersFn           func(context.Context) (int64, error)
	monthlyRegistrationsFn func(context.Context) ([]*repository.MonthlyCount, error)
}

func (f *fakeStatsRepo) CountUsers(ctx context.Context) (int64, error) {
	return f.countUsersFn(ctx)
}

func (f *fakeStatsRepo) MonthlyRegistrations(ctx context.Context) ([]*repository.MonthlyCount, error) {
	return f.monthlyRegistrationsFn(ctx)
}

func TestStatsService_GetStats(t *testing.T) {
	initFriendTestLogger()

	t.Run("builds_chart_series", func(t *testing.T) {
		statsRepo := &fakeStatsRepo{
			countUsersFn: func(context.Context) (int64, error) { return 120, nil },
			monthlyRegistrationsFn: func(context.Context) ([]*repository.MonthlyCount, error) {
				return []*repository.MonthlyCount{
					{Month: "2026-01", Count: 40},
					{Month: "2026-02", Count: 80},
				}, nil
			},
		}
		svc := NewStatsService(statsRepo)

		resp, err := svc.GetStats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(120), resp.TotalUsers)
		assert.Equal(t, []string{"2026-01", "2026-02"}, resp.CreationData.Labels)
		assert.Equal(t, []int64{40, 80}, resp.CreationData.Counts)
	})

	t.Run("empty_platform", func(t *testing.T) {
		statsRepo := &fakeStatsRepo{
			countUsersFn: func(context.Context) (int64, error) { return 0, nil },
			monthlyRegistrationsFn: func(context.Context) ([]*repository.MonthlyCount, error) {
				return nil, nil
			},
		}
		svc := NewStatsService(statsRepo)

		resp, err := svc.GetStats(context.Background())
		require.NoError(t, err)
		assert.Zero(t, resp.TotalUsers)
		assert.Empty(t, resp.CreationData.Labels)
	})

	t.Run("count_error_wrapped_as_internal", func(t *testing.T) {
		statsRepo := &fakeStatsRepo{
			countUsersFn: func(context.Context) (int64, error) { return 0, errors.New("db down") },
		}
		svc := NewStatsService(statsRepo)

		_, err := svc.GetStats(context.Background())
		requireBizCode(t, err, consts.CodeInternalError)
	})
}
