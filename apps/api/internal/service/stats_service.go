package service

import (
	"BridgerServer/apps/api/internal/dto"
	"BridgerServer/apps/api/internal/repository"
	"BridgerServer/consts"
	"BridgerServer/pkg/errs"
	"BridgerServer/pkg/logger"
	"context"
)

// statsServiceImpl 平台统计服务实现
type statsServiceImpl struct {
	statsRepo repository.IStatsRepository
}

// NewStatsService 创建统计服务实例
func NewStatsService(statsRepo repository.IStatsRepository) StatsService {
	return &statsServiceImpl{statsRepo: statsRepo}
}

// GetStats 获取用户总数与按月注册趋势
// 趋势数据在数据库侧聚合，避免把整张用户表拉到内存
func (s *statsServiceImpl) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	total, err := s.statsRepo.CountUsers(ctx)
	if err != nil {
		logger.Error(ctx, "统计用户总数失败", logger.ErrorField("error", err))
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}

	monthly, err := s.statsRepo.MonthlyRegistrations(ctx)
	if err != nil {
		logger.Error(ctx, "统计注册趋势失败", logger.ErrorField("error", err))
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}

	creation := &dto.CreationData{
		Labels: make([]string, 0, len(monthly)),
		Counts: make([]int64, 0, len(monthly)),
	}
	for _, row := range monthly {
		creation.Labels = append(creation.Labels, row.Month)
		creation.Counts = append(creation.Counts, row.Count)
	}

	return &dto.StatsResponse{
		TotalUsers:   total,
		CreationData: creation,
	}, nil
}
