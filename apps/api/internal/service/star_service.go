package service

import (
	"BridgerServer/apps/api/internal/converter"
	"BridgerServer/apps/api/internal/dto"
	"BridgerServer/apps/api/internal/repository"
	"BridgerServer/consts"
	"BridgerServer/model"
	"BridgerServer/pkg/errs"
	"BridgerServer/pkg/logger"
	"context"
)

// starServiceImpl 收藏服务实现
type starServiceImpl struct {
	venueRepo repository.IVenueRepository
	starRepo  repository.IStarRepository
}

// NewStarService 创建收藏服务实例
func NewStarService(venueRepo repository.IVenueRepository, starRepo repository.IStarRepository) StarService {
	return &starServiceImpl{
		venueRepo: venueRepo,
		starRepo:  starRepo,
	}
}

// StarVenue 收藏场所
// 重复收藏视为更新分享列表，不报错
// 错误码映射：
//   - CodeVenueNotFound: 场所不存在
//   - CodeInternalError: 系统内部错误
func (s *starServiceImpl) StarVenue(ctx context.Context, userID int64, req *dto.StarVenueRequest) error {
	venue, err := s.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		return errs.Wrap(consts.CodeInternalError, err)
	}
	if venue == nil {
		return errs.New(consts.CodeVenueNotFound)
	}

	star := &model.StarredLocation{
		UserID:    userID,
		VenueID:   req.VenueID,
		ShareWith: req.ShareWith,
	}
	if err := s.starRepo.Upsert(ctx, star); err != nil {
		logger.Error(ctx, "收藏场所失败",
			logger.Int64("user_id", userID),
			logger.Int64("venue_id", req.VenueID),
			logger.ErrorField("error", err),
		)
		return errs.Wrap(consts.CodeInternalError, err)
	}
	return nil
}

// ListStarred 获取当前用户的收藏列表
func (s *starServiceImpl) ListStarred(ctx context.Context, userID int64) (*dto.StarredListResponse, error) {
	stars, err := s.starRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error(ctx, "查询收藏列表失败",
			logger.Int64("user_id", userID),
			logger.ErrorField("error", err),
		)
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}
	return &dto.StarredListResponse{StarredLocations: converter.ModelListToStarredItemList(stars)}, nil
}
