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
	"time"
)

// visitDateLayout 到访日期的传输格式
const visitDateLayout = "2006-01-02"

// visitServiceImpl 到访记录服务实现
type visitServiceImpl struct {
	venueRepo repository.IVenueRepository
	visitRepo repository.IVisitRepository
}

// NewVisitService 创建到访记录服务实例
func NewVisitService(venueRepo repository.IVenueRepository, visitRepo repository.IVisitRepository) VisitService {
	return &visitServiceImpl{
		venueRepo: venueRepo,
		visitRepo: visitRepo,
	}
}

// RecordVisit 记录一次到访
// 业务流程：
//  1. 校验到访日期格式
//  2. 场所存在
//  3. 写入记录
//
// 错误码映射：
//   - CodeParamError: 日期格式非法
//   - CodeVenueNotFound: 场所不存在
//   - CodeInternalError: 系统内部错误
func (s *visitServiceImpl) RecordVisit(ctx context.Context, userID int64, req *dto.CreateVisitRequest) (*dto.CreateVisitResponse, error) {
	// 1. 日期校验
	visitDate, err := time.Parse(visitDateLayout, req.VisitDate)
	if err != nil {
		return nil, errs.New(consts.CodeParamError)
	}

	// 2. 场所存在
	venue, err := s.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}
	if venue == nil {
		return nil, errs.New(consts.CodeVenueNotFound)
	}

	// 3. 写入记录
	visit := &model.VisitHistory{
		UserID:    userID,
		VenueID:   req.VenueID,
		VisitDate: visitDate,
		Notes:     req.Notes,
	}
	created, err := s.visitRepo.Create(ctx, visit)
	if err != nil {
		logger.Error(ctx, "写入到访记录失败",
			logger.Int64("user_id", userID),
			logger.Int64("venue_id", req.VenueID),
			logger.ErrorField("error", err),
		)
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}
	created.Venue = venue

	return &dto.CreateVisitResponse{
		Success: true,
		Message: "Visit successfully recorded",
		Visit:   converter.ModelToVisitItem(created),
	}, nil
}
