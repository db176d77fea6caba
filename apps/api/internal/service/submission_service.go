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
	"errors"
)

// submissionServiceImpl 场所提交服务实现
type submissionServiceImpl struct {
	submissionRepo repository.ISubmissionRepository
}

// NewSubmissionService 创建场所提交服务实例
func NewSubmissionService(submissionRepo repository.ISubmissionRepository) SubmissionService {
	return &submissionServiceImpl{submissionRepo: submissionRepo}
}

// Submit 提交新场所
// 业务流程：
//  1. 校验场所类型
//  2. 写入提交表等待审核
//
// 错误码映射：
//   - CodeParamError: 场所类型非法
//   - CodeInternalError: 系统内部错误
func (s *submissionServiceImpl) Submit(ctx context.Context, userID int64, req *dto.CreateSubmissionRequest) (*dto.CreateSubmissionResponse, error) {
	// 1. 场所类型白名单
	if !model.ValidVenueType(req.LocationType) {
		return nil, errs.New(consts.CodeParamError)
	}

	// 2. 写入提交表
	submission := &model.LocationSubmission{
		Name:               req.LocationName,
		Address:            req.LocationAddress,
		Description:        req.LocationDescription,
		Type:               req.LocationType,
		AccessibilityScore: req.AccessibilityScore,
		AccessibilityAvail: req.AccessibilityAvail,
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		SubmittedBy:        userID,
	}
	created, err := s.submissionRepo.Create(ctx, submission)
	if err != nil {
		logger.Error(ctx, "写入场所提交失败",
			logger.Int64("user_id", userID),
			logger.String("location_name", req.LocationName),
			logger.ErrorField("error", err),
		)
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}

	logger.Info(ctx, "场所提交成功",
		logger.Int64("submission_id", created.SubmissionID),
		logger.Int64("user_id", userID),
	)

	return &dto.CreateSubmissionResponse{
		Message:  "Location submitted successfully",
		Location: converter.ModelToSubmissionItem(created),
	}, nil
}

// ListSubmissions 获取全部提交（管理端）
func (s *submissionServiceImpl) ListSubmissions(ctx context.Context) ([]*dto.SubmissionItem, error) {
	submissions, err := s.submissionRepo.ListAll(ctx)
	if err != nil {
		logger.Error(ctx, "查询场所提交列表失败", logger.ErrorField("error", err))
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}
	return converter.ModelListToSubmissionItemList(submissions), nil
}

// Accept 审核通过：提交转为正式场所
// 错误码映射：
//   - CodeSubmissionNotFound: 提交不存在（或已被其他管理员处理）
//   - CodeInternalError: 系统内部错误
func (s *submissionServiceImpl) Accept(ctx context.Context, submissionID int64) (*dto.AcceptSubmissionResponse, error) {
	venue, err := s.submissionRepo.AcceptIntoVenue(ctx, submissionID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, errs.New(consts.CodeSubmissionNotFound)
		}
		logger.Error(ctx, "场所提交审核失败",
			logger.Int64("submission_id", submissionID),
			logger.ErrorField("error", err),
		)
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}

	logger.Info(ctx, "场所提交审核通过",
		logger.Int64("submission_id", submissionID),
		logger.Int64("venue_id", venue.VenueID),
	)

	return &dto.AcceptSubmissionResponse{
		Message: "Venue accepted and added successfully",
		Venue:   converter.ModelToVenueItem(venue),
	}, nil
}

// Delete 拒绝（删除）提交
// 错误码映射：
//   - CodeSubmissionNotFound: 提交不存在
//   - CodeInternalError: 系统内部错误
func (s *submissionServiceImpl) Delete(ctx context.Context, submissionID int64) error {
	err := s.submissionRepo.Delete(ctx, submissionID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return errs.New(consts.CodeSubmissionNotFound)
		}
		logger.Error(ctx, "删除场所提交失败",
			logger.Int64("submission_id", submissionID),
			logger.ErrorField("error", err),
		)
		return errs.Wrap(consts.CodeInternalError, err)
	}
	return nil
}
