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

// feedbackServiceImpl 反馈服务实现
type feedbackServiceImpl struct {
	userRepo     repository.IUserRepository
	venueRepo    repository.IVenueRepository
	feedbackRepo repository.IFeedbackRepository
}

// NewFeedbackService 创建反馈服务实例
func NewFeedbackService(
	userRepo repository.IUserRepository,
	venueRepo repository.IVenueRepository,
	feedbackRepo repository.IFeedbackRepository,
) FeedbackService {
	return &feedbackServiceImpl{
		userRepo:     userRepo,
		venueRepo:    venueRepo,
		feedbackRepo: feedbackRepo,
	}
}

// CreateFeedback 提交反馈
// 业务流程：
//  1. 用户与场所都存在
//  2. 事务内写反馈并按规则给用户加分
//
// 错误码映射：
//   - CodeUserNotFound: 用户不存在
//   - CodeVenueNotFound: 场所不存在
//   - CodeInternalError: 系统内部错误
func (s *feedbackServiceImpl) CreateFeedback(ctx context.Context, req *dto.CreateFeedbackRequest) (*dto.CreateFeedbackResponse, error) {
	logger.Info(ctx, "提交反馈请求",
		logger.Int64("user_id", req.UserID),
		logger.Int64("venue_id", req.VenueID),
	)

	// 1. 用户与场所都存在
	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}
	if user == nil {
		return nil, errs.New(consts.CodeUserNotFound)
	}
	venue, err := s.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}
	if venue == nil {
		return nil, errs.New(consts.CodeVenueNotFound)
	}

	// 2. 事务写入 + 加分
	feedback := &model.Feedback{
		UserID:             req.UserID,
		VenueID:            req.VenueID,
		Content:            req.Content,
		AccessibilityScore: req.AccessibilityScore,
	}
	pointsAwarded, err := s.feedbackRepo.CreateWithAward(ctx, feedback)
	if err != nil {
		logger.Error(ctx, "写入反馈失败",
			logger.Int64("user_id", req.UserID),
			logger.Int64("venue_id", req.VenueID),
			logger.ErrorField("error", err),
		)
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}

	logger.Info(ctx, "反馈提交成功",
		logger.Int64("feedback_id", feedback.FeedbackID),
		logger.Int64("points_awarded", pointsAwarded),
	)

	return &dto.CreateFeedbackResponse{
		Message:       "Feedback submitted",
		Feedback:      converter.ModelToFeedbackItem(feedback),
		PointsAwarded: pointsAwarded,
	}, nil
}

// ListVenueFeedback 获取场所反馈列表
// 错误码映射：
//   - CodeVenueNotFound: 场所不存在
//   - CodeInternalError: 系统内部错误
func (s *feedbackServiceImpl) ListVenueFeedback(ctx context.Context, venueID int64) (*dto.FeedbackListResponse, error) {
	venue, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}
	if venue == nil {
		return nil, errs.New(consts.CodeVenueNotFound)
	}

	feedbacks, err := s.feedbackRepo.ListByVenue(ctx, venueID)
	if err != nil {
		logger.Error(ctx, "查询场所反馈失败",
			logger.Int64("venue_id", venueID),
			logger.ErrorField("error", err),
		)
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}

	return &dto.FeedbackListResponse{Feedback: converter.ModelListToFeedbackItemList(feedbacks)}, nil
}
