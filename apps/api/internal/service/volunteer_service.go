package service

import (
	"BridgerServer/apps/api/internal/converter"
	"BridgerServer/apps/api/internal/dto"
	"BridgerServer/apps/api/internal/repository"
	"BridgerServer/consts"
	"BridgerServer/model"
	"BridgerServer/pkg/async"
	"BridgerServer/pkg/errs"
	"BridgerServer/pkg/logger"
	"BridgerServer/pkg/mail"
	"context"
	"errors"
	"fmt"
)

// volunteerServiceImpl 志愿者服务实现
type volunteerServiceImpl struct {
	volunteerRepo repository.IVolunteerRepository
	mailSender    *mail.Sender
}

// NewVolunteerService 创建志愿者服务实例
// mailSender 可为 nil（邮件能力关闭时不发确认邮件）
func NewVolunteerService(volunteerRepo repository.IVolunteerRepository, mailSender *mail.Sender) VolunteerService {
	return &volunteerServiceImpl{
		volunteerRepo: volunteerRepo,
		mailSender:    mailSender,
	}
}

// Apply 提交志愿者报名
// 业务流程：
//  1. 写入报名记录（联系方式唯一键防重复）
//  2. 异步发送确认邮件（尽力而为）
//
// 错误码映射：
//   - CodeVolunteerAlreadyExist: 同一联系方式已报名
//   - CodeInternalError: 系统内部错误
func (s *volunteerServiceImpl) Apply(ctx context.Context, req *dto.CreateVolunteerRequest) (*dto.CreateVolunteerResponse, error) {
	logger.Info(ctx, "志愿者报名请求",
		logger.String("name", req.VolunteerName),
	)

	// 1. 写入报名记录
	volunteer := &model.Volunteer{
		Name:          req.VolunteerName,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
		Interests:     req.AreasOfInterest,
	}
	created, err := s.volunteerRepo.Create(ctx, volunteer)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, errs.New(consts.CodeVolunteerAlreadyExist)
		}
		logger.Error(ctx, "写入志愿者报名失败",
			logger.String("name", req.VolunteerName),
			logger.ErrorField("error", err),
		)
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}

	// 2. 异步发确认邮件
	s.sendConfirmMailAsync(ctx, created)

	return &dto.CreateVolunteerResponse{
		Message:   "Volunteer created successfully!",
		Volunteer: converter.ModelToVolunteerItem(created),
	}, nil
}

// ListVolunteers 获取全部志愿者（管理端）
func (s *volunteerServiceImpl) ListVolunteers(ctx context.Context) ([]*dto.VolunteerItem, error) {
	volunteers, err := s.volunteerRepo.ListAll(ctx)
	if err != nil {
		logger.Error(ctx, "查询志愿者列表失败", logger.ErrorField("error", err))
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}
	return converter.ModelListToVolunteerItemList(volunteers), nil
}

// sendConfirmMailAsync 异步发送报名确认邮件
// 邮件失败只记日志，不影响报名结果
func (s *volunteerServiceImpl) sendConfirmMailAsync(ctx context.Context, volunteer *model.Volunteer) {
	if s.mailSender == nil {
		return
	}

	to := volunteer.Email
	name := volunteer.Name
	async.RunSafe(ctx, func(runCtx context.Context) {
		body := fmt.Sprintf("Hi %s,<br><br>Thank you for signing up as a volunteer. Our team will reach out to you soon.<br><br>The Bridger Team", name)
		err := s.mailSender.Send(to, "Thanks for volunteering with Bridger!", body)
		if err != nil && !errors.Is(err, mail.ErrDisabled) {
			logger.Warn(runCtx, "志愿者确认邮件发送失败",
				logger.Int64("volunteer_id", volunteer.VolunteerID),
				logger.ErrorField("error", err),
			)
		}
	}, 0)
}
