package service

import (
	"BridgerServer/apps/api/internal/converter"
	"BridgerServer/apps/api/internal/dto"
	"BridgerServer/apps/api/internal/notify"
	"BridgerServer/apps/api/internal/repository"
	"BridgerServer/consts"
	"BridgerServer/pkg/async"
	"BridgerServer/pkg/errs"
	"BridgerServer/pkg/logger"
	"context"
	"errors"
	"strings"
	"time"
)

// searchResultLimit 搜索结果上限，防止短查询词拖回全表
const searchResultLimit = 200

// friendServiceImpl 好友服务实现
type friendServiceImpl struct {
	userRepo    repository.IUserRepository
	friendRepo  repository.IFriendRepository
	requestRepo repository.IFriendRequestRepository
	notifier    notify.Notifier
}

// NewFriendService 创建好友服务实例
// notifier 可为 nil（通知能力关闭时）
func NewFriendService(
	userRepo repository.IUserRepository,
	friendRepo repository.IFriendRepository,
	requestRepo repository.IFriendRequestRepository,
	notifier notify.Notifier,
) FriendService {
	return &friendServiceImpl{
		userRepo:    userRepo,
		friendRepo:  friendRepo,
		requestRepo: requestRepo,
		notifier:    notifier,
	}
}

// SearchUsers 按用户名搜索用户
// 业务流程：
//  1. 校验查询词非空
//  2. 模糊匹配用户名（大小写不敏感）
//
// 错误码映射：
//   - CodeParamError: 查询词为空
//   - CodeInternalError: 系统内部错误
func (s *friendServiceImpl) SearchUsers(ctx context.Context, query string) ([]*dto.SearchUserItem, error) {
	// 1. 校验查询词
	if strings.TrimSpace(query) == "" {
		return nil, errs.New(consts.CodeParamError)
	}

	// 2. 模糊搜索
	users, err := s.userRepo.SearchByName(ctx, query, searchResultLimit)
	if err != nil {
		logger.Error(ctx, "搜索用户失败",
			logger.String("query", query),
			logger.ErrorField("error", err),
		)
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}

	return converter.ModelListToSearchUserItemList(users), nil
}

// SendRequest 发送好友请求
// 业务流程（检查顺序对外可见，不可调整）：
//  1. 双方ID有效且不相同
//  2. 双方用户都存在
//  3. 不是已有好友
//  4. 两个方向都没有待处理请求
//  5. 写入待处理请求
//
// 错误码映射：
//   - CodeCannotFriendSelf: ID 缺失或发给自己
//   - CodeUserNotFound: 任一方用户不存在
//   - CodeAlreadyFriend: 已是好友
//   - CodeFriendRequestPending: 已有待处理请求
//   - CodeInternalError: 系统内部错误
func (s *friendServiceImpl) SendRequest(ctx context.Context, userID, targetUserID int64) error {
	// 1. ID 校验
	if userID <= 0 || targetUserID <= 0 || userID == targetUserID {
		return errs.New(consts.CodeCannotFriendSelf)
	}

	// 2. 双方用户都存在
	currentUser, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return errs.Wrap(consts.CodeInternalError, err)
	}
	targetUser, err := s.userRepo.GetByID(ctx, targetUserID)
	if err != nil {
		return errs.Wrap(consts.CodeInternalError, err)
	}
	if currentUser == nil || targetUser == nil {
		return errs.New(consts.CodeUserNotFound)
	}

	// 3. 不是已有好友（关系表双向写入，查一侧即可）
	isFriend, err := s.friendRepo.IsFriend(ctx, userID, targetUserID)
	if err != nil {
		return errs.Wrap(consts.CodeInternalError, err)
	}
	if isFriend {
		return errs.New(consts.CodeAlreadyFriend)
	}

	// 4. 两个方向都没有待处理请求
	pending, err := s.requestRepo.ExistsPendingRequest(ctx, userID, targetUserID)
	if err != nil {
		return errs.Wrap(consts.CodeInternalError, err)
	}
	if !pending {
		pending, err = s.requestRepo.ExistsPendingRequest(ctx, targetUserID, userID)
		if err != nil {
			return errs.Wrap(consts.CodeInternalError, err)
		}
	}
	if pending {
		return errs.New(consts.CodeFriendRequestPending)
	}

	// 5. 写入待处理请求
	// 唯一键兜底并发：同方向同时发送时后写入的一方命中冲突，对外同样报"已有待处理请求"
	if _, err := s.requestRepo.CreatePending(ctx, userID, targetUserID); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return errs.New(consts.CodeFriendRequestPending)
		}
		logger.Error(ctx, "创建好友请求失败",
			logger.Int64("user_id", userID),
			logger.Int64("target_user_id", targetUserID),
			logger.ErrorField("error", err),
		)
		return errs.Wrap(consts.CodeInternalError, err)
	}

	// 通知目标用户（尽力而为）
	s.notifyAsync(ctx, targetUserID, notify.Event{
		Type:     notify.EventFriendRequest,
		FromID:   currentUser.UserID,
		FromName: currentUser.Name,
	})

	return nil
}

// GetPendingRequests 获取当前用户收到的待处理请求
func (s *friendServiceImpl) GetPendingRequests(ctx context.Context, userID int64) (*dto.FriendRequestListResponse, error) {
	requests, requesters, err := s.requestRepo.GetPendingList(ctx, userID)
	if err != nil {
		logger.Error(ctx, "查询待处理好友请求失败",
			logger.Int64("user_id", userID),
			logger.ErrorField("error", err),
		)
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}

	items := make([]*dto.FriendRequestItem, 0, len(requests))
	for i, request := range requests {
		item := &dto.FriendRequestItem{
			UserID:      request.RequesterID,
			RequestedAt: request.RequestedAt.Format(time.RFC3339),
		}
		// 发起方账号可能已注销，保留请求行但名字留空
		if i < len(requesters) && requesters[i] != nil {
			item.Name = requesters[i].Name
			item.Email = requesters[i].Email
		}
		items = append(items, item)
	}

	return &dto.FriendRequestListResponse{Requests: items}, nil
}

// AcceptRequest 接受好友请求
// 业务流程：
//  1. 双方用户都存在
//  2. 事务内：CAS 置已接受 + 双向建立关系 + 按规则加积分给发起方
//  3. 通知发起方
//
// 错误码映射：
//   - CodeUserNotFound: 任一方用户不存在
//   - CodeFriendRequestNotFound: 请求不存在或已被处理
//   - CodeInternalError: 系统内部错误
func (s *friendServiceImpl) AcceptRequest(ctx context.Context, userID, requesterID int64) (*dto.AcceptFriendRequestResponse, error) {
	// 1. 双方用户都存在
	currentUser, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}
	requester, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}
	if currentUser == nil || requester == nil {
		return nil, errs.New(consts.CodeUserNotFound)
	}

	// 2. 事务处理（请求方→当前用户方向的待处理请求）
	pointsAwarded, alreadyProcessed, err := s.requestRepo.AcceptRequestAndCreateRelation(ctx, requesterID, userID)
	if err != nil {
		logger.Error(ctx, "接受好友请求失败",
			logger.Int64("user_id", userID),
			logger.Int64("requester_id", requesterID),
			logger.ErrorField("error", err),
		)
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}
	if alreadyProcessed {
		return nil, errs.New(consts.CodeFriendRequestNotFound)
	}

	logger.Info(ctx, "好友请求已接受",
		logger.Int64("user_id", userID),
		logger.Int64("requester_id", requesterID),
		logger.Int64("points_awarded", pointsAwarded),
	)

	// 3. 通知发起方（尽力而为）
	s.notifyAsync(ctx, requesterID, notify.Event{
		Type:     notify.EventFriendAccepted,
		FromID:   currentUser.UserID,
		FromName: currentUser.Name,
	})

	return &dto.AcceptFriendRequestResponse{
		Message:       "Friend request accepted successfully.",
		PointsAwarded: pointsAwarded,
	}, nil
}

// DeclineRequest 拒绝好友请求
// 错误码映射：
//   - CodeFriendRequestNotFound: 请求不存在或已被处理
//   - CodeInternalError: 系统内部错误
func (s *friendServiceImpl) DeclineRequest(ctx context.Context, userID, requesterID int64) error {
	err := s.requestRepo.DeclineRequest(ctx, requesterID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return errs.New(consts.CodeFriendRequestNotFound)
		}
		logger.Error(ctx, "拒绝好友请求失败",
			logger.Int64("user_id", userID),
			logger.Int64("requester_id", requesterID),
			logger.ErrorField("error", err),
		)
		return errs.Wrap(consts.CodeInternalError, err)
	}
	return nil
}

// notifyAsync 异步投递通知事件
func (s *friendServiceImpl) notifyAsync(ctx context.Context, userID int64, event notify.Event) {
	if s.notifier == nil {
		return
	}
	async.RunSafe(ctx, func(runCtx context.Context) {
		s.notifier.NotifyUser(runCtx, userID, event)
	}, 0)
}
