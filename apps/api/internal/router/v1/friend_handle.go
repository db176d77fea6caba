package v1

import (
	"BridgerServer/apps/api/internal/dto"
	"BridgerServer/apps/api/internal/middleware"
	"BridgerServer/apps/api/internal/service"
	"BridgerServer/apps/api/internal/utils"
	"BridgerServer/consts"
	"BridgerServer/pkg/logger"
	"BridgerServer/pkg/result"

	"github.com/gin-gonic/gin"
)

// FriendHandler 好友处理器
type FriendHandler struct {
	friendService service.FriendService
}

// NewFriendHandler 创建好友处理器
func NewFriendHandler(friendService service.FriendService) *FriendHandler {
	return &FriendHandler{
		friendService: friendService,
	}
}

// SearchUsers 用户搜索接口
// @Summary 按用户名搜索用户
// @Tags 好友接口
// @Produce json
// @Param query query string true "搜索关键词"
// @Success 200 {array} dto.SearchUserItem
// @Router /api/friends/search [get]
func (h *FriendHandler) SearchUsers(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	users, err := h.friendService.SearchUsers(ctx, c.Query("query"))
	if err != nil {
		if consts.IsNonServerError(utils.ExtractErrorCode(err)) {
			// 查询词为空等客户端错误
			result.FailWithMessage(c, "Search query cannot be empty.", utils.ExtractErrorCode(err))
			return
		}

		logger.Error(ctx, "搜索用户服务内部错误",
			logger.ErrorField("error", err),
		)
		result.Fail(c, consts.CodeInternalError)
		return
	}

	result.Success(c, users)
}

// SendRequest 发送好友请求接口
// @Summary 发送好友请求
// @Tags 好友接口
// @Accept json
// @Produce json
// @Param request body dto.SendFriendRequestRequest true "发送好友请求"
// @Success 200 {object} result.MessageBody
// @Router /api/friends/send [post]
func (h *FriendHandler) SendRequest(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		result.Fail(c, consts.CodeUnauthorized)
		return
	}

	// 1. 绑定请求数据
	var req dto.SendFriendRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// targetUserId 缺失时文案与自加好友一致
		result.Fail(c, consts.CodeCannotFriendSelf)
		return
	}

	// 2. 调用服务层处理业务逻辑
	if err := h.friendService.SendRequest(ctx, userID, req.TargetUserID); err != nil {
		if consts.IsNonServerError(utils.ExtractErrorCode(err)) {
			// 业务逻辑失败（已是好友、已有待处理请求等）
			result.Fail(c, utils.ExtractErrorCode(err))
			return
		}

		logger.Error(ctx, "发送好友请求服务内部错误",
			logger.Int64("user_id", userID),
			logger.ErrorField("error", err),
		)
		result.Fail(c, consts.CodeInternalError)
		return
	}

	// 3. 返回成功响应
	result.SuccessWithMessage(c, "Friend request sent successfully.")
}

// GetPendingRequests 待处理请求列表接口
// @Summary 获取收到的待处理好友请求
// @Tags 好友接口
// @Produce json
// @Success 200 {object} dto.FriendRequestListResponse
// @Router /api/friends/requests [get]
func (h *FriendHandler) GetPendingRequests(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		result.Fail(c, consts.CodeUnauthorized)
		return
	}

	listResp, err := h.friendService.GetPendingRequests(ctx, userID)
	if err != nil {
		if consts.IsNonServerError(utils.ExtractErrorCode(err)) {
			result.Fail(c, utils.ExtractErrorCode(err))
			return
		}

		logger.Error(ctx, "获取好友请求列表服务内部错误",
			logger.Int64("user_id", userID),
			logger.ErrorField("error", err),
		)
		result.Fail(c, consts.CodeInternalError)
		return
	}

	result.Success(c, listResp)
}

// AcceptRequest 接受好友请求接口
// @Summary 接受好友请求
// @Description 建立双向好友关系并给发起方加积分
// @Tags 好友接口
// @Accept json
// @Produce json
// @Param request body dto.AcceptFriendRequestRequest true "接受好友请求"
// @Success 200 {object} dto.AcceptFriendRequestResponse
// @Router /api/friends/accept [post]
func (h *FriendHandler) AcceptRequest(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		result.Fail(c, consts.CodeUnauthorized)
		return
	}

	var req dto.AcceptFriendRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		result.Fail(c, consts.CodeParamError)
		return
	}

	acceptResp, err := h.friendService.AcceptRequest(ctx, userID, req.RequesterID)
	if err != nil {
		if consts.IsNonServerError(utils.ExtractErrorCode(err)) {
			result.Fail(c, utils.ExtractErrorCode(err))
			return
		}

		logger.Error(ctx, "接受好友请求服务内部错误",
			logger.Int64("user_id", userID),
			logger.Int64("requester_id", req.RequesterID),
			logger.ErrorField("error", err),
		)
		result.Fail(c, consts.CodeInternalError)
		return
	}

	result.Success(c, acceptResp)
}

// DeclineRequest 拒绝好友请求接口
// @Summary 拒绝好友请求
// @Tags 好友接口
// @Accept json
// @Produce json
// @Param request body dto.DeclineFriendRequestRequest true "拒绝好友请求"
// @Success 200 {object} result.MessageBody
// @Router /api/friends/decline [post]
func (h *FriendHandler) DeclineRequest(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		result.Fail(c, consts.CodeUnauthorized)
		return
	}

	var req dto.DeclineFriendRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		result.Fail(c, consts.CodeParamError)
		return
	}

	if err := h.friendService.DeclineRequest(ctx, userID, req.RequesterID); err != nil {
		if consts.IsNonServerError(utils.ExtractErrorCode(err)) {
			result.Fail(c, utils.ExtractErrorCode(err))
			return
		}

		logger.Error(ctx, "拒绝好友请求服务内部错误",
			logger.Int64("user_id", userID),
			logger.Int64("requester_id", req.RequesterID),
			logger.ErrorField("error", err),
		)
		result.Fail(c, consts.CodeInternalError)
		return
	}

	result.SuccessWithMessage(c, "Friend request declined successfully.")
}
