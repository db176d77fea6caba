package v1

import (
	"BridgerServer/apps/api/internal/dto"
	"BridgerServer/apps/api/internal/middleware"
	"BridgerServer/apps/api/internal/service"
	"BridgerServer/apps/api/internal/utils"
	"BridgerServer/consts"
	"BridgerServer/pkg/logger"
	"BridgerServer/pkg/result"
	"strconv"

	"github.com/gin-gonic/gin"
)

// FeedbackHandler 反馈处理器
type FeedbackHandler struct {
	feedbackService service.FeedbackService
}

// NewFeedbackHandler 创建反馈处理器
func NewFeedbackHandler(feedbackService service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
	}
}

// CreateFeedback 提交反馈接口
// @Summary 提交场所反馈
// @Description 写入反馈并按积分规则给用户加分
// @Tags 反馈接口
// @Accept json
// @Produce json
// @Param request body dto.CreateFeedbackRequest true "反馈请求"
// @Success 201 {object} dto.CreateFeedbackResponse
// @Router /api/feedback [post]
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	// 1. 绑定请求数据（评分范围 1-5 由 binding 校验）
	var req dto.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		result.Fail(c, consts.CodeParamError)
		return
	}

	// 2. 调用服务层处理业务逻辑
	createResp, err := h.feedbackService.CreateFeedback(ctx, &req)
	if err != nil {
		if consts.IsNonServerError(utils.ExtractErrorCode(err)) {
			result.Fail(c, utils.ExtractErrorCode(err))
			return
		}

		logger.Error(ctx, "提交反馈服务内部错误",
			logger.Int64("user_id", req.UserID),
			logger.Int64("venue_id", req.VenueID),
			logger.ErrorField("error", err),
		)
		result.Fail(c, consts.CodeInternalError)
		return
	}

	// 3. 返回成功响应
	result.Created(c, createResp)
}

// ListVenueFeedback 场所反馈列表接口
// @Summary 获取场所反馈列表
// @Tags 反馈接口
// @Produce json
// @Param venueId path int true "场所ID"
// @Success 200 {object} dto.FeedbackListResponse
// @Router /api/feedback/{venueId} [get]
func (h *FeedbackHandler) ListVenueFeedback(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	venueID, err := strconv.ParseInt(c.Param("venueId"), 10, 64)
	if err != nil || venueID <= 0 {
		result.Fail(c, consts.CodeParamError)
		return
	}

	listResp, err := h.feedbackService.ListVenueFeedback(ctx, venueID)
	if err != nil {
		if consts.IsNonServerError(utils.ExtractErrorCode(err)) {
			result.Fail(c, utils.ExtractErrorCode(err))
			return
		}

		logger.Error(ctx, "获取场所反馈服务内部错误",
			logger.Int64("venue_id", venueID),
			logger.ErrorField("error", err),
		)
		result.Fail(c, consts.CodeInternalError)
		return
	}

	result.Success(c, listResp)
}
