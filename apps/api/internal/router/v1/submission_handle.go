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

// SubmissionHandler 场所提交处理器
type SubmissionHandler struct {
	submissionService service.SubmissionService
}

// NewSubmissionHandler 创建场所提交处理器
func NewSubmissionHandler(submissionService service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
	}
}

// Submit 场所提交接口
// @Summary 提交新场所（待审核）
// @Tags 场所提交接口
// @Accept json
// @Produce json
// @Param request body dto.CreateSubmissionRequest true "提交请求"
// @Success 201 {object} dto.CreateSubmissionResponse
// @Router /api/locationSubmission [post]
func (h *SubmissionHandler) Submit(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		result.Fail(c, consts.CodeUnauthorized)
		return
	}

	var req dto.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		result.Fail(c, consts.CodeParamError)
		return
	}

	submitResp, err := h.submissionService.Submit(ctx, userID, &req)
	if err != nil {
		if consts.IsNonServerError(utils.ExtractErrorCode(err)) {
			// 场所类型非法
			result.Fail(c, utils.ExtractErrorCode(err))
			return
		}

		logger.Error(ctx, "场所提交服务内部错误",
			logger.Int64("user_id", userID),
			logger.ErrorField("error", err),
		)
		result.Fail(c, consts.CodeInternalError)
		return
	}

	result.Created(c, submitResp)
}

// ListSubmissions 场所提交列表接口（管理端）
// @Summary 获取全部待审核提交
// @Tags 场所提交接口
// @Produce json
// @Success 200 {array} dto.SubmissionItem
// @Router /api/locationSubmission [get]
func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	submissions, err := h.submissionService.ListSubmissions(ctx)
	if err != nil {
		if consts.IsNonServerError(utils.ExtractErrorCode(err)) {
			result.Fail(c, utils.ExtractErrorCode(err))
			return
		}

		logger.Error(ctx, "获取场所提交列表服务内部错误",
			logger.ErrorField("error", err),
		)
		result.Fail(c, consts.CodeInternalError)
		return
	}

	result.Success(c, gin.H{"locationSubmissions": submissions})
}

// Accept 审核通过接口（管理端）
// @Summary 审核通过：提交转为正式场所
// @Tags 场所提交接口
// @Produce json
// @Param id path int true "提交ID"
// @Success 201 {object} dto.AcceptSubmissionResponse
// @Router /api/locationSubmission/accept/{id} [post]
func (h *SubmissionHandler) Accept(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	submissionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || submissionID <= 0 {
		result.Fail(c, consts.CodeParamError)
		return
	}

	acceptResp, err := h.submissionService.Accept(ctx, submissionID)
	if err != nil {
		if consts.IsNonServerError(utils.ExtractErrorCode(err)) {
			// 提交不存在或已被其他管理员处理
			result.Fail(c, utils.ExtractErrorCode(err))
			return
		}

		logger.Error(ctx, "场所提交审核服务内部错误",
			logger.Int64("submission_id", submissionID),
			logger.ErrorField("error", err),
		)
		result.Fail(c, consts.CodeInternalError)
		return
	}

	result.Created(c, acceptResp)
}

// Delete 拒绝提交接口（管理端）
// @Summary 拒绝（删除）提交
// @Tags 场所提交接口
// @Produce json
// @Param id path int true "提交ID"
// @Success 200 {object} result.MessageBody
// @Router /api/locationSubmission/{id} [delete]
func (h *SubmissionHandler) Delete(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	submissionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || submissionID <= 0 {
		result.Fail(c, consts.CodeParamError)
		return
	}

	if err := h.submissionService.Delete(ctx, submissionID); err != nil {
		if consts.IsNonServerError(utils.ExtractErrorCode(err)) {
			result.Fail(c, utils.ExtractErrorCode(err))
			return
		}

		logger.Error(ctx, "删除场所提交服务内部错误",
			logger.Int64("submission_id", submissionID),
			logger.ErrorField("error", err),
		)
		result.Fail(c, consts.CodeInternalError)
		return
	}

	result.SuccessWithMessage(c, "Location submission deleted successfully")
}
