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

// VolunteerHandler 志愿者处理器
type VolunteerHandler struct {
	volunteerService service.VolunteerService
}

// NewVolunteerHandler 创建志愿者处理器
func NewVolunteerHandler(volunteerService service.VolunteerService) *VolunteerHandler {
	return &VolunteerHandler{
		volunteerService: volunteerService,
	}
}

// Apply 志愿者报名接口
// @Summary 提交志愿者报名
// @Tags 志愿者接口
// @Accept json
// @Produce json
// @Param request body dto.CreateVolunteerRequest true "报名请求"
// @Success 201 {object} dto.CreateVolunteerResponse
// @Router /api/volunteer [post]
func (h *VolunteerHandler) Apply(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	var req dto.CreateVolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		result.Fail(c, consts.CodeParamError)
		return
	}

	applyResp, err := h.volunteerService.Apply(ctx, &req)
	if err != nil {
		if consts.IsNonServerError(utils.ExtractErrorCode(err)) {
			// 同一联系方式重复报名
			result.Fail(c, utils.ExtractErrorCode(err))
			return
		}

		logger.Error(ctx, "志愿者报名服务内部错误",
			logger.ErrorField("error", err),
		)
		result.Fail(c, consts.CodeInternalError)
		return
	}

	result.Created(c, applyResp)
}

// ListVolunteers 志愿者列表接口（管理端）
// @Summary 获取全部志愿者
// @Tags 志愿者接口
// @Produce json
// @Success 200 {array} dto.VolunteerItem
// @Router /api/volunteer [get]
func (h *VolunteerHandler) ListVolunteers(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	volunteers, err := h.volunteerService.ListVolunteers(ctx)
	if err != nil {
		if consts.IsNonServerError(utils.ExtractErrorCode(err)) {
			result.Fail(c, utils.ExtractErrorCode(err))
			return
		}

		logger.Error(ctx, "获取志愿者列表服务内部错误",
			logger.ErrorField("error", err),
		)
		result.Fail(c, consts.CodeInternalError)
		return
	}

	result.Success(c, gin.H{"volunteers": volunteers})
}
