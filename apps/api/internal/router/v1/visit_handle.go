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

// VisitHandler 到访记录处理器
type VisitHandler struct {
	visitService service.VisitService
}

// NewVisitHandler 创建到访记录处理器
func NewVisitHandler(visitService service.VisitService) *VisitHandler {
	return &VisitHandler{
		visitService: visitService,
	}
}

// RecordVisit 记录到访接口
// @Summary 记录一次场所到访
// @Tags 到访接口
// @Accept json
// @Produce json
// @Param request body dto.CreateVisitRequest true "到访请求"
// @Success 201 {object} dto.CreateVisitResponse
// @Router /api/user-visit [post]
func (h *VisitHandler) RecordVisit(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		result.Fail(c, consts.CodeUnauthorized)
		return
	}

	var req dto.CreateVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		result.Fail(c, consts.CodeParamError)
		return
	}

	visitResp, err := h.visitService.RecordVisit(ctx, userID, &req)
	if err != nil {
		if consts.IsNonServerError(utils.ExtractErrorCode(err)) {
			// 日期格式非法、场所不存在
			result.Fail(c, utils.ExtractErrorCode(err))
			return
		}

		logger.Error(ctx, "记录到访服务内部错误",
			logger.Int64("user_id", userID),
			logger.Int64("venue_id", req.VenueID),
			logger.ErrorField("error", err),
		)
		result.Fail(c, consts.CodeInternalError)
		return
	}

	result.Created(c, visitResp)
}
