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

// StarHandler 收藏处理器
type StarHandler struct {
	starService service.StarService
}

// NewStarHandler 创建收藏处理器
func NewStarHandler(starService service.StarService) *StarHandler {
	return &StarHandler{
		starService: starService,
	}
}

// StarVenue 收藏场所接口
// @Summary 收藏场所
// @Description 可附带分享对象列表，重复收藏时覆盖分享列表
// @Tags 收藏接口
// @Accept json
// @Produce json
// @Param request body dto.StarVenueRequest true "收藏请求"
// @Success 201 {object} result.MessageBody
// @Router /api/starred [post]
func (h *StarHandler) StarVenue(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		result.Fail(c, consts.CodeUnauthorized)
		return
	}

	var req dto.StarVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		result.Fail(c, consts.CodeParamError)
		return
	}

	if err := h.starService.StarVenue(ctx, userID, &req); err != nil {
		if consts.IsNonServerError(utils.ExtractErrorCode(err)) {
			result.Fail(c, utils.ExtractErrorCode(err))
			return
		}

		logger.Error(ctx, "收藏场所服务内部错误",
			logger.Int64("user_id", userID),
			logger.Int64("venue_id", req.VenueID),
			logger.ErrorField("error", err),
		)
		result.Fail(c, consts.CodeInternalError)
		return
	}

	result.Created(c, result.MessageBody{Message: "Venue starred successfully"})
}

// ListStarred 收藏列表接口
// @Summary 获取当前用户收藏列表
// @Tags 收藏接口
// @Produce json
// @Success 200 {object} dto.StarredListResponse
// @Router /api/starred [get]
func (h *StarHandler) ListStarred(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		result.Fail(c, consts.CodeUnauthorized)
		return
	}

	listResp, err := h.starService.ListStarred(ctx, userID)
	if err != nil {
		if consts.IsNonServerError(utils.ExtractErrorCode(err)) {
			result.Fail(c, utils.ExtractErrorCode(err))
			return
		}

		logger.Error(ctx, "获取收藏列表服务内部错误",
			logger.Int64("user_id", userID),
			logger.ErrorField("error", err),
		)
		result.Fail(c, consts.CodeInternalError)
		return
	}

	result.Success(c, listResp)
}
