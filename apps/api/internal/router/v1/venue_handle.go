package v1

import (
	"BridgerServer/apps/api/internal/middleware"
	"BridgerServer/apps/api/internal/service"
	"BridgerServer/apps/api/internal/utils"
	"BridgerServer/consts"
	"BridgerServer/pkg/logger"
	"BridgerServer/pkg/result"
	"strconv"

	"github.com/gin-gonic/gin"
)

// VenueHandler 场所处理器
type VenueHandler struct {
	venueService service.VenueService
}

// NewVenueHandler 创建场所处理器
func NewVenueHandler(venueService service.VenueService) *VenueHandler {
	return &VenueHandler{
		venueService: venueService,
	}
}

// ListVenues 场所列表接口
// @Summary 获取全部场所
// @Tags 场所接口
// @Produce json
// @Success 200 {object} dto.VenueListResponse
// @Router /api/venues [get]
func (h *VenueHandler) ListVenues(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	listResp, err := h.venueService.ListVenues(ctx)
	if err != nil {
		if consts.IsNonServerError(utils.ExtractErrorCode(err)) {
			result.Fail(c, utils.ExtractErrorCode(err))
			return
		}

		logger.Error(ctx, "获取场所列表服务内部错误",
			logger.ErrorField("error", err),
		)
		result.Fail(c, consts.CodeInternalError)
		return
	}

	result.Success(c, listResp)
}

// GetVenue 场所详情接口
// @Summary 按ID获取场所
// @Tags 场所接口
// @Produce json
// @Param id path int true "场所ID"
// @Success 200 {object} dto.VenueItem
// @Router /api/venues/{id} [get]
func (h *VenueHandler) GetVenue(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	venueID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || venueID <= 0 {
		result.Fail(c, consts.CodeParamError)
		return
	}

	venue, err := h.venueService.GetVenue(ctx, venueID)
	if err != nil {
		if consts.IsNonServerError(utils.ExtractErrorCode(err)) {
			result.Fail(c, utils.ExtractErrorCode(err))
			return
		}

		logger.Error(ctx, "获取场所详情服务内部错误",
			logger.Int64("venue_id", venueID),
			logger.ErrorField("error", err),
		)
		result.Fail(c, consts.CodeInternalError)
		return
	}

	result.Success(c, gin.H{"venue": venue})
}

// UploadPhoto 场所照片上传接口
// @Summary 上传场所照片
// @Description multipart 表单上传，字段名 photo
// @Tags 场所接口
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "场所ID"
// @Param photo formData file true "照片文件"
// @Success 200 {object} dto.UploadPhotoResponse
// @Router /api/venues/{id}/photo [post]
func (h *VenueHandler) UploadPhoto(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	venueID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || venueID <= 0 {
		result.Fail(c, consts.CodeParamError)
		return
	}

	// 1. 取表单文件
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		result.Fail(c, consts.CodeParamError)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		result.Fail(c, consts.CodeParamError)
		return
	}
	defer file.Close()

	// 2. 调用服务层处理业务逻辑
	uploadResp, err := h.venueService.UploadPhoto(ctx, venueID, fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		if consts.IsNonServerError(utils.ExtractErrorCode(err)) {
			// 业务逻辑失败（场所不存在、文件过大/类型不支持）
			result.Fail(c, utils.ExtractErrorCode(err))
			return
		}

		logger.Error(ctx, "场所照片上传服务内部错误",
			logger.Int64("venue_id", venueID),
			logger.ErrorField("error", err),
		)
		result.Fail(c, consts.CodeInternalError)
		return
	}

	// 3. 返回成功响应
	result.Success(c, uploadResp)
}
