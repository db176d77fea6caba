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

// AuthHandler 认证与用户处理器
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register 用户注册接口
// @Summary 用户注册
// @Description 注册新用户，按客户端 IP 尽力补全城市/邮编
// @Tags 认证接口
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "注册请求"
// @Success 201 {object} dto.RegisterResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	// 1. 绑定请求数据
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// 参数错误由客户端输入导致,属于正常业务流程,不记录日志
		result.Fail(c, consts.CodeParamError)
		return
	}

	// 2. 调用服务层处理业务逻辑（依赖注入）
	registerResp, err := h.authService.Register(ctx, &req, middleware.ClientIPFromGinContext(c))
	if err != nil {
		// 检查是否为业务错误
		if consts.IsNonServerError(utils.ExtractErrorCode(err)) {
			// 业务逻辑失败（如邮箱已注册）
			result.Fail(c, utils.ExtractErrorCode(err))
			return
		}

		// 其他内部错误
		logger.Error(ctx, "用户注册服务内部错误",
			logger.ErrorField("error", err),
		)
		result.Fail(c, consts.CodeInternalError)
		return
	}

	// 3. 返回成功响应
	result.Created(c, registerResp)
}

// Login 用户登录接口
// @Summary 用户登录
// @Description 邮箱+密码登录，返回 JWT
// @Tags 认证接口
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "登录请求"
// @Success 200 {object} dto.LoginResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	// 1. 绑定请求数据
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		result.Fail(c, consts.CodeParamError)
		return
	}

	// 2. 调用服务层处理业务逻辑
	loginResp, err := h.authService.Login(ctx, &req)
	if err != nil {
		if consts.IsNonServerError(utils.ExtractErrorCode(err)) {
			// 账号或密码错误
			result.Fail(c, utils.ExtractErrorCode(err))
			return
		}

		logger.Error(ctx, "用户登录服务内部错误",
			logger.ErrorField("error", err),
		)
		result.Fail(c, consts.CodeInternalError)
		return
	}

	// 3. 返回成功响应
	result.Success(c, loginResp)
}

// Me 个人主页聚合接口
// @Summary 获取个人主页
// @Description 一次返回用户信息、好友、收藏、被分享收藏、到访记录、兑换档位
// @Tags 认证接口
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Router /api/users/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		result.Fail(c, consts.CodeUnauthorized)
		return
	}

	profileResp, err := h.authService.GetProfile(ctx, userID)
	if err != nil {
		if consts.IsNonServerError(utils.ExtractErrorCode(err)) {
			result.Fail(c, utils.ExtractErrorCode(err))
			return
		}

		logger.Error(ctx, "获取个人主页服务内部错误",
			logger.Int64("user_id", userID),
			logger.ErrorField("error", err),
		)
		result.Fail(c, consts.CodeInternalError)
		return
	}

	result.Success(c, profileResp)
}

// ListUsers 用户列表接口（管理端）
// @Summary 获取全部用户
// @Tags 认证接口
// @Produce json
// @Success 200 {array} dto.UserInfo
// @Router /api/admin/users [get]
func (h *AuthHandler) ListUsers(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	users, err := h.authService.ListUsers(ctx)
	if err != nil {
		if consts.IsNonServerError(utils.ExtractErrorCode(err)) {
			result.Fail(c, utils.ExtractErrorCode(err))
			return
		}

		logger.Error(ctx, "获取用户列表服务内部错误",
			logger.ErrorField("error", err),
		)
		result.Fail(c, consts.CodeInternalError)
		return
	}

	result.Success(c, gin.H{"users": users})
}
