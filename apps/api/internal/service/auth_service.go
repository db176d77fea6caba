package service

import (
	"BridgerServer/apps/api/internal/converter"
	"BridgerServer/apps/api/internal/dto"
	"BridgerServer/apps/api/internal/geo"
	"BridgerServer/apps/api/internal/repository"
	"BridgerServer/apps/api/internal/utils"
	"BridgerServer/config"
	"BridgerServer/consts"
	"BridgerServer/model"
	"BridgerServer/pkg/errs"
	"BridgerServer/pkg/logger"
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// authServiceImpl 认证与用户服务实现
type authServiceImpl struct {
	jwtCfg     config.JWTConfig
	userRepo   repository.IUserRepository
	friendRepo repository.IFriendRepository
	starRepo   repository.IStarRepository
	visitRepo  repository.IVisitRepository
	rewardRepo repository.IRewardRepository
	geoClient  *geo.Client
}

// NewAuthService 创建认证服务实例
// geoClient 可为 nil（IP 定位能力关闭时）
func NewAuthService(
	jwtCfg config.JWTConfig,
	userRepo repository.IUserRepository,
	friendRepo repository.IFriendRepository,
	starRepo repository.IStarRepository,
	visitRepo repository.IVisitRepository,
	rewardRepo repository.IRewardRepository,
	geoClient *geo.Client,
) AuthService {
	return &authServiceImpl{
		jwtCfg:     jwtCfg,
		userRepo:   userRepo,
		friendRepo: friendRepo,
		starRepo:   starRepo,
		visitRepo:  visitRepo,
		rewardRepo: rewardRepo,
		geoClient:  geoClient,
	}
}

// Register 用户注册
// 业务流程：
//  1. 检查邮箱是否已注册
//  2. bcrypt 加密密码
//  3. 按客户端 IP 查询城市/邮编（尽力而为，失败不阻断注册）
//  4. 创建用户
//
// 错误码映射：
//   - CodeEmailAlreadyUsed: 邮箱已被注册
//   - CodeInternalError: 系统内部错误
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest, clientIP string) (*dto.RegisterResponse, error) {
	logger.Info(ctx, "用户注册请求",
		logger.String("name", req.Name),
		logger.String("email", utils.MaskEmail(req.Email)),
		logger.String("client_ip", clientIP),
	)

	// 1. 检查邮箱占用
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}
	if exists {
		return nil, errs.New(consts.CodeEmailAlreadyUsed)
	}

	// 2. 密码加密
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error(ctx, "密码加密失败", logger.ErrorField("error", err))
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}

	// 3. IP 定位（失败降级为空）
	var city, postal string
	if s.geoClient != nil && clientIP != "" {
		if loc, lookupErr := s.geoClient.Lookup(ctx, clientIP); lookupErr == nil && loc != nil {
			city, postal = loc.City, loc.Postal
		}
	}

	// 4. 创建用户
	user := &model.User{
		Name:                     req.Name,
		Email:                    req.Email,
		PasswordHash:             string(hash),
		AccessibilityPreferences: req.AccessibilityPreferences,
		HighContrast:             req.HighContrast,
		ScreenReader:             req.ScreenReader,
		KeyboardNavigation:       req.KeyboardNavigation,
		City:                     city,
		Postal:                   postal,
	}
	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		// 并发注册同一邮箱时由唯一键兜底
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, errs.New(consts.CodeEmailAlreadyUsed)
		}
		logger.Error(ctx, "创建用户失败",
			logger.String("email", utils.MaskEmail(req.Email)),
			logger.ErrorField("error", err),
		)
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}

	logger.Info(ctx, "用户注册成功",
		logger.Int64("user_id", created.UserID),
		logger.String("email", utils.MaskEmail(created.Email)),
	)

	return &dto.RegisterResponse{
		Message: "User registered successfully!",
		User:    converter.ModelToUserInfo(created),
	}, nil
}

// Login 用户登录
// 业务流程：
//  1. 按邮箱查询用户
//  2. bcrypt 校验密码
//  3. 签发 JWT
//
// 错误码映射：
//   - CodePasswordError: 邮箱不存在或密码错误（对外不区分，避免枚举邮箱）
//   - CodeInternalError: 系统内部错误
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	logger.Info(ctx, "用户登录请求",
		logger.String("email", utils.MaskEmail(req.Email)),
		logger.String("password", utils.MaskPassword(req.Password)),
	)

	// 1. 查询用户
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}
	if user == nil {
		return nil, errs.New(consts.CodePasswordError)
	}

	// 2. 校验密码
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errs.New(consts.CodePasswordError)
	}

	// 3. 签发 JWT
	token, err := utils.GenerateToken(s.jwtCfg, user.UserID)
	if err != nil {
		logger.Error(ctx, "签发Token失败",
			logger.Int64("user_id", user.UserID),
			logger.ErrorField("error", err),
		)
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}

	logger.Info(ctx, "用户登录成功", logger.Int64("user_id", user.UserID))

	return &dto.LoginResponse{
		Token: token,
		User:  converter.ModelToUserInfo(user),
	}, nil
}

// GetProfile 获取个人主页聚合数据
// 一次请求聚合：用户信息、好友列表、收藏、被分享收藏、到访记录、兑换档位
// 错误码映射：
//   - CodeUserNotFound: 用户不存在
//   - CodeInternalError: 系统内部错误
func (s *authServiceImpl) GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	// 1. 用户信息
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}
	if user == nil {
		return nil, errs.New(consts.CodeUserNotFound)
	}

	// 2. 好友列表（关系表取ID，再逐个走用户缓存）
	friendIDs, err := s.friendRepo.GetFriendIDs(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}
	friends := make([]*dto.SearchUserItem, 0, len(friendIDs))
	for _, friendID := range friendIDs {
		friend, getErr := s.userRepo.GetByID(ctx, friendID)
		if getErr != nil {
			return nil, errs.Wrap(consts.CodeInternalError, getErr)
		}
		if friend == nil {
			// 好友账号已注销，列表里跳过
			continue
		}
		friends = append(friends, converter.ModelToSearchUserItem(friend))
	}

	// 3. 收藏与被分享的收藏
	starred, err := s.starRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}
	shared, err := s.starRepo.ListSharedWith(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}

	// 4. 到访记录
	visits, err := s.visitRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}

	// 5. 兑换档位
	tiers, err := s.rewardRepo.ListTiers(ctx)
	if err != nil {
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}

	return &dto.ProfileResponse{
		User:             converter.ModelToUserInfo(user),
		Friends:          friends,
		StarredLocations: converter.ModelListToStarredItemList(starred),
		SharedLocations:  converter.ModelListToStarredItemList(shared),
		VisitHistory:     converter.ModelListToVisitItemList(visits),
		RedemptionTiers:  converter.ModelListToTierItemList(tiers),
	}, nil
}

// ListUsers 获取全部用户（管理端）
func (s *authServiceImpl) ListUsers(ctx context.Context) ([]*dto.UserInfo, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		logger.Error(ctx, "查询用户列表失败", logger.ErrorField("error", err))
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}

	result := make([]*dto.UserInfo, 0, len(users))
	for _, user := range users {
		result = append(result, converter.ModelToUserInfo(user))
	}
	return result, nil
}
