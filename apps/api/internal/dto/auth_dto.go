package dto

// ==================== 认证服务 DTO ====================

// RegisterRequest 用户注册请求 DTO
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=64"`      // 用户名
	Email    string `json:"email" binding:"required,email"`            // 邮箱
	Password string `json:"password" binding:"required,min=8,max=64"`  // 密码

	AccessibilityPreferences []string `json:"accessibility_preferences"` // 无障碍偏好列表
	HighContrast             bool     `json:"high_contrast"`             // 高对比度模式
	ScreenReader             bool     `json:"screen_reader"`             // 读屏器支持
	KeyboardNavigation       bool     `json:"keyboard_navigation"`       // 键盘导航
}

// RegisterResponse 用户注册响应 DTO
type RegisterResponse struct {
	Message string    `json:"message"` // 结果消息
	User    *UserInfo `json:"user"`    // 用户信息
}

// LoginRequest 用户登录请求 DTO
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"` // 邮箱
	Password string `json:"password" binding:"required"`    // 密码
}

// LoginResponse 用户登录响应 DTO
type LoginResponse struct {
	Token string    `json:"token"` // JWT（1小时有效）
	User  *UserInfo `json:"user"`  // 用户信息
}

// UserInfo 对外用户信息（不含密码哈希）
type UserInfo struct {
	UserID                   int64    `json:"user_id"`                   // 用户ID
	Name                     string   `json:"name"`                      // 用户名
	Email                    string   `json:"email"`                     // 邮箱
	TotalPoints              int64    `json:"total_points"`              // 积分余额
	AccessibilityPreferences []string `json:"accessibility_preferences"` // 无障碍偏好列表
	HighContrast             bool     `json:"high_contrast"`             // 高对比度模式
	ScreenReader             bool     `json:"screen_reader"`             // 读屏器支持
	KeyboardNavigation       bool     `json:"keyboard_navigation"`       // 键盘导航
	City                     string   `json:"city"`                      // 城市
	Postal                   string   `json:"postal"`                    // 邮编
	CreatedAt                string   `json:"created_at"`                // 注册时间
}

// ProfileResponse 个人主页聚合响应 DTO
type ProfileResponse struct {
	User             *UserInfo          `json:"user"`             // 用户信息
	Friends          []*SearchUserItem  `json:"friends"`          // 好友列表
	StarredLocations []*StarredItem     `json:"starredLocations"` // 收藏场所
	SharedLocations  []*StarredItem     `json:"sharedLocations"`  // 被分享的收藏
	VisitHistory     []*VisitItem       `json:"visitHistory"`     // 到访记录
	RedemptionTiers  []*TierItem        `json:"redemptionTiers"`  // 兑换档位
}
