package model

import "time"

// User 用户表。
// 积分余额直接存在用户行上（total_points），由数据库侧条件更新保证不为负；
// 好友关系不在用户行上冗余存储，统一由 friend_relation 表承载。
type User struct {
	UserID       int64  `gorm:"column:user_id;primaryKey;autoIncrement;comment:用户id"`
	Name         string `gorm:"column:name;type:varchar(64);not null;index:idx_name;comment:用户名"`
	Email        string `gorm:"column:email;type:varchar(128);not null;uniqueIndex:uidx_email;comment:邮箱"`
	PasswordHash string `gorm:"column:password_hash;type:varchar(128);not null;comment:bcrypt密码哈希"`
	TotalPoints  int64  `gorm:"column:total_points;not null;default:0;comment:积分余额"`

	// 无障碍偏好
	AccessibilityPreferences StringList `gorm:"column:accessibility_preferences;type:json;comment:无障碍偏好列表"`
	HighContrast             bool       `gorm:"column:high_contrast;not null;default:false;comment:高对比度模式"`
	ScreenReader             bool       `gorm:"column:screen_reader;not null;default:false;comment:读屏器支持"`
	KeyboardNavigation       bool       `gorm:"column:keyboard_navigation;not null;default:false;comment:键盘导航"`

	// 注册时按 IP 补全，可为空
	City   string `gorm:"column:city;type:varchar(64);comment:城市"`
	Postal string `gorm:"column:postal;type:varchar(16);comment:邮编"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (User) TableName() string { return "users" }
