package model

import "time"

// Feedback 场所反馈表。
// accessibility_score 合法范围 0~5，服务层校验。
type Feedback struct {
	FeedbackID         int64     `gorm:"column:feedback_id;primaryKey;autoIncrement;comment:反馈id"`
	UserID             int64     `gorm:"column:user_id;not null;index;comment:用户id"`
	VenueID            int64     `gorm:"column:venue_id;not null;index:idx_venue_created;comment:场所id"`
	Content            string    `gorm:"column:content;type:text;not null;comment:反馈内容"`
	AccessibilityScore int8      `gorm:"column:accessibility_score;not null;comment:无障碍评分 0-5"`
	CreatedAt          time.Time `gorm:"column:created_at;index:idx_venue_created;autoCreateTime"`

	// 关联的用户（查询反馈列表时带出展示名）
	User *User `gorm:"foreignKey:UserID;references:UserID"`
}

func (Feedback) TableName() string { return "feedback" }
