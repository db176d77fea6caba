package model

import "time"

// LocationSubmission 场所提交表（待管理员审核）。
// 审核通过后整行搬入 venue 表并删除本记录，两步在同一事务内完成。
type LocationSubmission struct {
	SubmissionID       int64      `gorm:"column:submission_id;primaryKey;autoIncrement;comment:提交id"`
	Name               string     `gorm:"column:name;type:varchar(128);not null;comment:场所名称"`
	Address            string     `gorm:"column:address;type:varchar(256);not null;comment:地址"`
	AccessibilityScore float64    `gorm:"column:accessibility_score;not null;default:0;comment:无障碍评分"`
	Type               string     `gorm:"column:type;type:varchar(32);not null;comment:场所类型"`
	Description        string     `gorm:"column:description;type:text;comment:描述"`
	AccessibilityAvail StringList `gorm:"column:accessibility_available;type:json;comment:可用无障碍设施列表"`
	Latitude           float64    `gorm:"column:latitude;comment:纬度"`
	Longitude          float64    `gorm:"column:longitude;comment:经度"`
	SubmittedBy        int64      `gorm:"column:submitted_by;index;comment:提交人用户id（0 表示匿名）"`
	CreatedAt          time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (LocationSubmission) TableName() string { return "location_submission" }
