package model

import "time"

// Volunteer 志愿者报名表。
// 约束：uidx_contact_email 防止同一联系方式重复报名。
type Volunteer struct {
	VolunteerID   int64     `gorm:"column:volunteer_id;primaryKey;autoIncrement;comment:志愿者id"`
	Name          string    `gorm:"column:name;type:varchar(64);not null;comment:姓名"`
	ContactNumber string    `gorm:"column:contact_number;type:varchar(32);not null;uniqueIndex:uidx_contact_email;comment:联系电话"`
	Email         string    `gorm:"column:email;type:varchar(128);not null;uniqueIndex:uidx_contact_email;comment:邮箱"`
	Interests     string    `gorm:"column:interests;type:varchar(256);comment:志愿方向"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Volunteer) TableName() string { return "volunteer" }
