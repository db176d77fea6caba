package model

import "time"

// VisitHistory 用户到访记录表。
type VisitHistory struct {
	VisitID   int64     `gorm:"column:visit_id;primaryKey;autoIncrement;comment:记录id"`
	UserID    int64     `gorm:"column:user_id;not null;index:idx_user_visit_date;comment:用户id"`
	VenueID   int64     `gorm:"column:venue_id;not null;index;comment:场所id"`
	VisitDate time.Time `gorm:"column:visit_date;not null;index:idx_user_visit_date;comment:到访日期"`
	Notes     string    `gorm:"column:notes;type:text;comment:备注"`

	Venue *Venue `gorm:"foreignKey:VenueID;references:VenueID"`
}

func (VisitHistory) TableName() string { return "user_visit_history" }
