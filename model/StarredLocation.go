package model

import "time"

// StarredLocation 收藏场所表（复合主键 user_id + venue_id）。
// share_with 存好友用户 ID 列表，被分享者在个人主页能看到这条收藏。
type StarredLocation struct {
	UserID    int64     `gorm:"column:user_id;primaryKey;comment:用户id"`
	VenueID   int64     `gorm:"column:venue_id;primaryKey;comment:场所id"`
	StarredAt time.Time `gorm:"column:starred_at;autoCreateTime"`
	ShareWith Int64List `gorm:"column:share_with;type:json;comment:分享对象用户id列表"`

	Venue *Venue `gorm:"foreignKey:VenueID;references:VenueID"`
}

func (StarredLocation) TableName() string { return "starred_location" }
