package model

// 场所类型
const (
	VenueTypeFoodServices   = "foodservices"   // 餐饮
	VenueTypeArtsAndCulture = "artsandculture" // 艺术文化
	VenueTypeRetail         = "retail"         // 零售
	VenueTypeGrocery        = "grocery"        // 生鲜超市
	VenueTypeNature         = "nature"         // 自然
	VenueTypeTourism        = "tourism"        // 旅游
	VenueTypeRecreation     = "recreation"     // 休闲
)

// ValidVenueType 判断场所类型是否合法
func ValidVenueType(t string) bool {
	switch t {
	case VenueTypeFoodServices, VenueTypeArtsAndCulture, VenueTypeRetail,
		VenueTypeGrocery, VenueTypeNature, VenueTypeTourism, VenueTypeRecreation:
		return true
	}
	return false
}

// Venue 无障碍场所表。
type Venue struct {
	VenueID            int64      `gorm:"column:venue_id;primaryKey;autoIncrement;comment:场所id"`
	Name               string     `gorm:"column:name;type:varchar(128);not null;comment:场所名称"`
	Address            string     `gorm:"column:address;type:varchar(256);not null;comment:地址"`
	AccessibilityScore float64    `gorm:"column:accessibility_score;not null;default:0;comment:无障碍评分"`
	Type               string     `gorm:"column:type;type:varchar(32);not null;index:idx_type;comment:场所类型"`
	Description        string     `gorm:"column:description;type:text;comment:描述"`
	AccessibilityAvail StringList `gorm:"column:accessibility_available;type:json;comment:可用无障碍设施列表"`
	Latitude           float64    `gorm:"column:latitude;comment:纬度"`
	Longitude          float64    `gorm:"column:longitude;comment:经度"`
	PhotoURL           string     `gorm:"column:photo_url;type:varchar(512);comment:照片地址"`
}

func (Venue) TableName() string { return "venue" }
