package dto

// ==================== 场所服务 DTO ====================

// VenueItem 场所项
type VenueItem struct {
	VenueID            int64    `json:"venue_id"`                // 场所ID
	Name               string   `json:"name"`                    // 场所名称
	Address            string   `json:"address"`                 // 地址
	AccessibilityScore float64  `json:"accessibility_score"`     // 无障碍评分
	Type               string   `json:"type"`                    // 场所类型
	Description        string   `json:"description"`             // 描述
	AccessibilityAvail []string `json:"accessibility_available"` // 可用无障碍设施
	Latitude           float64  `json:"latitude"`                // 纬度
	Longitude          float64  `json:"longitude"`               // 经度
	PhotoURL           string   `json:"photo_url,omitempty"`     // 照片地址
}

// VenueListResponse 场所列表响应 DTO
type VenueListResponse struct {
	Venues []*VenueItem `json:"venues"` // 场所列表
}

// UploadPhotoResponse 场所照片上传响应 DTO
type UploadPhotoResponse struct {
	Message  string `json:"message"`   // 结果消息
	PhotoURL string `json:"photo_url"` // 照片访问地址
}
