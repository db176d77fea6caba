package dto

// ==================== 场所提交服务 DTO ====================

// CreateSubmissionRequest 场所提交请求 DTO
type CreateSubmissionRequest struct {
	LocationName        string   `json:"location_name" binding:"required,max=128"`    // 场所名称
	LocationAddress     string   `json:"location_address" binding:"required,max=256"` // 地址
	LocationDescription string   `json:"location_description" binding:"max=2000"`     // 描述
	LocationType        string   `json:"location_type" binding:"required"`            // 场所类型
	AccessibilityScore  float64  `json:"accessibility_score" binding:"min=0,max=5"`   // 无障碍评分
	AccessibilityAvail  []string `json:"accessibility_available"`                     // 可用无障碍设施
	Latitude            float64  `json:"latitude"`                                    // 纬度
	Longitude           float64  `json:"longitude"`                                   // 经度
}

// CreateSubmissionResponse 场所提交响应 DTO
type CreateSubmissionResponse struct {
	Message  string          `json:"message"`  // 结果消息
	Location *SubmissionItem `json:"location"` // 提交信息
}

// SubmissionItem 场所提交项
type SubmissionItem struct {
	SubmissionID        int64    `json:"location_submission_id"`  // 提交ID
	LocationName        string   `json:"location_name"`           // 场所名称
	LocationAddress     string   `json:"location_address"`        // 地址
	LocationDescription string   `json:"location_description"`    // 描述
	LocationType        string   `json:"location_type"`           // 场所类型
	AccessibilityScore  float64  `json:"accessibility_score"`     // 无障碍评分
	AccessibilityAvail  []string `json:"accessibility_available"` // 可用无障碍设施
	CreatedAt           string   `json:"created_at"`              // 提交时间
}

// AcceptSubmissionResponse 审核通过响应 DTO
type AcceptSubmissionResponse struct {
	Message string     `json:"message"` // 结果消息
	Venue   *VenueItem `json:"venue"`   // 新建的场所
}
