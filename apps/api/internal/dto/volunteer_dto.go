package dto

// ==================== 志愿者服务 DTO ====================

// CreateVolunteerRequest 志愿者报名请求 DTO
type CreateVolunteerRequest struct {
	VolunteerName   string `json:"volunteerName" binding:"required,min=2,max=64"` // 姓名
	ContactNumber   string `json:"contact_number" binding:"required,max=32"`      // 联系电话
	Email           string `json:"email" binding:"required,email"`                // 邮箱
	AreasOfInterest string `json:"areas_of_interest" binding:"max=256"`           // 志愿方向
}

// CreateVolunteerResponse 志愿者报名响应 DTO
type CreateVolunteerResponse struct {
	Message   string         `json:"message"`   // 结果消息
	Volunteer *VolunteerItem `json:"volunteer"` // 报名信息
}

// VolunteerItem 志愿者项
type VolunteerItem struct {
	VolunteerID     int64  `json:"volunteer_id"`      // 志愿者ID
	Name            string `json:"name"`              // 姓名
	ContactNumber   string `json:"contact_number"`    // 联系电话
	Email           string `json:"email"`             // 邮箱
	AreasOfInterest string `json:"areas_of_interest"` // 志愿方向
	CreatedAt       string `json:"created_at"`        // 报名时间
}
