package dto

// ==================== 反馈服务 DTO ====================

// CreateFeedbackRequest 提交反馈请求 DTO
type CreateFeedbackRequest struct {
	UserID             int64  `json:"user_id" binding:"required"`                    // 用户ID
	VenueID            int64  `json:"venue_id" binding:"required"`                   // 场所ID
	Content            string `json:"content" binding:"required,max=2000"`           // 反馈内容
	AccessibilityScore int8   `json:"accessibility_score" binding:"required,min=1,max=5"` // 无障碍评分 1-5
}

// CreateFeedbackResponse 提交反馈响应 DTO
type CreateFeedbackResponse struct {
	Message       string        `json:"message"`        // 结果消息
	Feedback      *FeedbackItem `json:"feedback"`       // 反馈内容
	PointsAwarded int64         `json:"points_awarded"` // 本次加分
}

// FeedbackItem 反馈项
type FeedbackItem struct {
	FeedbackID         int64  `json:"feedback_id"`         // 反馈ID
	UserID             int64  `json:"user_id"`             // 用户ID
	UserName           string `json:"user_name,omitempty"` // 用户名
	VenueID            int64  `json:"venue_id"`            // 场所ID
	Content            string `json:"content"`             // 反馈内容
	AccessibilityScore int8   `json:"accessibility_score"` // 无障碍评分
	CreatedAt          string `json:"created_at"`          // 提交时间
}

// FeedbackListResponse 场所反馈列表响应 DTO
type FeedbackListResponse struct {
	Feedback []*FeedbackItem `json:"feedback"` // 反馈列表
}
