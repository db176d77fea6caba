package dto

// ==================== 到访记录服务 DTO ====================

// CreateVisitRequest 记录到访请求 DTO
type CreateVisitRequest struct {
	VenueID   int64  `json:"venue_id" binding:"required"`   // 场所ID
	VisitDate string `json:"visit_date" binding:"required"` // 到访日期(YYYY-MM-DD)
	Notes     string `json:"notes" binding:"max=2000"`      // 备注
}

// CreateVisitResponse 记录到访响应 DTO
type CreateVisitResponse struct {
	Success bool       `json:"success"` // 是否成功
	Message string     `json:"message"` // 结果消息
	Visit   *VisitItem `json:"visit"`   // 到访记录
}

// VisitItem 到访记录项（含场所信息）
type VisitItem struct {
	VisitID   int64      `json:"visit_id"`   // 记录ID
	Venue     *VenueItem `json:"venue"`      // 场所信息
	VisitDate string     `json:"visit_date"` // 到访日期
	Notes     string     `json:"notes"`      // 备注
}
