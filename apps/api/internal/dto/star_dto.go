package dto

// ==================== 收藏服务 DTO ====================

// StarVenueRequest 收藏场所请求 DTO
type StarVenueRequest struct {
	VenueID   int64   `json:"venue_id" binding:"required"` // 场所ID
	ShareWith []int64 `json:"share_with"`                  // 分享对象用户ID列表
}

// StarVenueResponse 收藏场所响应 DTO
type StarVenueResponse struct {
	Message string `json:"message"` // 结果消息
}

// StarredItem 收藏项（含场所信息）
type StarredItem struct {
	Venue     *VenueItem `json:"venue"`      // 场所信息
	StarredAt string     `json:"starred_at"` // 收藏时间
	ShareWith []int64    `json:"share_with"` // 分享对象用户ID列表
}

// StarredListResponse 收藏列表响应 DTO
type StarredListResponse struct {
	StarredLocations []*StarredItem `json:"starredLocations"` // 收藏列表
}
