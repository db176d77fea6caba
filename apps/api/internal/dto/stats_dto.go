package dto

// ==================== 平台统计 DTO ====================

// StatsResponse 平台统计响应 DTO
type StatsResponse struct {
	TotalUsers   int64         `json:"totalUsers"`   // 用户总数
	CreationData *CreationData `json:"creationData"` // 注册趋势图数据
}

// CreationData 注册趋势图数据（前端图表用的标签/数值对）
type CreationData struct {
	Labels []string `json:"labels"` // 月份标签(YYYY-MM)
	Counts []int64  `json:"counts"` // 对应月份注册数
}
