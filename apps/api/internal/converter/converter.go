package converter

import (
	"BridgerServer/apps/api/internal/dto"
	"BridgerServer/model"
	"time"
)

// 对外时间格式统一用 RFC3339
const timeLayout = time.RFC3339

// dateLayout 仅含日期的字段（到访日期）
const dateLayout = "2006-01-02"

// ==================== User 转换函数 ====================

// ModelToUserInfo 将 User Model 转换为对外 DTO
// 注意：不包含密码哈希
func ModelToUserInfo(user *model.User) *dto.UserInfo {
	if user == nil {
		return nil
	}
	return &dto.UserInfo{
		UserID:                   user.UserID,
		Name:                     user.Name,
		Email:                    user.Email,
		TotalPoints:              user.TotalPoints,
		AccessibilityPreferences: user.AccessibilityPreferences,
		HighContrast:             user.HighContrast,
		ScreenReader:             user.ScreenReader,
		KeyboardNavigation:       user.KeyboardNavigation,
		City:                     user.City,
		Postal:                   user.Postal,
		CreatedAt:                user.CreatedAt.Format(timeLayout),
	}
}

// ModelToSearchUserItem 将 User Model 转换为搜索结果项
func ModelToSearchUserItem(user *model.User) *dto.SearchUserItem {
	if user == nil {
		return nil
	}
	return &dto.SearchUserItem{
		UserID: user.UserID,
		Name:   user.Name,
		Email:  user.Email,
	}
}

// ModelListToSearchUserItemList 批量转换搜索结果项
func ModelListToSearchUserItemList(users []*model.User) []*dto.SearchUserItem {
	result := make([]*dto.SearchUserItem, 0, len(users))
	for _, user := range users {
		result = append(result, ModelToSearchUserItem(user))
	}
	return result
}

// ==================== Venue 转换函数 ====================

// ModelToVenueItem 将 Venue Model 转换为对外 DTO
func ModelToVenueItem(venue *model.Venue) *dto.VenueItem {
	if venue == nil {
		return nil
	}
	return &dto.VenueItem{
		VenueID:            venue.VenueID,
		Name:               venue.Name,
		Address:            venue.Address,
		AccessibilityScore: venue.AccessibilityScore,
		Type:               venue.Type,
		Description:        venue.Description,
		AccessibilityAvail: venue.AccessibilityAvail,
		Latitude:           venue.Latitude,
		Longitude:          venue.Longitude,
		PhotoURL:           venue.PhotoURL,
	}
}

// ModelListToVenueItemList 批量转换场所项
func ModelListToVenueItemList(venues []*model.Venue) []*dto.VenueItem {
	result := make([]*dto.VenueItem, 0, len(venues))
	for _, venue := range venues {
		result = append(result, ModelToVenueItem(venue))
	}
	return result
}

// ==================== Feedback 转换函数 ====================

// ModelToFeedbackItem 将 Feedback Model 转换为对外 DTO
func ModelToFeedbackItem(feedback *model.Feedback) *dto.FeedbackItem {
	if feedback == nil {
		return nil
	}
	item := &dto.FeedbackItem{
		FeedbackID:         feedback.FeedbackID,
		UserID:             feedback.UserID,
		VenueID:            feedback.VenueID,
		Content:            feedback.Content,
		AccessibilityScore: feedback.AccessibilityScore,
		CreatedAt:          feedback.CreatedAt.Format(timeLayout),
	}
	if feedback.User != nil {
		item.UserName = feedback.User.Name
	}
	return item
}

// ModelListToFeedbackItemList 批量转换反馈项
func ModelListToFeedbackItemList(feedbacks []*model.Feedback) []*dto.FeedbackItem {
	result := make([]*dto.FeedbackItem, 0, len(feedbacks))
	for _, feedback := range feedbacks {
		result = append(result, ModelToFeedbackItem(feedback))
	}
	return result
}

// ==================== StarredLocation 转换函数 ====================

// ModelToStarredItem 将 StarredLocation Model 转换为对外 DTO
func ModelToStarredItem(star *model.StarredLocation) *dto.StarredItem {
	if star == nil {
		return nil
	}
	return &dto.StarredItem{
		Venue:     ModelToVenueItem(star.Venue),
		StarredAt: star.StarredAt.Format(timeLayout),
		ShareWith: star.ShareWith,
	}
}

// ModelListToStarredItemList 批量转换收藏项
func ModelListToStarredItemList(stars []*model.StarredLocation) []*dto.StarredItem {
	result := make([]*dto.StarredItem, 0, len(stars))
	for _, star := range stars {
		result = append(result, ModelToStarredItem(star))
	}
	return result
}

// ==================== VisitHistory 转换函数 ====================

// ModelToVisitItem 将 VisitHistory Model 转换为对外 DTO
func ModelToVisitItem(visit *model.VisitHistory) *dto.VisitItem {
	if visit == nil {
		return nil
	}
	return &dto.VisitItem{
		VisitID:   visit.VisitID,
		Venue:     ModelToVenueItem(visit.Venue),
		VisitDate: visit.VisitDate.Format(dateLayout),
		Notes:     visit.Notes,
	}
}

// ModelListToVisitItemList 批量转换到访记录项
func ModelListToVisitItemList(visits []*model.VisitHistory) []*dto.VisitItem {
	result := make([]*dto.VisitItem, 0, len(visits))
	for _, visit := range visits {
		result = append(result, ModelToVisitItem(visit))
	}
	return result
}

// ==================== RedemptionTier 转换函数 ====================

// ModelToTierItem 将 RedemptionTier Model 转换为对外 DTO
func ModelToTierItem(tier *model.RedemptionTier) *dto.TierItem {
	if tier == nil {
		return nil
	}
	return &dto.TierItem{
		TierID:            tier.TierID,
		PointsRequired:    tier.PointsRequired,
		RewardDescription: tier.RewardDescription,
	}
}

// ModelListToTierItemList 批量转换兑换档位项
func ModelListToTierItemList(tiers []*model.RedemptionTier) []*dto.TierItem {
	result := make([]*dto.TierItem, 0, len(tiers))
	for _, tier := range tiers {
		result = append(result, ModelToTierItem(tier))
	}
	return result
}

// ModelListToHistoryItemList 批量转换兑换流水项
func ModelListToHistoryItemList(records []*model.RedemptionHistory) []*dto.RedemptionHistoryItem {
	result := make([]*dto.RedemptionHistoryItem, 0, len(records))
	for _, record := range records {
		result = append(result, &dto.RedemptionHistoryItem{
			OrderNo:        record.OrderNo,
			TierID:         record.TierID,
			PointsRedeemed: record.PointsRedeemed,
			CreatedAt:      record.CreatedAt.Format(timeLayout),
		})
	}
	return result
}

// ==================== Volunteer 转换函数 ====================

// ModelToVolunteerItem 将 Volunteer Model 转换为对外 DTO
func ModelToVolunteerItem(volunteer *model.Volunteer) *dto.VolunteerItem {
	if volunteer == nil {
		return nil
	}
	return &dto.VolunteerItem{
		VolunteerID:     volunteer.VolunteerID,
		Name:            volunteer.Name,
		ContactNumber:   volunteer.ContactNumber,
		Email:           volunteer.Email,
		AreasOfInterest: volunteer.Interests,
		CreatedAt:       volunteer.CreatedAt.Format(timeLayout),
	}
}

// ModelListToVolunteerItemList 批量转换志愿者项
func ModelListToVolunteerItemList(volunteers []*model.Volunteer) []*dto.VolunteerItem {
	result := make([]*dto.VolunteerItem, 0, len(volunteers))
	for _, volunteer := range volunteers {
		result = append(result, ModelToVolunteerItem(volunteer))
	}
	return result
}

// ==================== LocationSubmission 转换函数 ====================

// ModelToSubmissionItem 将 LocationSubmission Model 转换为对外 DTO
func ModelToSubmissionItem(submission *model.LocationSubmission) *dto.SubmissionItem {
	if submission == nil {
		return nil
	}
	return &dto.SubmissionItem{
		SubmissionID:        submission.SubmissionID,
		LocationName:        submission.Name,
		LocationAddress:     submission.Address,
		LocationDescription: submission.Description,
		LocationType:        submission.Type,
		AccessibilityScore:  submission.AccessibilityScore,
		AccessibilityAvail:  submission.AccessibilityAvail,
		CreatedAt:           submission.CreatedAt.Format(timeLayout),
	}
}

// ModelListToSubmissionItemList 批量转换场所提交项
func ModelListToSubmissionItemList(submissions []*model.LocationSubmission) []*dto.SubmissionItem {
	result := make([]*dto.SubmissionItem, 0, len(submissions))
	for _, submission := range submissions {
		result = append(result, ModelToSubmissionItem(submission))
	}
	return result
}
