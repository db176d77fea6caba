package repository

import (
	"BridgerServer/model"
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type feedbackRepositoryImpl struct {
	db          *gorm.DB
	redisClient *redis.Client
}

func NewFeedbackRepository(db *gorm.DB, redisClient *redis.Client) IFeedbackRepository {
	return &feedbackRepositoryImpl{db: db, redisClient: redisClient}
}

// CreateWithAward 创建反馈并按积分规则给用户加分（同一事务）
// 规则缺失时反馈照常落库、加分为 0，不阻塞反馈流程
func (r *feedbackRepositoryImpl) CreateWithAward(ctx context.Context, feedback *model.Feedback) (int64, error) {
	var pointsAwarded int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 写反馈
		if err := tx.Create(feedback).Error; err != nil {
			return err
		}

		// 2. 查加分规则
		var rule model.RewardRule
		err := tx.Where("activity_type = ?", model.ActivityLeaveFeedback).
			First(&rule).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil
			}
			return err
		}
		if rule.PointsAssociated <= 0 {
			return nil
		}

		// 3. 给反馈用户加分
		err = tx.Model(&model.User{}).
			Where("user_id = ?", feedback.UserID).
			Update("total_points", gorm.Expr("total_points + ?", rule.PointsAssociated)).Error
		if err != nil {
			return err
		}
		pointsAwarded = rule.PointsAssociated
		return nil
	})

	if err != nil {
		return 0, WrapDBError(err)
	}

	// 积分变动，失效用户缓存
	if pointsAwarded > 0 {
		invalidateUserCache(ctx, r.redisClient, feedback.UserID)
	}

	return pointsAwarded, nil
}

// ListByVenue 获取场所的全部反馈（含用户信息，按时间倒序）
func (r *feedbackRepositoryImpl) ListByVenue(ctx context.Context, venueID int64) ([]*model.Feedback, error) {
	var feedbacks []*model.Feedback
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("venue_id = ?", venueID).
		Order("created_at DESC").
		Find(&feedbacks).Error
	if err != nil {
		return nil, WrapDBError(err)
	}
	return feedbacks, nil
}
