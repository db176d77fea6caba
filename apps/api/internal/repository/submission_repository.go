package repository

import (
	"BridgerServer/apps/api/mq"
	rediskey "BridgerServer/consts/redisKey"
	"BridgerServer/model"
	"BridgerServer/pkg/async"
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type submissionRepositoryImpl struct {
	db          *gorm.DB
	redisClient *redis.Client
}

func NewSubmissionRepository(db *gorm.DB, redisClient *redis.Client) ISubmissionRepository {
	return &submissionRepositoryImpl{db: db, redisClient: redisClient}
}

// Create 创建提交
func (r *submissionRepositoryImpl) Create(ctx context.Context, submission *model.LocationSubmission) (*model.LocationSubmission, error) {
	if err := r.db.WithContext(ctx).Create(submission).Error; err != nil {
		return nil, WrapDBError(err)
	}
	return submission, nil
}

// ListAll 获取全部提交
func (r *submissionRepositoryImpl) ListAll(ctx context.Context) ([]*model.LocationSubmission, error) {
	var submissions []*model.LocationSubmission
	err := r.db.WithContext(ctx).
		Order("submission_id ASC").
		Find(&submissions).Error
	if err != nil {
		return nil, WrapDBError(err)
	}
	return submissions, nil
}

// AcceptIntoVenue 审核通过：提交行搬入 venue 表并删除提交（事务）
func (r *submissionRepositoryImpl) AcceptIntoVenue(ctx context.Context, submissionID int64) (*model.Venue, error) {
	var venue *model.Venue

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 读取提交（行锁防止并发重复审核）
		var submission model.LocationSubmission
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("submission_id = ?", submissionID).
			First(&submission).Error
		if err != nil {
			return err
		}

		// 2. 搬入 venue 表
		venue = &model.Venue{
			Name:               submission.Name,
			Address:            submission.Address,
			AccessibilityScore: submission.AccessibilityScore,
			Type:               submission.Type,
			Description:        submission.Description,
			AccessibilityAvail: submission.AccessibilityAvail,
			Latitude:           submission.Latitude,
			Longitude:          submission.Longitude,
		}
		if err := tx.Create(venue).Error; err != nil {
			return err
		}

		// 3. 删除提交
		result := tx.Where("submission_id = ?", submissionID).
			Delete(&model.LocationSubmission{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, WrapDBError(err)
	}

	// 场所新增，失效列表缓存
	if r.redisClient == nil {
		return venue, nil
	}
	async.RunSafe(ctx, func(runCtx context.Context) {
		cacheKey := rediskey.VenueListKey()
		if err := r.redisClient.Del(runCtx, cacheKey).Err(); err != nil && err != redis.Nil {
			LogAndRetryRedisError(runCtx, mq.BuildDelTask(cacheKey), err)
		}
	}, 0)

	return venue, nil
}

// Delete 拒绝（删除）提交
func (r *submissionRepositoryImpl) Delete(ctx context.Context, submissionID int64) error {
	result := r.db.WithContext(ctx).
		Where("submission_id = ?", submissionID).
		Delete(&model.LocationSubmission{})
	if result.Error != nil {
		return WrapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
