package repository

import (
	"BridgerServer/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type starRepositoryImpl struct {
	db *gorm.DB
}

func NewStarRepository(db *gorm.DB) IStarRepository {
	return &starRepositoryImpl{db: db}
}

// Upsert 收藏场所
// 复合主键 (user_id, venue_id)，重复收藏时覆盖分享列表
func (r *starRepositoryImpl) Upsert(ctx context.Context, star *model.StarredLocation) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "venue_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"share_with"}),
	}).Create(star).Error
	if err != nil {
		return WrapDBError(err)
	}
	return nil
}

// ListByUser 获取用户的全部收藏（含场所信息，按收藏时间倒序）
func (r *starRepositoryImpl) ListByUser(ctx context.Context, userID int64) ([]*model.StarredLocation, error) {
	var stars []*model.StarredLocation
	err := r.db.WithContext(ctx).
		Preload("Venue").
		Where("user_id = ?", userID).
		Order("starred_at DESC").
		Find(&stars).Error
	if err != nil {
		return nil, WrapDBError(err)
	}
	return stars, nil
}

// ListSharedWith 获取其他用户分享给 userID 的收藏（含场所信息，按收藏时间倒序）
// share_with 是 json 数组列，直接用 JSON_CONTAINS 在库里过滤
func (r *starRepositoryImpl) ListSharedWith(ctx context.Context, userID int64) ([]*model.StarredLocation, error) {
	var stars []*model.StarredLocation
	err := r.db.WithContext(ctx).
		Preload("Venue").
		Where("JSON_CONTAINS(share_with, CAST(? AS JSON))", userID).
		Order("starred_at DESC").
		Find(&stars).Error
	if err != nil {
		return nil, WrapDBError(err)
	}
	return stars, nil
}
