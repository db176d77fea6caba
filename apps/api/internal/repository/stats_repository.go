package repository

import (
	"BridgerServer/model"
	"context"

	"gorm.io/gorm"
)

type statsRepositoryImpl struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) IStatsRepository {
	return &statsRepositoryImpl{db: db}
}

// CountUsers 用户总数
func (r *statsRepositoryImpl) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Count(&count).Error
	if err != nil {
		return 0, WrapDBError(err)
	}
	return count, nil
}

// MonthlyRegistrations 按月统计注册量
// 数据库侧聚合，不把用户全量拉到内存里数
func (r *statsRepositoryImpl) MonthlyRegistrations(ctx context.Context) ([]*MonthlyCount, error) {
	var rows []*MonthlyCount
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Select("DATE_FORMAT(created_at, '%Y-%m') AS month, COUNT(*) AS count").
		Group("month").
		Order("month ASC").
		Find(&rows).Error
	if err != nil {
		return nil, WrapDBError(err)
	}
	return rows, nil
}
