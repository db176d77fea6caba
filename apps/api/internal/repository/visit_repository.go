package repository

import (
	"BridgerServer/model"
	"context"

	"gorm.io/gorm"
)

type visitRepositoryImpl struct {
	db *gorm.DB
}

func NewVisitRepository(db *gorm.DB) IVisitRepository {
	return &visitRepositoryImpl{db: db}
}

// Create 记录一次到访
func (r *visitRepositoryImpl) Create(ctx context.Context, visit *model.VisitHistory) (*model.VisitHistory, error) {
	if err := r.db.WithContext(ctx).Create(visit).Error; err != nil {
		return nil, WrapDBError(err)
	}
	return visit, nil
}

// ListByUser 获取用户的到访记录（含场所信息，按到访日期倒序）
func (r *visitRepositoryImpl) ListByUser(ctx context.Context, userID int64) ([]*model.VisitHistory, error) {
	var visits []*model.VisitHistory
	err := r.db.WithContext(ctx).
		Preload("Venue").
		Where("user_id = ?", userID).
		Order("visit_date DESC").
		Find(&visits).Error
	if err != nil {
		return nil, WrapDBError(err)
	}
	return visits, nil
}
