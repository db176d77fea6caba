package repository

import (
	"BridgerServer/model"
	"context"

	"gorm.io/gorm"
)

type volunteerRepositoryImpl struct {
	db *gorm.DB
}

func NewVolunteerRepository(db *gorm.DB) IVolunteerRepository {
	return &volunteerRepositoryImpl{db: db}
}

// Create 创建志愿者报名
// 联系方式唯一键兜底重复报名，冲突时返回 ErrDuplicateKey
func (r *volunteerRepositoryImpl) Create(ctx context.Context, volunteer *model.Volunteer) (*model.Volunteer, error) {
	if err := r.db.WithContext(ctx).Create(volunteer).Error; err != nil {
		return nil, WrapDBError(err)
	}
	return volunteer, nil
}

// ListAll 获取全部志愿者
func (r *volunteerRepositoryImpl) ListAll(ctx context.Context) ([]*model.Volunteer, error) {
	var volunteers []*model.Volunteer
	err := r.db.WithContext(ctx).
		Order("volunteer_id ASC").
		Find(&volunteers).Error
	if err != nil {
		return nil, WrapDBError(err)
	}
	return volunteers, nil
}
