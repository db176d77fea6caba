package service

import (
	"BridgerServer/apps/api/internal/converter"
	"BridgerServer/apps/api/internal/dto"
	"BridgerServer/apps/api/internal/repository"
	"BridgerServer/consts"
	"BridgerServer/pkg/errs"
	"BridgerServer/pkg/logger"
	"BridgerServer/pkg/minio"
	"BridgerServer/pkg/util"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// venueServiceImpl 场所服务实现
type venueServiceImpl struct {
	venueRepo   repository.IVenueRepository
	minioClient *minio.MinIOClient
}

// NewVenueService 创建场所服务实例
// minioClient 可为 nil（对象存储关闭时照片上传不可用）
func NewVenueService(venueRepo repository.IVenueRepository, minioClient *minio.MinIOClient) VenueService {
	return &venueServiceImpl{
		venueRepo:   venueRepo,
		minioClient: minioClient,
	}
}

// ListVenues 获取全部场所
func (s *venueServiceImpl) ListVenues(ctx context.Context) (*dto.VenueListResponse, error) {
	venues, err := s.venueRepo.ListAll(ctx)
	if err != nil {
		logger.Error(ctx, "查询场所列表失败", logger.ErrorField("error", err))
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}
	return &dto.VenueListResponse{Venues: converter.ModelListToVenueItemList(venues)}, nil
}

// GetVenue 按ID获取场所
// 错误码映射：
//   - CodeVenueNotFound: 场所不存在
//   - CodeInternalError: 系统内部错误
func (s *venueServiceImpl) GetVenue(ctx context.Context, venueID int64) (*dto.VenueItem, error) {
	venue, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}
	if venue == nil {
		return nil, errs.New(consts.CodeVenueNotFound)
	}
	return converter.ModelToVenueItem(venue), nil
}

// UploadPhoto 上传场所照片
// 业务流程：
//  1. 场所存在
//  2. 上传对象存储（大小/类型校验在存储客户端里做）
//  3. 回写照片地址
//
// 错误码映射：
//   - CodeVenueNotFound: 场所不存在
//   - CodeUploadTooLarge: 文件超过大小限制
//   - CodeUploadTypeError: 文件类型不支持
//   - CodeServiceUnavailable: 对象存储未启用
//   - CodeInternalError: 系统内部错误
func (s *venueServiceImpl) UploadPhoto(ctx context.Context, venueID int64, fileName string, fileSize int64, reader io.Reader) (*dto.UploadPhotoResponse, error) {
	if s.minioClient == nil {
		return nil, errs.New(consts.CodeServiceUnavailable)
	}

	logger.Info(ctx, "场所照片上传请求",
		logger.Int64("venue_id", venueID),
		logger.String("file_name", fileName),
		logger.Int64("file_size", fileSize),
	)

	// 1. 场所存在
	venue, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}
	if venue == nil {
		return nil, errs.New(consts.CodeVenueNotFound)
	}

	// 2. 上传对象存储
	// 对象名用雪花 ID 重新生成，避免客户端文件名注入路径
	ext := strings.ToLower(filepath.Ext(fileName))
	result, err := s.minioClient.Upload(ctx, reader, fileSize, minio.UploadOptions{
		PathPrefix: fmt.Sprintf("venues/%d/", venueID),
		FileName:   util.NextIDString() + ext,
	})
	if err != nil {
		if errors.Is(err, minio.ErrFileTooLarge) {
			return nil, errs.New(consts.CodeUploadTooLarge)
		}
		if errors.Is(err, minio.ErrTypeNotAllowed) {
			return nil, errs.New(consts.CodeUploadTypeError)
		}
		logger.Error(ctx, "场所照片上传失败",
			logger.Int64("venue_id", venueID),
			logger.ErrorField("error", err),
		)
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}

	// 3. 回写照片地址
	if err := s.venueRepo.UpdatePhotoURL(ctx, venueID, result.URL); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, errs.New(consts.CodeVenueNotFound)
		}
		return nil, errs.Wrap(consts.CodeInternalError, err)
	}

	logger.Info(ctx, "场所照片上传成功",
		logger.Int64("venue_id", venueID),
		logger.String("object_name", result.ObjectName),
	)

	return &dto.UploadPhotoResponse{
		Message:  "Photo uploaded successfully",
		PhotoURL: result.URL,
	}, nil
}
