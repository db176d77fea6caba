package minio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"BridgerServer/config"
	"BridgerServer/pkg/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// 全局 MinIO 客户端实例
var global *MinIOClient

// MinIOClient MinIO 客户端封装
// 只承载场所照片这一类图片对象，类型校验按图片白名单收紧。
type MinIOClient struct {
	client *minio.Client
	config config.MinIOConfig
}

// Client 返回全局 MinIO 客户端（未初始化时为 nil）
func Client() *MinIOClient {
	return global
}

// ReplaceGlobal 设置全局 MinIO 客户端
func ReplaceGlobal(c *MinIOClient) {
	global = c
}

// Build 基于配置创建 MinIO 客户端
func Build(cfg config.MinIOConfig) (*MinIOClient, error) {
	// 1. 验证必填配置
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, errors.New("minio endpoint is empty")
	}
	if strings.TrimSpace(cfg.AccessKeyID) == "" {
		return nil, errors.New("minio accessKeyId is empty")
	}
	if strings.TrimSpace(cfg.SecretAccessKey) == "" {
		return nil, errors.New("minio secretAccessKey is empty")
	}
	if strings.TrimSpace(cfg.BucketName) == "" {
		return nil, errors.New("minio bucketName is empty")
	}

	// 2. 创建 MinIO 客户端
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Transport: &http.Transport{
			MaxIdleConns:        cfg.MaxIdleConns,
			MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
			IdleConnTimeout:     cfg.IdleConnTimeout,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	client := &MinIOClient{
		client: minioClient,
		config: cfg,
	}

	// 3. 确保 Bucket 存在
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := minioClient.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket exists: %w", err)
	}

	if !exists {
		err = minioClient.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{
			Region: cfg.Location,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}

		logger.Info(ctx, "MinIO Bucket 创建成功",
			logger.String("bucket", cfg.BucketName),
			logger.String("location", cfg.Location),
		)

		// 设置 Bucket 策略（公开读）
		if cfg.PublicRead {
			policy := fmt.Sprintf(`{
				"Version": "2012-10-17",
				"Statement": [
					{
						"Effect": "Allow",
						"Principal": {"AWS": ["*"]},
						"Action": ["s3:GetObject"],
						"Resource": ["arn:aws:s3:::%s/*"]
					}
				]
			}`, cfg.BucketName)

			err = minioClient.SetBucketPolicy(ctx, cfg.BucketName, policy)
			if err != nil {
				logger.Warn(ctx, "设置 Bucket 公开策略失败",
					logger.String("bucket", cfg.BucketName),
					logger.ErrorField("error", err),
				)
			}
		}
	}

	return client, nil
}

// UploadOptions 上传选项
type UploadOptions struct {
	// 文件路径前缀（如: "venues/42/"）
	PathPrefix string
	// 对象文件名（由调用方生成，通常是雪花 ID + 扩展名）
	FileName string
	// 内容类型（如: "image/jpeg"，为空时按内容检测）
	ContentType string
}

// UploadResult 上传结果
type UploadResult struct {
	ObjectName  string // 对象名称（完整路径）
	Size        int64  // 文件大小（字节）
	ETag        string // 文件的 MD5 哈希
	URL         string // 完整访问 URL
	ContentType string // 内容类型
}

// ErrFileTooLarge 文件超过大小限制
var ErrFileTooLarge = errors.New("file exceeds size limit")

// ErrTypeNotAllowed 文件类型不在允许列表
var ErrTypeNotAllowed = errors.New("file type not allowed")

// Upload 上传文件
// 基于文件内容（Magic Bytes）检测真实类型，扩展名与内容不一致时拒绝，
// 防止恶意文件伪装成图片。
func (c *MinIOClient) Upload(ctx context.Context, reader io.Reader, fileSize int64, opts UploadOptions) (*UploadResult, error) {
	// 1. 验证文件大小
	if c.config.MaxFileSize > 0 && fileSize > c.config.MaxFileSize {
		return nil, fmt.Errorf("%w: %d bytes (max: %d bytes)", ErrFileTooLarge, fileSize, c.config.MaxFileSize)
	}

	// 2. 生成对象名称
	objectName := c.buildObjectName(opts)

	// 3. 读取前 512 字节做类型检测（http.DetectContentType 的要求）
	buffer := make([]byte, 512)
	n, err := io.ReadFull(reader, buffer)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("read file content failed: %w", err)
	}
	buffer = buffer[:n]

	detectedContentType := http.DetectContentType(buffer)

	// 4. 指定类型与检测类型不一致时，以检测结果为准
	contentType := opts.ContentType
	if contentType == "" {
		contentType = detectedContentType
	} else if !contentTypeMatch(contentType, detectedContentType) {
		logger.Warn(ctx, "指定的文件类型与实际检测到的类型不一致",
			logger.String("specified", contentType),
			logger.String("detected", detectedContentType),
			logger.String("object", objectName),
		)
		contentType = detectedContentType
	}

	// 5. 验证文件类型是否在允许列表中
	if len(c.config.AllowedTypes) > 0 && !c.isAllowedType(contentType) {
		logger.Warn(ctx, "文件类型不在允许列表中",
			logger.String("detected_type", detectedContentType),
			logger.String("file_name", opts.FileName),
			logger.Any("allowed_types", c.config.AllowedTypes),
		)
		return nil, fmt.Errorf("%w: %s", ErrTypeNotAllowed, contentType)
	}

	// 6. 验证扩展名与内容类型匹配
	if opts.FileName != "" && !extensionMatchesType(opts.FileName, detectedContentType) {
		logger.Warn(ctx, "文件扩展名与实际内容类型不匹配",
			logger.String("file_name", opts.FileName),
			logger.String("detected_type", detectedContentType),
		)
		return nil, fmt.Errorf("%w: extension mismatch (detected: %s)", ErrTypeNotAllowed, detectedContentType)
	}

	// 7. 重新组合 reader（已读取的 512 字节 + 剩余内容）
	multiReader := io.MultiReader(strings.NewReader(string(buffer)), reader)

	// 8. 设置超时
	uploadCtx := ctx
	if c.config.UploadTimeout > 0 {
		var cancel context.CancelFunc
		uploadCtx, cancel = context.WithTimeout(ctx, c.config.UploadTimeout)
		defer cancel()
	}

	// 9. 执行上传
	uploadInfo, err := c.client.PutObject(
		uploadCtx,
		c.config.BucketName,
		objectName,
		multiReader,
		fileSize,
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		logger.Error(ctx, "MinIO 上传失败",
			logger.String("object", objectName),
			logger.String("content_type", contentType),
			logger.Int64("size", fileSize),
			logger.ErrorField("error", err),
		)
		return nil, fmt.Errorf("upload failed: %w", err)
	}

	url := c.buildURL(objectName)

	logger.Info(ctx, "MinIO 上传成功",
		logger.String("object", objectName),
		logger.String("url", url),
		logger.Int64("size", uploadInfo.Size),
	)

	return &UploadResult{
		ObjectName:  objectName,
		Size:        uploadInfo.Size,
		ETag:        uploadInfo.ETag,
		URL:         url,
		ContentType: contentType,
	}, nil
}

// Delete 删除文件
func (c *MinIOClient) Delete(ctx context.Context, objectName string) error {
	err := c.client.RemoveObject(ctx, c.config.BucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		logger.Error(ctx, "MinIO 删除失败",
			logger.String("object", objectName),
			logger.ErrorField("error", err),
		)
		return fmt.Errorf("delete failed: %w", err)
	}
	return nil
}

// Exists 检查文件是否存在
func (c *MinIOClient) Exists(ctx context.Context, objectName string) (bool, error) {
	_, err := c.client.StatObject(ctx, c.config.BucketName, objectName, minio.StatObjectOptions{})
	if err != nil {
		errResponse := minio.ToErrorResponse(err)
		if errResponse.Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("stat object failed: %w", err)
	}
	return true, nil
}

// ==================== 辅助方法 ====================

// buildObjectName 生成对象名称
func (c *MinIOClient) buildObjectName(opts UploadOptions) string {
	fileName := opts.FileName
	if opts.PathPrefix != "" {
		prefix := strings.TrimSuffix(opts.PathPrefix, "/")
		return prefix + "/" + fileName
	}
	return fileName
}

// buildURL 生成访问 URL
func (c *MinIOClient) buildURL(objectName string) string {
	baseURL := strings.TrimSuffix(c.config.BaseURL, "/")
	objectName = strings.TrimPrefix(objectName, "/")
	return fmt.Sprintf("%s/%s/%s", baseURL, c.config.BucketName, objectName)
}

// contentTypeMatch 检查两个 Content-Type 是否匹配
// image/jpg 和 image/jpeg 视为相同。
func contentTypeMatch(specified, detected string) bool {
	specified = strings.ToLower(strings.TrimSpace(specified))
	detected = strings.ToLower(strings.TrimSpace(detected))

	if specified == detected {
		return true
	}
	if (specified == "image/jpg" || specified == "image/jpeg") &&
		(detected == "image/jpg" || detected == "image/jpeg") {
		return true
	}
	return false
}

// imageExtensions 图片 MIME 类型到扩展名的映射
var imageExtensions = map[string][]string{
	"image/jpeg": {".jpg", ".jpeg"},
	"image/png":  {".png"},
	"image/webp": {".webp"},
	"image/gif":  {".gif"},
}

// extensionMatchesType 验证文件扩展名是否与检测到的内容类型匹配
// 防止恶意文件伪装（如 .exe 改名为 .jpg）。
func extensionMatchesType(fileName, detectedContentType string) bool {
	allowedExts, exists := imageExtensions[strings.ToLower(detectedContentType)]
	if !exists {
		// 非图片类型交给 AllowedTypes 白名单拦截
		return true
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	for _, allowedExt := range allowedExts {
		if ext == allowedExt {
			return true
		}
	}
	return false
}

// isAllowedType 检查文件类型是否允许
func (c *MinIOClient) isAllowedType(contentType string) bool {
	for _, allowed := range c.config.AllowedTypes {
		if strings.EqualFold(contentType, allowed) {
			return true
		}
	}
	return false
}

// GetBucketName 获取当前使用的 Bucket 名称
func (c *MinIOClient) GetBucketName() string {
	return c.config.BucketName
}
