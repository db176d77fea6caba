package repository

import (
	"BridgerServer/apps/api/mq"
	rediskey "BridgerServer/consts/redisKey"
	"BridgerServer/model"
	"BridgerServer/pkg/async"
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type venueRepositoryImpl struct {
	db          *gorm.DB
	redisClient *redis.Client
}

func NewVenueRepository(db *gorm.DB, redisClient *redis.Client) IVenueRepository {
	return &venueRepositoryImpl{db: db, redisClient: redisClient}
}

// ListAll 获取全部场所
// 首页地图全量拉取，短 TTL 的整表缓存（JSON 数组）
func (r *venueRepositoryImpl) ListAll(ctx context.Context) ([]*model.Venue, error) {
	// ==================== 1. 先从 Redis 缓存中查询 ====================
	// Redis 关闭时直接走 MySQL
	cacheKey := rediskey.VenueListKey()
	if r.redisClient != nil {
		cachedData, err := r.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var venues []*model.Venue
			if err := json.Unmarshal([]byte(cachedData), &venues); err == nil {
				return venues, nil
			}
		}
		if err != nil && err != redis.Nil {
			LogRedisError(ctx, err) // 记录日志 降级处理
		}
	}

	// ==================== 2. 缓存未命中，查询 MySQL ====================
	var venues []*model.Venue
	err := r.db.WithContext(ctx).
		Order("venue_id ASC").
		Find(&venues).Error
	if err != nil {
		return nil, WrapDBError(err)
	}

	// ==================== 3. 存入 Redis 缓存 ====================
	if r.redisClient == nil {
		return venues, nil
	}
	listJSON, err := json.Marshal(venues)
	if err != nil {
		return venues, nil
	}

	ttl := getRandomExpireTime(rediskey.VenueListTTL)
	async.RunSafe(ctx, func(runCtx context.Context) {
		if err := r.redisClient.Set(runCtx, cacheKey, listJSON, ttl).Err(); err != nil {
			LogAndRetryRedisError(runCtx, mq.BuildSetTask(cacheKey, string(listJSON), ttl), err)
		}
	}, 0)

	return venues, nil
}

// GetByID 按ID查询场所
func (r *venueRepositoryImpl) GetByID(ctx context.Context, venueID int64) (*model.Venue, error) {
	// ==================== 1. 先从 Redis 缓存中查询 ====================
	cacheKey := rediskey.VenueInfoKey(venueID)
	if r.redisClient != nil {
		cachedData, err := r.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			// 空占位符表示场所不存在
			if cachedData == "{}" {
				return nil, nil
			}
			var venue model.Venue
			if err := json.Unmarshal([]byte(cachedData), &venue); err == nil {
				return &venue, nil
			}
		}
		if err != nil && err != redis.Nil {
			LogRedisError(ctx, err)
		}
	}

	// ==================== 2. 缓存未命中，查询 MySQL ====================
	var venue model.Venue
	err := r.db.WithContext(ctx).Where("venue_id = ?", venueID).First(&venue).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 空占位防缓存穿透
			if r.redisClient != nil {
				emptyTTL := getRandomExpireTime(rediskey.VenueInfoEmptyTTL)
				async.RunSafe(ctx, func(runCtx context.Context) {
					if err := r.redisClient.Set(runCtx, cacheKey, "{}", emptyTTL).Err(); err != nil {
						LogRedisError(runCtx, err)
					}
				}, 0)
			}
			return nil, nil
		}
		return nil, WrapDBError(err)
	}

	// ==================== 3. 存入 Redis 缓存 ====================
	if r.redisClient == nil {
		return &venue, nil
	}
	venueJSON, err := json.Marshal(venue)
	if err != nil {
		return &venue, nil
	}

	ttl := getRandomExpireTime(rediskey.VenueInfoTTL)
	async.RunSafe(ctx, func(runCtx context.Context) {
		if err := r.redisClient.Set(runCtx, cacheKey, venueJSON, ttl).Err(); err != nil {
			LogAndRetryRedisError(runCtx, mq.BuildSetTask(cacheKey, string(venueJSON), ttl), err)
		}
	}, 0)

	return &venue, nil
}

// Create 创建场所
func (r *venueRepositoryImpl) Create(ctx context.Context, venue *model.Venue) (*model.Venue, error) {
	if err := r.db.WithContext(ctx).Create(venue).Error; err != nil {
		return nil, WrapDBError(err)
	}

	r.invalidateListCacheAsync(ctx)
	return venue, nil
}

// UpdatePhotoURL 更新场所照片地址
func (r *venueRepositoryImpl) UpdatePhotoURL(ctx context.Context, venueID int64, photoURL string) error {
	result := r.db.WithContext(ctx).
		Model(&model.Venue{}).
		Where("venue_id = ?", venueID).
		Update("photo_url", photoURL)
	if result.Error != nil {
		return WrapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}

	// 单体缓存和列表缓存都要失效
	r.invalidateVenueCacheAsync(ctx, venueID)
	return nil
}

// invalidateListCacheAsync 失效场所列表缓存
func (r *venueRepositoryImpl) invalidateListCacheAsync(ctx context.Context) {
	if r.redisClient == nil {
		return
	}
	async.RunSafe(ctx, func(runCtx context.Context) {
		cacheKey := rediskey.VenueListKey()
		if err := r.redisClient.Del(runCtx, cacheKey).Err(); err != nil && err != redis.Nil {
			LogAndRetryRedisError(runCtx, mq.BuildDelTask(cacheKey), err)
		}
	}, 0)
}

// invalidateVenueCacheAsync 失效单个场所缓存和列表缓存
func (r *venueRepositoryImpl) invalidateVenueCacheAsync(ctx context.Context, venueID int64) {
	if r.redisClient == nil {
		return
	}
	async.RunSafe(ctx, func(runCtx context.Context) {
		keys := []string{rediskey.VenueInfoKey(venueID), rediskey.VenueListKey()}
		if err := r.redisClient.Del(runCtx, keys...).Err(); err != nil && err != redis.Nil {
			LogAndRetryRedisError(runCtx, mq.BuildDelTask(keys...), err)
		}
	}, 0)
}
