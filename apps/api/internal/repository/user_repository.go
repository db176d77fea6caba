package repository

import (
	"BridgerServer/apps/api/mq"
	rediskey "BridgerServer/consts/redisKey"
	"BridgerServer/model"
	"BridgerServer/pkg/async"
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type userRepositoryImpl struct {
	db          *gorm.DB
	redisClient *redis.Client
}

func NewUserRepository(db *gorm.DB, redisClient *redis.Client) IUserRepository {
	return &userRepositoryImpl{db: db, redisClient: redisClient}
}

// Create 创建新用户
func (r *userRepositoryImpl) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, WrapDBError(err)
	}

	// 注册前可能查询过同邮箱/同ID写入了空占位，清掉
	if r.redisClient != nil {
		cacheKey := rediskey.UserInfoKey(user.UserID)
		if err := r.redisClient.Del(ctx, cacheKey).Err(); err != nil && err != redis.Nil {
			LogAndRetryRedisError(ctx, mq.BuildDelTask(cacheKey), err)
		}
	}

	return user, nil
}

// GetByID 根据用户ID查询用户信息
func (r *userRepositoryImpl) GetByID(ctx context.Context, userID int64) (*model.User, error) {
	// ==================== 1. 先从 Redis 缓存中查询 ====================
	// Redis 关闭时（客户端为 nil）直接走 MySQL
	cacheKey := rediskey.UserInfoKey(userID)
	if r.redisClient != nil {
		cachedData, err := r.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			// 缓存命中，反序列化返回
			// 先判空
			if cachedData == "{}" {
				return nil, nil
			}
			var user model.User
			if err := json.Unmarshal([]byte(cachedData), &user); err == nil {
				return &user, nil
			}
		}
		if err != nil && err != redis.Nil {
			LogRedisError(ctx, err) // 记录日志 降级处理
		}
	}

	// ==================== 2. 缓存未命中，查询 MySQL ====================
	var user model.User
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 存一份空占位到 redis，防缓存穿透
			if r.redisClient != nil {
				emptyTTL := getRandomExpireTime(rediskey.UserInfoEmptyTTL)
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
		return &user, nil
	}
	userJSON, err := json.Marshal(user)
	if err != nil {
		// 序列化失败，不影响主流程，只返回数据库数据
		return &user, nil
	}

	// 随机过期时间防止缓存雪崩
	ttl := getRandomExpireTime(rediskey.UserInfoTTL)
	async.RunSafe(ctx, func(runCtx context.Context) {
		if err := r.redisClient.Set(runCtx, cacheKey, userJSON, ttl).Err(); err != nil {
			LogAndRetryRedisError(runCtx, mq.BuildSetTask(cacheKey, string(userJSON), ttl), err)
		}
	}, 0)

	return &user, nil
}

// GetByEmail 根据邮箱查询用户信息
// 登录入口，直查 MySQL（邮箱登录频率低，不做缓存）
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, WrapDBError(err)
	}
	return &user, nil
}

// ExistsByEmail 检查邮箱是否已被注册
func (r *userRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, WrapDBError(err)
	}
	return count > 0, nil
}

// SearchByName 按用户名模糊搜索（大小写不敏感，LIKE %query%）
func (r *userRepositoryImpl) SearchByName(ctx context.Context, query string, limit int) ([]*model.User, error) {
	if limit <= 0 {
		limit = 200
	}

	var users []*model.User
	pattern := "%" + strings.TrimSpace(query) + "%"
	err := r.db.WithContext(ctx).
		Where("name LIKE ?", pattern).
		Order("name ASC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, WrapDBError(err)
	}
	return users, nil
}

// ListAll 查询全部用户（管理端）
func (r *userRepositoryImpl) ListAll(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	err := r.db.WithContext(ctx).
		Order("user_id ASC").
		Find(&users).Error
	if err != nil {
		return nil, WrapDBError(err)
	}
	return users, nil
}

// invalidateUserCache 删除用户信息缓存（积分变动后调用）
// 删除失败时任务进 Kafka 重试队列，保证最终一致
func invalidateUserCache(ctx context.Context, redisClient *redis.Client, userIDs ...int64) {
	if redisClient == nil || len(userIDs) == 0 {
		return
	}

	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, rediskey.UserInfoKey(id))
	}

	async.RunSafe(ctx, func(runCtx context.Context) {
		if err := redisClient.Del(runCtx, keys...).Err(); err != nil && err != redis.Nil {
			LogAndRetryRedisError(runCtx, mq.BuildDelTask(keys...), err)
		}
	}, 0)
}
