package repository

import (
	rediskey "BridgerServer/consts/redisKey"
	"BridgerServer/model"
	"BridgerServer/pkg/async"
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type friendRepositoryImpl struct {
	db          *gorm.DB
	redisClient *redis.Client
}

func NewFriendRepository(db *gorm.DB, redisClient *redis.Client) IFriendRepository {
	return &friendRepositoryImpl{db: db, redisClient: redisClient}
}

// IsFriend 判断两个用户是否已是好友
// 采用 Cache-Aside Pattern：好友ID集合存 Redis Set，未命中回源 MySQL 并重建
func (r *friendRepositoryImpl) IsFriend(ctx context.Context, userID, friendID int64) (bool, error) {
	cacheKey := rediskey.FriendSetKey(userID)
	member := strconv.FormatInt(friendID, 10)

	// ==================== 1. 组合查询 Redis (Pipeline) ====================
	// 使用 Pipeline 一次性发送命令，减少网络 RTT
	// Redis 关闭时直接回源 MySQL
	if r.redisClient != nil {
		pipe := r.redisClient.Pipeline()

		// 命令1: 检查 Key 是否存在 (区分缓存命中/未命中)
		existsCmd := pipe.Exists(ctx, cacheKey)
		// 命令2: 检查成员 (只有 Key 存在时此结果才有效)
		memberCmd := pipe.SIsMember(ctx, cacheKey, member)

		// 概率续期优化：1% 的概率在读取时顺便续期
		if getRandomBool(0.01) {
			pipe.Expire(ctx, cacheKey, getRandomExpireTime(rediskey.FriendSetTTL))
		}

		_, err := pipe.Exec(ctx)

		if err != nil && err != redis.Nil {
			if isRedisWrongType(err) {
				_ = r.redisClient.Del(ctx, cacheKey).Err()
			} else {
				// Redis 挂了，记录日志，降级去查 DB
				LogRedisError(ctx, err)
			}
		} else if err == nil {
			// Redis 正常返回，先看 Key 在不在
			if existsCmd.Val() > 0 {
				// 缓存命中
				if memberCmd.Err() == nil {
					return memberCmd.Val(), nil
				}
				if isRedisWrongType(memberCmd.Err()) {
					_ = r.redisClient.Del(ctx, cacheKey).Err()
				} else {
					LogRedisError(ctx, memberCmd.Err())
				}
			}
			// 缓存未命中，继续往下走查数据库
		}
	}

	// ==================== 2. 缓存未命中，回源查询 MySQL ====================
	var relations []model.FriendRelation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&relations).Error
	if err != nil {
		return false, WrapDBError(err)
	}

	// ==================== 3. 重建缓存 (Set) ====================
	r.rebuildFriendCacheAsync(ctx, userID, relations)

	for _, relation := range relations {
		if relation.FriendID == friendID {
			return true, nil
		}
	}
	return false, nil
}

// GetFriendIDs 获取用户的全部好友ID（按好友ID升序）
func (r *friendRepositoryImpl) GetFriendIDs(ctx context.Context, userID int64) ([]int64, error) {
	// 列表场景直接查 MySQL（需要稳定排序），顺带重建存在性缓存
	var relations []model.FriendRelation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("friend_id ASC").
		Find(&relations).Error
	if err != nil {
		return nil, WrapDBError(err)
	}

	r.rebuildFriendCacheAsync(ctx, userID, relations)

	ids := make([]int64, 0, len(relations))
	for _, relation := range relations {
		ids = append(ids, relation.FriendID)
	}
	return ids, nil
}

// rebuildFriendCacheAsync 异步重建好友集合缓存
// 注意：relations 必须是该用户的全量关系行
func (r *friendRepositoryImpl) rebuildFriendCacheAsync(ctx context.Context, userID int64, relations []model.FriendRelation) {
	if r.redisClient == nil {
		return
	}
	cacheKey := rediskey.FriendSetKey(userID)

	async.RunSafe(ctx, func(runCtx context.Context) {
		pipe := r.redisClient.Pipeline()
		pipe.Del(runCtx, cacheKey)

		if len(relations) == 0 {
			// 空值占位，防止缓存穿透
			pipe.SAdd(runCtx, cacheKey, "__EMPTY__")
			pipe.Expire(runCtx, cacheKey, rediskey.FriendSetEmptyTTL)
		} else {
			members := make([]interface{}, 0, len(relations))
			for _, relation := range relations {
				members = append(members, strconv.FormatInt(relation.FriendID, 10))
			}
			pipe.SAdd(runCtx, cacheKey, members...)
			pipe.Expire(runCtx, cacheKey, getRandomExpireTime(rediskey.FriendSetTTL))
		}

		if _, err := pipe.Exec(runCtx); err != nil {
			LogRedisError(runCtx, err)
		}
	}, 0)
}
