package repository

import (
	"BridgerServer/apps/api/mq"
	rediskey "BridgerServer/consts/redisKey"
	"BridgerServer/model"
	"BridgerServer/pkg/async"
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type friendRequestRepositoryImpl struct {
	db          *gorm.DB
	redisClient *redis.Client
}

func NewFriendRequestRepository(db *gorm.DB, redisClient *redis.Client) IFriendRequestRepository {
	return &friendRequestRepositoryImpl{db: db, redisClient: redisClient}
}

// CreatePending 创建待处理好友请求
// 唯一键 (requester_id, target_id) 兜底并发重复发送：后写入的一方返回 ErrDuplicateKey
func (r *friendRequestRepositoryImpl) CreatePending(ctx context.Context, requesterID, targetID int64) (*model.FriendRequest, error) {
	request := &model.FriendRequest{
		RequesterID: requesterID,
		TargetID:    targetID,
		Accepted:    model.FriendRequestPending,
	}

	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return nil, WrapDBError(err)
	}

	if r.redisClient == nil {
		return request, nil
	}

	// 尽力而为地更新目标用户的待处理请求缓存。
	// 关键原则：只有 Key 存在时才增量添加，Key 不存在时不操作（让读接口负责全量加载）。
	// 这避免了 Key 过期后增量添加导致缓存数据不完整的问题。
	cacheKey := rediskey.PendingRequestKey(targetID)
	luaScript := redis.NewScript(luaAddPendingRequestIfExists)

	expireSeconds := int(getRandomExpireTime(rediskey.PendingRequestTTL).Seconds())
	_, err := luaScript.Run(ctx, r.redisClient,
		[]string{cacheKey},
		request.RequestedAt.Unix(),
		strconv.FormatInt(requesterID, 10),
		expireSeconds,
	).Result()

	if err != nil && err != redis.Nil {
		// Lua 脚本执行失败，记录日志但不阻塞主流程
		// 注意：Key 不存在返回 0 不是错误，读接口会负责全量加载
		LogRedisError(ctx, err)
	}

	// 更新目标用户的未读请求计数
	notifyKey := rediskey.RequestUnreadKey(targetID)
	incrScript := redis.NewScript(luaIncrementWithExpire)
	if _, err := incrScript.Run(ctx, r.redisClient,
		[]string{notifyKey},
		int(rediskey.RequestUnreadTTL.Seconds()),
	).Result(); err != nil && err != redis.Nil {
		LogRedisError(ctx, err)
	}

	return request, nil
}

// ExistsPendingRequest 检查 requester→target 方向是否存在待处理请求
// 采用 Cache-Aside Pattern：优先查 Redis ZSet，未命中则回源 MySQL 并重建缓存
// ZSet 按目标用户聚合待处理请求，以请求时间戳为 score
func (r *friendRequestRepositoryImpl) ExistsPendingRequest(ctx context.Context, requesterID, targetID int64) (bool, error) {
	cacheKey := rediskey.PendingRequestKey(targetID)
	member := strconv.FormatInt(requesterID, 10)

	// ==================== 1. 组合查询 Redis (Pipeline) ====================
	// Redis 关闭时直接回源 MySQL
	if r.redisClient != nil {
		pipe := r.redisClient.Pipeline()
		existsCmd := pipe.Exists(ctx, cacheKey)
		scoreCmd := pipe.ZScore(ctx, cacheKey, member)

		// 概率续期优化：1% 的概率在读取时顺便续期
		if getRandomBool(0.01) {
			pipe.Expire(ctx, cacheKey, getRandomExpireTime(rediskey.PendingRequestTTL))
		}

		_, err := pipe.Exec(ctx)
		if err != nil && err != redis.Nil {
			LogRedisError(ctx, err)
		} else if err == nil {
			if existsCmd.Val() > 0 {
				// 缓存命中：成员存在即有 score
				if scoreCmd.Err() == nil {
					return true, nil
				}
				if scoreCmd.Err() == redis.Nil {
					return false, nil
				}
				LogRedisError(ctx, scoreCmd.Err())
			}
		}
	}

	// ==================== 2. 缓存未命中，回源查询 MySQL ====================
	var requests []model.FriendRequest
	err := r.db.WithContext(ctx).
		Where("target_id = ? AND accepted = ?", targetID, model.FriendRequestPending).
		Find(&requests).Error
	if err != nil {
		return false, WrapDBError(err)
	}

	// ==================== 3. 重建缓存 (ZSet) ====================
	r.rebuildPendingCacheAsync(ctx, targetID, requests)

	// ==================== 4. 根据回源结果判断 ====================
	for _, request := range requests {
		if request.RequesterID == requesterID {
			return true, nil
		}
	}
	return false, nil
}

// GetPendingList 获取 target 收到的全部待处理请求（含发起方信息，按时间倒序）
// 列表接口需要带出发起方姓名邮箱，直接查 MySQL 并顺带重建存在性缓存
func (r *friendRequestRepositoryImpl) GetPendingList(ctx context.Context, targetID int64) ([]*model.FriendRequest, []*model.User, error) {
	var requests []*model.FriendRequest
	err := r.db.WithContext(ctx).
		Where("target_id = ? AND accepted = ?", targetID, model.FriendRequestPending).
		Order("requested_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, nil, WrapDBError(err)
	}

	// 批量补全发起方信息
	requesters := make([]*model.User, 0, len(requests))
	if len(requests) > 0 {
		ids := make([]int64, 0, len(requests))
		for _, request := range requests {
			ids = append(ids, request.RequesterID)
		}

		var users []*model.User
		err = r.db.WithContext(ctx).
			Where("user_id IN ?", ids).
			Find(&users).Error
		if err != nil {
			return nil, nil, WrapDBError(err)
		}

		// 按请求顺序排列
		userMap := make(map[int64]*model.User, len(users))
		for _, user := range users {
			userMap[user.UserID] = user
		}
		for _, request := range requests {
			requesters = append(requesters, userMap[request.RequesterID])
		}
	}

	// 顺带重建存在性缓存，发送接口的去重检查可直接命中
	plain := make([]model.FriendRequest, 0, len(requests))
	for _, request := range requests {
		plain = append(plain, *request)
	}
	r.rebuildPendingCacheAsync(ctx, targetID, plain)

	// 清除未读计数（列表被拉取即视为已读）
	if r.redisClient != nil {
		notifyKey := rediskey.RequestUnreadKey(targetID)
		if err := r.redisClient.Del(ctx, notifyKey).Err(); err != nil && err != redis.Nil {
			LogRedisError(ctx, err)
		}
	}

	return requests, requesters, nil
}

// AcceptRequestAndCreateRelation 接受请求并建立好友关系（事务 + CAS幂等）
// 在同一事务中执行：
//  1. CAS 更新请求状态（WHERE accepted=0 守门员）
//  2. 双向写入 friend_relation（ON CONFLICT DO NOTHING，重试安全）
//  3. 按 accept_friend_request 规则给发起方加积分
//
// 返回值:
//   - pointsAwarded: 本次加给发起方的积分
//   - alreadyProcessed=true: 请求不存在或已被处理（幂等，不是错误）
//   - err: 真正的数据库错误
func (r *friendRequestRepositoryImpl) AcceptRequestAndCreateRelation(ctx context.Context, requesterID, targetID int64) (int64, bool, error) {
	var (
		alreadyProcessed bool
		pointsAwarded    int64
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. CAS 更新请求状态（WHERE accepted=0 作为守门员）
		result := tx.Model(&model.FriendRequest{}).
			Where("requester_id = ? AND target_id = ? AND accepted = ?",
				requesterID, targetID, model.FriendRequestPending).
			Update("accepted", model.FriendRequestAccepted)

		if result.Error != nil {
			return result.Error
		}

		// 幂等判断：RowsAffected=0 表示请求不存在或已被处理
		if result.RowsAffected == 0 {
			alreadyProcessed = true
			return nil // 不触发回滚
		}

		// 2. 双向写入好友关系，唯一键冲突时忽略
		relations := []*model.FriendRelation{
			{UserID: targetID, FriendID: requesterID},
			{UserID: requesterID, FriendID: targetID},
		}
		for _, relation := range relations {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "friend_id"}},
				DoNothing: true,
			}).Create(relation).Error
			if err != nil {
				return err
			}
		}

		// 3. 按积分规则给发起方加分（规则缺失时视为 0 分，不阻塞接受流程）
		var rule model.RewardRule
		err := tx.Where("activity_type = ?", model.ActivityAcceptFriendRequest).
			First(&rule).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil
			}
			return err
		}
		if rule.PointsAssociated <= 0 {
			return nil
		}

		err = tx.Model(&model.User{}).
			Where("user_id = ?", requesterID).
			Update("total_points", gorm.Expr("total_points + ?", rule.PointsAssociated)).Error
		if err != nil {
			return err
		}
		pointsAwarded = rule.PointsAssociated
		return nil
	})

	if err != nil {
		return 0, false, WrapDBError(err)
	}

	// 4. 事务成功后异步维护缓存
	if !alreadyProcessed {
		r.afterAcceptCacheAsync(ctx, requesterID, targetID, pointsAwarded > 0)
	}

	return pointsAwarded, alreadyProcessed, nil
}

// DeclineRequest 拒绝（删除）待处理请求
func (r *friendRequestRepositoryImpl) DeclineRequest(ctx context.Context, requesterID, targetID int64) error {
	result := r.db.WithContext(ctx).
		Where("requester_id = ? AND target_id = ? AND accepted = ?",
			requesterID, targetID, model.FriendRequestPending).
		Delete(&model.FriendRequest{})

	if result.Error != nil {
		return WrapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}

	r.removePendingCacheAsync(ctx, requesterID, targetID)
	return nil
}

// rebuildPendingCacheAsync 异步重建待处理请求的 Redis 缓存
// 注意：requests 必须是全量数据，不能用分页数据
func (r *friendRequestRepositoryImpl) rebuildPendingCacheAsync(ctx context.Context, targetID int64, requests []model.FriendRequest) {
	if r.redisClient == nil {
		return
	}
	cacheKey := rediskey.PendingRequestKey(targetID)

	async.RunSafe(ctx, func(runCtx context.Context) {
		pipe := r.redisClient.Pipeline()
		pipe.Del(runCtx, cacheKey)

		if len(requests) == 0 {
			// 空值占位，防止缓存穿透
			pipe.ZAdd(runCtx, cacheKey, redis.Z{
				Score:  0,
				Member: "__EMPTY__",
			})
			pipe.Expire(runCtx, cacheKey, rediskey.PendingRequestEmptyTTL)
		} else {
			zs := make([]redis.Z, 0, len(requests))
			for _, request := range requests {
				zs = append(zs, redis.Z{
					Score:  float64(request.RequestedAt.Unix()),
					Member: strconv.FormatInt(request.RequesterID, 10),
				})
			}
			pipe.ZAdd(runCtx, cacheKey, zs...)
			pipe.Expire(runCtx, cacheKey, getRandomExpireTime(rediskey.PendingRequestTTL))
		}

		if _, err := pipe.Exec(runCtx); err != nil {
			LogRedisError(runCtx, err)
		}
	}, 0)
}

// afterAcceptCacheAsync 接受成功后的缓存维护：
//   - 待处理 ZSet 移除该请求
//   - 双方好友集合增量添加（仅 key 存在时）
//   - 发起方积分变动，删除其用户信息缓存
func (r *friendRequestRepositoryImpl) afterAcceptCacheAsync(ctx context.Context, requesterID, targetID int64, requesterPointsChanged bool) {
	if r.redisClient == nil {
		return
	}
	async.RunSafe(ctx, func(runCtx context.Context) {
		expireSeconds := int(getRandomExpireTime(rediskey.FriendSetTTL).Seconds())

		// 1. 待处理请求移除
		pendingKey := rediskey.PendingRequestKey(targetID)
		removeScript := redis.NewScript(luaRemovePendingRequestIfExists)
		member := strconv.FormatInt(requesterID, 10)
		if _, err := removeScript.Run(runCtx, r.redisClient,
			[]string{pendingKey},
			member,
			int(getRandomExpireTime(rediskey.PendingRequestTTL).Seconds()),
		).Result(); err != nil && err != redis.Nil {
			LogAndRetryRedisError(runCtx,
				mq.BuildLuaTask(luaRemovePendingRequestIfExists,
					[]string{pendingKey}, member,
					int(rediskey.PendingRequestTTL.Seconds())),
				err)
		}

		// 2. 双方好友集合增量添加
		addScript := redis.NewScript(luaAddFriendIfExists)
		pairs := []struct {
			key    string
			member string
		}{
			{rediskey.FriendSetKey(targetID), strconv.FormatInt(requesterID, 10)},
			{rediskey.FriendSetKey(requesterID), strconv.FormatInt(targetID, 10)},
		}
		for _, pair := range pairs {
			_, err := addScript.Run(runCtx, r.redisClient,
				[]string{pair.key},
				pair.member,
				expireSeconds,
			).Result()
			if err != nil && err != redis.Nil {
				if isRedisWrongType(err) {
					_ = r.redisClient.Del(runCtx, pair.key).Err()
					continue
				}
				LogAndRetryRedisError(runCtx,
					mq.BuildLuaTask(luaAddFriendIfExists,
						[]string{pair.key}, pair.member, expireSeconds),
					err)
			}
		}
	}, 0)

	// 3. 发起方积分变动，失效其用户缓存
	if requesterPointsChanged {
		invalidateUserCache(ctx, r.redisClient, requesterID)
	}
}

// removePendingCacheAsync 拒绝后从待处理 ZSet 中移除该请求
func (r *friendRequestRepositoryImpl) removePendingCacheAsync(ctx context.Context, requesterID, targetID int64) {
	if r.redisClient == nil {
		return
	}
	async.RunSafe(ctx, func(runCtx context.Context) {
		cacheKey := rediskey.PendingRequestKey(targetID)
		script := redis.NewScript(luaRemovePendingRequestIfExists)
		member := strconv.FormatInt(requesterID, 10)
		expireSeconds := int(getRandomExpireTime(rediskey.PendingRequestTTL).Seconds())

		if _, err := script.Run(runCtx, r.redisClient,
			[]string{cacheKey},
			member,
			expireSeconds,
		).Result(); err != nil && err != redis.Nil {
			LogAndRetryRedisError(runCtx,
				mq.BuildLuaTask(luaRemovePendingRequestIfExists,
					[]string{cacheKey}, member, expireSeconds),
				err)
		}
	}, 0)
}
