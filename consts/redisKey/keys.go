package rediskey

import (
	"fmt"
	"time"
)

// ==================== TTL 常量 ====================

const (
	// UserInfoTTL 用户信息缓存 TTL
	UserInfoTTL = 1 * time.Hour
	// UserInfoEmptyTTL 用户信息空值缓存 TTL
	UserInfoEmptyTTL = 5 * time.Minute

	// FriendSetTTL 好友集合缓存 TTL
	FriendSetTTL = 24 * time.Hour
	// FriendSetEmptyTTL 好友集合空值缓存 TTL
	FriendSetEmptyTTL = 5 * time.Minute

	// PendingRequestTTL 待处理好友请求缓存 TTL
	PendingRequestTTL = 24 * time.Hour
	// PendingRequestEmptyTTL 待处理好友请求空值缓存 TTL
	PendingRequestEmptyTTL = 5 * time.Minute
	// RequestUnreadTTL 好友请求未读计数 TTL
	RequestUnreadTTL = 7 * 24 * time.Hour

	// VenueListTTL 场所列表缓存 TTL
	VenueListTTL = 10 * time.Minute
	// VenueInfoTTL 单个场所缓存 TTL
	VenueInfoTTL = 1 * time.Hour
	// VenueInfoEmptyTTL 场所空值缓存 TTL
	VenueInfoEmptyTTL = 5 * time.Minute
)

// ==================== Key 构造函数 ====================

// UserInfoKey 生成用户信息缓存 Key: user:info:{id}
func UserInfoKey(userID int64) string {
	return fmt.Sprintf("user:info:%d", userID)
}

// FriendSetKey 生成好友集合 Key: user:relation:friend:{id}
func FriendSetKey(userID int64) string {
	return fmt.Sprintf("user:relation:friend:%d", userID)
}

// PendingRequestKey 生成待处理好友请求 Key: friend:request:pending:{target_id}
func PendingRequestKey(targetID int64) string {
	return fmt.Sprintf("friend:request:pending:%d", targetID)
}

// RequestUnreadKey 生成好友请求未读计数 Key: friend:request:unread:{target_id}
func RequestUnreadKey(targetID int64) string {
	return fmt.Sprintf("friend:request:unread:%d", targetID)
}

// VenueListKey 生成场所列表缓存 Key: venue:list:all
func VenueListKey() string {
	return "venue:list:all"
}

// VenueInfoKey 生成场所信息缓存 Key: venue:info:{id}
func VenueInfoKey(venueID int64) string {
	return fmt.Sprintf("venue:info:%d", venueID)
}

// ==================== 限流 Key 构造函数 ====================

// UserRateLimitKey 用户限流 Key: rate:limit:user:{id}
func UserRateLimitKey(userID int64) string {
	return fmt.Sprintf("rate:limit:user:%d", userID)
}

// IPRateLimitKey IP 限流 Key: rate:limit:ip:{ip}
func IPRateLimitKey(ip string) string {
	return fmt.Sprintf("rate:limit:ip:%s", ip)
}
