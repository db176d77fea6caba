package notify

import (
	"BridgerServer/pkg/logger"
	"context"
	"encoding/json"
	"sync"
	"time"
)

// ==================== 事件定义 ====================

// 下行事件类型
const (
	EventFriendRequest  = "friend.request"  // 收到新的好友请求
	EventFriendAccepted = "friend.accepted" // 发出的好友请求被接受
)

// Event 下行通知事件
type Event struct {
	Type      string `json:"type"`                // 事件类型
	FromID    int64  `json:"from_id"`             // 触发方用户ID
	FromName  string `json:"from_name,omitempty"` // 触发方用户名
	Timestamp int64  `json:"timestamp"`           // 事件时间戳（Unix 秒）
}

// Notifier 服务层使用的通知接口
// 投递是尽力而为：用户不在线或队列满时事件直接丢弃
type Notifier interface {
	NotifyUser(ctx context.Context, userID int64, event Event)
}

// ==================== Hub ====================

// Hub 管理所有在线通知连接。
// 维护两套索引：
// - byKey(user_id:conn_id) 用于精确定位单条连接；
// - byUser(user_id -> conn_id -> client) 用于按用户广播。
type Hub struct {
	mu       sync.RWMutex
	byKey    map[string]*Client
	byUser   map[int64]map[string]*Client
	shutdown bool
}

// NewHub 创建通知中心实例。
func NewHub() *Hub {
	return &Hub{
		byKey:  make(map[string]*Client),
		byUser: make(map[int64]map[string]*Client),
	}
}

// Register 注册一条连接。
// 返回值 replaced 表示被新连接替换掉的旧连接（同一 conn_id 重连时出现）。
// 调用方应主动关闭 replaced。
func (h *Hub) Register(client *Client) (replaced *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.shutdown {
		return nil
	}

	key := client.Key()
	if old, ok := h.byKey[key]; ok && old != client {
		replaced = old
	}

	h.byKey[key] = client
	userConns, ok := h.byUser[client.UserID()]
	if !ok {
		userConns = make(map[string]*Client)
		h.byUser[client.UserID()] = userConns
	}
	userConns[client.ConnID()] = client
	return replaced
}

// Unregister 注销一条连接。
// 只有当 map 中当前连接与入参完全一致时才删除，防止并发替换时误删新连接。
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	key := client.Key()
	current, ok := h.byKey[key]
	if !ok || current != client {
		return
	}

	delete(h.byKey, key)
	if userConns, ok := h.byUser[client.UserID()]; ok {
		delete(userConns, client.ConnID())
		if len(userConns) == 0 {
			delete(h.byUser, client.UserID())
		}
	}
}

// NotifyUser 向用户的所有在线连接广播事件。
// 序列化失败或无在线连接时静默返回。
func (h *Hub) NotifyUser(ctx context.Context, userID int64, event Event) {
	if event.Timestamp == 0 {
		event.Timestamp = time.Now().Unix()
	}

	msg, err := json.Marshal(event)
	if err != nil {
		logger.Warn(ctx, "通知事件序列化失败",
			logger.String("event_type", event.Type),
			logger.ErrorField("error", err),
		)
		return
	}

	h.mu.RLock()
	userConns, ok := h.byUser[userID]
	if !ok || len(userConns) == 0 {
		h.mu.RUnlock()
		return
	}
	clients := make([]*Client, 0, len(userConns))
	for _, client := range userConns {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		// 入队失败（队列满/连接已关）直接丢弃
		_ = client.Enqueue(msg)
	}
}

// Count 返回当前在线连接数。
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.byKey)
}

// Shutdown 关闭全部连接并阻止后续注册。
// 用于进程优雅退出阶段。
func (h *Hub) Shutdown() {
	h.mu.Lock()
	if h.shutdown {
		h.mu.Unlock()
		return
	}
	h.shutdown = true

	clients := make([]*Client, 0, len(h.byKey))
	for _, client := range h.byKey {
		clients = append(clients, client)
	}
	h.byKey = make(map[string]*Client)
	h.byUser = make(map[int64]map[string]*Client)
	h.mu.Unlock()

	for _, client := range clients {
		client.Close()
	}
}
