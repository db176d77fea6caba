package notify

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	defaultSendQueueSize = 64
	wsWriteTimeout       = 5 * time.Second
)

// CloseHandler 定义连接关闭回调。
// 用于在 read/write 循环退出后执行清理逻辑（例如从 hub 注销）。
type CloseHandler func()

// Client 封装单条 WebSocket 通知连接。
// 设计要点：
// - send 队列用于削峰，避免业务 goroutine 直接阻塞在网络写；
// - done 用于统一关闭信号，读写循环都监听该信号退出；
// - once 保证 Close 幂等，避免重复 close channel/panic。
type Client struct {
	conn   *websocket.Conn
	userID int64
	connID string
	send   chan []byte
	done   chan struct{}
	once   sync.Once
}

// NewClient 创建连接包装对象。
// connID 区分同一用户的多个标签页/设备连接。
func NewClient(conn *websocket.Conn, userID int64, connID string) *Client {
	return &Client{
		conn:   conn,
		userID: userID,
		connID: connID,
		send:   make(chan []byte, defaultSendQueueSize),
		done:   make(chan struct{}),
	}
}

// Key 返回连接唯一键（user_id:conn_id）。
func (c *Client) Key() string {
	return buildKey(c.userID, c.connID)
}

func (c *Client) UserID() int64 {
	return c.userID
}

func (c *Client) ConnID() string {
	return c.connID
}

// Done 返回连接关闭信号通道。
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// Enqueue 将待发送消息投递到写队列。
// 返回值语义：
// - true：已成功入队；
// - false：连接已关闭或队列已满（通知是尽力而为，调用方直接丢弃）。
func (c *Client) Enqueue(msg []byte) bool {
	if len(msg) == 0 {
		return true
	}
	cloned := append([]byte(nil), msg...)
	select {
	case <-c.done:
		return false
	case c.send <- cloned:
		return true
	default:
		return false
	}
}

// Run 启动读写循环并阻塞等待 readLoop 结束。
// 通知连接是单向下行的：readLoop 只消耗客户端心跳帧并感知断连。
func (c *Client) Run(ctx context.Context, onClose CloseHandler) {
	defer func() {
		c.Close()
		if onClose != nil {
			onClose()
		}
	}()

	go c.writeLoop(ctx)
	c.readLoop(ctx)
}

// Close 幂等关闭连接。
func (c *Client) Close() {
	c.once.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

// readLoop 持续读取客户端上行帧（心跳/关闭帧）。
// 退出条件：ctx cancel、连接关闭信号、网络读错误。
func (c *Client) readLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.done:
			return
		default:
		}

		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writeLoop 持续从 send 队列取消息写入客户端。
// 每次写操作设置超时，避免慢连接长期占用写协程。
func (c *Client) writeLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.done:
			return
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				c.Close()
				return
			}
		}
	}
}

// buildKey 统一构造连接键。
func buildKey(userID int64, connID string) string {
	return strconv.FormatInt(userID, 10) + ":" + connID
}
