package v1

import (
	"BridgerServer/apps/api/internal/middleware"
	"BridgerServer/apps/api/internal/notify"
	"BridgerServer/apps/api/internal/utils"
	"BridgerServer/config"
	"BridgerServer/consts"
	"BridgerServer/pkg/logger"
	"BridgerServer/pkg/result"
	"BridgerServer/pkg/util"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// 当前阶段默认放开来源校验，方便本地多端调试。
	// 生产环境建议按域名白名单收紧校验策略。
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

// NotifyHandler 通知连接入口处理器
// 职责边界：
// - 处理握手阶段的鉴权（token 支持 query 和 Authorization 两种携带方式）；
// - 完成协议升级并把连接交给 hub 管理。
type NotifyHandler struct {
	jwtCfg config.JWTConfig
	hub    *notify.Hub
}

// NewNotifyHandler 创建通知连接处理器
func NewNotifyHandler(jwtCfg config.JWTConfig, hub *notify.Hub) *NotifyHandler {
	return &NotifyHandler{
		jwtCfg: jwtCfg,
		hub:    hub,
	}
}

// ServeWS 处理通知 WebSocket 握手与接入
// 执行流程：
// 1. 从 query 或 Header 中读取 token 鉴权（浏览器 WebSocket API 不支持自定义 Header）。
// 2. 完成协议升级。
// 3. 注册到 hub，进入连接读写循环。
func (h *NotifyHandler) ServeWS(c *gin.Context) {
	userID, err := h.authenticate(c)
	if err != nil {
		// 握手前还未升级为 WebSocket，用 HTTP JSON 返回更直观
		result.Fail(c, consts.CodeInvalidToken)
		return
	}

	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn(middleware.NewContextWithGin(c), "WebSocket 升级失败",
			logger.Int64("user_id", userID),
			logger.ErrorField("error", err),
		)
		return
	}

	ctx := middleware.NewContextWithGin(c)
	client := notify.NewClient(conn, userID, util.NewUUID())
	if replaced := h.hub.Register(client); replaced != nil {
		replaced.Close()
	}
	middleware.SetActiveWSConnections(h.hub.Count())

	logger.Info(ctx, "通知连接已建立",
		logger.Int64("user_id", userID),
		logger.Int("online_count", h.hub.Count()),
	)

	client.Run(ctx, func() {
		h.hub.Unregister(client)
		middleware.SetActiveWSConnections(h.hub.Count())
		logger.Info(ctx, "通知连接已断开",
			logger.Int64("user_id", userID),
			logger.Int("online_count", h.hub.Count()),
		)
	})
}

// authenticate 握手阶段鉴权
// token 优先取 query 参数，其次取 Authorization: Bearer 头
func (h *NotifyHandler) authenticate(c *gin.Context) (int64, error) {
	token := c.Query("token")
	if token == "" {
		authHeader := c.GetHeader("Authorization")
		if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && parts[0] == "Bearer" {
			token = parts[1]
		}
	}

	claims, err := utils.ParseToken(h.jwtCfg, token)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}
