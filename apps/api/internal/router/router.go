package router

import (
	"BridgerServer/apps/api/internal/middleware"
	v1 "BridgerServer/apps/api/internal/router/v1"
	"BridgerServer/config"
	"BridgerServer/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers 路由依赖的处理器集合（依赖注入）
type Handlers struct {
	Auth       *v1.AuthHandler
	Friend     *v1.FriendHandler
	Reward     *v1.RewardHandler
	Venue      *v1.VenueHandler
	Feedback   *v1.FeedbackHandler
	Star       *v1.StarHandler
	Visit      *v1.VisitHandler
	Volunteer  *v1.VolunteerHandler
	Submission *v1.SubmissionHandler
	Stats      *v1.StatsHandler
	Notify     *v1.NotifyHandler
}

// InitRouter 初始化路由
func InitRouter(serverCfg config.ServerConfig, jwtCfg config.JWTConfig, rateCfg config.RateLimitConfig, h *Handlers) *gin.Engine {
	r := gin.New()

	// 恢复中间件
	r.Use(middleware.GinRecovery(true))

	// 追踪中间件 (生成 trace_id)
	r.Use(util.TraceLogger())

	// 客户端 IP 中间件
	r.Use(middleware.ClientIPMiddleware())

	// 日志中间件
	r.Use(middleware.GinLogger())

	// Prometheus 监控中间件
	r.Use(middleware.PrometheusMiddleware())

	// 跨域中间件
	r.Use(middleware.CorsMiddleware())

	// 请求超时中间件
	r.Use(middleware.TimeoutMiddleware(serverCfg.RequestTimeout))

	// 健康检查（无需认证）
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Prometheus 指标暴露接口
	// Prometheus 会定时访问这个接口来拉取监控数据
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API 路由组
	api := r.Group("/api")
	{
		// 公开接口（不需要认证），按 IP 限流防匿名刷接口
		public := api.Group("")
		public.Use(middleware.IPRateLimitMiddleware(rateCfg))
		{
			auth := public.Group("/auth")
			{
				auth.POST("/register", h.Auth.Register)
				auth.POST("/login", h.Auth.Login)
			}

			// 场所浏览对未登录用户开放
			public.GET("/venues", h.Venue.ListVenues)
			public.GET("/venues/:id", h.Venue.GetVenue)
			public.GET("/feedback/:venueId", h.Feedback.ListVenueFeedback)

			// 志愿者报名不要求注册账号
			public.POST("/volunteer", h.Volunteer.Apply)

			// 平台统计（对外展示页）
			public.GET("/stats", h.Stats.GetStats)

			// 用户搜索无需登录
			public.GET("/friends/search", h.Friend.SearchUsers)
		}

		// 通知长连接（token 走 query 参数，握手阶段自行鉴权）
		api.GET("/notifications/ws", h.Notify.ServeWS)

		// 需要认证的接口，按用户限流
		authed := api.Group("")
		authed.Use(middleware.JWTAuthMiddleware(jwtCfg))
		authed.Use(middleware.UserRateLimitMiddleware(rateCfg))
		{
			// 个人主页聚合
			authed.GET("/users/me", h.Auth.Me)

			// 好友
			friends := authed.Group("/friends")
			{
				friends.POST("/send", h.Friend.SendRequest)
				friends.GET("/requests", h.Friend.GetPendingRequests)
				friends.POST("/accept", h.Friend.AcceptRequest)
				friends.POST("/decline", h.Friend.DeclineRequest)
			}

			// 积分兑换
			rewards := authed.Group("/rewards")
			{
				rewards.POST("/redeem", h.Reward.Redeem)
				rewards.GET("/tiers", h.Reward.ListTiers)
				rewards.GET("/history", h.Reward.ListHistory)
			}

			// 场所照片上传
			authed.POST("/venues/:id/photo", h.Venue.UploadPhoto)

			// 反馈提交
			authed.POST("/feedback", h.Feedback.CreateFeedback)

			// 收藏
			authed.POST("/starred", h.Star.StarVenue)
			authed.GET("/starred", h.Star.ListStarred)

			// 到访记录
			authed.POST("/user-visit", h.Visit.RecordVisit)

			// 场所提交（提交需登录，审核走管理端）
			submission := authed.Group("/locationSubmission")
			{
				submission.POST("", h.Submission.Submit)
				submission.GET("", h.Submission.ListSubmissions)
				submission.POST("/accept/:id", h.Submission.Accept)
				submission.DELETE("/:id", h.Submission.Delete)
			}

			// 管理端
			admin := authed.Group("/admin")
			{
				admin.GET("/users", h.Auth.ListUsers)
				admin.GET("/volunteers", h.Volunteer.ListVolunteers)
			}
		}
	}

	return r
}
