package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"BridgerServer/apps/api/internal/geo"
	"BridgerServer/apps/api/internal/notify"
	"BridgerServer/apps/api/internal/repository"
	"BridgerServer/apps/api/internal/router"
	v1 "BridgerServer/apps/api/internal/router/v1"
	"BridgerServer/apps/api/internal/service"
	"BridgerServer/apps/api/mq"
	"BridgerServer/config"
	"BridgerServer/pkg/async"
	"BridgerServer/pkg/kafka"
	"BridgerServer/pkg/logger"
	"BridgerServer/pkg/mail"
	"BridgerServer/pkg/minio"
	"BridgerServer/pkg/mysql"
	pkgredis "BridgerServer/pkg/redis"
	"BridgerServer/pkg/util"

	"github.com/joho/godotenv"
)

func main() {
	// 本地开发加载 .env，生产环境直接用进程环境变量
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. 初始化日志
	logCfg := config.DefaultLoggerConfig()
	zl, err := logger.Build(logCfg)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	logger.ReplaceGlobal(zl)
	defer zl.Sync()

	// 2. 初始化MySQL
	dbCfg := config.DefaultMySQLConfig()
	dbCfg.Host = config.EnvString("MYSQL_HOST", dbCfg.Host)
	dbCfg.Port = config.EnvInt("MYSQL_PORT", dbCfg.Port)
	dbCfg.User = config.EnvString("MYSQL_USER", dbCfg.User)
	dbCfg.Password = config.EnvString("MYSQL_PASSWORD", dbCfg.Password)
	dbCfg.Database = config.EnvString("MYSQL_DATABASE", dbCfg.Database)
	db, err := mysql.Build(dbCfg)
	if err != nil {
		log.Fatalf("初始化MySQL失败: %v", err)
	}
	mysql.ReplaceGlobal(db)

	// 3. 初始化Redis
	redisCfg := config.DefaultRedisConfig()
	redisCfg.Addr = config.EnvString("REDIS_ADDR", redisCfg.Addr)
	redisCfg.Password = config.EnvString("REDIS_PASSWORD", redisCfg.Password)
	// 调整 Redis 读写超时时间为 50ms（快速失败）
	redisCfg.ReadTimeout = 50 * time.Millisecond
	redisCfg.WriteTimeout = 50 * time.Millisecond

	redisClient, err := pkgredis.Build(redisCfg)
	if err != nil {
		// Redis 初始化失败不阻塞启动（降级到只用 MySQL）
		logger.Warn(ctx, "Redis 初始化失败，将降级到 MySQL-Only 模式",
			logger.ErrorField("error", err),
		)
		redisClient = nil
	} else {
		pkgredis.ReplaceGlobal(redisClient)
		logger.Info(ctx, "Redis 初始化成功",
			logger.String("addr", redisCfg.Addr),
		)
	}

	// 4. 初始化 Kafka（仅在 Redis 可用时启动重试队列）
	var kafkaProducer *kafka.Producer
	var redisConsumer *mq.RedisRetryConsumer
	if redisClient != nil {
		kafkaCfg := config.DefaultKafkaConfig()

		// 创建 Kafka Producer
		kafkaProducer = kafka.NewProducer(kafkaCfg.Brokers, kafkaCfg.RedisRetryTopic)
		mq.SetGlobalProducer(kafkaProducer)
		logger.Info(ctx, "Kafka Producer 初始化成功",
			logger.String("brokers", kafkaCfg.Brokers[0]),
			logger.String("topic", kafkaCfg.RedisRetryTopic),
		)

		// 创建 Redis 重试消费者
		redisConsumer = mq.NewRedisRetryConsumer(kafkaCfg, redisClient, kafkaProducer)

		// 启动消费者（在后台 goroutine 中运行）
		go func() {
			logger.Info(ctx, "Redis 重试消费者启动中",
				logger.String("topic", kafkaCfg.RedisRetryTopic),
				logger.String("group_id", kafkaCfg.ConsumerConfig.GroupID),
			)
			if err := redisConsumer.Start(ctx); err != nil {
				logger.Error(ctx, "Redis 重试消费者运行错误", logger.ErrorField("error", err))
			}
		}()

		// 确保程序退出时关闭 Kafka 连接
		defer func() {
			if kafkaProducer != nil {
				if err := kafkaProducer.Close(); err != nil {
					logger.Error(ctx, "关闭 Kafka Producer 失败", logger.ErrorField("error", err))
				}
			}
			if redisConsumer != nil {
				if err := redisConsumer.Close(); err != nil {
					logger.Error(ctx, "关闭 Redis 重试消费者失败", logger.ErrorField("error", err))
				}
			}
		}()
	}

	// 5. 初始化 MinIO（照片存储，失败降级为不可上传）
	var minioClient *minio.MinIOClient
	minioCfg := config.DefaultMinIOConfig()
	minioCfg.Endpoint = config.EnvString("MINIO_ENDPOINT", minioCfg.Endpoint)
	minioCfg.AccessKeyID = config.EnvString("MINIO_ACCESS_KEY", minioCfg.AccessKeyID)
	minioCfg.SecretAccessKey = config.EnvString("MINIO_SECRET_KEY", minioCfg.SecretAccessKey)
	minioClient, err = minio.Build(minioCfg)
	if err != nil {
		logger.Warn(ctx, "MinIO 初始化失败，照片上传不可用",
			logger.ErrorField("error", err),
		)
		minioClient = nil
	} else {
		minio.ReplaceGlobal(minioClient)
	}

	// 6. 初始化邮件与 IP 定位
	mailCfg := config.DefaultMailConfig()
	mailCfg.Password = config.EnvString("MAIL_PASSWORD", mailCfg.Password)
	mailSender := mail.NewSender(mailCfg)

	geoClient := geo.NewClient(config.DefaultGeoConfig())

	// 7. 初始化小组件
	if err := util.InitSnowflake(int64(config.EnvInt("NODE_ID", 1))); err != nil {
		log.Fatalf("初始化雪花算法失败: %v", err)
	}
	if err := async.Init(config.DefaultAsyncConfig()); err != nil {
		log.Fatalf("初始化协程池失败: %v", err)
	}
	defer async.Release()

	// 8. 通知中心
	hub := notify.NewHub()
	defer hub.Shutdown()

	// 9. 组装依赖 - Repository 层
	userRepo := repository.NewUserRepository(db, redisClient)
	friendRepo := repository.NewFriendRepository(db, redisClient)
	requestRepo := repository.NewFriendRequestRepository(db, redisClient)
	rewardRepo := repository.NewRewardRepository(db, redisClient)
	venueRepo := repository.NewVenueRepository(db, redisClient)
	feedbackRepo := repository.NewFeedbackRepository(db, redisClient)
	starRepo := repository.NewStarRepository(db)
	visitRepo := repository.NewVisitRepository(db)
	volunteerRepo := repository.NewVolunteerRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db, redisClient)
	statsRepo := repository.NewStatsRepository(db)

	// 10. 组装依赖 - Service 层
	jwtCfg := config.DefaultJWTConfig()
	jwtCfg.Secret = config.EnvString("JWT_SECRET", jwtCfg.Secret)

	authService := service.NewAuthService(jwtCfg, userRepo, friendRepo, starRepo, visitRepo, rewardRepo, geoClient)
	friendService := service.NewFriendService(userRepo, friendRepo, requestRepo, hub)
	rewardService := service.NewRewardService(userRepo, rewardRepo)
	venueService := service.NewVenueService(venueRepo, minioClient)
	feedbackService := service.NewFeedbackService(userRepo, venueRepo, feedbackRepo)
	starService := service.NewStarService(venueRepo, starRepo)
	visitService := service.NewVisitService(venueRepo, visitRepo)
	volunteerService := service.NewVolunteerService(volunteerRepo, mailSender)
	submissionService := service.NewSubmissionService(submissionRepo)
	statsService := service.NewStatsService(statsRepo)

	// 11. 组装依赖 - Handler 层
	handlers := &router.Handlers{
		Auth:       v1.NewAuthHandler(authService),
		Friend:     v1.NewFriendHandler(friendService),
		Reward:     v1.NewRewardHandler(rewardService),
		Venue:      v1.NewVenueHandler(venueService),
		Feedback:   v1.NewFeedbackHandler(feedbackService),
		Star:       v1.NewStarHandler(starService),
		Visit:      v1.NewVisitHandler(visitService),
		Volunteer:  v1.NewVolunteerHandler(volunteerService),
		Submission: v1.NewSubmissionHandler(submissionService),
		Stats:      v1.NewStatsHandler(statsService),
		Notify:     v1.NewNotifyHandler(jwtCfg, hub),
	}

	// 12. 启动 HTTP Server
	serverCfg := config.DefaultServerConfig()
	serverCfg.Addr = config.EnvString("SERVER_ADDR", serverCfg.Addr)
	rateCfg := config.DefaultRateLimitConfig()

	engine := router.InitRouter(serverCfg, jwtCfg, rateCfg, handlers)
	server := &http.Server{
		Addr:         serverCfg.Addr,
		Handler:      engine,
		ReadTimeout:  serverCfg.ReadTimeout,
		WriteTimeout: serverCfg.WriteTimeout,
	}

	go func() {
		logger.Info(ctx, "API 服务启动中", logger.String("addr", serverCfg.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error(ctx, "HTTP Server 启动失败", logger.ErrorField("error", err))
			stop()
		}
	}()

	// 13. 等待退出信号，优雅关停
	<-ctx.Done()
	logger.Info(context.Background(), "收到退出信号，开始优雅关停")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverCfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error(shutdownCtx, "HTTP Server 关停失败", logger.ErrorField("error", err))
	}

	logger.Info(context.Background(), "API 服务已退出")
}
