package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/school-forum-api/api/swagger"
	"github.com/noah-isme/school-forum-api/internal/handler"
	"github.com/noah-isme/school-forum-api/internal/middleware"
	"github.com/noah-isme/school-forum-api/internal/repository"
	"github.com/noah-isme/school-forum-api/internal/service"
	"github.com/noah-isme/school-forum-api/pkg/cache"
	"github.com/noah-isme/school-forum-api/pkg/config"
	"github.com/noah-isme/school-forum-api/pkg/database"
	"github.com/noah-isme/school-forum-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/school-forum-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/school-forum-api/pkg/middleware/requestid"
)

// @title School Forum API
// @version 0.1.0
// @description Forum backend with moderation and class roster management
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	var cacheRepo *repository.CacheRepository
	if cfg.PrivilegeCache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, privilege cache disabled", "error", err)
		} else {
			cacheRepo = repository.NewCacheRepository(redisClient, logr)
			defer cacheRepo.Close() //nolint:errcheck
		}
	}

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
	}

	accountRepo := repository.NewAccountRepository(db)
	privilegeRepo := repository.NewPrivilegeRepository(db)
	postRepo := repository.NewPostRepository(db)
	replyRepo := repository.NewReplyRepository(db)
	classRepo := repository.NewClassRepository(db)
	studentRepo := repository.NewStudentRepository(db)

	// A typed nil in the cache interface would defeat the nil checks inside
	// the service, so the nil case is passed explicitly.
	var privilegeSvc *service.PrivilegeService
	if cacheRepo != nil {
		privilegeSvc = service.NewPrivilegeService(privilegeRepo, cacheRepo, cfg.PrivilegeCache.TTL, metricsSvc, logr)
	} else {
		privilegeSvc = service.NewPrivilegeService(privilegeRepo, nil, cfg.PrivilegeCache.TTL, metricsSvc, logr)
	}

	authSvc := service.NewAuthService(accountRepo, privilegeRepo, nil, logr)
	forumSvc := service.NewForumService(postRepo, replyRepo, accountRepo, privilegeSvc, nil, logr)
	moderationSvc := service.NewModerationService(postRepo, replyRepo, privilegeSvc, logr)
	classSvc := service.NewClassService(classRepo, privilegeSvc, logr)
	studentSvc := service.NewStudentService(studentRepo, postRepo, logr)

	authHandler := handler.NewAuthHandler(authSvc)
	postHandler := handler.NewPostHandler(forumSvc)
	moderationHandler := handler.NewModerationHandler(moderationSvc)
	classHandler := handler.NewClassHandler(classSvc)
	studentHandler := handler.NewStudentHandler(studentSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if metricsSvc != nil {
		r.Use(middleware.Metrics(metricsSvc))
	}

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello World")
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.POST("/login-check-student", authHandler.LoginStudent)
	r.POST("/login-check-teacher", authHandler.LoginTeacher)
	r.POST("/login-check-admin", authHandler.LoginAdmin)
	r.POST("/sign-up", authHandler.SignUp)

	r.POST("/post-upload", postHandler.Upload)
	r.GET("/post-list", postHandler.List)
	r.GET("/post-by-category", postHandler.ListByCategory)
	r.POST("/my-post-list", postHandler.MyPosts)
	r.GET("/get-post", postHandler.Get)
	r.GET("/get-post-replies", postHandler.Replies)
	r.POST("/post-reply", postHandler.Reply)

	r.POST("/block-post", moderationHandler.BlockPost)
	r.POST("/validate-post", moderationHandler.ValidatePost)
	r.POST("/block-reply", moderationHandler.BlockReply)
	r.POST("/validate-reply", moderationHandler.ValidateReply)
	r.GET("/pending-content", moderationHandler.Pending)

	r.GET("/get-classes", classHandler.List)
	r.POST("/create-class", classHandler.Create)
	r.POST("/delete-class", classHandler.Delete)
	r.POST("/rename-class", classHandler.Rename)
	r.POST("/add-student-to-class", classHandler.AddStudent)
	r.POST("/remove-student-from-class", classHandler.RemoveStudent)

	r.GET("/search-students", studentHandler.Search)
	r.GET("/get-student-info", studentHandler.Info)
	r.GET("/get-student-post-count", studentHandler.PostCount)

	if metricsSvc != nil {
		metricsHandler := handler.NewMetricsHandler(metricsSvc)
		r.GET("/metrics", metricsHandler.Scrape)
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
