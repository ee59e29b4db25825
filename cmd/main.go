package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	v1 "community_portal/api/v1"
	"community_portal/config"
	"community_portal/dao"
	"community_portal/internal/auth"
	"community_portal/internal/mail"
	"community_portal/internal/notify"
	myvalidator "community_portal/internal/validator"
	"community_portal/middleware"
	"community_portal/model"
	"community_portal/service"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../"
	}
	config.InitConfig(configPath)
	config.InitRedis()

	db, err := gorm.Open(mysql.Open(config.GlobalConfig.MySQL.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.Comment{},
		&model.Like{},
		&model.Notice{},
		&model.Subscriber{},
	); err != nil {
		panic(err)
	}

	// Store-facing layer. One gateway instance per process, injected down.
	userDAO := dao.NewUserDAO(db)
	postDAO := dao.NewPostDAO(db)
	noticeDAO := dao.NewNoticeDAO(db)
	subscriberDAO := dao.NewSubscriberDAO(db)

	sender := mail.NewSMTPSender(config.GlobalConfig.Mail)
	dispatcher := notify.NewDispatcher(subscriberDAO, sender)
	otpStore := auth.NewOTPStore(config.RedisClient)

	subscriberService := service.NewSubscriberService(subscriberDAO)
	userService := service.NewUserService(userDAO, subscriberService, otpStore, sender)
	postService := service.NewPostService(postDAO, userDAO)
	noticeService := service.NewNoticeService(noticeDAO, dispatcher)

	userAPI := v1.NewUserAPI(userService)
	authAPI := v1.NewAuthAPI(userService)
	postAPI := v1.NewPostAPI(postService)
	noticeAPI := v1.NewNoticeAPI(noticeService)
	subscriberAPI := v1.NewSubscriberAPI(subscriberService)

	r := gin.Default()
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("nepaliphone", myvalidator.IsNepaliPhone); err != nil {
			panic(err)
		}
	}

	public := r.Group("/api/v1")
	{
		public.POST("/users", userAPI.Register)
		loginLimiter := middleware.LoginRateLimiter(config.RedisClient, 5, time.Minute)
		public.POST("/auth/login", loginLimiter, authAPI.Login)
		public.POST("/auth/forgot-password", authAPI.ForgotPassword)
		public.POST("/auth/verify-otp", authAPI.VerifyOTP)

		public.GET("/posts", postAPI.List)
		public.GET("/posts/:id", postAPI.Get)
		public.GET("/notices", noticeAPI.List)
		public.GET("/notices/:id", noticeAPI.Get)
		public.POST("/subscribers", subscriberAPI.Subscribe)
	}

	private := r.Group("/api/v1")
	private.Use(middleware.AuthMiddleware())
	{
		private.POST("/auth/change-password", authAPI.ChangePassword)

		private.GET("/users/me", userAPI.Me)
		private.GET("/users", userAPI.List)
		private.GET("/users/:id", userAPI.Get)
		private.PUT("/users/:id", userAPI.Update)
		private.DELETE("/users/:id", userAPI.Delete)

		private.POST("/posts", postAPI.Create)
		private.PUT("/posts/:id", postAPI.Update)
		private.DELETE("/posts/:id", postAPI.Delete)
		private.POST("/posts/:id/comments", postAPI.Comment)
		private.POST("/posts/:id/like", postAPI.Like)

		private.POST("/notices", noticeAPI.Create)
		private.PUT("/notices/:id", noticeAPI.Update)
		private.DELETE("/notices/:id", noticeAPI.Delete)

		private.GET("/subscribers", subscriberAPI.List)
		private.PUT("/subscribers/:id", subscriberAPI.Update)
		private.DELETE("/subscribers/:id", subscriberAPI.Delete)
	}

	if err := r.Run(config.GlobalConfig.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
