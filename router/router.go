package router

import (
	"fmt"
	"net/url"
	"time"

	"assetbook/api"
	"assetbook/config"
	_ "assetbook/docs"
	"assetbook/middleware"
	"assetbook/models"
	"assetbook/service"
	"assetbook/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Services 路由依赖的服务
type Services struct {
	Store       *store.Store
	Credentials *service.CredentialStore
	Settings    *service.SettingsStore
	Reminders   *service.ReminderService
	Mailer      *service.EmailService
	Events      *api.EventHub
	Logger      logrus.FieldLogger
}

// 登录限流：每个 IP 每分钟 5 次
const (
	loginMaxAttempts = 5
	loginWindow      = time.Minute
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, svc Services) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{Formatter: accessLogFormatter}), gin.Recovery())
	// 标签页名称可以包含 /
	r.UseRawPath = true

	// CORS 中间件
	r.Use(CORSMiddleware())

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	logger := svc.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	v1 := r.Group("/api/v1")
	{
		// 认证相关路由（无需登录）
		authHandler := api.NewAuthHandler(svc.Credentials, svc.Settings, logger)
		auth := v1.Group("/auth")
		{
			auth.GET("/status", authHandler.Status)
			auth.POST("/setup", middleware.LoginRateLimit(loginMaxAttempts, loginWindow), authHandler.Setup)
			auth.POST("/login", middleware.LoginRateLimit(loginMaxAttempts, loginWindow), authHandler.Login)
		}

		// 需要会话的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			authorized.POST("/auth/lock", authHandler.Lock)
			authorized.PUT("/auth/password", authHandler.ChangePassword)

			settingsHandler := api.NewSettingsHandler(svc.Settings)
			authorized.GET("/settings", settingsHandler.Get)
			authorized.PUT("/settings", settingsHandler.Update)

			tabHandler := api.NewTabHandler(svc.Store)
			assetHandler := api.NewAssetHandler(svc.Store, func() models.Date { return models.DateOf(time.Now()) })
			exportHandler := api.NewExportHandler(svc.Store)
			tabs := authorized.Group("/tabs")
			{
				tabs.GET("", tabHandler.List)
				tabs.POST("", tabHandler.Create)
				tabs.PUT("/:tab", tabHandler.Rename)
				tabs.DELETE("/:tab", tabHandler.Delete)
				tabs.GET("/:tab/total", tabHandler.Total)

				tabs.GET("/:tab/assets", assetHandler.List)
				tabs.POST("/:tab/assets", assetHandler.Create)
				tabs.DELETE("/:tab/assets", assetHandler.Delete)
				tabs.GET("/:tab/assets/:id", assetHandler.Get)
				tabs.PUT("/:tab/assets/:id", assetHandler.Update)

				tabs.GET("/:tab/export/csv", exportHandler.ExportCSV)
				tabs.GET("/:tab/export/xlsx", exportHandler.ExportXLSX)
				tabs.POST("/:tab/import/csv", exportHandler.ImportCSV)
			}

			if svc.Reminders != nil {
				var mailer api.TestMailer
				if svc.Mailer != nil {
					mailer = svc.Mailer
				}
				reminderHandler := api.NewReminderHandler(svc.Reminders, mailer)
				authorized.GET("/reminders", reminderHandler.List)
				authorized.POST("/reminders/send", reminderHandler.Send)
				authorized.POST("/reminders/test-mail", reminderHandler.TestMail)
			}

			calcHandler := api.NewCalcHandler()
			authorized.POST("/calc", calcHandler.Evaluate)
		}
	}

	// 事件流：EventSource 只能用 token 查询参数认证
	if svc.Events != nil {
		v1.GET("/events", middleware.StreamAuth(), svc.Events.Stream)
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// accessLogFormatter 与 gin 默认格式相同，但不把会话 token 写进日志
func accessLogFormatter(p gin.LogFormatterParams) string {
	path := p.Path
	if u, err := url.Parse(path); err == nil && u.Query().Has("token") {
		q := u.Query()
		q.Set("token", "REDACTED")
		u.RawQuery = q.Encode()
		path = u.String()
	}
	if p.Latency > time.Minute {
		p.Latency = p.Latency.Truncate(time.Second)
	}
	return fmt.Sprintf("[GIN] %v | %3d | %13v | %15s | %-7s %#v\n%s",
		p.TimeStamp.Format("2006/01/02 - 15:04:05"),
		p.StatusCode,
		p.Latency,
		p.ClientIP,
		p.Method,
		path,
		p.ErrorMessage,
	)
}

// CORSMiddleware CORS 跨域中间件，前端需要读取续期 token 和下载文件名
func CORSMiddleware() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AddAllowHeaders("Authorization", "Accept", "Cache-Control", "X-Requested-With")
	corsConfig.AddExposeHeaders(middleware.SessionHeader, "Content-Disposition")
	return cors.New(corsConfig)
}
