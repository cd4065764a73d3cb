package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"assetbook/api"
	"assetbook/config"
	"assetbook/middleware"
	"assetbook/router"
	"assetbook/service"
	"assetbook/store"

	"golang.org/x/sync/errgroup"
)

// @title 자산 관리 API
// @version 1.0
// @description 탭별 자산 기록, CSV/Excel 가져오기·내보내기, 만기 알림, 계산기를 제공하는 개인 자산 관리 API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

const version = "1.0.0"

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 8080 或 :8080")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Println("assetbook v" + version)
		return
	}

	// 加载配置（内置配置 + 可选的外部配置覆盖）
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		config.GetLogger().WithError(err).Fatal("설정을 불러오지 못했습니다")
	}

	// 命令行参数覆盖端口配置
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
	}

	logger := config.SetupLogger(cfg.Log)
	config.PrintConfig()

	// 数据文件
	events := api.NewEventHub(logger)
	assets := store.New(cfg.Data.AssetsPath(), store.WithLogger(logger), store.WithObserver(events))
	creds := service.NewCredentialStore(cfg.Data.PasswordPath(), logger)
	settings := service.NewSettingsStore(cfg.Data.SettingsPath(), logger)

	// 会话
	middleware.InitJWT(cfg, creds.Fingerprint, func() time.Duration {
		return time.Duration(settings.AutoLockMinutes()) * time.Minute
	})

	// 到期提醒
	var sender service.DigestSender
	var mailer *service.EmailService
	if cfg.Email.Enabled {
		mailer = service.NewEmailService(&cfg.Email)
		sender = mailer
	}
	reminders := service.NewReminderService(assets, sender,
		time.Duration(cfg.Reminder.CheckIntervalMinutes)*time.Minute, logger)

	r := router.SetupRouter(cfg, router.Services{
		Store:       assets,
		Credentials: creds,
		Settings:    settings,
		Reminders:   reminders,
		Mailer:      mailer,
		Events:      events,
		Logger:      logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:              cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		// 关闭时结束事件流连接
		BaseContext: func(net.Listener) context.Context { return gctx },
	}

	g.Go(func() error {
		logger.Info("==========================================")
		logger.Info("  💰 자산 관리 서버 시작")
		logger.Info("==========================================")
		logger.Infof("  API:      http://localhost%s/api/v1/", cfg.Server.Port)
		logger.Infof("  Swagger:  http://localhost%s/swagger/index.html", cfg.Server.Port)
		logger.Info("==========================================")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("服务器启动失败: %w", err)
		}
		return nil
	})

	if cfg.Reminder.Enabled {
		g.Go(func() error {
			return reminders.Run(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("서버를 종료합니다")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.WithError(err).Fatal("서버 오류")
	}
}
