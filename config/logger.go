package config

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var logg = newDefaultLogger()

func newDefaultLogger() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	l.SetOutput(os.Stdout)
	return l
}

// GetLogger 获取全局日志实例
func GetLogger() *logrus.Logger {
	return logg
}

// SetupLogger 按配置调整日志级别与格式
func SetupLogger(cfg LogConfig) *logrus.Logger {
	if lvl, err := logrus.ParseLevel(strings.ToLower(cfg.Level)); err == nil {
		logg.SetLevel(lvl)
	} else if cfg.Level != "" {
		logg.WithField("level", cfg.Level).Warn("未知日志级别，使用 info")
	}
	if strings.EqualFold(cfg.Format, "json") {
		logg.SetFormatter(&logrus.JSONFormatter{})
	}
	return logg
}

// LogError 记录带模块上下文的错误
func LogError(logger logrus.FieldLogger, moduleName, funcName string, data any, err error) {
	fields := logrus.Fields{
		"module":   moduleName,
		"funcName": funcName,
	}
	if data != nil {
		fields["data"] = data
	}
	logger.WithFields(fields).Error(err.Error())
}
