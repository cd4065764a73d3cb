package config

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Data     DataConfig     `mapstructure:"data"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Email    EmailConfig    `mapstructure:"email"`
	Reminder ReminderConfig `mapstructure:"reminder"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DataConfig 本地数据文件配置
type DataConfig struct {
	Dir          string `mapstructure:"dir"`
	AssetsFile   string `mapstructure:"assets_file"`
	PasswordFile string `mapstructure:"password_file"`
	SettingsFile string `mapstructure:"settings_file"`
}

// JWTConfig JWT配置
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

// EmailConfig 邮件配置
type EmailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	To       string `mapstructure:"to"`
}

// ReminderConfig 到期提醒配置
type ReminderConfig struct {
	Enabled              bool `mapstructure:"enabled"`
	CheckIntervalMinutes int  `mapstructure:"check_interval_minutes"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var (
	// GlobalConfig 全局配置实例
	GlobalConfig *Config
)

// LoadConfig 加载配置
// 优先级: 环境变量 > 外部配置文件 > 嵌入的默认配置
// configPath: 可选的外部配置文件路径
func LoadConfig(configPath string) (*Config, error) {
	// .env 只补充尚未设置的环境变量
	_ = godotenv.Load()

	log := GetLogger()

	v := viper.New()
	v.SetConfigType("yaml")

	// 1. 首先加载嵌入的默认配置
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("读取内置配置失败: %w", err)
	}
	log.Debug("已加载内置默认配置")

	// 2. 尝试加载外部配置文件（可选，用于覆盖默认配置）
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			log.WithError(err).WithField("path", configPath).Warn("无法读取指定配置文件")
		} else {
			log.WithField("path", configPath).Info("已合并外部配置文件")
		}
	} else {
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("/etc/assetbook")
		externalViper.AddConfigPath("$HOME/.assetbook")

		if err := externalViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				log.WithError(err).Warn("合并外部配置失败")
			} else {
				log.WithField("path", externalViper.ConfigFileUsed()).Info("已合并外部配置文件")
			}
		}
	}

	// 3. 环境变量覆盖，如 ASSETBOOK_SERVER_PORT
	v.SetEnvPrefix("ASSETBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	cfg.normalize()

	GlobalConfig = &cfg

	return &cfg, nil
}

func (c *Config) normalize() {
	if c.Server.Port != "" && !strings.HasPrefix(c.Server.Port, ":") {
		c.Server.Port = ":" + c.Server.Port
	}
	if c.Data.Dir == "" {
		c.Data.Dir = "."
	}
	if c.Data.AssetsFile == "" {
		c.Data.AssetsFile = "assets.json"
	}
	if c.Data.PasswordFile == "" {
		c.Data.PasswordFile = "master_password.json"
	}
	if c.Data.SettingsFile == "" {
		c.Data.SettingsFile = "settings.json"
	}
	if c.Reminder.CheckIntervalMinutes <= 0 {
		c.Reminder.CheckIntervalMinutes = 60
	}
}

// AssetsPath 资产数据文件路径
func (d DataConfig) AssetsPath() string {
	return d.resolve(d.AssetsFile)
}

// PasswordPath 主密码文件路径
func (d DataConfig) PasswordPath() string {
	return d.resolve(d.PasswordFile)
}

// SettingsPath 设置文件路径
func (d DataConfig) SettingsPath() string {
	return d.resolve(d.SettingsFile)
}

func (d DataConfig) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(d.Dir, name)
}

// PrintConfig 打印当前配置（隐藏敏感信息）
func PrintConfig() {
	if GlobalConfig == nil {
		return
	}
	GetLogger().WithFields(map[string]interface{}{
		"port":     GlobalConfig.Server.Port,
		"mode":     GlobalConfig.Server.Mode,
		"assets":   GlobalConfig.Data.AssetsPath(),
		"settings": GlobalConfig.Data.SettingsPath(),
		"email":    GlobalConfig.Email.Enabled,
		"reminder": GlobalConfig.Reminder.Enabled,
	}).Info("当前配置")
}
