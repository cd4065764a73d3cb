package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"assetbook/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// ErrInvalidSettings 设置值不合法
var ErrInvalidSettings = errors.New("설정 값이 올바르지 않습니다")

const (
	// DefaultAutoLockMinutes 默认自动锁定时间（分钟）
	DefaultAutoLockMinutes = 5
	keyAutoLockMinutes     = "auto_lock_minutes"
)

// Settings 用户设置
type Settings struct {
	AutoLockMinutes int `json:"auto_lock_minutes" mapstructure:"auto_lock_minutes"`
}

// SettingsStore 设置文件，读取失败时使用默认值
type SettingsStore struct {
	mu       sync.RWMutex
	path     string
	settings Settings
	log      logrus.FieldLogger
}

// NewSettingsStore 读取设置文件
func NewSettingsStore(path string, logger logrus.FieldLogger) *SettingsStore {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	s := &SettingsStore{
		path:     path,
		settings: Settings{AutoLockMinutes: DefaultAutoLockMinutes},
		log:      logger.WithField("path", path),
	}
	s.load()
	return s
}

func (s *SettingsStore) load() {
	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("json")
	v.SetDefault(keyAutoLockMinutes, DefaultAutoLockMinutes)

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.WithError(err).Warn("설정 파일을 읽을 수 없어 기본값을 사용합니다")
		}
		return
	}

	minutes := v.GetInt(keyAutoLockMinutes)
	if minutes < 1 {
		s.log.WithField(keyAutoLockMinutes, v.Get(keyAutoLockMinutes)).Warn("자동 잠금 시간이 올바르지 않아 기본값을 사용합니다")
		minutes = DefaultAutoLockMinutes
	}
	s.settings.AutoLockMinutes = minutes
}

// Get 当前设置
func (s *SettingsStore) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// AutoLockMinutes 自动锁定时间
func (s *SettingsStore) AutoLockMinutes() int {
	return s.Get().AutoLockMinutes
}

// SetAutoLockMinutes 修改自动锁定时间，最少 1 分钟
func (s *SettingsStore) SetAutoLockMinutes(minutes int) error {
	if minutes < 1 {
		return fmt.Errorf("%w: 자동 잠금 시간은 1분 이상이어야 합니다", ErrInvalidSettings)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.settings
	next.AutoLockMinutes = minutes

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "    ")
	if err := enc.Encode(next); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := store.WriteFileAtomic(s.path, buf.Bytes(), 0o600); err != nil {
		s.log.WithError(err).Error("설정 파일 저장 실패")
		return fmt.Errorf("%w: write %s: %v", store.ErrIO, s.path, err)
	}
	s.settings = next
	s.log.WithField(keyAutoLockMinutes, minutes).Info("설정 저장")
	return nil
}
