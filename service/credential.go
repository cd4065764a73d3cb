package service

import (
	"bytes"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"assetbook/store"

	"github.com/sirupsen/logrus"
)

var (
	ErrPasswordNotSet     = errors.New("마스터 비밀번호가 설정되지 않았습니다")
	ErrPasswordAlreadySet = errors.New("마스터 비밀번호가 이미 설정되어 있습니다")
	ErrWrongPassword      = errors.New("비밀번호가 올바르지 않습니다")
	ErrEmptyPassword      = errors.New("새 비밀번호를 입력해주세요")
	ErrPasswordMismatch   = errors.New("새 비밀번호가 일치하지 않습니다")
	ErrPasswordUnchanged  = errors.New("새 비밀번호는 현재 비밀번호와 달라야 합니다")
)

const saltBytes = 16

// credentialFile 密码文件格式
type credentialFile struct {
	Hash string `json:"hash"`
	Salt string `json:"salt"`
}

// CredentialStore 主密码：只保存加盐 SHA-256 摘要
type CredentialStore struct {
	mu   sync.RWMutex
	path string
	hash string
	salt string
	log  logrus.FieldLogger
}

// NewCredentialStore 读取密码文件；不存在或格式错误时视为未设置
func NewCredentialStore(path string, logger logrus.FieldLogger) *CredentialStore {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	c := &CredentialStore{path: path, log: logger.WithField("path", path)}
	c.load()
	return c
}

func (c *CredentialStore) load() {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return
	}
	if err != nil {
		c.log.WithError(err).Warn("비밀번호 파일을 읽을 수 없습니다")
		return
	}
	var f credentialFile
	if err := json.Unmarshal(data, &f); err != nil {
		c.log.WithError(err).Warn("비밀번호 파일 형식이 올바르지 않습니다")
		return
	}
	if f.Hash == "" || f.Salt == "" {
		return
	}
	c.hash, c.salt = f.Hash, f.Salt
}

func hashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

// IsSet 是否已设置主密码
func (c *CredentialStore) IsSet() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hash != ""
}

// Fingerprint 当前密码摘要，用于派生会话签名密钥；未设置时为空
func (c *CredentialStore) Fingerprint() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hash
}

// Verify 校验密码；未设置主密码时总是返回 false
func (c *CredentialStore) Verify(password string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.verifyLocked(password)
}

func (c *CredentialStore) verifyLocked(password string) bool {
	if c.hash == "" {
		return false
	}
	got := hashPassword(password, c.salt)
	return subtle.ConstantTimeCompare([]byte(got), []byte(c.hash)) == 1
}

// Setup 首次设置主密码
func (c *CredentialStore) Setup(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.hash != "" {
		return ErrPasswordAlreadySet
	}
	if err := c.setLocked(password); err != nil {
		return err
	}
	c.log.Info("마스터 비밀번호 설정 완료")
	return nil
}

// Change 修改主密码。依次检查：当前密码正确、新密码非空、两次输入一致、与当前密码不同。
func (c *CredentialStore) Change(current, newPassword, confirm string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.hash == "" {
		return ErrPasswordNotSet
	}
	if !c.verifyLocked(current) {
		return ErrWrongPassword
	}
	if newPassword == "" {
		return ErrEmptyPassword
	}
	if newPassword != confirm {
		return ErrPasswordMismatch
	}
	if newPassword == current {
		return ErrPasswordUnchanged
	}
	if err := c.setLocked(newPassword); err != nil {
		return err
	}
	c.log.Info("마스터 비밀번호 변경 완료")
	return nil
}

// setLocked 生成新盐并写盘，写盘成功后才替换内存中的值
func (c *CredentialStore) setLocked(password string) error {
	raw := make([]byte, saltBytes)
	if _, err := rand.Read(raw); err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}
	salt := hex.EncodeToString(raw)
	hash := hashPassword(password, salt)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "    ")
	if err := enc.Encode(credentialFile{Hash: hash, Salt: salt}); err != nil {
		return fmt.Errorf("encode credential: %w", err)
	}
	if err := store.WriteFileAtomic(c.path, buf.Bytes(), 0o600); err != nil {
		c.log.WithError(err).Error("비밀번호 파일 저장 실패")
		return fmt.Errorf("%w: write %s: %v", store.ErrIO, c.path, err)
	}
	c.hash, c.salt = hash, salt
	return nil
}
