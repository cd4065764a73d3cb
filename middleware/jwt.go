package middleware

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"assetbook/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/hkdf"
)

var (
	ErrNoSigningKey  = errors.New("세션 서명 키가 없습니다. 마스터 비밀번호를 먼저 설정하세요")
	ErrSessionLocked = errors.New("잠금 이후의 세션이 아닙니다")
	ErrInvalidToken  = errors.New("유효하지 않은 토큰입니다")
)

const (
	// SessionHeader 滑动续期后的新 token
	SessionHeader = "X-Session-Token"
	hkdfInfo      = "assetbook session v1"
	ctxSessionID  = "sessionID"
	ctxLocked     = "sessionLocked"
)

// Claims 会话声明
type Claims struct {
	Epoch string `json:"epoch"`
	jwt.RegisteredClaims
}

type jwtState struct {
	mu          sync.RWMutex
	secret      string
	fingerprint func() string
	ttl         func() time.Duration
	epoch       string

	// 锁定时关闭，通知仍在运行的长连接
	locked chan struct{}
}

var sessions = &jwtState{}

// InitJWT 初始化会话签名。
// 配置了 jwt.secret 时用它派生密钥，否则用 fingerprint（主密码摘要）派生，改密码后旧会话全部失效。
// ttl 返回会话空闲超时，即自动锁定时间。
func InitJWT(cfg *config.Config, fingerprint func() string, ttl func() time.Duration) {
	sessions.mu.Lock()
	defer sessions.mu.Unlock()
	sessions.secret = ""
	if cfg != nil {
		sessions.secret = cfg.JWT.Secret
	}
	sessions.fingerprint = fingerprint
	sessions.ttl = ttl
	if sessions.locked != nil {
		close(sessions.locked)
	}
	sessions.epoch = uuid.NewString()
	sessions.locked = make(chan struct{})
}

// LockSessions 立即锁定：之前签发的所有 token 失效
func LockSessions() {
	sessions.mu.Lock()
	defer sessions.mu.Unlock()
	if sessions.locked != nil {
		close(sessions.locked)
	}
	sessions.epoch = uuid.NewString()
	sessions.locked = make(chan struct{})
}

// lockedSignal epoch 已失效时返回已关闭的 channel
func lockedSignal(epoch string) <-chan struct{} {
	sessions.mu.RLock()
	defer sessions.mu.RUnlock()
	if epoch == sessions.epoch && sessions.locked != nil {
		return sessions.locked
	}
	closed := make(chan struct{})
	close(closed)
	return closed
}

func signingKey() ([]byte, error) {
	sessions.mu.RLock()
	secret, fingerprint := sessions.secret, sessions.fingerprint
	sessions.mu.RUnlock()

	ikm := secret
	if ikm == "" && fingerprint != nil {
		ikm = fingerprint()
	}
	if ikm == "" {
		return nil, ErrNoSigningKey
	}
	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(ikm), nil, []byte(hkdfInfo)), key); err != nil {
		return nil, fmt.Errorf("derive session key: %w", err)
	}
	return key, nil
}

func sessionTTL() time.Duration {
	sessions.mu.RLock()
	ttl := sessions.ttl
	sessions.mu.RUnlock()
	if ttl == nil {
		return 5 * time.Minute
	}
	if d := ttl(); d > 0 {
		return d
	}
	return 5 * time.Minute
}

func currentEpoch() string {
	sessions.mu.RLock()
	defer sessions.mu.RUnlock()
	return sessions.epoch
}

// GenerateToken 签发新会话
func GenerateToken() (string, error) {
	return signToken(uuid.NewString())
}

func signToken(sessionID string) (string, error) {
	key, err := signingKey()
	if err != nil {
		return "", err
	}
	now := time.Now()
	claims := Claims{
		Epoch: currentEpoch(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Issuer:    "assetbook",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL())),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

// ParseToken 校验签名、有效期和锁定状态
func ParseToken(tokenString string) (*Claims, error) {
	key, err := signingKey()
	if err != nil {
		return nil, err
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Epoch != currentEpoch() {
		return nil, ErrSessionLocked
	}
	return claims, nil
}

func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// JWTAuth 会话校验中间件，每次请求通过后在 X-Session-Token 返回续期的 token
func JWTAuth() gin.HandlerFunc {
	return authenticate(bearerToken)
}

// StreamAuth 用于事件流：EventSource 无法设置请求头，额外接受 token 查询参数
func StreamAuth() gin.HandlerFunc {
	return authenticate(func(c *gin.Context) string {
		if token := bearerToken(c); token != "" {
			return token
		}
		return c.Query("token")
	})
}

func authenticate(tokenFromRequest func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"code": http.StatusUnauthorized, "message": "로그인이 필요합니다"})
			c.Abort()
			return
		}

		claims, err := ParseToken(tokenString)
		if err != nil {
			message := "세션이 만료되었습니다. 다시 로그인해주세요"
			if errors.Is(err, ErrSessionLocked) {
				message = "잠금 상태입니다. 다시 로그인해주세요"
			}
			c.JSON(http.StatusUnauthorized, gin.H{"code": http.StatusUnauthorized, "message": message})
			c.Abort()
			return
		}

		if refreshed, err := signToken(claims.ID); err == nil {
			c.Header(SessionHeader, refreshed)
		}
		c.Set(ctxSessionID, claims.ID)
		c.Set(ctxLocked, lockedSignal(claims.Epoch))
		c.Next()
	}
}

// SessionLocked 当前会话被锁定时关闭；未经过认证的请求返回 nil
func SessionLocked(c *gin.Context) <-chan struct{} {
	if v, ok := c.Get(ctxLocked); ok {
		if ch, ok := v.(<-chan struct{}); ok {
			return ch
		}
	}
	return nil
}

// GetSessionID 当前会话编号
func GetSessionID(c *gin.Context) string {
	if v, ok := c.Get(ctxSessionID); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
