package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"moneytracker/config"
	"moneytracker/database"
	"moneytracker/logger"
	"moneytracker/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ContextUserIDKey 上下文中当前用户 ID 的键
const ContextUserIDKey = "userID"

var authCfg = &config.AuthConfig{}

// Claims 身份提供方签发的令牌声明，sub 为用户 ID
type Claims struct {
	Email           string `json:"email,omitempty"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
	jwt.RegisteredClaims
}

// InitAuth 初始化令牌校验配置
func InitAuth(cfg *config.Config) {
	c := cfg.Auth
	if c.SessionTTL <= 0 {
		c.SessionTTL = 7 * 24 * time.Hour
	}
	authCfg = &c
}

// GenerateToken 用共享密钥签发令牌，供本地调试和测试使用
func GenerateToken(claims Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	if claims.Issuer == "" {
		claims.Issuer = authCfg.Issuer
	}
	if len(claims.Audience) == 0 && authCfg.Audience != "" {
		claims.Audience = jwt.ClaimStrings{authCfg.Audience}
	}
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(authCfg.Secret))
}

// ParseToken 校验签名、有效期以及配置的签发方和受众
func ParseToken(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if authCfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(authCfg.Issuer))
	}
	if authCfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(authCfg.Audience))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if authCfg.Secret == "" {
			return nil, errors.New("未配置令牌密钥")
		}
		return []byte(authCfg.Secret), nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("令牌无效")
	}
	if claims.Subject == "" {
		return nil, errors.New("令牌缺少 sub")
	}
	return claims, nil
}

// BearerToken 从 Authorization 头取出 Bearer 令牌
func BearerToken(r *http.Request) string {
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Authenticate 认证中间件，依次尝试会话 Cookie 和 Bearer 令牌
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sid, err := c.Cookie(SessionCookieName); err == nil && sid != "" {
			userID, err := LookupSession(database.DB, sid, time.Now())
			if err == nil {
				c.Set(ContextUserIDKey, userID)
				c.Next()
				return
			}
			if !errors.Is(err, ErrSessionInvalid) {
				logger.Get().Warn("查询会话失败", zap.Error(err))
			}
		}

		tokenString := BearerToken(c.Request)
		if tokenString == "" {
			AbortUnauthorized(c)
			return
		}
		claims, err := ParseToken(tokenString)
		if err != nil {
			logger.Get().Debug("令牌校验失败", zap.Error(err))
			AbortUnauthorized(c)
			return
		}

		user, err := EnsureUser(database.DB, claims)
		if err != nil {
			logger.Get().Error("同步用户失败", zap.String("sub", claims.Subject), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "Failed to fetch user"})
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, user.ID)
		c.Set("claims", claims)
		c.Next()
	}
}

// AbortUnauthorized 返回 401
func AbortUnauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.JSON(http.StatusUnauthorized, gin.H{"code": http.StatusUnauthorized, "message": "Unauthorized"})
	c.Abort()
}

// EnsureUser 首次见到 sub 时按声明建档，之后仅同步变化的资料字段
func EnsureUser(db *gorm.DB, claims *Claims) (*models.User, error) {
	var user models.User
	err := db.Where("id = ?", claims.Subject).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			ID:              claims.Subject,
			FirstName:       claims.FirstName,
			LastName:        claims.LastName,
			ProfileImageURL: claims.ProfileImageURL,
		}
		if claims.Email != "" {
			email := claims.Email
			user.Email = &email
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("创建用户失败: %w", err)
		}
		logger.Get().Info("新用户", zap.String("user_id", user.ID))
		return &user, nil
	}
	if err != nil {
		return nil, err
	}

	updates := profileUpdates(&user, claims)
	if len(updates) > 0 {
		if err := db.Model(&user).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("更新用户资料失败: %w", err)
		}
	}
	return &user, nil
}

func profileUpdates(user *models.User, claims *Claims) map[string]interface{} {
	updates := map[string]interface{}{}
	if claims.Email != "" && (user.Email == nil || *user.Email != claims.Email) {
		email := claims.Email
		user.Email = &email
		updates["email"] = email
	}
	if claims.FirstName != "" && claims.FirstName != user.FirstName {
		user.FirstName = claims.FirstName
		updates["first_name"] = claims.FirstName
	}
	if claims.LastName != "" && claims.LastName != user.LastName {
		user.LastName = claims.LastName
		updates["last_name"] = claims.LastName
	}
	if claims.ProfileImageURL != "" && claims.ProfileImageURL != user.ProfileImageURL {
		user.ProfileImageURL = claims.ProfileImageURL
		updates["profile_image_url"] = claims.ProfileImageURL
	}
	return updates
}

// GetCurrentUserID 获取当前用户 ID，未认证时为空串
func GetCurrentUserID(c *gin.Context) string {
	if id, exists := c.Get(ContextUserIDKey); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

// SessionTTL 会话有效期
func SessionTTL() time.Duration {
	return authCfg.SessionTTL
}

// CookieSecure 会话 Cookie 是否仅限 HTTPS
func CookieSecure() bool {
	return authCfg.CookieSecure
}
