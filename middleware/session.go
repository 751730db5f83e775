package middleware

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"moneytracker/logger"
	"moneytracker/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"
	"gorm.io/gorm"
)

// SessionCookieName 会话 Cookie 名
const SessionCookieName = "sid"

// ErrSessionInvalid 会话不存在或已过期
var ErrSessionInvalid = errors.New("会话无效")

type sessionData struct {
	UserID string `json:"userId"`
	Email  string `json:"email,omitempty"`
}

// HashSessionID 会话 ID 入库前取哈希
func HashSessionID(sid string) string {
	sum := blake2b.Sum256([]byte(sid))
	return hex.EncodeToString(sum[:])
}

// CreateSession 为用户创建会话，返回写入 Cookie 的原始会话 ID
func CreateSession(db *gorm.DB, claims *Claims, now time.Time, ttl time.Duration) (string, *models.Session, error) {
	sid, err := models.GenerateSessionID()
	if err != nil {
		return "", nil, fmt.Errorf("生成会话 ID 失败: %w", err)
	}
	data, err := json.Marshal(sessionData{UserID: claims.Subject, Email: claims.Email})
	if err != nil {
		return "", nil, err
	}
	sess := &models.Session{
		Sid:    HashSessionID(sid),
		Sess:   string(data),
		Expire: now.Add(ttl),
	}
	if err := db.Create(sess).Error; err != nil {
		return "", nil, fmt.Errorf("保存会话失败: %w", err)
	}
	return sid, sess, nil
}

// LookupSession 按 Cookie 值查找未过期会话，返回用户 ID；过期会话顺带删除
func LookupSession(db *gorm.DB, sid string, now time.Time) (string, error) {
	var sess models.Session
	err := db.Where("sid = ?", HashSessionID(sid)).First(&sess).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrSessionInvalid
	}
	if err != nil {
		return "", err
	}
	if sess.IsExpired(now) {
		if err := db.Delete(&sess).Error; err != nil {
			logger.Get().Warn("删除过期会话失败", zap.Error(err))
		}
		return "", ErrSessionInvalid
	}

	var data sessionData
	if err := json.Unmarshal([]byte(sess.Sess), &data); err != nil || data.UserID == "" {
		return "", ErrSessionInvalid
	}
	return data.UserID, nil
}

// DeleteSession 删除会话
func DeleteSession(db *gorm.DB, sid string) error {
	return db.Where("sid = ?", HashSessionID(sid)).Delete(&models.Session{}).Error
}

// PurgeExpiredSessions 清理过期会话
func PurgeExpiredSessions(db *gorm.DB, now time.Time) (int64, error) {
	result := db.Where("expire <= ?", now).Delete(&models.Session{})
	return result.RowsAffected, result.Error
}
