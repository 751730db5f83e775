package models

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Session 服务端会话，Sid 存的是 Cookie 值的哈希而非原值
type Session struct {
	Sid    string    `json:"-" gorm:"primaryKey;size:64"`
	Sess   string    `json:"-" gorm:"type:text;not null"` // 身份提供方声明的 JSON 快照
	Expire time.Time `json:"expire" gorm:"not null;index:idx_session_expire"`
}

// TableName 设置表名
func (Session) TableName() string {
	return "sessions"
}

// GenerateSessionID 生成随机会话 ID
func GenerateSessionID() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// IsExpired 检查会话是否过期
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.Expire)
}
