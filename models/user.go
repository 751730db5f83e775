package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User 用户，ID 为身份提供方的 sub
type User struct {
	ID              string          `json:"id" gorm:"primaryKey;size:64"`
	Email           *string         `json:"email" gorm:"size:255;uniqueIndex"`
	FirstName       string          `json:"firstName" gorm:"size:100"`
	LastName        string          `json:"lastName" gorm:"size:100"`
	ProfileImageURL string          `json:"profileImageUrl" gorm:"size:512"`
	CurrentBalance  decimal.Decimal `json:"currentBalance" gorm:"type:decimal(12,2);not null;default:0"` // 由交易记录全量重算，不做增量维护
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`

	// 删除用户时级联删除全部从属数据
	Transactions []Transaction `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	SavingsGoals []SavingsGoal `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Bills        []Bill        `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName 设置表名
func (User) TableName() string {
	return "users"
}
