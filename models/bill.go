package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Bill 账单，已付/未付与启用/停用是两个独立状态
type Bill struct {
	ID          string          `json:"id" gorm:"primaryKey;size:36"`
	UserID      string          `json:"userId" gorm:"size:64;index;not null"`
	Name        string          `json:"name" gorm:"type:text;not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	DueDate     Date            `json:"dueDate" gorm:"not null"`
	Frequency   Frequency       `json:"frequency" gorm:"size:20;not null"`
	Category    string          `json:"category" gorm:"size:50"`
	Icon        string          `json:"icon" gorm:"size:50"`
	Color       string          `json:"color" gorm:"size:50"`
	IsActive    bool            `json:"isActive" gorm:"not null;index"`
	IsPaid      bool            `json:"isPaid" gorm:"not null;index"`
	PaidDate    *Date           `json:"paidDate"`
	NextDueDate *Date           `json:"nextDueDate"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`

	// 逾期只在响应时根据当前日期计算，不落库
	IsOverdue bool `json:"isOverdue" gorm:"-"`
}

const DefaultBillColor = "destructive"

// TableName 设置表名
func (Bill) TableName() string {
	return "bills"
}

// BeforeCreate 生成 UUID，下次到期日默认等于到期日
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Color == "" {
		b.Color = DefaultBillColor
	}
	if b.NextDueDate == nil && !b.DueDate.IsZero() {
		next := b.DueDate
		b.NextDueDate = &next
	}
	return nil
}

// EffectiveDueDate 有下次到期日时取下次到期日，否则取到期日
func (b Bill) EffectiveDueDate() Date {
	if b.NextDueDate != nil && !b.NextDueDate.IsZero() {
		return *b.NextDueDate
	}
	return b.DueDate
}
