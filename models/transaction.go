package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction 收支记录
type Transaction struct {
	ID             string          `json:"id" gorm:"primaryKey;size:36"`
	UserID         string          `json:"userId" gorm:"size:64;index;not null"`
	Type           TransactionType `json:"type" gorm:"size:10;not null"`
	Amount         decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	Description    string          `json:"description" gorm:"type:text;not null"`
	Category       string          `json:"category" gorm:"size:50"`
	Date           Date            `json:"date" gorm:"not null;index"`
	Frequency      Frequency       `json:"frequency" gorm:"size:20;not null"`
	IsRecurring    bool            `json:"isRecurring" gorm:"not null"`
	NextRecurrence *Date           `json:"nextRecurrence"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// TableName 设置表名
func (Transaction) TableName() string {
	return "transactions"
}

// BeforeCreate 生成 UUID 并补齐默认频率
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Frequency == "" {
		t.Frequency = FrequencyOneTime
	}
	return nil
}

// SignedAmount 收入为正，支出为负
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}
