package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SavingsGoal 储蓄目标
type SavingsGoal struct {
	ID                  string           `json:"id" gorm:"primaryKey;size:36"`
	UserID              string           `json:"userId" gorm:"size:64;index;not null"`
	Name                string           `json:"name" gorm:"type:text;not null"`
	TargetAmount        decimal.Decimal  `json:"targetAmount" gorm:"type:decimal(12,2);not null"`
	CurrentAmount       decimal.Decimal  `json:"currentAmount" gorm:"type:decimal(12,2);not null;default:0"`
	MonthlyContribution *decimal.Decimal `json:"monthlyContribution" gorm:"type:decimal(12,2)"`
	TargetDate          *Date            `json:"targetDate"`
	Icon                string           `json:"icon" gorm:"size:50"`
	Color               string           `json:"color" gorm:"size:50"`
	IsActive            bool             `json:"isActive" gorm:"not null;index"`
	CreatedAt           time.Time        `json:"createdAt"`
	UpdatedAt           time.Time        `json:"updatedAt"`

	// Progress = CurrentAmount / TargetAmount，不落库，可超过 1
	Progress decimal.Decimal `json:"progress" gorm:"-"`
}

const (
	DefaultGoalIcon  = "piggy-bank"
	DefaultGoalColor = "success"
)

// TableName 设置表名
func (SavingsGoal) TableName() string {
	return "savings_goals"
}

// BeforeCreate 生成 UUID 并补齐展示字段默认值
func (g *SavingsGoal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.Icon == "" {
		g.Icon = DefaultGoalIcon
	}
	if g.Color == "" {
		g.Color = DefaultGoalColor
	}
	return nil
}

// AfterFind 查询后计算进度
func (g *SavingsGoal) AfterFind(tx *gorm.DB) error {
	g.RefreshProgress()
	return nil
}

// RefreshProgress 按当前金额重新计算进度，目标金额为 0 时进度为 0
func (g *SavingsGoal) RefreshProgress() {
	if !g.TargetAmount.IsPositive() {
		g.Progress = decimal.Zero
		return
	}
	g.Progress = g.CurrentAmount.DivRound(g.TargetAmount, 4)
}
