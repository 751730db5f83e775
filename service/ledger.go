package service

import (
	"errors"
	"fmt"
	"time"

	"moneytracker/logger"
	"moneytracker/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LedgerService 余额重算、首页汇总、账单与储蓄等业务逻辑
type LedgerService struct {
	db  *gorm.DB
	now func() time.Time
}

// Option LedgerService 可选项
type Option func(*LedgerService)

// WithClock 替换当前时间来源
func WithClock(now func() time.Time) Option {
	return func(s *LedgerService) {
		s.now = now
	}
}

// NewLedgerService 创建业务服务
func NewLedgerService(db *gorm.DB, opts ...Option) *LedgerService {
	s := &LedgerService{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now 服务使用的当前时间
func (s *LedgerService) Now() time.Time {
	return s.now()
}

// DashboardSummary 首页汇总数据
type DashboardSummary struct {
	CurrentBalance  decimal.Decimal `json:"currentBalance" swaggertype:"string" example:"800"`
	MonthlyIncome   decimal.Decimal `json:"monthlyIncome" swaggertype:"string" example:"1000"`
	MonthlyExpenses decimal.Decimal `json:"monthlyExpenses" swaggertype:"string" example:"200"`
	TotalSavings    decimal.Decimal `json:"totalSavings" swaggertype:"string" example:"350"`
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ===== 余额 =====

// RecalculateBalance 按用户全部交易记录重算余额并写回用户表
func (s *LedgerService) RecalculateBalance(userID string) (decimal.Decimal, error) {
	var txs []models.Transaction
	if err := s.db.Select("type", "amount").Where("user_id = ?", userID).Find(&txs).Error; err != nil {
		return decimal.Zero, fmt.Errorf("查询交易记录失败: %w", err)
	}
	balance := SumBalance(txs)

	if err := s.db.Model(&models.User{}).Where("id = ?", userID).
		Update("current_balance", balance).Error; err != nil {
		return decimal.Zero, fmt.Errorf("更新余额失败: %w", err)
	}
	logger.Get().Debug("余额已重算",
		zap.String("user_id", userID),
		zap.Int("transactions", len(txs)),
		zap.String("balance", balance.String()))
	return balance, nil
}

// ===== 交易 =====

// FindTransaction 查询属于用户的交易
func (s *LedgerService) FindTransaction(userID, id string) (*models.Transaction, error) {
	var t models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&t).Error; err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

// CreateTransaction 新增交易并重算余额
func (s *LedgerService) CreateTransaction(t *models.Transaction) error {
	if err := s.db.Create(t).Error; err != nil {
		return fmt.Errorf("创建交易失败: %w", err)
	}
	_, err := s.RecalculateBalance(t.UserID)
	return err
}

// UpdateTransaction 部分更新交易并重算余额
func (s *LedgerService) UpdateTransaction(userID, id string, updates map[string]interface{}) (*models.Transaction, error) {
	t, err := s.FindTransaction(userID, id)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.db.Model(t).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("更新交易失败: %w", err)
		}
	}
	if err := s.db.Where("id = ?", t.ID).First(t).Error; err != nil {
		return nil, notFound(err)
	}
	if _, err := s.RecalculateBalance(userID); err != nil {
		return nil, err
	}
	return t, nil
}

// DeleteTransaction 删除交易并重算余额
func (s *LedgerService) DeleteTransaction(userID, id string) error {
	t, err := s.FindTransaction(userID, id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(t).Error; err != nil {
		return fmt.Errorf("删除交易失败: %w", err)
	}
	_, err = s.RecalculateBalance(userID)
	return err
}

// ===== 首页 =====

// Dashboard 汇总当前余额、本月收支与储蓄总额，本月按服务器当前时间计算
func (s *LedgerService) Dashboard(userID string) (*DashboardSummary, error) {
	summary := &DashboardSummary{}

	var user models.User
	err := s.db.Where("id = ?", userID).First(&user).Error
	switch {
	case err == nil:
		summary.CurrentBalance = user.CurrentBalance
	case errors.Is(err, gorm.ErrRecordNotFound):
		summary.CurrentBalance = decimal.Zero
	default:
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}

	start, end := MonthWindow(s.now())
	var monthly []models.Transaction
	if err := s.db.Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Find(&monthly).Error; err != nil {
		return nil, fmt.Errorf("查询本月交易失败: %w", err)
	}
	summary.MonthlyIncome, summary.MonthlyExpenses = SumByType(monthly)

	var goals []models.SavingsGoal
	if err := s.db.Where("user_id = ?", userID).Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("查询储蓄目标失败: %w", err)
	}
	summary.TotalSavings = SumSavings(goals)

	return summary, nil
}

// ===== 账单 =====

// FindBill 查询属于用户的账单
func (s *LedgerService) FindBill(userID, id string) (*models.Bill, error) {
	var b models.Bill
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&b).Error; err != nil {
		return nil, notFound(err)
	}
	b.IsOverdue = IsOverdue(b, s.now())
	return &b, nil
}

// UpcomingBills 启用、未付且实际到期日在 [今天, 今天+7] 内的账单，按实际到期日升序
func (s *LedgerService) UpcomingBills(userID string) ([]models.Bill, error) {
	var bills []models.Bill
	if err := s.db.Where("user_id = ? AND is_active = ? AND is_paid = ?", userID, true, false).
		Find(&bills).Error; err != nil {
		return nil, fmt.Errorf("查询账单失败: %w", err)
	}
	now := s.now()
	upcoming := SelectUpcoming(bills, now)
	MarkOverdue(upcoming, now)
	return upcoming, nil
}

// MarkBillPaid 标记账单已付，付款日期为今天
// 下次到期日不随付款推进，周期账单需调用方自行更新 nextDueDate
func (s *LedgerService) MarkBillPaid(userID, id string) (*models.Bill, error) {
	b, err := s.FindBill(userID, id)
	if err != nil {
		return nil, err
	}
	today := models.NewDate(s.now())
	if err := s.db.Model(b).Updates(map[string]interface{}{
		"is_paid":   true,
		"paid_date": today,
	}).Error; err != nil {
		return nil, fmt.Errorf("标记账单失败: %w", err)
	}
	b.IsPaid = true
	b.PaidDate = &today
	b.IsOverdue = false
	return b, nil
}

// ===== 储蓄 =====

// FindSavingsGoal 查询属于用户的储蓄目标
func (s *LedgerService) FindSavingsGoal(userID, id string) (*models.SavingsGoal, error) {
	var g models.SavingsGoal
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&g).Error; err != nil {
		return nil, notFound(err)
	}
	return &g, nil
}

// Deposit 向储蓄目标存入金额，不校验是否超过目标金额
func (s *LedgerService) Deposit(userID, goalID string, amount decimal.Decimal) (*models.SavingsGoal, error) {
	amount, err := NormalizeAmount(amount)
	if err != nil {
		return nil, err
	}
	g, err := s.FindSavingsGoal(userID, goalID)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(g).
		Update("current_amount", gorm.Expr("current_amount + ?", amount)).Error; err != nil {
		return nil, fmt.Errorf("存入失败: %w", err)
	}
	if err := s.db.Where("id = ?", g.ID).First(g).Error; err != nil {
		return nil, notFound(err)
	}
	return g, nil
}
