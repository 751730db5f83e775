package service

import (
	"sort"
	"time"

	"moneytracker/models"

	"github.com/shopspring/decimal"
)

// UpcomingDays 即将到期窗口的天数，含首尾
const UpcomingDays = 7

// NormalizeAmount 校验金额为正并按两位小数取整（与 decimal(12,2) 列一致）
func NormalizeAmount(d decimal.Decimal) (decimal.Decimal, error) {
	rounded := d.Round(2)
	if !rounded.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return rounded, nil
}

// SumBalance 全部收入减全部支出
func SumBalance(txs []models.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, t := range txs {
		balance = balance.Add(t.SignedAmount())
	}
	return balance
}

// SumByType 分别汇总收入与支出
func SumByType(txs []models.Transaction) (income, expense decimal.Decimal) {
	income, expense = decimal.Zero, decimal.Zero
	for _, t := range txs {
		switch t.Type {
		case models.TransactionIncome:
			income = income.Add(t.Amount)
		case models.TransactionExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return income, expense
}

// SumSavings 汇总所有储蓄目标的当前金额，不区分是否启用
func SumSavings(goals []models.SavingsGoal) decimal.Decimal {
	total := decimal.Zero
	for _, g := range goals {
		total = total.Add(g.CurrentAmount)
	}
	return total
}

// MonthWindow 返回 now 所在自然月的第一天与最后一天
func MonthWindow(now time.Time) (start, end models.Date) {
	y, m, _ := now.Date()
	return models.DateOf(y, m, 1), models.DateOf(y, m+1, 0)
}

// UpcomingWindow 返回 [today, today+7] 窗口
func UpcomingWindow(now time.Time) (start, end models.Date) {
	today := models.NewDate(now)
	return today, today.AddDays(UpcomingDays)
}

// InWindow 日期是否落在闭区间内
func InWindow(d, start, end models.Date) bool {
	return !d.Before(start) && !d.After(end)
}

// IsUpcoming 启用、未付且实际到期日落在即将到期窗口内
func IsUpcoming(b models.Bill, now time.Time) bool {
	if !b.IsActive || b.IsPaid {
		return false
	}
	start, end := UpcomingWindow(now)
	return InWindow(b.EffectiveDueDate(), start, end)
}

// SelectUpcoming 过滤出即将到期的账单并按实际到期日升序排列
func SelectUpcoming(bills []models.Bill, now time.Time) []models.Bill {
	upcoming := make([]models.Bill, 0, len(bills))
	for _, b := range bills {
		if IsUpcoming(b, now) {
			upcoming = append(upcoming, b)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].EffectiveDueDate().Before(upcoming[j].EffectiveDueDate())
	})
	return upcoming
}

// IsOverdue 未付且实际到期日早于今天；只用于展示，不落库
func IsOverdue(b models.Bill, now time.Time) bool {
	if b.IsPaid {
		return false
	}
	return b.EffectiveDueDate().Before(models.NewDate(now))
}

// MarkOverdue 为响应中的账单填充逾期标记
func MarkOverdue(bills []models.Bill, now time.Time) {
	for i := range bills {
		bills[i].IsOverdue = IsOverdue(bills[i], now)
	}
}
