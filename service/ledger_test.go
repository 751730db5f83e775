package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

func fixedClock(date string) Option {
	now := at(date)
	return WithClock(func() time.Time { return now })
}

func expectRecalculate(mock sqlmock.Sqlmock, userID string, rows *sqlmock.Rows, balance string) {
	mock.ExpectQuery("SELECT `type`,`amount` FROM `transactions`").
		WithArgs(userID).
		WillReturnRows(rows)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users` SET `current_balance`").
		WithArgs(balance, sqlmock.AnyArg(), userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
}

func TestLedgerService_RecalculateBalance(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"type", "amount"}).
		AddRow("income", "1000.00").
		AddRow("expense", "200.00").
		AddRow("income", "0.10").
		AddRow("income", "0.20")
	expectRecalculate(mock, "u1", rows, "800.3")

	balance, err := NewLedgerService(db).RecalculateBalance("u1")
	require.NoError(t, err)
	assert.Equal(t, "800.3", balance.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerService_RecalculateBalance_NoTransactions(t *testing.T) {
	db, mock := setupMockDB(t)

	expectRecalculate(mock, "u1", sqlmock.NewRows([]string{"type", "amount"}), "0")

	balance, err := NewLedgerService(db).RecalculateBalance("u1")
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerService_DeleteTransaction(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT .* FROM `transactions`").
		WithArgs("t2", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "type", "amount", "date"}).
			AddRow("t2", "u1", "expense", "200.00", "2024-06-15"))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `transactions`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// 删除后重新汇总剩余交易
	expectRecalculate(mock, "u1", sqlmock.NewRows([]string{"type", "amount"}).AddRow("income", "1000.00"), "1000")

	require.NoError(t, NewLedgerService(db).DeleteTransaction("u1", "t2"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerService_DeleteTransaction_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT .* FROM `transactions`").
		WithArgs("missing", "u1").
		WillReturnRows(sqlmock.NewRows([]string{}))

	err := NewLedgerService(db).DeleteTransaction("u1", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerService_Dashboard(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "current_balance"}).AddRow("u1", "800.00"))
	// 月份窗口按服务器当前时间：2024-06-01 ~ 2024-06-30
	mock.ExpectQuery("SELECT .* FROM `transactions`").
		WithArgs("u1", "2024-06-01", "2024-06-30").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "type", "amount", "date"}).
			AddRow("t1", "u1", "income", "1000.00", "2024-06-01").
			AddRow("t2", "u1", "expense", "200.00", "2024-06-15"))
	mock.ExpectQuery("SELECT .* FROM `savings_goals`").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "target_amount", "current_amount", "is_active"}).
			AddRow("g1", "u1", "1000.00", "100.00", true).
			AddRow("g2", "u1", "500.00", "250.00", false))

	summary, err := NewLedgerService(db, fixedClock("2024-06-20")).Dashboard("u1")
	require.NoError(t, err)
	assert.Equal(t, "800", summary.CurrentBalance.String())
	assert.Equal(t, "1000", summary.MonthlyIncome.String())
	assert.Equal(t, "200", summary.MonthlyExpenses.String())
	assert.Equal(t, "350", summary.TotalSavings.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerService_Dashboard_UnknownUser(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT .* FROM `users`").WillReturnRows(sqlmock.NewRows([]string{}))
	mock.ExpectQuery("SELECT .* FROM `transactions`").WillReturnRows(sqlmock.NewRows([]string{}))
	mock.ExpectQuery("SELECT .* FROM `savings_goals`").WillReturnRows(sqlmock.NewRows([]string{}))

	summary, err := NewLedgerService(db, fixedClock("2024-06-20")).Dashboard("ghost")
	require.NoError(t, err)
	assert.True(t, summary.CurrentBalance.IsZero())
	assert.True(t, summary.MonthlyIncome.IsZero())
	assert.True(t, summary.TotalSavings.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerService_UpcomingBills(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT .* FROM `bills`").
		WithArgs("u1", true, false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "amount", "due_date", "next_due_date", "is_active", "is_paid"}).
			AddRow("b1", "u1", "网费", "99.00", "2024-06-15", "2024-06-15", true, false).
			AddRow("b2", "u1", "房租", "3000.00", "2024-06-10", nil, true, false).
			AddRow("b3", "u1", "保险", "500.00", "2024-07-01", "2024-07-01", true, false))

	bills, err := NewLedgerService(db, fixedClock("2024-06-10")).UpcomingBills("u1")
	require.NoError(t, err)
	require.Len(t, bills, 2)
	assert.Equal(t, "b2", bills[0].ID)
	assert.Equal(t, "b1", bills[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerService_MarkBillPaid(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT .* FROM `bills`").
		WithArgs("b1", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "amount", "due_date", "next_due_date", "frequency", "is_active", "is_paid"}).
			AddRow("b1", "u1", "电费", "120.00", "2024-06-10", "2024-06-10", "monthly", true, false))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `bills` SET").
		WithArgs(true, "2024-06-10", sqlmock.AnyArg(), "b1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	b, err := NewLedgerService(db, fixedClock("2024-06-10")).MarkBillPaid("u1", "b1")
	require.NoError(t, err)
	assert.True(t, b.IsPaid)
	require.NotNil(t, b.PaidDate)
	assert.Equal(t, "2024-06-10", b.PaidDate.String())
	// 付款不推进下次到期日
	assert.Equal(t, "2024-06-10", b.NextDueDate.String())
	// 已付账单不再出现在即将到期列表中
	assert.False(t, IsUpcoming(*b, at("2024-06-10")))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerService_Deposit(t *testing.T) {
	db, mock := setupMockDB(t)

	cols := []string{"id", "user_id", "name", "target_amount", "current_amount", "is_active"}
	mock.ExpectQuery("SELECT .* FROM `savings_goals`").
		WithArgs("g1", "u1").
		WillReturnRows(sqlmock.NewRows(cols).AddRow("g1", "u1", "旅行", "1000.00", "950.00", true))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `savings_goals` SET `current_amount`=current_amount \\+ \\?").
		WithArgs("100", sqlmock.AnyArg(), "g1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT .* FROM `savings_goals`").
		WillReturnRows(sqlmock.NewRows(cols).AddRow("g1", "u1", "旅行", "1000.00", "1050.00", true))

	g, err := NewLedgerService(db).Deposit("u1", "g1", dec("100"))
	require.NoError(t, err)
	// 超过目标金额不报错
	assert.Equal(t, "1050", g.CurrentAmount.String())
	assert.Equal(t, "1.05", g.Progress.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerService_Deposit_Invalid(t *testing.T) {
	db, mock := setupMockDB(t)

	_, err := NewLedgerService(db).Deposit("u1", "g1", dec("-1"))
	assert.ErrorIs(t, err, ErrInvalidAmount)

	mock.ExpectQuery("SELECT .* FROM `savings_goals`").
		WillReturnRows(sqlmock.NewRows([]string{}))
	_, err = NewLedgerService(db).Deposit("u1", "missing", dec("1"))
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
