package models

import (
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBill_BeforeCreate_DefaultsNextDueDate(t *testing.T) {
	b := &Bill{DueDate: MustParseDate("2024-06-10")}
	require.NoError(t, b.BeforeCreate(nil))

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, DefaultBillColor, b.Color)
	require.NotNil(t, b.NextDueDate)
	assert.Equal(t, "2024-06-10", b.NextDueDate.String())

	// 显式给出的下次到期日保持不变
	next := MustParseDate("2024-07-10")
	b2 := &Bill{DueDate: MustParseDate("2024-06-10"), NextDueDate: &next}
	require.NoError(t, b2.BeforeCreate(nil))
	assert.Equal(t, "2024-07-10", b2.NextDueDate.String())
}

func TestBill_EffectiveDueDate(t *testing.T) {
	b := Bill{DueDate: MustParseDate("2024-06-10")}
	assert.Equal(t, "2024-06-10", b.EffectiveDueDate().String())

	next := MustParseDate("2024-07-10")
	b.NextDueDate = &next
	assert.Equal(t, "2024-07-10", b.EffectiveDueDate().String())

	b.NextDueDate = &Date{}
	assert.Equal(t, "2024-06-10", b.EffectiveDueDate().String())
}

func TestSavingsGoal_RefreshProgress(t *testing.T) {
	g := &SavingsGoal{TargetAmount: decimal.RequireFromString("300"), CurrentAmount: decimal.RequireFromString("100")}
	g.RefreshProgress()
	assert.Equal(t, "0.3333", g.Progress.String())

	// 允许超过 100%
	g.CurrentAmount = decimal.RequireFromString("450")
	g.RefreshProgress()
	assert.Equal(t, "1.5", g.Progress.String())

	g.TargetAmount = decimal.Zero
	g.RefreshProgress()
	assert.True(t, g.Progress.IsZero())
}

func TestSavingsGoal_BeforeCreate(t *testing.T) {
	g := &SavingsGoal{}
	require.NoError(t, g.BeforeCreate(nil))
	assert.NotEmpty(t, g.ID)
	assert.Equal(t, DefaultGoalIcon, g.Icon)
	assert.Equal(t, DefaultGoalColor, g.Color)
}

func TestTransaction_SignedAmount(t *testing.T) {
	in := Transaction{Type: TransactionIncome, Amount: decimal.RequireFromString("12.50")}
	out := Transaction{Type: TransactionExpense, Amount: decimal.RequireFromString("2.25")}
	assert.Equal(t, "12.5", in.SignedAmount().String())
	assert.Equal(t, "-2.25", out.SignedAmount().String())

	tx := &Transaction{}
	require.NoError(t, tx.BeforeCreate(nil))
	assert.Equal(t, FrequencyOneTime, tx.Frequency)
}

func TestFrequency_Valid(t *testing.T) {
	for _, f := range GetFrequencies() {
		assert.True(t, f.Valid())
	}
	assert.False(t, Frequency("hourly").Valid())
}

func TestSession(t *testing.T) {
	sid, err := GenerateSessionID()
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), sid)

	now := time.Now()
	s := &Session{Expire: now.Add(time.Hour)}
	assert.False(t, s.IsExpired(now))
	assert.True(t, s.IsExpired(now.Add(time.Hour)))
}
