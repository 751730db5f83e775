package service

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"moneytracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportFixture() []models.Transaction {
	income := tx(models.TransactionIncome, "1000", "2024-06-01")
	income.ID = "t1"
	income.Category = "工资"
	income.Description = "六月工资"
	income.Frequency = models.FrequencyMonthly

	expense := tx(models.TransactionExpense, "200.5", "2024-06-15")
	expense.ID = "t2"
	expense.Category = "餐饮"
	expense.Description = "聚餐, 含饮料"
	expense.Frequency = models.FrequencyOneTime
	return []models.Transaction{income, expense}
}

func TestWriteTransactionsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTransactionsCSV(&buf, exportFixture()))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "\xEF\xBB\xBF"))

	records, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(out, "\xEF\xBB\xBF"))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, transactionHeaders, records[0])
	assert.Equal(t, []string{"2024-06-01", "收入", "1000.00", "工资", "六月工资", "monthly", "t1"}, records[1])
	assert.Equal(t, "聚餐, 含饮料", records[2][4])
	assert.Equal(t, "200.50", records[2][2])
}

func TestWriteTransactionsCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTransactionsCSV(&buf, nil))

	records, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(buf.String(), "\xEF\xBB\xBF"))).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestBuildTransactionsExcel(t *testing.T) {
	f, err := BuildTransactionsExcel(exportFixture())
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{TransactionSheetName}, f.GetSheetList())

	header, err := f.GetCellValue(TransactionSheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "日期", header)

	typ, _ := f.GetCellValue(TransactionSheetName, "B3")
	assert.Equal(t, "支出", typ)

	amount, _ := f.GetCellValue(TransactionSheetName, "C2")
	assert.Equal(t, "1000", amount)

	label, _ := f.GetCellValue(TransactionSheetName, "A4")
	assert.Equal(t, "合计", label)
	net, _ := f.GetCellValue(TransactionSheetName, "C4")
	assert.Equal(t, "799.5", net)
	text, _ := f.GetCellValue(TransactionSheetName, "D4")
	assert.Equal(t, "共 2 条记录，收入 1000.00，支出 200.50", text)

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	assert.Greater(t, buf.Len(), 0)
}
