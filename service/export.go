package service

import (
	"encoding/csv"
	"fmt"
	"io"

	"moneytracker/models"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// TransactionSheetName 导出 Excel 的工作表名
const TransactionSheetName = "交易记录"

var transactionHeaders = []string{"日期", "类型", "金额", "类别", "描述", "周期", "ID"}

var typeLabels = map[models.TransactionType]string{
	models.TransactionIncome:  "收入",
	models.TransactionExpense: "支出",
}

func transactionRow(t models.Transaction) []string {
	label, ok := typeLabels[t.Type]
	if !ok {
		label = string(t.Type)
	}
	return []string{
		t.Date.String(),
		label,
		t.Amount.StringFixed(2),
		t.Category,
		t.Description,
		string(t.Frequency),
		t.ID,
	}
}

// WriteTransactionsCSV 以 CSV 写出交易记录，带 UTF-8 BOM 以便 Excel 识别中文
func WriteTransactionsCSV(w io.Writer, txs []models.Transaction) error {
	if _, err := io.WriteString(w, "\xEF\xBB\xBF"); err != nil {
		return err
	}
	writer := csv.NewWriter(w)
	if err := writer.Write(transactionHeaders); err != nil {
		return err
	}
	for _, t := range txs {
		if err := writer.Write(transactionRow(t)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// BuildTransactionsExcel 生成交易记录 Excel，末行为收支合计
func BuildTransactionsExcel(txs []models.Transaction) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := TransactionSheetName
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, err
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})

	widths := map[string]float64{"A": 12, "B": 8, "C": 14, "D": 14, "E": 30, "F": 10, "G": 38}
	for col, width := range widths {
		f.SetColWidth(sheet, col, col, width)
	}

	for i, header := range transactionHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for i, t := range txs {
		row := i + 2
		values := transactionRow(t)
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			if j == 2 {
				f.SetCellValue(sheet, cell, t.Amount.InexactFloat64())
				continue
			}
			f.SetCellValue(sheet, cell, v)
		}
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("G%d", row), dataStyle)
	}

	income, expense := SumByType(txs)
	net := income.Sub(expense)
	summaryRow := len(txs) + 2
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), "合计")
	f.MergeCell(sheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("B%d", summaryRow))
	f.SetCellValue(sheet, fmt.Sprintf("C%d", summaryRow), net.InexactFloat64())
	f.SetCellValue(sheet, fmt.Sprintf("D%d", summaryRow), summaryText(len(txs), income, expense))
	f.MergeCell(sheet, fmt.Sprintf("D%d", summaryRow), fmt.Sprintf("G%d", summaryRow))
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("G%d", summaryRow), summaryStyle)

	return f, nil
}

func summaryText(count int, income, expense decimal.Decimal) string {
	return fmt.Sprintf("共 %d 条记录，收入 %s，支出 %s", count, income.StringFixed(2), expense.StringFixed(2))
}
