package models

// TransactionType 交易类型
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Frequency 发生频率，交易与账单共用
type Frequency string

const (
	FrequencyOneTime Frequency = "one_time"
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// GetFrequencies 获取所有频率
func GetFrequencies() []Frequency {
	return []Frequency{
		FrequencyOneTime,
		FrequencyDaily,
		FrequencyWeekly,
		FrequencyMonthly,
		FrequencyYearly,
	}
}

// Valid 是否为已知频率
func (f Frequency) Valid() bool {
	for _, v := range GetFrequencies() {
		if f == v {
			return true
		}
	}
	return false
}
