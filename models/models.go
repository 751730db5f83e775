package models

// All 需要自动迁移的模型，按外键依赖排序
func All() []interface{} {
	return []interface{}{
		&User{},
		&Transaction{},
		&SavingsGoal{},
		&Bill{},
		&Session{},
	}
}
