package service

import "errors"

var (
	// ErrNotFound 记录不存在或不属于当前用户
	ErrNotFound = errors.New("记录不存在")
	// ErrInvalidAmount 金额不是正数
	ErrInvalidAmount = errors.New("金额必须为正数")
)
