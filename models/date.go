package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout 日期字段的统一格式
const DateLayout = "2006-01-02"

// Date 只有年月日的日期，数据库存为 DATE，JSON 为 "YYYY-MM-DD"
type Date struct {
	time.Time
}

// NewDate 截取 t 在其所在时区的年月日
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.Local)}
}

// DateOf 按年月日构造日期，月份与天数溢出时自动进位
func DateOf(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

// ParseDate 解析 YYYY-MM-DD
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return Date{}, fmt.Errorf("日期格式错误，应为: %s", DateLayout)
	}
	return Date{t}, nil
}

// MustParseDate 解析失败时 panic，仅用于常量与测试
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// AddDays 返回 n 天后的日期
func (d Date) AddDays(n int) Date {
	return DateOf(d.Year(), d.Month(), d.Day()+n)
}

// Before 按日比较
func (d Date) Before(o Date) bool { return d.String() < o.String() }

// After 按日比较
func (d Date) After(o Date) bool { return d.String() > o.String() }

// Equal 按日比较
func (d Date) Equal(o Date) bool { return d.String() == o.String() }

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("日期必须为字符串: %w", err)
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan 实现 sql.Scanner，兼容 mysql(parseTime) 与 postgres 的返回类型
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = NewDate(v)
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	default:
		return fmt.Errorf("无法将 %T 转换为日期", value)
	}
}

func (d *Date) scanString(s string) error {
	if len(s) >= len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value 实现 driver.Valuer
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// GormDataType 建表时使用 DATE 类型
func (Date) GormDataType() string {
	return "date"
}
