package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-10")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.June, d.Month())
	assert.Equal(t, 10, d.Day())
	assert.Equal(t, "2024-06-10", d.String())

	_, err = ParseDate("2024/06/10")
	assert.Error(t, err)
	_, err = ParseDate("2024-13-01")
	assert.Error(t, err)
}

func TestDate_AddDays(t *testing.T) {
	// 跨月、跨年、闰年
	assert.Equal(t, "2024-07-01", MustParseDate("2024-06-30").AddDays(1).String())
	assert.Equal(t, "2025-01-06", MustParseDate("2024-12-30").AddDays(7).String())
	assert.Equal(t, "2024-02-29", MustParseDate("2024-02-22").AddDays(7).String())
	assert.Equal(t, "2024-05-31", MustParseDate("2024-06-01").AddDays(-1).String())
}

func TestDate_Compare(t *testing.T) {
	a := MustParseDate("2024-06-10")
	b := MustParseDate("2024-06-11")
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.After(a))
	assert.True(t, a.Equal(NewDate(time.Date(2024, 6, 10, 23, 59, 0, 0, time.Local))))
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		Due  Date  `json:"due"`
		Paid *Date `json:"paid"`
	}
	b, err := json.Marshal(payload{Due: MustParseDate("2024-06-10")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"due":"2024-06-10","paid":null}`, string(b))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"due":"2024-06-01","paid":"2024-06-02"}`), &p))
	assert.Equal(t, "2024-06-01", p.Due.String())
	require.NotNil(t, p.Paid)
	assert.Equal(t, "2024-06-02", p.Paid.String())

	assert.Error(t, json.Unmarshal([]byte(`{"due":"06/01/2024"}`), &p))
	assert.Error(t, json.Unmarshal([]byte(`{"due":20240601}`), &p))
}

func TestDate_ScanAndValue(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2024-06-15"))
	assert.Equal(t, "2024-06-15", d.String())

	require.NoError(t, d.Scan([]byte("2024-06-16T00:00:00Z")))
	assert.Equal(t, "2024-06-16", d.String())

	require.NoError(t, d.Scan(time.Date(2024, 6, 17, 8, 0, 0, 0, time.Local)))
	assert.Equal(t, "2024-06-17", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))

	v, err := MustParseDate("2024-06-18").Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-06-18", v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
