package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"moneytracker/database"
	"moneytracker/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const (
	testUserID = "user-1"
	txID       = "6f1c2a52-8a3e-4d0f-9a51-0c7a2b6f1e01"
	goalID     = "7a2d3b63-9b4f-4e1a-8b62-1d8b3c7a2f02"
	billID     = "8b3e4c74-ac5a-4f2b-9c73-2e9c4d8b3a03"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	oldDB := database.DB
	database.DB = gormDB
	return mock, func() {
		database.DB = oldDB
		sqlDB.Close()
	}
}

func setUserIDMiddleware(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

// fixedClock 固定服务当前时间为某天上午十点
func fixedClock(date string) service.Option {
	t, _ := time.ParseInLocation("2006-01-02", date, time.Local)
	now := t.Add(10 * time.Hour)
	return service.WithClock(func() time.Time { return now })
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeMap(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	var resp []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// expectRecalculate 交易写入后的余额重算
func expectRecalculate(mock sqlmock.Sqlmock, rows *sqlmock.Rows, balance string) {
	mock.ExpectQuery("SELECT `type`,`amount` FROM `transactions`").
		WithArgs(testUserID).
		WillReturnRows(rows)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users` SET `current_balance`").
		WithArgs(balance, sqlmock.AnyArg(), testUserID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
}
