package middleware

import (
	"errors"
	"testing"
	"time"

	"moneytracker/database"
	"moneytracker/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestHashSessionID(t *testing.T) {
	h := HashSessionID("abc")
	assert.Len(t, h, 64)
	assert.Equal(t, h, HashSessionID("abc"))
	assert.NotEqual(t, h, HashSessionID("abd"))
	assert.NotEqual(t, "abc", h)
}

func TestCreateSession(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `sessions`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	claims := testClaims("u1")
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local)
	sid, sess, err := CreateSession(database.DB, &claims, now, time.Hour)
	require.NoError(t, err)

	assert.Len(t, sid, 64)
	assert.Equal(t, HashSessionID(sid), sess.Sid)
	assert.Contains(t, sess.Sess, `"userId":"u1"`)
	assert.Equal(t, now.Add(time.Hour), sess.Expire)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLookupSession_NotFound(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery("SELECT .* FROM `sessions`").WillReturnRows(sqlmock.NewRows([]string{}))

	_, err := LookupSession(database.DB, "missing", time.Now())
	assert.ErrorIs(t, err, ErrSessionInvalid)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLookupSession_BadPayload(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery("SELECT .* FROM `sessions`").
		WillReturnRows(sqlmock.NewRows([]string{"sid", "sess", "expire"}).
			AddRow("h", `{}`, time.Now().Add(time.Hour)))

	_, err := LookupSession(database.DB, "x", time.Now())
	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestLookupSession_ExpiredDeleteFails(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger.Set(zap.New(core))
	defer logger.Set(nil)
	mock := setupMockDB(t)

	mock.ExpectQuery("SELECT .* FROM `sessions`").
		WillReturnRows(sqlmock.NewRows([]string{"sid", "sess", "expire"}).
			AddRow(HashSessionID("old"), `{"userId":"u7"}`, time.Now().Add(-time.Minute)))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `sessions`").WillReturnError(errors.New("db down"))
	mock.ExpectRollback()

	_, err := LookupSession(database.DB, "old", time.Now())
	assert.ErrorIs(t, err, ErrSessionInvalid)
	require.NoError(t, mock.ExpectationsWereMet())

	entries := logs.FilterMessage("删除过期会话失败").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
}

func TestDeleteSession(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `sessions` WHERE sid = \\?").
		WithArgs(HashSessionID("raw")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, DeleteSession(database.DB, "raw"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPurgeExpiredSessions(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `sessions` WHERE expire <= \\?").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	n, err := PurgeExpiredSessions(database.DB, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
