package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "habit/internal/domain/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newPingDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)

	return db, mock
}

func TestHealthCheck(t *testing.T) {
	t.Run("database reachable", func(t *testing.T) {
		db, mock := newPingDB(t)
		mock.ExpectPing()

		rec := httptest.NewRecorder()
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

		require.NoError(t, NewHealthHandler(db).HealthCheck(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"code":200,"message":"Service is healthy","data":{"status":"ok"}}`, rec.Body.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database unreachable", func(t *testing.T) {
		db, mock := newPingDB(t)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())

		err := NewHealthHandler(db).HealthCheck(c)
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode())
	})
}
