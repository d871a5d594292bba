package http

import (
	"net/http/httptest"
	"strings"
	"testing"

	"workforce_project/internal/middleware"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newHandlerDB opens a gorm handle over sqlmock so handlers can be driven
// end to end without a running database.
func newHandlerDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("open sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:               gormlogger.Discard,
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("open gorm: %v", err)
	}
	return db, mock
}

// employeeContext is a test context carrying an authenticated employee id,
// the way the auth guard leaves it.
func employeeContext(employeeID string) (*gin.Context, *httptest.ResponseRecorder) {
	c, w := testContext()
	c.Set(middleware.ContextUserID, employeeID)
	return c, w
}

func jsonRequest(c *gin.Context, method, target, body string) {
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
}
