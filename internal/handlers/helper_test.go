package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/apan-dev/apan-server/db"
	"github.com/apan-dev/apan-server/internal/auth"
	"github.com/apan-dev/apan-server/internal/config"
	"github.com/apan-dev/apan-server/internal/handlers"
	"github.com/apan-dev/apan-server/internal/mailer"
	"github.com/apan-dev/apan-server/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// duplicateKeyErr is what the postgres driver reports on a unique-constraint
// violation; gorm's TranslateError turns it into gorm.ErrDuplicatedKey.
var duplicateKeyErr = &pgconn.PgError{Code: "23505"}

// setupTest wires the real router against a sqlmock-backed gorm connection.
func setupTest(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	auth.Init("test-secret")

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	db.DB = gdb

	cfg := &config.Config{
		AppEnv:      "development",
		FrontendURL: "http://localhost:5173",
	}

	return router.NewRouter(handlers.NewUserHandler(mailer.New(cfg))), mock
}

func bearerToken(t *testing.T, userID uint, email string) string {
	t.Helper()

	token, err := auth.GenerateJWT(userID, email)
	require.NoError(t, err)

	return "Bearer " + token
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}, authorization string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	return body
}
