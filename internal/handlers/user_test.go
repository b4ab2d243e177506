package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/apan-dev/apan-server/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUser(t *testing.T) {
	r, mock := setupTest(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	w := doRequest(t, r, http.MethodPost, "/api/users", map[string]interface{}{
		"name":     "Ana",
		"email":    "ana@x.com",
		"password": "secret",
	}, "")

	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "Ana", body["name"])
	assert.Equal(t, "ana@x.com", body["email"])
	assert.Equal(t, "student", body["role"])
	assert.NotContains(t, w.Body.String(), "password")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserMissingFields(t *testing.T) {
	r, mock := setupTest(t)

	w := doRequest(t, r, http.MethodPost, "/api/users", map[string]interface{}{
		"email": "ana@x.com",
	}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	r, mock := setupTest(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).WillReturnError(duplicateKeyErr)
	mock.ExpectRollback()

	w := doRequest(t, r, http.MethodPost, "/api/users", map[string]interface{}{
		"name":     "Ana",
		"email":    "ana@x.com",
		"password": "secret",
	}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already registered")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginUser(t *testing.T) {
	r, mock := setupTest(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role"}).
			AddRow(1, "Ana", "ana@x.com", string(hash), "manager"))

	w := doRequest(t, r, http.MethodPost, "/api/users/login", map[string]interface{}{
		"email":    "ana@x.com",
		"password": "secret",
	}, "")

	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	require.Contains(t, body, "token")

	identity, err := auth.VerifyJWT(body["token"].(string))
	require.NoError(t, err)
	assert.Equal(t, uint(1), identity.ID)
	assert.Equal(t, "ana@x.com", identity.Email)

	user := body["user"].(map[string]interface{})
	assert.Equal(t, "manager", user["role"])
	assert.NotContains(t, w.Body.String(), "password_hash")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginUserWrongPassword(t *testing.T) {
	r, mock := setupTest(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.DefaultCost)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role"}).
			AddRow(1, "Ana", "ana@x.com", string(hash), "student"))

	w := doRequest(t, r, http.MethodPost, "/api/users/login", map[string]interface{}{
		"email":    "ana@x.com",
		"password": "wrong-password",
	}, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginUserUnknownEmail(t *testing.T) {
	r, mock := setupTest(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := doRequest(t, r, http.MethodPost, "/api/users/login", map[string]interface{}{
		"email":    "ghost@x.com",
		"password": "whatever",
	}, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListUsersRequiresAuth(t *testing.T) {
	r, _ := setupTest(t)

	w := doRequest(t, r, http.MethodGet, "/api/users", nil, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListUsers(t *testing.T) {
	r, mock := setupTest(t)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).
			AddRow(1, "Ana", "ana@x.com").
			AddRow(2, "Bruno", "bruno@x.com"))

	w := doRequest(t, r, http.MethodGet, "/api/users", nil, bearerToken(t, 1, "ana@x.com"))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bruno@x.com")
	assert.NotContains(t, w.Body.String(), "password")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserNotFound(t *testing.T) {
	r, mock := setupTest(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := doRequest(t, r, http.MethodGet, "/api/users/99", nil, bearerToken(t, 1, "ana@x.com"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUserForbidden(t *testing.T) {
	r, mock := setupTest(t)

	w := doRequest(t, r, http.MethodPut, "/api/users/2", map[string]interface{}{
		"name":  "Ana",
		"email": "ana@x.com",
	}, bearerToken(t, 1, "ana@x.com"))

	assert.Equal(t, http.StatusForbidden, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUser(t *testing.T) {
	r, mock := setupTest(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "role"}).
			AddRow(1, "Ana", "ana@x.com", "student"))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := doRequest(t, r, http.MethodPut, "/api/users/1", map[string]interface{}{
		"name":  "Ana Silva",
		"email": "ana.silva@x.com",
	}, bearerToken(t, 1, "ana@x.com"))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ana.silva@x.com")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUserForbidden(t *testing.T) {
	r, mock := setupTest(t)

	w := doRequest(t, r, http.MethodDelete, "/api/users/2", nil, bearerToken(t, 1, "ana@x.com"))

	assert.Equal(t, http.StatusForbidden, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUser(t *testing.T) {
	r, mock := setupTest(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "users"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := doRequest(t, r, http.MethodDelete, "/api/users/1", nil, bearerToken(t, 1, "ana@x.com"))

	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	r, mock := setupTest(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := doRequest(t, r, http.MethodPost, "/api/users/forgot-password", map[string]interface{}{
		"email": "ghost@x.com",
	}, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestForgotPassword(t *testing.T) {
	r, mock := setupTest(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).
			AddRow(1, "Ana", "ana@x.com"))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := doRequest(t, r, http.MethodPost, "/api/users/forgot-password", map[string]interface{}{
		"email": "ana@x.com",
	}, "")

	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResetPasswordInvalidToken(t *testing.T) {
	r, mock := setupTest(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE reset_password_token`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := doRequest(t, r, http.MethodPost, "/api/users/reset-password/deadbeef", map[string]interface{}{
		"password": "new-password",
	}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResetPassword(t *testing.T) {
	r, mock := setupTest(t)

	token := "a3f1c2d4e5a6b7c8d9e0a1b2c3d4e5f6a7b8c9d0"
	expires := time.Now().Add(30 * time.Minute)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE reset_password_token`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "reset_password_token", "reset_password_expires"}).
			AddRow(1, "Ana", "ana@x.com", token, expires))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := doRequest(t, r, http.MethodPost, "/api/users/reset-password/"+token, map[string]interface{}{
		"password": "new-password",
	}, "")

	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
