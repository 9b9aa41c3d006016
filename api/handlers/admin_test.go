package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/drishti-labs/police-admin-api/api/handlers"
	"github.com/drishti-labs/police-admin-api/databases"
	"github.com/drishti-labs/police-admin-api/databases/mocks"
	"github.com/drishti-labs/police-admin-api/models"
)

func adminHandlerWith(sr *mocks.SingleResultHelper) handlers.Admin {
	coll := &mocks.CollectionHelper{}
	coll.On("FindOne", mock.Anything, mock.Anything).Return(sr)
	dbHelper := &mocks.DatabaseHelper{}
	dbHelper.On("Collection", "admins").Return(coll)
	return handlers.Admin{DB: databases.NewAdminDatabase(dbHelper), JWTSecret: "test-secret"}
}

func loginRequest(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", strings.NewReader(body))
}

func TestAdminLogin_HashedPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	assert.NoError(t, err)

	sr := &mocks.SingleResultHelper{}
	sr.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Admin)
		(*arg).Email = "ops@example.in"
		(*arg).PasswordHash = string(hash)
		(*arg).Active = true
	})

	rr := httptest.NewRecorder()
	adminHandlerWith(sr).AdminLoginHandler(rr, loginRequest(`{"email": "ops@example.in", "password": "s3cret"}`))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "token")
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	assert.NoError(t, err)

	sr := &mocks.SingleResultHelper{}
	sr.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Admin)
		(*arg).PasswordHash = string(hash)
		(*arg).Active = true
	})

	rr := httptest.NewRecorder()
	adminHandlerWith(sr).AdminLoginHandler(rr, loginRequest(`{"email": "ops@example.in", "password": "nope"}`))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAdminLogin_LegacyPlaintextRow(t *testing.T) {
	sr := &mocks.SingleResultHelper{}
	sr.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Admin)
		(*arg).Password = "legacy-pass"
		(*arg).Active = true
	})

	rr := httptest.NewRecorder()
	adminHandlerWith(sr).AdminLoginHandler(rr, loginRequest(`{"email": "old@example.in", "password": "legacy-pass"}`))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "token")
}

func TestAdminLogin_UnknownAdmin(t *testing.T) {
	sr := &mocks.SingleResultHelper{}
	sr.On("Decode", mock.Anything).Return(errors.New("mongo: no documents in result"))

	rr := httptest.NewRecorder()
	adminHandlerWith(sr).AdminLoginHandler(rr, loginRequest(`{"email": "ghost@example.in", "password": "x"}`))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAdminLogin_MissingFields(t *testing.T) {
	rr := httptest.NewRecorder()
	adminHandlerWith(&mocks.SingleResultHelper{}).AdminLoginHandler(rr, loginRequest(`{"email": "ops@example.in"}`))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
