package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	mocks "github.com/aliskhannn/corpsite/internal/mocks/service/auth"
	"github.com/aliskhannn/corpsite/internal/model"
	"github.com/aliskhannn/corpsite/internal/repository/admin"
	"github.com/aliskhannn/corpsite/internal/repository/session"
)

func hash(t *testing.T, password string) string {
	t.Helper()

	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return string(h)
}

func TestService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminsMock := mocks.NewMockadminRepository(ctrl)
	sessionsMock := mocks.NewMocksessionRepository(ctrl)
	svc := NewService(adminsMock, sessionsMock, time.Hour)

	adminsMock.EXPECT().GetAdminByLogin(gomock.Any(), "admin").
		Return(model.Admin{ID: 1, Login: "admin", PasswordHash: hash(t, "secret")}, nil)

	var saved string
	sessionsMock.EXPECT().SaveSession(gomock.Any(), gomock.Any(), int64(1), time.Hour).
		DoAndReturn(func(_ context.Context, token string, _ int64, _ time.Duration) error {
			saved = token
			return nil
		})

	token, err := svc.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, saved, token)
}

func TestService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminsMock := mocks.NewMockadminRepository(ctrl)
	svc := NewService(adminsMock, mocks.NewMocksessionRepository(ctrl), time.Hour)

	adminsMock.EXPECT().GetAdminByLogin(gomock.Any(), "admin").
		Return(model.Admin{ID: 1, PasswordHash: hash(t, "secret")}, nil)

	_, err := svc.Login(context.Background(), "admin", "guess")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminsMock := mocks.NewMockadminRepository(ctrl)
	svc := NewService(adminsMock, mocks.NewMocksessionRepository(ctrl), time.Hour)

	adminsMock.EXPECT().GetAdminByLogin(gomock.Any(), "ghost").Return(model.Admin{}, admin.ErrAdminNotFound)

	_, err := svc.Login(context.Background(), "ghost", "x")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessionsMock := mocks.NewMocksessionRepository(ctrl)
	svc := NewService(nil, sessionsMock, time.Hour)

	sessionsMock.EXPECT().GetSession(gomock.Any(), "good").Return(int64(3), nil)
	sessionsMock.EXPECT().GetSession(gomock.Any(), "expired").Return(int64(0), session.ErrSessionNotFound)
	sessionsMock.EXPECT().GetSession(gomock.Any(), "broken").Return(int64(0), errors.New("redis down"))

	id, err := svc.Authenticate(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)

	_, err = svc.Authenticate(context.Background(), "expired")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Authenticate(context.Background(), "broken")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

func TestService_EnsureAdmin_CreatesMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminsMock := mocks.NewMockadminRepository(ctrl)
	svc := NewService(adminsMock, nil, time.Hour)

	adminsMock.EXPECT().GetAdminByLogin(gomock.Any(), "admin").Return(model.Admin{}, admin.ErrAdminNotFound)
	adminsMock.EXPECT().UpsertAdmin(gomock.Any(), "admin", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, h string) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(h), []byte("pw")))
			return nil
		})

	assert.NoError(t, svc.EnsureAdmin(context.Background(), "admin", "pw"))
}

func TestService_EnsureAdmin_KeepsMatchingHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminsMock := mocks.NewMockadminRepository(ctrl)
	svc := NewService(adminsMock, nil, time.Hour)

	adminsMock.EXPECT().GetAdminByLogin(gomock.Any(), "admin").
		Return(model.Admin{ID: 1, PasswordHash: hash(t, "pw")}, nil)

	assert.NoError(t, svc.EnsureAdmin(context.Background(), "admin", "pw"))
}

func TestService_EnsureAdmin_ResyncsChangedPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminsMock := mocks.NewMockadminRepository(ctrl)
	svc := NewService(adminsMock, nil, time.Hour)

	adminsMock.EXPECT().GetAdminByLogin(gomock.Any(), "admin").
		Return(model.Admin{ID: 1, PasswordHash: hash(t, "old")}, nil)
	adminsMock.EXPECT().UpsertAdmin(gomock.Any(), "admin", gomock.Any()).Return(nil)

	assert.NoError(t, svc.EnsureAdmin(context.Background(), "admin", "new"))
}
