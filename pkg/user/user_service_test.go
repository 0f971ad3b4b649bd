package user

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"foodcycle-backend/domain"
	"foodcycle-backend/entities"
	"foodcycle-backend/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", filepath.Join(t.TempDir(), "test.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.User{}, &entities.Business{})
	require.NoError(t, err)

	return db
}

func newService(t *testing.T, db *gorm.DB) UserService {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	return NewUserService(NewUserRepository(db), jwt.NewJWTService())
}

var registerRequest = domain.RegisterRequest{
	Name:            "Siti",
	Email:           "siti@example.com",
	Password:        "rahasia-banget",
	PhoneNumber:     "081234567890",
	BusinessName:    "Warung Sehat",
	BusinessAddress: "Jl. Melati 3",
}

func TestRegisterCreatesUserAndBusinessTogether(t *testing.T) {
	db := setupTestDB(t)
	service := newService(t, db)

	res, err := service.Register(context.Background(), registerRequest)
	require.NoError(t, err)
	assert.NotZero(t, res.UserID)
	assert.NotZero(t, res.BusinessID)

	var user entities.User
	require.NoError(t, db.Preload("Business").First(&user, res.UserID).Error)
	assert.Equal(t, "siti@example.com", user.Email)
	assert.NotEqual(t, "rahasia-banget", user.Password)
	require.NotNil(t, user.Business)
	assert.Equal(t, "Warung Sehat", user.Business.Name)
	assert.Equal(t, user.ID, user.Business.UserID)
}

func TestRegisterReportsDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	service := newService(t, db)
	ctx := context.Background()

	_, err := service.Register(ctx, registerRequest)
	require.NoError(t, err)

	second := registerRequest
	second.Name = "Impostor"
	_, err = service.Register(ctx, second)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyUsed)

	var users, businesses int64
	require.NoError(t, db.Model(&entities.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&entities.Business{}).Count(&businesses).Error)
	assert.Equal(t, int64(1), users)
	assert.Equal(t, int64(1), businesses)

	var user entities.User
	require.NoError(t, db.Where("email = ?", registerRequest.Email).First(&user).Error)
	assert.Equal(t, "Siti", user.Name)
}

func TestLoginVerifiesPassword(t *testing.T) {
	db := setupTestDB(t)
	service := newService(t, db)
	ctx := context.Background()

	registered, err := service.Register(ctx, registerRequest)
	require.NoError(t, err)

	res, err := service.Login(ctx, domain.LoginRequest{
		Email:    registerRequest.Email,
		Password: registerRequest.Password,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, registered.UserID, res.UserID)
	assert.Equal(t, registered.BusinessID, res.BusinessID)

	_, err = service.Login(ctx, domain.LoginRequest{
		Email:    registerRequest.Email,
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	_, err = service.Login(ctx, domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestMeReturnsProfileWithBusiness(t *testing.T) {
	db := setupTestDB(t)
	service := newService(t, db)
	ctx := context.Background()

	registered, err := service.Register(ctx, registerRequest)
	require.NoError(t, err)

	me, err := service.Me(ctx, registered.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Siti", me.Name)
	assert.Equal(t, registered.BusinessID, me.BusinessID)
	assert.Equal(t, "Warung Sehat", me.BusinessName)

	_, err = service.Me(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
