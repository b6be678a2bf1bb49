package usecase

import (
	"testing"

	"motorhub/internal/apperr"
	"motorhub/internal/entity"
	"motorhub/pkg/jwt"
	"motorhub/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newIdentityUseCase(userRepo *MockUserRepository) IdentityUseCase {
	return NewIdentityUseCase(userRepo, jwt.NewService("test-secret"), logger.New())
}

func TestRegister_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	uc := newIdentityUseCase(mockUserRepo)

	mockUserRepo.On("GetByEmail", "new@test.com").Return(nil, gorm.ErrRecordNotFound)
	mockUserRepo.On("GetByUsername", "newuser").Return(nil, gorm.ErrRecordNotFound)
	mockUserRepo.On("Create", mock.AnythingOfType("*entity.User")).Run(func(args mock.Arguments) {
		args.Get(0).(*entity.User).ID = "user-1"
	}).Return(nil)

	user, token, err := uc.Register("new@test.com", "+37120000000", "newuser", "password123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, entity.RolePrivate, user.Role)
	assert.True(t, user.IsActive)
	assert.Empty(t, user.Password)

	createdUser := mockUserRepo.Calls[2].Arguments.Get(0).(*entity.User)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(createdUser.Password), []byte("password123")))

	mockUserRepo.AssertExpectations(t)
}

func TestRegister_EmailExists(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	uc := newIdentityUseCase(mockUserRepo)

	mockUserRepo.On("GetByEmail", "taken@test.com").Return(privateUser(), nil)

	_, _, err := uc.Register("taken@test.com", "", "newuser", "password123")

	assert.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	assert.Contains(t, err.Error(), "email already exists")
	mockUserRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRegister_UsernameTaken(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	uc := newIdentityUseCase(mockUserRepo)

	mockUserRepo.On("GetByEmail", "new@test.com").Return(nil, gorm.ErrRecordNotFound)
	mockUserRepo.On("GetByUsername", "applicant").Return(privateUser(), nil)

	_, _, err := uc.Register("new@test.com", "", "applicant", "password123")

	assert.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	assert.Contains(t, err.Error(), "username already taken")
}

func TestLogin_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	uc := newIdentityUseCase(mockUserRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := privateUser()
	user.Password = string(hashed)
	mockUserRepo.On("GetByEmail", "applicant@test.com").Return(user, nil)

	gotUser, token, err := uc.Login("applicant@test.com", "password123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "user-123", gotUser.ID)
	assert.Empty(t, gotUser.Password)
}

func TestLogin_WrongPassword(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	uc := newIdentityUseCase(mockUserRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := privateUser()
	user.Password = string(hashed)
	mockUserRepo.On("GetByEmail", "applicant@test.com").Return(user, nil)

	_, _, err := uc.Login("applicant@test.com", "wrong")

	assert.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLogin_UnknownEmail(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	uc := newIdentityUseCase(mockUserRepo)

	mockUserRepo.On("GetByEmail", "ghost@test.com").Return(nil, gorm.ErrRecordNotFound)

	_, _, err := uc.Login("ghost@test.com", "password123")

	assert.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
}

func TestLogin_DeactivatedAccount(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	uc := newIdentityUseCase(mockUserRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := privateUser()
	user.Password = string(hashed)
	user.IsActive = false
	mockUserRepo.On("GetByEmail", "applicant@test.com").Return(user, nil)

	_, _, err := uc.Login("applicant@test.com", "password123")

	assert.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
	assert.Contains(t, err.Error(), "account is deactivated")
}

func TestGetUser_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	uc := newIdentityUseCase(mockUserRepo)

	user := privateUser()
	user.Password = "hashed"
	mockUserRepo.On("GetByID", "user-123").Return(user, nil)

	gotUser, err := uc.GetUser("user-123")

	assert.NoError(t, err)
	assert.Equal(t, "user-123", gotUser.ID)
	assert.Empty(t, gotUser.Password)
}

func TestGetUser_NotFound(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	uc := newIdentityUseCase(mockUserRepo)

	mockUserRepo.On("GetByID", "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := uc.GetUser("missing")

	assert.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
