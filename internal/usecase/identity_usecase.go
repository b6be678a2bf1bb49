package usecase

import (
	"motorhub/internal/apperr"
	"motorhub/internal/entity"
	"motorhub/internal/repo/persistent"
	"motorhub/pkg/jwt"
	"motorhub/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type IdentityUseCase interface {
	Register(email, phone, username, password string) (*entity.User, string, error)
	Login(email, password string) (*entity.User, string, error)
	GetUser(userID string) (*entity.User, error)
}

type identityUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewIdentityUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	logger *logger.Logger,
) IdentityUseCase {
	return &identityUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *identityUseCase) Register(email, phone, username, password string) (*entity.User, string, error) {
	_, err := uc.userRepo.GetByEmail(email)
	if err == nil {
		return nil, "", apperr.New(apperr.KindValidation, "user with this email already exists")
	}

	_, err = uc.userRepo.GetByUsername(username)
	if err == nil {
		return nil, "", apperr.New(apperr.KindValidation, "username already taken")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", apperr.Wrap(err, apperr.KindInternal, "failed to process registration")
	}

	user := &entity.User{
		Email:    email,
		Phone:    phone,
		Username: username,
		Password: string(hashedPassword),
		Role:     entity.RolePrivate,
		IsActive: true,
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", apperr.Wrap(err, apperr.KindInternal, "failed to create user")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", apperr.Wrap(err, apperr.KindInternal, "failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *identityUseCase) Login(email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", apperr.New(apperr.KindUnauthorized, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperr.New(apperr.KindUnauthorized, "invalid credentials")
	}

	if !user.IsActive {
		return nil, "", apperr.New(apperr.KindForbidden, "account is deactivated")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", apperr.Wrap(err, apperr.KindInternal, "failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *identityUseCase) GetUser(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, apperr.New(apperr.KindNotFound, "user not found")
	}
	user.Password = ""
	return user, nil
}
