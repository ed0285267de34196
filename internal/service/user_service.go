package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
)

type IUserService interface {
	Register(ctx context.Context, email, password, firstName, lastName string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
}

type UserService struct {
	userRepo *db.UserRepo
}

func NewUserService(userRepo *db.UserRepo) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register 註冊新用戶，email 重複即失敗，不發任何 token
func (u *UserService) Register(ctx context.Context, email, password, firstName, lastName string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidInput
	}

	_, err := u.userRepo.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hashed),
		FirstName:    firstName,
		LastName:     lastName,
	}
	return u.userRepo.CreateUser(ctx, user)
}

// Login 核對帳密，帳號不存在與密碼錯誤回同一個錯誤
func (u *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidInput
	}

	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
