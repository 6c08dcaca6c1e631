package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/GeyBee/skincare-saas/internal"
	"github.com/GeyBee/skincare-saas/internal/auth"
	"github.com/GeyBee/skincare-saas/internal/storage"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

var (
	ErrEmailTaken         = errors.New("service: email already in use")
	ErrInvalidCredentials = errors.New("service: invalid email or password")
)

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"first_name" validate:"required"`
	Age       int    `json:"age" validate:"required,gte=1,lte=120"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func ValidateRegisterRequest(req *RegisterRequest) error {
	return validate.Struct(req)
}

func ValidateLoginRequest(req *LoginRequest) error {
	return validate.Struct(req)
}

func RegisterUser(ctx context.Context, users storage.UserRepository, req *RegisterRequest) (*internal.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := users.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &internal.User{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  hash,
		FirstName: req.FirstName,
		Age:       req.Age,
		CreatedAt: time.Now().UTC(),
	}
	if err := users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func AuthenticateUser(ctx context.Context, users storage.UserRepository, req *LoginRequest) (*internal.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !auth.CheckPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
