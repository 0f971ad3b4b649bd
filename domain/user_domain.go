package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister = "user registered successfully"
	MessageSuccessLogin    = "login success"
	MessageSuccessGetMe    = "profile retrieved successfully"

	MessageFailedRegister = "failed to register user"
	MessageFailedLogin    = "failed to login"
	MessageFailedGetMe    = "failed to retrieve profile"

	ErrEmailAlreadyUsed   = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrCredentialsInvalid = errors.New("invalid email or password")
)

type (
	RegisterRequest struct {
		Name            string `json:"name" validate:"required"`
		Email           string `json:"email" validate:"required,email"`
		Password        string `json:"password" validate:"required,min=8"`
		PhoneNumber     string `json:"phone_number" validate:"omitempty"`
		BusinessName    string `json:"business_name" validate:"required"`
		BusinessAddress string `json:"business_address" validate:"omitempty"`
	}

	RegisterResponse struct {
		UserID     uint   `json:"user_id"`
		BusinessID uint   `json:"business_id"`
		Name       string `json:"name"`
		Email      string `json:"email"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token      string `json:"token"`
		UserID     uint   `json:"user_id"`
		BusinessID uint   `json:"business_id"`
		Name       string `json:"name"`
	}

	MeResponse struct {
		UserID          uint      `json:"user_id"`
		Name            string    `json:"name"`
		Email           string    `json:"email"`
		PhoneNumber     string    `json:"phone_number,omitempty"`
		BusinessID      uint      `json:"business_id"`
		BusinessName    string    `json:"business_name"`
		BusinessAddress string    `json:"business_address,omitempty"`
		RegisteredAt    time.Time `json:"registered_at"`
	}
)
