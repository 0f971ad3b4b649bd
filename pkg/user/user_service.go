package user

import (
	"context"
	"errors"
	"fmt"
	"log"

	"foodcycle-backend/domain"
	"foodcycle-backend/entities"
	"foodcycle-backend/internal/utils/mailing"
	"foodcycle-backend/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID uint) (domain.MeResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		Name:        req.Name,
		Email:       req.Email,
		Password:    string(hashed),
		PhoneNumber: req.PhoneNumber,
	}
	business := &entities.Business{
		Name:    req.BusinessName,
		Address: req.BusinessAddress,
	}

	created, err := s.userRepository.RegisterUserWithBusiness(ctx, user, business)
	if err != nil {
		return domain.RegisterResponse{}, err
	}
	if !created {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyUsed
	}

	go func() {
		body := fmt.Sprintf(
			"<p>Hi %s,</p><p>Your business <b>%s</b> is now registered. Start logging your stock and leftover food.</p>",
			user.Name, business.Name,
		)
		if err := mailing.SendMail(user.Email, "Welcome to Foodcycle", body); err != nil {
			log.Printf("failed to send welcome mail to %s: %v", user.Email, err)
		}
	}()

	return domain.RegisterResponse{
		UserID:     user.ID,
		BusinessID: business.ID,
		Name:       user.Name,
		Email:      user.Email,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	var businessID uint
	if user.Business != nil {
		businessID = user.Business.ID
	}

	return domain.LoginResponse{
		Token:      s.jwtService.GenerateToken(user.ID, businessID),
		UserID:     user.ID,
		BusinessID: businessID,
		Name:       user.Name,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID uint) (domain.MeResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MeResponse{}, domain.ErrUserNotFound
		}
		return domain.MeResponse{}, err
	}

	res := domain.MeResponse{
		UserID:       user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PhoneNumber:  user.PhoneNumber,
		RegisteredAt: user.CreatedAt,
	}
	if user.Business != nil {
		res.BusinessID = user.Business.ID
		res.BusinessName = user.Business.Name
		res.BusinessAddress = user.Business.Address
	}

	return res, nil
}
