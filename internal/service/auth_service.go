package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"car_rental/internal/apperr"
	"car_rental/internal/model"
	"car_rental/internal/repository"
	"car_rental/internal/utils"

	"github.com/go-playground/validator/v10"
)

const minPasswordLength = 6

// AuthService registers and verifies users. It issues no session; the
// HTTP layer decides what to do with a verified user.
type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

type authService struct {
	userRepo          repository.UserRepository
	validate          *validator.Validate
	initialAdminEmail string
}

// NewAuthService creates a new AuthService. Registering with
// initialAdminEmail grants the admin role.
func NewAuthService(userRepo repository.UserRepository, initialAdminEmail string) AuthService {
	return &authService{
		userRepo:          userRepo,
		validate:          validator.New(),
		initialAdminEmail: strings.TrimSpace(initialAdminEmail),
	}
}

// Register creates a new customer account
func (s *authService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		return nil, ErrMissingFields
	}
	if err := s.validate.Var(req.Email, "email"); err != nil {
		return nil, ErrInvalidEmailFormat
	}
	if len(req.Password) < minPasswordLength {
		return nil, ErrWeakPassword
	}

	existingUser, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperr.Dependency("check existing user", err)
	}
	if existingUser != nil {
		return nil, ErrDuplicateEmail
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Dependency("hash password", err)
	}

	role := model.RoleCustomer
	if s.initialAdminEmail != "" && strings.EqualFold(req.Email, s.initialAdminEmail) {
		role = model.RoleAdmin
		log.Printf("INFO: user %s is being registered as ADMIN via INITIAL_ADMIN_EMAIL", req.Email)
	}

	user := &model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		PhoneNumber:  req.PhoneNumber,
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration of the same email
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		return nil, apperr.Dependency("create user", err)
	}
	return user, nil
}

// Login verifies an email and password pair. Unknown emails and wrong
// passwords give the same error after the same amount of bcrypt work.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, apperr.Dependency("find user by email", err)
	}
	if user == nil {
		utils.BurnPasswordCheck(password)
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *authService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, apperr.Dependency("list users", err)
	}
	return users, nil
}
