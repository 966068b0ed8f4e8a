package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/dhababook/restro-backend/internal/config"
	"github.com/dhababook/restro-backend/internal/models"
	"github.com/dhababook/restro-backend/internal/repositories"
	"github.com/dhababook/restro-backend/internal/utils"
)

// AuthService defines the interface for staff authentication operations
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AdminUser, error)
	Login(ctx context.Context, req *models.LoginRequest) (string, error) // returns a JWT token
}

// Compile-time check to ensure authService implements AuthService
var _ AuthService = (*authService)(nil)

type authService struct {
	adminUserRepo repositories.AdminUserRepository
	cfg           *config.Config
}

// NewAuthService creates a new AuthService implementation
func NewAuthService(adminUserRepo repositories.AdminUserRepository, cfg *config.Config) AuthService {
	return &authService{
		adminUserRepo: adminUserRepo,
		cfg:           cfg,
	}
}

// Register handles staff account registration
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AdminUser, error) {
	_, err := s.adminUserRepo.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, errors.New("an account with this email already exists")
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	adminUser := &models.AdminUser{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hashedPassword),
		Role:      "manager",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.adminUserRepo.Create(ctx, adminUser); err != nil {
		return nil, errors.New("failed to create account")
	}

	adminUser.Password = ""
	return adminUser, nil
}

// Login handles staff login and returns a signed token
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	adminUser, err := s.adminUserRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", errors.New("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(adminUser.Password), []byte(req.Password)); err != nil {
		return "", errors.New("invalid email or password")
	}

	return utils.GenerateJWT(adminUser.ID.Hex(), adminUser.Role, s.cfg)
}
