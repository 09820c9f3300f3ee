package auth

import (
	"context"
	"os"
	"time"

	autherrors "github.com/rizaltohir55/presensi-qr-project/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenExpiry = time.Hour

type Service interface {
	Login(ctx context.Context, req LoginRequest) (token string, resp AuthResponse, err error)
	GetMe(ctx context.Context, userID string) (*AuthResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (string, AuthResponse, error) {
	user, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		// Not found and lookup failures collapse into the same answer
		// so usernames cannot be probed.
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if user.Employee != nil && !user.Employee.IsActive {
		return "", AuthResponse{}, autherrors.ErrAccountInactive
	}

	employeeID := ""
	if user.Employee != nil {
		employeeID = user.Employee.ID.String()
	}

	token, err := generateToken(user.ID.String(), employeeID, user.Role, tokenExpiry)
	if err != nil {
		return "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return token, mapToResponse(user), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	resp := mapToResponse(user)
	return &resp, nil
}

func generateToken(userID, employeeID, role string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":     userID,
		"employee_id": employeeID,
		"role":        role,
		"exp":         time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func mapToResponse(user *User) AuthResponse {
	resp := AuthResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Role:     user.Role,
	}
	if user.Employee != nil {
		resp.EmployeeID = user.Employee.ID.String()
		resp.Name = user.Employee.Name
	}
	return resp
}
