package auth

import (
	"context"
	"database/sql"
	"testing"

	autherrors "github.com/rizaltohir55/presensi-qr-project/internal/auth/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn        func(tx *sql.Tx) Repository
	createFn        func(ctx context.Context, user *User) error
	getByUsernameFn func(ctx context.Context, username string) (*User, error)
	getByIDFn       func(ctx context.Context, id uuid.UUID) (*User, error)
	deleteFn        func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository              { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, u *User) error { return f.createFn(ctx, u) }
func (f *fakeRepo) GetByUsername(ctx context.Context, username string) (*User, error) {
	return f.getByUsernameFn(ctx, username)
}
func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error { return f.deleteFn(ctx, id) }

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestAuthService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	employeeID := uuid.New()
	user := &User{
		ID:           uuid.New(),
		Username:     "budi",
		PasswordHash: hashOf(t, "rahasia123"),
		Role:         "employee",
		Employee: &EmployeeRef{
			ID:       employeeID,
			Name:     "Budi Santoso",
			IsActive: true,
		},
	}

	repo := &fakeRepo{}
	repo.getByUsernameFn = func(ctx context.Context, username string) (*User, error) {
		if username == "budi" {
			return user, nil
		}
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewService(repo)

	token, resp, err := svc.Login(context.Background(), LoginRequest{Username: "budi", Password: "rahasia123"})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "budi", resp.Username)
	assert.Equal(t, employeeID.String(), resp.EmployeeID)
	assert.Equal(t, "employee", resp.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	user := &User{
		ID:           uuid.New(),
		Username:     "budi",
		PasswordHash: hashOf(t, "rahasia123"),
		Role:         "employee",
	}

	repo := &fakeRepo{}
	repo.getByUsernameFn = func(ctx context.Context, username string) (*User, error) {
		return user, nil
	}

	svc := NewService(repo)

	_, _, err := svc.Login(context.Background(), LoginRequest{Username: "budi", Password: "salah"})
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	repo := &fakeRepo{}
	repo.getByUsernameFn = func(ctx context.Context, username string) (*User, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewService(repo)

	_, _, err := svc.Login(context.Background(), LoginRequest{Username: "nobody", Password: "x"})
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveEmployee(t *testing.T) {
	user := &User{
		ID:           uuid.New(),
		Username:     "budi",
		PasswordHash: hashOf(t, "rahasia123"),
		Role:         "employee",
		Employee: &EmployeeRef{
			ID:       uuid.New(),
			IsActive: false,
		},
	}

	repo := &fakeRepo{}
	repo.getByUsernameFn = func(ctx context.Context, username string) (*User, error) {
		return user, nil
	}

	svc := NewService(repo)

	_, _, err := svc.Login(context.Background(), LoginRequest{Username: "budi", Password: "rahasia123"})
	assert.ErrorIs(t, err, autherrors.ErrAccountInactive)
}

func TestAuthService_GetMe(t *testing.T) {
	userID := uuid.New()
	repo := &fakeRepo{}
	repo.getByIDFn = func(ctx context.Context, id uuid.UUID) (*User, error) {
		if id == userID {
			return &User{ID: userID, Username: "admin", Role: "admin"}, nil
		}
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewService(repo)

	resp, err := svc.GetMe(context.Background(), userID.String())
	assert.NoError(t, err)
	assert.Equal(t, "admin", resp.Username)
	assert.Empty(t, resp.EmployeeID)

	_, err = svc.GetMe(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, autherrors.ErrInvalidUserID)

	_, err = svc.GetMe(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
}
