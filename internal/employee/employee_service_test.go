package employee

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/rizaltohir55/presensi-qr-project/internal/auth"
	autherrors "github.com/rizaltohir55/presensi-qr-project/internal/auth/errors"
	employeeerrors "github.com/rizaltohir55/presensi-qr-project/internal/employee/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn   func(tx *sql.Tx) Repository
	createFn   func(ctx context.Context, emp *Employee) error
	findAllFn  func(ctx context.Context) ([]Employee, error)
	findByIDFn func(ctx context.Context, id string) (*Employee, error)
	updateFn   func(ctx context.Context, emp *Employee) error
	deleteFn   func(ctx context.Context, id string) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, emp *Employee) error {
	return f.createFn(ctx, emp)
}
func (f *fakeRepo) FindAll(ctx context.Context) ([]Employee, error) { return f.findAllFn(ctx) }
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Employee, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) Update(ctx context.Context, emp *Employee) error { return f.updateFn(ctx, emp) }
func (f *fakeRepo) Delete(ctx context.Context, id string) error     { return f.deleteFn(ctx, id) }

type fakeUserRepo struct {
	withTxFn func(tx *sql.Tx) auth.Repository
	createFn func(ctx context.Context, user *auth.User) error
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeUserRepo) WithTx(tx *sql.Tx) auth.Repository { return f.withTxFn(tx) }
func (f *fakeUserRepo) Create(ctx context.Context, user *auth.User) error {
	return f.createFn(ctx, user)
}
func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*auth.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*auth.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return f.deleteFn(ctx, id)
}

func TestEmployeeService_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var savedEmp Employee
	var savedUser auth.User

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, emp *Employee) error { savedEmp = *emp; return nil }

	userRepo := &fakeUserRepo{}
	userRepo.withTxFn = func(tx *sql.Tx) auth.Repository { return userRepo }
	userRepo.createFn = func(ctx context.Context, user *auth.User) error { savedUser = *user; return nil }

	svc := NewService(db, repo, userRepo, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.Create(context.Background(), CreateEmployeeRequest{
		Name:     "Budi Santoso",
		Username: "budi",
		Password: "rahasia123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Budi Santoso", resp.Name)
	assert.True(t, resp.IsActive)
	assert.Equal(t, savedUser.ID, savedEmp.UserID)
	assert.Equal(t, "employee", savedUser.Role)
	assert.NotEqual(t, "rahasia123", savedUser.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeService_Create_UsernameTaken(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }

	userRepo := &fakeUserRepo{}
	userRepo.withTxFn = func(tx *sql.Tx) auth.Repository { return userRepo }
	userRepo.createFn = func(ctx context.Context, user *auth.User) error {
		return errors.New(`duplicate key value violates unique constraint "uq_users_username"`)
	}

	svc := NewService(db, repo, userRepo, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), CreateEmployeeRequest{
		Name:     "Budi Santoso",
		Username: "budi",
		Password: "rahasia123",
	})
	assert.ErrorIs(t, err, autherrors.ErrUsernameTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeService_Create_InvalidShiftID(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{}, &fakeUserRepo{}, nil)

	bad := "not-a-uuid"
	_, err := svc.Create(context.Background(), CreateEmployeeRequest{
		Name:     "Budi Santoso",
		Username: "budi",
		Password: "rahasia123",
		ShiftID:  &bad,
	})
	assert.ErrorIs(t, err, employeeerrors.ErrInvalidShiftID)
}

func TestEmployeeService_Delete_RemovesLoginAccount(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	empID := uuid.New()
	userID := uuid.New()

	deletedEmployee := ""
	var deletedUser uuid.UUID

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findByIDFn = func(ctx context.Context, id string) (*Employee, error) {
		return &Employee{ID: empID, UserID: userID}, nil
	}
	repo.deleteFn = func(ctx context.Context, id string) error { deletedEmployee = id; return nil }

	userRepo := &fakeUserRepo{}
	userRepo.withTxFn = func(tx *sql.Tx) auth.Repository { return userRepo }
	userRepo.deleteFn = func(ctx context.Context, id uuid.UUID) error { deletedUser = id; return nil }

	svc := NewService(db, repo, userRepo, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := svc.Delete(context.Background(), empID.String())
	assert.NoError(t, err)
	assert.Equal(t, empID.String(), deletedEmployee)
	assert.Equal(t, userID, deletedUser)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeService_GetByID_NotFound(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.findByIDFn = func(ctx context.Context, id string) (*Employee, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewService(db, repo, &fakeUserRepo{}, nil)

	_, err := svc.GetByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}
