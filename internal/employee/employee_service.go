package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/rizaltohir55/presensi-qr-project/internal/auth"
	employeeerrors "github.com/rizaltohir55/presensi-qr-project/internal/employee/errors"
	"github.com/rizaltohir55/presensi-qr-project/internal/rbac"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"
)

const employeeAllCacheKey = "employees:all"

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	userRepo auth.Repository
	rdb      *redis.Client
	sf       *singleflight.Group
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, userRepo auth.Repository, rdb *redis.Client) Service {
	return &service{
		db:       db,
		repo:     repo,
		userRepo: userRepo,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		logger:   zap.L().Named("employee"),
	}
}

func parseOptionalUUID(s *string, invalid error) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, invalid
	}
	return &id, nil
}

// Create provisions the employee profile together with its login
// account. Both rows commit or neither does.
func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	shiftID, err := parseOptionalUUID(req.ShiftID, employeeerrors.ErrInvalidShiftID)
	if err != nil {
		return EmployeeResponse{}, err
	}
	locationID, err := parseOptionalUUID(req.LocationID, employeeerrors.ErrInvalidLocationID)
	if err != nil {
		return EmployeeResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	uqtx := s.userRepo.WithTx(tx)

	user := &auth.User{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: string(hashed),
		Role:         rbac.RoleEmployee,
	}
	if err := uqtx.Create(ctx, user); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	emp := &Employee{
		ID:         uuid.New(),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Position:   req.Position,
		ShiftID:    shiftID,
		LocationID: locationID,
		UserID:     user.ID,
		IsActive:   true,
	}
	if err := qtx.Create(ctx, emp); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.logger.Info("employee created",
		zap.String("employee_id", emp.ID.String()),
		zap.String("user_id", user.ID.String()),
	)

	s.invalidateCache(ctx)

	return mapToResponse(*emp), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, employeeAllCacheKey).Result()
		if err == nil {
			var resp []EmployeeResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(employeeAllCacheKey, func() (interface{}, error) {
		employees, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(employees)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, employeeAllCacheKey, jsonData, 30*time.Minute)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*emp), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	shiftID, err := parseOptionalUUID(req.ShiftID, employeeerrors.ErrInvalidShiftID)
	if err != nil {
		return EmployeeResponse{}, err
	}
	locationID, err := parseOptionalUUID(req.LocationID, employeeerrors.ErrInvalidLocationID)
	if err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	emp.Name = req.Name
	emp.Email = req.Email
	emp.Phone = req.Phone
	emp.Position = req.Position
	emp.ShiftID = shiftID
	emp.LocationID = locationID
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}

	if err := qtx.Update(ctx, emp); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidateCache(ctx)

	// Reassignment changes which shift window applies, the preloaded
	// names may now be stale; refetch for the response.
	fresh, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapToResponse(*emp), nil
	}
	return mapToResponse(*fresh), nil
}

// Delete removes the profile and its login account in one transaction.
func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	uqtx := s.userRepo.WithTx(tx)

	emp, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := uqtx.Delete(ctx, emp.UserID); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("employee deleted",
		zap.String("employee_id", id),
		zap.String("user_id", emp.UserID.String()),
	)

	s.invalidateCache(ctx)

	return nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, employeeAllCacheKey).Err(); err != nil {
		s.logger.Warn("failed to invalidate employee cache",
			zap.String("key", employeeAllCacheKey),
			zap.Error(err),
		)
	}
}

func mapToResponse(emp Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:       emp.ID.String(),
		Name:     emp.Name,
		Email:    emp.Email,
		Phone:    emp.Phone,
		Position: emp.Position,
		IsActive: emp.IsActive,
	}
	if emp.ShiftID != nil {
		resp.ShiftID = emp.ShiftID.String()
	}
	if emp.Shift != nil {
		resp.ShiftName = emp.Shift.Name
	}
	if emp.LocationID != nil {
		resp.LocationID = emp.LocationID.String()
	}
	if emp.Location != nil {
		resp.LocationName = emp.Location.Name
	}
	if !emp.CreatedAt.IsZero() {
		resp.CreatedAt = emp.CreatedAt.Format(time.RFC3339)
	}
	if !emp.UpdatedAt.IsZero() {
		resp.UpdatedAt = emp.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, emp := range employees {
		res[i] = mapToResponse(emp)
	}
	return res
}
