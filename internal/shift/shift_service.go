package shift

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	shifterrors "github.com/rizaltohir55/presensi-qr-project/internal/shift/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const shiftAllCacheKey = "shifts:all"

type Service interface {
	Create(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	GetAll(ctx context.Context) ([]ShiftResponse, error)
	GetByID(ctx context.Context, id string) (ShiftResponse, error)
	Update(ctx context.Context, id string, req UpdateShiftRequest) (ShiftResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
	rdb  *redis.Client
	sf   *singleflight.Group
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client) Service {
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}}
}

// normalizeTimes validates the HH:MM[:SS] pair and checks start < end
// within one calendar day. Overnight shifts are not supported.
func normalizeTimes(start, end string) (string, string, error) {
	startOfs, err := ParseTimeOfDay(start)
	if err != nil {
		return "", "", shifterrors.ErrInvalidTimeFormat
	}
	endOfs, err := ParseTimeOfDay(end)
	if err != nil {
		return "", "", shifterrors.ErrInvalidTimeFormat
	}
	if startOfs >= endOfs {
		return "", "", shifterrors.ErrInvalidShiftTimes
	}
	format := func(d time.Duration) string {
		return time.Time{}.Add(d).Format("15:04:05")
	}
	return format(startOfs), format(endOfs), nil
}

func (s *service) Create(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error) {
	startTime, endTime, err := normalizeTimes(req.StartTime, req.EndTime)
	if err != nil {
		return ShiftResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ShiftResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	sh := &Shift{
		ID:          uuid.New(),
		Name:        req.Name,
		StartTime:   startTime,
		EndTime:     endTime,
		Description: req.Description,
	}

	if err := qtx.Create(ctx, sh); err != nil {
		return ShiftResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return ShiftResponse{}, err
	}

	s.invalidateCache(ctx)

	return mapToResponse(*sh), nil
}

func (s *service) GetAll(ctx context.Context) ([]ShiftResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, shiftAllCacheKey).Result()
		if err == nil {
			var resp []ShiftResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(shiftAllCacheKey, func() (interface{}, error) {
		shifts, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(shifts)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, shiftAllCacheKey, jsonData, 30*time.Minute)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]ShiftResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (ShiftResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ShiftResponse{}, shifterrors.ErrInvalidShiftID
	}

	sh, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ShiftResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*sh), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateShiftRequest) (ShiftResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ShiftResponse{}, shifterrors.ErrInvalidShiftID
	}

	startTime, endTime, err := normalizeTimes(req.StartTime, req.EndTime)
	if err != nil {
		return ShiftResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ShiftResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	sh, err := qtx.FindByID(ctx, id)
	if err != nil {
		return ShiftResponse{}, mapRepositoryError(err)
	}

	sh.Name = req.Name
	sh.StartTime = startTime
	sh.EndTime = endTime
	sh.Description = req.Description

	if err := qtx.Update(ctx, sh); err != nil {
		return ShiftResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return ShiftResponse{}, err
	}

	s.invalidateCache(ctx)

	return mapToResponse(*sh), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return shifterrors.ErrInvalidShiftID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateCache(ctx)

	return nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, shiftAllCacheKey).Err(); err != nil {
		zap.L().Warn("failed to invalidate shift cache",
			zap.String("key", shiftAllCacheKey),
			zap.Error(err),
		)
	}
}

func mapToResponse(sh Shift) ShiftResponse {
	resp := ShiftResponse{
		ID:        sh.ID.String(),
		Name:      sh.Name,
		StartTime: sh.StartTime,
		EndTime:   sh.EndTime,
	}
	if sh.Description != nil {
		resp.Description = *sh.Description
	}
	if !sh.CreatedAt.IsZero() {
		resp.CreatedAt = sh.CreatedAt.Format(time.RFC3339)
	}
	if !sh.UpdatedAt.IsZero() {
		resp.UpdatedAt = sh.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(shifts []Shift) []ShiftResponse {
	res := make([]ShiftResponse, len(shifts))
	for i, sh := range shifts {
		res[i] = mapToResponse(sh)
	}
	return res
}
