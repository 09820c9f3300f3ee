package location

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	locationerrors "github.com/rizaltohir55/presensi-qr-project/internal/location/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const locationAllCacheKey = "locations:all"

type Service interface {
	Create(ctx context.Context, req CreateLocationRequest) (LocationResponse, error)
	GetAll(ctx context.Context) ([]LocationResponse, error)
	GetByID(ctx context.Context, id string) (LocationResponse, error)
	Update(ctx context.Context, id string, req UpdateLocationRequest) (LocationResponse, error)
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

func validateCoordinates(lat, lng *float64) error {
	if (lat == nil) != (lng == nil) {
		return locationerrors.ErrInvalidCoordinates
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateLocationRequest) (LocationResponse, error) {
	if err := validateCoordinates(req.Latitude, req.Longitude); err != nil {
		return LocationResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LocationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	loc := &Location{
		ID:          uuid.New(),
		Name:        req.Name,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		RadiusM:     req.RadiusM,
		Description: req.Description,
	}

	if err := qtx.Create(ctx, loc); err != nil {
		return LocationResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return LocationResponse{}, err
	}

	s.invalidateCache(ctx)

	return mapToResponse(*loc), nil
}

func (s *service) GetAll(ctx context.Context) ([]LocationResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, locationAllCacheKey).Result()
		if err == nil {
			var resp []LocationResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(locationAllCacheKey, func() (interface{}, error) {
		locations, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(locations)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, locationAllCacheKey, jsonData, 30*time.Minute)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]LocationResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (LocationResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LocationResponse{}, locationerrors.ErrInvalidLocationID
	}

	loc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LocationResponse{}, mapNotFound(err)
	}

	return mapToResponse(*loc), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateLocationRequest) (LocationResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LocationResponse{}, locationerrors.ErrInvalidLocationID
	}
	if err := validateCoordinates(req.Latitude, req.Longitude); err != nil {
		return LocationResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LocationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	loc, err := qtx.FindByID(ctx, id)
	if err != nil {
		return LocationResponse{}, mapNotFound(err)
	}

	loc.Name = req.Name
	loc.Address = req.Address
	loc.Latitude = req.Latitude
	loc.Longitude = req.Longitude
	loc.RadiusM = req.RadiusM
	loc.Description = req.Description

	if err := qtx.Update(ctx, loc); err != nil {
		return LocationResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return LocationResponse{}, err
	}

	s.invalidateCache(ctx)

	return mapToResponse(*loc), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return locationerrors.ErrInvalidLocationID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapNotFound(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return err
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
	if err := s.rdb.Del(ctx, locationAllCacheKey).Err(); err != nil {
		zap.L().Warn("failed to invalidate location cache",
			zap.String("key", locationAllCacheKey),
			zap.Error(err),
		)
	}
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return locationerrors.ErrLocationNotFound
	}
	return err
}

func mapToResponse(loc Location) LocationResponse {
	resp := LocationResponse{
		ID:          loc.ID.String(),
		Name:        loc.Name,
		Address:     loc.Address,
		Latitude:    loc.Latitude,
		Longitude:   loc.Longitude,
		RadiusM:     loc.RadiusM,
		Description: loc.Description,
	}
	if !loc.CreatedAt.IsZero() {
		resp.CreatedAt = loc.CreatedAt.Format(time.RFC3339)
	}
	if !loc.UpdatedAt.IsZero() {
		resp.UpdatedAt = loc.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(locations []Location) []LocationResponse {
	res := make([]LocationResponse, len(locations))
	for i, loc := range locations {
		res[i] = mapToResponse(loc)
	}
	return res
}
