package location

import (
	"context"
	"database/sql"
	"testing"

	locationerrors "github.com/rizaltohir55/presensi-qr-project/internal/location/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn   func(tx *sql.Tx) Repository
	createFn   func(ctx context.Context, loc *Location) error
	findAllFn  func(ctx context.Context) ([]Location, error)
	findByIDFn func(ctx context.Context, id string) (*Location, error)
	updateFn   func(ctx context.Context, loc *Location) error
	deleteFn   func(ctx context.Context, id string) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, loc *Location) error {
	return f.createFn(ctx, loc)
}
func (f *fakeRepo) FindAll(ctx context.Context) ([]Location, error) { return f.findAllFn(ctx) }
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Location, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) Update(ctx context.Context, loc *Location) error { return f.updateFn(ctx, loc) }
func (f *fakeRepo) Delete(ctx context.Context, id string) error     { return f.deleteFn(ctx, id) }

func TestLocationService_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	lat, lng := -6.2088, 106.8456
	radius := 100

	var saved Location
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, loc *Location) error { saved = *loc; return nil }

	svc := NewService(db, repo, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.Create(context.Background(), CreateLocationRequest{
		Name:      "Head Office",
		Latitude:  &lat,
		Longitude: &lng,
		RadiusM:   &radius,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Head Office", resp.Name)
	assert.Equal(t, saved.ID.String(), resp.ID)
	assert.Equal(t, lat, *resp.Latitude)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocationService_Create_LoneCoordinate(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	lat := -6.2088
	svc := NewService(db, &fakeRepo{}, nil)

	_, err := svc.Create(context.Background(), CreateLocationRequest{
		Name:     "Half a point",
		Latitude: &lat,
	})
	assert.ErrorIs(t, err, locationerrors.ErrInvalidCoordinates)
}

func TestLocationService_GetByID_NotFound(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.findByIDFn = func(ctx context.Context, id string) (*Location, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewService(db, repo, nil)

	_, err := svc.GetByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, locationerrors.ErrLocationNotFound)

	_, err = svc.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, locationerrors.ErrInvalidLocationID)
}

func TestLocationService_Delete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	id := uuid.New()
	deleted := ""

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findByIDFn = func(ctx context.Context, findID string) (*Location, error) {
		return &Location{ID: id, Name: "Head Office"}, nil
	}
	repo.deleteFn = func(ctx context.Context, delID string) error { deleted = delID; return nil }

	svc := NewService(db, repo, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := svc.Delete(context.Background(), id.String())
	assert.NoError(t, err)
	assert.Equal(t, id.String(), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
