package shift

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	shifterrors "github.com/rizaltohir55/presensi-qr-project/internal/shift/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn   func(tx *sql.Tx) Repository
	createFn   func(ctx context.Context, sh *Shift) error
	findAllFn  func(ctx context.Context) ([]Shift, error)
	findByIDFn func(ctx context.Context, id string) (*Shift, error)
	updateFn   func(ctx context.Context, sh *Shift) error
	deleteFn   func(ctx context.Context, id string) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository              { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, sh *Shift) error { return f.createFn(ctx, sh) }
func (f *fakeRepo) FindAll(ctx context.Context) ([]Shift, error) { return f.findAllFn(ctx) }
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Shift, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) Update(ctx context.Context, sh *Shift) error { return f.updateFn(ctx, sh) }
func (f *fakeRepo) Delete(ctx context.Context, id string) error { return f.deleteFn(ctx, id) }

func TestShiftService_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	ctx := context.Background()

	var saved Shift
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, sh *Shift) error { saved = *sh; return nil }

	svc := NewService(db, repo, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.Create(ctx, CreateShiftRequest{
		Name:      "Morning",
		StartTime: "08:00",
		EndTime:   "17:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Morning", resp.Name)
	assert.Equal(t, "08:00:00", resp.StartTime)
	assert.Equal(t, "17:00:00", resp.EndTime)
	assert.Equal(t, saved.ID.String(), resp.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShiftService_Create_StartNotBeforeEnd(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{}, nil)

	_, err := svc.Create(context.Background(), CreateShiftRequest{
		Name:      "Backwards",
		StartTime: "17:00",
		EndTime:   "08:00",
	})
	assert.ErrorIs(t, err, shifterrors.ErrInvalidShiftTimes)

	_, err = svc.Create(context.Background(), CreateShiftRequest{
		Name:      "Zero length",
		StartTime: "08:00",
		EndTime:   "08:00",
	})
	assert.ErrorIs(t, err, shifterrors.ErrInvalidShiftTimes)
}

func TestShiftService_Create_InvalidTimeFormat(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{}, nil)

	_, err := svc.Create(context.Background(), CreateShiftRequest{
		Name:      "Broken",
		StartTime: "8 o'clock",
		EndTime:   "17:00",
	})
	assert.ErrorIs(t, err, shifterrors.ErrInvalidTimeFormat)
}

func TestShiftService_Create_DuplicateName(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, sh *Shift) error {
		return errors.New(`duplicate key value violates unique constraint "uq_shifts_name"`)
	}

	svc := NewService(db, repo, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), CreateShiftRequest{
		Name:      "Morning",
		StartTime: "08:00",
		EndTime:   "17:00",
	})
	assert.ErrorIs(t, err, shifterrors.ErrShiftNameTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShiftService_GetByID_NotFound(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.findByIDFn = func(ctx context.Context, id string) (*Shift, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewService(db, repo, nil)

	_, err := svc.GetByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, shifterrors.ErrShiftNotFound)

	_, err = svc.GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, shifterrors.ErrInvalidShiftID)
}

func TestShiftService_Update(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	existing := Shift{
		ID:        uuid.New(),
		Name:      "Morning",
		StartTime: "08:00:00",
		EndTime:   "17:00:00",
	}

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findByIDFn = func(ctx context.Context, id string) (*Shift, error) {
		sh := existing
		return &sh, nil
	}
	repo.updateFn = func(ctx context.Context, sh *Shift) error { return nil }

	svc := NewService(db, repo, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.Update(context.Background(), existing.ID.String(), UpdateShiftRequest{
		Name:      "Early morning",
		StartTime: "06:30",
		EndTime:   "15:30",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Early morning", resp.Name)
	assert.Equal(t, "06:30:00", resp.StartTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParseTimeOfDay(t *testing.T) {
	d, err := ParseTimeOfDay("08:15:30")
	assert.NoError(t, err)
	assert.Equal(t, 8*3600+15*60+30, int(d.Seconds()))

	d, err = ParseTimeOfDay("23:59")
	assert.NoError(t, err)
	assert.Equal(t, 23*3600+59*60, int(d.Seconds()))

	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)
}
