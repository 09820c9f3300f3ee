package location

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, loc *Location) error
	FindAll(ctx context.Context) ([]Location, error)
	FindByID(ctx context.Context, id string) (*Location, error)
	Update(ctx context.Context, loc *Location) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx returns a clone whose statements run on the given transaction.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{NewDB: true})
	session.Statement.ConnPool = tx
	return &repository{db: session}
}

func (r *repository) Create(ctx context.Context, loc *Location) error {
	return r.db.WithContext(ctx).Create(loc).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Location, error) {
	var locations []Location
	err := r.db.WithContext(ctx).
		Order("name asc").
		Find(&locations).Error
	return locations, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Location, error) {
	var loc Location
	err := r.db.WithContext(ctx).First(&loc, "id = ?", id).Error
	return &loc, err
}

func (r *repository) Update(ctx context.Context, loc *Location) error {
	return r.db.WithContext(ctx).Save(loc).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Location{}, "id = ?", id).Error
}
