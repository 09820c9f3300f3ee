package shift

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, sh *Shift) error
	FindAll(ctx context.Context) ([]Shift, error)
	FindByID(ctx context.Context, id string) (*Shift, error)
	Update(ctx context.Context, sh *Shift) error
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

func (r *repository) Create(ctx context.Context, sh *Shift) error {
	return r.db.WithContext(ctx).Create(sh).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Shift, error) {
	var shifts []Shift
	err := r.db.WithContext(ctx).
		Order("start_time asc, name asc").
		Find(&shifts).Error
	return shifts, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Shift, error) {
	var sh Shift
	err := r.db.WithContext(ctx).First(&sh, "id = ?", id).Error
	return &sh, err
}

func (r *repository) Update(ctx context.Context, sh *Shift) error {
	return r.db.WithContext(ctx).Save(sh).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Shift{}, "id = ?", id).Error
}
