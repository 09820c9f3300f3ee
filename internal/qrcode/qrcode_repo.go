package qrcode

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, code *QRCode) error
	FindAll(ctx context.Context) ([]QRCode, error)
	FindByID(ctx context.Context, id string) (*QRCode, error)
	FindByCode(ctx context.Context, code string) (*QRCode, error)
	Update(ctx context.Context, code *QRCode) error
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

func (r *repository) Create(ctx context.Context, code *QRCode) error {
	return r.db.WithContext(ctx).Omit("Location", "Shift").Create(code).Error
}

func (r *repository) FindAll(ctx context.Context) ([]QRCode, error) {
	var codes []QRCode
	err := r.db.WithContext(ctx).
		Preload("Location").
		Preload("Shift").
		Order("created_at desc").
		Find(&codes).Error
	return codes, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*QRCode, error) {
	var code QRCode
	err := r.db.WithContext(ctx).
		Preload("Location").
		Preload("Shift").
		First(&code, "id = ?", id).Error
	return &code, err
}

func (r *repository) FindByCode(ctx context.Context, value string) (*QRCode, error) {
	var code QRCode
	err := r.db.WithContext(ctx).
		First(&code, "code = ?", value).Error
	return &code, err
}

func (r *repository) Update(ctx context.Context, code *QRCode) error {
	return r.db.WithContext(ctx).Omit("Location", "Shift").Save(code).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&QRCode{}, "id = ?", id).Error
}
