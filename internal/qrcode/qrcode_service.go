package qrcode

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"errors"
	"image/png"
	"strings"
	"time"

	qrcodeerrors "github.com/rizaltohir55/presensi-qr-project/internal/qrcode/errors"
	"github.com/rizaltohir55/presensi-qr-project/internal/qrtoken"
	"github.com/rizaltohir55/presensi-qr-project/internal/shared/clock"
	"github.com/rizaltohir55/presensi-qr-project/internal/shared/shortcode"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	staticCodePrefix  = "QR-"
	dynamicCodePrefix = "DYNAMIC-QR-"
	codeSuffixLength  = 6
	imageSizePx       = 256
)

type Service interface {
	Create(ctx context.Context, creatorID string, req CreateQRCodeRequest) (QRCodeResponse, error)
	GenerateDynamic(ctx context.Context, creatorID string, req GenerateDynamicRequest) (DynamicQRCodeResponse, error)
	GetAll(ctx context.Context) ([]QRCodeResponse, error)
	GetByID(ctx context.Context, id string) (QRCodeResponse, error)
	Image(ctx context.Context, id string) ([]byte, error)
	Toggle(ctx context.Context, id string, isActive bool) (QRCodeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	tokens qrtoken.Service
	clk    clock.Clock
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, tokens qrtoken.Service, clk clock.Clock) Service {
	if clk == nil {
		clk = clock.System()
	}
	return &service{
		db:     db,
		repo:   repo,
		tokens: tokens,
		clk:    clk,
		logger: zap.L().Named("qrcode"),
	}
}

func (s *service) Create(ctx context.Context, creatorID string, req CreateQRCodeRequest) (QRCodeResponse, error) {
	createdBy, err := uuid.Parse(creatorID)
	if err != nil {
		return QRCodeResponse{}, qrcodeerrors.ErrInvalidQRCodeID
	}

	if !IsValidType(req.Type) {
		return QRCodeResponse{}, qrcodeerrors.ErrInvalidQRCodeType
	}

	validFrom, err := time.Parse(time.RFC3339, req.ValidFrom)
	if err != nil {
		return QRCodeResponse{}, qrcodeerrors.ErrInvalidTimestamp
	}
	validUntil, err := time.Parse(time.RFC3339, req.ValidUntil)
	if err != nil {
		return QRCodeResponse{}, qrcodeerrors.ErrInvalidTimestamp
	}
	if !validUntil.After(validFrom) {
		return QRCodeResponse{}, qrcodeerrors.ErrInvalidValidityWindow
	}

	locationID, err := parseOptionalUUID(req.LocationID, qrcodeerrors.ErrInvalidLocationID)
	if err != nil {
		return QRCodeResponse{}, err
	}
	shiftID, err := parseOptionalUUID(req.ShiftID, qrcodeerrors.ErrInvalidShiftID)
	if err != nil {
		return QRCodeResponse{}, err
	}

	code := &QRCode{
		ID:         uuid.New(),
		Code:       staticCodePrefix + shortcode.Generate(codeSuffixLength),
		Type:       req.Type,
		ValidFrom:  validFrom.UTC(),
		ValidUntil: validUntil.UTC(),
		LocationID: locationID,
		ShiftID:    shiftID,
		IsActive:   true,
		CreatedBy:  createdBy,
	}

	if err := s.persist(ctx, code); err != nil {
		return QRCodeResponse{}, err
	}

	s.logger.Info("qr code created",
		zap.String("qr_code_id", code.ID.String()),
		zap.String("type", code.Type),
	)

	return mapToResponse(*code), nil
}

// GenerateDynamic mints a short-lived code whose validity window equals
// one token rotation period, renders it as a PNG and returns the image
// inline as a data URL.
func (s *service) GenerateDynamic(ctx context.Context, creatorID string, req GenerateDynamicRequest) (DynamicQRCodeResponse, error) {
	createdBy, err := uuid.Parse(creatorID)
	if err != nil {
		return DynamicQRCodeResponse{}, qrcodeerrors.ErrInvalidQRCodeID
	}

	locationID, err := parseOptionalUUID(req.LocationID, qrcodeerrors.ErrInvalidLocationID)
	if err != nil {
		return DynamicQRCodeResponse{}, err
	}
	shiftID, err := parseOptionalUUID(req.ShiftID, qrcodeerrors.ErrInvalidShiftID)
	if err != nil {
		return DynamicQRCodeResponse{}, err
	}

	now := s.clk.Now().UTC()
	validUntil := now.Add(s.tokens.Lifespan())

	code := &QRCode{
		ID:         uuid.New(),
		Code:       dynamicCodePrefix + shortcode.Generate(codeSuffixLength),
		Type:       TypeGeneral,
		ValidFrom:  now,
		ValidUntil: validUntil,
		LocationID: locationID,
		ShiftID:    shiftID,
		IsActive:   true,
		CreatedBy:  createdBy,
	}

	if err := s.persist(ctx, code); err != nil {
		return DynamicQRCodeResponse{}, err
	}

	token := s.tokens.Generate(code.LocationScope(), code.ShiftScope())

	payload := dynamicPayload{
		Token:      token,
		Code:       code.Code,
		ValidUntil: validUntil.Format(time.RFC3339),
		LocationID: req.LocationID,
		ShiftID:    req.ShiftID,
	}
	content, err := json.Marshal(payload)
	if err != nil {
		return DynamicQRCodeResponse{}, err
	}

	imageBytes, err := renderPNG(string(content))
	if err != nil {
		return DynamicQRCodeResponse{}, err
	}

	return DynamicQRCodeResponse{
		QRCodeID:    code.ID.String(),
		UniqueCode:  code.Code,
		Token:       token,
		ValidUntil:  validUntil.Format(time.RFC3339),
		QRCodeImage: "data:image/png;base64," + base64.StdEncoding.EncodeToString(imageBytes),
	}, nil
}

func (s *service) GetAll(ctx context.Context) ([]QRCodeResponse, error) {
	codes, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]QRCodeResponse, len(codes))
	for i, code := range codes {
		res[i] = mapToResponse(code)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (QRCodeResponse, error) {
	code, err := s.find(ctx, id)
	if err != nil {
		return QRCodeResponse{}, err
	}
	return mapToResponse(*code), nil
}

// Image renders the stored (static) code value as a plain PNG, for
// printing at an attendance point.
func (s *service) Image(ctx context.Context, id string) ([]byte, error) {
	code, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return renderPNG(code.Code)
}

func (s *service) Toggle(ctx context.Context, id string, isActive bool) (QRCodeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return QRCodeResponse{}, qrcodeerrors.ErrInvalidQRCodeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return QRCodeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	code, err := qtx.FindByID(ctx, id)
	if err != nil {
		return QRCodeResponse{}, mapNotFound(err)
	}

	code.IsActive = isActive

	if err := qtx.Update(ctx, code); err != nil {
		return QRCodeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return QRCodeResponse{}, err
	}

	s.logger.Info("qr code toggled",
		zap.String("qr_code_id", id),
		zap.Bool("is_active", isActive),
	)

	return mapToResponse(*code), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return qrcodeerrors.ErrInvalidQRCodeID
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

	return tx.Commit()
}

func (s *service) find(ctx context.Context, id string) (*QRCode, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, qrcodeerrors.ErrInvalidQRCodeID
	}
	code, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return code, nil
}

func (s *service) persist(ctx context.Context, code *QRCode) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Create(ctx, code); err != nil {
		return mapCreateError(err)
	}

	return tx.Commit()
}

func renderPNG(content string) ([]byte, error) {
	encoded, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return nil, err
	}
	scaled, err := barcode.Scale(encoded, imageSizePx, imageSizePx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
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

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return qrcodeerrors.ErrQRCodeNotFound
	}
	return err
}

func mapCreateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_qr_codes_code" {
			return qrcodeerrors.ErrCodeCollision
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_qr_codes_code") {
		return qrcodeerrors.ErrCodeCollision
	}
	return err
}

func mapToResponse(code QRCode) QRCodeResponse {
	resp := QRCodeResponse{
		ID:         code.ID.String(),
		Code:       code.Code,
		Type:       code.Type,
		ValidFrom:  code.ValidFrom.Format(time.RFC3339),
		ValidUntil: code.ValidUntil.Format(time.RFC3339),
		IsActive:   code.IsActive,
	}
	if code.LocationID != nil {
		resp.LocationID = code.LocationID.String()
	}
	if code.Location != nil {
		resp.LocationName = code.Location.Name
	}
	if code.ShiftID != nil {
		resp.ShiftID = code.ShiftID.String()
	}
	if code.Shift != nil {
		resp.ShiftName = code.Shift.Name
	}
	if !code.CreatedAt.IsZero() {
		resp.CreatedAt = code.CreatedAt.Format(time.RFC3339)
	}
	return resp
}
