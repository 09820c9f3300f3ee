package qrcode_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rizaltohir55/presensi-qr-project/internal/qrcode"
	qrcodeerrors "github.com/rizaltohir55/presensi-qr-project/internal/qrcode/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	createFn          func(ctx context.Context, creatorID string, req qrcode.CreateQRCodeRequest) (qrcode.QRCodeResponse, error)
	generateDynamicFn func(ctx context.Context, creatorID string, req qrcode.GenerateDynamicRequest) (qrcode.DynamicQRCodeResponse, error)
	getAllFn          func(ctx context.Context) ([]qrcode.QRCodeResponse, error)
	getByIDFn         func(ctx context.Context, id string) (qrcode.QRCodeResponse, error)
	imageFn           func(ctx context.Context, id string) ([]byte, error)
	toggleFn          func(ctx context.Context, id string, isActive bool) (qrcode.QRCodeResponse, error)
	deleteFn          func(ctx context.Context, id string) error
}

func (f *fakeService) Create(ctx context.Context, creatorID string, req qrcode.CreateQRCodeRequest) (qrcode.QRCodeResponse, error) {
	return f.createFn(ctx, creatorID, req)
}
func (f *fakeService) GenerateDynamic(ctx context.Context, creatorID string, req qrcode.GenerateDynamicRequest) (qrcode.DynamicQRCodeResponse, error) {
	return f.generateDynamicFn(ctx, creatorID, req)
}
func (f *fakeService) GetAll(ctx context.Context) ([]qrcode.QRCodeResponse, error) {
	return f.getAllFn(ctx)
}
func (f *fakeService) GetByID(ctx context.Context, id string) (qrcode.QRCodeResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeService) Image(ctx context.Context, id string) ([]byte, error) {
	return f.imageFn(ctx, id)
}
func (f *fakeService) Toggle(ctx context.Context, id string, isActive bool) (qrcode.QRCodeResponse, error) {
	return f.toggleFn(ctx, id, isActive)
}
func (f *fakeService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func TestHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	creatorID := uuid.New().String()

	svc := &fakeService{
		createFn: func(ctx context.Context, cid string, req qrcode.CreateQRCodeRequest) (qrcode.QRCodeResponse, error) {
			assert.Equal(t, creatorID, cid)
			assert.Equal(t, qrcode.TypeCheckIn, req.Type)
			return qrcode.QRCodeResponse{ID: uuid.New().String(), Code: "QR-ABC123", Type: req.Type, IsActive: true}, nil
		},
	}

	h := qrcode.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id", creatorID)
	c.Request = httptest.NewRequest(http.MethodPost, "/qr-codes/generate", strings.NewReader(
		`{"type":"check_in","valid_from":"2025-03-10T00:00:00Z","valid_until":"2025-03-10T23:59:59Z"}`,
	))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "QR code created successfully")
	assert.Contains(t, w.Body.String(), `"qr_code"`)
}

func TestHandler_Create_MissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := qrcode.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id", uuid.New().String())
	c.Request = httptest.NewRequest(http.MethodPost, "/qr-codes/generate", strings.NewReader(`{"type":"check_in"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "required")
}

func TestHandler_Create_ServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		createFn: func(ctx context.Context, cid string, req qrcode.CreateQRCodeRequest) (qrcode.QRCodeResponse, error) {
			return qrcode.QRCodeResponse{}, qrcodeerrors.ErrInvalidValidityWindow
		},
	}

	h := qrcode.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id", uuid.New().String())
	c.Request = httptest.NewRequest(http.MethodPost, "/qr-codes/generate", strings.NewReader(
		`{"type":"general","valid_from":"2025-03-10T23:59:59Z","valid_until":"2025-03-10T00:00:00Z"}`,
	))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), qrcodeerrors.ErrInvalidValidityWindow.Message)
}

func TestHandler_GenerateDynamic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	creatorID := uuid.New().String()

	svc := &fakeService{
		generateDynamicFn: func(ctx context.Context, cid string, req qrcode.GenerateDynamicRequest) (qrcode.DynamicQRCodeResponse, error) {
			assert.Equal(t, creatorID, cid)
			return qrcode.DynamicQRCodeResponse{
				QRCodeID:    uuid.New().String(),
				UniqueCode:  "DYNAMIC-QR-XYZ123",
				Token:       "abc",
				ValidUntil:  "2025-03-10T08:01:00Z",
				QRCodeImage: "data:image/png;base64,aGVsbG8=",
			}, nil
		},
	}

	h := qrcode.NewHandler(svc)

	// bare POST, no body
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id", creatorID)
	c.Request = httptest.NewRequest(http.MethodPost, "/qr-codes/generate-new", nil)

	h.GenerateDynamic(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Dynamic QR code generated successfully")
	assert.Contains(t, w.Body.String(), "DYNAMIC-QR-XYZ123")
	assert.Contains(t, w.Body.String(), "data:image/png;base64,")
}

func TestHandler_Toggle_MissingIsActive(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := qrcode.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
	c.Request = httptest.NewRequest(http.MethodPut, "/qr-codes/toggle", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Toggle(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "required")
}
