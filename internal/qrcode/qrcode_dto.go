package qrcode

type CreateQRCodeRequest struct {
	Type       string  `json:"type" binding:"required"`
	ValidFrom  string  `json:"valid_from" binding:"required"`
	ValidUntil string  `json:"valid_until" binding:"required"`
	LocationID *string `json:"location_id"`
	ShiftID    *string `json:"shift_id"`
}

type GenerateDynamicRequest struct {
	LocationID *string `json:"location_id"`
	ShiftID    *string `json:"shift_id"`
}

type ToggleQRCodeRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type QRCodeResponse struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	Type         string `json:"type"`
	ValidFrom    string `json:"valid_from"`
	ValidUntil   string `json:"valid_until"`
	LocationID   string `json:"location_id,omitempty"`
	LocationName string `json:"location_name,omitempty"`
	ShiftID      string `json:"shift_id,omitempty"`
	ShiftName    string `json:"shift_name,omitempty"`
	IsActive     bool   `json:"is_active"`
	CreatedAt    string `json:"created_at"`
}

type DynamicQRCodeResponse struct {
	QRCodeID    string `json:"qr_code_id"`
	UniqueCode  string `json:"unique_code"`
	Token       string `json:"token"`
	ValidUntil  string `json:"valid_until"`
	QRCodeImage string `json:"qr_code_image"`
}

// dynamicPayload is what the rendered QR image actually encodes. The
// scanner app submits token and code back on check-in.
type dynamicPayload struct {
	Token      string  `json:"token"`
	Code       string  `json:"code"`
	ValidUntil string  `json:"valid_until"`
	LocationID *string `json:"location_id"`
	ShiftID    *string `json:"shift_id"`
}
