package auth

import (
	"github.com/D4rK14/Control-de-asistencia/internal/pkg/validator"
)

// LoginRequest carries RUT+password credentials.
type LoginRequest struct {
	RUT      string `json:"rut"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.RUT) {
		errs = append(errs, validator.ValidationError{Field: "rut", Message: "es requerido"})
	} else if !validator.IsValidRUT(r.RUT) {
		errs = append(errs, validator.ValidationError{Field: "rut", Message: "formato de RUT inválido"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "es requerida"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// QRLoginRequest carries the opaque content of a scanned login QR code.
type QRLoginRequest struct {
	QRCodeContent string `json:"qrCodeContent"`
}

func (r QRLoginRequest) Validate() error {
	if validator.IsEmpty(r.QRCodeContent) {
		return validator.ValidationErrors{{Field: "qrCodeContent", Message: "es requerido"}}
	}
	return nil
}

// LoginResponse returns the issued tokens. AccessExpiresAt is capped at
// the next 22:00 so sessions never outlive the access window.
type LoginResponse struct {
	AccessToken     string `json:"access_token"`
	RefreshToken    string `json:"refresh_token"`
	AccessExpiresAt int64  `json:"access_expires_at"`
	Role            string `json:"role"`
}
