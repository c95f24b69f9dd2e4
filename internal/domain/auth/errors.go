package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials = errors.New("usuario o contraseña incorrectos")
	ErrInvalidQRCode      = errors.New("código QR inválido o no reconocido")
	ErrAccountDisabled    = errors.New("tu cuenta ha sido desactivada")
	ErrAccessBlocked      = errors.New("el sistema se encuentra cerrado entre las 22:00 y las 06:00")
	ErrInvalidToken       = errors.New("token inválido")
)
