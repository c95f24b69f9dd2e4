package user

import "errors"

// User domain errors
var (
	ErrUserNotFound = errors.New("usuario no encontrado")
	ErrUserInactive = errors.New("usuario desactivado o no encontrado")
)
