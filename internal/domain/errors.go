package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrStockInsuficiente  = errors.New("stock insuficiente")
	ErrRelacionInactiva   = errors.New("la relación seleccionada está inactiva; actívela en ajustes para permitir la edición")
	ErrSolicitudVacia     = errors.New("la solicitud no tiene productos")
)
