package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	// ErrPrecondition la operación no puede continuar con los argumentos recibidos
	// (error del llamador, no del usuario). El motor de layout nunca produce un
	// documento parcial cuando la devuelve.
	ErrPrecondition = errors.New("precondición violada")
	// ErrExportFailed el rasterizador externo no pudo producir el archivo.
	ErrExportFailed = errors.New("exportación fallida")
)
