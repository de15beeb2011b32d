package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrConflict     = errors.New("conflicto con el estado actual")

	// Autenticación: el formulario de login los muestra al usuario.
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrServerUnavailable  = errors.New("error en el servidor, intente más tarde")
	// ErrLoginSuperseded: la respuesta de login llegó después de un logout u otro login.
	ErrLoginSuperseded = errors.New("intento de login reemplazado")

	// ErrSessionExpired token expirado o 401/403 de la API: hay que volver a iniciar sesión.
	ErrSessionExpired = errors.New("sesión expirada, inicie sesión de nuevo")
)
