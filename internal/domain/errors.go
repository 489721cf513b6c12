package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). Conjunto cerrado:
// la capa HTTP los traduce a códigos y mensajes; aquí solo hay variantes etiquetadas.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrClientAlreadyExists = errors.New("el cliente ya está registrado")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidToken       = errors.New("token inválido o expirado")
	ErrForbidden          = errors.New("no tienes las credenciales")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrStorage            = errors.New("error de almacenamiento")
)

// InsufficientStockError lleva el faltante y el nombre del producto para el mensaje al usuario.
// errors.Is(err, ErrInsufficientStock) funciona vía Unwrap.
type InsufficientStockError struct {
	ProductName string
	Requested   int
	Available   int
}

// Shortfall unidades que exceden la existencia disponible.
func (e *InsufficientStockError) Shortfall() int {
	return e.Requested - e.Available
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("el artículo %s excede la cantidad disponible en %d unidades", e.ProductName, e.Shortfall())
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// StorageError envuelve fallos de la capa de persistencia sin tragárselos.
// errors.Is(err, ErrStorage) funciona vía Unwrap.
type StorageError struct {
	Op  string // operación que falló, ej. "insert pedido"
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("almacenamiento: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return ErrStorage
}

// NewStorageError construye el error de persistencia con la operación que falló.
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}
