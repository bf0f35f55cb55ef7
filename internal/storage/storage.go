// Package storage guarda el estado local persistente del cliente (equivalente a localStorage).
package storage

import "context"

// Claves conocidas del almacenamiento local.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Store es un mapa clave/valor persistente.
type Store interface {
	// Get devuelve el valor y si la clave existe.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
