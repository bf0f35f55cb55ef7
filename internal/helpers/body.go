package helpers

import "encoding/json"

// Body arma payloads con campos opcionales: lo que no se agrega no viaja (nunca como null).
type Body map[string]interface{}

// NewBody inicia un payload vacío.
func NewBody() Body {
	return Body{}
}

// Set agrega el campo sin condiciones.
func (b Body) Set(key string, value interface{}) Body {
	b[key] = value
	return b
}

// SetIfNotEmpty agrega el campo sólo si el texto no es "". Cualquier otro valor se envía tal cual.
func (b Body) SetIfNotEmpty(key, value string) Body {
	if value != "" {
		b[key] = value
	}
	return b
}

// SetIfNotNil agrega el campo sólo si el puntero no es nil.
func SetIfNotNil[T any](b Body, key string, value *T) Body {
	if value != nil {
		b[key] = *value
	}
	return b
}

// MarshalJSON serializa el payload como objeto, vacío si no tiene campos.
func (b Body) MarshalJSON() ([]byte, error) {
	if b == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]interface{}(b))
}
