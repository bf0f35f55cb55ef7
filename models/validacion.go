package models

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator trata un FlexTime en cero como ausente, así "required" lo rechaza.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if ft, ok := field.Interface().(FlexTime); ok && !ft.IsZero() {
			return ft.Time
		}
		return nil
	}, FlexTime{})
	return v
}

// fechaOpcional rechaza un puntero a una fecha vacía: se serializaría como null.
func fechaOpcional(campo string, f *FlexTime) error {
	if f != nil && f.IsZero() {
		return fmt.Errorf("%s no puede ser una fecha vacía", campo)
	}
	return nil
}

func (dto CreateEducacionDTO) Validate() error {
	if err := validate.Struct(dto); err != nil {
		return fmt.Errorf("educación inválida: %w", err)
	}
	return fechaOpcional("fecha_final", dto.FechaFinal)
}

func (dto UpdateEducacionDTO) Validate() error {
	if err := validate.Struct(dto); err != nil {
		return fmt.Errorf("educación inválida: %w", err)
	}
	if err := fechaOpcional("fecha_inicio", dto.FechaInicio); err != nil {
		return err
	}
	return fechaOpcional("fecha_final", dto.FechaFinal)
}

func (dto CreateExperienciaDTO) Validate() error {
	if err := validate.Struct(dto); err != nil {
		return fmt.Errorf("experiencia inválida: %w", err)
	}
	return fechaOpcional("fecha_final", dto.FechaFinal)
}

func (dto UpdateExperienciaDTO) Validate() error {
	if err := fechaOpcional("fecha_inicio", dto.FechaInicio); err != nil {
		return err
	}
	return fechaOpcional("fecha_final", dto.FechaFinal)
}
