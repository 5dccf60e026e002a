package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldError satu field request yang gagal validasi.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

// Error ringkasan satu baris untuk respons API.
func (e *FieldError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("field '%s' gagal pada aturan '%s=%s'", e.Field, e.Tag, e.Param)
	}
	return fmt.Sprintf("field '%s' gagal pada aturan '%s'", e.Field, e.Tag)
}

var validate = validator.New()

// ValidateStruct memvalidasi DTO request berdasarkan tag `validate`.
// Mengembalikan daftar field yang gagal; kosong berarti valid.
func ValidateStruct(data interface{}) []*FieldError {
	var fieldErrs []*FieldError
	if err := validate.Struct(data); err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			fieldErrs = append(fieldErrs, &FieldError{
				Field: err.StructNamespace(),
				Tag:   err.Tag(),
				Param: err.Param(),
			})
		}
	}
	return fieldErrs
}
