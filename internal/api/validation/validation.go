// Package validation registra en el motor de binding de gin las reglas propias
// de la API y traduce los errores de validación a mensajes en español.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	horaTag  = "hora"
	fechaTag = "fecha"
)

// HH:MM o HH:MM:SS con horas 00-23
var horaRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d(:[0-5]\d)?$`)

var once sync.Once

// Register instala las reglas en el validador de gin. Es idempotente.
func Register() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		// los errores usan el nombre JSON del campo
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, key := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})

		_ = v.RegisterValidation(horaTag, horaValidation)
		_ = v.RegisterValidation(fechaTag, fechaValidation)
	})
}

// horaValidation hora del día en formato HH:MM (o HH:MM:SS)
func horaValidation(fl validator.FieldLevel) bool {
	return horaRegex.MatchString(fl.Field().String())
}

// fechaValidation fecha de calendario YYYY-MM-DD
func fechaValidation(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

// Message describe en español el primer error de binding
func Message(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Cuerpo de la petición inválido"
	}

	fe := verrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("El campo %s es obligatorio", field)
	case "oneof":
		return fmt.Sprintf("El campo %s debe ser uno de: %s", field, fe.Param())
	case "min", "gte":
		return fmt.Sprintf("El campo %s debe ser mayor o igual a %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("El campo %s debe ser mayor que %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("El campo %s excede el máximo permitido (%s)", field, fe.Param())
	case "email":
		return fmt.Sprintf("El campo %s no es un correo válido", field)
	case horaTag:
		return fmt.Sprintf("El campo %s debe tener formato HH:MM", field)
	case fechaTag:
		return fmt.Sprintf("El campo %s debe tener formato YYYY-MM-DD", field)
	default:
		return fmt.Sprintf("El campo %s no es válido", field)
	}
}
